// Package server wraps the nginx binary: syntax checking, reloading, and the
// startup presence check. Every invocation is synchronous and attempted
// exactly once; diagnostics are passed through verbatim.
package server

import (
	"fmt"
	"strings"

	"sitectl/internal/errors"
	"sitectl/internal/executor"
	"sitectl/internal/logger"
)

// Nginx is the gateway to the nginx process.
type Nginx struct {
	runner executor.Runner
}

// New creates a gateway using the system command runner.
func New() *Nginx {
	return &Nginx{runner: executor.NewSystemRunner()}
}

// NewWithRunner creates a gateway with an injected runner (for testing).
func NewWithRunner(r executor.Runner) *Nginx {
	return &Nginx{runner: r}
}

// IsInstalled checks whether the nginx binary is on PATH.
func (n *Nginx) IsInstalled() bool {
	_, err := n.runner.LookPath("nginx")
	return err == nil
}

// Test validates the nginx configuration syntax with `nginx -t`. Validity is
// judged by exit code; the tool's diagnostic output is included in the error
// for display, not interpreted.
func (n *Nginx) Test() error {
	out, err := n.runner.Run("nginx", "-t")
	if err != nil {
		return errors.Wrap(errors.ErrCodeServer,
			fmt.Sprintf("configuration test failed:\n%s", strings.TrimSpace(string(out))), err)
	}
	logger.Debug("nginx -t passed")
	return nil
}

// Reload asks the running nginx to reload its configuration. It tries
// systemctl first and falls back to `nginx -s reload` where systemd is
// unavailable.
func (n *Nginx) Reload() error {
	if _, err := n.runner.Run("systemctl", "reload", "nginx"); err == nil {
		return nil
	}
	logger.Debug("systemctl reload unavailable, falling back to nginx -s reload")

	out, err := n.runner.Run("nginx", "-s", "reload")
	if err != nil {
		return errors.Wrap(errors.ErrCodeServer,
			fmt.Sprintf("reload failed:\n%s", strings.TrimSpace(string(out))), err)
	}
	return nil
}
