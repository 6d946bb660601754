package ssl

import (
	"fmt"
	"strings"

	"sitectl/internal/errors"
	"sitectl/internal/executor"
)

// runner is the command executor, replaceable for testing.
var runner executor.Runner = executor.NewSystemRunner()

// SetRunner allows tests to inject a fake runner.
func SetRunner(r executor.Runner) {
	runner = r
}

// ResetRunner restores the default system runner.
func ResetRunner() {
	runner = executor.NewSystemRunner()
}

// IsInstalled checks if certbot is on PATH. Its absence is a non-fatal
// condition; callers surface installation guidance and continue without TLS.
func IsInstalled() bool {
	_, err := runner.LookPath("certbot")
	return err == nil
}

// InstallHint is the guidance shown when certbot is missing.
const InstallHint = "install it with: apt install certbot python3-certbot-nginx"

// Issue obtains a certificate for the domain through certbot's nginx plugin
// in non-interactive mode. When includeWww is set the www. host is added to
// the certificate. Certbot rewrites the site config in place and the
// --redirect flag makes it upgrade plain HTTP requests.
func Issue(domain, email string, includeWww bool) error {
	if !IsInstalled() {
		return errors.ErrCertbotNotFound
	}

	args := []string{
		"--nginx",
		"-d", domain,
	}
	if includeWww {
		args = append(args, "-d", "www."+domain)
	}
	args = append(args,
		"--email", email,
		"--agree-tos",
		"--non-interactive",
		"--redirect",
	)

	out, err := runner.Run("certbot", args...)
	if err != nil {
		return errors.WrapDomain(errors.ErrCodeSSL, domain,
			fmt.Errorf("certbot failed: %s", strings.TrimSpace(string(out))))
	}
	return nil
}

// Renew renews the certificate for a specific domain.
func Renew(domain string) error {
	if !IsInstalled() {
		return errors.ErrCertbotNotFound
	}

	out, err := runner.Run("certbot", "renew", "--cert-name", domain, "--non-interactive")
	if err != nil {
		return errors.WrapDomain(errors.ErrCodeSSL, domain,
			fmt.Errorf("certbot renew failed: %s", strings.TrimSpace(string(out))))
	}
	return nil
}
