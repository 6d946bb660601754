package cli

import (
	"fmt"
	"path/filepath"

	"sitectl/internal/config"
	"sitectl/internal/output"
	"sitectl/internal/registry"
)

// loadRegistry resolves the site directories from settings (falling back to
// platform detection when the settings carry the stock defaults on a system
// laid out differently) and returns the registry over them.
func loadRegistry() (*registry.Registry, *config.Settings, error) {
	settings, err := deps.SettingsLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	available, enabled := settings.AvailableDir, settings.EnabledDir
	if available == config.DefaultAvailableDir && enabled == config.DefaultEnabledDir {
		if paths, err := deps.PathDetector.DetectPaths(); err == nil {
			available, enabled = paths.Available, paths.Enabled
		}
	}

	return registry.New(available, enabled), settings, nil
}

// requireRoot enforces root privileges for system-mutating commands.
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// validateRoot checks a document root path.
func validateRoot(root string) error {
	if root == "" {
		return nil // requiredness is decided per site type
	}
	if !filepath.IsAbs(root) {
		return fmt.Errorf("root path must be absolute: %s", root)
	}
	return nil
}

// CommandResult is the common JSON result shape for mutating commands.
type CommandResult struct {
	Success bool   `json:"success"`
	Domain  string `json:"domain"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

// outputResult handles JSON or human-readable success output.
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// verifyAndReload runs the syntax check and, when it passes and reload is
// requested, reloads nginx. A failed check aborts before the reload and the
// written config stays on disk for manual correction. A failed reload is
// reported but never escalated.
func verifyAndReload(reload bool) error {
	output.Info("Testing nginx configuration...")
	if err := deps.Server.Test(); err != nil {
		return fmt.Errorf("configuration test failed, reload skipped: %w", err)
	}

	if reload {
		output.Info("Reloading nginx...")
		if err := deps.Server.Reload(); err != nil {
			output.Warn("Reload failed: %v", err)
		}
	}

	return nil
}
