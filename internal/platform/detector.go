// Package platform detects the nginx site directories for the running OS.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Paths contains the nginx site configuration directories.
type Paths struct {
	Available string
	Enabled   string
}

// DetectPaths returns the nginx sites-available/sites-enabled directories
// for the current platform. Settings-file overrides take precedence over
// whatever this returns.
func DetectPaths() (*Paths, error) {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwinPaths()
	case "linux":
		return detectLinuxPaths()
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// detectDarwinPaths detects paths for macOS Homebrew installations.
func detectDarwinPaths() (*Paths, error) {
	// Apple Silicon Homebrew prefix first
	if pathExists("/opt/homebrew/etc/nginx") {
		return &Paths{
			Available: "/opt/homebrew/etc/nginx/servers",
			Enabled:   "/opt/homebrew/etc/nginx/servers",
		}, nil
	}

	if pathExists("/usr/local/etc/nginx") {
		return &Paths{
			Available: "/usr/local/etc/nginx/servers",
			Enabled:   "/usr/local/etc/nginx/servers",
		}, nil
	}

	return nil, fmt.Errorf("nginx installation not found (checked /opt/homebrew/etc/nginx and /usr/local/etc/nginx)")
}

// detectLinuxPaths detects paths for Linux distributions.
func detectLinuxPaths() (*Paths, error) {
	// Debian/Ubuntu layout (most common)
	if pathExists("/etc/nginx/sites-available") {
		return &Paths{
			Available: "/etc/nginx/sites-available",
			Enabled:   "/etc/nginx/sites-enabled",
		}, nil
	}

	// RHEL/CentOS layout: no enabled/available split, conf.d only
	if pathExists("/etc/nginx/conf.d") {
		return &Paths{
			Available: "/etc/nginx/conf.d",
			Enabled:   "/etc/nginx/conf.d",
		}, nil
	}

	return nil, fmt.Errorf("nginx configuration paths not found (checked /etc/nginx/sites-available and /etc/nginx/conf.d)")
}

// pathExists checks whether a path exists on disk.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
