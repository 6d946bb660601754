package cli

import (
	"os"

	"sitectl/internal/config"
	"sitectl/internal/errors"
	"sitectl/internal/input"
	"sitectl/internal/platform"
	"sitectl/internal/server"
)

// Dependencies aggregates the CLI's external collaborators for testability.
type Dependencies struct {
	SettingsLoader SettingsLoader
	PathDetector   PathDetector
	Server         ServerGateway
	RootChecker    RootChecker
	StdinReader    input.Reader
}

// SettingsLoader loads the tool settings.
type SettingsLoader interface {
	Load() (*config.Settings, error)
}

// PathDetector resolves the nginx site directories for the platform.
type PathDetector interface {
	DetectPaths() (*platform.Paths, error)
}

// ServerGateway covers the nginx process operations.
type ServerGateway interface {
	IsInstalled() bool
	Test() error
	Reload() error
}

// RootChecker checks root privileges.
type RootChecker interface {
	RequireRoot() error
}

// Package-level dependencies (can be overridden for testing).
var deps = defaultDeps()

func defaultDeps() *Dependencies {
	return &Dependencies{
		SettingsLoader: &realSettingsLoader{},
		PathDetector:   &realPathDetector{},
		Server:         server.New(),
		RootChecker:    &realRootChecker{},
		StdinReader:    input.NewStdinReader(),
	}
}

// SetDeps replaces the package dependencies (for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// ResetDeps restores the real dependencies (for testing).
func ResetDeps() {
	deps = defaultDeps()
}

// Real implementations delegating to the owning packages.

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load() (*config.Settings, error) {
	return config.Load()
}

type realPathDetector struct{}

func (r *realPathDetector) DetectPaths() (*platform.Paths, error) {
	return platform.DetectPaths()
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.ErrRootRequired
	}
	return nil
}
