package cli

import (
	"sitectl/internal/config"
	"sitectl/internal/platform"
)

// MockSettingsLoader is a test double for SettingsLoader.
type MockSettingsLoader struct {
	Settings *config.Settings
	LoadErr  error
}

func (m *MockSettingsLoader) Load() (*config.Settings, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Settings == nil {
		m.Settings = config.New()
	}
	return m.Settings, nil
}

// MockPathDetector is a test double for PathDetector.
type MockPathDetector struct {
	Paths *platform.Paths
	Err   error
}

func (m *MockPathDetector) DetectPaths() (*platform.Paths, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Paths != nil {
		return m.Paths, nil
	}
	return &platform.Paths{
		Available: "/etc/nginx/sites-available",
		Enabled:   "/etc/nginx/sites-enabled",
	}, nil
}

// MockServer is a test double for ServerGateway that records invocations.
type MockServer struct {
	Installed   bool
	TestErr     error
	ReloadErr   error
	TestCalls   int
	ReloadCalls int
}

// NewMockServer returns a MockServer that reports nginx as installed.
func NewMockServer() *MockServer {
	return &MockServer{Installed: true}
}

func (m *MockServer) IsInstalled() bool {
	return m.Installed
}

func (m *MockServer) Test() error {
	m.TestCalls++
	return m.TestErr
}

func (m *MockServer) Reload() error {
	m.ReloadCalls++
	return m.ReloadErr
}

// MockRootChecker is a test double for RootChecker.
type MockRootChecker struct {
	Err error
}

func (m *MockRootChecker) RequireRoot() error {
	return m.Err
}
