// Package executor runs external commands behind a small interface so the
// nginx and certbot gateways can be tested without touching the system.
package executor

import "os/exec"

// Runner executes external commands on behalf of the tool. All filesystem
// and process-control actions in a real deployment require root, so the
// Runner is the single seam where a privileged call happens.
type Runner interface {
	// Run executes a command and returns its combined output. A non-nil
	// error indicates a non-zero exit or a failure to start.
	Run(name string, args ...string) ([]byte, error)

	// LookPath searches for an executable in the directories named by PATH.
	LookPath(file string) (string, error)
}

// SystemRunner implements Runner using os/exec.
type SystemRunner struct{}

// NewSystemRunner creates a new SystemRunner.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// Run executes a command and returns combined stdout and stderr.
func (r *SystemRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// LookPath searches for an executable.
func (r *SystemRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// FakeRunner is a recording test double for Runner.
type FakeRunner struct {
	RunFunc      func(name string, args ...string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []Call
}

// Call records a command execution for verification.
type Call struct {
	Name string
	Args []string
}

// Run records the call and delegates to RunFunc if set.
func (f *FakeRunner) Run(name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	if f.RunFunc != nil {
		return f.RunFunc(name, args...)
	}
	return []byte(""), nil
}

// LookPath delegates to LookPathFunc if set, otherwise pretends the binary
// exists under /usr/bin.
func (f *FakeRunner) LookPath(file string) (string, error) {
	if f.LookPathFunc != nil {
		return f.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
