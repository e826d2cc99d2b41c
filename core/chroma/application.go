package chroma

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// shutdownGrace is how long a terminated server may take before it is killed.
const shutdownGrace = 10 * time.Second

// Application is a reference to the server's entry point: the resolved
// executable. Obtaining one does not start anything.
type Application struct {
	path string
}

// Locate resolves the server executable by name or path.
func Locate(binary string) (*Application, error) {
	if binary == "" {
		return nil, fmt.Errorf("chroma: no server executable configured")
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("chroma: cannot locate server executable: %w", err)
	}
	return &Application{path: path}, nil
}

// Path returns the resolved executable path.
func (a *Application) Path() string { return a.path }

// Command builds the process that serves the settings. Cancelling ctx sends
// SIGTERM and kills the process after a grace period.
func (a *Application) Command(ctx context.Context, s Settings) *exec.Cmd {
	cmd := exec.CommandContext(ctx, a.path, s.Args()...)
	cmd.Env = append(os.Environ(), s.Environ()...)
	cmd.Dir = s.PersistDirectory()
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = shutdownGrace
	return cmd
}
