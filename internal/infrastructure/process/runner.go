// Package process is the raw process-execution collaborator: it hands a
// rendered command line to a shell, blocks until exit, and propagates a
// nonzero status as an error.
package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExternalToolError reports a spawned process that exited nonzero.
type ExternalToolError struct {
	Command  string
	ExitCode int
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.ExitCode, e.Command)
}

// ShellRunner executes command lines through /bin/sh, inheriting the parent
// environment and standard streams. An interrupt terminates the blocked
// wait and surfaces as failure; there is no other cancellation support.
type ShellRunner struct {
	env []string
}

// NewShellRunner returns a runner using the current environment.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{env: os.Environ()}
}

// Run executes command in dir and blocks until it exits. The command's
// stdin, stdout and stderr are wired to the parent process so interactive
// tools (serial terminals, emulators) work unmodified.
func (r *ShellRunner) Run(ctx context.Context, dir, command string) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = r.env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExternalToolError{Command: command, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("start command %q: %w", command, err)
	}
	return nil
}
