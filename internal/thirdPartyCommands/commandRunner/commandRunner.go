package commandrunner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/sony/gobreaker"
)

type Command struct {
	Dir  string
	Name string
	Args []string
	// CombineOutput merges stderr into the returned output.
	CombineOutput bool
}

type CommandRunner interface {
	Run(ctx context.Context, command Command) ([]byte, error)
}

type ExecRunner struct {
	timeout time.Duration
}

// NewExecRunner returns a runner for real processes. A zero timeout never kills the process.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		timeout: timeout,
	}
}

func (r *ExecRunner) Run(ctx context.Context, command Command) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	cmd.Env = os.Environ()

	if command.CombineOutput {
		return cmd.CombinedOutput()
	}

	return cmd.Output()
}

// IsExpectedFailure reports whether err is one of the ways an external tool is routinely
// unavailable: not installed, exited non-zero, timed out, or short-circuited by a breaker.
func IsExpectedFailure(err error) bool {
	if err == nil {
		return false
	}

	var exitError *exec.ExitError
	switch {
	case errors.As(err, &exitError):
		return true
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return true
	case errors.Is(err, context.DeadlineExceeded):
		return true
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return true
	}

	return false
}
