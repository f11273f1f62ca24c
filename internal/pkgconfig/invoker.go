// Package pkgconfig runs the configuration-lookup tool and inverts its exit
// status.
//
// A zero status from the tool becomes the result 1, any other status becomes
// 0. On Windows the tool is never started and is treated as having failed.
package pkgconfig

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/gi4nks/wrap-pkg-config/internal/errors"
	"github.com/gi4nks/wrap-pkg-config/internal/logging"
	"github.com/gi4nks/wrap-pkg-config/internal/utils"
)

// StatusUnavailable is the status assumed for the tool on platforms where it
// is never run.
const StatusUnavailable = 1

// Runner runs an executable to completion and reports its exit status.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (int, error)
}

// ExecRunner runs executables with os/exec. The child shares the given
// streams, its output is never read by the runner.
type ExecRunner struct {
	logger *zap.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner attached to the process' own stdio.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{
		logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts name with args and waits for it. A non-zero exit status is not
// an error. Failing to find or start the executable is.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return 1, errors.NewError(errors.ErrToolNotFound, "cannot find "+name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			return 1, errors.NewError(errors.ErrToolNotFound, "cannot find "+name, err)
		}
		return 1, errors.NewError(errors.ErrExecutionFailed, "cannot start "+name, err)
	}

	err = cmd.Wait()
	if status, ok := extractExitStatus(err); ok {
		r.logger.Debug("Tool exited",
			zap.String(logging.FieldKeyTool, path),
			zap.Int(logging.FieldKeyStatus, status))
		return status, nil
	}
	return 1, errors.NewError(errors.ErrExecutionFailed, "waiting for "+name+" failed", err)
}

// Invoker runs the configured tool for the configured platform.
type Invoker struct {
	logger   *zap.Logger
	tool     string
	platform string
	windows  bool
	runner   Runner
}

// NewInvoker creates an Invoker from the loaded configuration.
func NewInvoker(logger *zap.Logger, config *utils.Configuration, runner Runner) *Invoker {
	return &Invoker{
		logger:   logger.With(zap.String(logging.FieldKeyComponent, logging.ComponentInvoker)),
		tool:     config.Tool,
		platform: config.Platform,
		windows:  config.IsWindows(),
		runner:   runner,
	}
}

// Tool returns the name of the executable the invoker runs.
func (i *Invoker) Tool() string {
	return i.tool
}

// Status returns the tool's exit status for args. On Windows the tool is not
// run and StatusUnavailable is returned.
func (i *Invoker) Status(ctx context.Context, args []string) (int, error) {
	i.logger.Debug("Invoking tool", logging.ProbeFields(i.tool, args, i.platform)...)

	if i.windows {
		return StatusUnavailable, nil
	}

	return i.runner.Run(ctx, i.tool, args)
}

// Probe runs the tool once and returns the inverted status.
func (i *Invoker) Probe(ctx context.Context, args []string) (int, error) {
	status, err := i.Status(ctx, args)
	if err != nil {
		logging.LogProbeResult(i.logger, i.tool, status, 0, err)
		return 0, err
	}

	result := Invert(status)
	logging.LogProbeResult(i.logger, i.tool, status, result, nil)
	return result, nil
}

// Invert maps a successful status to 1 and every other status to 0.
func Invert(status int) int {
	if status == 0 {
		return 1
	}
	return 0
}
