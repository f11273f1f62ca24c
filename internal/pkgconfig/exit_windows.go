//go:build windows
// +build windows

package pkgconfig

import (
	stderrors "errors"
	"os/exec"
)

// extractExitStatus on Windows reads the code from the process state. The
// invoker never runs the tool there, this keeps the runner usable on its own.
func extractExitStatus(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 1, false
}
