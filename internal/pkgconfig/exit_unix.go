//go:build !windows
// +build !windows

package pkgconfig

import (
	stderrors "errors"
	"os/exec"
	"syscall"
)

// extractExitStatus extracts the exit status code from an error returned by exec.Cmd.Wait()
// On Unix-like platforms this checks for syscall.WaitStatus. A child killed by
// a signal reports -1, which still counts as a failed run.
func extractExitStatus(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus(), true
		}
	}
	return 1, false
}
