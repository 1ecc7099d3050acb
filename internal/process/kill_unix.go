//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// Chrome's renderer and GPU helpers down with the browser.
func KillProcessGroup(pid int) {
	// Best-effort; launcher.Kill() follows
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

// Alive reports whether a process with pid still exists.
func Alive(pid int) bool {
	return pid > 0 && syscall.Kill(pid, 0) == nil
}
