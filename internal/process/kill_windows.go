//go:build windows

package process

import (
	"os/exec"
	"strconv"
	"strings"
)

// KillProcessGroup terminates pid and its child processes with taskkill.
// /F = force, /T = tree.
func KillProcessGroup(pid int) {
	// Best-effort; launcher.Kill() follows
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}

// Alive reports whether a process with pid still exists.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	out, err := exec.Command("tasklist", "/FI", "PID eq "+strconv.Itoa(pid), "/NH").Output()
	return err == nil && strings.Contains(string(out), strconv.Itoa(pid))
}
