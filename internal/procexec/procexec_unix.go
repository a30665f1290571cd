//go:build unix

package procexec

import (
	"os"

	"golang.org/x/sys/unix"
)

// Getppid returns the parent process ID.
func (p *RealProcs) Getppid() int {
	return unix.Getppid()
}

// Kill sends SIGKILL to pid.
func (p *RealProcs) Kill(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}

// CanExec is always true on unix.
func (p *RealProcs) CanExec() bool {
	return true
}

// Exec replaces the current process via execve(2), keeping the PID,
// working directory and environment.
func (p *RealProcs) Exec(path string, argv []string) error {
	return unix.Exec(path, argv, os.Environ())
}
