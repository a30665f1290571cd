// Package procexec abstracts the process facilities used to hand the session
// over to a new shell. Production code uses the Procs interface; tests inject
// FakeProcs from testutil.
package procexec

import (
	"errors"
	"os"
	"os/exec"
)

// ErrExecUnsupported is returned by Exec on platforms without an
// exec-in-place primitive.
var ErrExecUnsupported = errors.New("process image replacement not supported on this platform")

// Procs abstracts the OS process facilities.
type Procs interface {
	// Getppid returns the process ID of the caller's parent.
	Getppid() int

	// LookPath searches for an executable named file in PATH.
	LookPath(file string) (string, error)

	// Start launches path as a child process that inherits stdio,
	// environment and working directory. It does not wait for the child.
	Start(path string) (Process, error)

	// Kill forcefully terminates pid with a non-ignorable signal.
	Kill(pid int) error

	// CanExec reports whether Exec is available on this platform.
	CanExec() bool

	// Exec replaces the current process image with path. On success it
	// never returns.
	Exec(path string, argv []string) error
}

// Process is a started child process.
type Process interface {
	Pid() int
	Kill() error
}

// RealProcs uses os/exec and the platform syscalls.
type RealProcs struct{}

var _ Procs = (*RealProcs)(nil)

// LookPath delegates to exec.LookPath.
func (p *RealProcs) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Start runs the command with the current process's stdio and environment.
func (p *RealProcs) Start(path string) (Process, error) {
	cmd := exec.Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &child{cmd: cmd}, nil
}

type child struct {
	cmd *exec.Cmd
}

func (c *child) Pid() int {
	return c.cmd.Process.Pid
}

func (c *child) Kill() error {
	return c.cmd.Process.Kill()
}
