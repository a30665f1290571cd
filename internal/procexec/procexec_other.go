//go:build !unix

package procexec

import "os"

// Getppid returns the parent process ID.
func (p *RealProcs) Getppid() int {
	return os.Getppid()
}

// Kill terminates pid through os.Process.
func (p *RealProcs) Kill(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}

// CanExec is false: there is no exec-in-place primitive here.
func (p *RealProcs) CanExec() bool {
	return false
}

// Exec always fails with ErrExecUnsupported.
func (p *RealProcs) Exec(path string, argv []string) error {
	return ErrExecUnsupported
}
