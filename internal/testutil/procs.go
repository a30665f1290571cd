package testutil

import (
	"fmt"
	"strings"

	"github.com/hbjs97/goto/internal/procexec"
)

// FakeProcs records process operations and returns pre-configured results
// for testing.
type FakeProcs struct {
	// ParentPID is returned by Getppid.
	ParentPID int

	// ChildPID is assigned to processes returned by Start.
	ChildPID int

	// Paths maps executable names to LookPath results. Names missing
	// from the map are not found.
	Paths map[string]string

	// StartErr, KillErr, ChildKillErr and ExecErr are returned by the
	// corresponding operations.
	StartErr     error
	KillErr      error
	ChildKillErr error
	ExecErr      error

	// ExecUnsupported makes CanExec report false.
	ExecUnsupported bool

	// Calls records all operations that were executed, in order.
	Calls []string

	// Started holds the processes returned by Start.
	Started []*FakeProcess
}

var _ procexec.Procs = (*FakeProcs)(nil)

// NewFakeProcs creates a FakeProcs with the given parent PID and an empty
// PATH.
func NewFakeProcs(parentPID int) *FakeProcs {
	return &FakeProcs{
		ParentPID: parentPID,
		ChildPID:  parentPID + 1,
		Paths:     make(map[string]string),
	}
}

// Register makes name resolvable by LookPath.
func (f *FakeProcs) Register(name, path string) {
	f.Paths[name] = path
}

// Getppid returns ParentPID.
func (f *FakeProcs) Getppid() int {
	f.Calls = append(f.Calls, "getppid")
	return f.ParentPID
}

// LookPath resolves name from Paths. Absolute paths resolve to themselves
// when registered under their own name.
func (f *FakeProcs) LookPath(name string) (string, error) {
	f.Calls = append(f.Calls, "lookpath "+name)
	if path, ok := f.Paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("FakeProcs: %q: executable file not found in $PATH", name)
}

// Start records the call and returns a FakeProcess unless StartErr is set.
func (f *FakeProcs) Start(path string) (procexec.Process, error) {
	f.Calls = append(f.Calls, "start "+path)
	if f.StartErr != nil {
		return nil, f.StartErr
	}
	p := &FakeProcess{Path: path, PID: f.ChildPID, KillErr: f.ChildKillErr, owner: f}
	f.Started = append(f.Started, p)
	return p, nil
}

// Kill records the call and returns KillErr.
func (f *FakeProcs) Kill(pid int) error {
	f.Calls = append(f.Calls, fmt.Sprintf("kill %d", pid))
	return f.KillErr
}

// CanExec reports !ExecUnsupported.
func (f *FakeProcs) CanExec() bool {
	return !f.ExecUnsupported
}

// Exec records the call and returns ExecErr. Unlike the real call it
// returns nil on success so tests can continue.
func (f *FakeProcs) Exec(path string, argv []string) error {
	f.Calls = append(f.Calls, "exec "+path+" "+strings.Join(argv, " "))
	if f.ExecUnsupported {
		return procexec.ErrExecUnsupported
	}
	return f.ExecErr
}

// Called returns true if an operation matching the given prefix was executed.
func (f *FakeProcs) Called(prefix string) bool {
	for _, call := range f.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// FakeProcess is a child returned by FakeProcs.Start.
type FakeProcess struct {
	Path    string
	PID     int
	KillErr error
	Killed  bool
	owner   *FakeProcs
}

// Pid returns PID.
func (p *FakeProcess) Pid() int {
	return p.PID
}

// Kill records the call and returns KillErr.
func (p *FakeProcess) Kill() error {
	p.owner.Calls = append(p.owner.Calls, fmt.Sprintf("kill-child %d", p.PID))
	if p.KillErr != nil {
		return p.KillErr
	}
	p.Killed = true
	return nil
}
