// Package workdir changes the process working directory for the rest of the
// run. Child processes started afterwards inherit it.
package workdir

import (
	"errors"
	"fmt"
	"os"
)

// ErrChdir is returned when the target path does not exist, is not a
// directory, or cannot be entered.
var ErrChdir = errors.New("cannot change directory")

// Change sets path as the current working directory.
func Change(path string) error {
	if err := os.Chdir(path); err != nil {
		return fmt.Errorf("workdir.Change: %w: %w", ErrChdir, err)
	}
	return nil
}
