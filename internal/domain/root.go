package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Root is a configured triple of directories under test
type Root struct {
	CreatedAt   time.Time
	ErrorDir    string
	ID          uint
	IncomingDir string
	Name        string
	OutgoingDir string
}

// Validate checks that all three directories are set and that incoming is
// distinct from outgoing and error
func (r Root) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRoot)
	}
	if r.IncomingDir == "" || r.OutgoingDir == "" || r.ErrorDir == "" {
		return fmt.Errorf("%w: incoming, outgoing and error directories are required", ErrInvalidRoot)
	}

	incoming := filepath.Clean(r.IncomingDir)
	if incoming == filepath.Clean(r.OutgoingDir) {
		return fmt.Errorf("%w: incoming and outgoing directories must differ", ErrInvalidRoot)
	}
	if incoming == filepath.Clean(r.ErrorDir) {
		return fmt.Errorf("%w: incoming and error directories must differ", ErrInvalidRoot)
	}
	return nil
}

// Dirs returns the incoming, outgoing and error directories in that order
func (r Root) Dirs() []string {
	return []string{r.IncomingDir, r.OutgoingDir, r.ErrorDir}
}

// DirFor resolves a test case target to one of the root's directories.
// Anything other than TargetOutgoing lands in the error directory.
func (r Root) DirFor(target Target) string {
	if target == TargetOutgoing {
		return r.OutgoingDir
	}
	return r.ErrorDir
}
