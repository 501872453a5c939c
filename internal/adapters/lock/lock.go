package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
)

// FileLock implements ports.SessionLock with an advisory lock on a file
type FileLock struct {
	file *os.File
	mu   sync.Mutex
	path string
}

// Verify interface compliance at compile time
var _ ports.SessionLock = (*FileLock)(nil)

// NewFileLock creates a lock backed by path. The file is created on TryLock.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// TryLock acquires the lock without blocking
func (l *FileLock) TryLock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		logging.Logger.Warn("Session lock is held by another process", "path", l.path, "error", err)
		return fmt.Errorf("%w (%s)", domain.ErrSessionLocked, l.path)
	}

	// Owner pid is informational only
	file.Truncate(0)
	file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)

	l.file = file
	logging.Logger.Debug("Session lock acquired", "path", l.path)
	return nil
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := unlockFile(l.file)
	l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("failed to release session lock: %w", err)
	}

	logging.Logger.Debug("Session lock released", "path", l.path)
	return nil
}
