package ports

// SessionLock guards against a second process running a session on the same host
type SessionLock interface {
	// TryLock returns domain.ErrSessionLocked when another process holds the lock
	TryLock() error
	Unlock() error
}
