package domain

import "time"

// SessionStatus is a snapshot of the lifecycle controller state
type SessionStatus struct {
	Dispatched int
	Failed     int
	ID         string
	LastError  error
	Matched    int
	Root       *Root
	Running    bool
	Rules      int
	StartedAt  time.Time
}
