package domain

import "errors"

var (
	ErrInvalidRoot      = errors.New("invalid root")
	ErrInvalidTestCase  = errors.New("invalid test case")
	ErrRootExists       = errors.New("root already exists")
	ErrRootNotFound     = errors.New("root not found")
	ErrSessionLocked    = errors.New("another sftpbot process holds the session lock")
	ErrTestCaseNotFound = errors.New("test case not found")
	ErrWatchSetup       = errors.New("failed to set up directory watch")
)
