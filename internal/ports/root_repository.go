package ports

import (
	"context"

	"github.com/renato0307/sftpbot/internal/domain"
)

// RootReader reads root configurations
type RootReader interface {
	GetRoot(ctx context.Context, id uint) (*domain.Root, error)
	ListRoots(ctx context.Context) ([]domain.Root, error)
}

// RootWriter creates and deletes root configurations
type RootWriter interface {
	AddRoot(ctx context.Context, root domain.Root) (*domain.Root, error)
	DeleteRoot(ctx context.Context, id uint) error
}

// TestCaseReader reads test cases
type TestCaseReader interface {
	// ListTestCases returns the test cases owned by rootID ordered by position then id
	ListTestCases(ctx context.Context, rootID uint) ([]domain.TestCase, error)
}

// TestCaseWriter creates and deletes test cases
type TestCaseWriter interface {
	AddTestCase(ctx context.Context, tc domain.TestCase) (*domain.TestCase, error)
	DeleteTestCase(ctx context.Context, id uint) error
}

// RootRepository is the composite interface
type RootRepository interface {
	RootReader
	RootWriter
	TestCaseReader
	TestCaseWriter
	Close() error
}
