package ports

import (
	"context"

	"github.com/renato0307/sftpbot/internal/domain"
)

// DirectoryWatcher observes a directory for newly created files
type DirectoryWatcher interface {
	// Watch fails fast when dir cannot be watched. The returned channel yields
	// one arrival per created file and is closed when ctx is done or the
	// underlying watch breaks.
	Watch(ctx context.Context, dir string) (<-chan domain.Arrival, error)
}
