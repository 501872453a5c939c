package fswatch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
)

// Watcher implements ports.DirectoryWatcher on top of fsnotify
type Watcher struct {
	bufferSize int
}

// Verify interface compliance at compile time
var _ ports.DirectoryWatcher = (*Watcher)(nil)

// NewWatcher creates a new fsnotify backed watcher
func NewWatcher() *Watcher {
	return &Watcher{bufferSize: 64}
}

// Watch starts watching dir (non recursive). Only files created after the
// call are reported.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan domain.Arrival, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWatchSetup, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrWatchSetup, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWatchSetup, err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("%w: failed to watch %s: %v", domain.ErrWatchSetup, dir, err)
	}

	logging.Logger.Info("Watching directory", "dir", dir)

	arrivals := make(chan domain.Arrival, w.bufferSize)
	go w.loop(ctx, fsw, dir, arrivals)
	return arrivals, nil
}

// loop forwards create events until ctx is done or fsnotify closes its channels
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, dir string, arrivals chan<- domain.Arrival) {
	defer close(arrivals)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Directory watch cancelled", "dir", dir)
			return

		case event, ok := <-fsw.Events:
			if !ok {
				logging.Logger.Warn("fsnotify event channel closed", "dir", dir)
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}

			arrival, ok := toArrival(event.Name)
			if !ok {
				continue
			}

			select {
			case arrivals <- arrival:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				logging.Logger.Warn("fsnotify error channel closed", "dir", dir)
				return
			}
			// Overflows and transient errors are not fatal
			logging.Logger.Error("Directory watch error", "dir", dir, "error", err)
		}
	}
}

// toArrival stats the created path. Directories and files that are already
// gone are skipped.
func toArrival(path string) (domain.Arrival, bool) {
	info, err := os.Stat(path)
	if err != nil {
		logging.Logger.Debug("Created file vanished before processing", "path", path, "error", err)
		return domain.Arrival{}, false
	}
	if info.IsDir() {
		logging.Logger.Debug("Ignoring created directory", "path", path)
		return domain.Arrival{}, false
	}

	logging.Logger.Debug("File arrived", "path", path)
	return domain.Arrival{
		DetectedAt: time.Now(),
		Path:       path,
	}, true
}
