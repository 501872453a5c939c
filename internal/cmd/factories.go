package cmd

import (
	adapterfswatch "github.com/renato0307/sftpbot/internal/adapters/fswatch"
	adapterlock "github.com/renato0307/sftpbot/internal/adapters/lock"
	adapterstorage "github.com/renato0307/sftpbot/internal/adapters/storage"
	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
	"github.com/renato0307/sftpbot/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CatalogService *services.CatalogService
	Lifecycle      *services.LifecycleController

	// Internal - for cleanup only
	rootRepo ports.RootRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	rootRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	opts := services.LifecycleOptions{
		CreateDirectories: settings.ShouldCreateDirectories(),
	}
	if settings.ShouldLockSession() {
		opts.Lock = adapterlock.NewFileLock(config.GetLockPath())
	}
	logging.Logger.Debug("Lifecycle options",
		"create_directories", opts.CreateDirectories,
		"session_lock", opts.Lock != nil)

	watcher := adapterfswatch.NewWatcher()
	engine := services.NewMatchEngine()

	return &Container{
		CatalogService: services.NewCatalogService(rootRepo),
		Lifecycle:      services.NewLifecycleController(rootRepo, rootRepo, watcher, engine, opts),
		rootRepo:       rootRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.rootRepo != nil {
		return c.rootRepo.Close()
	}
	return nil
}
