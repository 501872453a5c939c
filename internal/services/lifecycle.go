package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
)

// LifecycleOptions configures a LifecycleController
type LifecycleOptions struct {
	// CreateDirectories makes the three root directories before watching
	CreateDirectories bool
	// Lock, when set, is held for the whole session
	Lock ports.SessionLock
}

// BeginResult is returned by Begin
type BeginResult struct {
	// AlreadyRunning is true when Begin found an active session and started nothing
	AlreadyRunning bool
	Root           domain.Root
	Rules          int
	SessionID      string
}

// EndResult is returned by End
type EndResult struct {
	Dispatched int
	Root       *domain.Root
	SessionID  string
	Stopped    bool
}

// LifecycleController owns the single running session
type LifecycleController struct {
	caseReader ports.TestCaseReader
	engine     *MatchEngine
	opts       LifecycleOptions
	rootReader ports.RootReader
	watcher    ports.DirectoryWatcher

	mu      sync.Mutex
	current *session
	lastErr error

	subsMu  sync.Mutex
	subs    map[int]chan domain.DispatchResult
	nextSub int
}

// NewLifecycleController creates a new LifecycleController
func NewLifecycleController(
	rootReader ports.RootReader,
	caseReader ports.TestCaseReader,
	watcher ports.DirectoryWatcher,
	engine *MatchEngine,
	opts LifecycleOptions,
) *LifecycleController {
	return &LifecycleController{
		caseReader: caseReader,
		engine:     engine,
		opts:       opts,
		rootReader: rootReader,
		subs:       make(map[int]chan domain.DispatchResult),
		watcher:    watcher,
	}
}

// Begin starts a session for rootID. An unknown rootID fails with
// ErrRootNotFound even while a session runs; otherwise a running session is
// returned as is and nothing starts.
func (c *LifecycleController) Begin(ctx context.Context, rootID uint) (BeginResult, error) {
	logging.Logger.Info("Begin requested", "root_id", rootID)

	// Held for the whole setup so concurrent Begin calls cannot both start a watcher
	c.mu.Lock()
	defer c.mu.Unlock()

	root, err := c.rootReader.GetRoot(ctx, rootID)
	if err != nil {
		logging.Logger.Error("Failed to load root", "root_id", rootID, "error", err)
		return BeginResult{}, fmt.Errorf("failed to load root: %w", err)
	}

	if s := c.current; s != nil {
		logging.Logger.Info("Session already running, ignoring begin",
			"requested_root_id", rootID,
			"running_root", s.root.Name,
			"session_id", s.id)
		return BeginResult{
			AlreadyRunning: true,
			Root:           s.root,
			Rules:          s.rules.Len(),
			SessionID:      s.id,
		}, nil
	}

	if err := root.Validate(); err != nil {
		return BeginResult{}, err
	}

	if err := c.prepareDirectories(*root); err != nil {
		return BeginResult{}, err
	}

	cases, err := c.caseReader.ListTestCases(ctx, root.ID)
	if err != nil {
		logging.Logger.Error("Failed to load test cases", "root", root.Name, "error", err)
		return BeginResult{}, fmt.Errorf("failed to load test cases: %w", err)
	}
	rules := domain.LoadRuleSet(*root, cases)

	if c.opts.Lock != nil {
		if err := c.opts.Lock.TryLock(); err != nil {
			return BeginResult{}, err
		}
	}

	// The session outlives the request that started it
	sessionCtx, cancel := context.WithCancel(context.Background())
	arrivals, err := c.watcher.Watch(sessionCtx, root.IncomingDir)
	if err != nil {
		cancel()
		c.releaseLock()
		logging.Logger.Error("Failed to start directory watch", "dir", root.IncomingDir, "error", err)
		if !errors.Is(err, domain.ErrWatchSetup) {
			err = fmt.Errorf("%w: %v", domain.ErrWatchSetup, err)
		}
		return BeginResult{}, err
	}

	group, groupCtx := errgroup.WithContext(sessionCtx)
	s := &session{
		cancel:    cancel,
		ctx:       groupCtx,
		done:      make(chan struct{}),
		group:     group,
		id:        uuid.New().String(),
		root:      *root,
		rules:     rules,
		startedAt: time.Now(),
	}
	group.Go(func() error {
		return s.run(arrivals, c.engine, c.publish)
	})

	c.current = s
	c.lastErr = nil
	go c.supervise(s)

	logging.Logger.Info("Session started",
		"session_id", s.id,
		"root", root.Name,
		"incoming", root.IncomingDir,
		"rules", rules.Len())

	return BeginResult{
		Root:      *root,
		Rules:     rules.Len(),
		SessionID: s.id,
	}, nil
}

// End cancels the running session and waits until its loop has returned.
// Calling End while idle is a no-op.
func (c *LifecycleController) End() EndResult {
	c.mu.Lock()
	s := c.current
	c.mu.Unlock()

	if s == nil {
		logging.Logger.Info("End requested but no session is running")
		return EndResult{}
	}

	logging.Logger.Info("Stopping session", "session_id", s.id, "root", s.root.Name)
	s.cancel()
	<-s.done

	root := s.root
	return EndResult{
		Dispatched: int(s.dispatched.Load()),
		Root:       &root,
		SessionID:  s.id,
		Stopped:    true,
	}
}

// Status reports the running session, or the error that ended the last one
func (c *LifecycleController) Status() domain.SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return domain.SessionStatus{LastError: c.lastErr}
	}
	st := c.current.status()
	st.LastError = c.lastErr
	return st
}

// Done returns a channel closed when the running session ends, or nil when idle
func (c *LifecycleController) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	return c.current.done
}

// Subscribe registers an observer of dispatch results. Results are dropped
// for subscribers that do not keep up.
func (c *LifecycleController) Subscribe() (<-chan domain.DispatchResult, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan domain.DispatchResult, 32)
	c.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			c.subsMu.Lock()
			defer c.subsMu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, unsubscribe
}

func (c *LifecycleController) publish(result domain.DispatchResult) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- result:
		default:
			// Subscriber is behind, skip
		}
	}
}

// supervise waits for the session's task group and releases the slot
func (c *LifecycleController) supervise(s *session) {
	err := s.group.Wait()
	s.cancel()
	s.err = err
	c.releaseLock()

	c.mu.Lock()
	if c.current == s {
		c.current = nil
	}
	if err != nil {
		c.lastErr = err
		logging.Logger.Error("Session ended with error", "session_id", s.id, "error", err)
	}
	c.mu.Unlock()

	logging.Logger.Info("Session finished",
		"session_id", s.id,
		"root", s.root.Name,
		"dispatched", s.dispatched.Load(),
		"matched", s.matched.Load(),
		"failed", s.failed.Load(),
		"duration", time.Since(s.startedAt).String())
	close(s.done)
}

// prepareDirectories optionally creates the root directories and requires
// the incoming directory to exist
func (c *LifecycleController) prepareDirectories(root domain.Root) error {
	if c.opts.CreateDirectories {
		for _, dir := range root.Dirs() {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logging.Logger.Error("Failed to create root directory", "dir", dir, "error", err)
				return fmt.Errorf("%w: failed to create %s: %v", domain.ErrWatchSetup, dir, err)
			}
		}
		logging.Logger.Debug("Root directories ready",
			"incoming", root.IncomingDir,
			"outgoing", root.OutgoingDir,
			"error", root.ErrorDir)
	}

	info, err := os.Stat(root.IncomingDir)
	if err != nil {
		return fmt.Errorf("%w: incoming directory: %v", domain.ErrWatchSetup, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: incoming %s is not a directory", domain.ErrWatchSetup, root.IncomingDir)
	}

	for _, dir := range []string{root.OutgoingDir, root.ErrorDir} {
		if _, err := os.Stat(dir); err != nil {
			// Writes into it will fail per arrival and be logged
			logging.Logger.Warn("Output directory is not accessible", "dir", dir, "error", err)
		}
	}
	return nil
}

func (c *LifecycleController) releaseLock() {
	if c.opts.Lock == nil {
		return
	}
	if err := c.opts.Lock.Unlock(); err != nil {
		logging.Logger.Warn("Failed to release session lock", "error", err)
	}
}
