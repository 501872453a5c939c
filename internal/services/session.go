package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
)

var errWatchClosed = errors.New("directory watch stopped unexpectedly")

// session is the single active watch-and-match execution for one root.
// Its lifetime is bounded by ctx; done is closed once the supervised loop
// has returned and the controller slot has been released.
type session struct {
	cancel    context.CancelFunc
	ctx       context.Context
	done      chan struct{}
	err       error
	group     *errgroup.Group
	id        string
	root      domain.Root
	rules     domain.RuleSet
	startedAt time.Time

	dispatched atomic.Int64
	failed     atomic.Int64
	matched    atomic.Int64
}

// run consumes arrivals until the session is cancelled or the watch breaks.
// Cancellation is only observed between arrivals, never in the middle of a write.
func (s *session) run(
	arrivals <-chan domain.Arrival,
	engine *MatchEngine,
	publish func(domain.DispatchResult),
) error {
	logging.Logger.Info("Session loop started",
		"session_id", s.id,
		"root", s.root.Name,
		"rules", s.rules.Len())

	for {
		select {
		case <-s.ctx.Done():
			logging.Logger.Info("Session loop stopped", "session_id", s.id)
			return nil

		case arrival, ok := <-arrivals:
			if !ok {
				if s.ctx.Err() != nil {
					return nil
				}
				logging.Logger.Error("Directory watch closed", "session_id", s.id, "dir", s.root.IncomingDir)
				return errWatchClosed
			}
			// select picks randomly when both cases are ready
			if s.ctx.Err() != nil {
				logging.Logger.Debug("Discarding arrival received after stop", "path", arrival.Path)
				return nil
			}

			result := engine.Dispatch(s.ctx, s.root, s.rules, arrival)
			s.record(result)
			publish(result)
		}
	}
}

func (s *session) record(result domain.DispatchResult) {
	s.dispatched.Add(1)
	switch result.Outcome {
	case domain.OutcomeMatched:
		s.matched.Add(1)
	case domain.OutcomeFailed:
		s.failed.Add(1)
	}
}

func (s *session) status() domain.SessionStatus {
	root := s.root
	return domain.SessionStatus{
		Dispatched: int(s.dispatched.Load()),
		Failed:     int(s.failed.Load()),
		ID:         s.id,
		Matched:    int(s.matched.Load()),
		Root:       &root,
		Running:    true,
		Rules:      s.rules.Len(),
		StartedAt:  s.startedAt,
	}
}
