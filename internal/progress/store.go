package progress

import (
	"context"
	"sync"
	"time"

	"github.com/thruflo/onboard/internal/logging"
	"github.com/thruflo/onboard/internal/stream"
)

// Store owns the persisted Progress record. It serializes every
// read-modify-write cycle against the backend and publishes a snapshot to
// subscribers after each successful change.
type Store struct {
	backend Backend
	log     *logging.Logger
	now     func() time.Time

	// mu serializes mutations and guards current and closed.
	mu      sync.Mutex
	current Progress
	closed  bool

	hub *stream.Hub[Progress]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage failures.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore loads the initial record from backend. A read failure is logged
// and replaced by DefaultProgress, so a Store is always usable.
func NewStore(ctx context.Context, backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     logging.With("component", "progress"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	initial, err := backend.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load progress, using defaults",
			"path", backend.Path(), "error", err)
		initial = DefaultProgress()
	}
	if initial.CompletedSteps == nil {
		initial.CompletedSteps = NewStepSet()
	}

	s.current = initial
	s.hub = stream.NewHubWith(initial.Clone())
	return s
}

// ObserveProgress returns a channel that immediately receives the current
// snapshot and then a new snapshot after every successful mutation. The
// channel is closed when ctx is cancelled or the Store is closed.
func (s *Store) ObserveProgress(ctx context.Context) <-chan Progress {
	s.log.Debug("progress subscriber registered")
	return s.hub.SubscribeFunc(ctx, func() {
		s.log.Debug("progress subscriber released")
	})
}

// Progress returns a copy of the current snapshot.
func (s *Store) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// MarkStepCompleted adds stepID to the completed set. Marking a step that is
// already complete writes nothing and emits nothing. The id is not checked
// against the catalog.
func (s *Store) MarkStepCompleted(ctx context.Context, stepID string) error {
	return s.update(ctx, KeyCompletedSteps, func(p Progress) (Progress, bool) {
		if p.CompletedSteps.Has(stepID) {
			return p, false
		}
		p.CompletedSteps[stepID] = struct{}{}
		return p, true
	})
}

// SetCurrentStep replaces the current step with stepID verbatim, writing
// even when the value is unchanged so LastUpdated always advances. An empty
// id clears the current step.
func (s *Store) SetCurrentStep(ctx context.Context, stepID string) error {
	return s.update(ctx, KeyCurrentStep, func(p Progress) (Progress, bool) {
		p.CurrentStep = stepID
		return p, true
	})
}

// update runs one serialized read-modify-write cycle. The backend is
// re-read first so changes made by another process are not overwritten.
func (s *Store) update(ctx context.Context, key string, fn func(Progress) (Progress, bool)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	base := s.current.Clone()
	if fresh, err := s.backend.Load(ctx); err == nil {
		base = fresh
	} else {
		s.log.Warn("failed to reload progress before write, using last snapshot",
			"key", key, "error", err)
	}

	if base.CompletedSteps == nil {
		base.CompletedSteps = NewStepSet()
	}

	next, changed := fn(base.Clone())
	if !changed {
		s.adopt(base)
		return nil
	}

	next.LastUpdated = s.now()
	if err := s.backend.Save(ctx, next); err != nil {
		s.log.Error("failed to save progress", "key", key, "error", err)
		return &StorageError{Op: OpWrite, Key: key, Err: err}
	}

	s.current = next
	s.hub.Publish(next.Clone())
	return nil
}

// Reload re-reads the backend and publishes the result if it differs from
// the current snapshot. It reports whether a new snapshot was published. A
// read failure leaves the current snapshot in place.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrClosed
	}

	fresh, err := s.backend.Load(ctx)
	if err != nil {
		s.log.Warn("failed to reload progress", "path", s.backend.Path(), "error", err)
		return false, &StorageError{Op: OpRead, Err: err}
	}
	if fresh.CompletedSteps == nil {
		fresh.CompletedSteps = NewStepSet()
	}

	return s.adopt(fresh), nil
}

// adopt makes p current and publishes it if it differs. Caller holds mu.
func (s *Store) adopt(p Progress) bool {
	if p.Equal(s.current) {
		return false
	}
	s.log.Debug("progress changed outside this store",
		"completed", p.CompletedSteps.Len(), "current", p.CurrentStep)
	s.current = p
	s.hub.Publish(p.Clone())
	return true
}

// Path returns the backend's file path, or "" for in-memory storage.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Close releases subscribers and the backend. Further mutations fail with
// ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.hub.Close()
	return s.backend.Close()
}
