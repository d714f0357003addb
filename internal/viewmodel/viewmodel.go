package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/logging"
	"github.com/thruflo/onboard/internal/progress"
	"github.com/thruflo/onboard/internal/stream"
)

// ErrAlreadyRunning is returned when Run is called a second time.
var ErrAlreadyRunning = errors.New("view model already running")

// ProgressSource is the part of progress.Store the view model needs.
type ProgressSource interface {
	ObserveProgress(ctx context.Context) <-chan progress.Progress
	MarkStepCompleted(ctx context.Context, stepID string) error
	SetCurrentStep(ctx context.Context, stepID string) error
}

// WriteErrorFunc is called when a fire-and-forget write fails. op is
// "mark_completed" or "set_current".
type WriteErrorFunc func(op, stepID string, err error)

const (
	OpMarkCompleted = "mark_completed"
	OpSetCurrent    = "set_current"
)

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithOnWriteError registers a callback for failed writes.
func WithOnWriteError(fn WriteErrorFunc) Option {
	return func(vm *ViewModel) {
		vm.onWriteError = fn
	}
}

// WithLogger sets the logger used for write failures.
func WithLogger(l *logging.Logger) Option {
	return func(vm *ViewModel) {
		vm.log = l
	}
}

// ViewModel mediates between a ProgressSource, the step catalog and the
// presentation layer.
type ViewModel struct {
	source       ProgressSource
	steps        []catalog.Step
	log          *logging.Logger
	onWriteError WriteErrorFunc

	mu    sync.RWMutex
	state UIState

	hub     *stream.Hub[UIState]
	ready   chan struct{}
	started sync.Once
	writes  sync.WaitGroup
}

// New creates a ViewModel over steps. It stays in the loading state until
// Run receives the first progress snapshot.
func New(source ProgressSource, steps []catalog.Step, opts ...Option) *ViewModel {
	owned := make([]catalog.Step, len(steps))
	copy(owned, steps)

	initial := loadingState(owned)
	vm := &ViewModel{
		source: source,
		steps:  owned,
		log:    logging.With("component", "viewmodel"),
		state:  initial,
		hub:    stream.NewHubWith(initial),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Run subscribes to the progress source and recomputes the UIState for
// every snapshot until ctx is cancelled or the source's stream ends. Each
// snapshot is fully applied before the next is read. Run may only be
// called once; on return the Updates channels are closed.
func (vm *ViewModel) Run(ctx context.Context) error {
	err := ErrAlreadyRunning
	vm.started.Do(func() {
		err = nil
	})
	if err != nil {
		return err
	}
	defer vm.hub.Close()

	snapshots := vm.source.ObserveProgress(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-snapshots:
			if !ok {
				return nil
			}
			vm.apply(p)
		}
	}
}

func (vm *ViewModel) apply(p progress.Progress) {
	next := NewState(vm.steps, p)

	vm.mu.Lock()
	wasLoading := vm.state.IsLoading
	vm.state = next
	vm.mu.Unlock()

	if wasLoading {
		close(vm.ready)
	}
	vm.log.Debug("ui state updated",
		"completed", next.CompletedCount(), "total", len(next.Steps))
	vm.hub.Publish(next)
}

// Ready is closed once the first progress snapshot has been applied.
func (vm *ViewModel) Ready() <-chan struct{} {
	return vm.ready
}

// State returns the current UIState.
func (vm *ViewModel) State() UIState {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.state
}

// Updates returns a channel that receives the current UIState and then
// every recomputed state.
func (vm *ViewModel) Updates(ctx context.Context) <-chan UIState {
	return vm.hub.Subscribe(ctx)
}

// ProgressPercentage returns the completed fraction of the current state.
func (vm *ViewModel) ProgressPercentage() float64 {
	return vm.State().ProgressPercentage()
}

// NextIncompleteStep returns the lowest-order incomplete step.
func (vm *ViewModel) NextIncompleteStep() (StepState, bool) {
	return vm.State().NextIncompleteStep()
}

// StepsByCategory groups the current steps by category.
func (vm *ViewModel) StepsByCategory() map[catalog.Category][]StepState {
	return vm.State().StepsByCategory()
}

// Step looks up one step of the current state by id.
func (vm *ViewModel) Step(id string) (StepState, bool) {
	return vm.State().Step(id)
}

// MarkStepCompleted asks the source to mark stepID complete without
// waiting for the result.
func (vm *ViewModel) MarkStepCompleted(ctx context.Context, stepID string) {
	vm.dispatch(ctx, OpMarkCompleted, stepID, vm.source.MarkStepCompleted)
}

// SetCurrentStep asks the source to set the current step without waiting
// for the result.
func (vm *ViewModel) SetCurrentStep(ctx context.Context, stepID string) {
	vm.dispatch(ctx, OpSetCurrent, stepID, vm.source.SetCurrentStep)
}

// Wait blocks until every dispatched write has finished.
func (vm *ViewModel) Wait() {
	vm.writes.Wait()
}

func (vm *ViewModel) dispatch(ctx context.Context, op, stepID string, write func(context.Context, string) error) {
	// Writes are not tied to the caller's lifetime.
	ctx = context.WithoutCancel(ctx)

	vm.writes.Add(1)
	go func() {
		defer vm.writes.Done()
		if err := write(ctx, stepID); err != nil {
			vm.log.Error("progress write failed", "op", op, "step", stepID, "error", err)
			if vm.onWriteError != nil {
				vm.onWriteError(op, stepID, err)
			}
		}
	}()
}
