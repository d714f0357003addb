package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/thruflo/onboard/internal/viewmodel"
)

// ErrNotTerminal is returned by Run when input is not an interactive
// terminal, for example when stdin is piped.
var ErrNotTerminal = errors.New("tui requires a terminal")

// View represents the current TUI view.
type View int

const (
	ViewChecklist View = iota
	ViewDetail
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewChecklist:
		return "checklist"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Model is the view-model surface the TUI renders and drives.
type Model interface {
	State() viewmodel.UIState
	Updates(ctx context.Context) <-chan viewmodel.UIState
	MarkStepCompleted(ctx context.Context, stepID string)
	SetCurrentStep(ctx context.Context, stepID string)
}

// TUI manages the terminal user interface.
type TUI struct {
	terminal  *Terminal
	keyReader *KeyReader
	model     Model

	mu        sync.Mutex
	state     viewmodel.UIState
	view      View
	cursor    int
	status    string
	width     int
	height    int
	running   bool
	checklist *ChecklistView
	detail    *DetailView

	redraw chan struct{}
}

// NewTUI creates a TUI that renders model to out.
func NewTUI(out io.Writer, model Model) *TUI {
	return &TUI{
		terminal:  NewTerminal(out),
		model:     model,
		state:     model.State(),
		view:      ViewChecklist,
		width:     80,
		height:    24,
		checklist: &ChecklistView{},
		detail:    &DetailView{},
		redraw:    make(chan struct{}, 1),
	}
}

// SetState replaces the rendered state and keeps the cursor in range.
func (t *TUI) SetState(state viewmodel.UIState) {
	t.mu.Lock()
	t.state = state
	if n := len(state.Steps); t.cursor >= n {
		t.cursor = max(0, n-1)
	}
	t.mu.Unlock()
}

// GetState returns the rendered state.
func (t *TUI) GetState() viewmodel.UIState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// GetView returns the current view.
func (t *TUI) GetView() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Cursor returns the index of the selected step in display order.
func (t *TUI) Cursor() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor
}

// Status returns the status line text.
func (t *TUI) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Selected returns the step under the cursor.
func (t *TUI) Selected() (viewmodel.StepState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedLocked()
}

func (t *TUI) selectedLocked() (viewmodel.StepState, bool) {
	steps := DisplayOrder(t.state)
	if t.cursor < 0 || t.cursor >= len(steps) {
		return viewmodel.StepState{}, false
	}
	return steps[t.cursor], true
}

// ReportWriteError shows a failed write on the status line. It is safe to
// call from any goroutine.
func (t *TUI) ReportWriteError(op, stepID string, err error) {
	t.mu.Lock()
	t.status = fmt.Sprintf("could not save %s for %s: %v", op, stepID, err)
	t.mu.Unlock()
	t.requestRedraw()
}

func (t *TUI) requestRedraw() {
	select {
	case t.redraw <- struct{}{}:
	default:
	}
}

// Render returns the lines for the current view.
func (t *TUI) Render() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renderLocked()
}

func (t *TUI) renderLocked() []string {
	if t.view == ViewDetail {
		step, ok := t.selectedLocked()
		return t.detail.Render(step, ok, t.status, t.width)
	}
	return t.checklist.Render(t.state, t.cursor, t.status, t.width, t.height)
}

// Update redraws the current view.
func (t *TUI) Update() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	if width, height, err := t.terminal.Size(); err == nil {
		t.width = width
		t.height = height
	}

	t.terminal.Clear()
	t.terminal.HideCursor()
	for _, line := range t.renderLocked() {
		t.terminal.WriteLine(line)
	}
}

// Run starts the TUI event loop.
// It returns when the context is cancelled or the user quits.
func (t *TUI) Run(ctx context.Context) error {
	if !t.terminal.IsTerminal() {
		return ErrNotTerminal
	}
	if err := t.terminal.EnterRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer t.terminal.ExitRaw()
	defer t.terminal.ShowCursor()

	t.mu.Lock()
	t.running = true
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	t.keyReader = NewKeyReader(t.terminal)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := t.model.Updates(ctx)

	t.Update()

	keyCh := make(chan KeyEvent, 10)
	keyErr := make(chan error, 1)

	// ReadKey cannot be interrupted; the goroutine ends with the process
	// or on the next key press after Run returns.
	go func() {
		for {
			ev, err := t.keyReader.ReadKey()
			if err != nil {
				keyErr <- err
				return
			}
			select {
			case keyCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-keyErr:
			// Reader error is usually EOF, which is expected on exit
			if err == io.EOF {
				return nil
			}
			return err

		case state, ok := <-updates:
			if !ok {
				return nil
			}
			t.SetState(state)
			t.Update()

		case <-t.redraw:
			t.Update()

		case ev := <-keyCh:
			if quit := t.handleKeyEvent(ctx, ev); quit {
				return nil
			}
			t.Update()
		}
	}
}

// handleKeyEvent applies a key press and reports whether the TUI should
// exit.
func (t *TUI) handleKeyEvent(ctx context.Context, ev KeyEvent) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := len(t.state.Steps)

	switch ParseShortcut(ev) {
	case ShortcutQuit:
		return true

	case ShortcutEscape:
		if t.view == ViewDetail {
			t.view = ViewChecklist
			return false
		}
		return true

	case ShortcutUp:
		if t.view == ViewChecklist && t.cursor > 0 {
			t.cursor--
		}

	case ShortcutDown:
		if t.view == ViewChecklist && t.cursor < total-1 {
			t.cursor++
		}

	case ShortcutToggleDetail:
		if t.view == ViewDetail {
			t.view = ViewChecklist
		} else if total > 0 {
			t.view = ViewDetail
		}

	case ShortcutMarkDone:
		if step, ok := t.selectedLocked(); ok {
			t.status = ""
			t.model.MarkStepCompleted(ctx, step.ID)
		}

	case ShortcutSetCurrent:
		if step, ok := t.selectedLocked(); ok {
			t.status = ""
			t.model.SetCurrentStep(ctx, step.ID)
		}

	case ShortcutNext:
		next, ok := t.state.NextIncompleteStep()
		if !ok {
			break
		}
		for i, step := range DisplayOrder(t.state) {
			if step.ID == next.ID {
				t.cursor = i
				break
			}
		}
	}
	return false
}

// IsRunning returns whether the TUI is currently running.
func (t *TUI) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
