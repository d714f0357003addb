package viewmodel

import (
	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/progress"
)

// StepState is a catalog step annotated with its progress.
type StepState struct {
	catalog.Step
	IsCompleted bool
	IsCurrent   bool
}

// UIState is the derived snapshot handed to the presentation layer.
type UIState struct {
	Steps     []StepState
	Progress  progress.Progress
	IsLoading bool
}

// CategoryGroup is one category's steps in catalog order.
type CategoryGroup struct {
	Category catalog.Category
	Steps    []StepState
}

// loadingState is the state before the first progress snapshot arrives.
func loadingState(steps []catalog.Step) UIState {
	return UIState{
		Steps:     annotate(steps, progress.DefaultProgress()),
		Progress:  progress.DefaultProgress(),
		IsLoading: true,
	}
}

// NewState derives the ready state for one progress snapshot.
func NewState(steps []catalog.Step, p progress.Progress) UIState {
	return UIState{
		Steps:     annotate(steps, p),
		Progress:  p,
		IsLoading: false,
	}
}

func annotate(steps []catalog.Step, p progress.Progress) []StepState {
	out := make([]StepState, len(steps))
	for i, s := range steps {
		out[i] = StepState{
			Step:        s,
			IsCompleted: p.IsCompleted(s.ID),
			IsCurrent:   p.HasCurrentStep() && p.CurrentStep == s.ID,
		}
	}
	return out
}

// CompletedCount returns the number of completed steps.
func (s UIState) CompletedCount() int {
	n := 0
	for _, step := range s.Steps {
		if step.IsCompleted {
			n++
		}
	}
	return n
}

// ProgressPercentage returns the completed fraction in [0,1]. It is 0 when
// there are no steps.
func (s UIState) ProgressPercentage() float64 {
	if len(s.Steps) == 0 {
		return 0
	}
	return float64(s.CompletedCount()) / float64(len(s.Steps))
}

// NextIncompleteStep returns the incomplete step with the lowest Order.
// Equal orders resolve to the step that comes first in the catalog.
func (s UIState) NextIncompleteStep() (StepState, bool) {
	var (
		next  StepState
		found bool
	)
	for _, step := range s.Steps {
		if step.IsCompleted {
			continue
		}
		if !found || step.Order < next.Order {
			next = step
			found = true
		}
	}
	return next, found
}

// StepsByCategory groups steps by category, keeping catalog order within
// each group.
func (s UIState) StepsByCategory() map[catalog.Category][]StepState {
	groups := make(map[catalog.Category][]StepState)
	for _, step := range s.Steps {
		groups[step.Category] = append(groups[step.Category], step)
	}
	return groups
}

// CategoryGroups returns the same partition as StepsByCategory, ordered by
// each category's first appearance in the catalog.
func (s UIState) CategoryGroups() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[catalog.Category]int)
	for _, step := range s.Steps {
		i, ok := index[step.Category]
		if !ok {
			i = len(groups)
			index[step.Category] = i
			groups = append(groups, CategoryGroup{Category: step.Category})
		}
		groups[i].Steps = append(groups[i].Steps, step)
	}
	return groups
}

// Step looks up one step by id.
func (s UIState) Step(id string) (StepState, bool) {
	for _, step := range s.Steps {
		if step.ID == id {
			return step, true
		}
	}
	return StepState{}, false
}

// CurrentStep returns the current step when it names a catalog step.
func (s UIState) CurrentStep() (StepState, bool) {
	if !s.Progress.HasCurrentStep() {
		return StepState{}, false
	}
	return s.Step(s.Progress.CurrentStep)
}
