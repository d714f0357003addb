// Package progress persists which onboarding steps are complete and which
// step is current, and streams snapshots of that record to subscribers.
package progress

import (
	"sort"
	"time"
)

// Persisted keys. Every backend stores the record under these names.
const (
	KeyCompletedSteps = "completed_steps"
	KeyCurrentStep    = "current_step"
	KeyLastUpdated    = "last_updated"
)

// StepSet is an unordered set of step ids.
type StepSet map[string]struct{}

// NewStepSet returns a set holding ids.
func NewStepSet(ids ...string) StepSet {
	s := make(StepSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set is empty.
func (s StepSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s StepSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s StepSet) Clone() StepSet {
	c := make(StepSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Sorted returns the ids in lexical order.
func (s StepSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equal reports whether both sets hold the same ids.
func (s StepSet) Equal(other StepSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Progress is a snapshot of the persisted onboarding record. Snapshots
// handed out by the Store are shared between subscribers and must be
// treated as read-only.
type Progress struct {
	CompletedSteps StepSet
	// CurrentStep is the step the intern is working on; empty means none.
	CurrentStep string
	// LastUpdated is the time of the last successful mutation; zero if the
	// record has never been written.
	LastUpdated time.Time
}

// DefaultProgress is the record used when nothing has been persisted.
func DefaultProgress() Progress {
	return Progress{CompletedSteps: NewStepSet()}
}

// IsCompleted reports whether the step id is in the completed set.
func (p Progress) IsCompleted(id string) bool {
	return p.CompletedSteps.Has(id)
}

// HasCurrentStep reports whether a current step is set.
func (p Progress) HasCurrentStep() bool {
	return p.CurrentStep != ""
}

// Clone returns a deep copy of p.
func (p Progress) Clone() Progress {
	p.CompletedSteps = p.CompletedSteps.Clone()
	return p
}

// Equal reports whether two snapshots hold the same data.
func (p Progress) Equal(other Progress) bool {
	return p.CurrentStep == other.CurrentStep &&
		p.LastUpdated.Equal(other.LastUpdated) &&
		p.CompletedSteps.Equal(other.CompletedSteps)
}

// record is the YAML document written by FileBackend.
type record struct {
	CompletedSteps []string  `yaml:"completed_steps"`
	CurrentStep    string    `yaml:"current_step,omitempty"`
	LastUpdated    time.Time `yaml:"last_updated,omitempty"`
}

func toRecord(p Progress) record {
	return record{
		CompletedSteps: p.CompletedSteps.Sorted(),
		CurrentStep:    p.CurrentStep,
		LastUpdated:    p.LastUpdated.UTC(),
	}
}

func (r record) progress() Progress {
	return Progress{
		CompletedSteps: NewStepSet(r.CompletedSteps...),
		CurrentStep:    r.CurrentStep,
		LastUpdated:    r.LastUpdated,
	}
}
