package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thruflo/onboard/internal/progress"
)

// AssertCompleted asserts that every id is in the completed set.
func AssertCompleted(t *testing.T, p progress.Progress, ids ...string) {
	t.Helper()
	for _, id := range ids {
		assert.True(t, p.IsCompleted(id), "step %q should be completed", id)
	}
}

// AssertNotCompleted asserts that no id is in the completed set.
func AssertNotCompleted(t *testing.T, p progress.Progress, ids ...string) {
	t.Helper()
	for _, id := range ids {
		assert.False(t, p.IsCompleted(id), "step %q should not be completed", id)
	}
}

// AssertCurrentStep asserts the current step; "" asserts there is none.
func AssertCurrentStep(t *testing.T, p progress.Progress, id string) {
	t.Helper()
	if id == "" {
		assert.False(t, p.HasCurrentStep(), "expected no current step, got %q", p.CurrentStep)
		return
	}
	assert.Equal(t, id, p.CurrentStep, "current step mismatch")
}

// AssertPersisted reloads the record stored under dir and passes it to
// check.
func AssertPersisted(t *testing.T, dir string, check func(progress.Progress)) {
	t.Helper()
	check(LoadPersisted(t, dir))
}
