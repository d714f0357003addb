package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/progress"
)

func stateWith(completed ...string) UIState {
	return NewState(catalog.Steps(), progress.Progress{
		CompletedSteps: progress.NewStepSet(completed...),
	})
}

func TestLoadingState(t *testing.T) {
	t.Parallel()

	s := loadingState(catalog.Steps())
	assert.True(t, s.IsLoading)
	assert.Len(t, s.Steps, 17)
	assert.Equal(t, 0.0, s.ProgressPercentage())
}

func TestProgressPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed []string
		want      float64
	}{
		{name: "empty", want: 0},
		{name: "one of seventeen", completed: []string{"orientation_culture"}, want: 1.0 / 17},
		{name: "all", completed: catalog.IDs(), want: 1},
		{name: "unknown ids ignored", completed: []string{"not_a_real_id", "other"}, want: 0},
		{
			name:      "superset of catalog",
			completed: append(catalog.IDs(), "not_a_real_id"),
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := stateWith(tt.completed...).ProgressPercentage()
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestProgressPercentage_NoSteps(t *testing.T) {
	t.Parallel()

	s := NewState(nil, progress.Progress{CompletedSteps: progress.NewStepSet("a")})
	assert.Equal(t, 0.0, s.ProgressPercentage())

	_, ok := s.NextIncompleteStep()
	assert.False(t, ok)
	assert.Empty(t, s.StepsByCategory())
}

func TestNextIncompleteStep(t *testing.T) {
	t.Parallel()

	next, ok := stateWith().NextIncompleteStep()
	require.True(t, ok)
	assert.Equal(t, "orientation_culture", next.ID)

	next, ok = stateWith("orientation_culture").NextIncompleteStep()
	require.True(t, ok)
	assert.Equal(t, "orientation_goals", next.ID)
	assert.Equal(t, 2, next.Order)

	next, ok = stateWith("orientation_culture", "orientation_goals", "git_setup").NextIncompleteStep()
	require.True(t, ok)
	assert.Equal(t, "team_introduction", next.ID)

	_, ok = stateWith(catalog.IDs()...).NextIncompleteStep()
	assert.False(t, ok)
}

func TestNextIncompleteStep_NoneOnlyWhenAllComplete(t *testing.T) {
	t.Parallel()

	ids := catalog.IDs()
	for i := range ids {
		missing := append(append([]string{}, ids[:i]...), ids[i+1:]...)
		next, ok := stateWith(missing...).NextIncompleteStep()
		require.True(t, ok, "missing %s", ids[i])
		assert.Equal(t, ids[i], next.ID)
	}
}

func TestNextIncompleteStep_TieBreakIsCatalogOrder(t *testing.T) {
	t.Parallel()

	steps := []catalog.Step{
		{ID: "late", Order: 5},
		{ID: "first_tied", Order: 2},
		{ID: "second_tied", Order: 2},
	}
	s := NewState(steps, progress.DefaultProgress())

	next, ok := s.NextIncompleteStep()
	require.True(t, ok)
	assert.Equal(t, "first_tied", next.ID)
}

func TestStepsByCategory_Partitions(t *testing.T) {
	t.Parallel()

	s := stateWith("sdk_install")
	groups := s.StepsByCategory()

	seen := make(map[string]int)
	total := 0
	for cat, steps := range groups {
		for _, step := range steps {
			assert.Equal(t, cat, step.Category)
			seen[step.ID]++
			total++
		}
	}
	assert.Equal(t, len(catalog.Steps()), total)
	for _, id := range catalog.IDs() {
		assert.Equal(t, 1, seen[id], id)
	}

	assert.Len(t, groups[catalog.CategoryOrientation], 3)
	assert.Len(t, groups[catalog.CategoryEnvironmentSetup], 7)
	assert.Len(t, groups[catalog.CategoryAndroidBasics], 4)
	assert.Len(t, groups[catalog.CategoryProjects], 3)
}

func TestStepsByCategory_PreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	groups := stateWith().StepsByCategory()

	var ids []string
	for _, step := range groups[catalog.CategoryOrientation] {
		ids = append(ids, step.ID)
	}
	want := []string{"orientation_culture", "orientation_goals", "team_introduction"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("orientation steps mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryGroups_MatchStepsByCategory(t *testing.T) {
	t.Parallel()

	s := stateWith("git_setup", "calculator_project")
	groups := s.CategoryGroups()
	byCategory := s.StepsByCategory()

	require.Len(t, groups, len(byCategory))
	var order []catalog.Category
	for _, g := range groups {
		order = append(order, g.Category)
		if diff := cmp.Diff(byCategory[g.Category], g.Steps); diff != "" {
			t.Errorf("%s group mismatch (-map +groups):\n%s", g.Category, diff)
		}
	}
	assert.Equal(t, catalog.Categories(), order)
}

func TestStepAndCurrentStep(t *testing.T) {
	t.Parallel()

	s := NewState(catalog.Steps(), progress.Progress{
		CompletedSteps: progress.NewStepSet("git_setup"),
		CurrentStep:    "github_account",
	})

	step, ok := s.Step("git_setup")
	require.True(t, ok)
	assert.True(t, step.IsCompleted)
	assert.False(t, step.IsCurrent)

	cur, ok := s.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "github_account", cur.ID)
	assert.True(t, cur.IsCurrent)

	_, ok = s.Step("missing")
	assert.False(t, ok)

	s = NewState(catalog.Steps(), progress.Progress{
		CompletedSteps: progress.NewStepSet(),
		CurrentStep:    "not_a_real_id",
	})
	_, ok = s.CurrentStep()
	assert.False(t, ok)
}
