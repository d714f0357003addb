package testutil

import (
	"time"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/progress"
)

// SampleConfigFile selects the YAML file backend.
const SampleConfigFile = `storage:
  backend: file
logging:
  level: warn
`

// SampleConfigSQLite selects the sqlite backend.
const SampleConfigSQLite = `storage:
  backend: sqlite
  path: progress.db
logging:
  level: warn
`

// OrientationIDs are the steps of the first category, in order.
var OrientationIDs = []string{"orientation_culture", "orientation_goals", "team_introduction"}

// SampleTime is a fixed timestamp for LastUpdated.
var SampleTime = time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

// ProgressEmpty returns the record of a new intern.
func ProgressEmpty() progress.Progress {
	return progress.DefaultProgress()
}

// ProgressPartial returns a record with orientation finished and Android
// Studio installation in progress.
func ProgressPartial() progress.Progress {
	return progress.Progress{
		CompletedSteps: progress.NewStepSet(OrientationIDs...),
		CurrentStep:    "android_studio_install",
		LastUpdated:    SampleTime,
	}
}

// ProgressComplete returns a record with every catalog step completed.
func ProgressComplete() progress.Progress {
	return progress.Progress{
		CompletedSteps: progress.NewStepSet(catalog.IDs()...),
		LastUpdated:    SampleTime,
	}
}
