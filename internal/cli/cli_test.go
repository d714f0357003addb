package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/config"
	"github.com/thruflo/onboard/internal/progress"
	"github.com/thruflo/onboard/internal/testutil"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// useBaseDir points --dir at dir for the rest of the test.
func useBaseDir(t *testing.T, dir string) {
	t.Helper()
	old := baseDir
	baseDir = dir
	t.Cleanup(func() { baseDir = old })
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "onboard", rootCmd.Use)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "show", "done", "current", "next", "steps", "tui", "init"} {
		assert.True(t, names[want], "missing command %s", want)
	}
	assert.Contains(t, listCmd.Aliases, "status")
}

func TestResolveBaseDir(t *testing.T) {
	useBaseDir(t, "/tmp/somewhere")
	dir, err := resolveBaseDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/somewhere", dir)

	baseDir = ""
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	dir, err = resolveBaseDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)
}

func TestListCommand_Empty(t *testing.T) {
	useBaseDir(t, testutil.SetupTestDir(t, config.BackendFile))

	output := captureOutput(func() {
		require.NoError(t, runList(listCmd, nil))
	})

	assert.Contains(t, output, "(0/17)")
	assert.Contains(t, output, "Next:     Company Culture Overview (orientation_culture)")
	assert.Contains(t, output, "[ ] orientation_culture")
	for _, c := range catalog.Categories() {
		assert.Contains(t, output, c.DisplayName())
	}
	assert.NotContains(t, output, "[x]")
}

func TestListCommand_Partial(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	testutil.SeedProgress(t, dir, testutil.ProgressPartial())
	useBaseDir(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runList(listCmd, nil))
	})

	assert.Contains(t, output, "(3/17)")
	assert.Contains(t, output, "  [x] orientation_culture")
	assert.Contains(t, output, "> [ ] android_studio_install")
	assert.Contains(t, output, "Next:     Install Android Studio")
}

func TestListCommand_AllComplete(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	testutil.SeedProgress(t, dir, testutil.ProgressComplete())
	useBaseDir(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runList(listCmd, nil))
	})

	assert.Contains(t, output, "(17/17)")
	assert.Contains(t, output, "100%")
	assert.Contains(t, output, "All steps complete!")
}

func TestListCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTestFile(t, dir, ".onboard/config.yaml", []byte("storage:\n  backend: cloud\n"))
	useBaseDir(t, dir)

	err := runList(listCmd, nil)
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}

func TestShowCommand(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	testutil.SeedProgress(t, dir, testutil.ProgressPartial())
	useBaseDir(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runShow(showCmd, []string{"android_studio_install"}))
	})

	assert.Contains(t, output, "Install Android Studio")
	assert.Contains(t, output, "Environment Setup")
	assert.Contains(t, output, "Status:    in progress")
	assert.Contains(t, output, "Download Android Studio [Download]: https://developer.android.com/studio")
	assert.Contains(t, output, "Installation Guide [Tutorial]: no link")
}

func TestShowCommand_NotFound(t *testing.T) {
	useBaseDir(t, testutil.SetupTestDir(t, config.BackendFile))

	err := runShow(showCmd, []string{"not_a_real_id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step not found")
}

func TestDoneCommand(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	useBaseDir(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runDone(doneCmd, []string{"orientation_culture", "sdk_install"}))
	})
	assert.Contains(t, output, "Marked orientation_culture complete")
	assert.Contains(t, output, "Marked sdk_install complete")

	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCompleted(t, p, "orientation_culture", "sdk_install")
		assert.Equal(t, 2, p.CompletedSteps.Len())
		assert.False(t, p.LastUpdated.IsZero())
	})
}

func TestDoneCommand_Idempotent(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	useBaseDir(t, dir)

	captureOutput(func() {
		require.NoError(t, runDone(doneCmd, []string{"git_setup"}))
	})
	before := testutil.LoadPersisted(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runDone(doneCmd, []string{"git_setup"}))
	})
	assert.Contains(t, output, "git_setup is already complete")

	after := testutil.LoadPersisted(t, dir)
	assert.True(t, before.Equal(after), "repeat mark must not rewrite the record")
}

func TestDoneCommand_UnknownIDIsRecorded(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	useBaseDir(t, dir)

	captureOutput(func() {
		require.NoError(t, runDone(doneCmd, []string{"not_a_real_id"}))
	})

	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCompleted(t, p, "not_a_real_id")
	})
}

func TestDoneCommand_SQLite(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendSQLite)
	useBaseDir(t, dir)

	captureOutput(func() {
		require.NoError(t, runDone(doneCmd, testutil.OrientationIDs))
	})

	assert.FileExists(t, filepath.Join(dir, config.DirName, config.DefaultSQLitePath))
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCompleted(t, p, testutil.OrientationIDs...)
	})
}

func TestDoneCommand_WriteFailure(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	useBaseDir(t, dir)

	// A directory where the progress file should be makes every save fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.DirName, config.DefaultFilePath), 0o755))

	var err error
	captureOutput(func() {
		err = runDone(doneCmd, []string{"git_setup"})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, progress.ErrStorageWrite)
}

func TestCurrentCommand(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	useBaseDir(t, dir)
	t.Cleanup(func() { currentClear = false })

	output := captureOutput(func() {
		require.NoError(t, runCurrent(currentCmd, nil))
	})
	assert.Contains(t, output, "No current step")

	output = captureOutput(func() {
		require.NoError(t, runCurrent(currentCmd, []string{"sdk_install"}))
	})
	assert.Contains(t, output, "Current step: sdk_install")
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCurrentStep(t, p, "sdk_install")
	})

	output = captureOutput(func() {
		require.NoError(t, runCurrent(currentCmd, nil))
	})
	assert.Contains(t, output, "Install Android SDKs (sdk_install)")

	captureOutput(func() {
		require.NoError(t, runCurrent(currentCmd, []string{"not_a_real_id"}))
	})
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCurrentStep(t, p, "not_a_real_id")
	})

	currentClear = true
	captureOutput(func() {
		require.NoError(t, runCurrent(currentCmd, nil))
	})
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCurrentStep(t, p, "")
	})

	assert.Error(t, runCurrent(currentCmd, []string{"sdk_install"}))
}

func TestNextCommand(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	testutil.SeedProgress(t, dir, progress.Progress{
		CompletedSteps: progress.NewStepSet("orientation_culture"),
	})
	useBaseDir(t, dir)
	t.Cleanup(func() { nextSetCurrent = false })

	output := captureOutput(func() {
		require.NoError(t, runNext(nextCmd, nil))
	})
	assert.Contains(t, output, "Internship Goals & Expectations (orientation_goals)")
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCurrentStep(t, p, "")
	})

	nextSetCurrent = true
	output = captureOutput(func() {
		require.NoError(t, runNext(nextCmd, nil))
	})
	assert.Contains(t, output, "Current step: orientation_goals")
	testutil.AssertPersisted(t, dir, func(p progress.Progress) {
		testutil.AssertCurrentStep(t, p, "orientation_goals")
	})
}

func TestNextCommand_AllComplete(t *testing.T) {
	dir := testutil.SetupTestDir(t, config.BackendFile)
	testutil.SeedProgress(t, dir, testutil.ProgressComplete())
	useBaseDir(t, dir)

	output := captureOutput(func() {
		require.NoError(t, runNext(nextCmd, nil))
	})
	assert.Contains(t, output, "All steps complete!")
}

func TestStepsCommand(t *testing.T) {
	output := captureOutput(func() {
		stepsCmd.Run(stepsCmd, nil)
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, catalog.IDs(), lines)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	useBaseDir(t, dir)
	t.Cleanup(func() {
		initBackend = config.DefaultBackend
		initForce = false
	})

	output := captureOutput(func() {
		require.NoError(t, runInit(initCmd, nil))
	})
	assert.Contains(t, output, "with file storage")
	assert.FileExists(t, config.Path(dir))

	err := runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = true
	initBackend = config.BackendSQLite
	captureOutput(func() {
		require.NoError(t, runInit(initCmd, nil))
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
}

func TestInitCommand_RejectsUnknownBackend(t *testing.T) {
	useBaseDir(t, t.TempDir())
	t.Cleanup(func() { initBackend = config.DefaultBackend })

	initBackend = "cloud"
	err := runInit(initCmd, nil)
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}
