package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thruflo/onboard/internal/config"
	"github.com/thruflo/onboard/internal/progress"
)

// SetupTestDir creates a temporary base directory with .onboard/config.yaml
// selecting backend. The directory is removed when the test completes.
func SetupTestDir(t *testing.T, backend string) string {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = backend
	require.NoError(t, config.SaveConfig(dir, &cfg))
	return dir
}

// OpenTestStore opens the store configured under dir. It is closed when
// the test completes.
func OpenTestStore(t *testing.T, dir string) *progress.Store {
	t.Helper()

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	backend, err := progress.OpenBackend(cfg, dir)
	require.NoError(t, err)

	store := progress.NewStore(context.Background(), backend)
	t.Cleanup(func() { store.Close() })
	return store
}

// SeedProgress writes p through the backend configured under dir.
func SeedProgress(t *testing.T, dir string, p progress.Progress) {
	t.Helper()

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	backend, err := progress.OpenBackend(cfg, dir)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Save(context.Background(), p))
}

// LoadPersisted reads the progress record stored under dir.
func LoadPersisted(t *testing.T, dir string) progress.Progress {
	t.Helper()

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	backend, err := progress.OpenBackend(cfg, dir)
	require.NoError(t, err)
	defer backend.Close()

	p, err := backend.Load(context.Background())
	require.NoError(t, err)
	return p
}

// WriteTestFile writes content to a file in the test directory.
// Creates parent directories as needed.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}
