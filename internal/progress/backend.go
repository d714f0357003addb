package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/thruflo/onboard/internal/config"
)

// Backend is durable storage for a single Progress record. Load returns
// DefaultProgress without error when nothing has been persisted. Save must
// be atomic with respect to concurrent Loads.
type Backend interface {
	Load(ctx context.Context) (Progress, error)
	Save(ctx context.Context, p Progress) error
	// Path is the file backing the record, or "" if there is none.
	Path() string
	Close() error
}

// OpenBackend creates the backend selected by cfg, rooted at basePath.
func OpenBackend(cfg *config.Config, basePath string) (Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return NewFileBackend(cfg.StoragePath(basePath)), nil
	case config.BackendSQLite:
		b, err := OpenSQLiteBackend(cfg.StoragePath(basePath))
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// MemoryBackend keeps the record in memory. Load and Save failures can be
// injected for tests.
type MemoryBackend struct {
	mu       sync.Mutex
	progress Progress
	loadErr  error
	saveErr  error
	saves    int
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{progress: DefaultProgress()}
}

// NewMemoryBackendWith returns a MemoryBackend preloaded with p.
func NewMemoryBackendWith(p Progress) *MemoryBackend {
	return &MemoryBackend{progress: p.Clone()}
}

// Load returns a copy of the stored record.
func (m *MemoryBackend) Load(ctx context.Context) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return Progress{}, m.loadErr
	}
	return m.progress.Clone(), nil
}

// Save replaces the stored record.
func (m *MemoryBackend) Save(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.progress = p.Clone()
	m.saves++
	return nil
}

// SetLoadError makes subsequent Loads fail with err; nil clears it.
func (m *MemoryBackend) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetSaveError makes subsequent Saves fail with err; nil clears it.
func (m *MemoryBackend) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves returns how many Saves succeeded.
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Path returns "" since nothing is stored on disk.
func (m *MemoryBackend) Path() string { return "" }

// Close is a no-op.
func (m *MemoryBackend) Close() error { return nil }
