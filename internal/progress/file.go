package progress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileBackend stores the record as a YAML document. Writes go to a
// temporary file that is renamed over the target, so a reader sees either
// the old or the new document and never a partial one.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend creates a FileBackend for path. The file and its parent
// directory are created on first Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads and parses the progress file.
func (b *FileBackend) Load(ctx context.Context) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProgress(), nil
		}
		return Progress{}, fmt.Errorf("failed to read progress file: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Progress{}, fmt.Errorf("failed to parse progress file: %w", err)
	}

	return rec.progress(), nil
}

// Save writes the record atomically.
func (b *FileBackend) Save(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create progress directory: %w", err)
	}

	data, err := yaml.Marshal(toRecord(p))
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write progress file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync progress file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close progress file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set progress file mode: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace progress file: %w", err)
	}

	return nil
}

// Path returns the progress file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Close is a no-op; the file is not held open between calls.
func (b *FileBackend) Close() error {
	return nil
}
