package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores the current step and last update as rows of a
// key-value table and the completed set as one row per id. Ids are stored
// as blobs so they round-trip byte for byte. Save writes everything in one
// transaction.
type SQLiteBackend struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLiteBackend opens or creates the database at path.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps the pragmas below in effect for every query.
	db.SetMaxOpenConns(1)

	b := &SQLiteBackend{db: db, dbPath: path}
	if err := b.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return b, nil
}

func (b *SQLiteBackend) initSchema() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := b.db.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS completed_steps (
		id BLOB PRIMARY KEY
	);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Load reads every persisted key. Missing keys take their default values.
func (b *SQLiteBackend) Load(ctx context.Context) (Progress, error) {
	p := DefaultProgress()
	if err := b.loadPreferences(ctx, &p); err != nil {
		return Progress{}, err
	}
	if err := b.loadCompleted(ctx, p.CompletedSteps); err != nil {
		return Progress{}, err
	}
	return p, nil
}

// loadPreferences must close its rows before returning: the pool holds a
// single connection.
func (b *SQLiteBackend) loadPreferences(ctx context.Context, p *Progress) error {
	rows, err := b.db.QueryContext(ctx,
		`SELECT key, value FROM preferences WHERE key IN (?, ?)`,
		KeyCurrentStep, KeyLastUpdated)
	if err != nil {
		return fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan progress row: %w", err)
		}

		switch key {
		case KeyCurrentStep:
			p.CurrentStep = value
		case KeyLastUpdated:
			ts, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", KeyLastUpdated, err)
			}
			p.LastUpdated = ts
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read progress rows: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) loadCompleted(ctx context.Context, set StepSet) error {
	rows, err := b.db.QueryContext(ctx, `SELECT id FROM completed_steps`)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", KeyCompletedSteps, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id []byte
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", KeyCompletedSteps, err)
		}
		set[string(id)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read %s rows: %w", KeyCompletedSteps, err)
	}
	return nil
}

// Save replaces the record in a single transaction. An empty current step
// deletes its row.
func (b *SQLiteBackend) Save(ctx context.Context, p Progress) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, `DELETE FROM completed_steps`); err != nil {
		return fmt.Errorf("failed to clear %s: %w", KeyCompletedSteps, err)
	}
	for _, id := range p.CompletedSteps.Sorted() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO completed_steps (id) VALUES (?)`, []byte(id)); err != nil {
			return fmt.Errorf("failed to write %s: %w", KeyCompletedSteps, err)
		}
	}

	if p.CurrentStep != "" {
		if _, err := tx.ExecContext(ctx, upsert, KeyCurrentStep, p.CurrentStep); err != nil {
			return fmt.Errorf("failed to write %s: %w", KeyCurrentStep, err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, KeyCurrentStep); err != nil {
			return fmt.Errorf("failed to clear %s: %w", KeyCurrentStep, err)
		}
	}

	if !p.LastUpdated.IsZero() {
		ts := p.LastUpdated.UTC().Format(time.RFC3339Nano)
		if _, err := tx.ExecContext(ctx, upsert, KeyLastUpdated, ts); err != nil {
			return fmt.Errorf("failed to write %s: %w", KeyLastUpdated, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (b *SQLiteBackend) Path() string {
	return b.dbPath
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
