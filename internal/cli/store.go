package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/config"
	"github.com/thruflo/onboard/internal/logging"
	"github.com/thruflo/onboard/internal/progress"
)

// commandContext returns the command's context, or Background when the
// command is run directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveBaseDir returns --dir, or the home directory when it is unset.
func resolveBaseDir() (string, error) {
	if baseDir != "" {
		return baseDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return home, nil
}

// loadConfig reads the configuration and applies its log level. --verbose
// wins over the configured level.
func loadConfig() (string, *config.Config, error) {
	dir, err := resolveBaseDir()
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return "", nil, err
	}

	if !verbose {
		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return "", nil, err
		}
		logging.SetLevel(level)
	}
	return dir, cfg, nil
}

// openStore opens the configured backend and loads progress from it. The
// caller closes the store.
func openStore(ctx context.Context) (*progress.Store, error) {
	dir, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	backend, err := progress.OpenBackend(cfg, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress storage: %w", err)
	}

	logging.Debug("opened progress storage", "backend", cfg.Storage.Backend, "path", backend.Path())
	return progress.NewStore(ctx, backend), nil
}
