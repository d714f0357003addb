package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/config"
)

var (
	initBackend string
	initForce   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .onboard/ with a default configuration",
	Long: `Creates .onboard/config.yaml in the base directory. Running onboard
without a config file uses the same defaults, so this is only needed to
pick another storage backend.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initBackend, "backend", "b", config.DefaultBackend, "storage backend (file, sqlite, memory)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveBaseDir()
	if err != nil {
		return err
	}

	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	cfg.Storage.Backend = initBackend

	if err := config.SaveConfig(dir, &cfg); err != nil {
		return err
	}

	fmt.Printf("Initialized %s with %s storage\n", config.Dir(dir), initBackend)
	return nil
}
