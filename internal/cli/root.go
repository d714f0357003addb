package cli

import (
	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	baseDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Track progress through the intern onboarding checklist",
	Long: `Onboard walks a new intern through the onboarding checklist: company
orientation, Android development environment setup, Android basics and
first projects. Progress is saved under .onboard/ in the base directory
and shared by every onboard command, including a running "onboard tui".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("onboard version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory holding .onboard/ (default: home directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
