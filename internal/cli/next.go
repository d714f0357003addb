package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/viewmodel"
)

var nextSetCurrent bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next incomplete step",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

func init() {
	nextCmd.Flags().BoolVar(&nextSetCurrent, "set-current", false, "also make it the current step")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	state := viewmodel.NewState(catalog.Steps(), store.Progress())
	next, ok := state.NextIncompleteStep()
	if !ok {
		fmt.Println("All steps complete!")
		return nil
	}

	fmt.Printf("%s (%s) - %s\n", next.Title, next.ID, next.EstimatedTime)

	if nextSetCurrent && !next.IsCurrent {
		if err := store.SetCurrentStep(ctx, next.ID); err != nil {
			return fmt.Errorf("failed to set current step: %w", err)
		}
		fmt.Printf("Current step: %s\n", next.ID)
	}
	return nil
}
