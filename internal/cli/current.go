package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
)

var currentClear bool

var currentCmd = &cobra.Command{
	Use:   "current [step-id]",
	Short: "Show or set the step being worked on",
	Long: `Without arguments, prints the current step. With a step id, makes it
the current step. The id is stored as given even if it is not in the
checklist.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCurrent,
}

func init() {
	currentCmd.Flags().BoolVar(&currentClear, "clear", false, "clear the current step")
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case currentClear:
		if len(args) > 0 {
			return fmt.Errorf("--clear takes no step id")
		}
		if err := store.SetCurrentStep(ctx, ""); err != nil {
			return fmt.Errorf("failed to clear current step: %w", err)
		}
		fmt.Println("Cleared current step")

	case len(args) == 1:
		id := args[0]
		if _, ok := catalog.Lookup(id); !ok {
			fmt.Fprintf(os.Stderr, "warning: %q is not a checklist step\n", id)
		}
		if err := store.SetCurrentStep(ctx, id); err != nil {
			return fmt.Errorf("failed to set current step: %w", err)
		}
		fmt.Printf("Current step: %s\n", id)

	default:
		p := store.Progress()
		if !p.HasCurrentStep() {
			fmt.Println("No current step")
			return nil
		}
		if step, ok := catalog.Lookup(p.CurrentStep); ok {
			fmt.Printf("%s (%s)\n", step.Title, step.ID)
		} else {
			fmt.Println(p.CurrentStep)
		}
	}
	return nil
}
