package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
)

var doneCmd = &cobra.Command{
	Use:   "done <step-id>...",
	Short: "Mark steps as completed",
	Long: `Marks each step as completed. Ids that are not in the checklist are
still recorded, with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, id := range args {
		if _, ok := catalog.Lookup(id); !ok {
			fmt.Fprintf(os.Stderr, "warning: %q is not a checklist step\n", id)
		}

		if store.Progress().IsCompleted(id) {
			fmt.Printf("%s is already complete\n", id)
			continue
		}
		if err := store.MarkStepCompleted(ctx, id); err != nil {
			return fmt.Errorf("failed to mark %s complete: %w", id, err)
		}
		fmt.Printf("Marked %s complete\n", id)
	}
	return nil
}
