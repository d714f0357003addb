package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/tui"
	"github.com/thruflo/onboard/internal/viewmodel"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"status"},
	Short:   "Show onboarding progress",
	Long: `Shows overall progress, the next step to work on, and every step
grouped by category. Completed steps are marked [x] and the current step
is marked with >.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore(commandContext(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	state := viewmodel.NewState(catalog.Steps(), store.Progress())
	printProgress(state)
	return nil
}

func printProgress(state viewmodel.UIState) {
	fmt.Printf("Progress: %s (%d/%d)\n",
		tui.ProgressBar(state.ProgressPercentage(), 30),
		state.CompletedCount(), len(state.Steps))

	if next, ok := state.NextIncompleteStep(); ok {
		fmt.Printf("Next:     %s (%s)\n", next.Title, next.ID)
	} else {
		fmt.Println("All steps complete!")
	}

	idWidth := 0
	for _, s := range state.Steps {
		idWidth = max(idWidth, len(s.ID))
	}

	for _, g := range state.CategoryGroups() {
		fmt.Println()
		fmt.Println(tui.CategoryHeader(g.Category))
		for _, s := range g.Steps {
			marker := " "
			if s.IsCurrent {
				marker = ">"
			}
			check := "[ ]"
			if s.IsCompleted {
				check = "[x]"
			}
			fmt.Printf("%s %s %-*s  %s%s\n", marker, check, idWidth, s.ID, s.Title,
				dimSuffix(s.EstimatedTime))
		}
	}
}

func dimSuffix(s string) string {
	if s == "" {
		return ""
	}
	return "  (" + strings.TrimSpace(s) + ")"
}
