package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/tui"
	"github.com/thruflo/onboard/internal/viewmodel"
)

var showCmd = &cobra.Command{
	Use:   "show <step-id>",
	Short: "Show the details of one step",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore(commandContext(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	state := viewmodel.NewState(catalog.Steps(), store.Progress())
	step, ok := state.Step(args[0])
	if !ok {
		return fmt.Errorf("step not found: %s", args[0])
	}

	printStep(step)
	return nil
}

func printStep(step viewmodel.StepState) {
	fmt.Println(step.Title)
	fmt.Printf("ID:        %s\n", step.ID)
	fmt.Printf("Category:  %s\n", tui.CategoryHeader(step.Category))
	fmt.Printf("Estimated: %s\n", step.EstimatedTime)

	status := "not started"
	switch {
	case step.IsCompleted:
		status = "completed"
	case step.IsCurrent:
		status = "in progress"
	}
	fmt.Printf("Status:    %s\n", status)

	fmt.Println()
	for _, line := range tui.WrapText(step.Description, 72) {
		fmt.Println(line)
	}

	if len(step.Resources) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Resources:")
	for _, r := range step.Resources {
		link := "no link"
		if r.HasLink() {
			link = r.URL
		}
		fmt.Printf("  - %s [%s]: %s\n", r.Title, r.Type, link)
	}
}
