package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/onboard/internal/catalog"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List checklist step ids, one per line",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range catalog.IDs() {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
