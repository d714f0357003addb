package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/logging"
	"github.com/thruflo/onboard/internal/progress"
	"github.com/thruflo/onboard/internal/tui"
	"github.com/thruflo/onboard/internal/viewmodel"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive checklist",
	Long: `Opens the interactive checklist in the terminal.

Keys:
  up/down, k/j   move between steps
  enter, tab     show or hide step details
  space, d       mark the selected step done
  c              make the selected step current
  n              jump to the next incomplete step
  q, esc         quit

Changes made by other onboard commands while the checklist is open are
picked up automatically.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	var ui *tui.TUI
	vm := viewmodel.New(store, catalog.Steps(),
		viewmodel.WithOnWriteError(func(op, stepID string, err error) {
			ui.ReportWriteError(op, stepID, err)
		}))
	ui = tui.NewTUI(os.Stdout, vm)

	return runInteractive(ctx, store, vm, ui)
}

// runInteractive runs the view model, the file watcher and the TUI until
// the user quits or ctx is cancelled.
func runInteractive(ctx context.Context, store *progress.Store, vm *viewmodel.ViewModel, ui *tui.TUI) error {
	// Keep log output from tearing the raw-mode screen.
	if !verbose {
		logging.SetLevel(logging.LevelError)
	}

	var watcher *progress.Watcher
	if path := store.Path(); path != "" {
		w, err := progress.NewWatcher(path, store)
		if err != nil {
			return fmt.Errorf("failed to watch progress file: %w", err)
		}
		watcher = w
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return vm.Run(gctx)
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx)
	})

	err := g.Wait()
	vm.Wait()
	return err
}
