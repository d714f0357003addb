// tui-demo is a manual test program for the interactive checklist.
// Run with: go run ./cmd/tui-demo
//
// Progress lives in memory only. A background goroutine completes a few
// steps while the checklist is open so redraws can be checked by eye, and
// the last write is made to fail so the status line shows.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thruflo/onboard/internal/catalog"
	"github.com/thruflo/onboard/internal/progress"
	"github.com/thruflo/onboard/internal/tui"
	"github.com/thruflo/onboard/internal/viewmodel"
)

func main() {
	fmt.Println("Onboarding Checklist Demo")
	fmt.Println("=========================")
	fmt.Println()
	fmt.Println("Steps will be completed in the background every few seconds.")
	fmt.Println("Use the arrow keys, enter, space, c and n; press q to exit.")
	fmt.Println()
	fmt.Println("Press Enter to start...")
	fmt.Scanln()

	if err := runDemo(); err != nil {
		fmt.Fprintf(os.Stderr, "Demo error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := progress.NewMemoryBackendWith(progress.Progress{
		CompletedSteps: progress.NewStepSet("orientation_culture"),
		CurrentStep:    "orientation_goals",
	})
	store := progress.NewStore(ctx, backend)
	defer store.Close()

	var ui *tui.TUI
	vm := viewmodel.New(store, catalog.Steps(),
		viewmodel.WithOnWriteError(func(op, stepID string, err error) {
			ui.ReportWriteError(op, stepID, err)
		}))
	ui = tui.NewTUI(os.Stdout, vm)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return vm.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx)
	})

	// Simulate progress made from another shell.
	g.Go(func() error {
		for _, id := range []string{"orientation_goals", "team_introduction", "android_studio_install"} {
			select {
			case <-gctx.Done():
				return nil
			case <-time.After(3 * time.Second):
				vm.SetCurrentStep(gctx, id)
				vm.MarkStepCompleted(gctx, id)
			}
		}

		select {
		case <-gctx.Done():
			return nil
		case <-time.After(3 * time.Second):
			backend.SetSaveError(errors.New("simulated disk full"))
			vm.MarkStepCompleted(gctx, "android_studio_config")
		}
		return nil
	})

	err := g.Wait()
	vm.Wait()
	return err
}
