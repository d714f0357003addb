// Package viewmodel derives presentation state from the onboarding catalog
// and the persisted progress record.
//
// A ViewModel subscribes once to its progress source and recomputes a
// UIState for every snapshot it receives. Presentation code reads UIState
// values and never touches the store directly:
//
//	vm := viewmodel.New(store, catalog.Steps())
//	go vm.Run(ctx)
//	for state := range vm.Updates(ctx) {
//	    render(state)
//	}
//
// Writes are fire-and-forget. State only changes when the store publishes
// the result, so a failed write leaves the UIState untouched.
package viewmodel
