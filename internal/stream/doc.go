// Package stream provides in-process publish/subscribe for state snapshots.
//
// A Hub keeps the latest published value and replays it to each new
// subscriber before forwarding later values, which gives subscribers the
// semantics of a hot stream with initial-value replay. Progress snapshots
// from the store and UI state from the view-model are both distributed
// through a Hub.
package stream
