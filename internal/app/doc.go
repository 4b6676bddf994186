// Package app is the composition root for the lotview TUI.
//
// Run loads configuration and preferences, performs the initial dataset
// load (fatal on failure, so the UI never starts against nothing), then
// wires the pieces together: a state.Store as the hand-off point, an
// fsnotify watcher that republishes the file atomically on change, and
// the Bubble Tea UI which pulls snapshots on its tick. Reload failures
// after startup are non-fatal; the previous dataset stays visible with
// the error surfaced in the header.
package app
