// Package state provides the thread-safe hand-off point between the
// dataset loader/watcher and the UI.
//
// The watcher goroutine calls Update with a complete dataset (or a load
// error); the UI's tick loop calls Snapshot. Both sides get defensive
// copies, so neither can mutate what the other is holding. On error the
// previous dataset is kept and the error is surfaced alongside it: the
// view degrades to stale-but-complete data rather than a torn read.
package state
