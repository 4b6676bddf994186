// Package ui implements the lotview terminal interface with Bubble Tea.
//
// The Model owns a view.Session (dataset + filter/sort state) and renders
// the annotated row set as a scrollable table. A once-per-second tick pulls
// dataset snapshots from the state store, so file-watcher reloads appear
// without disturbing selection or toggles. All engine mutations happen
// synchronously inside Update; rendering is a pure function of the model.
//
// Layout, top to bottom: header bar (dataset, row counts, load errors),
// column header + table, filter footer (toggles annotated with unfiltered
// totals), status bar. Enter opens a per-row detail overlay with reference
// annotations; h/? opens help.
package ui
