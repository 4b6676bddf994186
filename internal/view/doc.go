// Package view derives the rendered row set from the loaded dataset and
// the user's explicit filter/sort state.
//
// BuildView composes the pipeline: filter gate, stable price sort,
// blank-row suppression, per-cell reference annotation. Every stage is a
// pure function of (records, state): the same inputs always produce the
// same rows. Session bundles dataset + state behind the small control
// surface the TUI and CLI subcommands share.
//
// Counts are computed over the unfiltered dataset, so the toggle labels
// show stable totals no matter which filters are active.
package view
