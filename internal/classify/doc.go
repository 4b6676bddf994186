// Package classify holds the pure text-classification heuristics for
// marketplace listings.
//
// Everything here is a total function of its input string: price
// extraction, device/generation bucketing, cell reference detection, and
// storage/grade extraction. Malformed or missing input never errors; it
// degrades to a defined default (0, Unknown, CellEmpty, ""). The rules are
// coarse substring/regexp heuristics tuned to how sellers actually write
// listing titles, not a grammar. Extend the rule tables rather than the
// control flow.
package classify
