package classify

import (
	"net/url"
	"strings"
)

// CellKind classifies a single cell value for rendering.
type CellKind int

const (
	// CellEmpty is a blank or whitespace-only value; rendered as nothing.
	CellEmpty CellKind = iota
	// CellText is inert display text.
	CellText
	// CellURL is a syntactically valid absolute URL; the renderer may
	// expose an "open" action for it.
	CellURL
	// CellPath is a path-like value that is not a valid URL; surfaced for
	// manual follow-up, never touched on disk.
	CellPath
)

// String returns a short label for the kind.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellURL:
		return "url"
	case CellPath:
		return "path"
	default:
		return "empty"
	}
}

// IsReference reports whether the cell is actionable (URL or path).
func (k CellKind) IsReference() bool {
	return k == CellURL || k == CellPath
}

// Cell decides whether a value is a followable reference or plain text.
// A value is a URL when it parses as an absolute URL with an authority;
// otherwise it is a path when it contains a slash of either flavour or
// starts with "./". Blank values are CellEmpty.
func Cell(value string) CellKind {
	if strings.TrimSpace(value) == "" {
		return CellEmpty
	}
	if u, err := url.Parse(value); err == nil && u.Scheme != "" && u.Host != "" {
		return CellURL
	}
	if strings.ContainsAny(value, `/\`) || strings.HasPrefix(value, "./") {
		return CellPath
	}
	return CellText
}
