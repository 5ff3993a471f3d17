package diag

import (
	"babble/internal/source"
)

// Note attaches secondary context to a Diagnostic, e.g. "previously bound here".
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single structured finding produced by the extraction engine.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
