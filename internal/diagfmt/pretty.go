package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"babble/internal/diag"
	"babble/internal/source"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	infoColor   = color.New(color.FgCyan, color.Bold)
	pathColor   = color.New(color.FgWhite, color.Bold)
	noteColor   = color.New(color.FgBlue)
	markerColor = color.New(color.FgGreen, color.Bold)
)

// Pretty renders bag's diagnostics in a human-readable form: one header line
// per diagnostic (path:line:col: SEVERITY CODE: message), the offending
// source line with a ^^^ underline under its span, then, when
// opts.ShowNotes is set, one indented "path:line:col: note: message" line
// per note. Call bag.Sort() first for deterministic ordering.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePrettyDiagnostic(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writePrettyNote(w, note, fs, opts)
			}
		}
		fmt.Fprintln(w)
	}
}

func writePrettyDiagnostic(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	loc := formatSpanLocation(span, fs, opts.PathMode)
	sevLabel := severityLabel(sev, opts.Color)
	fmt.Fprintf(w, "%s: %s %s: %s\n", decoratePath(loc, opts.Color), sevLabel, code.ID(), msg)
	writeSourceContext(w, span, fs, opts)
}

func writePrettyNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	loc := formatSpanLocation(note.Span, fs, opts.PathMode)
	label := "note"
	if opts.Color {
		label = noteColor.Sprint("note")
	}
	fmt.Fprintf(w, "  %s: %s: %s\n", decoratePath(loc, opts.Color), label, note.Msg)
}

func writeSourceContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	if opts.Width > 0 && len(line) > int(opts.Width) {
		line = line[:opts.Width]
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := start.Col
	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := strings.Repeat(" ", max(int(col)-1, 0)) + strings.Repeat("^", int(width))
	if opts.Color {
		underline = markerColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

func severityLabel(sev diag.Severity, colorize bool) string {
	label := sev.String()
	if !colorize {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func decoratePath(path string, colorize bool) string {
	if !colorize {
		return path
	}
	return pathColor.Sprint(path)
}

func formatSpanLocation(span source.Span, fs *source.FileSet, mode PathMode) string {
	if fs == nil {
		return span.String()
	}
	f := fs.Get(span.File)
	if f == nil {
		return span.String()
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
