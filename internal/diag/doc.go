// Package diag defines the diagnostic model shared by the matcher, the
// extractors, and the link phase.
//
// # Purpose
//
//   - Provide deterministic, serializable data structures for findings
//     produced while walking the binding-source AST.
//   - Offer lightweight producer-side utilities (Reporter, Bag) that decouple
//     emission from storage and formatting.
//
// # Scope
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt. diag only models what went wrong and where.
//
// # Data model
//
// Diagnostic is the central record: Severity, Code, Message, a primary
// source.Span, and optional Notes for secondary context (e.g. "previously
// bound here"). There is no quick-fix concept in this domain — every
// diagnostic kind in spec.md §7 is either fatal to the current binding or,
// for InvalidBindKind, a recorded intent that the downstream emitter turns
// into a compile-time assertion.
//
// # Emitting diagnostics
//
// Callers use a diag.Reporter to decouple emission from storage. Construct
// a ReportBuilder via NewReportBuilder (or ReportError/ReportWarning/ReportInfo),
// chain WithNote, and call Emit. When no extra metadata is needed, call
// Reporter.Report directly. diag.BagReporter collects diagnostics into a Bag,
// which supports sorting, deduplication, and golden-file rendering.
package diag
