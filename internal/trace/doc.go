// Package trace provides a tracing subsystem for the extraction engine.
//
// The trace package enables tracking of driver phases, per-translation-unit
// and per-module binding processing, to help diagnose slow or stuck
// extraction runs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	bblgen extract --trace=- --trace-level=phase binding.cpp
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and translation-unit boundaries
//   - LevelDetail: Module-level events
//   - LevelDebug: Everything including binding-site events
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopeTU: Per translation unit (provider invocation through match.Run)
//   - ScopeModule: Per-module binding processing
//   - ScopeBinding: Per binding-site event
//
// # Context Propagation
//
// Tracers are propagated through the extraction pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeTU, "parse", parentID)
//	defer span.End("")
package trace
