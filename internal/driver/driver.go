// Package driver implements compile_and_extract (§6.2): it turns a
// compiler-command-line-style argv and an AST provider into a linked
// Context, fanning parsing out across translation units while keeping the
// matcher and link phase strictly sequential.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"babble/internal/ctx"
	"babble/internal/cxxast"
	"babble/internal/diag"
	"babble/internal/extract"
	"babble/internal/layout"
	"babble/internal/match"
	"babble/internal/trace"
)

const defaultConfigPath = "bblgen.toml"

// Result is what CompileAndExtract hands back: the linked Context (nil when
// argv fails to parse, an explicitly named config file fails to load, or the
// layout cache cannot be created), a diagnostic Bag, and the run's fatal
// errors — parse failures and matcher/link errors the caller may want to
// report through internal/diagfmt.
type Result struct {
	Context *ctx.Context
	Bag     *diag.Bag
	Errors  []error
}

// CompileAndExtract parses argv, applies any bblgen.toml defaults, parses
// every named file concurrently through provider, then walks the resulting
// translation units through the matcher one at a time — in sorted-path
// order — before running the link phase once every file has contributed.
// events, if non-nil, receives a progress Event per file per stage; sends
// never block a slow or absent consumer.
func CompileAndExtract(goctx context.Context, argv []string, provider cxxast.Provider, events chan<- Event) Result {
	opts, err := ParseArgv(argv)
	if err != nil {
		return Result{Errors: []error{err}}
	}

	configPath := opts.ConfigPath
	explicit := configPath != ""
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := LoadConfig(configPath)
	if err != nil && explicit {
		return Result{Errors: []error{err}}
	}
	opts = mergeConfig(opts, cfg)

	tracer := trace.FromContext(goctx)
	driverSpan := trace.Begin(tracer, trace.ScopeDriver, "compile_and_extract", 0)
	defer driverSpan.End("")

	bag := diag.NewBag(opts.MaxDiagnostics)
	c := ctx.New()
	var errs []error

	files := append([]string(nil), opts.Files...)
	sort.Strings(files)

	emit := func(file string, stage Stage, status Status) {
		if events == nil {
			return
		}
		select {
		case events <- Event{File: file, Stage: stage, Status: status}:
		default:
		}
	}
	for _, f := range files {
		emit(f, StageParse, StatusQueued)
	}

	lc, err := layout.New(provider, 0)
	if err != nil {
		return Result{Errors: []error{err}}
	}

	for _, res := range parseFiles(goctx, provider, files, opts.Jobs) {
		if res.Err != nil {
			emit(res.Path, StageParse, StatusError)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.ProviderParseFailed,
				Message:  fmt.Sprintf("%s: %v", res.Path, res.Err),
			})
			errs = append(errs, fmt.Errorf("%s: %w", res.Path, res.Err))
			continue
		}

		emit(res.Path, StageMatch, StatusWorking)
		tuSpan := trace.Begin(tracer, trace.ScopeTU, res.Path, driverSpan.ID())
		tuErrs := match.Run(res.TU, provider, c, lc)
		tuSpan.End("")

		if len(tuErrs) > 0 {
			emit(res.Path, StageMatch, StatusError)
			for _, e := range tuErrs {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     matchErrorCode(e),
					Message:  e.Error(),
				})
			}
			errs = append(errs, tuErrs...)
			continue
		}
		emit(res.Path, StageMatch, StatusDone)
	}

	linkSpan := trace.Begin(tracer, trace.ScopeDriver, "link", driverSpan.ID())
	linkErrs := c.Link()
	linkSpan.End("")
	for _, f := range files {
		emit(f, StageLink, StatusDone)
	}
	if len(linkErrs) > 0 {
		for _, e := range linkErrs {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.LinkInfo,
				Message:  e.Error(),
			})
		}
		errs = append(errs, linkErrs...)
	}

	return Result{Context: c, Bag: bag, Errors: errs}
}

// matchErrorCode classifies an error match.Run returned so the diagnostic
// bag carries the §7 kind a formatter would want to filter or colorize by,
// rather than every matcher failure collapsing into one generic code.
func matchErrorCode(err error) diag.Code {
	var missing *extract.MissingTypeBindingError
	if errors.As(err, &missing) {
		return diag.TypeMissingBindingDefer
	}
	var unsupported *extract.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return diag.TypeUnsupportedShape
	}
	var dup *ctx.DuplicateBindingError
	if errors.As(err, &dup) {
		return diag.LinkDuplicateBinding
	}
	return diag.MarkerInfo
}
