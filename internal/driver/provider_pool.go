package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"babble/internal/cxxast"
)

// parseResult is one file's ParseTranslationUnit outcome.
type parseResult struct {
	Path string
	TU   *cxxast.TranslationUnit
	Err  error
}

// parseFiles parses files through provider concurrently, bounded by jobs
// (GOMAXPROCS when jobs <= 0), but always returns results in sorted-path
// order regardless of completion order. Per spec §5, parsing is the one
// phase a provider is allowed to parallelize internally; everything
// downstream of this call walks translation units as a serial stream.
func parseFiles(goctx context.Context, provider cxxast.Provider, files []string, jobs int) []parseResult {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	results := make([]parseResult, len(sorted))
	if len(sorted) == 0 {
		return results
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(sorted) {
		jobs = len(sorted)
	}

	g, gctx := errgroup.WithContext(goctx)
	g.SetLimit(jobs)

	for i, path := range sorted {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = parseResult{Path: path, Err: gctx.Err()}
				return nil
			default:
			}
			tu, err := provider.ParseTranslationUnit(path)
			results[i] = parseResult{Path: path, TU: tu, Err: err}
			return nil
		})
	}

	// Parse errors are carried per-result rather than aggregated by Wait:
	// one file's failure to parse must not discard every other file's
	// successful result.
	_ = g.Wait()
	return results
}
