// Package layout memoizes the AST provider's per-declaration layout and
// rule-of-seven trait probes (§6.1), so the matcher does not re-run a
// compiler trait query every time the same class is bound or referenced a
// second time across translation units.
package layout

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

const defaultCacheSize = 1024

type entry struct {
	layout ir.Layout
	traits ir.RuleOfSeven
}

// Cache wraps a Provider's Layout and RuleOfSeven calls with an LRU keyed by
// the declaration's USR. Both queries are fetched together on a miss since
// every caller of Layout eventually wants RuleOfSeven for the same class
// too (§4.E's class binding path always needs both).
type Cache struct {
	provider cxxast.Provider
	entries  *lru.Cache[string, entry]
}

// New builds a Cache over provider with room for size distinct declarations.
// size <= 0 uses a default of 1024.
func New(provider cxxast.Provider, size int) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{provider: provider, entries: entries}, nil
}

// Layout returns d's ABI layout, from cache if already probed.
func (c *Cache) Layout(d *cxxast.Decl) (ir.Layout, error) {
	e, err := c.fetch(d)
	return e.layout, err
}

// RuleOfSeven returns d's rule-of-seven traits, from cache if already probed.
func (c *Cache) RuleOfSeven(d *cxxast.Decl) (ir.RuleOfSeven, error) {
	e, err := c.fetch(d)
	return e.traits, err
}

func (c *Cache) fetch(d *cxxast.Decl) (entry, error) {
	if d == nil {
		return entry{}, &CacheError{Kind: CacheErrNilDecl}
	}
	usr, ok := c.provider.USR(d)
	if !ok {
		return entry{}, &CacheError{Kind: CacheErrNoUSR, Spelling: d.Spelling}
	}
	if cached, ok := c.entries.Get(usr); ok {
		return cached, nil
	}

	layout, err := c.provider.Layout(d)
	if err != nil {
		return entry{}, err
	}
	traits, err := c.provider.RuleOfSeven(d)
	if err != nil {
		return entry{}, err
	}

	e := entry{layout: layout, traits: traits}
	c.entries.Add(usr, e)
	return e, nil
}
