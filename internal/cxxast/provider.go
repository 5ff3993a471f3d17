package cxxast

import "babble/internal/ir"

// Provider is the AST provider contract of spec.md §6.1. Any C++ front-end
// that exposes these abstract operations qualifies; internal/extract and
// internal/match depend only on this interface, never on a concrete parser.
type Provider interface {
	// ParseTranslationUnit parses (or, for a non-parsing provider, simply
	// produces) the marker sites and inclusions of one binding-source
	// file. Parse failure is a ProviderError (§7).
	ParseTranslationUnit(path string) (*TranslationUnit, error)

	// QualifiedName resolves a declaration's fully-qualified name.
	QualifiedName(d *Decl) string

	// CanonicalType desugars typedef/alias chains until a canonical type
	// is reached (§4.B step 2). Implementations that already store
	// canonical types may return q unchanged.
	CanonicalType(q *QualType) *QualType

	// USR returns the declaration's canonical unique symbol reference, and
	// whether one could be assigned (false surfaces ProviderUSRUnassigned).
	USR(d *Decl) (string, bool)

	// Mangle returns the mangled symbol disambiguating one overload,
	// used as the id for methods and constructors (§3).
	Mangle(d *Decl) (string, error)

	// Layout returns the ABI-relevant size/alignment of a record.
	Layout(d *Decl) (ir.Layout, error)

	// RuleOfSeven evaluates the ten trait expressions against a record
	// (§6.1's trait probe contract).
	RuleOfSeven(d *Decl) (ir.RuleOfSeven, error)

	// IsAbstract reports whether a class declares or inherits a pure
	// virtual function.
	IsAbstract(d *Decl) bool

	// TemplateArguments enumerates a specialization's template-argument
	// list in declaration order, packs un-flattened (internal/extract
	// flattens them, §4.C).
	TemplateArguments(d *Decl) []TemplateArgNode

	// IsNoexcept evaluates the declaration's *effective* exception
	// specification — evaluated, not merely declared, so a computed
	// noexcept(...) expression that folds to true counts (§4.D, §8
	// property 6).
	IsNoexcept(d *Decl) bool
}
