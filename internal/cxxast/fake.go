package cxxast

import (
	"fmt"

	"babble/internal/ir"
)

// FakeProvider is an in-memory Provider used by tests in lieu of a real
// C++ front-end. It holds no source text: tests register TranslationUnit
// values (and the Decl values their marker sites point at) directly,
// exactly as spec.md §1 describes the AST provider as an external
// collaborator whose interfaces are "consumed", never implemented here for
// real. USR/Mangle/Layout/RuleOfSeven/IsAbstract/IsNoexcept simply read the
// fields a test populated on the Decl.
type FakeProvider struct {
	units map[string]*TranslationUnit
	// ParseErrors lets a test force ParseTranslationUnit to fail for a
	// given path, to exercise ProviderError (§7).
	ParseErrors map[string]error
}

// NewFakeProvider creates an empty FakeProvider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		units:       make(map[string]*TranslationUnit),
		ParseErrors: make(map[string]error),
	}
}

// AddTranslationUnit registers tu so a later ParseTranslationUnit(tu.Filename)
// returns it.
func (p *FakeProvider) AddTranslationUnit(tu *TranslationUnit) {
	p.units[tu.Filename] = tu
}

// NewDecl builds a Decl with its provider-assigned identifiers already set,
// the shape a real front-end would hand back after parsing.
func NewDecl(kind DeclKind, qualifiedName, usr, mangled string) *Decl {
	return &Decl{
		Kind:          kind,
		QualifiedName: qualifiedName,
		Spelling:      qualifiedName,
		usr:           usr,
		mangled:       mangled,
	}
}

func (p *FakeProvider) ParseTranslationUnit(path string) (*TranslationUnit, error) {
	if err, ok := p.ParseErrors[path]; ok {
		return nil, err
	}
	tu, ok := p.units[path]
	if !ok {
		return nil, fmt.Errorf("cxxast: no fake translation unit registered for %q", path)
	}
	return tu, nil
}

func (p *FakeProvider) QualifiedName(d *Decl) string {
	return d.QualifiedName
}

func (p *FakeProvider) CanonicalType(q *QualType) *QualType {
	// The fake always stores already-canonical types: there are no
	// typedef/alias chains to desugar in a hand-built object graph.
	return q
}

func (p *FakeProvider) USR(d *Decl) (string, bool) {
	return d.usr, d.usr != ""
}

func (p *FakeProvider) Mangle(d *Decl) (string, error) {
	if d.mangled == "" {
		return "", fmt.Errorf("cxxast: %s has no mangled symbol", d.QualifiedName)
	}
	return d.mangled, nil
}

func (p *FakeProvider) Layout(d *Decl) (ir.Layout, error) {
	return d.LayoutInfo, nil
}

func (p *FakeProvider) RuleOfSeven(d *Decl) (ir.RuleOfSeven, error) {
	return d.Traits, nil
}

func (p *FakeProvider) IsAbstract(d *Decl) bool {
	return d.IsAbstractDecl
}

func (p *FakeProvider) TemplateArguments(d *Decl) []TemplateArgNode {
	return d.TemplateArgs
}

func (p *FakeProvider) IsNoexcept(d *Decl) bool {
	return d.IsNoexceptEvaluated
}

var _ Provider = (*FakeProvider)(nil)
