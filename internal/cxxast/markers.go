package cxxast

import (
	"babble/internal/ir"
	"babble/internal/source"
)

// The concrete syntactic shapes of the binding-source marker surface
// (module declaration macro, class/function/enum template instantiations,
// chained selector calls) live in an external header the user includes
// (§6.3) and are out of scope for this package. What the matcher driver
// (internal/match) actually consumes is the *already-recognized* site —
// this is the boundary §4.E calls "described abstractly".

// MarkerKind discriminates the four marker constructs §4.E recognizes.
type MarkerKind uint8

const (
	MarkerKindInvalid MarkerKind = iota
	MarkerKindModuleDecl
	MarkerKindClassBindingSite
	MarkerKindFunctionBindingSite
	MarkerKindEnumBindingSite
)

// ModuleDeclSite is a module declaration marker: MODULE(name, ns_from, ns_to).
// A zero Name marks a malformed site (MalformedMarker).
type ModuleDeclSite struct {
	Name          string
	NamespaceFrom string
	NamespaceTo   string
	Span          source.Span
}

// FieldSelector is a `.f()` selector chained on a class binding site,
// naming one field by its accessor expression and the type that
// expression resolves to.
type FieldSelector struct {
	Name string
	Type *QualType
	Span source.Span
}

// MethodSelector is a `.m(&T::method)` selector chained on a class binding
// site. Target nil marks a malformed site.
type MethodSelector struct {
	Target       *Decl
	Rename       string
	TemplateCall string
	Span         source.Span
}

// ConstructorSelector is a `.ctor()` selector chained on a class binding
// site. Target nil marks a malformed site.
type ConstructorSelector struct {
	Target *Decl
	Rename string
	Span   source.Span
}

// ClassBindingSite is a class binding marker: Class<T>().rename("...")
// .m(...).ctor(...).f(...).opaque_ptr()/.opaque_bytes()/.value_type().
// Target nil marks a malformed site (MalformedClassSite). BindKindChain
// records every bind-kind selector in chained order — per §8 property 7,
// the *last* entry wins; an empty chain defaults to ir.OpaquePtr.
type ClassBindingSite struct {
	Target               *Decl
	Rename               string
	BindKindChain        []ir.BindKind
	MethodSelectors      []MethodSelector
	ConstructorSelectors []ConstructorSelector
	FieldSelectors       []FieldSelector
	Span                 source.Span
}

// FunctionBindingSite is a function binding marker: Function(&free_fn)
// or a template function address with an explicit template_call spelling.
// Target nil marks a malformed site (MalformedFunctionSite).
type FunctionBindingSite struct {
	Target       *Decl
	Rename       string
	TemplateCall string
	Span         source.Span
}

// EnumBindingSite is an enum binding marker: Enum<E>().rename("..."). Target
// nil marks a malformed site (MalformedEnumSite).
type EnumBindingSite struct {
	Target *Decl
	Rename string
	Span   source.Span
}

// MarkerSite is one recognized marker construct in source order. Exactly
// one of the kind-specific fields is populated, matching Kind.
type MarkerSite struct {
	Kind     MarkerKind
	Module   *ModuleDeclSite
	Class    *ClassBindingSite
	Function *FunctionBindingSite
	Enum     *EnumBindingSite
}

// TranslationUnit is the parsed binding-source file the matcher walks: its
// marker sites in source order, and the #include directives the provider
// observed in it (SPEC_FULL §5's inclusion-tracking supplement).
type TranslationUnit struct {
	Filename   string
	Inclusions []ir.Inclusion
	Markers    []MarkerSite
}
