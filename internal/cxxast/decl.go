package cxxast

// DeclKind discriminates the declaration shapes the extractors consume.
type DeclKind uint8

const (
	DeclKindInvalid DeclKind = iota
	DeclKindClass
	DeclKindClassTemplateSpecialization
	DeclKindEnum
	DeclKindFunction
	DeclKindMethod
	DeclKindConstructor
	DeclKindStdFunctionSpecialization
)

// ParamDecl is one parameter of a function/method/constructor declaration.
// Name is empty when the declaration did not name the parameter (§4.D).
type ParamDecl struct {
	Name string
	Type *QualType
}

// EnumeratorDecl is one enumerator of an enum declaration, in declaration
// order, with its raw signed or unsigned value already widened to 64 bits
// by the provider.
type EnumeratorDecl struct {
	Name         string
	SignedValue  int64
	IsUnsigned   bool
	UnsignedValue uint64
}

// Decl is a C++ declaration node as the provider reports it: a class, a
// class-template specialization, an enum, a free function, a method, a
// constructor, or a std::function specialization.
type Decl struct {
	Kind          DeclKind
	QualifiedName string
	Spelling      string

	// IsTemplateSpecialization is set for DeclKindClassTemplateSpecialization
	// and DeclKindStdFunctionSpecialization; TemplateArgs carries its
	// argument list in declaration order (packs not yet flattened — that is
	// internal/extract's job per §4.C).
	IsTemplateSpecialization bool
	TemplateArgs             []TemplateArgNode

	// Function/Method/Constructor fields.
	Params       []ParamDecl
	ReturnType   *QualType
	IsNoexceptEvaluated bool // evaluated effective exception spec, not merely declared (§4.D)

	// Method-only fields.
	IsConstMethod bool
	IsStaticMethod bool
	IsVirtual     bool
	IsPure        bool

	// Enum-only fields.
	Enumerators     []EnumeratorDecl
	UnderlyingType  *QualType

	// Class-only fields.
	IsAbstractDecl bool
	LayoutInfo     Layout
	Traits         RuleOfSeven

	// usr is the canonical id the provider assigns; empty means the
	// provider could not assign one (ProviderUSRUnassigned).
	usr string
	// mangled is the mangled symbol for methods/constructors/functions.
	mangled string
}
