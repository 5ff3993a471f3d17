package ir

// Param is one parameter of a Function or Constructor. Name is empty when
// the underlying declaration did not name the parameter; the emitter
// synthesizes arg0, arg1, … at that point (§4.D) — this package never does.
type Param struct {
	Name string
	Type QType
}

// Function describes a free function or the function half of a Method
// (§3). ID is only meaningful for free functions; Method embeds a Function
// value without a separate Function map entry.
type Function struct {
	ID             FunctionID
	QualifiedName  string
	Name           string
	Rename         string
	Spelling       string
	TemplateCall   string
	ReturnType     QType
	Params         []Param
	IsNoexcept     bool
}

// Method wraps a Function and adds the member-function qualifiers §3 calls
// out separately from free functions.
type Method struct {
	ID       MethodID
	Function Function
	IsConst  bool
	IsStatic bool
	IsVirtual bool
	IsPure   bool
}

// Constructor describes one constructor overload bound on a class. Default,
// copy, and move constructors are not distinguished at IR level (§4.D); the
// emitter decides how to name them when Rename is empty.
type Constructor struct {
	ID         ConstructorID
	Rename     string
	Params     []Param
	IsNoexcept bool
}

// BindKind selects how a class crosses the ABI.
type BindKind uint8

const (
	// OpaquePtr exposes the class as an opaque pointer handle.
	OpaquePtr BindKind = iota
	// OpaqueBytes exposes the class as a byte blob of known size/align.
	OpaqueBytes
	// ValueType exposes the class as a field-for-field mirror struct.
	ValueType
)

func (k BindKind) String() string {
	switch k {
	case OpaquePtr:
		return "opaque_ptr"
	case OpaqueBytes:
		return "opaque_bytes"
	case ValueType:
		return "value_type"
	default:
		return "bind_kind(?)"
	}
}

// Layout carries the ABI-relevant size and alignment of a class, as
// reported by the AST provider's layout service (§6.1) — this package
// never computes it.
type Layout struct {
	SizeBytes  uint64
	AlignBytes uint64
}

// RuleOfSeven packs the ten boolean traits §3/GLOSSARY calls "Rule of
// Seven": copy/move construct+assign crossed with nothrow, plus
// destructible and virtual-destructor. Field order matches the glossary's
// enumeration so dumps are stable regardless of how a caller builds the
// struct literal.
type RuleOfSeven struct {
	IsCopyConstructible        bool
	IsNothrowCopyConstructible bool
	IsMoveConstructible        bool
	IsNothrowMoveConstructible bool
	IsCopyAssignable           bool
	IsNothrowCopyAssignable    bool
	IsMoveAssignable           bool
	IsNothrowMoveAssignable    bool
	IsDestructible             bool
	HasVirtualDestructor       bool
}

// Field is one user-requested field of a class bound for value/byte access.
// Per §4.D, a class's field list starts empty and grows only as E encounters
// field selectors chained on the class's binding site.
type Field struct {
	Name string
	Type QType
}

// Class describes a bound class or class-template specialization (§3).
// The "ctx back-reference" the spec's Design Notes mention is realized as
// option (a) from that note — ids are resolved through ctx.Context's lookup
// methods, and ir.Printer prints ids without needing a Context — rather than
// a field here, to avoid an ownership cycle between this package and
// internal/ctx.
type Class struct {
	ID            ClassID
	QualifiedName string
	Spelling      string
	Name          string
	Rename        string
	TemplateArgs  []TemplateArg
	MethodIDs     []MethodID
	ConstructorIDs []ConstructorID
	Fields        []Field
	LayoutInfo    Layout
	BindKind      BindKind
	RuleOfSeven   RuleOfSeven
	IsAbstract    bool
}

// EnumVariant is one enumerator of a bound enum, value rendered as a decimal
// string per the enum's underlying signed/unsigned width (§4.D).
type EnumVariant struct {
	Name  string
	Value string
}

// Enum describes a bound enum (§3).
type Enum struct {
	ID           EnumID
	Spelling     string
	Rename       string
	Variants     []EnumVariant
	IntegerType  QType
}

// StdFunction describes a bound std::function specialization (§3).
type StdFunction struct {
	ID         StdFunctionID
	Spelling   string
	ReturnType QType
	Params     []QType
}

// Inclusion is one #include directive seen in a binding-source file (§3,
// SPEC_FULL §5's inclusion-tracking supplement).
type Inclusion struct {
	DirectiveText string
	IncludedFile  string
	IsAngled      bool // angle-bracket (system) vs quoted (local)
}

// SourceFile is one binding-source translation unit (§3).
type SourceFile struct {
	ID          SourceFileID
	Filename    string
	Inclusions  []Inclusion
	ModuleIDs   []ModuleID
}

// Module groups the ids bound under one module declaration (§3).
type Module struct {
	ID              ModuleID
	Name            string
	SourceFileIDs   []SourceFileID
	ClassIDs        []ClassID
	FunctionIDs     []FunctionID
	StdFunctionIDs  []StdFunctionID
	EnumIDs         []EnumID
	NamespaceFrom   string
	NamespaceTo     string
}
