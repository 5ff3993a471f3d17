package diag

import "fmt"

// Code is a compact numeric diagnostic identifier, grouped by decade into
// the diagnostic kinds of spec.md §7.
type Code uint16

const (
	// UnknownCode is the zero value, used only as a map-miss sentinel.
	UnknownCode Code = 0

	// Provider* — the AST provider failed to parse or evaluate something
	// (spec.md §7 ProviderError).
	ProviderInfo          Code = 1000
	ProviderParseFailed   Code = 1001
	ProviderLayoutFailed  Code = 1002
	ProviderTraitFailed   Code = 1003
	ProviderMangleFailed  Code = 1004
	ProviderUSRUnassigned Code = 1005

	// Type* — extract_qtype rejected a shape (UnsupportedType) or deferred
	// on an unbound reference (MissingTypeBinding, also raised at link time
	// under the Link* codes below).
	TypeInfo                Code = 2000
	TypeUnsupportedShape     Code = 2001
	TypeVariableLengthArray  Code = 2002
	TypeMemberPointer        Code = 2003
	TypeDependentSurvived    Code = 2004
	TypeFunctionByValue      Code = 2005
	TypeMissingBindingDefer  Code = 2006 // raised during recursive extraction, may be resolved later
	TypeNonConstantArraySize Code = 2007

	// Tpl* — template-argument extraction (§4.C).
	TplInfo                     Code = 2500
	TplUnsupportedArgKind       Code = 2501
	TplUnfoldableExpression     Code = 2502
	TplNullPtrArg               Code = 2503
	TplTemplateTemplateArg      Code = 2504
	TplDeclNonTypeArg           Code = 2505
	TplIntegralOverflow         Code = 2506

	// Marker* — a marker construct in the binding source did not parse into
	// the expected shape (§7 MalformedMarker).
	MarkerInfo                 Code = 3000
	MarkerMalformedModule      Code = 3001
	MarkerMalformedClassSite   Code = 3002
	MarkerMalformedFunctionSite Code = 3003
	MarkerMalformedEnumSite    Code = 3004
	MarkerUnknownSelector      Code = 3005
	MarkerConflictingBindKind  Code = 3006

	// Link* — the post-extraction link phase (§4.F).
	LinkInfo                   Code = 4000
	LinkMissingTypeBinding     Code = 4001
	LinkDanglingModuleRef      Code = 4002
	LinkIDInMultipleModules    Code = 4003
	LinkDuplicateBinding       Code = 4004
	LinkDanglingMethodRef      Code = 4005
	LinkDanglingConstructorRef Code = 4006

	// Bind* — bind-kind policy (§7 InvalidBindKind). Not fatal at
	// extraction: the IR still records what the user asked for.
	BindInfo                    Code = 5000
	BindKindRequiresCopyCtor    Code = 5001
	BindKindRequiresMoveCtor    Code = 5002
	BindKindAbstractValueType   Code = 5003

	// Obs* — observability/tracing diagnostics surfaced through the same
	// channel as everything else (e.g. timing summaries), kept separate so
	// formatters can filter them out by default.
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	ProviderInfo:          "AST provider",
	ProviderParseFailed:   "AST provider failed to parse the translation unit",
	ProviderLayoutFailed:  "AST provider could not report layout for this declaration",
	ProviderTraitFailed:   "AST provider could not evaluate a trait expression",
	ProviderMangleFailed:  "AST provider could not mangle this overload",
	ProviderUSRUnassigned: "declaration has no USR",

	TypeInfo:                "type extraction",
	TypeUnsupportedShape:    "unsupported C++ type shape",
	TypeVariableLengthArray: "variable-length arrays are not supported",
	TypeMemberPointer:       "pointer-to-member types are not supported",
	TypeDependentSurvived:   "dependent type survived template instantiation",
	TypeFunctionByValue:     "function types used by value are not supported",
	TypeMissingBindingDefer: "type refers to a declaration that is not yet bound",
	TypeNonConstantArraySize: "array size is not a compile-time constant",

	TplInfo:                 "template argument extraction",
	TplUnsupportedArgKind:   "unsupported template argument kind",
	TplUnfoldableExpression: "template argument expression did not fold to an integer",
	TplNullPtrArg:           "null pointer template arguments are not supported",
	TplTemplateTemplateArg:  "template-template arguments are not supported",
	TplDeclNonTypeArg:       "declaration-valued non-type template arguments are not supported",
	TplIntegralOverflow:     "non-type template argument does not fit in 64 bits",

	MarkerInfo:                  "marker recognition",
	MarkerMalformedModule:       "module declaration did not parse into (name, ns_from, ns_to)",
	MarkerMalformedClassSite:    "class binding site did not parse into a recognizable shape",
	MarkerMalformedFunctionSite: "function binding site did not parse into a recognizable shape",
	MarkerMalformedEnumSite:     "enum binding site did not parse into a recognizable shape",
	MarkerUnknownSelector:       "unrecognized chained selector on a binding site",
	MarkerConflictingBindKind:   "bind-kind selector chained after another bind-kind selector",

	LinkInfo:                   "link phase",
	LinkMissingTypeBinding:     "type refers to a declaration the user did not bind",
	LinkDanglingModuleRef:      "module references an id with no matching binding",
	LinkIDInMultipleModules:    "id is claimed by more than one module",
	LinkDuplicateBinding:       "id already bound to different content",
	LinkDanglingMethodRef:      "class references a method id with no matching binding",
	LinkDanglingConstructorRef: "class references a constructor id with no matching binding",

	BindInfo:                  "bind-kind policy",
	BindKindRequiresCopyCtor:  "bind_kind other than opaque_ptr requires a copy constructor",
	BindKindRequiresMoveCtor:  "bind_kind other than opaque_ptr requires a move constructor",
	BindKindAbstractValueType: "value_type bind_kind requested for an abstract class",

	ObsInfo:    "observability",
	ObsTimings: "timing summary",
}

// ID renders the stable prefixed identifier for a Code, e.g. "LINK4001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PROV%04d", ic)
	case ic >= 2000 && ic < 2500:
		return fmt.Sprintf("TYPE%04d", ic)
	case ic >= 2500 && ic < 3000:
		return fmt.Sprintf("TPL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MARK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LINK%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("BIND%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description registered for c.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
