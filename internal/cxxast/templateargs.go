package cxxast

// TemplateArgKind discriminates the AST shapes a single template argument
// can take, before extract_single_template_arg (§4.C) resolves it down to
// an ir.TemplateArg.
type TemplateArgKind uint8

const (
	TemplateArgKindInvalid TemplateArgKind = iota
	TemplateArgKindType
	TemplateArgKindIntegral
	// TemplateArgKindDeclaration, TemplateArgKindNullPtr,
	// TemplateArgKindTemplate are rejected as unsupported unless they fold
	// to an integer (§4.C); TemplateArgKindExpression models exactly that
	// fold attempt.
	TemplateArgKindDeclaration
	TemplateArgKindNullPtr
	TemplateArgKindTemplate
	TemplateArgKindExpression
	// TemplateArgKindPack expands to PackElements, in order, during
	// extraction (§4.C, §8 property 5).
	TemplateArgKindPack
)

// TemplateArgNode is one template argument as the provider enumerates it.
type TemplateArgNode struct {
	Kind TemplateArgKind

	// TemplateArgKindType
	Type *QualType

	// TemplateArgKindIntegral: the provider has already folded this to an
	// exact int64, preserving sign and full 64-bit width (covers both
	// INT64_MAX and INT64_MIN exactly, per §8 property 4).
	IntegralValue int64

	// TemplateArgKindExpression: ExpressionSpelling names the unresolved
	// expression for the diagnostic note when it does not fold (SPEC_FULL
	// §5's supplement to Open Question (a)); FoldsToIntegral/FoldedValue
	// are set when the provider *can* fold it after all.
	ExpressionSpelling string
	FoldsToIntegral    bool
	FoldedValue        int64

	// TemplateArgKindPack
	PackElements []TemplateArgNode
}
