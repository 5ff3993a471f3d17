package extract

import (
	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractClassBinding builds a Class from a class-or-specialization
// declaration and the facts the matcher has already computed for it
// (layout, bind kind, rule-of-seven, abstractness), implementing
// extract_class_binding (§4.D). MethodIDs/ConstructorIDs/Fields start empty:
// they grow as the matcher encounters chained selectors on the same binding
// site and calls ExtractMethodBinding/ExtractConstructorBinding in turn.
//
// A bind kind other than OpaquePtr that the rule-of-seven vector cannot
// support is not rejected here — the IR always records what the user
// asked for (§4.D policy); it is the emitter's job to turn that into a
// compile-time assertion (S6).
func ExtractClassBinding(
	decl *cxxast.Decl,
	spelling, rename string,
	layout ir.Layout,
	bindKind ir.BindKind,
	ruleOfSeven ir.RuleOfSeven,
	isAbstract bool,
	provider cxxast.Provider,
	known KnownIDs,
) (ir.Class, error) {
	usr, ok := provider.USR(decl)
	if !ok {
		return ir.Class{}, &UnsupportedTypeError{Spelling: decl.QualifiedName, Reason: "declaration has no USR"}
	}

	qualifiedName := provider.QualifiedName(decl)

	var templateArgs []ir.TemplateArg
	if decl.IsTemplateSpecialization {
		args, err := ExtractTemplateArguments(provider.TemplateArguments(decl), provider, known)
		if err != nil {
			return ir.Class{}, err
		}
		templateArgs = args
	}

	return ir.Class{
		ID:            ir.ClassID(usr),
		QualifiedName: qualifiedName,
		Spelling:      spelling,
		Name:          shortName(qualifiedName),
		Rename:        rename,
		TemplateArgs:  templateArgs,
		Fields:        nil,
		LayoutInfo:    layout,
		BindKind:      bindKind,
		RuleOfSeven:   ruleOfSeven,
		IsAbstract:    isAbstract,
	}, nil
}
