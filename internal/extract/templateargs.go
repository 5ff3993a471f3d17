package extract

import (
	"strconv"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractSingleTemplateArg converts one AST template-argument node into zero
// or more ir.TemplateArg values, implementing extract_single_template_arg
// (§4.C). A non-pack node produces exactly one value; a pack node flattens
// to one value per pack element, in source order.
func ExtractSingleTemplateArg(node cxxast.TemplateArgNode, provider cxxast.Provider, known KnownIDs) ([]ir.TemplateArg, error) {
	switch node.Kind {
	case cxxast.TemplateArgKindType:
		qt, err := ExtractQType(node.Type, provider, known)
		if err != nil {
			return nil, err
		}
		return []ir.TemplateArg{ir.TypeArg(qt)}, nil

	case cxxast.TemplateArgKindIntegral:
		return []ir.TemplateArg{ir.IntegralArg(strconv.FormatInt(node.IntegralValue, 10))}, nil

	case cxxast.TemplateArgKindExpression:
		if node.FoldsToIntegral {
			return []ir.TemplateArg{ir.IntegralArg(strconv.FormatInt(node.FoldedValue, 10))}, nil
		}
		return nil, &UnsupportedTypeError{Spelling: node.ExpressionSpelling, Reason: "non-type template argument does not fold to an integer"}

	case cxxast.TemplateArgKindDeclaration, cxxast.TemplateArgKindNullPtr, cxxast.TemplateArgKindTemplate:
		return nil, &UnsupportedTypeError{Spelling: "<template argument>", Reason: "declaration/nullptr/template non-type arguments are not supported"}

	case cxxast.TemplateArgKindPack:
		var out []ir.TemplateArg
		for _, elem := range node.PackElements {
			args, err := ExtractSingleTemplateArg(elem, provider, known)
			if err != nil {
				return nil, err
			}
			out = append(out, args...)
		}
		return out, nil

	default:
		return nil, &UnsupportedTypeError{Spelling: "<template argument>", Reason: "unrecognized template-argument shape"}
	}
}

// ExtractTemplateArguments extracts every entry of a specialization's
// template-argument list, in declaration order, with packs already
// flattened (§4.C, §8 property 5).
func ExtractTemplateArguments(nodes []cxxast.TemplateArgNode, provider cxxast.Provider, known KnownIDs) ([]ir.TemplateArg, error) {
	var out []ir.TemplateArg
	for _, node := range nodes {
		args, err := ExtractSingleTemplateArg(node, provider, known)
		if err != nil {
			return nil, err
		}
		out = append(out, args...)
	}
	return out, nil
}
