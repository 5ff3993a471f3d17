package extract

import (
	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractStdFunctionBinding builds a StdFunction from a std::function
// specialization declaration, implementing extract_stdfunction_binding
// (§4.D). The single template argument must itself resolve to a function
// signature the provider has already decomposed into a return type and
// parameter types — std::function's template parameter is a function type,
// never a further class or enum, so there is nothing left to recurse into
// via 4.C here.
func ExtractStdFunctionBinding(decl *cxxast.Decl, provider cxxast.Provider, known KnownIDs) (ir.StdFunction, error) {
	usr, ok := provider.USR(decl)
	if !ok {
		return ir.StdFunction{}, &UnsupportedTypeError{Spelling: decl.QualifiedName, Reason: "declaration has no USR"}
	}

	returnType, err := ExtractQType(decl.ReturnType, provider, known)
	if err != nil {
		return ir.StdFunction{}, err
	}

	params := make([]ir.QType, 0, len(decl.Params))
	for _, p := range decl.Params {
		pt, err := ExtractQType(p.Type, provider, known)
		if err != nil {
			return ir.StdFunction{}, err
		}
		params = append(params, pt)
	}

	return ir.StdFunction{
		ID:         ir.StdFunctionID(usr),
		Spelling:   decl.Spelling,
		ReturnType: returnType,
		Params:     params,
	}, nil
}
