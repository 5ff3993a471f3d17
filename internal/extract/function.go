package extract

import (
	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractFunctionBinding builds a Function from a free-function declaration
// and the marker-site text the matcher captured, implementing
// extract_function_binding (§4.D). The function's id is the provider's
// mangled symbol, disambiguating overloads exactly as a method's id does.
func ExtractFunctionBinding(decl *cxxast.Decl, rename, templateCall string, provider cxxast.Provider, known KnownIDs) (ir.Function, error) {
	mangled, err := provider.Mangle(decl)
	if err != nil {
		return ir.Function{}, err
	}

	returnType, params, err := extractSignature(decl, provider, known)
	if err != nil {
		return ir.Function{}, err
	}

	qualifiedName := provider.QualifiedName(decl)

	return ir.Function{
		ID:            ir.FunctionID(mangled),
		QualifiedName: qualifiedName,
		Name:          shortName(qualifiedName),
		Rename:        rename,
		Spelling:      decl.Spelling,
		TemplateCall:  templateCall,
		ReturnType:    returnType,
		Params:        params,
		IsNoexcept:    provider.IsNoexcept(decl),
	}, nil
}

// ExtractMethodBinding builds a Method wrapping the Function half of a
// member-function declaration, implementing extract_method_binding (§4.D).
// The method's own id is the mangled symbol; the embedded Function carries
// no separate id of its own (only free functions populate the function map).
func ExtractMethodBinding(decl *cxxast.Decl, rename, templateCall string, provider cxxast.Provider, known KnownIDs) (ir.Method, error) {
	mangled, err := provider.Mangle(decl)
	if err != nil {
		return ir.Method{}, err
	}

	returnType, params, err := extractSignature(decl, provider, known)
	if err != nil {
		return ir.Method{}, err
	}

	qualifiedName := provider.QualifiedName(decl)

	fn := ir.Function{
		QualifiedName: qualifiedName,
		Name:          shortName(qualifiedName),
		Rename:        rename,
		Spelling:      decl.Spelling,
		TemplateCall:  templateCall,
		ReturnType:    returnType,
		Params:        params,
		IsNoexcept:    provider.IsNoexcept(decl),
	}

	return ir.Method{
		ID:        ir.MethodID(mangled),
		Function:  fn,
		IsConst:   decl.IsConstMethod,
		IsStatic:  decl.IsStaticMethod,
		IsVirtual: decl.IsVirtual,
		IsPure:    decl.IsPure,
	}, nil
}

// extractSignature extracts a declaration's return type and parameter
// types/names, shared by free-function and method extraction. A parameter
// the declaration left unnamed is carried through as an empty Name — the
// emitter, not this package, synthesizes arg0, arg1, … (§4.D).
func extractSignature(decl *cxxast.Decl, provider cxxast.Provider, known KnownIDs) (ir.QType, []ir.Param, error) {
	returnType, err := ExtractQType(decl.ReturnType, provider, known)
	if err != nil {
		return ir.QType{}, nil, err
	}

	params := make([]ir.Param, 0, len(decl.Params))
	for _, p := range decl.Params {
		pt, err := ExtractQType(p.Type, provider, known)
		if err != nil {
			return ir.QType{}, nil, err
		}
		params = append(params, ir.Param{Name: p.Name, Type: pt})
	}
	return returnType, params, nil
}
