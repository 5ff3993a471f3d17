package extract

import (
	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractConstructorBinding builds a Constructor from a constructor
// declaration, implementing extract_constructor_binding (§4.D). Default,
// copy, and move constructors are not distinguished at this level — the
// emitter decides how to name an overload when Rename is empty.
func ExtractConstructorBinding(decl *cxxast.Decl, rename string, provider cxxast.Provider, known KnownIDs) (ir.Constructor, error) {
	mangled, err := provider.Mangle(decl)
	if err != nil {
		return ir.Constructor{}, err
	}

	params := make([]ir.Param, 0, len(decl.Params))
	for _, p := range decl.Params {
		pt, err := ExtractQType(p.Type, provider, known)
		if err != nil {
			return ir.Constructor{}, err
		}
		params = append(params, ir.Param{Name: p.Name, Type: pt})
	}

	return ir.Constructor{
		ID:         ir.ConstructorID(mangled),
		Rename:     rename,
		Params:     params,
		IsNoexcept: provider.IsNoexcept(decl),
	}, nil
}
