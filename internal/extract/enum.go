package extract

import (
	"strconv"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

// ExtractEnumBinding builds an Enum from an enum declaration, implementing
// extract_enum_binding (§4.D). Enumerators are carried over in declaration
// order; each value is rendered as a decimal string using the width/sign
// the provider reports for that particular enumerator.
func ExtractEnumBinding(decl *cxxast.Decl, rename string, provider cxxast.Provider, known KnownIDs) (ir.Enum, error) {
	integerType, err := ExtractQType(decl.UnderlyingType, provider, known)
	if err != nil {
		return ir.Enum{}, err
	}

	usr, ok := provider.USR(decl)
	if !ok {
		return ir.Enum{}, &UnsupportedTypeError{Spelling: decl.QualifiedName, Reason: "declaration has no USR"}
	}
	variants := make([]ir.EnumVariant, 0, len(decl.Enumerators))
	for _, e := range decl.Enumerators {
		var value string
		if e.IsUnsigned {
			value = strconv.FormatUint(e.UnsignedValue, 10)
		} else {
			value = strconv.FormatInt(e.SignedValue, 10)
		}
		variants = append(variants, ir.EnumVariant{Name: e.Name, Value: value})
	}

	return ir.Enum{
		ID:          ir.EnumID(usr),
		Spelling:    decl.Spelling,
		Rename:      rename,
		Variants:    variants,
		IntegerType: integerType,
	}, nil
}
