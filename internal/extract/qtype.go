package extract

import (
	"babble/internal/cxxast"
	"babble/internal/ir"
)

// KnownIDs lets ExtractQType eagerly check whether a referenced id is
// already bound, so a caller can catch MissingTypeBindingError before the
// link phase (internal/match's Run does not: it passes nil). Passing a nil
// KnownIDs to ExtractQType skips the eager check entirely — extraction
// always succeeds and internal/ctx's link phase (§4.F) catches any
// still-unresolved reference once every translation unit has been walked.
type KnownIDs interface {
	HasClass(id ir.ClassID) bool
	HasEnum(id ir.EnumID) bool
	HasStdFunction(id ir.StdFunctionID) bool
}

// builtinTable maps the provider's builtin vocabulary onto the fixed
// ir.BuiltinKind table §4.B calls for. Long and unsigned long are not
// here: ExtractQType normalizes them by platform width before consulting
// this table.
var builtinTable = map[cxxast.BuiltinSpelling]ir.BuiltinKind{
	cxxast.BuiltinSpellingVoid:             ir.BuiltinVoid,
	cxxast.BuiltinSpellingBool:             ir.BuiltinBool,
	cxxast.BuiltinSpellingChar:             ir.BuiltinChar,
	cxxast.BuiltinSpellingSignedChar:       ir.BuiltinSignedChar,
	cxxast.BuiltinSpellingUnsignedChar:     ir.BuiltinUnsignedChar,
	cxxast.BuiltinSpellingShort:            ir.BuiltinInt16,
	cxxast.BuiltinSpellingUnsignedShort:    ir.BuiltinUint16,
	cxxast.BuiltinSpellingInt:              ir.BuiltinInt32,
	cxxast.BuiltinSpellingUnsignedInt:      ir.BuiltinUint32,
	cxxast.BuiltinSpellingLongLong:         ir.BuiltinInt64,
	cxxast.BuiltinSpellingUnsignedLongLong: ir.BuiltinUint64,
	cxxast.BuiltinSpellingSizeT:            ir.BuiltinSizeT,
	cxxast.BuiltinSpellingFloat:            ir.BuiltinFloat,
	cxxast.BuiltinSpellingDouble:           ir.BuiltinDouble,
	cxxast.BuiltinSpellingLongDouble:       ir.BuiltinLongDouble,
}

// ExtractQType converts one AST qualified-type node into an ir.QType,
// implementing §4.B's algorithm. provider resolves USRs; known (optional)
// lets callers catch a missing binding eagerly instead of deferring to the
// link phase.
func ExtractQType(q *cxxast.QualType, provider cxxast.Provider, known KnownIDs) (ir.QType, error) {
	canon := provider.CanonicalType(q)
	return extractCanonical(canon, provider, known)
}

func extractCanonical(q *cxxast.QualType, provider cxxast.Provider, known KnownIDs) (ir.QType, error) {
	switch q.Kind {
	case cxxast.QualKindBuiltin:
		return extractBuiltin(q)

	case cxxast.QualKindPointer:
		pointee, err := extractCanonical(provider.CanonicalType(q.Pointee), provider, known)
		if err != nil {
			return ir.QType{}, err
		}
		return ir.PointerTo(pointee, q.IsConst), nil

	case cxxast.QualKindLValueReference:
		pointee, err := extractCanonical(provider.CanonicalType(q.Pointee), provider, known)
		if err != nil {
			return ir.QType{}, err
		}
		return ir.LValueReferenceTo(pointee, q.IsConst), nil

	case cxxast.QualKindRValueReference:
		pointee, err := extractCanonical(provider.CanonicalType(q.Pointee), provider, known)
		if err != nil {
			return ir.QType{}, err
		}
		return ir.RValueReferenceTo(pointee, q.IsConst), nil

	case cxxast.QualKindArray:
		if q.ArraySize == nil {
			return ir.QType{}, &UnsupportedTypeError{Spelling: "array", Reason: "variable-length arrays are not supported"}
		}
		elem, err := extractCanonical(provider.CanonicalType(q.Element), provider, known)
		if err != nil {
			return ir.QType{}, err
		}
		return ir.ArrayOf(elem, *q.ArraySize, q.IsConst), nil

	case cxxast.QualKindEnum:
		usr, ok := provider.USR(q.Decl)
		if !ok {
			return ir.QType{}, &UnsupportedTypeError{Spelling: q.Decl.QualifiedName, Reason: "declaration has no USR"}
		}
		id := ir.EnumID(usr)
		if known != nil && !known.HasEnum(id) {
			return ir.QType{}, &MissingTypeBindingError{Spelling: q.Decl.QualifiedName, ID: usr}
		}
		return ir.EnumRef(id, q.IsConst), nil

	case cxxast.QualKindClass:
		usr, ok := provider.USR(q.Decl)
		if !ok {
			return ir.QType{}, &UnsupportedTypeError{Spelling: q.Decl.QualifiedName, Reason: "declaration has no USR"}
		}
		id := ir.ClassID(usr)
		if known != nil && !known.HasClass(id) {
			return ir.QType{}, &MissingTypeBindingError{Spelling: q.Decl.QualifiedName, ID: usr}
		}
		return ir.ClassRef(id, q.IsConst), nil

	case cxxast.QualKindClassTemplateSpecialization:
		usr, ok := provider.USR(q.Decl)
		if !ok {
			return ir.QType{}, &UnsupportedTypeError{Spelling: q.Decl.QualifiedName, Reason: "declaration has no USR"}
		}
		id := ir.ClassID(usr)
		if known != nil && !known.HasClass(id) {
			return ir.QType{}, &MissingTypeBindingError{Spelling: q.Decl.QualifiedName, ID: usr}
		}
		return ir.ClassTemplateSpecializationRef(id, q.IsConst), nil

	case cxxast.QualKindStdFunction:
		usr, ok := provider.USR(q.Decl)
		if !ok {
			return ir.QType{}, &UnsupportedTypeError{Spelling: q.Decl.QualifiedName, Reason: "declaration has no USR"}
		}
		id := ir.StdFunctionID(usr)
		if known != nil && !known.HasStdFunction(id) {
			return ir.QType{}, &MissingTypeBindingError{Spelling: q.Decl.QualifiedName, ID: usr}
		}
		return ir.StdFunctionRef(id, q.IsConst), nil

	default:
		return ir.QType{}, &UnsupportedTypeError{Spelling: "<unknown>", Reason: "unsupported or dependent type shape"}
	}
}

func extractBuiltin(q *cxxast.QualType) (ir.QType, error) {
	switch q.Builtin {
	case cxxast.BuiltinSpellingLong:
		if q.LongWidthBits == 32 {
			return ir.Builtin(ir.BuiltinInt32, q.IsConst), nil
		}
		return ir.Builtin(ir.BuiltinInt64, q.IsConst), nil
	case cxxast.BuiltinSpellingUnsignedLong:
		if q.LongWidthBits == 32 {
			return ir.Builtin(ir.BuiltinUint32, q.IsConst), nil
		}
		return ir.Builtin(ir.BuiltinUint64, q.IsConst), nil
	}

	kind, ok := builtinTable[q.Builtin]
	if !ok {
		return ir.QType{}, &UnsupportedTypeError{Spelling: "builtin", Reason: "unrecognized builtin kind"}
	}
	return ir.Builtin(kind, q.IsConst), nil
}
