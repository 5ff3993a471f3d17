package ir

import "fmt"

// BuiltinKind enumerates the builtin C++ types extract_qtype can produce
// for the Type(kind) variant of QType. long and unsigned long are
// normalized to their fixed-width equivalents by the platform size the AST
// provider reports (§4.B), so there is no separate "long"/"unsigned long"
// entry here.
type BuiltinKind uint8

const (
	BuiltinInvalid BuiltinKind = iota
	BuiltinVoid
	BuiltinBool
	BuiltinChar
	BuiltinSignedChar
	BuiltinUnsignedChar
	BuiltinInt8
	BuiltinInt16
	BuiltinInt32
	BuiltinInt64
	BuiltinUint8
	BuiltinUint16
	BuiltinUint32
	BuiltinUint64
	BuiltinSizeT
	BuiltinFloat
	BuiltinDouble
	BuiltinLongDouble
)

func (k BuiltinKind) String() string {
	switch k {
	case BuiltinVoid:
		return "void"
	case BuiltinBool:
		return "bool"
	case BuiltinChar:
		return "char"
	case BuiltinSignedChar:
		return "signed char"
	case BuiltinUnsignedChar:
		return "unsigned char"
	case BuiltinInt8:
		return "int8_t"
	case BuiltinInt16:
		return "int16_t"
	case BuiltinInt32:
		return "int32_t"
	case BuiltinInt64:
		return "int64_t"
	case BuiltinUint8:
		return "uint8_t"
	case BuiltinUint16:
		return "uint16_t"
	case BuiltinUint32:
		return "uint32_t"
	case BuiltinUint64:
		return "uint64_t"
	case BuiltinSizeT:
		return "size_t"
	case BuiltinFloat:
		return "float"
	case BuiltinDouble:
		return "double"
	case BuiltinLongDouble:
		return "long double"
	default:
		return fmt.Sprintf("BuiltinKind(%d)", k)
	}
}

// TypeRefKind discriminates the non-builtin variant of Type(kind): the
// referenced declaration is a class, a class-template specialization, an
// enum, or a std::function specialization.
type TypeRefKind uint8

const (
	TypeRefNone TypeRefKind = iota
	TypeRefClass
	TypeRefClassTemplateSpecialization
	TypeRefEnum
	TypeRefStdFunction
)

// QTypeVariant discriminates the five shapes a QType can take (§3).
type QTypeVariant uint8

const (
	QTypeInvalid QTypeVariant = iota
	QTypeBuiltin
	QTypeRef
	QTypePointer
	QTypeLValueReference
	QTypeRValueReference
	QTypeArray
)

// ArrayNoSize marks that an array's element count was not a compile-time
// constant; extract_qtype never actually produces this — it is rejected
// with UnsupportedType before a QType is built (§4.B) — but the zero value
// of Size must not be mistaken for a declared size of zero, so QType.Array
// always carries an explicit, already-validated size.
const ArrayNoSize = ^uint32(0)

// QType is the qualified-type sum described in spec.md §3. IsConst lives
// outside the variant so that "const T*" (a Pointer whose Pointee has
// IsConst=true) and "T* const" (a Pointer with IsConst=true) remain
// distinguishable. Pointer/LValueReference/RValueReference/Array recurse
// through the heap-allocated Pointee/Element field rather than an arena
// index: unlike Class/Enum/Function, QType is explicitly *not* hash-consed
// (spec.md Design Notes) — every QType value exclusively owns its own tree.
type QType struct {
	Variant QTypeVariant
	IsConst bool

	// QTypeBuiltin
	Builtin BuiltinKind

	// QTypeRef
	RefKind TypeRefKind
	RefID   string // ClassID, EnumID, or StdFunctionID depending on RefKind

	// QTypePointer / QTypeLValueReference / QTypeRValueReference
	Pointee *QType

	// QTypeArray
	Element *QType
	Size    uint32
}

// Builtin constructs a Type(kind) QType for a builtin kind.
func Builtin(kind BuiltinKind, isConst bool) QType {
	return QType{Variant: QTypeBuiltin, IsConst: isConst, Builtin: kind}
}

// ClassRef constructs a Type(kind) QType referring to a bound class.
func ClassRef(id ClassID, isConst bool) QType {
	return QType{Variant: QTypeRef, IsConst: isConst, RefKind: TypeRefClass, RefID: string(id)}
}

// ClassTemplateSpecializationRef constructs a Type(kind) QType referring to
// a bound class-template specialization.
func ClassTemplateSpecializationRef(id ClassID, isConst bool) QType {
	return QType{Variant: QTypeRef, IsConst: isConst, RefKind: TypeRefClassTemplateSpecialization, RefID: string(id)}
}

// EnumRef constructs a Type(kind) QType referring to a bound enum.
func EnumRef(id EnumID, isConst bool) QType {
	return QType{Variant: QTypeRef, IsConst: isConst, RefKind: TypeRefEnum, RefID: string(id)}
}

// StdFunctionRef constructs a Type(kind) QType referring to a bound
// std::function specialization.
func StdFunctionRef(id StdFunctionID, isConst bool) QType {
	return QType{Variant: QTypeRef, IsConst: isConst, RefKind: TypeRefStdFunction, RefID: string(id)}
}

// PointerTo wraps pointee in a Pointer variant.
func PointerTo(pointee QType, isConst bool) QType {
	return QType{Variant: QTypePointer, IsConst: isConst, Pointee: &pointee}
}

// LValueReferenceTo wraps pointee in an LValueReference variant.
func LValueReferenceTo(pointee QType, isConst bool) QType {
	return QType{Variant: QTypeLValueReference, IsConst: isConst, Pointee: &pointee}
}

// RValueReferenceTo wraps pointee in an RValueReference variant.
func RValueReferenceTo(pointee QType, isConst bool) QType {
	return QType{Variant: QTypeRValueReference, IsConst: isConst, Pointee: &pointee}
}

// ArrayOf wraps element in an Array variant of the given constant size.
func ArrayOf(element QType, size uint32, isConst bool) QType {
	return QType{Variant: QTypeArray, IsConst: isConst, Element: &element, Size: size}
}

// Equal reports whether q and other describe structurally identical types.
// QType equality is required to be structural (§4.A: "Equality is
// structural"), which is exactly what recursing on the owned Pointee/Element
// pointers gives us — there is no interning to compare by identity.
func (q QType) Equal(other QType) bool {
	if q.Variant != other.Variant || q.IsConst != other.IsConst {
		return false
	}
	switch q.Variant {
	case QTypeBuiltin:
		return q.Builtin == other.Builtin
	case QTypeRef:
		return q.RefKind == other.RefKind && q.RefID == other.RefID
	case QTypePointer, QTypeLValueReference, QTypeRValueReference:
		return pointeeEqual(q.Pointee, other.Pointee)
	case QTypeArray:
		return q.Size == other.Size && pointeeEqual(q.Element, other.Element)
	default:
		return true
	}
}

func pointeeEqual(a, b *QType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// TemplateArgVariant discriminates the two shapes TemplateArg can take.
type TemplateArgVariant uint8

const (
	TemplateArgInvalid TemplateArgVariant = iota
	TemplateArgType
	TemplateArgIntegral
)

// TemplateArg is either a QType or an Integral whose Value preserves the
// full 64-bit decimal representation, sign included (§3, §8 property 4).
type TemplateArg struct {
	Variant TemplateArgVariant
	Type    QType
	Value   string // decimal, e.g. "9223372036854775807" or "-3"
}

// TypeArg constructs a TemplateArg wrapping a QType.
func TypeArg(t QType) TemplateArg {
	return TemplateArg{Variant: TemplateArgType, Type: t}
}

// IntegralArg constructs a TemplateArg wrapping a decimal integral value.
func IntegralArg(decimal string) TemplateArg {
	return TemplateArg{Variant: TemplateArgIntegral, Value: decimal}
}
