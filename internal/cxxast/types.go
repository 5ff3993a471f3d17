// Package cxxast is the AST provider contract described abstractly in
// spec.md §6.1: qualified-name resolution, canonical desugared types,
// declaration USRs, record layout queries, trait-expression evaluation,
// template-argument enumeration, name mangling, enumerator extraction, and
// exception-specification evaluation. Any real C++ front-end that exposes
// these operations qualifies; this package also ships an in-memory fake
// used by tests in lieu of one. It is not a C++ parser — there is no
// source text here, only the object graph a real parser would hand back.
package cxxast

import "babble/internal/ir"

// QualTypeKind mirrors the shape of ir.QType one level before extraction:
// a qualified-type node as the provider reports it, already desugared
// (typedef/alias chains resolved) but not yet classified into ir.QType.
type QualTypeKind uint8

const (
	QualKindInvalid QualTypeKind = iota
	QualKindBuiltin
	QualKindPointer
	QualKindLValueReference
	QualKindRValueReference
	QualKindArray
	QualKindEnum
	QualKindClass
	QualKindClassTemplateSpecialization
	QualKindStdFunction
	// QualKindUnsupported covers member pointers, function types used by
	// value, variable-length arrays, and dependent types that survived
	// instantiation — every shape extract_qtype rejects outright (§4.B).
	QualKindUnsupported
)

// BuiltinSpelling is the provider's builtin-kind vocabulary, reported
// before the extractor's fixed table (§4.B) maps it onto ir.BuiltinKind.
// It is deliberately richer than ir.BuiltinKind: Long/UnsignedLong exist
// here because the extractor — not the provider — normalizes them to their
// fixed-width equivalent using the provider's reported platform size.
type BuiltinSpelling uint8

const (
	BuiltinSpellingInvalid BuiltinSpelling = iota
	BuiltinSpellingVoid
	BuiltinSpellingBool
	BuiltinSpellingChar
	BuiltinSpellingSignedChar
	BuiltinSpellingUnsignedChar
	BuiltinSpellingShort
	BuiltinSpellingUnsignedShort
	BuiltinSpellingInt
	BuiltinSpellingUnsignedInt
	BuiltinSpellingLong
	BuiltinSpellingUnsignedLong
	BuiltinSpellingLongLong
	BuiltinSpellingUnsignedLongLong
	BuiltinSpellingSizeT
	BuiltinSpellingFloat
	BuiltinSpellingDouble
	BuiltinSpellingLongDouble
)

// QualType is a C++ qualified-type node as the provider reports it.
type QualType struct {
	IsConst bool
	Kind    QualTypeKind

	Builtin BuiltinSpelling

	// QualKindPointer / QualKindLValueReference / QualKindRValueReference
	Pointee *QualType

	// QualKindArray
	Element *QualType
	// ArraySize is nil when the size is not a compile-time constant —
	// extract_qtype must reject that with UnsupportedType (§4.B) rather
	// than guessing a size.
	ArraySize *uint32

	// QualKindEnum / QualKindClass / QualKindClassTemplateSpecialization /
	// QualKindStdFunction
	Decl *Decl

	// LongWidthBits is the platform width the provider reports for `long`/
	// `unsigned long`, used only when Builtin is Long/UnsignedLong (§4.B).
	LongWidthBits int
}

// Layout and RuleOfSeven are reused directly from ir: they are facts the
// provider supplies, not something cxxast or the extractor computes, so
// there is no separate cxxast-local type to keep in sync.
type (
	Layout      = ir.Layout
	RuleOfSeven = ir.RuleOfSeven
)
