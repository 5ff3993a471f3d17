// Package ir holds the passive value types that make up the extracted IR:
// QType/TemplateArg sum types, the Function/Method/Constructor/Class/Enum/
// StdFunction/Module/SourceFile entities, insertion-order maps, and the
// deterministic dump printers used by golden-file tests.
package ir

// ClassID is the USR (or equivalent canonical mangled string) of a class or
// class-template specialization declaration. It is the sole cross-binding
// link to a Class — bindings never hold direct references to each other.
type ClassID string

// NoClassID is the zero value, used only as a map-miss sentinel.
const NoClassID ClassID = ""

// MethodID is the mangled symbol of a specific method overload.
type MethodID string

// NoMethodID is the zero value, used only as a map-miss sentinel.
const NoMethodID MethodID = ""

// ConstructorID is the mangled symbol of a specific constructor overload.
type ConstructorID string

// NoConstructorID is the zero value, used only as a map-miss sentinel.
const NoConstructorID ConstructorID = ""

// FunctionID is the mangled symbol of a free function overload.
type FunctionID string

// NoFunctionID is the zero value, used only as a map-miss sentinel.
const NoFunctionID FunctionID = ""

// EnumID is the USR of an enum declaration.
type EnumID string

// NoEnumID is the zero value, used only as a map-miss sentinel.
const NoEnumID EnumID = ""

// StdFunctionID is the USR of a std::function specialization.
type StdFunctionID string

// NoStdFunctionID is the zero value, used only as a map-miss sentinel.
const NoStdFunctionID StdFunctionID = ""

// ModuleID is the name of a bound module; module names are unique within a
// Context by construction (§4.F).
type ModuleID string

// NoModuleID is the zero value, used only as a map-miss sentinel.
const NoModuleID ModuleID = ""

// SourceFileID is the normalized path of a binding-source file.
type SourceFileID string

// NoSourceFileID is the zero value, used only as a map-miss sentinel.
const NoSourceFileID SourceFileID = ""
