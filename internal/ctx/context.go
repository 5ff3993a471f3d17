// Package ctx implements the Context/linker (§4.F): it owns every id-keyed
// map the extraction engine populates, assigns bindings to modules, and
// runs the post-extraction link phase that enforces the cross-reference
// invariants of spec.md §3.
package ctx

import (
	"babble/internal/ir"
)

// Context owns the seven id-keyed maps of §4.F (class, method, constructor,
// function, stdfunction, enum, and the "typename" map — here typeKinds,
// recording whether an id belongs to the class, enum, or stdfunction map so
// QType leaves can be resolved without probing every map in turn) plus the module, type→module,
// and source-file maps. It is the sole shared state of one run (§5): owned
// exclusively by that run, read-only once extraction has finished.
type Context struct {
	classes       *ir.OrderedMap[ir.ClassID, ir.Class]
	methods       *ir.OrderedMap[ir.MethodID, ir.Method]
	constructors  *ir.OrderedMap[ir.ConstructorID, ir.Constructor]
	functions     *ir.OrderedMap[ir.FunctionID, ir.Function]
	stdFunctions  *ir.OrderedMap[ir.StdFunctionID, ir.StdFunction]
	enums         *ir.OrderedMap[ir.EnumID, ir.Enum]
	sourceFiles   *ir.OrderedMap[ir.SourceFileID, ir.SourceFile]
	modules       *ir.OrderedMap[ir.ModuleID, ir.Module]

	// typeKinds is the "typename" map of §4.F: every id that can appear as
	// a QType leaf (class, class-template-specialization, enum, or
	// std::function) maps here to the kind of entity that owns it, so
	// HasClass/HasEnum/HasStdFunction and the link phase can answer "does
	// this id resolve, and as what" in one lookup instead of three.
	typeKinds map[string]ir.TypeRefKind

	// typeToModule records which module, if any, owns a given class,
	// function, stdfunction, or enum id — the "type→module" map §4.F calls
	// out separately from the id-keyed entity maps themselves.
	typeToModule map[string]ir.ModuleID
}

// New creates an empty Context.
func New() *Context {
	return &Context{
		classes:      ir.NewOrderedMap[ir.ClassID, ir.Class](),
		methods:      ir.NewOrderedMap[ir.MethodID, ir.Method](),
		constructors: ir.NewOrderedMap[ir.ConstructorID, ir.Constructor](),
		functions:    ir.NewOrderedMap[ir.FunctionID, ir.Function](),
		stdFunctions: ir.NewOrderedMap[ir.StdFunctionID, ir.StdFunction](),
		enums:        ir.NewOrderedMap[ir.EnumID, ir.Enum](),
		sourceFiles:  ir.NewOrderedMap[ir.SourceFileID, ir.SourceFile](),
		modules:      ir.NewOrderedMap[ir.ModuleID, ir.Module](),
		typeKinds:    make(map[string]ir.TypeRefKind),
		typeToModule: make(map[string]ir.ModuleID),
	}
}
