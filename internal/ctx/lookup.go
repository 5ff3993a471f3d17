package ctx

import "babble/internal/ir"

// GetClass returns a read-only copy of the class bound under id.
func (c *Context) GetClass(id ir.ClassID) (ir.Class, bool) { return c.classes.Get(id) }

// GetMethod returns a read-only copy of the method bound under id.
func (c *Context) GetMethod(id ir.MethodID) (ir.Method, bool) { return c.methods.Get(id) }

// GetConstructor returns a read-only copy of the constructor bound under id.
func (c *Context) GetConstructor(id ir.ConstructorID) (ir.Constructor, bool) {
	return c.constructors.Get(id)
}

// GetFunction returns a read-only copy of the free function bound under id.
func (c *Context) GetFunction(id ir.FunctionID) (ir.Function, bool) { return c.functions.Get(id) }

// GetStdFunction returns a read-only copy of the std::function specialization
// bound under id.
func (c *Context) GetStdFunction(id ir.StdFunctionID) (ir.StdFunction, bool) {
	return c.stdFunctions.Get(id)
}

// GetEnum returns a read-only copy of the enum bound under id.
func (c *Context) GetEnum(id ir.EnumID) (ir.Enum, bool) { return c.enums.Get(id) }

// GetModule returns a read-only copy of the module bound under id.
func (c *Context) GetModule(id ir.ModuleID) (ir.Module, bool) { return c.modules.Get(id) }

// GetSourceFile returns a read-only copy of the source file bound under id.
func (c *Context) GetSourceFile(id ir.SourceFileID) (ir.SourceFile, bool) {
	return c.sourceFiles.Get(id)
}

// Modules returns every module in insertion order, for IR export (§6.4).
func (c *Context) Modules() []ir.Module { return c.modules.Values() }

// HasClass reports whether id is bound to a class or class-template
// specialization. It satisfies extract.KnownIDs, so a caller can pass a
// live Context to ExtractQType for eager MissingTypeBinding detection;
// internal/match's Run passes nil instead.
func (c *Context) HasClass(id ir.ClassID) bool {
	kind, ok := c.typeKinds[string(id)]
	return ok && (kind == ir.TypeRefClass || kind == ir.TypeRefClassTemplateSpecialization)
}

// HasEnum reports whether id is bound to an enum.
func (c *Context) HasEnum(id ir.EnumID) bool {
	kind, ok := c.typeKinds[string(id)]
	return ok && kind == ir.TypeRefEnum
}

// HasStdFunction reports whether id is bound to a std::function
// specialization.
func (c *Context) HasStdFunction(id ir.StdFunctionID) bool {
	kind, ok := c.typeKinds[string(id)]
	return ok && kind == ir.TypeRefStdFunction
}
