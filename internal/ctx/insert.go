package ctx

import (
	"reflect"

	"babble/internal/ir"
)

// insertOrNoop implements the §4.F duplicate policy generically: if key is
// new, it is inserted; if key already exists with structurally identical
// content, the call is a silent no-op; otherwise it is a DuplicateBinding.
func insertOrNoop[K comparable, V any](m *ir.OrderedMap[K, V], key K, value V, kind string, idString string) error {
	if existing, ok := m.Get(key); ok {
		if reflect.DeepEqual(existing, value) {
			return nil
		}
		return &DuplicateBindingError{ID: idString, Kind: kind}
	}
	m.Set(key, value)
	return nil
}

// DeclareModule records a module declaration, creating the module on first
// sight and reusing it on a later declaration in the same or another source
// file with the same name (a module can span several translation units).
// The module becomes linked to sourceFile in both directions, per §3's
// SourceFile/Module relationship.
func (c *Context) DeclareModule(name, namespaceFrom, namespaceTo string, sourceFile ir.SourceFileID) ir.ModuleID {
	id := ir.ModuleID(name)
	mod, ok := c.modules.Get(id)
	if !ok {
		mod = ir.Module{ID: id, Name: name, NamespaceFrom: namespaceFrom, NamespaceTo: namespaceTo}
	}
	mod.SourceFileIDs = appendUnique(mod.SourceFileIDs, sourceFile)
	c.modules.Set(id, mod)

	if sf, ok := c.sourceFiles.Get(sourceFile); ok {
		sf.ModuleIDs = appendUnique(sf.ModuleIDs, id)
		c.sourceFiles.Set(sourceFile, sf)
	}
	return id
}

func appendUnique[T comparable](list []T, v T) []T {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// InsertSourceFile registers a translation unit's filename and inclusions.
func (c *Context) InsertSourceFile(sf ir.SourceFile) error {
	return insertOrNoop(c.sourceFiles, sf.ID, sf, "SourceFile", string(sf.ID))
}

// InsertClassBinding inserts cls, records its kind in the typename map, and
// appends its id to module's ClassIDs list in the order binding sites are
// encountered (§4.E ordering rule).
func (c *Context) InsertClassBinding(cls ir.Class, module ir.ModuleID, isSpecialization bool) error {
	if err := insertOrNoop(c.classes, cls.ID, cls, "Class", string(cls.ID)); err != nil {
		return err
	}
	kind := ir.TypeRefClass
	if isSpecialization {
		kind = ir.TypeRefClassTemplateSpecialization
	}
	c.typeKinds[string(cls.ID)] = kind
	c.typeToModule[string(cls.ID)] = module

	mod, _ := c.modules.Get(module)
	mod.ClassIDs = appendUnique(mod.ClassIDs, cls.ID)
	c.modules.Set(module, mod)
	return nil
}

// InsertFunctionBinding inserts a free function and appends its id to
// module's FunctionIDs list.
func (c *Context) InsertFunctionBinding(fn ir.Function, module ir.ModuleID) error {
	if err := insertOrNoop(c.functions, fn.ID, fn, "Function", string(fn.ID)); err != nil {
		return err
	}
	c.typeToModule[string(fn.ID)] = module

	mod, _ := c.modules.Get(module)
	mod.FunctionIDs = appendUnique(mod.FunctionIDs, fn.ID)
	c.modules.Set(module, mod)
	return nil
}

// InsertStdFunctionBinding inserts a std::function specialization and
// appends its id to module's StdFunctionIDs list.
func (c *Context) InsertStdFunctionBinding(sf ir.StdFunction, module ir.ModuleID) error {
	if err := insertOrNoop(c.stdFunctions, sf.ID, sf, "StdFunction", string(sf.ID)); err != nil {
		return err
	}
	c.typeKinds[string(sf.ID)] = ir.TypeRefStdFunction
	c.typeToModule[string(sf.ID)] = module

	mod, _ := c.modules.Get(module)
	mod.StdFunctionIDs = appendUnique(mod.StdFunctionIDs, sf.ID)
	c.modules.Set(module, mod)
	return nil
}

// InsertEnumBinding inserts an enum and appends its id to module's EnumIDs
// list.
func (c *Context) InsertEnumBinding(e ir.Enum, module ir.ModuleID) error {
	if err := insertOrNoop(c.enums, e.ID, e, "Enum", string(e.ID)); err != nil {
		return err
	}
	c.typeKinds[string(e.ID)] = ir.TypeRefEnum
	c.typeToModule[string(e.ID)] = module

	mod, _ := c.modules.Get(module)
	mod.EnumIDs = appendUnique(mod.EnumIDs, e.ID)
	c.modules.Set(module, mod)
	return nil
}

// InsertMethodBinding inserts method into the method map and appends its id
// to the owning class's MethodIDs list, preserving selector order (§4.E).
func (c *Context) InsertMethodBinding(classID ir.ClassID, method ir.Method) error {
	if err := insertOrNoop(c.methods, method.ID, method, "Method", string(method.ID)); err != nil {
		return err
	}
	cls, ok := c.classes.Get(classID)
	if !ok {
		return &danglingRefError{ID: string(classID), Kind: "Class", From: "InsertMethodBinding"}
	}
	cls.MethodIDs = appendUnique(cls.MethodIDs, method.ID)
	c.classes.Set(classID, cls)
	return nil
}

// InsertConstructorBinding inserts ctor into the constructor map and
// appends its id to the owning class's ConstructorIDs list.
func (c *Context) InsertConstructorBinding(classID ir.ClassID, ctor ir.Constructor) error {
	if err := insertOrNoop(c.constructors, ctor.ID, ctor, "Constructor", string(ctor.ID)); err != nil {
		return err
	}
	cls, ok := c.classes.Get(classID)
	if !ok {
		return &danglingRefError{ID: string(classID), Kind: "Class", From: "InsertConstructorBinding"}
	}
	cls.ConstructorIDs = appendUnique(cls.ConstructorIDs, ctor.ID)
	c.classes.Set(classID, cls)
	return nil
}

// AddFieldToClass appends field to the owning class's Fields list, in
// selector order.
func (c *Context) AddFieldToClass(classID ir.ClassID, field ir.Field) error {
	cls, ok := c.classes.Get(classID)
	if !ok {
		return &danglingRefError{ID: string(classID), Kind: "Class", From: "AddFieldToClass"}
	}
	cls.Fields = append(cls.Fields, field)
	c.classes.Set(classID, cls)
	return nil
}
