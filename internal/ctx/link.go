package ctx

import (
	"sort"

	"babble/internal/ir"
)

// Link runs the post-extraction link phase (§4.F): it re-walks every QType
// leaf across every binding, confirms each module's id-lists point to
// bindings that exist, and confirms no id belongs to more than one module.
// It returns every violation found rather than stopping at the first one,
// matching §7's "errors are aggregated into a single report" policy; a nil
// or empty result means the Context is fully linked.
func (c *Context) Link() []error {
	var errs []error

	for _, cls := range c.classes.Values() {
		errs = append(errs, c.checkQTypeRefs(cls.Fields, "Class "+string(cls.ID))...)
		for _, arg := range cls.TemplateArgs {
			if arg.Variant == ir.TemplateArgType {
				errs = append(errs, c.checkQTypeLeaf(arg.Type, "Class "+string(cls.ID))...)
			}
		}
		for _, methodID := range cls.MethodIDs {
			if !c.methods.Has(methodID) {
				errs = append(errs, &danglingRefError{ID: string(methodID), Kind: "Method", From: "Class " + string(cls.ID)})
			}
		}
		for _, ctorID := range cls.ConstructorIDs {
			if !c.constructors.Has(ctorID) {
				errs = append(errs, &danglingRefError{ID: string(ctorID), Kind: "Constructor", From: "Class " + string(cls.ID)})
			}
		}
	}

	for _, m := range c.methods.Values() {
		errs = append(errs, c.checkFunctionQTypes(m.Function, "Method "+string(m.ID))...)
	}
	for _, ctor := range c.constructors.Values() {
		errs = append(errs, c.checkParamQTypes(ctor.Params, "Constructor "+string(ctor.ID))...)
	}
	for _, fn := range c.functions.Values() {
		errs = append(errs, c.checkFunctionQTypes(fn, "Function "+string(fn.ID))...)
	}
	for _, sf := range c.stdFunctions.Values() {
		errs = append(errs, c.checkQTypeLeaf(sf.ReturnType, "StdFunction "+string(sf.ID))...)
		for _, p := range sf.Params {
			errs = append(errs, c.checkQTypeLeaf(p, "StdFunction "+string(sf.ID))...)
		}
	}
	for _, e := range c.enums.Values() {
		errs = append(errs, c.checkQTypeLeaf(e.IntegerType, "Enum "+string(e.ID))...)
	}

	errs = append(errs, c.checkModuleIDLists()...)
	errs = append(errs, c.checkIDsInAtMostOneModule()...)

	return errs
}

func (c *Context) checkFunctionQTypes(fn ir.Function, from string) []error {
	var errs []error
	errs = append(errs, c.checkQTypeLeaf(fn.ReturnType, from)...)
	errs = append(errs, c.checkParamQTypes(fn.Params, from)...)
	return errs
}

func (c *Context) checkParamQTypes(params []ir.Param, from string) []error {
	var errs []error
	for _, p := range params {
		errs = append(errs, c.checkQTypeLeaf(p.Type, from)...)
	}
	return errs
}

func (c *Context) checkQTypeRefs(fields []ir.Field, from string) []error {
	var errs []error
	for _, f := range fields {
		errs = append(errs, c.checkQTypeLeaf(f.Type, from)...)
	}
	return errs
}

// checkQTypeLeaf recurses through a QType's Pointer/Reference/Array
// structure and, at each Ref leaf, confirms the referenced id is bound as
// the kind it claims to be (§3 invariant 3).
func (c *Context) checkQTypeLeaf(q ir.QType, from string) []error {
	switch q.Variant {
	case ir.QTypeRef:
		kind, ok := c.typeKinds[q.RefID]
		if !ok {
			return []error{&danglingRefError{ID: q.RefID, Kind: refKindName(q.RefKind), From: from}}
		}
		if kind != q.RefKind {
			return []error{&danglingRefError{ID: q.RefID, Kind: refKindName(q.RefKind), From: from}}
		}
		return nil
	case ir.QTypePointer, ir.QTypeLValueReference, ir.QTypeRValueReference:
		if q.Pointee == nil {
			return nil
		}
		return c.checkQTypeLeaf(*q.Pointee, from)
	case ir.QTypeArray:
		if q.Element == nil {
			return nil
		}
		return c.checkQTypeLeaf(*q.Element, from)
	default:
		return nil
	}
}

func refKindName(k ir.TypeRefKind) string {
	switch k {
	case ir.TypeRefClass, ir.TypeRefClassTemplateSpecialization:
		return "Class"
	case ir.TypeRefEnum:
		return "Enum"
	case ir.TypeRefStdFunction:
		return "StdFunction"
	default:
		return "Type"
	}
}

func (c *Context) checkModuleIDLists() []error {
	var errs []error
	for _, mod := range c.modules.Values() {
		for _, id := range mod.ClassIDs {
			if !c.classes.Has(id) {
				errs = append(errs, &danglingRefError{ID: string(id), Kind: "Class", From: "Module " + mod.Name})
			}
		}
		for _, id := range mod.FunctionIDs {
			if !c.functions.Has(id) {
				errs = append(errs, &danglingRefError{ID: string(id), Kind: "Function", From: "Module " + mod.Name})
			}
		}
		for _, id := range mod.StdFunctionIDs {
			if !c.stdFunctions.Has(id) {
				errs = append(errs, &danglingRefError{ID: string(id), Kind: "StdFunction", From: "Module " + mod.Name})
			}
		}
		for _, id := range mod.EnumIDs {
			if !c.enums.Has(id) {
				errs = append(errs, &danglingRefError{ID: string(id), Kind: "Enum", From: "Module " + mod.Name})
			}
		}
	}
	return errs
}

func (c *Context) checkIDsInAtMostOneModule() []error {
	owners := make(map[string][]string)
	for _, mod := range c.modules.Values() {
		record := func(id string) { owners[id] = append(owners[id], mod.Name) }
		for _, id := range mod.ClassIDs {
			record(string(id))
		}
		for _, id := range mod.FunctionIDs {
			record(string(id))
		}
		for _, id := range mod.StdFunctionIDs {
			record(string(id))
		}
		for _, id := range mod.EnumIDs {
			record(string(id))
		}
	}
	ids := make([]string, 0, len(owners))
	for id := range owners {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if mods := owners[id]; len(mods) > 1 {
			errs = append(errs, &idInMultipleModulesError{ID: id, Modules: mods})
		}
	}
	return errs
}
