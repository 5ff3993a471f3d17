package match

import (
	"testing"

	"babble/internal/ctx"
	"babble/internal/cxxast"
	"babble/internal/ir"
	"babble/internal/layout"
)

func floatType() *cxxast.QualType {
	return &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingFloat}
}

// TestRunScenarioS1 covers S1 end to end through the matcher.
func TestRunScenarioS1(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()

	fooDecl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")
	barDecl := cxxast.NewDecl(cxxast.DeclKindMethod, "Foo::bar", "", "_ZN3Foo3barEf")
	barDecl.ReturnType = floatType()
	barDecl.Params = []cxxast.ParamDecl{{Name: "a", Type: floatType()}}

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{
				Target:          fooDecl,
				MethodSelectors: []cxxast.MethodSelector{{Target: barDecl}},
			}},
		},
	}

	if errs := Run(tu, p, c, nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	mod, ok := c.GetModule(ir.ModuleID("test"))
	if !ok || len(mod.ClassIDs) != 1 || mod.ClassIDs[0] != ir.ClassID("_ZTS3Foo") {
		t.Fatalf("module = %+v, want exactly one class _ZTS3Foo", mod)
	}

	cls, ok := c.GetClass(ir.ClassID("_ZTS3Foo"))
	if !ok || len(cls.MethodIDs) != 1 {
		t.Fatalf("class = %+v, want exactly one method", cls)
	}
	method, ok := c.GetMethod(cls.MethodIDs[0])
	if !ok || method.Function.Name != "bar" {
		t.Fatalf("method = %+v, want Name=bar", method)
	}

	if errs := c.Link(); len(errs) != 0 {
		t.Fatalf("expected a clean link, got %v", errs)
	}
}

func TestRunBindKindLastWins(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()
	decl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{
				Target:        decl,
				BindKindChain: []ir.BindKind{ir.OpaquePtr, ir.ValueType, ir.OpaqueBytes},
			}},
		},
	}

	if errs := Run(tu, p, c, nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cls, _ := c.GetClass(ir.ClassID("_ZTS3Foo"))
	if cls.BindKind != ir.OpaqueBytes {
		t.Fatalf("BindKind = %v, want OpaqueBytes (last wins)", cls.BindKind)
	}
}

func TestRunStdFunctionSiteRoutesToStdFunctionMap(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()

	decl := cxxast.NewDecl(cxxast.DeclKindStdFunctionSpecialization, "std::function<int(float,bool)>", "_ZTSSF", "")
	decl.ReturnType = &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingInt}
	decl.Params = []cxxast.ParamDecl{
		{Type: floatType()},
		{Type: &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingBool}},
	}

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: decl}},
		},
	}

	if errs := Run(tu, p, c, nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := c.GetClass(ir.ClassID("_ZTSSF")); ok {
		t.Fatalf("std::function specialization must not land in the class map")
	}
	sf, ok := c.GetStdFunction(ir.StdFunctionID("_ZTSSF"))
	if !ok || sf.ReturnType.Builtin != ir.BuiltinInt32 {
		t.Fatalf("GetStdFunction = %+v, %v, want a populated StdFunction", sf, ok)
	}
	if !c.HasStdFunction(ir.StdFunctionID("_ZTSSF")) {
		t.Fatalf("HasStdFunction should report true once inserted")
	}
}

func TestRunUsesSuppliedLayoutCache(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()
	lc, err := layout.New(p, 0)
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	decl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: decl}},
		},
	}

	if errs := Run(tu, p, c, lc); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := c.GetClass(ir.ClassID("_ZTS3Foo")); !ok {
		t.Fatalf("expected class _ZTS3Foo to be bound")
	}
}

func TestRunClassSiteBeforeModuleIsRejected(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()
	decl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: decl}},
		},
	}

	errs := Run(tu, p, c, nil)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

// TestRunDeferredMissingFieldBindingCaughtAtLink covers S5 via the matcher:
// a field referencing a class that is never bound succeeds at extraction
// time (Run passes a nil KnownIDs, so nothing is checked eagerly) and is
// caught by the link phase instead.
func TestRunDeferredMissingFieldBindingCaughtAtLink(t *testing.T) {
	p := cxxast.NewFakeProvider()
	c := ctx.New()
	fooDecl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")
	barDecl := cxxast.NewDecl(cxxast.DeclKindClass, "Bar", "_ZTS3Bar", "")

	tu := &cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{
				Target: fooDecl,
				FieldSelectors: []cxxast.FieldSelector{
					{Name: "bar", Type: &cxxast.QualType{Kind: cxxast.QualKindClass, Decl: barDecl}},
				},
			}},
		},
	}

	if errs := Run(tu, p, c, nil); len(errs) != 0 {
		t.Fatalf("expected extraction to succeed and defer the check to link, got %v", errs)
	}
	if errs := c.Link(); len(errs) == 0 {
		t.Fatalf("expected the link phase to catch the unbound Bar reference")
	}
}
