package driver

import (
	"context"
	"testing"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

func floatType() *cxxast.QualType {
	return &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingFloat}
}

func TestParseArgvBasic(t *testing.T) {
	opts, err := ParseArgv([]string{"-Iinclude", "-I", "vendor/include", "-DFOO=1", "-std=c++17", "a.cpp", "b.cpp"})
	if err != nil {
		t.Fatalf("ParseArgv: %v", err)
	}
	if len(opts.IncludePaths) != 2 || opts.IncludePaths[0] != "include" || opts.IncludePaths[1] != "vendor/include" {
		t.Fatalf("IncludePaths = %v", opts.IncludePaths)
	}
	if len(opts.Defines) != 1 || opts.Defines[0] != "FOO=1" {
		t.Fatalf("Defines = %v", opts.Defines)
	}
	if opts.Standard != "c++17" {
		t.Fatalf("Standard = %q", opts.Standard)
	}
	if len(opts.Files) != 2 {
		t.Fatalf("Files = %v", opts.Files)
	}
}

func TestParseArgvRejectsNoFiles(t *testing.T) {
	if _, err := ParseArgv([]string{"-Iinclude"}); err == nil {
		t.Fatalf("expected an error when no files are given")
	}
}

func TestParseArgvRejectsUnknownFlag(t *testing.T) {
	if _, err := ParseArgv([]string{"--bogus", "a.cpp"}); err == nil {
		t.Fatalf("expected an error for an unrecognized flag")
	}
}

func TestCompileAndExtractSingleFile(t *testing.T) {
	p := cxxast.NewFakeProvider()
	fooDecl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")
	barDecl := cxxast.NewDecl(cxxast.DeclKindMethod, "Foo::bar", "", "_ZN3Foo3barEf")
	barDecl.ReturnType = floatType()
	barDecl.Params = []cxxast.ParamDecl{{Name: "a", Type: floatType()}}

	p.AddTranslationUnit(&cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{
				Target:          fooDecl,
				MethodSelectors: []cxxast.MethodSelector{{Target: barDecl}},
			}},
		},
	})

	res := CompileAndExtract(context.Background(), []string{"binding.cpp"}, p, nil)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Context == nil {
		t.Fatalf("expected a non-nil Context")
	}
	if _, ok := res.Context.GetClass(ir.ClassID("_ZTS3Foo")); !ok {
		t.Fatalf("expected class _ZTS3Foo to be bound")
	}
}

func TestCompileAndExtractMultipleFilesDeterministicOrder(t *testing.T) {
	p := cxxast.NewFakeProvider()
	aDecl := cxxast.NewDecl(cxxast.DeclKindClass, "A", "_ZTS1A", "")
	bDecl := cxxast.NewDecl(cxxast.DeclKindClass, "B", "_ZTS1B", "")

	p.AddTranslationUnit(&cxxast.TranslationUnit{
		Filename: "z.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: bDecl}},
		},
	})
	p.AddTranslationUnit(&cxxast.TranslationUnit{
		Filename: "a.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: aDecl}},
		},
	})

	res := CompileAndExtract(context.Background(), []string{"z.cpp", "a.cpp"}, p, nil)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	mod, ok := res.Context.GetModule(ir.ModuleID("test"))
	if !ok {
		t.Fatalf("expected module test")
	}
	// a.cpp sorts before z.cpp, so A's class binding must land first
	// regardless of the order CompileAndExtract's parallel parse completed in.
	if len(mod.ClassIDs) != 2 || mod.ClassIDs[0] != ir.ClassID("_ZTS1A") || mod.ClassIDs[1] != ir.ClassID("_ZTS1B") {
		t.Fatalf("ClassIDs = %v, want [_ZTS1A _ZTS1B] in sorted-path order", mod.ClassIDs)
	}
}

func TestCompileAndExtractReportsParseFailure(t *testing.T) {
	p := cxxast.NewFakeProvider()
	res := CompileAndExtract(context.Background(), []string{"missing.cpp"}, p, nil)
	if len(res.Errors) == 0 {
		t.Fatalf("expected a parse error for an unregistered file")
	}
	if res.Bag == nil || res.Bag.Len() == 0 {
		t.Fatalf("expected a diagnostic recording the parse failure")
	}
}

func TestCompileAndExtractEmitsProgressEvents(t *testing.T) {
	p := cxxast.NewFakeProvider()
	decl := cxxast.NewDecl(cxxast.DeclKindClass, "Foo", "_ZTS3Foo", "")
	p.AddTranslationUnit(&cxxast.TranslationUnit{
		Filename: "binding.cpp",
		Markers: []cxxast.MarkerSite{
			{Kind: cxxast.MarkerKindModuleDecl, Module: &cxxast.ModuleDeclSite{Name: "test"}},
			{Kind: cxxast.MarkerKindClassBindingSite, Class: &cxxast.ClassBindingSite{Target: decl}},
		},
	})

	events := make(chan Event, 32)
	res := CompileAndExtract(context.Background(), []string{"binding.cpp"}, p, events)
	close(events)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	sawDone := false
	for ev := range events {
		if ev.Stage == StageMatch && ev.Status == StatusDone {
			sawDone = true
		}
	}
	if !sawDone {
		t.Fatalf("expected a StageMatch/StatusDone event for binding.cpp")
	}
}
