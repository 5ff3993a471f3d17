package extract

import (
	"testing"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

// TestExtractMethodBindingScenario covers S1: struct Foo { float bar(float a); }
// bound as Class<Foo>().m(&Foo::bar).
func TestExtractMethodBindingScenario(t *testing.T) {
	p := cxxast.NewFakeProvider()
	floatType := &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingFloat}

	decl := cxxast.NewDecl(cxxast.DeclKindMethod, "Foo::bar", "", "_ZN3Foo3barEf")
	decl.ReturnType = floatType
	decl.Params = []cxxast.ParamDecl{{Name: "a", Type: floatType}}

	got, err := ExtractMethodBinding(decl, "", "", p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != ir.MethodID("_ZN3Foo3barEf") {
		t.Fatalf("ID = %q, want _ZN3Foo3barEf", got.ID)
	}
	if got.Function.Name != "bar" {
		t.Fatalf("Name = %q, want bar", got.Function.Name)
	}
	if got.Function.ReturnType.Builtin != ir.BuiltinFloat {
		t.Fatalf("ReturnType = %+v, want float", got.Function.ReturnType)
	}
	if len(got.Function.Params) != 1 || got.Function.Params[0].Name != "a" {
		t.Fatalf("Params = %+v, want [{a float}]", got.Function.Params)
	}
	if got.Function.IsNoexcept {
		t.Fatalf("expected IsNoexcept=false")
	}
}

func TestExtractFunctionBindingUnnamedParamStaysEmpty(t *testing.T) {
	p := cxxast.NewFakeProvider()
	intType := &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingInt}

	decl := cxxast.NewDecl(cxxast.DeclKindFunction, "make_widget", "", "_Z11make_widgeti")
	decl.ReturnType = intType
	decl.Params = []cxxast.ParamDecl{{Name: "", Type: intType}}
	decl.IsNoexceptEvaluated = true

	got, err := ExtractFunctionBinding(decl, "MakeWidget", "", p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rename != "MakeWidget" {
		t.Fatalf("Rename = %q, want MakeWidget", got.Rename)
	}
	if len(got.Params) != 1 || got.Params[0].Name != "" {
		t.Fatalf("expected a single unnamed param, got %+v", got.Params)
	}
	if !got.IsNoexcept {
		t.Fatalf("expected IsNoexcept to mirror the evaluated exception spec")
	}
}

func TestExtractMethodBindingRequiresMangledSymbol(t *testing.T) {
	p := cxxast.NewFakeProvider()
	decl := cxxast.NewDecl(cxxast.DeclKindMethod, "Foo::bar", "", "")
	decl.ReturnType = &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingVoid}

	if _, err := ExtractMethodBinding(decl, "", "", p, nil); err == nil {
		t.Fatalf("expected an error when the provider cannot mangle the method")
	}
}
