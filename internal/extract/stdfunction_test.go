package extract

import (
	"testing"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

// TestExtractStdFunctionBindingScenario covers S4: bind
// std::function<int(float,bool)>.
func TestExtractStdFunctionBindingScenario(t *testing.T) {
	p := cxxast.NewFakeProvider()
	decl := cxxast.NewDecl(cxxast.DeclKindStdFunctionSpecialization, "std::function<int(float, bool)>", "_ZTSNSt8functionIFifbEEE", "")
	decl.Spelling = "std::function<int(float, bool)>"
	decl.ReturnType = &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingInt}
	decl.Params = []cxxast.ParamDecl{
		{Type: &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingFloat}},
		{Type: &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingBool}},
	}

	got, err := ExtractStdFunctionBinding(decl, p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ReturnType.Builtin != ir.BuiltinInt32 {
		t.Fatalf("ReturnType = %+v, want int32", got.ReturnType)
	}
	if len(got.Params) != 2 || got.Params[0].Builtin != ir.BuiltinFloat || got.Params[1].Builtin != ir.BuiltinBool {
		t.Fatalf("Params = %+v, want [float, bool]", got.Params)
	}
}
