package testkit

import (
	"testing"

	"babble/internal/ctx"
	"babble/internal/ir"
)

func buildLinkedContext(t *testing.T) *ctx.Context {
	t.Helper()
	c := ctx.New()
	sfID := ir.SourceFileID("binding.cpp")
	if err := c.InsertSourceFile(ir.SourceFile{ID: sfID, Filename: "binding.cpp"}); err != nil {
		t.Fatalf("InsertSourceFile: %v", err)
	}
	modID := c.DeclareModule("test", "cpp", "test", sfID)

	barFn := ir.Function{QualifiedName: "Foo::bar", Name: "bar", ReturnType: ir.Builtin(ir.BuiltinFloat, false)}
	cls := ir.Class{
		ID:            ir.ClassID("_ZTS3Foo"),
		QualifiedName: "Foo",
		Name:          "Foo",
		MethodIDs:     []ir.MethodID{"_ZN3Foo3barEv"},
	}
	if err := c.InsertClassBinding(cls, modID, false); err != nil {
		t.Fatalf("InsertClassBinding: %v", err)
	}
	if err := c.InsertMethodBinding(cls.ID, ir.Method{ID: "_ZN3Foo3barEv", Function: barFn}); err != nil {
		t.Fatalf("InsertMethodBinding: %v", err)
	}
	if errs := c.Link(); len(errs) != 0 {
		t.Fatalf("Link: %v", errs)
	}
	return c
}

func TestCheckIDClosureAcceptsLinkedContext(t *testing.T) {
	c := buildLinkedContext(t)
	if err := CheckIDClosure(c); err != nil {
		t.Fatalf("CheckIDClosure: %v", err)
	}
}

func TestCheckIDClosureRejectsDanglingClassRef(t *testing.T) {
	c := ctx.New()
	sfID := ir.SourceFileID("binding.cpp")
	if err := c.InsertSourceFile(ir.SourceFile{ID: sfID, Filename: "binding.cpp"}); err != nil {
		t.Fatalf("InsertSourceFile: %v", err)
	}
	modID := c.DeclareModule("test", "cpp", "test", sfID)

	cls := ir.Class{
		ID:            ir.ClassID("_ZTS3Foo"),
		QualifiedName: "Foo",
		Name:          "Foo",
		Fields:        []ir.Field{{Name: "bar", Type: ir.ClassRef(ir.ClassID("_ZTS3Bar"), false)}},
	}
	if err := c.InsertClassBinding(cls, modID, false); err != nil {
		t.Fatalf("InsertClassBinding: %v", err)
	}

	if err := CheckIDClosure(c); err == nil {
		t.Fatalf("expected a dangling reference to be reported")
	}
}

func TestCheckRoundTripDumpStable(t *testing.T) {
	a := buildLinkedContext(t)
	b := buildLinkedContext(t)
	if err := CheckRoundTripDumpStable(a, b); err != nil {
		t.Fatalf("CheckRoundTripDumpStable: %v", err)
	}
}

func TestCheckOrderPreserved(t *testing.T) {
	if err := CheckOrderPreserved([]string{"a", "b", "c"}, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("expected matching order to pass: %v", err)
	}
	if err := CheckOrderPreserved([]string{"a", "c", "b"}, []string{"a", "b", "c"}); err == nil {
		t.Fatalf("expected mismatched order to fail")
	}
}
