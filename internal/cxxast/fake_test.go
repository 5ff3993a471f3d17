package cxxast

import "testing"

func TestFakeProviderRoundTrip(t *testing.T) {
	p := NewFakeProvider()
	decl := NewDecl(DeclKindClass, "Foo", "_ZTS3Foo", "")
	decl.IsAbstractDecl = false
	decl.Traits.IsCopyConstructible = true

	if got, ok := p.USR(decl); !ok || got != "_ZTS3Foo" {
		t.Fatalf("USR() = %q, %v, want _ZTS3Foo, true", got, ok)
	}
	if p.IsAbstract(decl) {
		t.Fatalf("expected IsAbstract to be false")
	}
	traits, err := p.RuleOfSeven(decl)
	if err != nil {
		t.Fatalf("RuleOfSeven returned error: %v", err)
	}
	if !traits.IsCopyConstructible {
		t.Fatalf("expected IsCopyConstructible to round-trip true")
	}
}

func TestFakeProviderParseTranslationUnit(t *testing.T) {
	p := NewFakeProvider()
	tu := &TranslationUnit{Filename: "binding.cpp"}
	p.AddTranslationUnit(tu)

	got, err := p.ParseTranslationUnit("binding.cpp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tu {
		t.Fatalf("expected the same TranslationUnit pointer back")
	}

	if _, err := p.ParseTranslationUnit("missing.cpp"); err == nil {
		t.Fatalf("expected an error for an unregistered path")
	}
}

func TestFakeProviderMangleRequiresSymbol(t *testing.T) {
	p := NewFakeProvider()
	decl := NewDecl(DeclKindMethod, "Foo::bar", "", "")
	if _, err := p.Mangle(decl); err == nil {
		t.Fatalf("expected Mangle to fail without a mangled symbol")
	}

	decl2 := NewDecl(DeclKindMethod, "Foo::bar", "", "_ZN3Foo3barEf")
	got, err := p.Mangle(decl2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "_ZN3Foo3barEf" {
		t.Fatalf("Mangle() = %q, want _ZN3Foo3barEf", got)
	}
}
