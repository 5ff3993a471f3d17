package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"babble/internal/cxxast"
)

func writeFixtureFile(t *testing.T, doc fixtureFile) string {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtureBuildsClassBindingSite(t *testing.T) {
	doc := fixtureFile{
		TranslationUnits: []fixtureTU{
			{
				Filename: "binding.cpp",
				Decls: []fixtureDecl{
					{ID: "Foo", Kind: "class", QualifiedName: "Foo", USR: "_ZTS3Foo"},
					{
						ID: "Foo::bar", Kind: "method", QualifiedName: "Foo::bar",
						Mangled:    "_ZN3Foo3barEf",
						ReturnType: &fixtureType{Builtin: "float"},
						Params:     []fixtureParam{{Name: "a", Type: &fixtureType{Builtin: "float"}}},
					},
				},
				Markers: []fixtureMarker{
					{Module: &fixtureModuleSite{Name: "demo", NamespaceFrom: "cpp", NamespaceTo: "demo"}},
					{
						Class: &fixtureClassSite{
							Decl:      "Foo",
							BindKinds: []string{"opaque_ptr"},
							Methods:   []fixtureMethodSel{{Decl: "Foo::bar"}},
						},
					},
				},
			},
		},
	}
	path := writeFixtureFile(t, doc)

	provider, files, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if len(files) != 1 || files[0] != "binding.cpp" {
		t.Fatalf("files = %v, want [binding.cpp]", files)
	}

	tu, err := provider.ParseTranslationUnit("binding.cpp")
	if err != nil {
		t.Fatalf("ParseTranslationUnit: %v", err)
	}
	if len(tu.Markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(tu.Markers))
	}
	if tu.Markers[0].Kind != cxxast.MarkerKindModuleDecl {
		t.Fatalf("marker[0].Kind = %v, want MarkerKindModuleDecl", tu.Markers[0].Kind)
	}

	site := tu.Markers[1].Class
	if site == nil {
		t.Fatalf("marker[1].Class is nil")
	}
	if site.Target.QualifiedName != "Foo" {
		t.Fatalf("class target = %q, want Foo", site.Target.QualifiedName)
	}
	if len(site.BindKindChain) != 1 {
		t.Fatalf("bind kind chain len = %d, want 1", len(site.BindKindChain))
	}
	if len(site.MethodSelectors) != 1 {
		t.Fatalf("got %d method selectors, want 1", len(site.MethodSelectors))
	}
	mangled, err := provider.Mangle(site.MethodSelectors[0].Target)
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	if mangled != "_ZN3Foo3barEf" {
		t.Fatalf("mangled = %q, want _ZN3Foo3barEf", mangled)
	}
}

func TestLoadFixtureResolvesFieldTypeReferencingLaterDecl(t *testing.T) {
	doc := fixtureFile{
		TranslationUnits: []fixtureTU{
			{
				Filename: "binding.cpp",
				Decls: []fixtureDecl{
					{ID: "Foo", Kind: "class", QualifiedName: "Foo", USR: "_ZTS3Foo"},
					{ID: "Bar", Kind: "class", QualifiedName: "Bar", USR: "_ZTS3Bar"},
				},
				Markers: []fixtureMarker{
					{
						Class: &fixtureClassSite{
							Decl: "Foo",
							Fields: []fixtureFieldSel{
								{Name: "b", Type: &fixtureType{RefDecl: "Bar"}},
							},
						},
					},
				},
			},
		},
	}
	path := writeFixtureFile(t, doc)

	provider, _, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	tu, err := provider.ParseTranslationUnit("binding.cpp")
	if err != nil {
		t.Fatalf("ParseTranslationUnit: %v", err)
	}
	field := tu.Markers[0].Class.FieldSelectors[0]
	if field.Type.Kind != cxxast.QualKindClass || field.Type.Decl.QualifiedName != "Bar" {
		t.Fatalf("field type = %+v, want a class ref to Bar", field.Type)
	}
}

func TestLoadFixtureRejectsUnknownDeclRef(t *testing.T) {
	doc := fixtureFile{
		TranslationUnits: []fixtureTU{
			{
				Filename: "binding.cpp",
				Markers: []fixtureMarker{
					{Class: &fixtureClassSite{Decl: "DoesNotExist"}},
				},
			},
		},
	}
	path := writeFixtureFile(t, doc)

	if _, _, err := loadFixture(path); err == nil {
		t.Fatalf("expected an error for an unresolvable decl ref")
	}
}

func TestLoadFixtureRegistersParseError(t *testing.T) {
	doc := fixtureFile{
		TranslationUnits: []fixtureTU{
			{Filename: "broken.cpp", ParseError: "unexpected token"},
		},
	}
	path := writeFixtureFile(t, doc)

	provider, files, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if len(files) != 1 || files[0] != "broken.cpp" {
		t.Fatalf("files = %v, want [broken.cpp]", files)
	}
	if _, err := provider.ParseTranslationUnit("broken.cpp"); err == nil {
		t.Fatalf("expected ParseTranslationUnit to surface the fixture's parse error")
	}
}

func TestParsePathMode(t *testing.T) {
	cases := map[string]bool{
		"":         true,
		"auto":     true,
		"absolute": true,
		"relative": true,
		"basename": true,
		"bogus":    false,
	}
	for value, wantOK := range cases {
		_, err := parsePathMode(value)
		if (err == nil) != wantOK {
			t.Errorf("parsePathMode(%q) err = %v, want ok=%v", value, err, wantOK)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	if mode, err := readUIMode("on"); err != nil || mode != uiModeOn {
		t.Fatalf("readUIMode(on) = %v, %v", mode, err)
	}
	if _, err := readUIMode("sideways"); err == nil {
		t.Fatalf("expected an error for an invalid ui mode")
	}
}
