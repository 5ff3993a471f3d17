package main

import (
	"encoding/json"
	"fmt"
	"os"

	"babble/internal/cxxast"
	"babble/internal/ir"
)

// A real C++ front end is an external collaborator this repository never
// implements; fixture.go is the CLI's stand-in for one. It decodes a JSON
// description of translation units — marker sites and the declarations
// they reference — into a cxxast.FakeProvider, exactly the shape the
// package's own tests build by hand. It exists so `bblgen extract` has
// something runnable without a real compiler attached.

type fixtureFile struct {
	TranslationUnits []fixtureTU `json:"translation_units"`
}

type fixtureTU struct {
	Filename   string          `json:"filename"`
	ParseError string          `json:"parse_error,omitempty"`
	Decls      []fixtureDecl   `json:"decls,omitempty"`
	Markers    []fixtureMarker `json:"markers,omitempty"`
}

type fixtureDecl struct {
	ID             string             `json:"id"`
	Kind           string             `json:"kind"`
	QualifiedName  string             `json:"qualified_name"`
	USR            string             `json:"usr,omitempty"`
	Mangled        string             `json:"mangled,omitempty"`
	ReturnType     *fixtureType       `json:"return_type,omitempty"`
	Params         []fixtureParam     `json:"params,omitempty"`
	IsNoexcept     bool               `json:"is_noexcept,omitempty"`
	IsConstMethod  bool               `json:"is_const,omitempty"`
	IsStaticMethod bool               `json:"is_static,omitempty"`
	IsVirtual      bool               `json:"is_virtual,omitempty"`
	IsPure         bool               `json:"is_pure,omitempty"`
	IsAbstract     bool               `json:"is_abstract,omitempty"`
	LayoutSize     uint64             `json:"layout_size,omitempty"`
	LayoutAlign    uint64             `json:"layout_align,omitempty"`
	Traits         *fixtureTraits     `json:"traits,omitempty"`
	Enumerators    []fixtureEnumValue `json:"enumerators,omitempty"`
	UnderlyingType *fixtureType       `json:"underlying_type,omitempty"`
}

type fixtureParam struct {
	Name string       `json:"name,omitempty"`
	Type *fixtureType `json:"type,omitempty"`
}

type fixtureTraits struct {
	IsCopyConstructible        bool `json:"is_copy_constructible"`
	IsNothrowCopyConstructible bool `json:"is_nothrow_copy_constructible"`
	IsMoveConstructible        bool `json:"is_move_constructible"`
	IsNothrowMoveConstructible bool `json:"is_nothrow_move_constructible"`
	IsCopyAssignable           bool `json:"is_copy_assignable"`
	IsNothrowCopyAssignable    bool `json:"is_nothrow_copy_assignable"`
	IsMoveAssignable           bool `json:"is_move_assignable"`
	IsNothrowMoveAssignable    bool `json:"is_nothrow_move_assignable"`
	IsDestructible             bool `json:"is_destructible"`
	HasVirtualDestructor       bool `json:"has_virtual_destructor"`
}

func (t *fixtureTraits) toIR() ir.RuleOfSeven {
	if t == nil {
		return ir.RuleOfSeven{}
	}
	return ir.RuleOfSeven{
		IsCopyConstructible:        t.IsCopyConstructible,
		IsNothrowCopyConstructible: t.IsNothrowCopyConstructible,
		IsMoveConstructible:        t.IsMoveConstructible,
		IsNothrowMoveConstructible: t.IsNothrowMoveConstructible,
		IsCopyAssignable:           t.IsCopyAssignable,
		IsNothrowCopyAssignable:    t.IsNothrowCopyAssignable,
		IsMoveAssignable:           t.IsMoveAssignable,
		IsNothrowMoveAssignable:    t.IsNothrowMoveAssignable,
		IsDestructible:             t.IsDestructible,
		HasVirtualDestructor:       t.HasVirtualDestructor,
	}
}

type fixtureEnumValue struct {
	Name          string `json:"name"`
	SignedValue   int64  `json:"signed_value,omitempty"`
	IsUnsigned    bool   `json:"is_unsigned,omitempty"`
	UnsignedValue uint64 `json:"unsigned_value,omitempty"`
}

// fixtureType mirrors cxxast.QualType's shape, resolving RefDecl against
// the translation unit's own decl table so field/param/return types can
// reference a class or enum declared anywhere in the same translation unit.
type fixtureType struct {
	Const     bool         `json:"const,omitempty"`
	Builtin   string       `json:"builtin,omitempty"`
	RefDecl   string       `json:"ref_decl,omitempty"`
	Pointer   *fixtureType `json:"pointer,omitempty"`
	LRef      *fixtureType `json:"lref,omitempty"`
	RRef      *fixtureType `json:"rref,omitempty"`
	Array     *fixtureType `json:"array,omitempty"`
	ArraySize *uint32      `json:"array_size,omitempty"`
}

type fixtureMarker struct {
	Module   *fixtureModuleSite   `json:"module,omitempty"`
	Class    *fixtureClassSite    `json:"class,omitempty"`
	Function *fixtureFunctionSite `json:"function,omitempty"`
	Enum     *fixtureEnumSite     `json:"enum,omitempty"`
}

type fixtureModuleSite struct {
	Name          string `json:"name"`
	NamespaceFrom string `json:"namespace_from,omitempty"`
	NamespaceTo   string `json:"namespace_to,omitempty"`
}

type fixtureClassSite struct {
	Decl         string                 `json:"decl"`
	Rename       string                 `json:"rename,omitempty"`
	BindKinds    []string               `json:"bind_kinds,omitempty"`
	Methods      []fixtureMethodSel     `json:"methods,omitempty"`
	Constructors []fixtureConstructorSel `json:"constructors,omitempty"`
	Fields       []fixtureFieldSel      `json:"fields,omitempty"`
}

type fixtureMethodSel struct {
	Decl         string `json:"decl"`
	Rename       string `json:"rename,omitempty"`
	TemplateCall string `json:"template_call,omitempty"`
}

type fixtureConstructorSel struct {
	Decl   string `json:"decl"`
	Rename string `json:"rename,omitempty"`
}

type fixtureFieldSel struct {
	Name string       `json:"name"`
	Type *fixtureType `json:"type"`
}

type fixtureFunctionSite struct {
	Decl         string `json:"decl"`
	Rename       string `json:"rename,omitempty"`
	TemplateCall string `json:"template_call,omitempty"`
}

type fixtureEnumSite struct {
	Decl   string `json:"decl"`
	Rename string `json:"rename,omitempty"`
}

var fixtureBuiltins = map[string]cxxast.BuiltinSpelling{
	"void":                  cxxast.BuiltinSpellingVoid,
	"bool":                  cxxast.BuiltinSpellingBool,
	"char":                  cxxast.BuiltinSpellingChar,
	"signed_char":           cxxast.BuiltinSpellingSignedChar,
	"unsigned_char":         cxxast.BuiltinSpellingUnsignedChar,
	"short":                 cxxast.BuiltinSpellingShort,
	"unsigned_short":        cxxast.BuiltinSpellingUnsignedShort,
	"int":                   cxxast.BuiltinSpellingInt,
	"unsigned_int":          cxxast.BuiltinSpellingUnsignedInt,
	"long":                  cxxast.BuiltinSpellingLong,
	"unsigned_long":         cxxast.BuiltinSpellingUnsignedLong,
	"long_long":             cxxast.BuiltinSpellingLongLong,
	"unsigned_long_long":    cxxast.BuiltinSpellingUnsignedLongLong,
	"size_t":                cxxast.BuiltinSpellingSizeT,
	"float":                 cxxast.BuiltinSpellingFloat,
	"double":                cxxast.BuiltinSpellingDouble,
	"long_double":           cxxast.BuiltinSpellingLongDouble,
}

var fixtureDeclKinds = map[string]cxxast.DeclKind{
	"class":                         cxxast.DeclKindClass,
	"class_template_specialization": cxxast.DeclKindClassTemplateSpecialization,
	"enum":                          cxxast.DeclKindEnum,
	"function":                      cxxast.DeclKindFunction,
	"method":                        cxxast.DeclKindMethod,
	"constructor":                   cxxast.DeclKindConstructor,
	"stdfunction_specialization":    cxxast.DeclKindStdFunctionSpecialization,
}

var fixtureBindKinds = map[string]ir.BindKind{
	"opaque_ptr":   ir.OpaquePtr,
	"opaque_bytes": ir.OpaqueBytes,
	"value_type":   ir.ValueType,
}

// loadFixture reads path and builds a FakeProvider plus the ordered list of
// filenames the fixture declares, so the caller can feed both straight into
// driver.CompileAndExtract.
func loadFixture(path string) (*cxxast.FakeProvider, []string, error) {
	// #nosec G304 -- path is a user-supplied CLI argument, not attacker data
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: %w", err)
	}
	var doc fixtureFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("fixture: invalid JSON: %w", err)
	}

	provider := cxxast.NewFakeProvider()
	files := make([]string, 0, len(doc.TranslationUnits))

	for _, tu := range doc.TranslationUnits {
		files = append(files, tu.Filename)
		if tu.ParseError != "" {
			provider.ParseErrors[tu.Filename] = fmt.Errorf("%s", tu.ParseError)
			continue
		}

		decls, err := buildFixtureDecls(tu.Decls)
		if err != nil {
			return nil, nil, fmt.Errorf("fixture: %s: %w", tu.Filename, err)
		}

		markers, err := buildFixtureMarkers(tu.Markers, decls)
		if err != nil {
			return nil, nil, fmt.Errorf("fixture: %s: %w", tu.Filename, err)
		}

		provider.AddTranslationUnit(&cxxast.TranslationUnit{
			Filename: tu.Filename,
			Markers:  markers,
		})
	}

	return provider, files, nil
}

func buildFixtureDecls(specs []fixtureDecl) (map[string]*cxxast.Decl, error) {
	decls := make(map[string]*cxxast.Decl, len(specs))
	for _, spec := range specs {
		kind, ok := fixtureDeclKinds[spec.Kind]
		if !ok {
			return nil, fmt.Errorf("decl %q: unknown kind %q", spec.ID, spec.Kind)
		}
		decls[spec.ID] = cxxast.NewDecl(kind, spec.QualifiedName, spec.USR, spec.Mangled)
	}

	for _, spec := range specs {
		d := decls[spec.ID]
		d.IsTemplateSpecialization = spec.Kind == "class_template_specialization" || spec.Kind == "stdfunction_specialization"

		returnType, err := resolveFixtureType(spec.ReturnType, decls)
		if err != nil {
			return nil, fmt.Errorf("decl %q return type: %w", spec.ID, err)
		}
		d.ReturnType = returnType

		for _, p := range spec.Params {
			pt, err := resolveFixtureType(p.Type, decls)
			if err != nil {
				return nil, fmt.Errorf("decl %q param %q: %w", spec.ID, p.Name, err)
			}
			d.Params = append(d.Params, cxxast.ParamDecl{Name: p.Name, Type: pt})
		}

		d.IsNoexceptEvaluated = spec.IsNoexcept
		d.IsConstMethod = spec.IsConstMethod
		d.IsStaticMethod = spec.IsStaticMethod
		d.IsVirtual = spec.IsVirtual
		d.IsPure = spec.IsPure
		d.IsAbstractDecl = spec.IsAbstract
		d.LayoutInfo = cxxast.Layout{SizeBytes: spec.LayoutSize, AlignBytes: spec.LayoutAlign}
		d.Traits = spec.Traits.toIR()

		for _, e := range spec.Enumerators {
			d.Enumerators = append(d.Enumerators, cxxast.EnumeratorDecl{
				Name:          e.Name,
				SignedValue:   e.SignedValue,
				IsUnsigned:    e.IsUnsigned,
				UnsignedValue: e.UnsignedValue,
			})
		}

		underlying, err := resolveFixtureType(spec.UnderlyingType, decls)
		if err != nil {
			return nil, fmt.Errorf("decl %q underlying type: %w", spec.ID, err)
		}
		d.UnderlyingType = underlying
	}

	return decls, nil
}

func resolveFixtureType(spec *fixtureType, decls map[string]*cxxast.Decl) (*cxxast.QualType, error) {
	if spec == nil {
		return &cxxast.QualType{Kind: cxxast.QualKindBuiltin, Builtin: cxxast.BuiltinSpellingVoid}, nil
	}
	switch {
	case spec.Builtin != "":
		b, ok := fixtureBuiltins[spec.Builtin]
		if !ok {
			return nil, fmt.Errorf("unknown builtin spelling %q", spec.Builtin)
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: cxxast.QualKindBuiltin, Builtin: b}, nil

	case spec.RefDecl != "":
		d, ok := decls[spec.RefDecl]
		if !ok {
			return nil, fmt.Errorf("unknown decl ref %q", spec.RefDecl)
		}
		kind, err := refQualKind(d.Kind)
		if err != nil {
			return nil, err
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: kind, Decl: d}, nil

	case spec.Pointer != nil:
		pointee, err := resolveFixtureType(spec.Pointer, decls)
		if err != nil {
			return nil, err
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: cxxast.QualKindPointer, Pointee: pointee}, nil

	case spec.LRef != nil:
		pointee, err := resolveFixtureType(spec.LRef, decls)
		if err != nil {
			return nil, err
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: cxxast.QualKindLValueReference, Pointee: pointee}, nil

	case spec.RRef != nil:
		pointee, err := resolveFixtureType(spec.RRef, decls)
		if err != nil {
			return nil, err
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: cxxast.QualKindRValueReference, Pointee: pointee}, nil

	case spec.Array != nil:
		elem, err := resolveFixtureType(spec.Array, decls)
		if err != nil {
			return nil, err
		}
		return &cxxast.QualType{IsConst: spec.Const, Kind: cxxast.QualKindArray, Element: elem, ArraySize: spec.ArraySize}, nil

	default:
		return nil, fmt.Errorf("empty type spec")
	}
}

func refQualKind(kind cxxast.DeclKind) (cxxast.QualTypeKind, error) {
	switch kind {
	case cxxast.DeclKindClass:
		return cxxast.QualKindClass, nil
	case cxxast.DeclKindClassTemplateSpecialization:
		return cxxast.QualKindClassTemplateSpecialization, nil
	case cxxast.DeclKindEnum:
		return cxxast.QualKindEnum, nil
	case cxxast.DeclKindStdFunctionSpecialization:
		return cxxast.QualKindStdFunction, nil
	default:
		return 0, fmt.Errorf("decl kind %d cannot be referenced as a type", kind)
	}
}

func buildFixtureMarkers(specs []fixtureMarker, decls map[string]*cxxast.Decl) ([]cxxast.MarkerSite, error) {
	markers := make([]cxxast.MarkerSite, 0, len(specs))
	for _, spec := range specs {
		switch {
		case spec.Module != nil:
			markers = append(markers, cxxast.MarkerSite{
				Kind: cxxast.MarkerKindModuleDecl,
				Module: &cxxast.ModuleDeclSite{
					Name:          spec.Module.Name,
					NamespaceFrom: spec.Module.NamespaceFrom,
					NamespaceTo:   spec.Module.NamespaceTo,
				},
			})

		case spec.Class != nil:
			site, err := buildFixtureClassSite(spec.Class, decls)
			if err != nil {
				return nil, err
			}
			markers = append(markers, cxxast.MarkerSite{Kind: cxxast.MarkerKindClassBindingSite, Class: site})

		case spec.Function != nil:
			target, ok := decls[spec.Function.Decl]
			if !ok {
				return nil, fmt.Errorf("function site: unknown decl ref %q", spec.Function.Decl)
			}
			markers = append(markers, cxxast.MarkerSite{
				Kind: cxxast.MarkerKindFunctionBindingSite,
				Function: &cxxast.FunctionBindingSite{
					Target:       target,
					Rename:       spec.Function.Rename,
					TemplateCall: spec.Function.TemplateCall,
				},
			})

		case spec.Enum != nil:
			target, ok := decls[spec.Enum.Decl]
			if !ok {
				return nil, fmt.Errorf("enum site: unknown decl ref %q", spec.Enum.Decl)
			}
			markers = append(markers, cxxast.MarkerSite{
				Kind: cxxast.MarkerKindEnumBindingSite,
				Enum: &cxxast.EnumBindingSite{Target: target, Rename: spec.Enum.Rename},
			})

		default:
			return nil, fmt.Errorf("marker entry has no recognized site")
		}
	}
	return markers, nil
}

func buildFixtureClassSite(spec *fixtureClassSite, decls map[string]*cxxast.Decl) (*cxxast.ClassBindingSite, error) {
	target, ok := decls[spec.Decl]
	if !ok {
		return nil, fmt.Errorf("class site: unknown decl ref %q", spec.Decl)
	}

	site := &cxxast.ClassBindingSite{Target: target, Rename: spec.Rename}

	for _, bk := range spec.BindKinds {
		kind, ok := fixtureBindKinds[bk]
		if !ok {
			return nil, fmt.Errorf("class site: unknown bind kind %q", bk)
		}
		site.BindKindChain = append(site.BindKindChain, kind)
	}

	for _, m := range spec.Methods {
		mt, ok := decls[m.Decl]
		if !ok {
			return nil, fmt.Errorf("class site: unknown method decl ref %q", m.Decl)
		}
		site.MethodSelectors = append(site.MethodSelectors, cxxast.MethodSelector{
			Target: mt, Rename: m.Rename, TemplateCall: m.TemplateCall,
		})
	}

	for _, c := range spec.Constructors {
		ct, ok := decls[c.Decl]
		if !ok {
			return nil, fmt.Errorf("class site: unknown constructor decl ref %q", c.Decl)
		}
		site.ConstructorSelectors = append(site.ConstructorSelectors, cxxast.ConstructorSelector{
			Target: ct, Rename: c.Rename,
		})
	}

	for _, f := range spec.Fields {
		ft, err := resolveFixtureType(f.Type, decls)
		if err != nil {
			return nil, fmt.Errorf("class site: field %q: %w", f.Name, err)
		}
		site.FieldSelectors = append(site.FieldSelectors, cxxast.FieldSelector{Name: f.Name, Type: ft})
	}

	return site, nil
}
