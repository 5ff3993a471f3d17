// Package match implements the matcher driver (§4.E): it walks a parsed
// translation unit's recognized marker sites in source order, resolves
// each to a declaration extractor, and inserts the resulting binding into
// a Context.
package match

import (
	"fmt"

	"babble/internal/ctx"
	"babble/internal/cxxast"
	"babble/internal/extract"
	"babble/internal/ir"
	"babble/internal/layout"
)

// Run walks tu's markers in order and populates c. No module is current
// until a module declaration marker is seen; a class/function/enum marker
// encountered before any module declaration is a MalformedMarker-class
// failure, reported as an error rather than silently dropped.
//
// Run does not run the link phase (§4.F) — callers invoke Context.Link
// themselves once every translation unit in a compilation has been walked,
// since id closure can only be judged after every TU's bindings exist.
//
// Every call into extract passes a nil KnownIDs: a class field or parameter
// may legitimately name a type bound by a binding site later in the same
// file, or in a file walked in a later Run call, so checking eagerly here
// would reject valid forward references. Link is the single place that
// judges id closure, after every TU has contributed its bindings.
//
// lc caches the provider's Layout/RuleOfSeven probes across class binding
// sites; it may be nil, in which case Run queries provider directly.
func Run(tu *cxxast.TranslationUnit, provider cxxast.Provider, c *ctx.Context, lc *layout.Cache) []error {
	sourceFile := ir.SourceFile{
		ID:         ir.SourceFileID(tu.Filename),
		Filename:   tu.Filename,
		Inclusions: tu.Inclusions,
	}
	if err := c.InsertSourceFile(sourceFile); err != nil {
		return []error{err}
	}

	var errs []error
	var currentModule ir.ModuleID
	haveModule := false

	for _, site := range tu.Markers {
		switch site.Kind {
		case cxxast.MarkerKindModuleDecl:
			mod := site.Module
			if mod == nil || mod.Name == "" {
				errs = append(errs, fmt.Errorf("%s: malformed module declaration", tu.Filename))
				continue
			}
			currentModule = c.DeclareModule(mod.Name, mod.NamespaceFrom, mod.NamespaceTo, sourceFile.ID)
			haveModule = true

		case cxxast.MarkerKindClassBindingSite:
			if !haveModule {
				errs = append(errs, fmt.Errorf("%s: class binding site outside any module", tu.Filename))
				continue
			}
			if err := matchClassSite(site.Class, provider, c, currentModule, lc); err != nil {
				errs = append(errs, err)
			}

		case cxxast.MarkerKindFunctionBindingSite:
			if !haveModule {
				errs = append(errs, fmt.Errorf("%s: function binding site outside any module", tu.Filename))
				continue
			}
			if err := matchFunctionSite(site.Function, provider, c, currentModule); err != nil {
				errs = append(errs, err)
			}

		case cxxast.MarkerKindEnumBindingSite:
			if !haveModule {
				errs = append(errs, fmt.Errorf("%s: enum binding site outside any module", tu.Filename))
				continue
			}
			if err := matchEnumSite(site.Enum, provider, c, currentModule); err != nil {
				errs = append(errs, err)
			}

		default:
			errs = append(errs, fmt.Errorf("%s: unrecognized marker site", tu.Filename))
		}
	}

	return errs
}

func matchFunctionSite(site *cxxast.FunctionBindingSite, provider cxxast.Provider, c *ctx.Context, module ir.ModuleID) error {
	if site == nil || site.Target == nil {
		return fmt.Errorf("malformed function binding site")
	}
	fn, err := extract.ExtractFunctionBinding(site.Target, site.Rename, site.TemplateCall, provider, nil)
	if err != nil {
		return err
	}
	return c.InsertFunctionBinding(fn, module)
}

func matchEnumSite(site *cxxast.EnumBindingSite, provider cxxast.Provider, c *ctx.Context, module ir.ModuleID) error {
	if site == nil || site.Target == nil {
		return fmt.Errorf("malformed enum binding site")
	}
	e, err := extract.ExtractEnumBinding(site.Target, site.Rename, provider, nil)
	if err != nil {
		return err
	}
	return c.InsertEnumBinding(e, module)
}

// matchClassSite resolves a class binding site to either a Class (the
// common case) or, when the target declaration is a std::function
// specialization, a StdFunction (§4.B's "standard callable-wrapper
// template name" carve-out, exercised end-to-end here rather than only at
// the QType leaf).
func matchClassSite(site *cxxast.ClassBindingSite, provider cxxast.Provider, c *ctx.Context, module ir.ModuleID, lc *layout.Cache) error {
	if site == nil || site.Target == nil {
		return fmt.Errorf("malformed class binding site")
	}

	if site.Target.Kind == cxxast.DeclKindStdFunctionSpecialization {
		sf, err := extract.ExtractStdFunctionBinding(site.Target, provider, nil)
		if err != nil {
			return err
		}
		return c.InsertStdFunctionBinding(sf, module)
	}

	bindKind := ir.OpaquePtr
	for _, k := range site.BindKindChain {
		bindKind = k // last-wins, §8 property 7
	}

	classLayout, traits, err := classLayoutAndTraits(site.Target, provider, lc)
	if err != nil {
		return err
	}
	isAbstract := provider.IsAbstract(site.Target)

	cls, err := extract.ExtractClassBinding(
		site.Target, site.Target.Spelling, site.Rename,
		classLayout, bindKind, traits, isAbstract, provider, nil,
	)
	if err != nil {
		return err
	}

	isSpecialization := site.Target.Kind == cxxast.DeclKindClassTemplateSpecialization
	if err := c.InsertClassBinding(cls, module, isSpecialization); err != nil {
		return err
	}

	for _, sel := range site.FieldSelectors {
		qt, err := extract.ExtractQType(sel.Type, provider, nil)
		if err != nil {
			return err
		}
		if err := c.AddFieldToClass(cls.ID, ir.Field{Name: sel.Name, Type: qt}); err != nil {
			return err
		}
	}

	for _, sel := range site.MethodSelectors {
		if sel.Target == nil {
			return fmt.Errorf("malformed method selector on class %s", cls.ID)
		}
		method, err := extract.ExtractMethodBinding(sel.Target, sel.Rename, sel.TemplateCall, provider, nil)
		if err != nil {
			return err
		}
		if err := c.InsertMethodBinding(cls.ID, method); err != nil {
			return err
		}
	}

	for _, sel := range site.ConstructorSelectors {
		if sel.Target == nil {
			return fmt.Errorf("malformed constructor selector on class %s", cls.ID)
		}
		ctor, err := extract.ExtractConstructorBinding(sel.Target, sel.Rename, provider, nil)
		if err != nil {
			return err
		}
		if err := c.InsertConstructorBinding(cls.ID, ctor); err != nil {
			return err
		}
	}

	return nil
}

// classLayoutAndTraits fetches a class declaration's layout and rule-of-seven
// traits, through lc when one is supplied so a class referenced from more
// than one translation unit is only probed once.
func classLayoutAndTraits(d *cxxast.Decl, provider cxxast.Provider, lc *layout.Cache) (ir.Layout, ir.RuleOfSeven, error) {
	if lc != nil {
		l, err := lc.Layout(d)
		if err != nil {
			return ir.Layout{}, ir.RuleOfSeven{}, err
		}
		traits, err := lc.RuleOfSeven(d)
		if err != nil {
			return ir.Layout{}, ir.RuleOfSeven{}, err
		}
		return l, traits, nil
	}

	l, err := provider.Layout(d)
	if err != nil {
		return ir.Layout{}, ir.RuleOfSeven{}, err
	}
	traits, err := provider.RuleOfSeven(d)
	if err != nil {
		return ir.Layout{}, ir.RuleOfSeven{}, err
	}
	return l, traits, nil
}
