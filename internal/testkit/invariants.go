// Package testkit provides mechanical invariant checkers for the testable
// properties a built Context must satisfy, independent of which test
// package is exercising the extraction engine.
package testkit

import (
	"bytes"
	"fmt"

	"babble/internal/ctx"
	"babble/internal/ir"
)

// CheckIDClosure verifies that every QType leaf reachable from c's classes,
// methods, constructors, functions, std functions, and enums resolves to an
// entry in the map its RefKind names. A Context is only meant to satisfy
// this once Link has reported no errors, but the checker is independent of
// Link so tests can call it directly against a hand-built Context.
func CheckIDClosure(c *ctx.Context) error {
	check := func(q ir.QType, from string) error {
		return checkQTypeClosure(c, q, from)
	}

	for _, cls := range c.Snapshot().Classes {
		for _, f := range cls.Fields {
			if err := check(f.Type, fmt.Sprintf("class %s field %s", cls.ID, f.Name)); err != nil {
				return err
			}
		}
	}
	for _, m := range c.Snapshot().Methods {
		if err := checkFunctionClosure(c, m.Function, fmt.Sprintf("method %s", m.ID)); err != nil {
			return err
		}
	}
	for _, ctor := range c.Snapshot().Constructors {
		for _, p := range ctor.Params {
			if err := check(p.Type, fmt.Sprintf("constructor %s param %s", ctor.ID, p.Name)); err != nil {
				return err
			}
		}
	}
	for _, fn := range c.Snapshot().Functions {
		if err := checkFunctionClosure(c, fn, fmt.Sprintf("function %s", fn.ID)); err != nil {
			return err
		}
	}
	for _, sf := range c.Snapshot().StdFunctions {
		if err := check(sf.ReturnType, fmt.Sprintf("stdfunction %s return", sf.ID)); err != nil {
			return err
		}
		for i, p := range sf.Params {
			if err := check(p, fmt.Sprintf("stdfunction %s param %d", sf.ID, i)); err != nil {
				return err
			}
		}
	}
	for _, e := range c.Snapshot().Enums {
		if err := check(e.IntegerType, fmt.Sprintf("enum %s underlying type", e.ID)); err != nil {
			return err
		}
	}
	return nil
}

func checkFunctionClosure(c *ctx.Context, fn ir.Function, from string) error {
	if err := checkQTypeClosure(c, fn.ReturnType, from+" return"); err != nil {
		return err
	}
	for _, p := range fn.Params {
		if err := checkQTypeClosure(c, p.Type, from+" param "+p.Name); err != nil {
			return err
		}
	}
	return nil
}

func checkQTypeClosure(c *ctx.Context, q ir.QType, from string) error {
	switch q.Variant {
	case ir.QTypeRef:
		switch q.RefKind {
		case ir.TypeRefClass, ir.TypeRefClassTemplateSpecialization:
			if !c.HasClass(ir.ClassID(q.RefID)) {
				return fmt.Errorf("%s: dangling class reference %q", from, q.RefID)
			}
		case ir.TypeRefEnum:
			if !c.HasEnum(ir.EnumID(q.RefID)) {
				return fmt.Errorf("%s: dangling enum reference %q", from, q.RefID)
			}
		case ir.TypeRefStdFunction:
			if !c.HasStdFunction(ir.StdFunctionID(q.RefID)) {
				return fmt.Errorf("%s: dangling std-function reference %q", from, q.RefID)
			}
		}
	case ir.QTypePointer, ir.QTypeLValueReference, ir.QTypeRValueReference:
		if q.Pointee != nil {
			return checkQTypeClosure(c, *q.Pointee, from)
		}
	case ir.QTypeArray:
		if q.Element != nil {
			return checkQTypeClosure(c, *q.Element, from)
		}
	}
	return nil
}

// DumpContext renders c's modules, classes, enums, and std functions
// through ir.Printer in the order the Snapshot lists them (methods,
// constructors, and free functions appear only as ids inside those
// entries), giving callers a single byte string to compare for round-trip
// dump stability (property 2).
func DumpContext(c *ctx.Context) string {
	var buf bytes.Buffer
	p := ir.NewPrinter(&buf)
	snap := c.Snapshot()
	for _, m := range snap.Modules {
		p.PrintModule(m)
	}
	for _, cls := range snap.Classes {
		p.PrintClass(cls)
	}
	for _, e := range snap.Enums {
		p.PrintEnum(e)
	}
	for _, sf := range snap.StdFunctions {
		p.PrintStdFunction(sf)
	}
	return buf.String()
}

// CheckRoundTripDumpStable reports whether two dumps of the same Context
// (or two Contexts built from identical inputs) are byte-identical.
func CheckRoundTripDumpStable(a, b *ctx.Context) error {
	da, db := DumpContext(a), DumpContext(b)
	if da != db {
		return fmt.Errorf("dumps differ:\n--- a ---\n%s\n--- b ---\n%s", da, db)
	}
	return nil
}

// CheckOrderPreserved reports whether got matches want exactly, in order.
// It is a small generic helper for the order-preservation property
// (variant order, field-selector order, template-arg order, binding-site
// order) so each call site doesn't hand-roll its own slice comparison.
func CheckOrderPreserved[T comparable](got, want []T) error {
	if len(got) != len(want) {
		return fmt.Errorf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("order mismatch at index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}
