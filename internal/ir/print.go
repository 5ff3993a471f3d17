package ir

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders IR entities into the deterministic, order-preserving
// textual form spec.md §4.G requires: golden-file tests assert on this
// output being byte-identical across repeated runs against the same
// inputs (§8 property 2). Shaped after the teacher's hir.Printer — one
// method per entity kind, writing straight to an io.Writer instead of
// building an intermediate tree.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s", strings.Repeat("  ", p.indent))
	fmt.Fprintf(p.w, format, args...)
}

// PrintQType writes the canonical spelling of a QType, e.g.
// "const Class(_ZTS3Foo)*", "int32_t[3]", "Class(_ZTS3Bar)&&".
func (p *Printer) PrintQType(q QType) {
	fmt.Fprint(p.w, FormatQType(q))
}

// FormatQType renders q into its canonical one-line spelling.
func FormatQType(q QType) string {
	var b strings.Builder
	formatQType(&b, q)
	return b.String()
}

func formatQType(b *strings.Builder, q QType) {
	switch q.Variant {
	case QTypeBuiltin:
		writeConst(b, q.IsConst)
		b.WriteString(q.Builtin.String())
	case QTypeRef:
		writeConst(b, q.IsConst)
		b.WriteString(refKindLabel(q.RefKind))
		b.WriteByte('(')
		b.WriteString(q.RefID)
		b.WriteByte(')')
	case QTypePointer:
		formatQType(b, *q.Pointee)
		b.WriteByte('*')
		writeTrailingConst(b, q.IsConst)
	case QTypeLValueReference:
		formatQType(b, *q.Pointee)
		b.WriteByte('&')
		writeTrailingConst(b, q.IsConst)
	case QTypeRValueReference:
		formatQType(b, *q.Pointee)
		b.WriteString("&&")
		writeTrailingConst(b, q.IsConst)
	case QTypeArray:
		formatQType(b, *q.Element)
		fmt.Fprintf(b, "[%d]", q.Size)
		writeTrailingConst(b, q.IsConst)
	default:
		b.WriteString("<invalid QType>")
	}
}

func writeConst(b *strings.Builder, isConst bool) {
	if isConst {
		b.WriteString("const ")
	}
}

func writeTrailingConst(b *strings.Builder, isConst bool) {
	if isConst {
		b.WriteString(" const")
	}
}

func refKindLabel(k TypeRefKind) string {
	switch k {
	case TypeRefClass:
		return "Class"
	case TypeRefClassTemplateSpecialization:
		return "ClassTemplateSpecialization"
	case TypeRefEnum:
		return "Enum"
	case TypeRefStdFunction:
		return "StdFunction"
	default:
		return "Ref"
	}
}

// FormatTemplateArg renders one TemplateArg into its canonical spelling.
func FormatTemplateArg(a TemplateArg) string {
	switch a.Variant {
	case TemplateArgType:
		return FormatQType(a.Type)
	case TemplateArgIntegral:
		return a.Value
	default:
		return "<invalid TemplateArg>"
	}
}

// PrintFunction writes a Function's canonical dump line.
func (p *Printer) PrintFunction(f Function) {
	p.printf("fn %s(", f.Name)
	for i, param := range f.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s: %s", param.Name, FormatQType(param.Type))
	}
	fmt.Fprintf(p.w, ") -> %s", FormatQType(f.ReturnType))
	if f.IsNoexcept {
		fmt.Fprint(p.w, " noexcept")
	}
	fmt.Fprintf(p.w, " [id=%s rename=%q]\n", f.ID, f.Rename)
}

// PrintMethod writes a Method's canonical dump line.
func (p *Printer) PrintMethod(m Method) {
	p.printf("method %s(", m.Function.Name)
	for i, param := range m.Function.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s: %s", param.Name, FormatQType(param.Type))
	}
	fmt.Fprintf(p.w, ") -> %s", FormatQType(m.Function.ReturnType))
	if m.IsConst {
		fmt.Fprint(p.w, " const")
	}
	if m.IsStatic {
		fmt.Fprint(p.w, " static")
	}
	if m.IsVirtual {
		fmt.Fprint(p.w, " virtual")
	}
	if m.IsPure {
		fmt.Fprint(p.w, " pure")
	}
	if m.Function.IsNoexcept {
		fmt.Fprint(p.w, " noexcept")
	}
	fmt.Fprintf(p.w, " [id=%s]\n", m.ID)
}

// PrintConstructor writes a Constructor's canonical dump line.
func (p *Printer) PrintConstructor(c Constructor) {
	p.printf("ctor(")
	for i, param := range c.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s: %s", param.Name, FormatQType(param.Type))
	}
	fmt.Fprint(p.w, ")")
	if c.IsNoexcept {
		fmt.Fprint(p.w, " noexcept")
	}
	fmt.Fprintf(p.w, " [id=%s rename=%q]\n", c.ID, c.Rename)
}

// PrintClass writes a Class and its nested methods/constructors/fields.
func (p *Printer) PrintClass(c Class) {
	p.printf("class %s [id=%s bind_kind=%s abstract=%t]\n", c.QualifiedName, c.ID, c.BindKind, c.IsAbstract)
	p.indent++
	if len(c.TemplateArgs) > 0 {
		args := make([]string, len(c.TemplateArgs))
		for i, a := range c.TemplateArgs {
			args[i] = FormatTemplateArg(a)
		}
		p.printf("template_args: <%s>\n", strings.Join(args, ", "))
	}
	for _, f := range c.Fields {
		p.printf("field %s: %s\n", f.Name, FormatQType(f.Type))
	}
	p.printf("rule_of_seven: %s\n", formatRuleOfSeven(c.RuleOfSeven))
	p.printf("layout: size=%d align=%d\n", c.LayoutInfo.SizeBytes, c.LayoutInfo.AlignBytes)
	for _, id := range c.ConstructorIDs {
		p.printf("ctor_id: %s\n", id)
	}
	for _, id := range c.MethodIDs {
		p.printf("method_id: %s\n", id)
	}
	p.indent--
}

func formatRuleOfSeven(r RuleOfSeven) string {
	return fmt.Sprintf(
		"copy_ctor=%t(nothrow=%t) move_ctor=%t(nothrow=%t) copy_assign=%t(nothrow=%t) move_assign=%t(nothrow=%t) destructible=%t virtual_dtor=%t",
		r.IsCopyConstructible, r.IsNothrowCopyConstructible,
		r.IsMoveConstructible, r.IsNothrowMoveConstructible,
		r.IsCopyAssignable, r.IsNothrowCopyAssignable,
		r.IsMoveAssignable, r.IsNothrowMoveAssignable,
		r.IsDestructible, r.HasVirtualDestructor,
	)
}

// PrintEnum writes an Enum and its variants in declaration order.
func (p *Printer) PrintEnum(e Enum) {
	p.printf("enum %s [id=%s underlying=%s]\n", e.Spelling, e.ID, FormatQType(e.IntegerType))
	p.indent++
	for _, v := range e.Variants {
		p.printf("%s = %s\n", v.Name, v.Value)
	}
	p.indent--
}

// PrintStdFunction writes a StdFunction's canonical dump line.
func (p *Printer) PrintStdFunction(f StdFunction) {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = FormatQType(param)
	}
	p.printf("stdfunction %s(%s) -> %s [id=%s]\n", f.Spelling, strings.Join(params, ", "), FormatQType(f.ReturnType), f.ID)
}

// PrintModule writes a Module header and its ordered id-lists.
func (p *Printer) PrintModule(m Module) {
	p.printf("module %s [id=%s ns %s -> %s]\n", m.Name, m.ID, m.NamespaceFrom, m.NamespaceTo)
	p.indent++
	for _, id := range m.ClassIDs {
		p.printf("class_id: %s\n", id)
	}
	for _, id := range m.FunctionIDs {
		p.printf("function_id: %s\n", id)
	}
	for _, id := range m.StdFunctionIDs {
		p.printf("stdfunction_id: %s\n", id)
	}
	for _, id := range m.EnumIDs {
		p.printf("enum_id: %s\n", id)
	}
	p.indent--
}
