package ir

import (
	"strings"
	"testing"
)

func TestPrintClassDeterministic(t *testing.T) {
	class := Class{
		ID:            "_ZTS3Foo",
		QualifiedName: "Foo",
		BindKind:      OpaquePtr,
		RuleOfSeven: RuleOfSeven{
			IsCopyConstructible: true,
			IsDestructible:      true,
		},
		LayoutInfo: Layout{SizeBytes: 8, AlignBytes: 8},
		MethodIDs:  []MethodID{"m1", "m2"},
	}

	var b1, b2 strings.Builder
	NewPrinter(&b1).PrintClass(class)
	NewPrinter(&b2).PrintClass(class)

	if b1.String() != b2.String() {
		t.Fatalf("expected PrintClass to be deterministic across runs:\n%s\nvs\n%s", b1.String(), b2.String())
	}

	out := b1.String()
	for _, want := range []string{"class Foo", "method_id: m1", "method_id: m2", "bind_kind=opaque_ptr"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintModulePreservesOrder(t *testing.T) {
	m := Module{
		Name:     "test",
		ClassIDs: []ClassID{"C3", "C1", "C2"},
	}

	var b strings.Builder
	NewPrinter(&b).PrintModule(m)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	var classLines []string
	for _, l := range lines {
		if strings.Contains(l, "class_id:") {
			classLines = append(classLines, strings.TrimSpace(l))
		}
	}
	want := []string{"class_id: C3", "class_id: C1", "class_id: C2"}
	if len(classLines) != len(want) {
		t.Fatalf("got %d class_id lines, want %d", len(classLines), len(want))
	}
	for i := range want {
		if classLines[i] != want[i] {
			t.Errorf("class_id line %d = %q, want %q", i, classLines[i], want[i])
		}
	}
}
