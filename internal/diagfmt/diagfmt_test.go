package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"babble/internal/diag"
	"babble/internal/source"
)

func newTestBag(t *testing.T) (*diag.Bag, *source.FileSet, source.Span) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("binding.cpp", []byte("BBL_CLASS(Foo)\nstruct Foo {};\n"))
	span := source.Span{File: fid, Start: 0, End: 9}

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.MarkerMalformedClassSite,
		Message:  "malformed class binding site",
		Primary:  span,
		Notes:    []diag.Note{{Span: span, Msg: "previously bound here"}},
	})
	return bag, fs, span
}

func TestPrettyRendersDiagnosticAndNotes(t *testing.T) {
	bag, fs, _ := newTestBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})

	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Fatalf("expected severity label in output: %q", out)
	}
	if !strings.Contains(out, "malformed class binding site") {
		t.Fatalf("expected message in output: %q", out)
	}
	if !strings.Contains(out, "note") {
		t.Fatalf("expected note to be rendered: %q", out)
	}
}

func TestPrettyColorizesWithoutBreakingPlainText(t *testing.T) {
	bag, fs, _ := newTestBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if buf.Len() == 0 {
		t.Fatalf("expected colorized output to still render something")
	}
}

func TestJSONRoundTrips(t *testing.T) {
	bag, fs, _ := newTestBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != diag.MarkerMalformedClassSite.ID() {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if len(d.Notes) != 1 {
		t.Fatalf("expected one note, got %+v", d.Notes)
	}
}

func TestJSONRespectsMax(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("binding.cpp", []byte("x\n"))
	span := source.Span{File: fid, Start: 0, End: 1}

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.MarkerMalformedClassSite, Message: "one", Primary: span})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.MarkerMalformedEnumSite, Message: "two", Primary: span})

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("expected Max to cap output at 1, got %d", out.Count)
	}
}

func TestSarifProducesValidJSONWithRules(t *testing.T) {
	bag, fs, _ := newTestBag(t)
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "bblgen", ToolVersion: "0.1.0", InvocationArgs: []string{"binding.cpp"}}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if log.Version != sarifVersion {
		t.Fatalf("Version = %q", log.Version)
	}
	if len(log.Runs) != 1 || len(log.Runs[0].Results) != 1 {
		t.Fatalf("expected a single run with a single result: %+v", log.Runs)
	}
	if log.Runs[0].Tool.Driver.Name != "bblgen" {
		t.Fatalf("tool name = %q", log.Runs[0].Tool.Driver.Name)
	}
	if len(log.Runs[0].Tool.Driver.Rules) != 1 {
		t.Fatalf("expected one deduplicated rule, got %+v", log.Runs[0].Tool.Driver.Rules)
	}
}

func TestSarifExecutionSuccessfulReflectsErrors(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "bblgen"}); err != nil {
		t.Fatalf("Sarif: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !log.Runs[0].Invocations[0].ExecutionSuccessful {
		t.Fatalf("expected ExecutionSuccessful=true with no diagnostics")
	}
}
