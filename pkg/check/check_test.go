package check

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

func TestRun_ReferenceAgainstItself(t *testing.T) {
	rep := Run(views.Reference, views.Reference)

	if !rep.Valid {
		t.Errorf("Valid = false, findings %v", rep.Findings)
	}
	if len(rep.Findings) != 0 {
		t.Errorf("Findings = %d, want 0", len(rep.Findings))
	}
	if len(rep.Diff.Unsupported) != 0 || len(rep.Diff.ArityChanges) != 0 || len(rep.Diff.DomainDeltas) != 0 {
		t.Errorf("self diff not empty: %+v", rep.Diff)
	}
	if rep.Base != "Reference" || rep.Model != "Reference" {
		t.Errorf("Base/Model = %q/%q", rep.Base, rep.Model)
	}
}

func TestRun_MF100(t *testing.T) {
	rep := Run(views.Reference, views.MF100)

	if !rep.Valid {
		t.Fatalf("Valid = false, findings %v", rep.Findings)
	}
	if got := rep.ErrorCount(); got != 0 {
		t.Errorf("ErrorCount = %d, want 0", got)
	}
	if got := rep.WarningCount(); got != 2 {
		t.Errorf("WarningCount = %d, want 2", got)
	}
	for _, f := range rep.Findings {
		if f.Code != "ARITY_001" {
			t.Errorf("unexpected finding %+v", f)
		}
	}

	wantGone := []string{"SetMacroMode", "GetMacroMode", "CapMacroMode"}
	if len(rep.Diff.Unsupported) != len(wantGone) {
		t.Fatalf("Unsupported = %v, want %v", rep.Diff.Unsupported, wantGone)
	}
	for i, op := range wantGone {
		if rep.Diff.Unsupported[i] != op {
			t.Errorf("Unsupported[%d] = %q, want %q", i, rep.Diff.Unsupported[i], op)
		}
	}

	wantNarrowed := []ArityChange{
		{Operation: "CapColorTemp", Base: 3, Model: 2},
		{Operation: "CapLiveViewZoom", Base: 3, Model: 2},
	}
	if len(rep.Diff.ArityChanges) != len(wantNarrowed) {
		t.Fatalf("ArityChanges = %v, want %v", rep.Diff.ArityChanges, wantNarrowed)
	}
	for i, want := range wantNarrowed {
		if rep.Diff.ArityChanges[i] != want {
			t.Errorf("ArityChanges[%d] = %+v, want %+v", i, rep.Diff.ArityChanges[i], want)
		}
	}
}

func TestRun_MF50(t *testing.T) {
	rep := Run(views.Reference, views.MF50)

	if !rep.Valid {
		t.Fatalf("Valid = false, findings %v", rep.Findings)
	}
	if len(rep.Findings) != 0 {
		t.Errorf("Findings = %v, want none", rep.Findings)
	}
	if got := len(rep.Diff.Unsupported); got != 23 {
		t.Errorf("Unsupported = %d operations, want 23", got)
	}
	if got := len(rep.Diff.OpAliases); got != 3 {
		t.Errorf("OpAliases = %d entries, want 3", got)
	}

	deltas := map[string]DomainDelta{}
	for _, d := range rep.Diff.DomainDeltas {
		deltas[d.Domain] = d
	}
	fs, ok := deltas["FilmSim"]
	if !ok {
		t.Fatalf("no FilmSim delta in %v", rep.Diff.DomainDeltas)
	}
	if fs.Base != 23 || fs.Model != 18 || len(fs.Removed) != 5 {
		t.Errorf("FilmSim delta = %+v", fs)
	}
	if fs.Removed[0] != "Eterna" || fs.Removed[4] != "RealaAce" {
		t.Errorf("FilmSim removed = %v", fs.Removed)
	}
	depth, ok := deltas["RAWOutputDepth"]
	if !ok {
		t.Fatalf("no RAWOutputDepth delta in %v", rep.Diff.DomainDeltas)
	}
	if depth.Model != 1 || len(depth.Removed) != 1 || depth.Removed[0] != "16bit" {
		t.Errorf("RAWOutputDepth delta = %+v", depth)
	}
}

// brokenView misreports pieces of the reference view so every checker
// family has something to find.
type brokenView struct {
	ModelView
}

func (b brokenView) Name() string { return "Broken" }

func (b brokenView) Code(op string) (catalog.Code, error) {
	if op == "SetImageSize" {
		return 0x9999, nil
	}
	return b.ModelView.Code(op)
}

func (b brokenView) Supports(op string) bool {
	if op == "GetMacroMode" {
		return false
	}
	return b.ModelView.Supports(op)
}

func (b brokenView) DomainNames(d catalog.Domain) []string {
	names := b.ModelView.DomainNames(d)
	if d == catalog.DomainFilmSim {
		return append(names, "Kodachrome")
	}
	return names
}

func (b brokenView) OperationAliases() map[string]string {
	return map[string]string{"SetImageSize": "SetImageQuality"}
}

func TestRun_BrokenView(t *testing.T) {
	rep := Run(views.Reference, brokenView{ModelView: views.Reference})

	if rep.Valid {
		t.Fatal("Valid = true for a broken view")
	}
	want := map[string]int{
		"ALIAS_002":  1, // alias shadows SetImageSize
		"ALIAS_003":  1, // resolution disagrees with the alias table
		"CODE_001":   1, // SetImageSize code misreported
		"ENUM_001":   1, // Kodachrome is not in the catalogue
		"TRIPLE_001": 1, // GetMacroMode declined, siblings implemented
	}
	got := map[string]int{}
	for _, f := range rep.Findings {
		got[f.Code]++
	}
	for code, n := range want {
		if got[code] != n {
			t.Errorf("findings[%s] = %d, want %d", code, got[code], n)
		}
	}
	for code := range got {
		if _, ok := want[code]; !ok {
			t.Errorf("unexpected finding code %s", code)
		}
	}
	if got := rep.ErrorCount(); got != 5 {
		t.Errorf("ErrorCount = %d, want 5", got)
	}

	// Findings come out sorted by code.
	for i := 1; i < len(rep.Findings); i++ {
		if rep.Findings[i-1].Code > rep.Findings[i].Code {
			t.Errorf("findings unsorted at %d: %s after %s", i, rep.Findings[i].Code, rep.Findings[i-1].Code)
		}
	}
}

func TestReport_WriteJSON(t *testing.T) {
	rep := Run(views.Reference, views.MF100)

	var buf bytes.Buffer
	if err := rep.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["model"] != "MF100" {
		t.Errorf("model = %v, want MF100", decoded["model"])
	}
	if decoded["valid"] != true {
		t.Errorf("valid = %v, want true", decoded["valid"])
	}
	if _, ok := decoded["report_id"].(string); !ok {
		t.Errorf("report_id = %v, want a string", decoded["report_id"])
	}
}

func TestReport_WriteYAML(t *testing.T) {
	rep := Run(views.Reference, views.MF50)

	var buf bytes.Buffer
	if err := rep.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var decoded struct {
		Model string `yaml:"model"`
		Valid bool   `yaml:"valid"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded.Model != "MF50" || !decoded.Valid {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(buf.String(), "report_id:") {
		t.Errorf("missing report_id key in %q", buf.String())
	}
}

func TestProperty(t *testing.T) {
	cases := []struct {
		op   string
		prop string
		ok   bool
	}{
		{"SetImageSize", "ImageSize", true},
		{"GetMacroMode", "MacroMode", true},
		{"CapColorTemp", "ColorTemp", true},
		{"StartLiveView", "", false},
		{"CaptureCustomWB", "", false},
		{"Set", "", false},
	}
	for _, c := range cases {
		prop, ok := property(c.op)
		if prop != c.prop || ok != c.ok {
			t.Errorf("property(%q) = %q, %v, want %q, %v", c.op, prop, ok, c.prop, c.ok)
		}
	}
}
