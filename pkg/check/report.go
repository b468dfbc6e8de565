package check

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/report-v1.json
var reportSchemaJSON string

var reportSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report-v1.json", strings.NewReader(reportSchemaJSON)); err != nil {
		panic(fmt.Sprintf("check: add schema resource: %v", err))
	}
	schema, err := compiler.Compile("report-v1.json")
	if err != nil {
		panic(fmt.Sprintf("check: compile schema: %v", err))
	}
	return schema
}

// Report is the outcome of checking one model view against the base.
type Report struct {
	ReportID    uuid.UUID `json:"report_id" yaml:"report_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Base        string    `json:"base" yaml:"base"`
	Model       string    `json:"model" yaml:"model"`
	Valid       bool      `json:"valid" yaml:"valid"`
	Findings    []Finding `json:"findings" yaml:"findings"`
	Diff        Diff      `json:"diff" yaml:"diff"`
}

// Diff is the capability delta between base and model, in the shape
// host capability caches consume.
type Diff struct {
	Unsupported  []string          `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
	ArityChanges []ArityChange     `json:"arity_changes,omitempty" yaml:"arity_changes,omitempty"`
	DomainDeltas []DomainDelta     `json:"domain_deltas,omitempty" yaml:"domain_deltas,omitempty"`
	OpAliases    map[string]string `json:"op_aliases,omitempty" yaml:"op_aliases,omitempty"`
}

// ArityChange records an operation whose declared slot count differs
// from the base.
type ArityChange struct {
	Operation string `json:"operation" yaml:"operation"`
	Base      int    `json:"base" yaml:"base"`
	Model     int    `json:"model" yaml:"model"`
}

// DomainDelta records a value domain the model re-exports as a subset.
type DomainDelta struct {
	Domain  string   `json:"domain" yaml:"domain"`
	Base    int      `json:"base" yaml:"base"`
	Model   int      `json:"model" yaml:"model"`
	Removed []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

func (r *Report) finalize() {
	sort.SliceStable(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		return a.Detail < b.Detail
	})
	r.Valid = r.ErrorCount() == 0
}

// ErrorCount is the number of error-severity findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SevError {
			n++
		}
	}
	return n
}

// WarningCount is the number of warning-severity findings.
func (r *Report) WarningCount() int {
	return len(r.Findings) - r.ErrorCount()
}

// WriteJSON emits the report as indented JSON. The document is
// validated against the embedded schema first; a malformed report is an
// error, not output.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("reparse report: %w", err)
	}
	if err := reportSchema.Validate(doc); err != nil {
		return fmt.Errorf("report schema validation failed: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteYAML emits the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		enc.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
