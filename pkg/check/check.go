// Package check verifies the consistency rules every shipped model view
// must satisfy against the base catalogue, and distills the differences
// into a machine-readable capability report. Release tooling runs it as
// a gate: a report with error findings blocks the release.
package check

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/records"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

type Severity string

const (
	SevError   Severity = "error"
	SevWarning Severity = "warning"
)

// Finding is one violated or narrowed consistency rule.
type Finding struct {
	Code      string   `json:"code" yaml:"code"`
	Severity  Severity `json:"severity" yaml:"severity"`
	Invariant string   `json:"invariant" yaml:"invariant"`
	Operation string   `json:"operation,omitempty" yaml:"operation,omitempty"`
	Domain    string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Detail    string   `json:"detail" yaml:"detail"`
}

// Invariant labels used in findings.
const (
	InvPublication = "publication-coverage"
	InvCodes       = "code-agreement"
	InvTriples     = "triple-symmetry"
	InvArities     = "arity-agreement"
	InvEnums       = "enum-agreement"
	InvAliases     = "alias-resolution"
	InvRecords     = "record-sizes"
)

// ModelView is the read surface the checker walks. *views.View
// implements it.
type ModelView interface {
	Name() string
	Operations() []string
	ResolveOperation(op string) string
	Supports(op string) bool
	Code(op string) (catalog.Code, error)
	Arity(op string) (views.Arity, error)
	Layout(op string) (string, bool)
	EnumValue(d catalog.Domain, name string) (int64, error)
	DomainNames(d catalog.Domain) []string
	OperationAliases() map[string]string
}

// Run checks one model view against the base view and returns the
// report. base is normally views.Reference.
func Run(base, model ModelView) Report {
	rep := Report{
		ReportID:    uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Base:        base.Name(),
		Model:       model.Name(),
		Findings:    []Finding{},
	}
	r := &runner{base: base, model: model, rep: &rep}
	r.checkPublication()
	r.checkCodes()
	r.checkTriples()
	r.checkArities()
	r.checkDomains()
	r.checkAliases()
	r.checkRecords()
	rep.finalize()
	return rep
}

type runner struct {
	base  ModelView
	model ModelView
	rep   *Report
}

// checkPublication: the model's table covers every catalogue operation,
// names nothing foreign, and carries an arity row for everything it
// publishes.
func (r *runner) checkPublication() {
	published := map[string]bool{}
	for _, op := range r.model.Operations() {
		published[op] = true
		if _, err := catalog.OperationCode(op); err != nil {
			r.rep.add(Finding{
				Code: "OP_002", Severity: SevError, Invariant: InvPublication,
				Operation: op,
				Detail:    "published operation is not in the base catalogue",
			})
			continue
		}
		if _, err := r.model.Arity(op); err != nil {
			r.rep.add(Finding{
				Code: "OP_003", Severity: SevError, Invariant: InvPublication,
				Operation: op,
				Detail:    "published operation has no arity row",
			})
		}
	}
	for _, op := range catalog.Operations() {
		if !published[op] {
			r.rep.add(Finding{
				Code: "OP_001", Severity: SevError, Invariant: InvPublication,
				Operation: op,
				Detail:    "catalogue operation missing from the model's table",
			})
		}
	}
	for _, op := range r.base.Operations() {
		switch {
		case r.base.Supports(op) && !r.model.Supports(op):
			r.rep.Diff.Unsupported = append(r.rep.Diff.Unsupported, op)
		case !r.base.Supports(op) && r.model.Supports(op):
			r.rep.add(Finding{
				Code: "OP_004", Severity: SevWarning, Invariant: InvPublication,
				Operation: op,
				Detail:    "operation implemented though the base declines it",
			})
		}
	}
	if aliases := r.model.OperationAliases(); len(aliases) > 0 {
		r.rep.Diff.OpAliases = aliases
	}
}

// checkCodes: a supported operation resolves to the same stable code on
// the model as in the base catalogue.
func (r *runner) checkCodes() {
	for _, op := range r.model.Operations() {
		if !r.model.Supports(op) {
			continue
		}
		want, err := catalog.OperationCode(op)
		if err != nil {
			continue // reported as OP_002
		}
		got, err := r.model.Code(op)
		if err != nil {
			r.rep.add(Finding{
				Code: "CODE_002", Severity: SevError, Invariant: InvCodes,
				Operation: op,
				Detail:    fmt.Sprintf("supported operation failed code lookup: %v", err),
			})
			continue
		}
		if got != want {
			r.rep.add(Finding{
				Code: "CODE_001", Severity: SevError, Invariant: InvCodes,
				Operation: op,
				Detail:    fmt.Sprintf("model reports %#04x, catalogue %#04x", uint16(got), uint16(want)),
			})
		}
	}
}

// checkTriples: the Set/Get/Cap calls of one property are either all
// implemented or all declined on the model.
func (r *runner) checkTriples() {
	var order []string
	groups := map[string][]string{}
	for _, op := range r.model.Operations() {
		prop, ok := property(op)
		if !ok {
			continue
		}
		if _, seen := groups[prop]; !seen {
			order = append(order, prop)
		}
		groups[prop] = append(groups[prop], op)
	}
	for _, prop := range order {
		ops := groups[prop]
		if len(ops) < 2 {
			continue
		}
		first := r.model.Supports(ops[0])
		for _, op := range ops[1:] {
			if r.model.Supports(op) != first {
				r.rep.add(Finding{
					Code: "TRIPLE_001", Severity: SevError, Invariant: InvTriples,
					Operation: op,
					Detail:    fmt.Sprintf("support differs from %s within the %s calls", ops[0], prop),
				})
			}
		}
	}
}

// property strips a Set/Get/Cap verb. Operations without one, like
// StartLiveView, carry no triple obligation.
func property(op string) (string, bool) {
	for _, verb := range []string{"Set", "Get", "Cap"} {
		if strings.HasPrefix(op, verb) && len(op) > len(verb) {
			if c := op[len(verb)]; c >= 'A' && c <= 'Z' {
				return op[len(verb):], true
			}
		}
	}
	return "", false
}

// checkArities: arities match the base, except the documented narrowing
// of a stepped-range capability to its enumerated form.
func (r *runner) checkArities() {
	for _, op := range r.base.Operations() {
		ba, err := r.base.Arity(op)
		if err != nil {
			continue
		}
		ma, err := r.model.Arity(op)
		if err != nil {
			continue // reported as OP_001/OP_003
		}
		bn, bok := ba.Count()
		mn, mok := ma.Count()
		if !bok || !mok || bn == mn {
			continue
		}
		r.rep.Diff.ArityChanges = append(r.rep.Diff.ArityChanges, ArityChange{
			Operation: op, Base: bn, Model: mn,
		})
		if strings.HasPrefix(op, "Cap") && bn == 3 && mn == 2 {
			r.rep.add(Finding{
				Code: "ARITY_001", Severity: SevWarning, Invariant: InvArities,
				Operation: op,
				Detail:    "capability narrowed from stepped range to enumerated form",
			})
			continue
		}
		r.rep.add(Finding{
			Code: "ARITY_002", Severity: SevError, Invariant: InvArities,
			Operation: op,
			Detail:    fmt.Sprintf("model declares %d parameters, base %d", mn, bn),
		})
	}
}

// checkDomains: every value name the model publishes resolves to the
// same encoding as in the base catalogue, and subsets only remove.
func (r *runner) checkDomains() {
	for _, d := range catalog.Domains() {
		baseNames := r.base.DomainNames(d)
		baseSet := map[string]bool{}
		for _, n := range baseNames {
			baseSet[n] = true
		}
		modelNames := r.model.DomainNames(d)
		modelSet := map[string]bool{}
		for _, n := range modelNames {
			modelSet[n] = true
			if !baseSet[n] {
				r.rep.add(Finding{
					Code: "ENUM_001", Severity: SevError, Invariant: InvEnums,
					Domain: string(d),
					Detail: fmt.Sprintf("model publishes %q which the base does not", n),
				})
				continue
			}
			mv, err := r.model.EnumValue(d, n)
			if err != nil {
				r.rep.add(Finding{
					Code: "ENUM_001", Severity: SevError, Invariant: InvEnums,
					Domain: string(d),
					Detail: fmt.Sprintf("published name %q does not resolve: %v", n, err),
				})
				continue
			}
			cv, err := catalog.EnumValue(d, n)
			if err != nil || mv != cv {
				r.rep.add(Finding{
					Code: "ENUM_002", Severity: SevError, Invariant: InvEnums,
					Domain: string(d),
					Detail: fmt.Sprintf("name %q encodes %d on the model, %d in the catalogue", n, mv, cv),
				})
			}
		}
		if len(modelNames) == 0 && len(baseNames) > 0 {
			r.rep.add(Finding{
				Code: "ENUM_003", Severity: SevWarning, Invariant: InvEnums,
				Domain: string(d),
				Detail: "model publishes the domain with no values",
			})
		}
		var removed []string
		for _, n := range baseNames {
			if !modelSet[n] {
				removed = append(removed, n)
			}
		}
		if len(removed) > 0 {
			r.rep.Diff.DomainDeltas = append(r.rep.Diff.DomainDeltas, DomainDelta{
				Domain: string(d), Base: len(baseNames), Model: len(modelNames), Removed: removed,
			})
		}
	}
}

// checkAliases: model-specific operation names resolve deterministically
// to supported canonical operations and never shadow one.
func (r *runner) checkAliases() {
	aliases := r.model.OperationAliases()
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	for _, alias := range names {
		target := aliases[alias]
		if _, err := catalog.OperationCode(alias); err == nil {
			r.rep.add(Finding{
				Code: "ALIAS_002", Severity: SevError, Invariant: InvAliases,
				Operation: alias,
				Detail:    "alias shadows a canonical operation name",
			})
		}
		if !r.model.Supports(target) {
			r.rep.add(Finding{
				Code: "ALIAS_001", Severity: SevError, Invariant: InvAliases,
				Operation: alias,
				Detail:    fmt.Sprintf("alias targets %s which the model does not implement", target),
			})
		}
		if got := r.model.ResolveOperation(alias); got != target {
			r.rep.add(Finding{
				Code: "ALIAS_003", Severity: SevError, Invariant: InvAliases,
				Operation: alias,
				Detail:    fmt.Sprintf("alias resolves to %s, table says %s", got, target),
			})
		}
	}
}

// checkRecords: registry sizes agree with the codecs, and every layout
// binding the model exposes names a registered layout.
func (r *runner) checkRecords() {
	for _, name := range records.Layouts() {
		layout, err := records.Layout(name)
		if err != nil {
			continue
		}
		rec, err := records.New(name)
		if err != nil {
			r.rep.add(Finding{
				Code: "REC_002", Severity: SevError, Invariant: InvRecords,
				Detail: fmt.Sprintf("layout %s has no codec", name),
			})
			continue
		}
		if rec.LayoutName() != name {
			r.rep.add(Finding{
				Code: "REC_002", Severity: SevError, Invariant: InvRecords,
				Detail: fmt.Sprintf("codec for %s names layout %s", name, rec.LayoutName()),
			})
		}
		if rec.MarshalSize() != layout.Size() {
			r.rep.add(Finding{
				Code: "REC_001", Severity: SevError, Invariant: InvRecords,
				Detail: fmt.Sprintf("layout %s registers %d bytes, codec packs %d", name, layout.Size(), rec.MarshalSize()),
			})
		}
	}
	for _, op := range r.model.Operations() {
		name, ok := r.model.Layout(op)
		if !ok {
			continue
		}
		if _, err := records.Layout(name); err != nil {
			r.rep.add(Finding{
				Code: "REC_003", Severity: SevError, Invariant: InvRecords,
				Operation: op,
				Detail:    fmt.Sprintf("operation binds unregistered layout %s", name),
			})
		}
	}
}
