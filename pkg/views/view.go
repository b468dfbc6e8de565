// Package views publishes the per-model projections of the base
// catalogue: which operations each body implements, how many parameter
// slots each takes, and any model-specific names and domain subsets.
package views

import (
	"errors"
	"fmt"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
)

// ErrOperationUnsupported reports an operation a model publishes for
// symmetry but does not implement. Hosts fail the call without touching
// the device.
var ErrOperationUnsupported = errors.New("operation unsupported on this model")

// View is one model's projection of the base catalogue. Views are built
// at package initialization and read-only afterwards.
type View struct {
	name      string
	arities   map[string]Arity
	domains   map[catalog.Domain][]string
	opAliases map[string]string
	ops       []string
}

// newView validates a projection against the base catalogue and caches
// the publication order. Table defects are construction-time panics.
func newView(name string, arities map[string]Arity, domains map[catalog.Domain][]string, opAliases map[string]string) *View {
	v := &View{
		name:      name,
		arities:   arities,
		domains:   domains,
		opAliases: opAliases,
	}
	for op := range arities {
		if _, err := catalog.OperationCode(op); err != nil {
			panic(fmt.Sprintf("views: %s arity table names unknown operation %s", name, op))
		}
	}
	for _, op := range catalog.Operations() {
		if _, ok := arities[op]; ok {
			v.ops = append(v.ops, op)
		}
	}
	for alias, target := range opAliases {
		if _, ok := arities[target]; !ok {
			panic(fmt.Sprintf("views: %s alias %s targets unpublished operation %s", name, alias, target))
		}
		if _, ok := arities[alias]; ok {
			panic(fmt.Sprintf("views: %s alias %s shadows a published operation", name, alias))
		}
	}
	for d, names := range domains {
		for _, n := range names {
			if _, err := catalog.EnumValue(d, n); err != nil {
				panic(fmt.Sprintf("views: %s domain subset %s names unknown value %s", name, d, n))
			}
		}
	}
	return v
}

// derive copies the reference arity table and applies a model's
// overrides, keeping the publication set identical across siblings.
func derive(overrides map[string]Arity) map[string]Arity {
	out := make(map[string]Arity, len(referenceArities))
	for op, a := range referenceArities {
		out[op] = a
	}
	for op, a := range overrides {
		out[op] = a
	}
	return out
}

// Name is the model identifier of the view.
func (v *View) Name() string { return v.name }

// Operations returns the publication set ordered by family then code.
func (v *View) Operations() []string {
	out := make([]string, len(v.ops))
	copy(out, v.ops)
	return out
}

// ResolveOperation maps a model-specific operation name to its canonical
// catalogue name. Names without an alias pass through.
func (v *View) ResolveOperation(op string) string {
	if canonical, ok := v.opAliases[op]; ok {
		return canonical
	}
	return op
}

// Supports reports whether the model implements the operation.
func (v *View) Supports(op string) bool {
	a, ok := v.arities[v.ResolveOperation(op)]
	return ok && a.Supported()
}

// Arity returns the parameter arity the model declares for the
// operation.
func (v *View) Arity(op string) (Arity, error) {
	a, ok := v.arities[v.ResolveOperation(op)]
	if !ok {
		return Arity{}, fmt.Errorf("view %s: operation %q: %w", v.name, op, catalog.ErrUnknownOperation)
	}
	return a, nil
}

// Code returns the base catalogue code for a supported operation.
func (v *View) Code(op string) (catalog.Code, error) {
	canonical := v.ResolveOperation(op)
	a, ok := v.arities[canonical]
	if !ok {
		return 0, fmt.Errorf("view %s: operation %q: %w", v.name, op, catalog.ErrUnknownOperation)
	}
	if !a.Supported() {
		return 0, fmt.Errorf("view %s: operation %q: %w", v.name, op, ErrOperationUnsupported)
	}
	return catalog.OperationCode(canonical)
}

// Layout reports the record layout a supported operation exchanges, if
// any.
func (v *View) Layout(op string) (string, bool) {
	return catalog.OperationLayout(v.ResolveOperation(op))
}

// EnumValue resolves a value name within the domain subset this model
// publishes; domains without a declared subset pass through whole.
func (v *View) EnumValue(d catalog.Domain, name string) (int64, error) {
	if subset, ok := v.domains[d]; ok {
		found := false
		for _, n := range subset {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("view %s: enum %s.%q: %w", v.name, d, name, catalog.ErrUnknownEnumValue)
		}
	}
	return catalog.EnumValue(d, name)
}

// DomainNames returns the value names the model publishes for a domain.
func (v *View) DomainNames(d catalog.Domain) []string {
	if subset, ok := v.domains[d]; ok {
		out := make([]string, len(subset))
		copy(out, subset)
		return out
	}
	return catalog.DomainNames(d)
}

// OperationAliases returns the model-specific name mapping.
func (v *View) OperationAliases() map[string]string {
	out := make(map[string]string, len(v.opAliases))
	for k, val := range v.opAliases {
		out[k] = val
	}
	return out
}
