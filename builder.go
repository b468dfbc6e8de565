package fujicom

import (
	"errors"
	"fmt"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/records"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

var (
	// ErrArityMismatch reports a parameter tuple whose size differs from
	// the arity the model declares.
	ErrArityMismatch = errors.New("parameter count does not match declared arity")
	// ErrRecordMismatch reports a record where scalars belong, a missing
	// record, or a record of the wrong layout.
	ErrRecordMismatch = errors.New("record does not match operation layout")
)

// Request is a fully resolved operation invocation ready for a
// transport: the wire code, the scalar parameters in declared order and
// the packed record for compound operations.
type Request struct {
	Op      string
	Code    catalog.Code
	Params  []int64
	Payload []byte
}

// Builder assembles well-formed requests against one model view.
type Builder struct {
	view *views.View
}

// NewBuilder wraps a model view.
func NewBuilder(v *views.View) *Builder {
	return &Builder{view: v}
}

// ForModel returns a builder for a shipped model.
func ForModel(m Model) (*Builder, error) {
	v, err := ModelView(m)
	if err != nil {
		return nil, err
	}
	return NewBuilder(v), nil
}

// View returns the model view the builder validates against.
func (b *Builder) View() *views.View { return b.view }

// Build assembles a scalar request. The operation must be supported by
// the model and take exactly len(params) slots.
func (b *Builder) Build(op string, params ...int64) (*Request, error) {
	code, arity, err := b.resolve(op)
	if err != nil {
		return nil, err
	}
	if _, bound := b.view.Layout(op); bound {
		return nil, fmt.Errorf("operation %q exchanges a record: %w", op, ErrRecordMismatch)
	}
	n, _ := arity.Count()
	if len(params) != n {
		return nil, fmt.Errorf("operation %q takes %d parameters, got %d: %w", op, n, len(params), ErrArityMismatch)
	}
	return &Request{Op: b.view.ResolveOperation(op), Code: code, Params: params}, nil
}

// BuildRecord assembles a request around a compound record. The record
// fills one slot; params fill the remaining ones in declared order.
func (b *Builder) BuildRecord(op string, rec records.Record, params ...int64) (*Request, error) {
	code, arity, err := b.resolve(op)
	if err != nil {
		return nil, err
	}
	layout, bound := b.view.Layout(op)
	if !bound {
		return nil, fmt.Errorf("operation %q takes no record: %w", op, ErrRecordMismatch)
	}
	if rec == nil || rec.LayoutName() != layout {
		return nil, fmt.Errorf("operation %q exchanges %s records: %w", op, layout, ErrRecordMismatch)
	}
	n, _ := arity.Count()
	if len(params)+1 != n {
		return nil, fmt.Errorf("operation %q takes %d parameters, got %d and a record: %w", op, n, len(params), ErrArityMismatch)
	}
	payload, err := rec.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &Request{Op: b.view.ResolveOperation(op), Code: code, Params: params, Payload: payload}, nil
}

func (b *Builder) resolve(op string) (catalog.Code, views.Arity, error) {
	arity, err := b.view.Arity(op)
	if err != nil {
		return 0, views.Arity{}, err
	}
	code, err := b.view.Code(op)
	if err != nil {
		return 0, views.Arity{}, err
	}
	return code, arity, nil
}
