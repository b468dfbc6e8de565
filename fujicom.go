// Package fujicom publishes the control catalogue for a family of
// medium-format camera bodies: stable operation codes, the legal values
// of every enumerated property, the byte-packed records exchanged with
// the bodies, and per-model projections stating what each body
// implements.
//
// The package holds no transport. Hosts look an operation up through a
// model view, assemble a Request with the declared number of parameter
// slots, and hand it to whatever carries it to the body.
package fujicom

import (
	"errors"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

// Model identifies one camera body the catalogue ships a view for.
type Model string

const (
	// ModelReference is the full catalogue with nothing declined.
	ModelReference Model = "Reference"
	// ModelMF100 is the 102-megapixel body.
	ModelMF100 Model = "MF100"
	// ModelMF50 is the previous-generation 51-megapixel body.
	ModelMF50 Model = "MF50"
)

var ErrUnknownModel = errors.New("unknown model")

var modelViews = map[Model]*views.View{
	ModelReference: views.Reference,
	ModelMF100:     views.MF100,
	ModelMF50:      views.MF50,
}

var modelOrder = []Model{ModelReference, ModelMF100, ModelMF50}

// ModelView returns the projection for a model.
func ModelView(m Model) (*views.View, error) {
	v, ok := modelViews[m]
	if !ok {
		return nil, ErrUnknownModel
	}
	return v, nil
}

// Models lists the shipped models, the reference first.
func Models() []Model {
	out := make([]Model, len(modelOrder))
	copy(out, modelOrder)
	return out
}
