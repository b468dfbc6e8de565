package views

import (
	"fmt"
	"strconv"
)

// Arity states how many scalar parameters an operation carries on this
// model, or that the model does not implement it. The zero value is
// "not supported".
//
// For capability queries the count is the size of the response tuple;
// for setters and getters it is the request tuple after flattening, with
// a compound record counting as a single slot.
type Arity struct {
	count     int
	supported bool
}

// NotSupported tags an operation that is published for symmetry with
// sibling models but not implemented on this one.
var NotSupported = Arity{}

// Params declares a supported operation taking n scalar slots.
func Params(n int) Arity {
	if n < 0 {
		panic(fmt.Sprintf("views: negative arity %d", n))
	}
	return Arity{count: n, supported: true}
}

// Supported reports whether the model implements the operation.
func (a Arity) Supported() bool { return a.supported }

// Count returns the scalar slot count and whether the operation is
// supported at all.
func (a Arity) Count() (int, bool) { return a.count, a.supported }

// Sentinel renders the arity in the published wire form: the slot count,
// or -1 for an unsupported operation. Capability caches exchange this
// form.
func (a Arity) Sentinel() int {
	if !a.supported {
		return -1
	}
	return a.count
}

func (a Arity) String() string {
	if !a.supported {
		return "unsupported"
	}
	return strconv.Itoa(a.count)
}
