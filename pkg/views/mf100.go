package views

// MF100 is the 102-megapixel body. It implements the full catalogue
// except the macro drive switch, and reports its kelvin table and zoom
// steps as counted sets rather than stepped ranges.
var MF100 = newView("MF100", mf100Arities, nil, nil)

var mf100Arities = derive(map[string]Arity{
	// The body has no macro drive; close focus is a lens property.
	"SetMacroMode": NotSupported,
	"GetMacroMode": NotSupported,
	"CapMacroMode": NotSupported,

	// Discrete kelvin and magnification tables: count plus domain tag.
	"CapColorTemp":    Params(2),
	"CapLiveViewZoom": Params(2),
})
