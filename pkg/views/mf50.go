package views

import "github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"

// MF50 is the 51-megapixel body of the previous generation. It keeps the
// macro drive but predates the focus limiter, custom AF zones, movie
// recording, the crop readout and the newer rendering controls, and its
// firmware still answers the legacy thru-image names for the live-view
// zoom calls.
var MF50 = newView("MF50", mf50Arities, mf50Domains, mf50OpAliases)

var mf50Arities = derive(map[string]Arity{
	"SetFocusLimiterPosA":      NotSupported,
	"SetFocusLimiterPosB":      NotSupported,
	"ClearFocusLimiter":        NotSupported,
	"GetFocusLimiterRange":     NotSupported,
	"GetFocusLimiterIndicator": NotSupported,

	"SetAFZoneCustom": NotSupported,
	"GetAFZoneCustom": NotSupported,
	"CapAFZoneCustom": NotSupported,

	"StartMovieRecording": NotSupported,
	"StopMovieRecording":  NotSupported,

	"SetPerformanceMode": NotSupported,
	"GetPerformanceMode": NotSupported,
	"CapPerformanceMode": NotSupported,

	"SetColorChromeBlue": NotSupported,
	"GetColorChromeBlue": NotSupported,
	"CapColorChromeBlue": NotSupported,

	"SetSmoothSkinEffect": NotSupported,
	"GetSmoothSkinEffect": NotSupported,
	"CapSmoothSkinEffect": NotSupported,

	"SetCropMode":      NotSupported,
	"GetCropMode":      NotSupported,
	"CapCropMode":      NotSupported,
	"GetCropAreaFrame": NotSupported,
})

// mf50Domains lists the value subsets the older firmware accepts.
var mf50Domains = map[catalog.Domain][]string{
	catalog.DomainFilmSim: {
		"ProVia", "Std", "Velvia", "Vivid", "Astia", "Soft",
		"ClassicChrome", "ProNegHi", "ProNegStd",
		"Monochrome", "MonochromeYe", "MonochromeR", "MonochromeG",
		"Sepia",
		"Acros", "AcrosYe", "AcrosR", "AcrosG",
	},
	catalog.DomainRAWOutputDepth: {"14bit"},
}

var mf50OpAliases = map[string]string{
	"SetThruImageZoom": "SetLiveViewZoom",
	"GetThruImageZoom": "GetLiveViewZoom",
	"CapThruImageZoom": "CapLiveViewZoom",
}
