package catalog

// Live view family, 0x33xx.
const (
	OpStartLiveView           Code = 0x3301
	OpStopLiveView            Code = 0x3302
	OpSetLiveViewImageQuality Code = 0x3303
	OpGetLiveViewImageQuality Code = 0x3304
	OpCapLiveViewImageQuality Code = 0x3305
	OpSetLiveViewImageSize    Code = 0x3306
	OpGetLiveViewImageSize    Code = 0x3307
	OpCapLiveViewImageSize    Code = 0x3308
	OpSetLiveViewZoom         Code = 0x3309
	OpGetLiveViewZoom         Code = 0x330A
	OpCapLiveViewZoom         Code = 0x330B
	OpSetExposurePreview      Code = 0x330C
	OpGetExposurePreview      Code = 0x330D
	OpCapExposurePreview      Code = 0x330E
	OpSetDepthPreview         Code = 0x330F
	OpGetDepthPreview         Code = 0x3310
)

var liveViewOps = []opdef{
	{"StartLiveView", OpStartLiveView},
	{"StopLiveView", OpStopLiveView},
	{"SetLiveViewImageQuality", OpSetLiveViewImageQuality},
	{"GetLiveViewImageQuality", OpGetLiveViewImageQuality},
	{"CapLiveViewImageQuality", OpCapLiveViewImageQuality},
	{"SetLiveViewImageSize", OpSetLiveViewImageSize},
	{"GetLiveViewImageSize", OpGetLiveViewImageSize},
	{"CapLiveViewImageSize", OpCapLiveViewImageSize},
	{"SetLiveViewZoom", OpSetLiveViewZoom},
	{"GetLiveViewZoom", OpGetLiveViewZoom},
	{"CapLiveViewZoom", OpCapLiveViewZoom},
	{"SetExposurePreview", OpSetExposurePreview},
	{"GetExposurePreview", OpGetExposurePreview},
	{"CapExposurePreview", OpCapExposurePreview},
	{"SetDepthPreview", OpSetDepthPreview},
	{"GetDepthPreview", OpGetDepthPreview},
}
