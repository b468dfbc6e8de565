package catalog

// Live-view domains.
const (
	DomainLiveViewImageQuality Domain = "LiveViewImageQuality"
	DomainLiveViewImageSize    Domain = "LiveViewImageSize"
	DomainLiveViewZoom         Domain = "LiveViewZoom"
	DomainExposurePreview      Domain = "ExposurePreview"
	DomainDepthPreview         Domain = "DepthPreview"
)

func registerLiveViewEnums() {
	registerDomain(DomainLiveViewImageQuality, KindToken)
	registerEnum(DomainLiveViewImageQuality, "Fine", 1)
	registerEnum(DomainLiveViewImageQuality, "Normal", 2)
	registerEnum(DomainLiveViewImageQuality, "Basic", 3)

	// The stream sizes were once published as L/M/S; the pixel-width names
	// are canonical now and the letters stay as aliases.
	registerDomain(DomainLiveViewImageSize, KindToken)
	registerEnum(DomainLiveViewImageSize, "SIZE_1024", 1)
	registerEnum(DomainLiveViewImageSize, "SIZE_640", 2)
	registerEnum(DomainLiveViewImageSize, "SIZE_320", 3)
	registerEnumAlias(DomainLiveViewImageSize, "SIZE_L", 1)
	registerEnumAlias(DomainLiveViewImageSize, "SIZE_M", 2)
	registerEnumAlias(DomainLiveViewImageSize, "SIZE_S", 3)

	// Magnification in tenths.
	registerDomain(DomainLiveViewZoom, KindPhysical)
	registerEnum(DomainLiveViewZoom, "1.0x", 10)
	registerEnum(DomainLiveViewZoom, "2.0x", 20)
	registerEnum(DomainLiveViewZoom, "4.0x", 40)
	registerEnum(DomainLiveViewZoom, "8.0x", 80)
	registerEnum(DomainLiveViewZoom, "16.0x", 160)

	registerDomain(DomainExposurePreview, KindToken)
	registerEnum(DomainExposurePreview, "ME_MWB", 1)
	registerEnum(DomainExposurePreview, "AE_MWB", 2)
	registerEnum(DomainExposurePreview, "AE_AWB", 3)
	registerEnumAlias(DomainExposurePreview, "ManualExposureManualWB", 1)
	registerEnumAlias(DomainExposurePreview, "AutoExposureManualWB", 2)
	registerEnumAlias(DomainExposurePreview, "AutoExposureAutoWB", 3)

	registerDomain(DomainDepthPreview, KindToken)
	registerEnum(DomainDepthPreview, "Off", 0)
	registerEnum(DomainDepthPreview, "On", 1)
}
