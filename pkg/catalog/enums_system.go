package catalog

// Display, preview and maintenance domains.
const (
	DomainViewMode               Domain = "ViewMode"
	DomainPerformanceMode        Domain = "PerformanceMode"
	DomainCropMode               Domain = "CropMode"
	DomainFrameGuideMode         Domain = "FrameGuideMode"
	DomainBeepVolume             Domain = "BeepVolume"
	DomainPreviewTime            Domain = "PreviewTime"
	DomainEVFBrightness          Domain = "EVFBrightness"
	DomainLCDBrightness          Domain = "LCDBrightness"
	DomainSensorCleaningSchedule Domain = "SensorCleaningSchedule"
	DomainResetScope             Domain = "ResetScope"
)

func registerSystemEnums() {
	registerDomain(DomainViewMode, KindToken)
	registerEnum(DomainViewMode, "EyeSensor", 1)
	registerEnum(DomainViewMode, "EVFOnly", 2)
	registerEnum(DomainViewMode, "LCDOnly", 3)
	registerEnum(DomainViewMode, "EVFOnlyEyeSensor", 4)
	registerEnum(DomainViewMode, "EyeSensorLCDImage", 5)

	registerDomain(DomainPerformanceMode, KindToken)
	registerEnum(DomainPerformanceMode, "Normal", 1)
	registerEnum(DomainPerformanceMode, "Boost", 2)
	registerEnum(DomainPerformanceMode, "Economy", 3)

	registerDomain(DomainCropMode, KindToken)
	registerEnum(DomainCropMode, "Off", 0)
	registerEnum(DomainCropMode, "35mm", 1)

	registerDomain(DomainFrameGuideMode, KindToken)
	registerEnum(DomainFrameGuideMode, "Off", 0)
	registerEnum(DomainFrameGuideMode, "Grid9", 1)
	registerEnum(DomainFrameGuideMode, "Grid24", 2)
	registerEnum(DomainFrameGuideMode, "HDFraming", 3)
	registerEnum(DomainFrameGuideMode, "Custom", 4)

	registerDomain(DomainBeepVolume, KindToken)
	registerEnum(DomainBeepVolume, "Off", 0)
	registerEnum(DomainBeepVolume, "Low", 1)
	registerEnum(DomainBeepVolume, "Mid", 2)
	registerEnum(DomainBeepVolume, "High", 3)

	// Post-shot review time in tenths of a second; 0xFFFF holds the image
	// until the next half-press.
	registerDomain(DomainPreviewTime, KindPhysical)
	registerEnum(DomainPreviewTime, "Off", 0)
	registerEnum(DomainPreviewTime, "0.5s", 5)
	registerEnum(DomainPreviewTime, "1.5s", 15)
	registerEnum(DomainPreviewTime, "Continuous", 0xFFFF)

	registerSignedRange(DomainEVFBrightness, -5, 5)
	registerSignedRange(DomainLCDBrightness, -5, 5)

	registerDomain(DomainSensorCleaningSchedule, KindToken)
	registerEnum(DomainSensorCleaningSchedule, "Off", 0)
	registerEnum(DomainSensorCleaningSchedule, "OnStartup", 1)
	registerEnum(DomainSensorCleaningSchedule, "OnShutdown", 2)
	registerEnum(DomainSensorCleaningSchedule, "StartupAndShutdown", 3)

	registerDomain(DomainResetScope, KindToken)
	registerEnum(DomainResetScope, "ShootingMenu", 1)
	registerEnum(DomainResetScope, "SetupMenu", 2)
	registerEnum(DomainResetScope, "All", 3)
}
