package views

// Reference publishes every operation of the base catalogue at its full
// arity. Model views derive from this table; the checker diffs them
// against it.
var Reference = newView("Reference", referenceArities, nil, nil)

// referenceArities declares one arity per base-catalogue operation.
// Scalar setters and getters take one slot. Capability queries report
// two slots for enumerated domains (count, domain tag) and three for
// stepped ranges (min, max, step). Record operations count the record as
// one slot. Pure commands take none.
var referenceArities = map[string]Arity{
	// Exposure.
	"SetAEMode":         Params(1),
	"GetAEMode":         Params(1),
	"CapAEMode":         Params(2),
	"SetShutterSpeed":   Params(1),
	"GetShutterSpeed":   Params(1),
	"CapShutterSpeed":   Params(2),
	"SetExposureBias":   Params(1),
	"GetExposureBias":   Params(1),
	"CapExposureBias":   Params(2),
	"SetMeteringMode":   Params(1),
	"GetMeteringMode":   Params(1),
	"CapMeteringMode":   Params(2),
	"SetShutterType":    Params(1),
	"GetShutterType":    Params(1),
	"CapShutterType":    Params(2),
	"SetSensitivity":    Params(1),
	"GetSensitivity":    Params(1),
	"CapSensitivity":    Params(2),
	"SetISOAutoSetting": Params(2),
	"GetISOAutoSetting": Params(2),
	"CapISOAutoSetting": Params(1),
	"SetAELock":         Params(1),
	"GetAELock":         Params(1),

	// Shooting condition.
	"SetImageSize":          Params(1),
	"GetImageSize":          Params(1),
	"CapImageSize":          Params(2),
	"SetImageQuality":       Params(1),
	"GetImageQuality":       Params(1),
	"CapImageQuality":       Params(2),
	"SetFilmSimulation":     Params(1),
	"GetFilmSimulation":     Params(1),
	"CapFilmSimulation":     Params(2),
	"SetGrainEffect":        Params(1),
	"GetGrainEffect":        Params(1),
	"CapGrainEffect":        Params(2),
	"SetDynamicRange":       Params(1),
	"GetDynamicRange":       Params(1),
	"CapDynamicRange":       Params(2),
	"SetDRangePriority":     Params(1),
	"GetDRangePriority":     Params(1),
	"CapDRangePriority":     Params(2),
	"SetColor":              Params(1),
	"GetColor":              Params(1),
	"CapColor":              Params(3),
	"SetSharpness":          Params(1),
	"GetSharpness":          Params(1),
	"CapSharpness":          Params(3),
	"SetHighlightTone":      Params(1),
	"GetHighlightTone":      Params(1),
	"CapHighlightTone":      Params(3),
	"SetShadowTone":         Params(1),
	"GetShadowTone":         Params(1),
	"CapShadowTone":         Params(3),
	"SetNoiseReduction":     Params(1),
	"GetNoiseReduction":     Params(1),
	"CapNoiseReduction":     Params(3),
	"SetClarity":            Params(1),
	"GetClarity":            Params(1),
	"CapClarity":            Params(3),
	"SetColorChromeEffect":  Params(1),
	"GetColorChromeEffect":  Params(1),
	"CapColorChromeEffect":  Params(2),
	"SetColorChromeBlue":    Params(1),
	"GetColorChromeBlue":    Params(1),
	"CapColorChromeBlue":    Params(2),
	"SetSmoothSkinEffect":   Params(1),
	"GetSmoothSkinEffect":   Params(1),
	"CapSmoothSkinEffect":   Params(2),
	"SetMonochromaticColor": Params(1),
	"GetMonochromaticColor": Params(1),
	"CapMonochromaticColor": Params(3),
	"SetColorSpace":         Params(1),
	"GetColorSpace":         Params(1),
	"CapColorSpace":         Params(2),
	"SetRAWCompression":     Params(1),
	"GetRAWCompression":     Params(1),
	"CapRAWCompression":     Params(2),
	"SetRAWOutputDepth":     Params(1),
	"GetRAWOutputDepth":     Params(1),
	"CapRAWOutputDepth":     Params(2),
	"SetDriveMode":          Params(1),
	"GetDriveMode":          Params(1),
	"CapDriveMode":          Params(2),

	// Lens and focus.
	"SetFocusMode":              Params(1),
	"GetFocusMode":              Params(1),
	"CapFocusMode":              Params(2),
	"SetAFMode":                 Params(1),
	"GetAFMode":                 Params(1),
	"CapAFMode":                 Params(2),
	"SetFocusArea":              Params(1),
	"GetFocusArea":              Params(1),
	"CapFocusArea":              Params(6),
	"SetFocusPos":               Params(1),
	"GetFocusPos":               Params(1),
	"CapFocusPos":               Params(1),
	"SetMacroMode":              Params(1),
	"GetMacroMode":              Params(1),
	"CapMacroMode":              Params(2),
	"SetAFPriority":             Params(1),
	"GetAFPriority":             Params(1),
	"CapAFPriority":             Params(2),
	"SetMFAssist":               Params(1),
	"GetMFAssist":               Params(1),
	"CapMFAssist":               Params(2),
	"SetFocusCheck":             Params(1),
	"GetFocusCheck":             Params(1),
	"CapFocusCheck":             Params(2),
	"SetInterlockAEAFArea":      Params(1),
	"GetInterlockAEAFArea":      Params(1),
	"CapInterlockAEAFArea":      Params(2),
	"SetAFIlluminator":          Params(1),
	"GetAFIlluminator":          Params(1),
	"CapAFIlluminator":          Params(2),
	"SetFaceDetectionMode":      Params(1),
	"GetFaceDetectionMode":      Params(1),
	"CapFaceDetectionMode":      Params(2),
	"SetEyeAFMode":              Params(1),
	"GetEyeAFMode":              Params(1),
	"CapEyeAFMode":              Params(2),
	"SetAperture":               Params(1),
	"GetAperture":               Params(1),
	"CapAperture":               Params(2),
	"SetFocusLimiterPosA":       Params(0),
	"SetFocusLimiterPosB":       Params(0),
	"ClearFocusLimiter":         Params(0),
	"GetFocusLimiterRange":      Params(1),
	"GetFocusLimiterIndicator":  Params(1),
	"GetFaceFrameInfo":          Params(2),
	"GetLensName":               Params(1),
	"GetLensFocalLength":        Params(2),
	"SetAFZoneCustom":           Params(1),
	"GetAFZoneCustom":           Params(1),
	"CapAFZoneCustom":           Params(1),

	// White balance.
	"SetWhiteBalance": Params(1),
	"GetWhiteBalance": Params(1),
	"CapWhiteBalance": Params(2),
	"SetColorTemp":    Params(1),
	"GetColorTemp":    Params(1),
	"CapColorTemp":    Params(3),
	"SetWBShiftR":     Params(1),
	"GetWBShiftR":     Params(1),
	"CapWBShiftR":     Params(3),
	"SetWBShiftB":     Params(1),
	"GetWBShiftB":     Params(1),
	"CapWBShiftB":     Params(3),
	"SetCustomWBArea": Params(1),
	"GetCustomWBArea": Params(1),
	"CapCustomWBArea": Params(6),
	"CaptureCustomWB": Params(1),

	// Shoot.
	"PressShutter":        Params(1),
	"StartBulb":           Params(0),
	"StopBulb":            Params(0),
	"StartMovieRecording": Params(0),
	"StopMovieRecording":  Params(0),
	"SetCaptureDelay":     Params(1),
	"GetCaptureDelay":     Params(1),
	"CapCaptureDelay":     Params(2),

	// Live view.
	"StartLiveView":           Params(0),
	"StopLiveView":            Params(0),
	"SetLiveViewImageQuality": Params(1),
	"GetLiveViewImageQuality": Params(1),
	"CapLiveViewImageQuality": Params(2),
	"SetLiveViewImageSize":    Params(1),
	"GetLiveViewImageSize":    Params(1),
	"CapLiveViewImageSize":    Params(2),
	"SetLiveViewZoom":         Params(1),
	"GetLiveViewZoom":         Params(1),
	"CapLiveViewZoom":         Params(3),
	"SetExposurePreview":      Params(1),
	"GetExposurePreview":      Params(1),
	"CapExposurePreview":      Params(2),
	"SetDepthPreview":         Params(1),
	"GetDepthPreview":         Params(1),

	// Utility.
	"SetDateTime":        Params(6),
	"GetDateTime":        Params(6),
	"SetArtist":          Params(1),
	"GetArtist":          Params(1),
	"SetCopyright":       Params(1),
	"GetCopyright":       Params(1),
	"SetDeviceName":      Params(1),
	"GetDeviceName":      Params(1),
	"GetFirmwareVersion": Params(1),
	"GetModelName":       Params(1),
	"GetBodySerial":      Params(1),
	"SetBeepVolume":      Params(1),
	"GetBeepVolume":      Params(1),
	"CapBeepVolume":      Params(2),
	"GetBatteryLevel":    Params(1),
	"GetBatteryInfo":     Params(2),
	"GetMediaStatus":     Params(2),
	"GetMediaCapacity":   Params(2),
	"GetFolderInfo":      Params(1),
	"SetFolderNumber":    Params(1),
	"GetShotsRemaining":  Params(1),

	// Maintenance.
	"GetShutterCount":           Params(1),
	"ExecuteSensorCleaning":     Params(0),
	"SetSensorCleaningSchedule": Params(1),
	"GetSensorCleaningSchedule": Params(1),
	"CapSensorCleaningSchedule": Params(2),
	"FormatMedia":               Params(1),
	"ResetSettings":             Params(1),
	"ExecutePixelMapping":       Params(0),
	"GetInternalTemperature":    Params(1),

	// Display.
	"SetViewMode":           Params(1),
	"GetViewMode":           Params(1),
	"CapViewMode":           Params(2),
	"SetEVFBrightness":      Params(1),
	"GetEVFBrightness":      Params(1),
	"CapEVFBrightness":      Params(3),
	"SetLCDBrightness":      Params(1),
	"GetLCDBrightness":      Params(1),
	"CapLCDBrightness":      Params(3),
	"SetPerformanceMode":    Params(1),
	"GetPerformanceMode":    Params(1),
	"CapPerformanceMode":    Params(2),
	"SetCropMode":           Params(1),
	"GetCropMode":           Params(1),
	"CapCropMode":           Params(2),
	"GetCropAreaFrame":      Params(1),
	"SetPreviewTime":        Params(1),
	"GetPreviewTime":        Params(1),
	"CapPreviewTime":        Params(2),
	"SetFrameGuideMode":     Params(1),
	"GetFrameGuideMode":     Params(1),
	"CapFrameGuideMode":     Params(2),
	"SetFrameGuideGridInfo": Params(1),
	"GetFrameGuideGridInfo": Params(1),
	"SetCustomDispInfo":     Params(2),
	"GetCustomDispInfo":     Params(2),
	"CapCustomDispInfo":     Params(2),
	"SetFuncLock":           Params(2),
	"GetFuncLock":           Params(2),
	"CapFuncLock":           Params(2),
	"SetFunctionButton":     Params(2),
	"GetFunctionButton":     Params(2),
	"CapFunctionButton":     Params(2),
}
