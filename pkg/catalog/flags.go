package catalog

// Bit-mask domains. Each value is a single bit inside a 32-bit category
// word; domains may span several words. The published encoding packs the
// word index into the bits above the mask so one int64 round-trips both.
const (
	DomainFuncLock       Domain = "FuncLock"
	DomainCustomDispInfo Domain = "CustomDispInfo"
)

// FlagValue packs a category word index and a single-bit mask into one
// enum encoding.
func FlagValue(category int, mask uint32) int64 {
	return int64(category)<<32 | int64(mask)
}

// FlagCategory extracts the category word index from a bit-mask encoding.
func FlagCategory(v int64) int {
	return int(v >> 32)
}

// FlagMask extracts the 32-bit mask from a bit-mask encoding.
func FlagMask(v int64) uint32 {
	return uint32(v)
}

func registerFlagEnums() {
	// Word 0 locks shooting settings, word 1 locks body controls.
	registerDomain(DomainFuncLock, KindFlag)
	registerEnum(DomainFuncLock, "ShutterSpeed", FlagValue(0, 1<<0))
	registerEnum(DomainFuncLock, "Aperture", FlagValue(0, 1<<1))
	registerEnum(DomainFuncLock, "ExposureBias", FlagValue(0, 1<<2))
	registerEnum(DomainFuncLock, "Sensitivity", FlagValue(0, 1<<3))
	registerEnum(DomainFuncLock, "WhiteBalance", FlagValue(0, 1<<4))
	registerEnum(DomainFuncLock, "FilmSimulation", FlagValue(0, 1<<5))
	registerEnum(DomainFuncLock, "DriveMode", FlagValue(0, 1<<6))
	registerEnum(DomainFuncLock, "AFMode", FlagValue(0, 1<<7))
	registerEnum(DomainFuncLock, "MenuOK", FlagValue(1, 1<<0))
	registerEnum(DomainFuncLock, "Playback", FlagValue(1, 1<<1))
	registerEnum(DomainFuncLock, "Fn1", FlagValue(1, 1<<2))
	registerEnum(DomainFuncLock, "Fn2", FlagValue(1, 1<<3))
	registerEnum(DomainFuncLock, "Fn3", FlagValue(1, 1<<4))
	registerEnum(DomainFuncLock, "Fn4", FlagValue(1, 1<<5))
	registerEnum(DomainFuncLock, "Fn5", FlagValue(1, 1<<6))
	registerEnum(DomainFuncLock, "Fn6", FlagValue(1, 1<<7))

	// Word 0 selects framing aids, word 1 selects status readouts.
	registerDomain(DomainCustomDispInfo, KindFlag)
	registerEnum(DomainCustomDispInfo, "FramingGuideline", FlagValue(0, 1<<0))
	registerEnum(DomainCustomDispInfo, "ElectronicLevel", FlagValue(0, 1<<1))
	registerEnum(DomainCustomDispInfo, "FocusFrame", FlagValue(0, 1<<2))
	registerEnum(DomainCustomDispInfo, "AFDistanceIndicator", FlagValue(0, 1<<3))
	registerEnum(DomainCustomDispInfo, "MFDistanceIndicator", FlagValue(0, 1<<4))
	registerEnum(DomainCustomDispInfo, "Histogram", FlagValue(0, 1<<5))
	registerEnum(DomainCustomDispInfo, "ShootingMode", FlagValue(1, 1<<0))
	registerEnum(DomainCustomDispInfo, "ExposureInfo", FlagValue(1, 1<<1))
	registerEnum(DomainCustomDispInfo, "WhiteBalance", FlagValue(1, 1<<2))
	registerEnum(DomainCustomDispInfo, "FilmSimulation", FlagValue(1, 1<<3))
	registerEnum(DomainCustomDispInfo, "DynamicRange", FlagValue(1, 1<<4))
	registerEnum(DomainCustomDispInfo, "FramesRemaining", FlagValue(1, 1<<5))
	registerEnum(DomainCustomDispInfo, "ImageSizeQuality", FlagValue(1, 1<<6))
	registerEnum(DomainCustomDispInfo, "BatteryLevel", FlagValue(1, 1<<7))
}
