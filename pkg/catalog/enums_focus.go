package catalog

// Lens and focus domains.
const (
	DomainFocusMode         Domain = "FocusMode"
	DomainAFMode            Domain = "AFMode"
	DomainMacroMode         Domain = "MacroMode"
	DomainAFPriority        Domain = "AFPriority"
	DomainMFAssist          Domain = "MFAssist"
	DomainFocusCheck        Domain = "FocusCheck"
	DomainInterlockAEAFArea Domain = "InterlockAEAFArea"
	DomainAFIlluminator     Domain = "AFIlluminator"
	DomainFaceDetectionMode Domain = "FaceDetectionMode"
	DomainEyeAFMode         Domain = "EyeAFMode"
	DomainFaceFrameType     Domain = "FaceFrameType"
	DomainAperture          Domain = "Aperture"
)

// apertures is the published third-stop f-number ladder. The encoding is
// the f-number in hundredths.
var apertures = []struct {
	name string
	f100 int64
}{
	{"f/1.0", 100},
	{"f/1.1", 110},
	{"f/1.2", 120},
	{"f/1.4", 140},
	{"f/1.6", 160},
	{"f/1.8", 180},
	{"f/2.0", 200},
	{"f/2.2", 220},
	{"f/2.5", 250},
	{"f/2.8", 280},
	{"f/3.2", 320},
	{"f/3.6", 360},
	{"f/4.0", 400},
	{"f/4.5", 450},
	{"f/5.0", 500},
	{"f/5.6", 560},
	{"f/6.4", 640},
	{"f/7.1", 710},
	{"f/8.0", 800},
	{"f/9.0", 900},
	{"f/10", 1000},
	{"f/11", 1100},
	{"f/13", 1300},
	{"f/14", 1400},
	{"f/16", 1600},
	{"f/18", 1800},
	{"f/20", 2000},
	{"f/22", 2200},
	{"f/25", 2500},
	{"f/29", 2900},
	{"f/32", 3200},
	{"f/36", 3600},
	{"f/40", 4000},
	{"f/45", 4500},
	{"f/51", 5100},
	{"f/57", 5700},
	{"f/64", 6400},
}

func registerFocusEnums() {
	registerDomain(DomainFocusMode, KindToken)
	registerEnum(DomainFocusMode, "Manual", 1)
	registerEnum(DomainFocusMode, "SingleAF", 2)
	registerEnum(DomainFocusMode, "ContinuousAF", 3)

	registerDomain(DomainAFMode, KindToken)
	registerEnum(DomainAFMode, "SinglePoint", 1)
	registerEnum(DomainAFMode, "Zone", 2)
	registerEnum(DomainAFMode, "WideTracking", 3)
	registerEnum(DomainAFMode, "All", 4)

	registerDomain(DomainMacroMode, KindToken)
	registerEnum(DomainMacroMode, "Off", 0)
	registerEnum(DomainMacroMode, "On", 1)

	registerDomain(DomainAFPriority, KindToken)
	registerEnum(DomainAFPriority, "Release", 1)
	registerEnum(DomainAFPriority, "Focus", 2)

	// Standard keeps its historical zero encoding; the bare digit is the
	// name older host software sent and stays as an alias.
	registerDomain(DomainMFAssist, KindToken)
	registerEnum(DomainMFAssist, "Standard", 0)
	registerEnum(DomainMFAssist, "DigitalSplitBW", 1)
	registerEnum(DomainMFAssist, "DigitalSplitColor", 2)
	registerEnum(DomainMFAssist, "DigitalMicroprism", 3)
	registerEnum(DomainMFAssist, "PeakWhiteLow", 4)
	registerEnum(DomainMFAssist, "PeakWhiteHigh", 5)
	registerEnum(DomainMFAssist, "PeakRedLow", 6)
	registerEnum(DomainMFAssist, "PeakRedHigh", 7)
	registerEnum(DomainMFAssist, "PeakYellowLow", 8)
	registerEnum(DomainMFAssist, "PeakYellowHigh", 9)
	registerEnum(DomainMFAssist, "PeakBlueLow", 10)
	registerEnum(DomainMFAssist, "PeakBlueHigh", 11)
	registerEnumAlias(DomainMFAssist, "0", 0)

	registerDomain(DomainFocusCheck, KindToken)
	registerEnum(DomainFocusCheck, "Off", 0)
	registerEnum(DomainFocusCheck, "On", 1)

	registerDomain(DomainInterlockAEAFArea, KindToken)
	registerEnum(DomainInterlockAEAFArea, "Off", 0)
	registerEnum(DomainInterlockAEAFArea, "On", 1)

	registerDomain(DomainAFIlluminator, KindToken)
	registerEnum(DomainAFIlluminator, "Off", 0)
	registerEnum(DomainAFIlluminator, "On", 1)

	registerDomain(DomainFaceDetectionMode, KindToken)
	registerEnum(DomainFaceDetectionMode, "Off", 0)
	registerEnum(DomainFaceDetectionMode, "On", 1)

	registerDomain(DomainEyeAFMode, KindToken)
	registerEnum(DomainEyeAFMode, "Off", 0)
	registerEnum(DomainEyeAFMode, "Auto", 1)
	registerEnum(DomainEyeAFMode, "RightPriority", 2)
	registerEnum(DomainEyeAFMode, "LeftPriority", 3)

	registerDomain(DomainFaceFrameType, KindToken)
	registerEnum(DomainFaceFrameType, "Face", 1)
	registerEnum(DomainFaceFrameType, "RightEye", 2)
	registerEnum(DomainFaceFrameType, "LeftEye", 3)

	registerDomain(DomainAperture, KindPhysical)
	for _, a := range apertures {
		registerEnum(DomainAperture, a.name, a.f100)
	}
}
