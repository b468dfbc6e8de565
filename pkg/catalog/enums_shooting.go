package catalog

// Shooting-condition domains.
const (
	DomainImageSize          Domain = "ImageSize"
	DomainImageQuality       Domain = "ImageQuality"
	DomainFilmSim            Domain = "FilmSim"
	DomainGrainEffect        Domain = "GrainEffect"
	DomainDynamicRange       Domain = "DynamicRange"
	DomainDRangePriority     Domain = "DRangePriority"
	DomainColor              Domain = "Color"
	DomainSharpness          Domain = "Sharpness"
	DomainHighlightTone      Domain = "HighlightTone"
	DomainShadowTone         Domain = "ShadowTone"
	DomainNoiseReduction     Domain = "NoiseReduction"
	DomainClarity            Domain = "Clarity"
	DomainColorChromeEffect  Domain = "ColorChromeEffect"
	DomainColorChromeBlue    Domain = "ColorChromeBlue"
	DomainSmoothSkinEffect   Domain = "SmoothSkinEffect"
	DomainMonochromaticColor Domain = "MonochromaticColor"
	DomainColorSpace         Domain = "ColorSpace"
	DomainRAWCompression     Domain = "RAWCompression"
	DomainRAWOutputDepth     Domain = "RAWOutputDepth"
	DomainDriveMode          Domain = "DriveMode"
)

// imageSizes covers the three pixel counts across the seven sensor crops.
var imageSizes = []string{
	"L_4:3", "L_3:2", "L_16:9", "L_1:1", "L_65:24", "L_5:4", "L_7:6",
	"M_4:3", "M_3:2", "M_16:9", "M_1:1", "M_65:24", "M_5:4", "M_7:6",
	"S_4:3", "S_3:2", "S_16:9", "S_1:1", "S_65:24", "S_5:4", "S_7:6",
}

// filmSims is the published simulation set in encoding order. The three
// oldest entries keep their legacy short names as aliases.
var filmSims = []string{
	"ProVia", "Velvia", "Astia", "ClassicChrome",
	"ProNegHi", "ProNegStd",
	"Monochrome", "MonochromeYe", "MonochromeR", "MonochromeG",
	"Sepia",
	"Acros", "AcrosYe", "AcrosR", "AcrosG",
	"Eterna", "ClassicNeg", "EternaBleachBypass",
	"NostalgicNeg", "RealaAce",
}

func registerShootingEnums() {
	registerDomain(DomainImageSize, KindToken)
	for i, name := range imageSizes {
		registerEnum(DomainImageSize, name, int64(i)+1)
	}

	registerDomain(DomainImageQuality, KindToken)
	registerEnum(DomainImageQuality, "RAW", 1)
	registerEnum(DomainImageQuality, "SuperFine", 2)
	registerEnum(DomainImageQuality, "Fine", 3)
	registerEnum(DomainImageQuality, "Normal", 4)
	registerEnum(DomainImageQuality, "RAW+SuperFine", 5)
	registerEnum(DomainImageQuality, "RAW+Fine", 6)
	registerEnum(DomainImageQuality, "RAW+Normal", 7)

	registerDomain(DomainFilmSim, KindToken)
	for i, name := range filmSims {
		registerEnum(DomainFilmSim, name, int64(i)+1)
	}
	registerEnumAlias(DomainFilmSim, "Std", 1)
	registerEnumAlias(DomainFilmSim, "Vivid", 2)
	registerEnumAlias(DomainFilmSim, "Soft", 3)

	registerDomain(DomainGrainEffect, KindToken)
	registerEnum(DomainGrainEffect, "Off", 0)
	registerEnum(DomainGrainEffect, "WeakSmall", 1)
	registerEnum(DomainGrainEffect, "WeakLarge", 2)
	registerEnum(DomainGrainEffect, "StrongSmall", 3)
	registerEnum(DomainGrainEffect, "StrongLarge", 4)

	// Dynamic range encodes the expansion percentage directly; auto is a
	// reserved token outside the physical range.
	registerDomain(DomainDynamicRange, KindPhysical)
	registerEnum(DomainDynamicRange, "Auto", 0xFFFF)
	registerEnum(DomainDynamicRange, "100", 100)
	registerEnum(DomainDynamicRange, "200", 200)
	registerEnum(DomainDynamicRange, "400", 400)

	registerDomain(DomainDRangePriority, KindToken)
	registerEnum(DomainDRangePriority, "Off", 0)
	registerEnum(DomainDRangePriority, "Weak", 1)
	registerEnum(DomainDRangePriority, "Strong", 2)
	registerEnum(DomainDRangePriority, "Auto", 0xFFFF)

	registerToneRange(DomainColor, -40, 40, 10)
	registerToneRange(DomainSharpness, -40, 40, 10)
	registerToneRange(DomainHighlightTone, -20, 40, 5)
	registerToneRange(DomainShadowTone, -20, 40, 5)
	registerToneRange(DomainNoiseReduction, -40, 40, 10)
	registerToneRange(DomainClarity, -50, 50, 10)

	registerDomain(DomainColorChromeEffect, KindToken)
	registerEnum(DomainColorChromeEffect, "Off", 0)
	registerEnum(DomainColorChromeEffect, "Weak", 1)
	registerEnum(DomainColorChromeEffect, "Strong", 2)

	registerDomain(DomainColorChromeBlue, KindToken)
	registerEnum(DomainColorChromeBlue, "Off", 0)
	registerEnum(DomainColorChromeBlue, "Weak", 1)
	registerEnum(DomainColorChromeBlue, "Strong", 2)

	registerDomain(DomainSmoothSkinEffect, KindToken)
	registerEnum(DomainSmoothSkinEffect, "Off", 0)
	registerEnum(DomainSmoothSkinEffect, "Weak", 1)
	registerEnum(DomainSmoothSkinEffect, "Strong", 2)

	// Warm/cool tint of the monochrome simulations.
	registerToneRange(DomainMonochromaticColor, -90, 90, 10)

	registerDomain(DomainColorSpace, KindToken)
	registerEnum(DomainColorSpace, "sRGB", 1)
	registerEnum(DomainColorSpace, "AdobeRGB", 2)

	registerDomain(DomainRAWCompression, KindToken)
	registerEnum(DomainRAWCompression, "Uncompressed", 1)
	registerEnum(DomainRAWCompression, "Lossless", 2)
	registerEnum(DomainRAWCompression, "Compressed", 3)

	registerDomain(DomainRAWOutputDepth, KindPhysical)
	registerEnum(DomainRAWOutputDepth, "14bit", 14)
	registerEnum(DomainRAWOutputDepth, "16bit", 16)

	// The dial positions carry the historical encodings the bodies report;
	// they predate the small-token convention and are published as-is.
	registerDomain(DomainDriveMode, KindToken)
	registerEnum(DomainDriveMode, "Single", 1)
	registerEnum(DomainDriveMode, "ContinuousLow", 2)
	registerEnum(DomainDriveMode, "ContinuousHigh", 3)
	registerEnum(DomainDriveMode, "AEBracket", 4)
	registerEnum(DomainDriveMode, "ISOBracket", 5)
	registerEnum(DomainDriveMode, "FilmSimBracket", 6)
	registerEnum(DomainDriveMode, "WBBracket", 7)
	registerEnum(DomainDriveMode, "DRangeBracket", 8)
	registerEnum(DomainDriveMode, "FocusBracket", 9)
	registerEnum(DomainDriveMode, "MultipleExposure", 10)
	registerEnum(DomainDriveMode, "DialStill", 0x1000)
	registerEnum(DomainDriveMode, "DialStillMovie", 0x10F0)
	registerEnum(DomainDriveMode, "DialMovie", 0x4000)
}
