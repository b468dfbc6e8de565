package catalog

// Shooting condition family, 0x21xx.
const (
	OpSetImageSize           Code = 0x2101
	OpGetImageSize           Code = 0x2102
	OpCapImageSize           Code = 0x2103
	OpSetImageQuality        Code = 0x2104
	OpGetImageQuality        Code = 0x2105
	OpCapImageQuality        Code = 0x2106
	OpSetFilmSimulation      Code = 0x2107
	OpGetFilmSimulation      Code = 0x2108
	OpCapFilmSimulation      Code = 0x2109
	OpSetGrainEffect         Code = 0x210A
	OpGetGrainEffect         Code = 0x210B
	OpCapGrainEffect         Code = 0x210C
	OpSetDynamicRange        Code = 0x210D
	OpGetDynamicRange        Code = 0x210E
	OpCapDynamicRange        Code = 0x210F
	OpSetDRangePriority      Code = 0x2110
	OpGetDRangePriority      Code = 0x2111
	OpCapDRangePriority      Code = 0x2112
	OpSetColor               Code = 0x2113
	OpGetColor               Code = 0x2114
	OpCapColor               Code = 0x2115
	OpSetSharpness           Code = 0x2116
	OpGetSharpness           Code = 0x2117
	OpCapSharpness           Code = 0x2118
	OpSetHighlightTone       Code = 0x2119
	OpGetHighlightTone       Code = 0x211A
	OpCapHighlightTone       Code = 0x211B
	OpSetShadowTone          Code = 0x211C
	OpGetShadowTone          Code = 0x211D
	OpCapShadowTone          Code = 0x211E
	OpSetNoiseReduction      Code = 0x211F
	OpGetNoiseReduction      Code = 0x2120
	OpCapNoiseReduction      Code = 0x2121
	OpSetClarity             Code = 0x2122
	OpGetClarity             Code = 0x2123
	OpCapClarity             Code = 0x2124
	OpSetColorChromeEffect   Code = 0x2125
	OpGetColorChromeEffect   Code = 0x2126
	OpCapColorChromeEffect   Code = 0x2127
	OpSetColorChromeBlue     Code = 0x2128
	OpGetColorChromeBlue     Code = 0x2129
	OpCapColorChromeBlue     Code = 0x212A
	OpSetSmoothSkinEffect    Code = 0x212B
	OpGetSmoothSkinEffect    Code = 0x212C
	OpCapSmoothSkinEffect    Code = 0x212D
	OpSetMonochromaticColor  Code = 0x212E
	OpGetMonochromaticColor  Code = 0x212F
	OpCapMonochromaticColor  Code = 0x2130
	OpSetColorSpace          Code = 0x2131
	OpGetColorSpace          Code = 0x2132
	OpCapColorSpace          Code = 0x2133
	OpSetRAWCompression      Code = 0x2134
	OpGetRAWCompression      Code = 0x2135
	OpCapRAWCompression      Code = 0x2136
	OpSetRAWOutputDepth      Code = 0x2137
	OpGetRAWOutputDepth      Code = 0x2138
	OpCapRAWOutputDepth      Code = 0x2139
	OpSetDriveMode           Code = 0x213A
	OpGetDriveMode           Code = 0x213B
	OpCapDriveMode           Code = 0x213C
)

var shootingConditionOps = []opdef{
	{"SetImageSize", OpSetImageSize},
	{"GetImageSize", OpGetImageSize},
	{"CapImageSize", OpCapImageSize},
	{"SetImageQuality", OpSetImageQuality},
	{"GetImageQuality", OpGetImageQuality},
	{"CapImageQuality", OpCapImageQuality},
	{"SetFilmSimulation", OpSetFilmSimulation},
	{"GetFilmSimulation", OpGetFilmSimulation},
	{"CapFilmSimulation", OpCapFilmSimulation},
	{"SetGrainEffect", OpSetGrainEffect},
	{"GetGrainEffect", OpGetGrainEffect},
	{"CapGrainEffect", OpCapGrainEffect},
	{"SetDynamicRange", OpSetDynamicRange},
	{"GetDynamicRange", OpGetDynamicRange},
	{"CapDynamicRange", OpCapDynamicRange},
	{"SetDRangePriority", OpSetDRangePriority},
	{"GetDRangePriority", OpGetDRangePriority},
	{"CapDRangePriority", OpCapDRangePriority},
	{"SetColor", OpSetColor},
	{"GetColor", OpGetColor},
	{"CapColor", OpCapColor},
	{"SetSharpness", OpSetSharpness},
	{"GetSharpness", OpGetSharpness},
	{"CapSharpness", OpCapSharpness},
	{"SetHighlightTone", OpSetHighlightTone},
	{"GetHighlightTone", OpGetHighlightTone},
	{"CapHighlightTone", OpCapHighlightTone},
	{"SetShadowTone", OpSetShadowTone},
	{"GetShadowTone", OpGetShadowTone},
	{"CapShadowTone", OpCapShadowTone},
	{"SetNoiseReduction", OpSetNoiseReduction},
	{"GetNoiseReduction", OpGetNoiseReduction},
	{"CapNoiseReduction", OpCapNoiseReduction},
	{"SetClarity", OpSetClarity},
	{"GetClarity", OpGetClarity},
	{"CapClarity", OpCapClarity},
	{"SetColorChromeEffect", OpSetColorChromeEffect},
	{"GetColorChromeEffect", OpGetColorChromeEffect},
	{"CapColorChromeEffect", OpCapColorChromeEffect},
	{"SetColorChromeBlue", OpSetColorChromeBlue},
	{"GetColorChromeBlue", OpGetColorChromeBlue},
	{"CapColorChromeBlue", OpCapColorChromeBlue},
	{"SetSmoothSkinEffect", OpSetSmoothSkinEffect},
	{"GetSmoothSkinEffect", OpGetSmoothSkinEffect},
	{"CapSmoothSkinEffect", OpCapSmoothSkinEffect},
	{"SetMonochromaticColor", OpSetMonochromaticColor},
	{"GetMonochromaticColor", OpGetMonochromaticColor},
	{"CapMonochromaticColor", OpCapMonochromaticColor},
	{"SetColorSpace", OpSetColorSpace},
	{"GetColorSpace", OpGetColorSpace},
	{"CapColorSpace", OpCapColorSpace},
	{"SetRAWCompression", OpSetRAWCompression},
	{"GetRAWCompression", OpGetRAWCompression},
	{"CapRAWCompression", OpCapRAWCompression},
	{"SetRAWOutputDepth", OpSetRAWOutputDepth},
	{"GetRAWOutputDepth", OpGetRAWOutputDepth},
	{"CapRAWOutputDepth", OpCapRAWOutputDepth},
	{"SetDriveMode", OpSetDriveMode},
	{"GetDriveMode", OpGetDriveMode},
	{"CapDriveMode", OpCapDriveMode},
}
