package catalog

import "fmt"

// White-balance domains.
const (
	DomainWhiteBalance Domain = "WhiteBalance"
	DomainColorTemp    Domain = "ColorTemp"
	DomainWBRShift     Domain = "WBRShift"
	DomainWBBShift     Domain = "WBBShift"
)

// colorTemps is the published Kelvin ladder. 0 is reserved for "Current",
// meaning "whatever the body measured last".
var colorTemps = []int64{
	2500, 2550, 2650, 2700, 2800, 2850, 2950,
	3000, 3100, 3200, 3300, 3400, 3600, 3700, 3800,
	4000, 4200, 4300, 4500, 4800,
	5000, 5300, 5600, 5900,
	6300, 6500, 7100, 7700, 8300, 9100, 10000,
}

func registerWhiteBalanceEnums() {
	registerDomain(DomainWhiteBalance, KindToken)
	registerEnum(DomainWhiteBalance, "Auto", 1)
	registerEnum(DomainWhiteBalance, "AutoWhitePriority", 2)
	registerEnum(DomainWhiteBalance, "AutoAmbiencePriority", 3)
	registerEnum(DomainWhiteBalance, "Daylight", 4)
	registerEnum(DomainWhiteBalance, "Shade", 5)
	registerEnum(DomainWhiteBalance, "FluorescentDaylight", 6)
	registerEnum(DomainWhiteBalance, "FluorescentWarmWhite", 7)
	registerEnum(DomainWhiteBalance, "FluorescentCoolWhite", 8)
	registerEnum(DomainWhiteBalance, "Incandescent", 9)
	registerEnum(DomainWhiteBalance, "Underwater", 10)
	registerEnum(DomainWhiteBalance, "ColorTemp", 11)
	registerEnum(DomainWhiteBalance, "Custom1", 12)
	registerEnum(DomainWhiteBalance, "Custom2", 13)
	registerEnum(DomainWhiteBalance, "Custom3", 14)

	registerDomain(DomainColorTemp, KindPhysical)
	registerEnum(DomainColorTemp, "Current", 0)
	for _, k := range colorTemps {
		registerEnum(DomainColorTemp, fmt.Sprintf("%d", k), k)
	}

	registerSignedRange(DomainWBRShift, -9, 9)
	registerSignedRange(DomainWBBShift, -9, 9)
}
