package catalog

import "fmt"

// Exposure domains.
const (
	DomainAEMode            Domain = "AEMode"
	DomainMeteringMode      Domain = "MeteringMode"
	DomainShutterType       Domain = "ShutterType"
	DomainShutterSpeed      Domain = "ShutterSpeed"
	DomainShutterSpeedFloor Domain = "ShutterSpeedFloor"
	DomainSensitivity       Domain = "Sensitivity"
	DomainExposureBias      Domain = "ExposureBias"
	DomainAELock            Domain = "AELock"
)

// shutterSpeeds is the published third-stop ladder. Encodings are the
// exposure time in microseconds, rounded to the nearest integer; 0 is
// reserved for bulb.
var shutterSpeeds = []struct {
	name string
	us   int64
}{
	{"1/8000", 125},
	{"1/6400", 156},
	{"1/5000", 200},
	{"1/4000", 250},
	{"1/3200", 313},
	{"1/2500", 400},
	{"1/2000", 500},
	{"1/1600", 625},
	{"1/1250", 800},
	{"1/1000", 1000},
	{"1/800", 1250},
	{"1/640", 1563},
	{"1/500", 2000},
	{"1/400", 2500},
	{"1/320", 3125},
	{"1/250", 4000},
	{"1/200", 5000},
	{"1/160", 6250},
	{"1/125", 8000},
	{"1/100", 10000},
	{"1/80", 12500},
	{"1/60", 16667},
	{"1/50", 20000},
	{"1/40", 25000},
	{"1/30", 33333},
	{"1/25", 40000},
	{"1/20", 50000},
	{"1/15", 66667},
	{"1/13", 76923},
	{"1/10", 100000},
	{"1/8", 125000},
	{"1/6", 166667},
	{"1/5", 200000},
	{"1/4", 250000},
	{"1/3", 333333},
	{"0.4s", 400000},
	{"0.5s", 500000},
	{"0.6s", 625000},
	{"0.8s", 769231},
	{"1s", 1000000},
	{"1.3s", 1300000},
	{"1.6s", 1600000},
	{"2s", 2000000},
	{"2.5s", 2500000},
	{"3.2s", 3200000},
	{"4s", 4000000},
	{"5s", 5000000},
	{"6.5s", 6500000},
	{"8s", 8000000},
	{"10s", 10000000},
	{"13s", 13000000},
	{"15s", 15000000},
	{"20s", 20000000},
	{"25s", 25000000},
	{"30s", 30000000},
	{"60s", 60000000},
}

// sensitivities is the published ISO ladder including the pulled and
// pushed extensions. The encoding is the ISO number itself.
var sensitivities = []int64{
	50,
	100, 125, 160, 200, 250, 320, 400, 500, 640, 800,
	1000, 1250, 1600, 2000, 2500, 3200, 4000, 5000, 6400, 8000,
	10000, 12800,
	25600, 51200, 102400,
}

// shutterFloors is the ISO-auto minimum shutter speed ladder in
// milliseconds, full stops from 1/500s down to 1s.
var shutterFloors = []struct {
	name string
	ms   int64
}{
	{"1/500", 2},
	{"1/250", 4},
	{"1/125", 8},
	{"1/60", 17},
	{"1/30", 33},
	{"1/15", 67},
	{"1/8", 125},
	{"1/4", 250},
	{"1/2", 500},
	{"1s", 1000},
}

func registerExposureEnums() {
	registerDomain(DomainAEMode, KindToken)
	registerEnum(DomainAEMode, "Manual", 1)
	registerEnum(DomainAEMode, "Program", 2)
	registerEnum(DomainAEMode, "AperturePriority", 3)
	registerEnum(DomainAEMode, "ShutterPriority", 4)

	registerDomain(DomainMeteringMode, KindToken)
	registerEnum(DomainMeteringMode, "Multi", 1)
	registerEnum(DomainMeteringMode, "Spot", 2)
	registerEnum(DomainMeteringMode, "Average", 3)
	registerEnum(DomainMeteringMode, "CenterWeighted", 4)

	registerDomain(DomainShutterType, KindToken)
	registerEnum(DomainShutterType, "Mechanical", 1)
	registerEnum(DomainShutterType, "Electronic", 2)
	registerEnum(DomainShutterType, "MechanicalElectronic", 3)

	registerDomain(DomainShutterSpeed, KindPhysical)
	registerEnum(DomainShutterSpeed, "Bulb", 0)
	for _, s := range shutterSpeeds {
		registerEnum(DomainShutterSpeed, s.name, s.us)
	}

	registerDomain(DomainShutterSpeedFloor, KindPhysical)
	registerEnum(DomainShutterSpeedFloor, "Auto", 0)
	for _, s := range shutterFloors {
		registerEnum(DomainShutterSpeedFloor, s.name, s.ms)
	}

	registerDomain(DomainSensitivity, KindPhysical)
	registerEnum(DomainSensitivity, "Auto", 0)
	for _, iso := range sensitivities {
		registerEnum(DomainSensitivity, fmt.Sprintf("%d", iso), iso)
	}

	// Exposure bias runs -5EV..+5EV in third stops, encoded in milli-EV
	// rounded to the nearest integer.
	registerDomain(DomainExposureBias, KindPhysical)
	for i := int64(-15); i <= 15; i++ {
		registerEnum(DomainExposureBias, biasName(i), biasMilliEV(i))
	}

	registerDomain(DomainAELock, KindToken)
	registerEnum(DomainAELock, "Unlock", 0)
	registerEnum(DomainAELock, "Lock", 1)
}

func biasMilliEV(thirds int64) int64 {
	v := thirds * 1000 / 3
	switch thirds * 1000 % 3 {
	case 2:
		v++
	case -2:
		v--
	}
	return v
}

func biasName(thirds int64) string {
	if thirds == 0 {
		return "0"
	}
	sign := "+"
	a := thirds
	if thirds < 0 {
		sign = "-"
		a = -thirds
	}
	switch a % 3 {
	case 0:
		return fmt.Sprintf("%s%d", sign, a/3)
	case 1:
		return fmt.Sprintf("%s%d.3", sign, a/3)
	default:
		return fmt.Sprintf("%s%d.7", sign, a/3)
	}
}
