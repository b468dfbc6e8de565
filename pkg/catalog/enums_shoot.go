package catalog

// Shoot domains.
const (
	DomainShutterPhase Domain = "ShutterPhase"
	DomainCaptureDelay Domain = "CaptureDelay"
)

func registerShootEnums() {
	registerDomain(DomainShutterPhase, KindToken)
	registerEnum(DomainShutterPhase, "S1On", 1)
	registerEnum(DomainShutterPhase, "S1Off", 2)
	registerEnum(DomainShutterPhase, "S2On", 3)
	registerEnum(DomainShutterPhase, "S2Off", 4)

	// The self-timer delay is the wait in milliseconds; the bare numbers
	// stay published for hosts that pass the reading straight through.
	registerDomain(DomainCaptureDelay, KindPhysical)
	registerEnum(DomainCaptureDelay, "Off", 0)
	registerEnum(DomainCaptureDelay, "2s", 2000)
	registerEnum(DomainCaptureDelay, "10s", 10000)
	registerEnumAlias(DomainCaptureDelay, "0", 0)
	registerEnumAlias(DomainCaptureDelay, "2000", 2000)
	registerEnumAlias(DomainCaptureDelay, "10000", 10000)
}
