package catalog

// Media and power domains.
const (
	DomainMediaStatus  Domain = "MediaStatus"
	DomainMediaSlot    Domain = "MediaSlot"
	DomainBatteryLevel Domain = "BatteryLevel"
	DomainFolderStatus Domain = "FolderStatus"
)

func registerMediaEnums() {
	registerDomain(DomainMediaStatus, KindToken)
	registerEnum(DomainMediaStatus, "OK", 1)
	registerEnum(DomainMediaStatus, "WriteProtected", 2)
	registerEnum(DomainMediaStatus, "NoMedia", 3)
	registerEnum(DomainMediaStatus, "Unformatted", 4)
	registerEnum(DomainMediaStatus, "Error", 5)
	registerEnum(DomainMediaStatus, "Full", 6)

	registerDomain(DomainMediaSlot, KindToken)
	registerEnum(DomainMediaSlot, "Slot1", 1)
	registerEnum(DomainMediaSlot, "Slot2", 2)

	registerDomain(DomainBatteryLevel, KindToken)
	registerEnum(DomainBatteryLevel, "Empty", 1)
	registerEnum(DomainBatteryLevel, "Low", 2)
	registerEnum(DomainBatteryLevel, "Half", 3)
	registerEnum(DomainBatteryLevel, "High", 4)
	registerEnum(DomainBatteryLevel, "Full", 5)

	registerDomain(DomainFolderStatus, KindToken)
	registerEnum(DomainFolderStatus, "OK", 1)
	registerEnum(DomainFolderStatus, "Full", 2)
	registerEnum(DomainFolderStatus, "Error", 3)
}
