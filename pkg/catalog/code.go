package catalog

// Code identifies a remote operation. Codes are 16-bit, assigned once and
// never reused; the high byte selects the operation family.
type Code uint16

// Family is the high-byte grouping of the operation code space.
type Family uint8

const (
	FamilyExposure          Family = 0x20
	FamilyShootingCondition Family = 0x21
	FamilyLensFocus         Family = 0x22
	FamilyWhiteBalance      Family = 0x23
	FamilyShoot             Family = 0x30
	FamilyLiveView          Family = 0x33
	FamilyUtility           Family = 0x40
	FamilyMaintenance       Family = 0x41
	FamilyDisplay           Family = 0x42
)

// families in publication order.
var families = []Family{
	FamilyExposure,
	FamilyShootingCondition,
	FamilyLensFocus,
	FamilyWhiteBalance,
	FamilyShoot,
	FamilyLiveView,
	FamilyUtility,
	FamilyMaintenance,
	FamilyDisplay,
}

// FamilyOf returns the family a code belongs to.
func FamilyOf(c Code) Family {
	return Family(c >> 8)
}

// Families returns every operation family in publication order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

func (f Family) String() string {
	switch f {
	case FamilyExposure:
		return "Exposure"
	case FamilyShootingCondition:
		return "ShootingCondition"
	case FamilyLensFocus:
		return "LensFocus"
	case FamilyWhiteBalance:
		return "WhiteBalance"
	case FamilyShoot:
		return "Shoot"
	case FamilyLiveView:
		return "LiveView"
	case FamilyUtility:
		return "Utility"
	case FamilyMaintenance:
		return "Maintenance"
	case FamilyDisplay:
		return "Display"
	default:
		return "Unknown"
	}
}
