// Package catalog is the authoritative registry of remote operation codes,
// enumerated property values, and their publication metadata for the camera
// family. All tables are built once at package initialization and are
// read-only afterwards.
package catalog

import "fmt"

type opdef struct {
	name string
	code Code
}

// Domain names one enumerated property space. A domain is closed: only the
// registered names are legal inputs.
type Domain string

// Kind describes how a domain encodes its values.
type Kind uint8

const (
	// KindToken enums are small positive integers starting at 1.
	KindToken Kind = iota + 1
	// KindOffset enums are signed shifts around a neutral zero. Tonal
	// domains encode in tens so half steps can be published later without
	// renumbering.
	KindOffset
	// KindPhysical enums carry direct physical readings (Kelvin,
	// milliseconds, f-number hundredths).
	KindPhysical
	// KindFlag enums are single-bit masks inside a 32-bit category word.
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindOffset:
		return "offset"
	case KindPhysical:
		return "physical"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

type enumEntry struct {
	value int64
	alias bool
}

var (
	opCodeByName = map[string]Code{}
	opNameByCode = map[Code]string{}
	opsByFamily  = map[Family][]string{}
	opsOrdered   []string

	domainOrder []Domain
	domainKinds = map[Domain]Kind{}
	enumTables  = map[Domain]map[string]enumEntry{}
	enumOrder   = map[Domain][]string{}
)

func init() {
	for _, fam := range []struct {
		family Family
		ops    []opdef
	}{
		{FamilyExposure, exposureOps},
		{FamilyShootingCondition, shootingConditionOps},
		{FamilyLensFocus, lensFocusOps},
		{FamilyWhiteBalance, whiteBalanceOps},
		{FamilyShoot, shootOps},
		{FamilyLiveView, liveViewOps},
		{FamilyUtility, utilityOps},
		{FamilyMaintenance, maintenanceOps},
		{FamilyDisplay, displayOps},
	} {
		for _, op := range fam.ops {
			if FamilyOf(op.code) != fam.family {
				panic(fmt.Sprintf("catalog: operation %s code %#04x outside family %#02x", op.name, op.code, uint8(fam.family)))
			}
			if _, dup := opCodeByName[op.name]; dup {
				panic(fmt.Sprintf("catalog: duplicate operation name %s", op.name))
			}
			if prev, dup := opNameByCode[op.code]; dup {
				panic(fmt.Sprintf("catalog: code %#04x reused by %s and %s", uint16(op.code), prev, op.name))
			}
			opCodeByName[op.name] = op.code
			opNameByCode[op.code] = op.name
			opsByFamily[fam.family] = append(opsByFamily[fam.family], op.name)
			opsOrdered = append(opsOrdered, op.name)
		}
	}

	registerExposureEnums()
	registerShootingEnums()
	registerFocusEnums()
	registerWhiteBalanceEnums()
	registerShootEnums()
	registerLiveViewEnums()
	registerSystemEnums()
	registerMediaEnums()
	registerButtonEnums()
	registerFlagEnums()
}

func registerDomain(d Domain, k Kind) {
	if _, dup := enumTables[d]; dup {
		panic(fmt.Sprintf("catalog: duplicate enum domain %s", d))
	}
	enumTables[d] = map[string]enumEntry{}
	domainKinds[d] = k
	domainOrder = append(domainOrder, d)
}

func registerEnum(d Domain, name string, value int64) {
	table, ok := enumTables[d]
	if !ok {
		panic(fmt.Sprintf("catalog: enum %s registered before domain %s", name, d))
	}
	if _, dup := table[name]; dup {
		panic(fmt.Sprintf("catalog: duplicate enum name %s in domain %s", name, d))
	}
	table[name] = enumEntry{value: value}
	enumOrder[d] = append(enumOrder[d], name)
}

// registerEnumAlias publishes a second name for an encoding that is already
// published under its canonical name.
func registerEnumAlias(d Domain, name string, value int64) {
	table, ok := enumTables[d]
	if !ok {
		panic(fmt.Sprintf("catalog: alias %s registered before domain %s", name, d))
	}
	if _, dup := table[name]; dup {
		panic(fmt.Sprintf("catalog: duplicate enum alias %s in domain %s", name, d))
	}
	found := false
	for _, e := range table {
		if !e.alias && e.value == value {
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("catalog: alias %s in domain %s has no canonical encoding %d", name, d, value))
	}
	table[name] = enumEntry{value: value, alias: true}
	enumOrder[d] = append(enumOrder[d], name)
}

// OperationCode resolves a published operation name to its code.
func OperationCode(name string) (Code, error) {
	code, ok := opCodeByName[name]
	if !ok {
		return 0, fmt.Errorf("operation %q: %w", name, ErrUnknownOperation)
	}
	return code, nil
}

// OperationName is the reverse lookup of OperationCode.
func OperationName(c Code) (string, bool) {
	name, ok := opNameByCode[c]
	return name, ok
}

// Operations returns every published operation name, ordered by family and
// then by code within the family.
func Operations() []string {
	out := make([]string, len(opsOrdered))
	copy(out, opsOrdered)
	return out
}

// FamilyOperations returns the published operation names of one family in
// code order.
func FamilyOperations(f Family) []string {
	ops := opsByFamily[f]
	out := make([]string, len(ops))
	copy(out, ops)
	return out
}

// EnumValue resolves a published name within a domain to its encoding.
// Round-tripping is by encoding, not by name: aliases resolve to the same
// value as their canonical name.
func EnumValue(d Domain, name string) (int64, error) {
	table, ok := enumTables[d]
	if !ok {
		return 0, fmt.Errorf("enum domain %q: %w", d, ErrUnknownEnumValue)
	}
	e, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("enum %s.%q: %w", d, name, ErrUnknownEnumValue)
	}
	return e.value, nil
}

// IsEnumAlias reports whether name is published as an alias of another name
// in the domain.
func IsEnumAlias(d Domain, name string) bool {
	table, ok := enumTables[d]
	if !ok {
		return false
	}
	return table[name].alias
}

// Domains returns every published enum domain in publication order.
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// DomainKind reports how a domain encodes its values.
func DomainKind(d Domain) (Kind, bool) {
	k, ok := domainKinds[d]
	return k, ok
}

// DomainNames returns the published names of a domain, canonical names and
// aliases both, in publication order.
func DomainNames(d Domain) []string {
	names := enumOrder[d]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
