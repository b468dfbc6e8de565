package catalog

import (
	"errors"
	"testing"
)

func TestEnumValue_Anchors(t *testing.T) {
	anchors := []struct {
		domain Domain
		name   string
		value  int64
	}{
		{DomainColorTemp, "5600", 5600},
		{DomainColorTemp, "Current", 0},
		{DomainFilmSim, "ProVia", 1},
		{DomainFilmSim, "Std", 1},
		{DomainFilmSim, "Velvia", 2},
		{DomainFilmSim, "RealaAce", 20},
		{DomainWBRShift, "-9", -9},
		{DomainWBRShift, "+9", 9},
		{DomainWBRShift, "0", 0},
		{DomainShutterSpeed, "Bulb", 0},
		{DomainShutterSpeed, "1/8000", 125},
		{DomainShutterSpeed, "30s", 30000000},
		{DomainExposureBias, "+5", 5000},
		{DomainExposureBias, "-0.3", -333},
		{DomainExposureBias, "+0.7", 667},
		{DomainHighlightTone, "-0.5", -5},
		{DomainHighlightTone, "+4", 40},
		{DomainAperture, "f/5.6", 560},
		{DomainCaptureDelay, "Off", 0},
		{DomainCaptureDelay, "2s", 2000},
		{DomainCaptureDelay, "10000", 10000},
		{DomainPreviewTime, "Continuous", 0xFFFF},
		{DomainDynamicRange, "Auto", 0xFFFF},
		{DomainLiveViewImageSize, "SIZE_L", 1},
		{DomainLiveViewImageSize, "SIZE_1024", 1},
		{DomainMFAssist, "Standard", 0},
		{DomainMFAssist, "0", 0},
		{DomainSensitivity, "12800", 12800},
	}
	for _, a := range anchors {
		v, err := EnumValue(a.domain, a.name)
		if err != nil {
			t.Errorf("EnumValue(%s, %s) failed: %v", a.domain, a.name, err)
			continue
		}
		if v != a.value {
			t.Errorf("EnumValue(%s, %s) = %d, want %d", a.domain, a.name, v, a.value)
		}
	}
}

func TestEnumValue_Unknown(t *testing.T) {
	if _, err := EnumValue(DomainFilmSim, "Kodachrome"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("EnumValue(FilmSim, Kodachrome) = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := EnumValue(Domain("Bogus"), "X"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("EnumValue(Bogus, X) = %v, want ErrUnknownEnumValue", err)
	}
	// The shift domains stop hard at +/-9.
	if _, err := EnumValue(DomainWBRShift, "+10"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("EnumValue(WBRShift, +10) = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := EnumValue(DomainWBRShift, "-10"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("EnumValue(WBRShift, -10) = %v, want ErrUnknownEnumValue", err)
	}
}

func TestIsEnumAlias(t *testing.T) {
	aliases := []struct {
		domain Domain
		name   string
	}{
		{DomainFilmSim, "Std"},
		{DomainFilmSim, "Vivid"},
		{DomainFilmSim, "Soft"},
		{DomainLiveViewImageSize, "SIZE_L"},
		{DomainMFAssist, "0"},
		{DomainCaptureDelay, "2000"},
		{DomainExposurePreview, "AutoExposureAutoWB"},
	}
	for _, a := range aliases {
		if !IsEnumAlias(a.domain, a.name) {
			t.Errorf("IsEnumAlias(%s, %s) = false, want true", a.domain, a.name)
		}
	}
	if IsEnumAlias(DomainFilmSim, "ProVia") {
		t.Error("IsEnumAlias(FilmSim, ProVia) = true, want false")
	}
}

// Every published name resolves, canonical encodings are unique inside a
// domain, and every alias shares an encoding with a canonical name.
func TestDomains_Closure(t *testing.T) {
	domains := Domains()
	if len(domains) == 0 {
		t.Fatal("Domains() is empty")
	}
	for _, d := range domains {
		if _, ok := DomainKind(d); !ok {
			t.Errorf("DomainKind(%s) missing", d)
		}
		names := DomainNames(d)
		if len(names) == 0 {
			t.Errorf("domain %s publishes no names", d)
		}
		canonical := map[int64]bool{}
		for _, name := range names {
			v, err := EnumValue(d, name)
			if err != nil {
				t.Errorf("EnumValue(%s, %s) failed: %v", d, name, err)
				continue
			}
			if IsEnumAlias(d, name) {
				continue
			}
			if canonical[v] {
				t.Errorf("domain %s: encoding %d published under two canonical names", d, v)
			}
			canonical[v] = true
		}
		for _, name := range names {
			if !IsEnumAlias(d, name) {
				continue
			}
			v, _ := EnumValue(d, name)
			if !canonical[v] {
				t.Errorf("domain %s: alias %s has no canonical encoding %d", d, name, v)
			}
		}
	}
}

func TestDomainKind_ByFamily(t *testing.T) {
	kinds := []struct {
		domain Domain
		kind   Kind
	}{
		{DomainFilmSim, KindToken},
		{DomainColorTemp, KindPhysical},
		{DomainWBRShift, KindOffset},
		{DomainHighlightTone, KindOffset},
		{DomainFuncLock, KindFlag},
		{DomainCustomDispInfo, KindFlag},
	}
	for _, k := range kinds {
		got, ok := DomainKind(k.domain)
		if !ok || got != k.kind {
			t.Errorf("DomainKind(%s) = %v, want %v", k.domain, got, k.kind)
		}
	}
}

func TestWBShift_Bounds(t *testing.T) {
	names := DomainNames(DomainWBRShift)
	if len(names) != 19 {
		t.Fatalf("len(DomainNames(WBRShift)) = %d, want 19", len(names))
	}
	min, _ := EnumValue(DomainWBRShift, names[0])
	max, _ := EnumValue(DomainWBRShift, names[len(names)-1])
	if min != -9 || max != 9 {
		t.Errorf("WBRShift bounds = [%d, %d], want [-9, +9]", min, max)
	}
}

// Bit-mask encodings carry the category word in the high half and a
// single set bit in the low half.
func TestFlagDomains_Packing(t *testing.T) {
	for _, d := range []Domain{DomainFuncLock, DomainCustomDispInfo} {
		for _, name := range DomainNames(d) {
			v, err := EnumValue(d, name)
			if err != nil {
				t.Fatalf("EnumValue(%s, %s) failed: %v", d, name, err)
			}
			mask := FlagMask(v)
			if mask == 0 || mask&(mask-1) != 0 {
				t.Errorf("%s.%s mask %#08x is not a single bit", d, name, mask)
			}
			if cat := FlagCategory(v); cat != 0 && cat != 1 {
				t.Errorf("%s.%s category = %d, want 0 or 1", d, name, cat)
			}
			if FlagValue(FlagCategory(v), FlagMask(v)) != v {
				t.Errorf("%s.%s does not round trip through FlagValue", d, name)
			}
		}
	}
}

func TestExposureBias_Symmetry(t *testing.T) {
	names := DomainNames(DomainExposureBias)
	if len(names) != 31 {
		t.Fatalf("len(DomainNames(ExposureBias)) = %d, want 31", len(names))
	}
	for _, name := range names {
		v, _ := EnumValue(DomainExposureBias, name)
		if v == 0 {
			continue
		}
		neg := "-" + name[1:]
		if name[0] == '-' {
			neg = "+" + name[1:]
		}
		nv, err := EnumValue(DomainExposureBias, neg)
		if err != nil {
			t.Errorf("ExposureBias missing mirror of %s: %v", name, err)
			continue
		}
		if nv != -v {
			t.Errorf("ExposureBias %s = %d, mirror %s = %d", name, v, neg, nv)
		}
	}
}
