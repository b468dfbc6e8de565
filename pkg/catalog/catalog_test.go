package catalog

import (
	"errors"
	"testing"
)

// The published code space is frozen; these anchors must never move.
func TestOperationCode_Anchors(t *testing.T) {
	anchors := []struct {
		name string
		code Code
	}{
		{"SetAEMode", 0x2001},
		{"SetImageSize", 0x2101},
		{"SetFocusMode", 0x2201},
		{"SetWhiteBalance", 0x2301},
		{"PressShutter", 0x3001},
		{"StartLiveView", 0x3301},
		{"SetDateTime", 0x4001},
		{"GetShutterCount", 0x4101},
		{"SetViewMode", 0x4201},
		{"SetMacroMode", 0x220D},
		{"CapDriveMode", 0x213C},
		{"GetDepthPreview", 0x3310},
		{"CapFunctionButton", 0x4221},
	}
	for _, a := range anchors {
		code, err := OperationCode(a.name)
		if err != nil {
			t.Errorf("OperationCode(%s) failed: %v", a.name, err)
			continue
		}
		if code != a.code {
			t.Errorf("OperationCode(%s) = %#04x, want %#04x", a.name, uint16(code), uint16(a.code))
		}
	}
}

func TestOperationCode_Unknown(t *testing.T) {
	if _, err := OperationCode("SetWarpDrive"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("OperationCode(SetWarpDrive) = %v, want ErrUnknownOperation", err)
	}
}

func TestOperations_Count(t *testing.T) {
	if got := len(Operations()); got != 236 {
		t.Errorf("len(Operations()) = %d, want 236", got)
	}
}

func TestOperations_CodesDistinctAndReversible(t *testing.T) {
	seen := map[Code]string{}
	for _, name := range Operations() {
		code, err := OperationCode(name)
		if err != nil {
			t.Fatalf("OperationCode(%s) failed: %v", name, err)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("code %#04x shared by %s and %s", uint16(code), prev, name)
		}
		seen[code] = name
		back, ok := OperationName(code)
		if !ok || back != name {
			t.Errorf("OperationName(%#04x) = %q, want %q", uint16(code), back, name)
		}
	}
}

// Operations publish family-major, code-minor.
func TestOperations_Ordering(t *testing.T) {
	var prev Code
	for _, name := range Operations() {
		code, _ := OperationCode(name)
		if code <= prev {
			t.Fatalf("operation %s code %#04x out of order after %#04x", name, uint16(code), uint16(prev))
		}
		prev = code
	}
}

func TestFamilyOperations(t *testing.T) {
	ops := FamilyOperations(FamilyShootingCondition)
	if len(ops) != 60 {
		t.Fatalf("len(FamilyOperations(ShootingCondition)) = %d, want 60", len(ops))
	}
	if ops[0] != "SetImageSize" {
		t.Errorf("first shooting-condition operation = %s, want SetImageSize", ops[0])
	}
	for _, name := range ops {
		code, _ := OperationCode(name)
		if FamilyOf(code) != FamilyShootingCondition {
			t.Errorf("operation %s code %#04x outside its family", name, uint16(code))
		}
	}
}

// Per-family spans are frozen alongside the anchors: growing a family
// appends past its last code, never renumbers inside the span.
func TestFamilies_Snapshot(t *testing.T) {
	spans := []struct {
		family        Family
		count         int
		first, last   string
		firstC, lastC Code
	}{
		{FamilyExposure, 23, "SetAEMode", "GetAELock", 0x2001, 0x2017},
		{FamilyShootingCondition, 60, "SetImageSize", "CapDriveMode", 0x2101, 0x213C},
		{FamilyLensFocus, 50, "SetFocusMode", "CapAFZoneCustom", 0x2201, 0x2232},
		{FamilyWhiteBalance, 16, "SetWhiteBalance", "CaptureCustomWB", 0x2301, 0x2310},
		{FamilyShoot, 8, "PressShutter", "CapCaptureDelay", 0x3001, 0x3008},
		{FamilyLiveView, 16, "StartLiveView", "GetDepthPreview", 0x3301, 0x3310},
		{FamilyUtility, 21, "SetDateTime", "GetShotsRemaining", 0x4001, 0x4015},
		{FamilyMaintenance, 9, "GetShutterCount", "GetInternalTemperature", 0x4101, 0x4109},
		{FamilyDisplay, 33, "SetViewMode", "CapFunctionButton", 0x4201, 0x4221},
	}

	families := Families()
	if len(families) != len(spans) {
		t.Fatalf("len(Families()) = %d, want %d", len(families), len(spans))
	}
	for i, s := range spans {
		if families[i] != s.family {
			t.Errorf("Families()[%d] = %v, want %v", i, families[i], s.family)
		}
		ops := FamilyOperations(s.family)
		if len(ops) != s.count {
			t.Errorf("len(FamilyOperations(%v)) = %d, want %d", s.family, len(ops), s.count)
			continue
		}
		if ops[0] != s.first || ops[len(ops)-1] != s.last {
			t.Errorf("%v spans %s..%s, want %s..%s", s.family, ops[0], ops[len(ops)-1], s.first, s.last)
		}
		firstC, _ := OperationCode(ops[0])
		lastC, _ := OperationCode(ops[len(ops)-1])
		if firstC != s.firstC || lastC != s.lastC {
			t.Errorf("%v codes %#04x..%#04x, want %#04x..%#04x",
				s.family, uint16(firstC), uint16(lastC), uint16(s.firstC), uint16(s.lastC))
		}
	}
}

func TestFamilyOf(t *testing.T) {
	for _, f := range Families() {
		for _, name := range FamilyOperations(f) {
			code, _ := OperationCode(name)
			if FamilyOf(code) != f {
				t.Errorf("FamilyOf(%#04x) = %v, want %v", uint16(code), FamilyOf(code), f)
			}
		}
	}
}

func TestOperationLayout(t *testing.T) {
	cases := []struct {
		op     string
		layout string
	}{
		{"SetFocusArea", "FocusArea"},
		{"GetFocusArea", "FocusArea"},
		{"CapFocusPos", "FocusPosCap"},
		{"SetFrameGuideGridInfo", "FrameGuideGrid"},
		{"GetFolderInfo", "FolderInfo"},
		{"GetFaceFrameInfo", "FaceFrame"},
		{"CapAFZoneCustom", "AFZoneCustom"},
	}
	for _, c := range cases {
		layout, ok := OperationLayout(c.op)
		if !ok || layout != c.layout {
			t.Errorf("OperationLayout(%s) = %q, %v, want %q", c.op, layout, ok, c.layout)
		}
	}

	if layout, ok := OperationLayout("SetAEMode"); ok {
		t.Errorf("OperationLayout(SetAEMode) = %q, want none", layout)
	}

	// Every binding must point at a published operation.
	for op := range opLayouts {
		if _, err := OperationCode(op); err != nil {
			t.Errorf("layout binding references unknown operation %s", op)
		}
	}
}
