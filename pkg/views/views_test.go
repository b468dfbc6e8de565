package views

import (
	"errors"
	"strings"
	"testing"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
)

func allViews() []*View {
	return []*View{Reference, MF100, MF50}
}

func TestViews_PublishWholeCatalogue(t *testing.T) {
	want := len(catalog.Operations())
	for _, v := range allViews() {
		if got := len(v.Operations()); got != want {
			t.Errorf("%s publishes %d operations, want %d", v.Name(), got, want)
		}
	}
}

func TestReference_SupportsEverything(t *testing.T) {
	for _, op := range Reference.Operations() {
		if !Reference.Supports(op) {
			t.Errorf("Reference does not support %s", op)
		}
	}
}

// Every view must hand back the base catalogue's code for the operations
// it supports.
func TestViews_CodeCoherence(t *testing.T) {
	for _, v := range allViews() {
		for _, op := range v.Operations() {
			if !v.Supports(op) {
				continue
			}
			code, err := v.Code(op)
			if err != nil {
				t.Errorf("%s.Code(%s) failed: %v", v.Name(), op, err)
				continue
			}
			base, _ := catalog.OperationCode(op)
			if code != base {
				t.Errorf("%s.Code(%s) = %#04x, want %#04x", v.Name(), op, uint16(code), uint16(base))
			}
		}
	}
}

func propertyOf(op string) (string, bool) {
	for _, prefix := range []string{"Set", "Get", "Cap"} {
		if strings.HasPrefix(op, prefix) && len(op) > len(prefix) {
			r := op[len(prefix)]
			if r >= 'A' && r <= 'Z' {
				return op[len(prefix):], true
			}
		}
	}
	return "", false
}

// Within one view, the Set/Get/Cap calls of a property are either all
// implemented or all declined.
func TestViews_TripleSymmetry(t *testing.T) {
	for _, v := range allViews() {
		groups := map[string][]string{}
		for _, op := range v.Operations() {
			if prop, ok := propertyOf(op); ok {
				groups[prop] = append(groups[prop], op)
			}
		}
		for prop, ops := range groups {
			supported := v.Supports(ops[0])
			for _, op := range ops[1:] {
				if v.Supports(op) != supported {
					t.Errorf("%s: property %s split across %v", v.Name(), prop, ops)
					break
				}
			}
		}
	}
}

func TestMF100_Anchors(t *testing.T) {
	code, err := MF100.Code("SetImageSize")
	if err != nil {
		t.Fatalf("Code(SetImageSize) failed: %v", err)
	}
	if code != 0x2101 {
		t.Errorf("Code(SetImageSize) = %#04x, want 0x2101", uint16(code))
	}
	anchors := []struct {
		op    string
		arity int
	}{
		{"SetImageSize", 1},
		{"StartLiveView", 0},
		{"SetDateTime", 6},
		{"SetMacroMode", -1},
		{"CapColorTemp", 2},
		{"CapLiveViewZoom", 2},
		{"CapHighlightTone", 3},
	}
	for _, a := range anchors {
		arity, err := MF100.Arity(a.op)
		if err != nil {
			t.Errorf("Arity(%s) failed: %v", a.op, err)
			continue
		}
		if arity.Sentinel() != a.arity {
			t.Errorf("Arity(%s) = %d, want %d", a.op, arity.Sentinel(), a.arity)
		}
	}
}

func TestMF100_MacroModeUnsupported(t *testing.T) {
	if MF100.Supports("SetMacroMode") {
		t.Error("MF100.Supports(SetMacroMode) = true, want false")
	}
	if _, err := MF100.Code("SetMacroMode"); !errors.Is(err, ErrOperationUnsupported) {
		t.Errorf("MF100.Code(SetMacroMode) = %v, want ErrOperationUnsupported", err)
	}
	// The reference view still implements it.
	if !Reference.Supports("SetMacroMode") {
		t.Error("Reference.Supports(SetMacroMode) = false, want true")
	}
}

func TestMF50_ThruImageAliases(t *testing.T) {
	if !MF50.Supports("SetThruImageZoom") {
		t.Fatal("MF50.Supports(SetThruImageZoom) = false, want true")
	}
	code, err := MF50.Code("SetThruImageZoom")
	if err != nil {
		t.Fatalf("Code(SetThruImageZoom) failed: %v", err)
	}
	base, _ := catalog.OperationCode("SetLiveViewZoom")
	if code != base {
		t.Errorf("Code(SetThruImageZoom) = %#04x, want %#04x", uint16(code), uint16(base))
	}
	arity, err := MF50.Arity("CapThruImageZoom")
	if err != nil {
		t.Fatalf("Arity(CapThruImageZoom) failed: %v", err)
	}
	if n, _ := arity.Count(); n != 3 {
		t.Errorf("Arity(CapThruImageZoom) = %d, want 3", n)
	}
	if got := MF50.ResolveOperation("GetThruImageZoom"); got != "GetLiveViewZoom" {
		t.Errorf("ResolveOperation(GetThruImageZoom) = %q, want GetLiveViewZoom", got)
	}
	if got := MF50.ResolveOperation("SetAEMode"); got != "SetAEMode" {
		t.Errorf("ResolveOperation(SetAEMode) = %q, want SetAEMode", got)
	}
	if got := len(MF50.OperationAliases()); got != 3 {
		t.Errorf("len(MF50.OperationAliases()) = %d, want 3", got)
	}
	if got := len(Reference.OperationAliases()); got != 0 {
		t.Errorf("len(Reference.OperationAliases()) = %d, want 0", got)
	}
}

func TestMF50_DomainSubsets(t *testing.T) {
	if _, err := MF50.EnumValue(catalog.DomainFilmSim, "ProVia"); err != nil {
		t.Errorf("MF50.EnumValue(FilmSim, ProVia) failed: %v", err)
	}
	if v, err := MF50.EnumValue(catalog.DomainFilmSim, "Std"); err != nil || v != 1 {
		t.Errorf("MF50.EnumValue(FilmSim, Std) = %d, %v, want 1", v, err)
	}
	if _, err := MF50.EnumValue(catalog.DomainFilmSim, "NostalgicNeg"); !errors.Is(err, catalog.ErrUnknownEnumValue) {
		t.Errorf("MF50.EnumValue(FilmSim, NostalgicNeg) = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := MF50.EnumValue(catalog.DomainRAWOutputDepth, "16bit"); !errors.Is(err, catalog.ErrUnknownEnumValue) {
		t.Errorf("MF50.EnumValue(RAWOutputDepth, 16bit) = %v, want ErrUnknownEnumValue", err)
	}
	if _, err := Reference.EnumValue(catalog.DomainRAWOutputDepth, "16bit"); err != nil {
		t.Errorf("Reference.EnumValue(RAWOutputDepth, 16bit) failed: %v", err)
	}
	// Undeclared domains pass through whole.
	if _, err := MF50.EnumValue(catalog.DomainColorTemp, "5600"); err != nil {
		t.Errorf("MF50.EnumValue(ColorTemp, 5600) failed: %v", err)
	}
	if got := len(MF50.DomainNames(catalog.DomainFilmSim)); got != 18 {
		t.Errorf("len(MF50.DomainNames(FilmSim)) = %d, want 18", got)
	}
}

func TestView_UnknownOperation(t *testing.T) {
	for _, v := range allViews() {
		if _, err := v.Arity("SetWarpDrive"); !errors.Is(err, catalog.ErrUnknownOperation) {
			t.Errorf("%s.Arity(SetWarpDrive) = %v, want ErrUnknownOperation", v.Name(), err)
		}
		if v.Supports("SetWarpDrive") {
			t.Errorf("%s.Supports(SetWarpDrive) = true, want false", v.Name())
		}
	}
}

func TestView_Layout(t *testing.T) {
	layout, ok := MF100.Layout("SetFocusArea")
	if !ok || layout != "FocusArea" {
		t.Errorf("MF100.Layout(SetFocusArea) = %q, %v, want FocusArea", layout, ok)
	}
	if layout, ok := MF100.Layout("SetAEMode"); ok {
		t.Errorf("MF100.Layout(SetAEMode) = %q, want none", layout)
	}
}

func TestArity(t *testing.T) {
	a := Params(2)
	if !a.Supported() {
		t.Error("Params(2).Supported() = false")
	}
	if n, ok := a.Count(); n != 2 || !ok {
		t.Errorf("Params(2).Count() = %d, %v, want 2, true", n, ok)
	}
	if a.Sentinel() != 2 {
		t.Errorf("Params(2).Sentinel() = %d, want 2", a.Sentinel())
	}
	if a.String() != "2" {
		t.Errorf("Params(2).String() = %q, want 2", a.String())
	}

	if NotSupported.Supported() {
		t.Error("NotSupported.Supported() = true")
	}
	if NotSupported.Sentinel() != -1 {
		t.Errorf("NotSupported.Sentinel() = %d, want -1", NotSupported.Sentinel())
	}
	if NotSupported.String() != "unsupported" {
		t.Errorf("NotSupported.String() = %q", NotSupported.String())
	}
}
