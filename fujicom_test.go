package fujicom

import (
	"errors"
	"testing"

	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/records"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

func TestModelView(t *testing.T) {
	for _, m := range Models() {
		v, err := ModelView(m)
		if err != nil {
			t.Fatalf("ModelView(%q) error: %v", m, err)
		}
		if v.Name() != string(m) {
			t.Errorf("ModelView(%q).Name() = %q", m, v.Name())
		}
	}
	if _, err := ModelView(Model("MF200")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("ModelView(MF200) error = %v, want ErrUnknownModel", err)
	}
}

func TestBuilder_Scalar(t *testing.T) {
	b, err := ForModel(ModelMF100)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}

	size, err := b.View().EnumValue(catalog.DomainImageSize, "L_4:3")
	if err != nil {
		t.Fatalf("EnumValue(ImageSize, L_4:3): %v", err)
	}
	req, err := b.Build("SetImageSize", size)
	if err != nil {
		t.Fatalf("Build(SetImageSize): %v", err)
	}
	if req.Code != 0x2101 {
		t.Errorf("SetImageSize code = %#04x, want 0x2101", req.Code)
	}
	if len(req.Params) != 1 || req.Params[0] != size {
		t.Errorf("SetImageSize params = %v, want [%d]", req.Params, size)
	}
	if req.Payload != nil {
		t.Errorf("SetImageSize payload = %v, want none", req.Payload)
	}

	req, err = b.Build("StartLiveView")
	if err != nil {
		t.Fatalf("Build(StartLiveView): %v", err)
	}
	if req.Code != 0x3301 || len(req.Params) != 0 {
		t.Errorf("StartLiveView = %#04x %v, want 0x3301 with no params", req.Code, req.Params)
	}
}

func TestBuilder_ArityMismatch(t *testing.T) {
	b, err := ForModel(ModelMF100)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if _, err := b.Build("SetImageSize"); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("Build(SetImageSize) error = %v, want ErrArityMismatch", err)
	}
	if _, err := b.Build("StartLiveView", 1); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("Build(StartLiveView, 1) error = %v, want ErrArityMismatch", err)
	}
}

func TestBuilder_Unsupported(t *testing.T) {
	b, err := ForModel(ModelMF100)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if _, err := b.Build("SetMacroMode", 1); !errors.Is(err, views.ErrOperationUnsupported) {
		t.Errorf("MF100 Build(SetMacroMode) error = %v, want ErrOperationUnsupported", err)
	}
}

func TestBuilder_RecordRequired(t *testing.T) {
	b, err := ForModel(ModelReference)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if _, err := b.Build("SetFocusArea", 1); !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("Build(SetFocusArea, 1) error = %v, want ErrRecordMismatch", err)
	}
}

func TestBuilder_Record(t *testing.T) {
	b, err := ForModel(ModelReference)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}

	area := &records.FocusArea{H: 1, V: -2, Size: 3}
	req, err := b.BuildRecord("SetFocusArea", area)
	if err != nil {
		t.Fatalf("BuildRecord(SetFocusArea): %v", err)
	}
	if req.Code != 0x2207 {
		t.Errorf("SetFocusArea code = %#04x, want 0x2207", req.Code)
	}
	if len(req.Payload) != 12 {
		t.Errorf("SetFocusArea payload = %d bytes, want 12", len(req.Payload))
	}
	if len(req.Params) != 0 {
		t.Errorf("SetFocusArea params = %v, want none", req.Params)
	}

	// One slot for the record, one for the preset selector.
	iso := &records.ISOAutoSetting{DefaultSensitivity: 200, MaxSensitivity: 6400, ShutterSpeedFloor: 8}
	req, err = b.BuildRecord("SetISOAutoSetting", iso, 1)
	if err != nil {
		t.Fatalf("BuildRecord(SetISOAutoSetting): %v", err)
	}
	if req.Code != 0x2013 || len(req.Params) != 1 || len(req.Payload) != iso.MarshalSize() {
		t.Errorf("SetISOAutoSetting = %#04x params %v payload %d bytes", req.Code, req.Params, len(req.Payload))
	}
}

func TestBuilder_RecordMismatch(t *testing.T) {
	b, err := ForModel(ModelReference)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}

	// Same size as a focus area, different layout.
	wb := &records.CustomWBArea{X: 1, Y: 2, Size: 3}
	if _, err := b.BuildRecord("SetFocusArea", wb); !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("BuildRecord(SetFocusArea, CustomWBArea) error = %v, want ErrRecordMismatch", err)
	}
	if _, err := b.BuildRecord("SetFocusArea", nil); !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("BuildRecord(SetFocusArea, nil) error = %v, want ErrRecordMismatch", err)
	}
	if _, err := b.BuildRecord("SetImageSize", &records.FocusArea{}); !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("BuildRecord(SetImageSize) error = %v, want ErrRecordMismatch", err)
	}
	if _, err := b.BuildRecord("SetFocusArea", &records.FocusArea{}, 7); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("BuildRecord(SetFocusArea, rec, 7) error = %v, want ErrArityMismatch", err)
	}
}

func TestBuilder_Alias(t *testing.T) {
	b, err := ForModel(ModelMF50)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	req, err := b.Build("SetThruImageZoom", 10)
	if err != nil {
		t.Fatalf("Build(SetThruImageZoom): %v", err)
	}
	if req.Code != 0x3309 {
		t.Errorf("SetThruImageZoom code = %#04x, want 0x3309", req.Code)
	}
	if req.Op != "SetLiveViewZoom" {
		t.Errorf("SetThruImageZoom resolved to %q, want SetLiveViewZoom", req.Op)
	}
}

func TestBuilder_UnknownOperation(t *testing.T) {
	b, err := ForModel(ModelReference)
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if _, err := b.Build("SetWarpDrive", 1); !errors.Is(err, catalog.ErrUnknownOperation) {
		t.Errorf("Build(SetWarpDrive) error = %v, want ErrUnknownOperation", err)
	}
}
