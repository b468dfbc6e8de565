// Package records defines the byte-packed compound parameters exchanged
// with the bodies. Every record is packed with no padding in native
// endianness; hosts that cross endianness byte-swap explicitly.
package records

import (
	"encoding"
	"errors"
	"fmt"
)

var ErrUnknownLayout = errors.New("unknown record layout")

// Record is implemented by every published compound parameter.
type Record interface {
	// LayoutName names the published layout this record marshals to.
	LayoutName() string
	// MarshalSize is the packed size in bytes.
	MarshalSize() int
	// MarshalInto packs the record into buf at offset 0.
	MarshalInto(buf []byte) error
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

var factories = map[string]func() Record{
	LayoutFocusArea:             func() Record { return &FocusArea{} },
	LayoutFocusPosCap:           func() Record { return &FocusPosCap{} },
	LayoutFocusLimiterRange:     func() Record { return &FocusLimiterRange{} },
	LayoutFocusLimiterIndicator: func() Record { return &FocusLimiterIndicator{} },
	LayoutAFZoneCustom:          func() Record { return &AFZoneCustom{} },
	LayoutFaceFrame:             func() Record { return &FaceFrame{} },
	LayoutISOAutoSetting:        func() Record { return &ISOAutoSetting{} },
	LayoutCustomWBArea:          func() Record { return &CustomWBArea{} },
	LayoutFrameGuideGrid:        func() Record { return &FrameGuideGrid{} },
	LayoutCropAreaFrame:         func() Record { return &CropAreaFrame{} },
	LayoutFolderInfo:            func() Record { return &FolderInfo{} },
}

// New returns a zero record for a published layout name.
func New(name string) (Record, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", name, ErrUnknownLayout)
	}
	return f(), nil
}
