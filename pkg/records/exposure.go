package records

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ISOAutoSetting is one ISO-auto preset: the sensitivity the body starts
// from, the ceiling it may climb to, the slowest shutter it accepts
// before climbing (milliseconds, 0 = auto) and a display label.
type ISOAutoSetting struct {
	DefaultSensitivity int32
	MaxSensitivity     int32
	ShutterSpeedFloor  int32
	Label              [32]byte
}

func (ias *ISOAutoSetting) LayoutName() string { return LayoutISOAutoSetting }

func (ias *ISOAutoSetting) MarshalSize() int { return 44 }

func (ias *ISOAutoSetting) MarshalInto(buf []byte) error {
	if len(buf) < ias.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(ias.DefaultSensitivity))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(ias.MaxSensitivity))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(ias.ShutterSpeedFloor))
	copy(buf[12:44], ias.Label[:])
	return nil
}

func (ias *ISOAutoSetting) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ias.MarshalSize())
	return buf, ias.MarshalInto(buf)
}

func (ias *ISOAutoSetting) UnmarshalBinary(buf []byte) error {
	if len(buf) < ias.MarshalSize() {
		return io.ErrShortBuffer
	}
	ias.DefaultSensitivity = int32(binary.NativeEndian.Uint32(buf[0:4]))
	ias.MaxSensitivity = int32(binary.NativeEndian.Uint32(buf[4:8]))
	ias.ShutterSpeedFloor = int32(binary.NativeEndian.Uint32(buf[8:12]))
	copy(ias.Label[:], buf[12:44])
	return nil
}

// LabelString returns the label up to its zero padding.
func (ias *ISOAutoSetting) LabelString() string {
	if i := bytes.IndexByte(ias.Label[:], 0); i >= 0 {
		return string(ias.Label[:i])
	}
	return string(ias.Label[:])
}

// SetLabel stores a label of at most 31 bytes, keeping the rest of the
// field zero-padded.
func (ias *ISOAutoSetting) SetLabel(s string) error {
	if len(s) > len(ias.Label)-1 {
		return fmt.Errorf("label %q longer than %d bytes", s, len(ias.Label)-1)
	}
	ias.Label = [32]byte{}
	copy(ias.Label[:], s)
	return nil
}
