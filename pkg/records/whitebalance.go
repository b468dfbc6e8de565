package records

import (
	"encoding/binary"
	"io"
)

// CustomWBArea positions the measurement patch for a custom white-balance
// capture. X and Y are the patch center in live-view pixels, Size the
// patch edge length.
type CustomWBArea struct {
	X    int32
	Y    int32
	Size int32
}

func (cwa *CustomWBArea) LayoutName() string { return LayoutCustomWBArea }

func (cwa *CustomWBArea) MarshalSize() int { return 12 }

func (cwa *CustomWBArea) MarshalInto(buf []byte) error {
	if len(buf) < cwa.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(cwa.X))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(cwa.Y))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(cwa.Size))
	return nil
}

func (cwa *CustomWBArea) MarshalBinary() ([]byte, error) {
	buf := make([]byte, cwa.MarshalSize())
	return buf, cwa.MarshalInto(buf)
}

func (cwa *CustomWBArea) UnmarshalBinary(buf []byte) error {
	if len(buf) < cwa.MarshalSize() {
		return io.ErrShortBuffer
	}
	cwa.X = int32(binary.NativeEndian.Uint32(buf[0:4]))
	cwa.Y = int32(binary.NativeEndian.Uint32(buf[4:8]))
	cwa.Size = int32(binary.NativeEndian.Uint32(buf[8:12]))
	return nil
}
