package records

import (
	"encoding/binary"
	"io"
)

// FrameGuideGrid describes the custom framing guideline: up to five
// horizontal and five vertical line positions in per-mille of the frame,
// 0 meaning the slot is unused, plus line widths and tint.
type FrameGuideGrid struct {
	HPos       [5]int32
	VPos       [5]int32
	HLineWidth int32
	VLineWidth int32
	ColorIndex int32
	Alpha      int32
}

func (fgg *FrameGuideGrid) LayoutName() string { return LayoutFrameGuideGrid }

func (fgg *FrameGuideGrid) MarshalSize() int { return 56 }

func (fgg *FrameGuideGrid) MarshalInto(buf []byte) error {
	if len(buf) < fgg.MarshalSize() {
		return io.ErrShortBuffer
	}
	for i, v := range fgg.HPos {
		binary.NativeEndian.PutUint32(buf[i*4:i*4+4], uint32(v))
	}
	for i, v := range fgg.VPos {
		binary.NativeEndian.PutUint32(buf[20+i*4:24+i*4], uint32(v))
	}
	binary.NativeEndian.PutUint32(buf[40:44], uint32(fgg.HLineWidth))
	binary.NativeEndian.PutUint32(buf[44:48], uint32(fgg.VLineWidth))
	binary.NativeEndian.PutUint32(buf[48:52], uint32(fgg.ColorIndex))
	binary.NativeEndian.PutUint32(buf[52:56], uint32(fgg.Alpha))
	return nil
}

func (fgg *FrameGuideGrid) MarshalBinary() ([]byte, error) {
	buf := make([]byte, fgg.MarshalSize())
	return buf, fgg.MarshalInto(buf)
}

func (fgg *FrameGuideGrid) UnmarshalBinary(buf []byte) error {
	if len(buf) < fgg.MarshalSize() {
		return io.ErrShortBuffer
	}
	for i := range fgg.HPos {
		fgg.HPos[i] = int32(binary.NativeEndian.Uint32(buf[i*4 : i*4+4]))
	}
	for i := range fgg.VPos {
		fgg.VPos[i] = int32(binary.NativeEndian.Uint32(buf[20+i*4 : 24+i*4]))
	}
	fgg.HLineWidth = int32(binary.NativeEndian.Uint32(buf[40:44]))
	fgg.VLineWidth = int32(binary.NativeEndian.Uint32(buf[44:48]))
	fgg.ColorIndex = int32(binary.NativeEndian.Uint32(buf[48:52]))
	fgg.Alpha = int32(binary.NativeEndian.Uint32(buf[52:56]))
	return nil
}

// CropAreaFrame is the sensor region the 35mm crop reads out, in sensor
// pixels from the top-left corner.
type CropAreaFrame struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

func (caf *CropAreaFrame) LayoutName() string { return LayoutCropAreaFrame }

func (caf *CropAreaFrame) MarshalSize() int { return 16 }

func (caf *CropAreaFrame) MarshalInto(buf []byte) error {
	if len(buf) < caf.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(caf.X))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(caf.Y))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(caf.Width))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(caf.Height))
	return nil
}

func (caf *CropAreaFrame) MarshalBinary() ([]byte, error) {
	buf := make([]byte, caf.MarshalSize())
	return buf, caf.MarshalInto(buf)
}

func (caf *CropAreaFrame) UnmarshalBinary(buf []byte) error {
	if len(buf) < caf.MarshalSize() {
		return io.ErrShortBuffer
	}
	caf.X = int32(binary.NativeEndian.Uint32(buf[0:4]))
	caf.Y = int32(binary.NativeEndian.Uint32(buf[4:8]))
	caf.Width = int32(binary.NativeEndian.Uint32(buf[8:12]))
	caf.Height = int32(binary.NativeEndian.Uint32(buf[12:16]))
	return nil
}
