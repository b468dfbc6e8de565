package records

import (
	"encoding/binary"
	"io"
)

// FocusArea selects one bucket of the focus grid. H and V run [-3, +3]
// from the frame center, Size runs [1, 5].
type FocusArea struct {
	H    int32
	V    int32
	Size int32
}

func (fa *FocusArea) LayoutName() string { return LayoutFocusArea }

func (fa *FocusArea) MarshalSize() int { return 12 }

func (fa *FocusArea) MarshalInto(buf []byte) error {
	if len(buf) < fa.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(fa.H))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(fa.V))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(fa.Size))
	return nil
}

func (fa *FocusArea) MarshalBinary() ([]byte, error) {
	buf := make([]byte, fa.MarshalSize())
	return buf, fa.MarshalInto(buf)
}

func (fa *FocusArea) UnmarshalBinary(buf []byte) error {
	if len(buf) < fa.MarshalSize() {
		return io.ErrShortBuffer
	}
	fa.H = int32(binary.NativeEndian.Uint32(buf[0:4]))
	fa.V = int32(binary.NativeEndian.Uint32(buf[4:8]))
	fa.Size = int32(binary.NativeEndian.Uint32(buf[8:12]))
	return nil
}

// FocusPosCap reports the lens drive range: pulse counts at the infinity
// and macro ends, the over-search margins beyond them, the depth of field
// at the current aperture and the smallest drive step.
type FocusPosCap struct {
	InfinityPulse      int32
	MacroPulse         int32
	OverSearchInfinity int32
	OverSearchMacro    int32
	DepthOfField       int32
	MinDriveStep       int32
}

func (fpc *FocusPosCap) LayoutName() string { return LayoutFocusPosCap }

func (fpc *FocusPosCap) MarshalSize() int { return 24 }

func (fpc *FocusPosCap) MarshalInto(buf []byte) error {
	if len(buf) < fpc.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(fpc.InfinityPulse))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(fpc.MacroPulse))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(fpc.OverSearchInfinity))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(fpc.OverSearchMacro))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(fpc.DepthOfField))
	binary.NativeEndian.PutUint32(buf[20:24], uint32(fpc.MinDriveStep))
	return nil
}

func (fpc *FocusPosCap) MarshalBinary() ([]byte, error) {
	buf := make([]byte, fpc.MarshalSize())
	return buf, fpc.MarshalInto(buf)
}

func (fpc *FocusPosCap) UnmarshalBinary(buf []byte) error {
	if len(buf) < fpc.MarshalSize() {
		return io.ErrShortBuffer
	}
	fpc.InfinityPulse = int32(binary.NativeEndian.Uint32(buf[0:4]))
	fpc.MacroPulse = int32(binary.NativeEndian.Uint32(buf[4:8]))
	fpc.OverSearchInfinity = int32(binary.NativeEndian.Uint32(buf[8:12]))
	fpc.OverSearchMacro = int32(binary.NativeEndian.Uint32(buf[12:16]))
	fpc.DepthOfField = int32(binary.NativeEndian.Uint32(buf[16:20]))
	fpc.MinDriveStep = int32(binary.NativeEndian.Uint32(buf[20:24]))
	return nil
}

// FocusLimiterRange holds the two stored limiter endpoints in lens pulses.
type FocusLimiterRange struct {
	PosA int32
	PosB int32
}

func (flr *FocusLimiterRange) LayoutName() string { return LayoutFocusLimiterRange }

func (flr *FocusLimiterRange) MarshalSize() int { return 8 }

func (flr *FocusLimiterRange) MarshalInto(buf []byte) error {
	if len(buf) < flr.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(flr.PosA))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(flr.PosB))
	return nil
}

func (flr *FocusLimiterRange) MarshalBinary() ([]byte, error) {
	buf := make([]byte, flr.MarshalSize())
	return buf, flr.MarshalInto(buf)
}

func (flr *FocusLimiterRange) UnmarshalBinary(buf []byte) error {
	if len(buf) < flr.MarshalSize() {
		return io.ErrShortBuffer
	}
	flr.PosA = int32(binary.NativeEndian.Uint32(buf[0:4]))
	flr.PosB = int32(binary.NativeEndian.Uint32(buf[4:8]))
	return nil
}

// FocusLimiterIndicator is the live limiter readout: current position, the
// depth-of-field ends and the stored endpoints. Valid is zero while the
// limiter is cleared.
type FocusLimiterIndicator struct {
	Current int32
	DOFNear int32
	DOFFar  int32
	PosA    int32
	PosB    int32
	Valid   int32
}

func (fli *FocusLimiterIndicator) LayoutName() string { return LayoutFocusLimiterIndicator }

func (fli *FocusLimiterIndicator) MarshalSize() int { return 24 }

func (fli *FocusLimiterIndicator) MarshalInto(buf []byte) error {
	if len(buf) < fli.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(fli.Current))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(fli.DOFNear))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(fli.DOFFar))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(fli.PosA))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(fli.PosB))
	binary.NativeEndian.PutUint32(buf[20:24], uint32(fli.Valid))
	return nil
}

func (fli *FocusLimiterIndicator) MarshalBinary() ([]byte, error) {
	buf := make([]byte, fli.MarshalSize())
	return buf, fli.MarshalInto(buf)
}

func (fli *FocusLimiterIndicator) UnmarshalBinary(buf []byte) error {
	if len(buf) < fli.MarshalSize() {
		return io.ErrShortBuffer
	}
	fli.Current = int32(binary.NativeEndian.Uint32(buf[0:4]))
	fli.DOFNear = int32(binary.NativeEndian.Uint32(buf[4:8]))
	fli.DOFFar = int32(binary.NativeEndian.Uint32(buf[8:12]))
	fli.PosA = int32(binary.NativeEndian.Uint32(buf[12:16]))
	fli.PosB = int32(binary.NativeEndian.Uint32(buf[16:20]))
	fli.Valid = int32(binary.NativeEndian.Uint32(buf[20:24]))
	return nil
}

// AFZoneCustom carries a custom zone position together with the grid
// extents the body accepts for it.
type AFZoneCustom struct {
	H    int32
	V    int32
	HMin int32
	HMax int32
	VMin int32
	VMax int32
}

func (azc *AFZoneCustom) LayoutName() string { return LayoutAFZoneCustom }

func (azc *AFZoneCustom) MarshalSize() int { return 24 }

func (azc *AFZoneCustom) MarshalInto(buf []byte) error {
	if len(buf) < azc.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(azc.H))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(azc.V))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(azc.HMin))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(azc.HMax))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(azc.VMin))
	binary.NativeEndian.PutUint32(buf[20:24], uint32(azc.VMax))
	return nil
}

func (azc *AFZoneCustom) MarshalBinary() ([]byte, error) {
	buf := make([]byte, azc.MarshalSize())
	return buf, azc.MarshalInto(buf)
}

func (azc *AFZoneCustom) UnmarshalBinary(buf []byte) error {
	if len(buf) < azc.MarshalSize() {
		return io.ErrShortBuffer
	}
	azc.H = int32(binary.NativeEndian.Uint32(buf[0:4]))
	azc.V = int32(binary.NativeEndian.Uint32(buf[4:8]))
	azc.HMin = int32(binary.NativeEndian.Uint32(buf[8:12]))
	azc.HMax = int32(binary.NativeEndian.Uint32(buf[12:16]))
	azc.VMin = int32(binary.NativeEndian.Uint32(buf[16:20]))
	azc.VMax = int32(binary.NativeEndian.Uint32(buf[20:24]))
	return nil
}

// FaceFrame is one detected face or eye reported during live view.
// Type carries a FaceFrameType encoding; Selected is non-zero for the
// frame the body focused on.
type FaceFrame struct {
	ID         int32
	Timestamp  int32
	X          int32
	Y          int32
	Width      int32
	Height     int32
	ColorIndex int32
	Type       int32
	Likeness   int32
	Selected   int32
}

func (ff *FaceFrame) LayoutName() string { return LayoutFaceFrame }

func (ff *FaceFrame) MarshalSize() int { return 40 }

func (ff *FaceFrame) MarshalInto(buf []byte) error {
	if len(buf) < ff.MarshalSize() {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(ff.ID))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(ff.Timestamp))
	binary.NativeEndian.PutUint32(buf[8:12], uint32(ff.X))
	binary.NativeEndian.PutUint32(buf[12:16], uint32(ff.Y))
	binary.NativeEndian.PutUint32(buf[16:20], uint32(ff.Width))
	binary.NativeEndian.PutUint32(buf[20:24], uint32(ff.Height))
	binary.NativeEndian.PutUint32(buf[24:28], uint32(ff.ColorIndex))
	binary.NativeEndian.PutUint32(buf[28:32], uint32(ff.Type))
	binary.NativeEndian.PutUint32(buf[32:36], uint32(ff.Likeness))
	binary.NativeEndian.PutUint32(buf[36:40], uint32(ff.Selected))
	return nil
}

func (ff *FaceFrame) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ff.MarshalSize())
	return buf, ff.MarshalInto(buf)
}

func (ff *FaceFrame) UnmarshalBinary(buf []byte) error {
	if len(buf) < ff.MarshalSize() {
		return io.ErrShortBuffer
	}
	ff.ID = int32(binary.NativeEndian.Uint32(buf[0:4]))
	ff.Timestamp = int32(binary.NativeEndian.Uint32(buf[4:8]))
	ff.X = int32(binary.NativeEndian.Uint32(buf[8:12]))
	ff.Y = int32(binary.NativeEndian.Uint32(buf[12:16]))
	ff.Width = int32(binary.NativeEndian.Uint32(buf[16:20]))
	ff.Height = int32(binary.NativeEndian.Uint32(buf[20:24]))
	ff.ColorIndex = int32(binary.NativeEndian.Uint32(buf[24:28]))
	ff.Type = int32(binary.NativeEndian.Uint32(buf[28:32]))
	ff.Likeness = int32(binary.NativeEndian.Uint32(buf[32:36]))
	ff.Selected = int32(binary.NativeEndian.Uint32(buf[36:40]))
	return nil
}
