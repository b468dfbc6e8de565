package records

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// FolderInfo describes the active capture folder: the five-character
// suffix with its terminating zero byte, the folder number, the highest
// frame number inside it and a FolderStatus encoding.
type FolderInfo struct {
	Suffix   [6]byte
	Number   int32
	MaxFrame int32
	Status   int32
}

func (fi *FolderInfo) LayoutName() string { return LayoutFolderInfo }

func (fi *FolderInfo) MarshalSize() int { return 18 }

func (fi *FolderInfo) MarshalInto(buf []byte) error {
	if len(buf) < fi.MarshalSize() {
		return io.ErrShortBuffer
	}
	copy(buf[0:6], fi.Suffix[:])
	binary.NativeEndian.PutUint32(buf[6:10], uint32(fi.Number))
	binary.NativeEndian.PutUint32(buf[10:14], uint32(fi.MaxFrame))
	binary.NativeEndian.PutUint32(buf[14:18], uint32(fi.Status))
	return nil
}

func (fi *FolderInfo) MarshalBinary() ([]byte, error) {
	buf := make([]byte, fi.MarshalSize())
	return buf, fi.MarshalInto(buf)
}

func (fi *FolderInfo) UnmarshalBinary(buf []byte) error {
	if len(buf) < fi.MarshalSize() {
		return io.ErrShortBuffer
	}
	copy(fi.Suffix[:], buf[0:6])
	fi.Number = int32(binary.NativeEndian.Uint32(buf[6:10]))
	fi.MaxFrame = int32(binary.NativeEndian.Uint32(buf[10:14]))
	fi.Status = int32(binary.NativeEndian.Uint32(buf[14:18]))
	return nil
}

// SuffixString returns the suffix up to its terminating zero.
func (fi *FolderInfo) SuffixString() string {
	if i := bytes.IndexByte(fi.Suffix[:], 0); i >= 0 {
		return string(fi.Suffix[:i])
	}
	return string(fi.Suffix[:])
}

// SetSuffix stores a suffix of at most five characters; the sixth byte
// stays the terminator.
func (fi *FolderInfo) SetSuffix(s string) error {
	if len(s) > len(fi.Suffix)-1 {
		return fmt.Errorf("suffix %q longer than %d characters", s, len(fi.Suffix)-1)
	}
	fi.Suffix = [6]byte{}
	copy(fi.Suffix[:], s)
	return nil
}
