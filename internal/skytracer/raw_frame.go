package skytracer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the unclamped frame: int32 width and height
// (little-endian) followed by width*height*3 float64 values, R G B per pixel.
func (f *Frame) SaveRawRGB64(path string) error {
	// Sanity checks
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("negative dimensions: width=%d height=%d", f.Width, f.Height)
	}
	exp64 := int64(f.Width) * int64(f.Height)
	if int64(len(f.Pix)) != exp64 {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (width*height)", len(f.Pix), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	// Header: width, height as int32 (little-endian)
	if err := binary.Write(w, binary.LittleEndian, int32(f.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(f.Height)); err != nil {
		return err
	}

	// Body: Vec3 is three float64s, so the slice encodes as R,G,B per pixel.
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, f.Pix); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return out.Sync()
}
