package skytracer

import (
	"fmt"
	"image/color"
	"io"
	"math"
)

// Color is an RGB intensity, nominally in [0,1] per channel.
type Color = Vec3

// intensity maps [0,1] to [0,255]; 255.999 keeps 1.0 from landing on 256.
const intensity = 255.999

func toByte(c Real) int { return int(math.Floor(intensity * c)) }

// clamp01 clamps each channel to [0,1].
func clamp01(c Color) Color {
	return Color{clamp(c.X, 0, 1), clamp(c.Y, 0, 1), clamp(c.Z, 0, 1)}
}

// WriteColor writes one "R G B" line, clamping channels to [0,1] first.
func WriteColor(w io.Writer, c Color) error {
	return WriteColorUnclamped(w, clamp01(c))
}

// WriteColorUnclamped writes one "R G B" line without clamping, so
// out-of-range channels produce values outside 0..255.
func WriteColorUnclamped(w io.Writer, c Color) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", toByte(c.X), toByte(c.Y), toByte(c.Z))
	return err
}

// NRGBA converts to an opaque 8-bit image color using the WriteColor mapping.
func NRGBA(c Color) color.NRGBA {
	c = clamp01(c)
	return color.NRGBA{
		R: uint8(toByte(c.X)),
		G: uint8(toByte(c.Y)),
		B: uint8(toByte(c.Z)),
		A: 255,
	}
}
