package skytracer

import (
	"image"
	"image/png"
	"os"
)

// toNRGBA converts the frame to an 8-bit image with the same channel mapping
// as the PPM writer (clamped).
func toNRGBA(f *Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		rowOff := j * img.Stride
		for i := 0; i < f.Width; i++ {
			c := NRGBA(f.At(i, j))
			p := rowOff + i*4
			img.Pix[p+0] = c.R
			img.Pix[p+1] = c.G
			img.Pix[p+2] = c.B
			img.Pix[p+3] = c.A
		}
	}
	return img
}

// SavePNG writes the frame as a lossless 8-bit PNG.
func SavePNG(f *Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, toNRGBA(f)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
