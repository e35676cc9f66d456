package skytracer

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveGIF writes the frame as a single-frame GIF, quantized to the Plan9
// palette with Floyd-Steinberg dithering.
func SaveGIF(f *Frame, path string) error {
	rgba := toNRGBA(f)
	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return gif.EncodeAll(out, &gif.GIF{
		Image: []*image.Paletted{pimg},
		Delay: []int{0},
	})
}
