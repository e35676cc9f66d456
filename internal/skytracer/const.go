package skytracer

type Real = float64

// Channel indices for readability.
const (
	ChR            = 0
	ChG            = 1
	ChB            = 2
	AspectRatio    = 16.0 / 9.0
	ImageWidth     = 400
	FocalLength    = 1.0
	ViewportHeight = 2.0
	MaxChannel     = 255 // PPM max color value
	PNGOut         = "image.png"
	GIFOut         = "image.gif"
	RAWOut         = "image.raw"
)

var (
	// sky gradient endpoints
	white   = Color{1, 1, 1}
	skyBlue = Color{0.5, 0.7, 1.0}
)
