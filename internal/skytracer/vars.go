package skytracer

var (
	Debug    = false // set to true for verbose debug output (stderr)
	Progress = false // set to true to print render progress (stderr)
	PNG      = false // set to true to also save a PNG of the frame
	GIF      = false // set to true to also save a GIF of the frame
	RAW      = false // set to true to also save the unclamped float64 frame
	NoClamp  = false // set to true to write the PPM without clamping channels
)
