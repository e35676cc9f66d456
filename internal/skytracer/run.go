package skytracer

import (
	"io"
	"time"
)

// Run renders the configured camera and writes the PPM image to w. Extra
// outputs (PNG, GIF, RAW) are written to files when their switches are set.
func Run(cfgPath string, w io.Writer) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	cam, err := NewCamera(cfg.Camera)
	if err != nil {
		return err
	}

	clampPPM := *cfg.Clamp && !NoClamp
	start := time.Now()
	f, err := RenderTo(w, cam, cfg.Workers, clampPPM)
	if err != nil {
		return err
	}
	DebugLog("Pixels: %d, time: %s", f.Width*f.Height, time.Since(start))

	if Debug {
		raysStats()
	}

	if PNG {
		if err := SavePNG(f, cfg.PNGOut); err != nil {
			return err
		}
		DebugLog("Saved PNG: %s", cfg.PNGOut)
	}
	if GIF {
		if err := SaveGIF(f, cfg.GIFOut); err != nil {
			return err
		}
		DebugLog("Saved GIF: %s", cfg.GIFOut)
	}
	if RAW {
		if err := f.SaveRawRGB64(cfg.RAWOut); err != nil {
			return err
		}
		DebugLog("Saved RAW frame: %s", cfg.RAWOut)
	}
	return nil
}
