package skytracer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CameraCfg holds the camera constants. Zero values mean "use the default".
type CameraCfg struct {
	ImageWidth     int    `json:"imageWidth"`
	AspectRatio    Real   `json:"aspectRatio"`
	FocalLength    Real   `json:"focalLength"`
	ViewportHeight Real   `json:"viewportHeight"`
	Center         Point3 `json:"center"`
}

type Config struct {
	Camera  CameraCfg `json:"camera"`
	Workers int       `json:"workers,omitempty"` // 0 => runtime.NumCPU()
	PNGOut  string    `json:"pngOut,omitempty"`
	GIFOut  string    `json:"gifOut,omitempty"`
	RAWOut  string    `json:"rawOut,omitempty"`
	Clamp   *bool     `json:"clamp,omitempty"` // clamp channels to [0,1] before scaling; default true
}

// DefaultConfig is the fixed 16:9, 400px wide setup.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Camera.ImageWidth == 0 {
		cfg.Camera.ImageWidth = ImageWidth
	}
	if cfg.Camera.AspectRatio == 0 {
		cfg.Camera.AspectRatio = AspectRatio
	}
	if cfg.Camera.FocalLength == 0 {
		cfg.Camera.FocalLength = FocalLength
	}
	if cfg.Camera.ViewportHeight == 0 {
		cfg.Camera.ViewportHeight = ViewportHeight
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.RAWOut == "" {
		cfg.RAWOut = RAWOut
	}
	if cfg.Clamp == nil {
		on := true
		cfg.Clamp = &on
	}
}

// loadConfig reads a JSON config; an empty path returns the defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		DebugLog("No config given, using defaults")
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	cfg.applyDefaults()
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}
	DebugLog("Loaded config from %s: width=%d, aspect=%f, focal=%f, viewportHeight=%f, workers=%d",
		path, cfg.Camera.ImageWidth, cfg.Camera.AspectRatio, cfg.Camera.FocalLength, cfg.Camera.ViewportHeight, cfg.Workers)
	return &cfg, nil
}
