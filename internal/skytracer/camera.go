package skytracer

import (
	"fmt"
	"math"
)

// Camera is a pinhole camera looking down -Z. All derived quantities are
// computed once by NewCamera and never change.
type Camera struct {
	AspectRatio    Real
	ImageWidth     int
	ImageHeight    int
	FocalLength    Real
	ViewportHeight Real
	ViewportWidth  Real
	Center         Point3

	viewportU   Vec3
	viewportV   Vec3
	pixelDeltaU Vec3
	pixelDeltaV Vec3
	upperLeft   Point3
	pixel00     Point3
}

// imageHeight derives the pixel height from width and aspect ratio, never below 1.
func imageHeight(width int, aspect Real) int {
	return imax(1, int(math.Round(Real(width)/aspect)))
}

// NewCamera validates cfg and precomputes the viewport geometry.
func NewCamera(cfg CameraCfg) (*Camera, error) {
	if cfg.ImageWidth <= 0 {
		return nil, fmt.Errorf("image width must be > 0, got %d", cfg.ImageWidth)
	}
	if !(cfg.AspectRatio > 0) || !isFinite(cfg.AspectRatio) {
		return nil, fmt.Errorf("aspect ratio must be finite and > 0, got %v", cfg.AspectRatio)
	}
	if !(cfg.FocalLength > 0) || !isFinite(cfg.FocalLength) {
		return nil, fmt.Errorf("focal length must be finite and > 0, got %v", cfg.FocalLength)
	}
	if !(cfg.ViewportHeight > 0) || !isFinite(cfg.ViewportHeight) {
		return nil, fmt.Errorf("viewport height must be finite and > 0, got %v", cfg.ViewportHeight)
	}

	c := &Camera{
		AspectRatio:    cfg.AspectRatio,
		ImageWidth:     cfg.ImageWidth,
		ImageHeight:    imageHeight(cfg.ImageWidth, cfg.AspectRatio),
		FocalLength:    cfg.FocalLength,
		ViewportHeight: cfg.ViewportHeight,
		Center:         cfg.Center,
	}
	// Use the real pixel ratio, not the nominal one: the height was rounded.
	c.ViewportWidth = c.ViewportHeight * (Real(c.ImageWidth) / Real(c.ImageHeight))

	// Image rows go down while world Y goes up.
	c.viewportU = Vec3{c.ViewportWidth, 0, 0}
	c.viewportV = Vec3{0, -c.ViewportHeight, 0}

	c.pixelDeltaU = c.viewportU.Div(Real(c.ImageWidth))
	c.pixelDeltaV = c.viewportV.Div(Real(c.ImageHeight))

	c.upperLeft = c.Center.
		Sub(Vec3{0, 0, c.FocalLength}).
		Sub(c.viewportU.Div(2)).
		Sub(c.viewportV.Div(2))
	c.pixel00 = c.upperLeft.Add(Scale(0.5, c.pixelDeltaU.Add(c.pixelDeltaV)))

	DebugLog("Camera: %dx%d, viewport=%.6gx%.6g, focal=%.6g, pixel00=(%v)",
		c.ImageWidth, c.ImageHeight, c.ViewportWidth, c.ViewportHeight, c.FocalLength, c.pixel00)
	return c, nil
}

// PixelCenter returns the world-space center of pixel (i, j), column i, row j.
func (c *Camera) PixelCenter(i, j int) Point3 {
	return c.pixel00.Add(c.pixelDeltaU.Mul(Real(i))).Add(c.pixelDeltaV.Mul(Real(j)))
}

// RayFor returns the primary ray from the camera center through pixel (i, j).
func (c *Camera) RayFor(i, j int) Ray {
	return NewRay(c.Center, c.PixelCenter(i, j).Sub(c.Center))
}

// RayColor is the sky gradient: white at the bottom blending to sky blue at
// the top, driven only by the normalized direction's Y.
func RayColor(r Ray) Color {
	unit := r.Direction().Unit()
	a := 0.5 * (unit.Y + 1.0)
	return white.Mul(1.0 - a).Add(skyBlue.Mul(a))
}
