package skytracer

import (
	"math"
	"testing"
)

func testCamera(t *testing.T, width int, aspect Real) *Camera {
	t.Helper()
	cam, err := NewCamera(CameraCfg{
		ImageWidth:     width,
		AspectRatio:    aspect,
		FocalLength:    FocalLength,
		ViewportHeight: ViewportHeight,
	})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return cam
}

func TestImageHeight(t *testing.T) {
	if h := imageHeight(400, 16.0/9.0); h != 225 {
		t.Fatalf("400 @ 16:9 => %d, want 225", h)
	}
	if h := imageHeight(4, 1); h != 4 {
		t.Fatalf("4 @ 1:1 => %d, want 4", h)
	}
	// rounds to 0 => clamped to 1
	for _, aspect := range []Real{10, 100, 1e9} {
		if h := imageHeight(4, aspect); h != 1 {
			t.Fatalf("4 @ %v => %d, want 1", aspect, h)
		}
	}
}

func TestCameraGeometry(t *testing.T) {
	cam := testCamera(t, 4, 1)
	if cam.ImageHeight != 4 || cam.ViewportWidth != 2 {
		t.Fatalf("derived sizes wrong: h=%d vw=%v", cam.ImageHeight, cam.ViewportWidth)
	}
	if cam.pixelDeltaU != (Vec3{0.5, 0, 0}) || cam.pixelDeltaV != (Vec3{0, -0.5, 0}) {
		t.Fatalf("pixel deltas wrong: %+v %+v", cam.pixelDeltaU, cam.pixelDeltaV)
	}
	if cam.upperLeft != (Point3{-1, 1, -1}) {
		t.Fatalf("upper left wrong: %+v", cam.upperLeft)
	}
	if cam.pixel00 != (Point3{-0.75, 0.75, -1}) {
		t.Fatalf("pixel00 wrong: %+v", cam.pixel00)
	}
	if p := cam.PixelCenter(3, 3); p != (Point3{0.75, -0.75, -1}) {
		t.Fatalf("last pixel center wrong: %+v", p)
	}
	r := cam.RayFor(1, 2)
	if r.Origin() != (Point3{}) || r.Direction() != (Vec3{-0.25, -0.25, -1}) {
		t.Fatalf("RayFor wrong: %+v", r)
	}
}

func TestCameraUsesActualPixelRatio(t *testing.T) {
	// 10/3 rounds to 3, so the viewport must be 2*10/3 wide, not 2*3.
	cam := testCamera(t, 10, 3)
	if cam.ImageHeight != 3 {
		t.Fatalf("height: %d", cam.ImageHeight)
	}
	if math.Abs(cam.ViewportWidth-2*10.0/3.0) > 1e-12 {
		t.Fatalf("viewport width: %v", cam.ViewportWidth)
	}
}

func TestCameraOffCenter(t *testing.T) {
	cam, err := NewCamera(CameraCfg{ImageWidth: 4, AspectRatio: 1, FocalLength: 1, ViewportHeight: 2, Center: Point3{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	r := cam.RayFor(0, 0)
	if r.Origin() != (Point3{1, 2, 3}) || r.Direction() != (Vec3{-0.75, 0.75, -1}) {
		t.Fatalf("ray direction must not depend on the center: %+v", r)
	}
}

func TestNewCameraValidation(t *testing.T) {
	bad := []CameraCfg{
		{ImageWidth: 0, AspectRatio: 1, FocalLength: 1, ViewportHeight: 2},
		{ImageWidth: -5, AspectRatio: 1, FocalLength: 1, ViewportHeight: 2},
		{ImageWidth: 4, AspectRatio: 0, FocalLength: 1, ViewportHeight: 2},
		{ImageWidth: 4, AspectRatio: math.NaN(), FocalLength: 1, ViewportHeight: 2},
		{ImageWidth: 4, AspectRatio: math.Inf(1), FocalLength: 1, ViewportHeight: 2},
		{ImageWidth: 4, AspectRatio: 1, FocalLength: -1, ViewportHeight: 2},
		{ImageWidth: 4, AspectRatio: 1, FocalLength: 1, ViewportHeight: 0},
	}
	for i, cfg := range bad {
		if cam, err := NewCamera(cfg); err == nil {
			t.Fatalf("case %d: expected error, got %+v", i, cam)
		}
	}
}

func TestRayColor(t *testing.T) {
	up := RayColor(NewRay(Point3{}, Vec3{0, 3, 0}))
	if up.Sub(skyBlue).Len() > 1e-12 {
		t.Fatalf("straight up should be sky blue: %v", up)
	}
	down := RayColor(NewRay(Point3{}, Vec3{0, -0.1, 0}))
	if down.Sub(white).Len() > 1e-12 {
		t.Fatalf("straight down should be white: %v", down)
	}
	level := RayColor(NewRay(Point3{5, 5, 5}, Vec3{0, 0, -1}))
	if want := (Color{0.75, 0.85, 1}); level.Sub(want).Len() > 1e-12 {
		t.Fatalf("horizon should be the midpoint: %v", level)
	}
	// only the direction matters, not its magnitude or the origin
	a := RayColor(NewRay(Point3{}, Vec3{1, 2, -3}))
	b := RayColor(NewRay(Point3{9, -9, 1}, Vec3{2, 4, -6}))
	if a.Sub(b).Len() > 1e-12 {
		t.Fatalf("gradient depends on more than direction: %v vs %v", a, b)
	}
}
