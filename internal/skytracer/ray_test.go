package skytracer

import "testing"

func TestRayZeroValue(t *testing.T) {
	var r Ray
	if r.Origin() != (Point3{}) || r.Direction() != (Vec3{}) {
		t.Fatalf("zero ray not at origin: %+v", r)
	}
	if r.At(5) != (Point3{}) {
		t.Fatalf("zero ray moved: %+v", r.At(5))
	}
}

func TestRayAt(t *testing.T) {
	o := Point3{1, 2, 3}
	d := Vec3{0.5, -1, 2}
	r := NewRay(o, d)
	if r.Origin() != o || r.Direction() != d {
		t.Fatalf("accessors mismatch: %+v", r)
	}
	if r.At(0) != o {
		t.Fatalf("At(0) != origin: %+v", r.At(0))
	}
	if r.At(1) != o.Add(d) {
		t.Fatalf("At(1) != origin+direction: %+v", r.At(1))
	}
	if got := r.At(-2); got != (Point3{0, 4, -1}) {
		t.Fatalf("At(-2) mismatch: %+v", got)
	}
}

// At is affine, not linear: at(t1)+at(t2)-at(0) == at(t1+t2) only when it
// passes through the origin, so with a non-zero origin the additive form
// must fail.
func TestRayAtNotAdditive(t *testing.T) {
	r := NewRay(Point3{1, 1, 1}, Vec3{1, 0, 0})
	t1, t2 := Real(2), Real(3)
	additive := r.At(t1).Add(r.At(t2))
	if additive == r.At(t1+t2) {
		t.Fatalf("At behaved additively: %+v", additive)
	}
	if affine := r.At(t1).Add(r.At(t2)).Sub(r.At(0)); affine != r.At(t1+t2) {
		t.Fatalf("affine identity broken: %+v vs %+v", affine, r.At(t1+t2))
	}
}
