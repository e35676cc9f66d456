package skytracer

// Ray is an immutable origin + direction pair. The zero value has both at
// the origin.
type Ray struct {
	orig Point3
	dir  Vec3
}

func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{orig: origin, dir: direction}
}

func (r Ray) Origin() Point3  { return r.orig }
func (r Ray) Direction() Vec3 { return r.dir }

// At returns origin + t*direction. Any finite t is valid, negative t lies
// behind the origin.
func (r Ray) At(t Real) Point3 {
	return r.orig.Add(r.dir.Mul(t))
}
