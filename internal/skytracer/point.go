package skytracer

// Point3 names a position in 3D space. It is the same type as Vec3, so
// points and vectors mix freely in arithmetic.
type Point3 = Vec3
