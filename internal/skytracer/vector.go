package skytracer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3-component vector used for directions, positions and colors.
// The zero value is the zero vector.
type Vec3 struct {
	X, Y, Z Real
}

func NewVec3(x, y, z Real) Vec3 { return Vec3{x, y, z} }

// Index returns component i. i must be 0, 1 or 2; anything else panics.
func (v Vec3) Index(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec3 index out of range: %d", i))
}

// SetIndex replaces component i in place. Same precondition as Index.
func (v *Vec3) SetIndex(i int, x Real) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(fmt.Sprintf("vec3 index out of range: %d", i))
	}
}

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// AddAssign adds w to v in place.
func (v *Vec3) AddAssign(w Vec3) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

func (v *Vec3) MulAssign(t Real) {
	v.X *= t
	v.Y *= t
	v.Z *= t
}

// DivAssign scales by 1/t; t == 0 yields infinities.
func (v *Vec3) DivAssign(t Real) { v.MulAssign(1 / t) }

// Vector functions
func (a Vec3) Add(b Vec3) Vec3    { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3    { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) MulVec(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (v Vec3) Mul(t Real) Vec3    { return Vec3{t * v.X, t * v.Y, t * v.Z} }
func (v Vec3) Div(t Real) Vec3    { return v.Mul(1 / t) }

// Scale is Mul with the scalar first.
func Scale(t Real, v Vec3) Vec3 { return v.Mul(t) }

// Dot returns the dot product between two vectors.
func (a Vec3) Dot(b Vec3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// LenSquared avoids the sqrt when only comparisons are needed.
func (v Vec3) LenSquared() Real { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() Real { return math.Sqrt(v.LenSquared()) }

// Unit returns v divided by its length.
// Unlike a guarded normalize, a zero vector gives NaN components.
func (v Vec3) Unit() Vec3 { return v.Div(v.Len()) }

func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

// R3 converts to gonum's r3.Vec.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func Vec3FromR3(p r3.Vec) Vec3 { return Vec3{p.X, p.Y, p.Z} }
