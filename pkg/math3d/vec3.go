// Package math3d provides a three-dimensional vector type and its algebra.
package math3d

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// Vec3 represents a point or displacement in 3D cartesian space.
//
// Methods with a value receiver never modify their operands. The *Assign
// methods and Set modify the receiver in place and return it for chaining.
// No operation validates its input: NaN and Inf propagate as IEEE-754 says.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Copy returns an independent vector with the same components.
func (a Vec3) Copy() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// Components returns the components in X, Y, Z order.
func (a Vec3) Components() [3]float64 {
	return [3]float64{a.X, a.Y, a.Z}
}

// All returns a sequence yielding X, Y and Z in order.
func (a Vec3) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range a.Components() {
			if !yield(c) {
				return
			}
		}
	}
}

// String formats the vector as "(x, y, z)".
func (a Vec3) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatComponent(a.X))
	sb.WriteString(", ")
	sb.WriteString(formatComponent(a.Y))
	sb.WriteString(", ")
	sb.WriteString(formatComponent(a.Z))
	sb.WriteByte(')')
	return sb.String()
}

// formatComponent renders f with the fewest digits that round-trip. Decimal
// exponents in [-4, 16) print in positional form, keeping a trailing ".0" on
// integral values so 1 prints as "1.0"; anything else uses exponent form.
func formatComponent(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Set overwrites v with the components of o.
func (v *Vec3) Set(o Vec3) *Vec3 {
	v.X = o.X
	v.Y = o.Y
	v.Z = o.Z
	return v
}

// AddAssign adds o to v in place.
func (v *Vec3) AddAssign(o Vec3) *Vec3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vec3) SubAssign(o Vec3) *Vec3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// MulAssign scales v by s in place.
func (v *Vec3) MulAssign(s float64) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// DivAssign divides v by s in place. A zero s yields Inf or NaN components.
func (v *Vec3) DivAssign(s float64) *Vec3 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	c := a.Copy()
	c.AddAssign(b)
	return c
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	c := a.Copy()
	c.SubAssign(b)
	return c
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	c := a.Copy()
	c.MulAssign(s)
	return c
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float64) Vec3 {
	c := a.Copy()
	c.DivAssign(s)
	return c
}

// Pos returns +a, an equal copy.
func (a Vec3) Pos() Vec3 {
	return a
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return a.Scale(-1)
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
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

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return Hypot3(a.X, a.Y, a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return Hypot3(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

// Equal reports whether every component of a equals the one in b.
// Like ==, a vector holding NaN is never equal to anything.
func (a Vec3) Equal(b Vec3) bool {
	return a == b
}

// ApproxEqual reports whether each component of a is within eps of b.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// Add returns a + b.
func Add(a, b Vec3) Vec3 { return a.Add(b) }

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 { return a.Sub(b) }

// Scale returns s * a, the scalar-first form of a.Scale(s).
func Scale(s float64, a Vec3) Vec3 { return a.Scale(s) }

// Dot returns a · b.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// Cross returns a × b.
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Distance returns the distance between a and b.
func Distance(a, b Vec3) float64 { return a.Distance(b) }
