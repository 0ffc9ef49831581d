package math3d

import "gonum.org/v1/gonum/spatial/r3"

// FromR3 converts a gonum r3.Vec into a Vec3.
func FromR3(v r3.Vec) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// R3 returns a as a gonum r3.Vec for use with gonum's spatial packages.
func (a Vec3) R3() r3.Vec {
	return r3.Vec{X: a.X, Y: a.Y, Z: a.Z}
}
