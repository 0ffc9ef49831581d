// Package motion animates math3d vectors with damped springs and projectiles.
package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Spring3 tracks a position and velocity in 3D and pulls them toward a
// target with a harmonica spring applied independently to each axis.
type Spring3 struct {
	Position math3d.Vec3
	Velocity math3d.Vec3
	spring   harmonica.Spring
}

// NewSpring3 creates a spring stepped at the given frame rate.
// Frequency controls speed; damping 1.0 is critically damped (no overshoot),
// below 1.0 oscillates and above 1.0 approaches slowly.
func NewSpring3(fps int, frequency, damping float64) *Spring3 {
	return &Spring3{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring one frame toward target.
func (s *Spring3) Update(target math3d.Vec3) {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, target.Y)
	s.Position.Z, s.Velocity.Z = s.spring.Update(s.Position.Z, s.Velocity.Z, target.Z)
}

// Impulse adds v to the current velocity.
func (s *Spring3) Impulse(v math3d.Vec3) {
	s.Velocity.AddAssign(v)
}

// Reset places the spring at rest at p.
func (s *Spring3) Reset(p math3d.Vec3) {
	s.Position.Set(p)
	s.Velocity.Set(math3d.Zero3())
}

// Settled reports whether the spring is within eps of target and
// its speed is below eps.
func (s *Spring3) Settled(target math3d.Vec3, eps float64) bool {
	return s.Position.Distance(target) < eps && s.Velocity.Len() < eps
}
