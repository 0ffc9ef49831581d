package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Gravity is a constant downward acceleration in a Y-up coordinate system
// with the origin at the bottom left.
var Gravity = fromVector(harmonica.Gravity)

// TerminalGravity is Gravity for a Y-down coordinate system such as a
// terminal, where the origin is at the top left.
var TerminalGravity = fromVector(harmonica.TerminalGravity)

// Projectile integrates constant-acceleration motion one frame at a time.
type Projectile struct {
	p *harmonica.Projectile
}

// NewProjectile creates a projectile stepped at the given frame rate.
func NewProjectile(fps int, pos, vel, acc math3d.Vec3) *Projectile {
	return &Projectile{
		p: harmonica.NewProjectile(
			harmonica.FPS(fps),
			harmonica.Point{X: pos.X, Y: pos.Y, Z: pos.Z},
			toVector(vel),
			toVector(acc),
		),
	}
}

// Update advances one frame and returns the new position.
func (p *Projectile) Update() math3d.Vec3 {
	return fromPoint(p.p.Update())
}

// Position returns the current position.
func (p *Projectile) Position() math3d.Vec3 {
	return fromPoint(p.p.Position())
}

// Velocity returns the current velocity.
func (p *Projectile) Velocity() math3d.Vec3 {
	return fromVector(p.p.Velocity())
}

// Acceleration returns the constant acceleration.
func (p *Projectile) Acceleration() math3d.Vec3 {
	return fromVector(p.p.Acceleration())
}

func toVector(v math3d.Vec3) harmonica.Vector {
	return harmonica.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVector(v harmonica.Vector) math3d.Vec3 {
	return math3d.V3(v.X, v.Y, v.Z)
}

func fromPoint(p harmonica.Point) math3d.Vec3 {
	return math3d.V3(p.X, p.Y, p.Z)
}
