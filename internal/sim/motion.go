package sim

import (
	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
)

// Motion advances entity angles along their rings and owns the polar
// frame conversion. All positions go through Position so there is a
// single frame-of-reference (ring radius + global rotation offset).
type Motion struct {
	cfg config.PhysicsConfig
}

// NewMotion creates a motion system from physics config.
func NewMotion(cfg config.PhysicsConfig) Motion {
	return Motion{cfg: cfg}
}

// Advance moves an entity by one step. The angle decreases with the
// entity's angular velocity scaled by dt and the global speed factor
// (slow-mo and special modifiers), and stays normalized to [0, 2π).
func (m Motion) Advance(e *Entity, dt, speedFactor float64) {
	e.Angle = core.NormalizeAngle(e.Angle - e.AngularVel*dt*speedFactor)
}

// SpawnVelocity returns the angular velocity for an entity spawned at
// the given level: base * (1 + growth * (level-1)), so later levels
// move hazards faster.
func (m Motion) SpawnVelocity(level int) float64 {
	if level < 1 {
		level = 1
	}
	return m.cfg.BaseAngularVelocity * (1 + m.cfg.VelocityGrowth*float64(level-1))
}

// TurnSpeed returns the player's input rotation speed in rad/s.
func (m Motion) TurnSpeed() float64 {
	return m.cfg.PlayerTurnSpeed
}

// Position converts a ring index and angle to world Cartesian
// coordinates centered on the origin.
func (m Motion) Position(rings *RingSet, ring int, angle float64) (x, y float64) {
	return core.PolarToCartesian(0, 0, rings.Radius(ring), angle, m.cfg.RotationOffset)
}
