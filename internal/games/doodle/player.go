package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Player is the controlled entity. Horizontal motion is a fixed step per
// held key; vertical motion is velocity-driven with gravity applied every
// tick. Velocity is signed, negative is upward.
type Player struct {
	pos  core.Vec2
	velY float64

	phys  config.PhysicsConfig
	spawn config.PlayerConfig
}

// NewPlayer creates a player at its spawn point.
func NewPlayer(phys config.PhysicsConfig, spawn config.PlayerConfig) Player {
	p := Player{phys: phys, spawn: spawn}
	p.Reset()
	return p
}

// Position returns the player's world position.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// SetPosition moves the player to the given world position.
func (p *Player) SetPosition(x, y float64) {
	p.pos = core.Vec2{X: x, Y: y}
}

// VelocityY returns the current vertical velocity.
func (p *Player) VelocityY() float64 {
	return p.velY
}

// MoveLeft translates the player left by the fixed step.
// There is no bounds clamping; the player may leave the world edges.
func (p *Player) MoveLeft() {
	p.pos.X -= p.phys.MoveStep
}

// MoveRight translates the player right by the fixed step.
func (p *Player) MoveRight() {
	p.pos.X += p.phys.MoveStep
}

// ApplyGravity accelerates the player downward and integrates position.
// Fall speed is unbounded; the original has no terminal velocity and
// neither does this.
func (p *Player) ApplyGravity() {
	p.velY += p.phys.Gravity
	p.pos.Y += p.velY
}

// Jump assigns the upward impulse. Assignment, not addition: a bounce
// always leaves the player at exactly the impulse velocity no matter how
// fast it was falling.
func (p *Player) Jump() {
	p.velY = p.phys.JumpImpulse
}

// Reset restores the spawn position and zeroes velocity.
func (p *Player) Reset() {
	p.pos = core.Vec2{X: p.spawn.SpawnX, Y: p.spawn.SpawnY}
	p.velY = 0
}
