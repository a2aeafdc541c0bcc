package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Platform is a static-width obstacle. Platforms never move on their own;
// the session translates them against the player's vertical velocity and
// recycles them to the top once they leave the world.
type Platform struct {
	pos core.Vec2
}

// Position returns the platform's world position.
func (p *Platform) Position() core.Vec2 {
	return p.pos
}

// SetPosition moves the platform to the given world position.
func (p *Platform) SetPosition(x, y float64) {
	p.pos = core.Vec2{X: x, Y: y}
}

// Move translates the platform's y by -dy. The session passes the player's
// vertical velocity here, which couples platform motion to fall speed:
// that coupling is the scrolling illusion.
func (p *Platform) Move(dy float64) {
	p.pos.Y -= dy
}
