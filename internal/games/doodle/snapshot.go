package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	PlayerX   float64
	PlayerY   float64
	VelocityY float64
	GameOver  bool
	Paused    bool
	Platforms []core.Vec2
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	platforms := make([]core.Vec2, len(g.platforms))
	for i := range g.platforms {
		platforms[i] = g.platforms[i].Position()
	}

	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		PlayerX:   g.player.Position().X,
		PlayerY:   g.player.Position().Y,
		VelocityY: g.player.VelocityY(),
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Platforms: platforms,
	}
}
