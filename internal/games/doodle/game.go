// Package doodle implements an endless jumper: the player bounces between
// recycled platforms, the world shifts down as the player climbs, and the
// run ends when the player falls off the bottom of the world.
package doodle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '◉'
	PlatformChar = '▀'
)

// Game implements the doodle jumper session: one player, a fixed pool of
// platforms, score, and the game-over flag. All mutation happens inside
// Step in a fixed per-tick order:
//
//	input → gravity → fall-out check → scroll-up shift →
//	platform move + recycle (+score) → collision resolution
//
// The order matches the original game and must not be rearranged.
type Game struct {
	cfg     config.DoodleConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player    Player
	platforms []Platform

	score     int
	gameOver  bool
	paused    bool
	tickCount uint64
	events    []core.Event
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultDoodleConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.DoodleConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "doodle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doodle Jump"
}

// Reset initializes or restarts the session: player at spawn with zero
// velocity, score 0, flag cleared, and the whole platform pool re-rolled
// at uniformly random positions.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.player = NewPlayer(g.cfg.Physics, g.cfg.Player)
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.events = nil

	if g.platforms == nil {
		g.platforms = make([]Platform, g.cfg.Platforms.Count)
	}
	for i := range g.platforms {
		g.platforms[i].SetPosition(g.randomX(), g.rng.Float64()*g.cfg.World.Height)
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		// Terminal until reset; only retry/quit are meaningful and both
		// are handled by the platform layer.
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleInput(in)
	g.player.ApplyGravity()

	// Fall-out check. The flag is raised mid-frame and the rest of this
	// frame still runs, exactly like the original; only subsequent ticks
	// are inert.
	if g.player.Position().Y > g.cfg.World.Height {
		g.gameOver = true
	}

	g.scrollUp()
	g.updatePlatforms()
	g.resolveCollisions()

	return core.StepResult{State: g.State(), Events: g.events}
}

// handleInput applies held steering keys.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.player.MoveRight()
	}
}

// scrollUp pins the player to the scroll threshold when it climbs above it
// and shifts every platform down by the overshoot, producing the endless
// ascent. Runs before platform recycling each tick.
func (g *Game) scrollUp() {
	pos := g.player.Position()
	if pos.Y >= g.cfg.Scroll.Threshold {
		return
	}
	offset := g.cfg.Scroll.Threshold - pos.Y
	g.player.SetPosition(pos.X, g.cfg.Scroll.Threshold)
	for i := range g.platforms {
		g.platforms[i].Move(-offset)
	}
}

// updatePlatforms moves every platform against the player's velocity and
// recycles the ones that crossed the bottom bound back to the top at a
// fresh random x. Recycling is the sole scoring trigger.
func (g *Game) updatePlatforms() {
	for i := range g.platforms {
		pl := &g.platforms[i]
		pl.Move(g.player.VelocityY())

		if pl.Position().Y > g.cfg.World.Height {
			pl.SetPosition(g.randomX(), 0)
			g.score++
		}
	}
}

// resolveCollisions bounces the player off any platform its foot overlaps
// while moving downward. The inset hitbox and the per-platform velocity
// gate are carried over from the original unchanged; since Jump assigns
// rather than adds, the post-resolution velocity is the impulse no matter
// how many platforms overlapped this tick.
func (g *Game) resolveCollisions() {
	c := g.cfg.Collision
	for i := range g.platforms {
		pPos := g.platforms[i].Position()
		plPos := g.player.Position()

		if plPos.X+c.LeftInset > pPos.X &&
			plPos.X+c.RightInset < pPos.X+g.cfg.Platforms.Width &&
			plPos.Y+c.FootOffset > pPos.Y &&
			plPos.Y+c.FootOffset < pPos.Y+g.cfg.Platforms.Height &&
			g.player.VelocityY() > 0 {
			g.player.Jump()
			g.events = append(g.events, core.EventBounce)
		}
	}
}

// randomX picks a platform x so the whole platform stays inside the world.
func (g *Game) randomX() float64 {
	return g.rng.Float64() * (g.cfg.World.Width - g.cfg.Platforms.Width)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for i := range g.platforms {
		g.drawPlatform(dst, &g.platforms[i])
	}
	g.drawPlayer(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER!",
			fmt.Sprintf("Score: %d  |  Press R to retry or Q to exit", g.score))
	}
}

// toScreen maps a world position to screen cells.
func (g *Game) toScreen(dst *core.Screen, p core.Vec2) (int, int) {
	x := int(p.X * float64(dst.Width()) / g.cfg.World.Width)
	y := int(p.Y * float64(dst.Height()) / g.cfg.World.Height)
	return x, y
}

// drawPlayer renders the player sprite.
func (g *Game) drawPlayer(dst *core.Screen) {
	x, y := g.toScreen(dst, g.player.Position())
	dst.SetCell(x, y, PlayerChar, core.ColorBrightYellow)
}

// drawPlatform renders a single platform as a scaled bar.
func (g *Game) drawPlatform(dst *core.Screen, pl *Platform) {
	x, y := g.toScreen(dst, pl.Position())
	w := core.Max(1, int(g.cfg.Platforms.Width*float64(dst.Width())/g.cfg.World.Width))
	dst.DrawHLineColored(x, y, w, PlatformChar, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
