package doodle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// parkPlatforms moves every platform far outside the world so physics can
// be observed without collisions or recycling.
func parkPlatforms(g *Game) {
	for i := range g.platforms {
		g.platforms[i].SetPosition(-10000, -10000)
	}
}

func TestGravityIsMonotonicAbsentCollisions(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	parkPlatforms(g)
	g.player.SetPosition(200, 100) // High up so the fall takes a while

	gravity := g.cfg.Physics.Gravity
	prev := g.player.VelocityY()

	noInput := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(noInput)
		got := g.player.VelocityY()
		if diff := got - prev; diff < gravity-1e-9 || diff > gravity+1e-9 {
			t.Fatalf("tick %d: velocity grew by %f, want exactly %f", i, diff, gravity)
		}
		prev = got
	}
}

func TestJumpImpulseIdempotentAcrossMultipleHits(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	parkPlatforms(g)

	// Two platforms overlapping under the player's foot
	g.platforms[0].SetPosition(100, 400)
	g.platforms[1].SetPosition(105, 402)
	g.player.SetPosition(100, 335) // foot at 405, inside both slabs
	g.player.velY = 3

	g.resolveCollisions()

	if got := g.player.VelocityY(); got != g.cfg.Physics.JumpImpulse {
		t.Errorf("velocity after multi-hit resolution = %f, want %f", got, g.cfg.Physics.JumpImpulse)
	}
	if len(g.events) == 0 {
		t.Error("expected at least one bounce event")
	}
}

func TestCollisionRequiresDownwardVelocity(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	parkPlatforms(g)

	g.platforms[0].SetPosition(100, 400)
	g.player.SetPosition(100, 335)

	// Moving down: bounce
	g.player.velY = 3
	g.resolveCollisions()
	if got := g.player.VelocityY(); got != -8.0 {
		t.Errorf("downward hit: velocity = %f, want -8.0", got)
	}

	// Moving up through the same overlap: no trigger
	g.events = g.events[:0]
	g.player.velY = -3
	g.resolveCollisions()
	if got := g.player.VelocityY(); got != -3 {
		t.Errorf("upward pass: velocity = %f, want -3 (unchanged)", got)
	}
	if len(g.events) != 0 {
		t.Errorf("upward pass: got %d bounce events, want 0", len(g.events))
	}
}

func TestPlatformCountInvariant(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	in := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		if i%3 == 0 {
			in.Set(core.ActionLeft)
		}
		g.Step(in)
		if len(g.platforms) != g.cfg.Platforms.Count {
			t.Fatalf("tick %d: platform count = %d, want %d", i, len(g.platforms), g.cfg.Platforms.Count)
		}
		in.Clear()
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))

	prev := 0
	noInput := core.NewInputFrame()
	for i := 0; i < 1000; i++ {
		result := g.Step(noInput)
		if result.State.Score < prev {
			t.Fatalf("tick %d: score decreased from %d to %d", i, prev, result.State.Score)
		}
		prev = result.State.Score
		if result.State.GameOver {
			break
		}
	}
}

func TestRecycleMovesPlatformToTopAndScores(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	parkPlatforms(g)
	g.player.SetPosition(200, 400)
	g.player.velY = 0 // Platforms don't move this tick, only recycle
	g.score = 0

	g.platforms[0].SetPosition(123, 705)

	g.updatePlatforms()

	pos := g.platforms[0].Position()
	if pos.Y != 0 {
		t.Errorf("recycled platform y = %f, want 0", pos.Y)
	}
	maxX := g.cfg.World.Width - g.cfg.Platforms.Width
	if pos.X < 0 || pos.X > maxX {
		t.Errorf("recycled platform x = %f, want in [0, %f]", pos.X, maxX)
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1 (exactly one recycle)", g.score)
	}
}

func TestScrollShiftPinsPlayerAndShiftsWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.player.SetPosition(200, 250) // 50 above the threshold
	before := make([]float64, len(g.platforms))
	for i := range g.platforms {
		before[i] = g.platforms[i].Position().Y
	}

	g.scrollUp()

	if got := g.player.Position().Y; got != 300 {
		t.Errorf("player y after shift = %f, want 300", got)
	}
	// The world scrolls downward around the pinned player: every platform
	// is carried toward the bottom bound by exactly the overshoot.
	for i := range g.platforms {
		got := g.platforms[i].Position().Y
		if diff := got - before[i]; diff < 50-1e-9 || diff > 50+1e-9 {
			t.Errorf("platform %d shifted by %f, want 50", i, diff)
		}
	}
}

func TestFallOutEndsSessionAndFreezesPhysics(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))
	parkPlatforms(g)
	g.player.SetPosition(200, 750) // Below the 700 bound

	noInput := core.NewInputFrame()
	result := g.Step(noInput)
	if !result.State.GameOver {
		t.Fatal("expected game over after falling below the world")
	}

	// Subsequent ticks are inert until reset
	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	after := g.Snapshot()

	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY {
		t.Errorf("player moved while game over: (%f,%f) -> (%f,%f)",
			before.PlayerX, before.PlayerY, after.PlayerX, after.PlayerY)
	}
	if before.Tick != after.Tick {
		t.Errorf("tick advanced while game over: %d -> %d", before.Tick, after.Tick)
	}
}

func TestResetRestoresInvariants(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	// Play until something happened
	noInput := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		g.Step(noInput)
	}

	g.Reset(testRuntime(43))

	if pos := g.player.Position(); pos.X != 200 || pos.Y != 200 {
		t.Errorf("player spawn = (%f,%f), want (200,200)", pos.X, pos.Y)
	}
	if vel := g.player.VelocityY(); vel != 0 {
		t.Errorf("player velocity = %f, want 0", vel)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if g.gameOver {
		t.Error("game over flag should be cleared")
	}
	if g.paused {
		t.Error("paused flag should be cleared")
	}
	if g.tickCount != 0 {
		t.Errorf("tick count = %d, want 0", g.tickCount)
	}
	if len(g.platforms) != 10 {
		t.Errorf("platform count = %d, want 10", len(g.platforms))
	}
	for i := range g.platforms {
		pos := g.platforms[i].Position()
		if pos.X < 0 || pos.X > g.cfg.World.Width-g.cfg.Platforms.Width {
			t.Errorf("platform %d x = %f out of range", i, pos.X)
		}
		if pos.Y < 0 || pos.Y > g.cfg.World.Height {
			t.Errorf("platform %d y = %f out of range", i, pos.Y)
		}
	}
}

func TestResetSameSeedSameLayout(t *testing.T) {
	g := New()
	g.Reset(testRuntime(77))
	first := g.Snapshot()

	g.Reset(testRuntime(77))
	second := g.Snapshot()

	for i := range first.Platforms {
		if first.Platforms[i] != second.Platforms[i] {
			t.Fatalf("platform %d differs across same-seed resets: %v vs %v",
				i, first.Platforms[i], second.Platforms[i])
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(12345)

	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%11 == 0:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Tick != s2.Tick || s1.Score != s2.Score ||
		s1.PlayerX != s2.PlayerX || s1.PlayerY != s2.PlayerY ||
		s1.VelocityY != s2.VelocityY {
		t.Errorf("determinism failed: %+v vs %+v", s1, s2)
	}
	for i := range s1.Platforms {
		if s1.Platforms[i] != s2.Platforms[i] {
			t.Errorf("platform %d diverged: %v vs %v", i, s1.Platforms[i], s2.Platforms[i])
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()

	if before.PlayerY != after.PlayerY || before.Tick != after.Tick {
		t.Error("simulation advanced while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("game should be unpaused")
	}
}

func TestSteeringMovesPlayerByFixedStep(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	parkPlatforms(g)

	startX := g.player.Position().X

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if got := g.player.Position().X; got != startX-g.cfg.Physics.MoveStep {
		t.Errorf("after left: x = %f, want %f", got, startX-g.cfg.Physics.MoveStep)
	}

	in.Clear()
	in.Set(core.ActionRight)
	g.Step(in)

	if got := g.player.Position().X; got != startX {
		t.Errorf("after left+right: x = %f, want %f", got, startX)
	}
}

func TestRenderShowsScoreAndGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") {
		t.Errorf("HUD row %q does not show the score", row)
	}

	g.gameOver = true
	g.Render(screen)
	found := false
	for y := 0; y < screen.Height(); y++ {
		if strings.Contains(screen.Row(y), "GAME OVER!") {
			found = true
			break
		}
	}
	if !found {
		t.Error("game over overlay not rendered")
	}
}
