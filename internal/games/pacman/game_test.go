package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// skipIntroConfig writes a config file that starts straight into a game and
// points the package at it for the duration of the test.
func skipIntroConfig(t *testing.T, lives int) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	data := "gameplay:\n  lives: " + string(rune('0'+lives)) + "\n  skip_intro: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "pacman" {
		t.Errorf("ID should be 'pacman', got %s", g.ID())
	}
	if g.Title() != "Pac-Man" {
		t.Errorf("Title should be 'Pac-Man', got %s", g.Title())
	}
	if !registry.Exists("pacman") {
		t.Error("pacman should be registered with the game registry")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should stay in lockstep
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 40,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 1200; i++ {
		input.Clear()
		if i == 650 {
			input.Set(core.ActionAnyKey)
		}
		if i > 900 {
			switch (i / 40) % 4 {
			case 0:
				input.Set(core.ActionLeft)
			case 1:
				input.Set(core.ActionUp)
			case 2:
				input.Set(core.ActionRight)
			case 3:
				input.Set(core.ActionDown)
			}
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.sim.Snapshot()
	snap2 := g2.sim.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
	if snap1.Mode != sim.ModeGame {
		t.Errorf("scripted run should have entered the game, mode is %s", snap1.Mode)
	}
}

func TestScoreReportsDisplayPoints(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    1,
		ScreenW: 80,
		ScreenH: 40,
	}

	g := New()
	g.Reset(cfg)

	// Let the attract screen finish enabling input, then start a game
	empty := core.NewInputFrame()
	for i := 0; i < 640; i++ {
		g.Step(empty)
	}
	anyKey := core.NewInputFrame()
	anyKey.Set(core.ActionAnyKey)
	g.Step(anyKey)

	// The first dot is eaten a few ticks into the round
	score := 0
	for i := 0; i < 400 && score == 0; i++ {
		score = g.Step(empty).State.Score
	}
	if score != 10 {
		t.Errorf("first dot should score 10 display points, got %d", score)
	}
	if g.sim.Score() != 1 {
		t.Errorf("simulation should count 1 score unit, got %d", g.sim.Score())
	}
}

func TestHighScoreSeeding(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:      1,
		ScreenW:   80,
		ScreenH:   40,
		HighScore: 1230,
	}

	g := New()
	g.Reset(cfg)

	if g.sim.HighScore() != 123 {
		t.Errorf("high score should seed as 123 units, got %d", g.sim.HighScore())
	}
	if g.HighScore() != 1230 {
		t.Errorf("HighScore should report 1230 display points, got %d", g.HighScore())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40}

	g := New()
	g.Reset(cfg)

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.sim.TickCount()
	for i := 0; i < 5; i++ {
		g.Step(empty)
	}
	if g.sim.TickCount() != before {
		t.Error("simulation should not advance while paused")
	}

	// The unpause tick itself advances the simulation again
	g.Step(pause)
	g.Step(empty)
	if g.sim.TickCount() != before+2 {
		t.Error("simulation should resume after unpausing")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	skipIntroConfig(t, 1)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40})

	// With a single life, an idle player is caught by the chasing ghosts
	// and the game ends after the first death.
	empty := core.NewInputFrame()
	over := false
	for i := 0; i < 6000 && !over; i++ {
		over = g.Step(empty).State.GameOver
	}
	if !over {
		t.Fatal("idle game should end within 6000 ticks")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)
	if res.State.GameOver {
		t.Error("restart should clear the game over state")
	}
	if g.sim.TickCount() > 1 {
		t.Errorf("restart should begin a fresh simulation, tick is %d", g.sim.TickCount())
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40}

	g := New()
	g.Reset(cfg)

	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.sim.TickCount() != 11 {
		t.Errorf("restart outside game over should be a normal tick, tick is %d", g.sim.TickCount())
	}
}

func TestSoundsMapToPlatformRequests(t *testing.T) {
	g := &Game{sim: sim.New(sim.Config{SkipIntro: true})}
	g.sim.Tick(sim.Input{})

	got := g.Sounds()
	if len(got) != 1 {
		t.Fatalf("expected 1 sound request, got %d", len(got))
	}
	if got[0].Slot != 0 || got[0].Effect != core.SoundPrelude {
		t.Errorf("expected prelude on slot 0, got %+v", got[0])
	}

	if again := g.Sounds(); len(again) != 0 {
		t.Errorf("sound queue should drain, got %d requests", len(again))
	}
}

func TestSoundEffectTranslation(t *testing.T) {
	pairs := []struct {
		in   sim.SoundEffect
		want core.SoundEffect
	}{
		{sim.SoundStopAll, core.SoundStopAll},
		{sim.SoundPrelude, core.SoundPrelude},
		{sim.SoundSiren, core.SoundSiren},
		{sim.SoundFrightened, core.SoundFrightened},
		{sim.SoundEatDot1, core.SoundEatDot1},
		{sim.SoundEatDot2, core.SoundEatDot2},
		{sim.SoundEatGhost, core.SoundEatGhost},
		{sim.SoundEatFruit, core.SoundEatFruit},
		{sim.SoundDeath, core.SoundDeath},
	}
	for _, p := range pairs {
		if got := soundEffect(p.in); got != p.want {
			t.Errorf("soundEffect(%s) = %s, want %s", p.in, got, p.want)
		}
	}
}

func TestSimInputMapping(t *testing.T) {
	frame := core.NewInputFrame()
	frame.Set(core.ActionUp)
	in := simInput(frame)
	if !in.Up || in.Down || in.Left || in.Right {
		t.Errorf("unexpected direction flags: %+v", in)
	}
	if !in.AnyKey {
		t.Error("a direction press should count as any key")
	}

	frame.Clear()
	frame.Set(core.ActionAnyKey)
	in = simInput(frame)
	if in.Up || in.Down || in.Left || in.Right {
		t.Errorf("any key should not steer: %+v", in)
	}
	if !in.AnyKey {
		t.Error("AnyKey action should set the flag")
	}

	if in = simInput(core.NewInputFrame()); in != (sim.Input{}) {
		t.Errorf("empty frame should map to zero input, got %+v", in)
	}
}

func TestRenderAttractScreen(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40}

	g := New()
	g.Reset(cfg)

	// Step past the fade-in so the board is fully visible
	empty := core.NewInputFrame()
	for i := 0; i < 40; i++ {
		g.Step(empty)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Board is centered: 56x36 cells on an 80x40 screen puts the origin at
	// (12, 2). The attract header starts at tile (7, 5).
	if got := screen.Get(12+2*7, 2+5); got != 'C' {
		t.Errorf("expected 'C' of CHARACTER at the header, got %q", got)
	}
	if got := screen.Get(12+2*3, 2+35); got != 'C' {
		t.Errorf("expected 'C' of CREDIT on the bottom row, got %q", got)
	}
}

func TestRenderMazeAfterStart(t *testing.T) {
	skipIntroConfig(t, 6)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40})

	// Step into the READY! freeze: the actors are placed but not yet moving
	empty := core.NewInputFrame()
	for i := 0; i < 130; i++ {
		g.Step(empty)
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	// Outer border corner at tile (0, 3), maze wall color
	cell := screen.GetCell(12, 2+3)
	if cell.Rune != '╔' {
		t.Errorf("expected top-left border corner, got %q", cell.Rune)
	}
	if cell.Color != core.ColorBlue {
		t.Errorf("expected blue walls, got %v", cell.Color)
	}

	// Pac-Man starts at pixel (112, 212): cell (28, 26) plus the origin
	pc := screen.GetCell(12+28, 2+26)
	if pc.Rune != '●' {
		t.Errorf("expected Pac-Man glyph at start position, got %q", pc.Rune)
	}
	if pc.Color != core.ColorBrightYellow {
		t.Errorf("expected yellow Pac-Man, got %v", pc.Color)
	}

	// Blinky waits above the house door at pixel (112, 116)
	gh := screen.GetCell(12+28, 2+14)
	if gh.Rune != 'Ω' {
		t.Errorf("expected ghost glyph above the house, got %q", gh.Rune)
	}
	if gh.Color != core.ColorBrightRed {
		t.Errorf("expected red Blinky, got %v", gh.Color)
	}

	// READY! text spans tiles (11..16, 20)
	if got := screen.Get(12+2*11, 2+20); got != 'R' {
		t.Errorf("expected READY! text, got %q", got)
	}
}

func TestWindowTooSmall(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 20}

	g := New()
	g.Reset(cfg)

	if !g.tooSmall {
		t.Error("game should detect window is too small")
	}

	empty := core.NewInputFrame()
	g.Step(empty)
	if g.sim.TickCount() != 0 {
		t.Error("simulation should not run while the window is too small")
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("too-small overlay should be drawn")
	}
}

func TestDebugState(t *testing.T) {
	g := New()
	if g.DebugState() == "" {
		t.Error("DebugState should describe an unstarted game")
	}

	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 40})
	g.Step(core.NewInputFrame())

	out := g.DebugState()
	for _, want := range []string{"Tick:", "Score:", "blinky", "clyde"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState missing %q:\n%s", want, out)
		}
	}
}
