// Package pacman adapts the Pac-Man simulation core to the arcade platform:
// it maps platform input to simulation input, the simulation's tile and
// sprite video state to screen cells, and its sound intents to platform
// sound requests.
package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Board dimensions in screen cells. Every maze tile renders two cells wide
// so the maze keeps its arcade proportions on tall terminal cells.
const (
	boardW = sim.TilesX * 2
	boardH = sim.TilesY
)

// scorePerUnit converts simulation score units to displayed points. The
// simulation counts one unit per dot; the arcade shows ten points for it.
const scorePerUnit = 10

// Game implements the Pac-Man game on top of the simulation core.
type Game struct {
	sim  *sim.Sim
	cfg  config.PacmanConfig
	seed int64

	// Screen dimensions
	screenW int
	screenH int
	boardX  int
	boardY  int

	// Game state flags
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty set via CLI flags and the
// options menu
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startRound       = -1
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetStartRound overrides the configured starting round. Negative values
// clear the override.
func SetStartRound(round int) {
	startRound = round
}

// StartRoundCount returns how many starting rounds the round picker offers.
// The range runs through the first round that awards the key.
func StartRoundCount() int {
	return 13
}

// StartRoundLabel returns a display label for a zero-based starting round.
func StartRoundLabel(round int) string {
	return fmt.Sprintf("Round %d (%s)", round+1, sim.BonusFruitFor(round))
}

// New creates a new Pac-Man game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	if startRound >= 0 {
		cfg.Gameplay.StartRound = startRound
	}
	g.cfg = cfg
	g.seed = rc.Seed
	g.paused = false

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = rc.ScreenW < boardW || rc.ScreenH < boardH
	g.boardX = (rc.ScreenW - boardW) / 2
	g.boardY = (rc.ScreenH - boardH) / 2
	if g.boardX < 0 {
		g.boardX = 0
	}
	if g.boardY < 0 {
		g.boardY = 0
	}

	hiscore := rc.HighScore / scorePerUnit
	if hiscore < 0 {
		hiscore = 0
	}
	g.sim = sim.New(sim.Config{
		Seed:       uint32(rc.Seed),
		HighScore:  uint32(hiscore),
		SkipIntro:  cfg.Gameplay.SkipIntro,
		Lives:      cfg.Gameplay.Lives,
		StartRound: cfg.Gameplay.StartRound,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	// Handle restart with a fresh seed, carrying the session high score
	if input.Has(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:      g.seed + int64(g.sim.TickCount()),
			ScreenW:   g.screenW,
			ScreenH:   g.screenH,
			HighScore: int(g.sim.HighScore()) * scorePerUnit,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.sim.Tick(simInput(input))
	return core.StepResult{State: g.State()}
}

// simInput translates platform actions into simulation input flags. Any
// pressed key counts for leaving the attract screen.
func simInput(input core.InputFrame) sim.Input {
	in := sim.Input{
		Up:    input.Has(core.ActionUp),
		Down:  input.Has(core.ActionDown),
		Left:  input.Has(core.ActionLeft),
		Right: input.Has(core.ActionRight),
	}
	in.AnyKey = in.Up || in.Down || in.Left || in.Right ||
		input.Has(core.ActionAnyKey) || input.Has(core.ActionConfirm)
	return in
}

// Sounds returns and clears the sound effects queued since the last call.
func (g *Game) Sounds() []core.SoundRequest {
	if g.sim == nil {
		return nil
	}
	reqs := g.sim.DrainSounds()
	if len(reqs) == 0 {
		return nil
	}
	out := make([]core.SoundRequest, len(reqs))
	for i, r := range reqs {
		out[i] = core.SoundRequest{Slot: r.Channel, Effect: soundEffect(r.Effect)}
	}
	return out
}

// soundEffect translates a simulation sound id to the platform's.
func soundEffect(e sim.SoundEffect) core.SoundEffect {
	switch e {
	case sim.SoundPrelude:
		return core.SoundPrelude
	case sim.SoundSiren:
		return core.SoundSiren
	case sim.SoundFrightened:
		return core.SoundFrightened
	case sim.SoundEatDot1:
		return core.SoundEatDot1
	case sim.SoundEatDot2:
		return core.SoundEatDot2
	case sim.SoundEatGhost:
		return core.SoundEatGhost
	case sim.SoundEatFruit:
		return core.SoundEatFruit
	case sim.SoundDeath:
		return core.SoundDeath
	default:
		return core.SoundStopAll
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH))
		return
	}
	if g.sim == nil {
		return
	}

	renderVideo(dst, g.sim.Video(), g.boardX, g.boardY)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.SetCell(x, y, '+', core.ColorDefault)
			case isTopOrBottom:
				dst.SetCell(x, y, '-', core.ColorDefault)
			case isLeftOrRight:
				dst.SetCell(x, y, '|', core.ColorDefault)
			default:
				dst.SetCell(x, y, ' ', core.ColorDefault)
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}

// State returns the current game state. Scores are reported in display
// points, matching what the arcade HUD shows.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.sim.Score()) * scorePerUnit,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// HighScore returns the session high score in display points.
func (g *Game) HighScore() int {
	if g.sim == nil {
		return 0
	}
	return int(g.sim.HighScore()) * scorePerUnit
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.sim == nil {
		return "not started\n"
	}
	snap := g.sim.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Mode: %s, Round: %d\n", snap.Tick, snap.Mode, snap.Round+1))
	b.WriteString(fmt.Sprintf("Score: %d, HighScore: %d, Lives: %d, Dots: %d/%d\n",
		snap.Score*scorePerUnit, snap.HighScore*scorePerUnit, snap.Lives, snap.DotsEaten, sim.NumDots))
	b.WriteString(fmt.Sprintf("Pacman: (%d, %d) %s\n", snap.PacmanX, snap.PacmanY, snap.PacmanDir))
	for i, gh := range snap.Ghosts {
		b.WriteString(fmt.Sprintf("%s: (%d, %d) %s %s -> (%d, %d)\n",
			sim.GhostType(i), gh.X, gh.Y, gh.Dir, gh.State, gh.TargetX, gh.TargetY))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.sim.GameOver(), g.paused))
	return b.String()
}
