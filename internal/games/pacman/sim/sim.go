// Package sim implements the maze-chase game as a deterministic fixed-tick
// simulation. One Tick is 1/60th of a second of game time; given the same
// Config and input sequence two simulations produce identical state, video
// output and sound intents. The package knows nothing about wall-clock time,
// rendering or audio devices: the caller drives ticks and reads the Video
// state and sound queue after each one.
//
// All gameplay timing runs on triggers (see Trigger): an event is armed on
// some tick and every effect of it is expressed as a predicate over the
// number of ticks elapsed since. This keeps the whole game free of ad-hoc
// countdowns and makes every sequence inspectable in tests.
package sim

// Gameplay pacing constants, in ticks.
const (
	fadeTicks             = 30      // duration of fade-in/out
	ghostEatenFreezeTicks = 60      // freeze duration after eating a ghost
	pacmanEatenTicks      = 60      // freeze duration before the death animation
	pacmanDeathTicks      = 150     // duration of the death animation
	gameOverTicks         = 3 * 60  // duration of the game-over message
	roundWonTicks         = 4 * 60  // delay after clearing the maze
	fruitActiveTicks      = 10 * 60 // how long a bonus fruit stays out
	numStatusFruits       = 7       // fruit history length in the HUD
	defaultNumLives       = 6
	defaultSeed           = 0x12345678
)

// Mode is the top-level state: the attract screen or a running game.
type Mode int

const (
	ModeIntro Mode = iota
	ModeGame
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeGame:
		return "game"
	}
	return "unknown"
}

// Input is the player control state for one tick. Direction flags are
// levels, not edges; AnyKey leaves the attract screen.
type Input struct {
	Up, Down, Left, Right bool
	AnyKey                bool
}

// Config parametrizes a new simulation. The zero value gives the standard
// game: attract screen first, six lives, round zero, the default random
// source and seed.
type Config struct {
	// Rand is the random source for frightened-ghost wandering. Nil
	// selects the built-in xorshift generator.
	Rand Rand
	// Seed reseeds Rand at every round start; zero selects the default.
	Seed uint32
	// HighScore seeds the displayed high score, in score units (one dot
	// is one unit; the display appends a zero).
	HighScore uint32
	// SkipIntro starts straight into a game.
	SkipIntro bool
	// Lives is the starting life count; zero selects the default of six.
	Lives int
	// StartRound is the zero-based first round, for testing later mazes.
	StartRound int
}

// Sim is a complete game simulation.
type Sim struct {
	tick uint32
	mode Mode
	rand Rand
	seed uint32

	input        Input
	inputEnabled bool

	video  Video
	sounds []SoundRequest

	fadeIn  Trigger
	fadeOut Trigger

	introStarted Trigger

	gameStarted     Trigger
	readyStarted    Trigger
	roundStarted    Trigger
	roundWon        Trigger
	gameOver        Trigger
	dotEaten        Trigger
	pillEaten       Trigger
	ghostEaten      Trigger
	pacmanEaten     Trigger
	fruitActive     Trigger
	fruitEaten      Trigger
	forceLeaveHouse Trigger

	freeze      FreezeSet
	round       int
	startRound  int
	score       uint32
	hiscore     uint32
	lives       int
	startLives  int
	dotsEaten   int
	ghostsEaten int
	activeFruit Fruit

	globalDotCounterActive bool
	globalDotCounter       int

	pacman Actor
	ghosts [NumGhosts]Ghost
}

// New creates a simulation positioned one tick before the attract screen
// (or before the game itself with Config.SkipIntro).
func New(cfg Config) *Sim {
	if cfg.Rand == nil {
		cfg.Rand = new(Xorshift32)
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if cfg.Lives <= 0 {
		cfg.Lives = defaultNumLives
	}
	s := &Sim{
		rand:       cfg.Rand,
		seed:       cfg.Seed,
		hiscore:    cfg.HighScore,
		startLives: cfg.Lives,
		startRound: cfg.StartRound,
	}
	s.fadeIn = NewTrigger()
	s.fadeOut = NewTrigger()
	s.introStarted = NewTrigger()
	s.gameStarted = NewTrigger()
	s.readyStarted = NewTrigger()
	s.roundStarted = NewTrigger()
	s.disableGameTimers()
	for i := range s.ghosts {
		s.ghosts[i].Frightened = NewTrigger()
		s.ghosts[i].Eaten = NewTrigger()
	}
	s.video.Fade = 0xFF

	if cfg.SkipIntro {
		s.gameStarted.Start(s.tick)
	} else {
		s.introStarted.Start(s.tick)
	}
	return s
}

// Tick advances the simulation by exactly one tick. The first tick observed
// by game logic is 1.
func (s *Sim) Tick(input Input) {
	s.tick++
	if s.inputEnabled {
		s.input = input
	} else {
		s.input = Input{}
	}

	if s.introStarted.Now(s.tick) {
		s.mode = ModeIntro
	}
	if s.gameStarted.Now(s.tick) {
		s.mode = ModeGame
	}

	switch s.mode {
	case ModeIntro:
		s.introTick()
	case ModeGame:
		s.gameTick()
	}

	s.updateFade()
}

// Video returns the presentation state as of the last tick. Callers must
// treat it as read-only.
func (s *Sim) Video() *Video { return &s.video }

// TickCount returns the current tick number.
func (s *Sim) TickCount() uint32 { return s.tick }

// Mode returns the current top-level mode.
func (s *Sim) Mode() Mode { return s.mode }

// Score returns the current score in score units.
func (s *Sim) Score() uint32 { return s.score }

// HighScore returns the session high score in score units.
func (s *Sim) HighScore() uint32 { return s.hiscore }

// Lives returns the remaining lives, not counting the one in play.
func (s *Sim) Lives() int { return s.lives }

// Round returns the zero-based round number.
func (s *Sim) Round() int { return s.round }

// DotsEaten returns how many of the maze's dots have been eaten this round.
func (s *Sim) DotsEaten() int { return s.dotsEaten }

// GameOver reports whether the game-over sequence has begun. It stays true
// through the attract screen that follows, until a new game starts.
func (s *Sim) GameOver() bool { return s.gameOver.After(s.tick, 0) }

func (s *Sim) enableInput() { s.inputEnabled = true }

func (s *Sim) disableInput() {
	s.inputEnabled = false
	s.input = Input{}
}

// inputDir maps the current input to a direction, up winning over down and
// right over left, falling back to the given direction when nothing is
// pressed.
func (s *Sim) inputDir(defaultDir Dir) Dir {
	switch {
	case s.input.Up:
		return DirUp
	case s.input.Down:
		return DirDown
	case s.input.Right:
		return DirRight
	case s.input.Left:
		return DirLeft
	}
	return defaultDir
}

func (s *Sim) disableGameTimers() {
	s.roundWon.Disable()
	s.gameOver.Disable()
	s.dotEaten.Disable()
	s.pillEaten.Disable()
	s.ghostEaten.Disable()
	s.pacmanEaten.Disable()
	s.fruitEaten.Disable()
	s.forceLeaveHouse.Disable()
	s.fruitActive.Disable()
}

// gameInit sets up a fresh game: one-time state, the playfield, and the
// PLAYER ONE / READY! messages. Called on the tick the game starts.
func (s *Sim) gameInit() {
	s.enableInput()
	s.disableGameTimers()
	s.round = s.startRound
	s.freeze.Set(FreezePrelude)
	s.lives = s.startLives
	s.globalDotCounterActive = false
	s.globalDotCounter = 0
	s.dotsEaten = 0
	s.score = 0

	s.video.Clear(TileSpace, ColorDot)
	s.video.ColorText(Point{X: 9, Y: 0}, ColorDefault, "HIGH SCORE")
	s.video.InitPlayfield()
	s.video.ColorText(Point{X: 9, Y: 14}, 0x5, "PLAYER ONE")
	s.video.ColorText(Point{X: 11, Y: 20}, 0x9, "READY!")
}

// roundInit starts a new round, either after a lost life or with a fresh
// maze after the previous one was cleared.
func (s *Sim) roundInit() {
	s.video.Sprites = [NumSprites]Sprite{}

	// clear the "PLAYER ONE" message
	s.video.ColorText(Point{X: 9, Y: 14}, ColorDot, "          ")

	if s.dotsEaten == NumDots {
		// the maze was cleared: advance the round and redraw it
		s.round++
		s.dotsEaten = 0
		s.video.InitPlayfield()
		s.globalDotCounterActive = false
	} else {
		// a life was lost: switch the house-leave logic over to the
		// global dot counter
		if s.lives != s.startLives {
			s.globalDotCounterActive = true
			s.globalDotCounter = 0
		}
		s.lives--
	}

	s.activeFruit = FruitNone
	s.freeze.Set(FreezeReady)
	s.rand.Seed(s.seed)
	s.ghostsEaten = 0
	s.disableGameTimers()

	s.video.ColorText(Point{X: 11, Y: 20}, 0x9, "READY!")

	// frees the next waiting ghost if Pacman stops eating dots
	s.forceLeaveHouse.Start(s.tick)

	// Pacman starts running to the left
	s.pacman = Actor{Dir: DirLeft, Pos: Point{X: 14 * 8, Y: 26*8 + 4}}
	s.video.Sprites[SpriteSlotPacman] = Sprite{Enabled: true, Color: ColorPacman}

	// Blinky starts outside the ghost house in scatter mode
	s.ghosts[GhostBlinky] = Ghost{
		Actor:      Actor{Dir: DirLeft, Pos: ghostStartingPos[GhostBlinky]},
		Type:       GhostBlinky,
		NextDir:    DirLeft,
		State:      GhostStateScatter,
		Frightened: NewTrigger(),
		Eaten:      NewTrigger(),
	}

	// Pinky starts in the middle slot of the house, moving down
	s.ghosts[GhostPinky] = Ghost{
		Actor:      Actor{Dir: DirDown, Pos: ghostStartingPos[GhostPinky]},
		Type:       GhostPinky,
		NextDir:    DirDown,
		State:      GhostStateHouse,
		Frightened: NewTrigger(),
		Eaten:      NewTrigger(),
	}

	// Inky starts in the left slot, moving up
	s.ghosts[GhostInky] = Ghost{
		Actor:      Actor{Dir: DirUp, Pos: ghostStartingPos[GhostInky]},
		Type:       GhostInky,
		NextDir:    DirUp,
		State:      GhostStateHouse,
		Frightened: NewTrigger(),
		Eaten:      NewTrigger(),
		DotLimit:   30,
	}

	// Clyde starts in the right slot, moving up
	s.ghosts[GhostClyde] = Ghost{
		Actor:      Actor{Dir: DirUp, Pos: ghostStartingPos[GhostClyde]},
		Type:       GhostClyde,
		NextDir:    DirUp,
		State:      GhostStateHouse,
		Frightened: NewTrigger(),
		Eaten:      NewTrigger(),
		DotLimit:   60,
	}

	for i := range s.ghosts {
		s.video.Sprites[1+i] = Sprite{Enabled: true, Color: s.ghosts[i].Type.Color()}
	}
}

// gameTick runs one tick of the game mode. The order is load-bearing:
// trigger-driven sequencing first, then actor updates, then the tile and
// sprite passes that render state changes made earlier in the same tick.
func (s *Sim) gameTick() {
	// one-time game initialization
	if s.gameStarted.Now(s.tick) {
		s.fadeIn.Start(s.tick)
		s.readyStarted.StartAfter(s.tick, 2*60)
		s.playSound(SoundChannelMusic, SoundPrelude)
		s.gameInit()
	}
	// a new round starts each time Pacman loses a life or clears the maze
	if s.readyStarted.Now(s.tick) {
		s.roundInit()
		s.roundStarted.StartAfter(s.tick, 2*60+10)
	}
	if s.roundStarted.Now(s.tick) {
		s.freeze.Remove(FreezeReady)
		// clear the READY! message
		s.video.ColorText(Point{X: 11, Y: 20}, ColorDot, "      ")
		s.playSound(SoundChannelLoop, SoundSiren)
	}

	// bonus fruit window
	if s.fruitActive.Now(s.tick) {
		s.activeFruit = levelSpecFor(s.round).bonusFruit
	} else if s.fruitActive.AfterOnce(s.tick, fruitActiveTicks) {
		s.activeFruit = FruitNone
	}

	// frightened period over, back to the siren
	if s.pillEaten.AfterOnce(s.tick, levelSpecFor(s.round).frightTicks) {
		s.playSound(SoundChannelLoop, SoundSiren)
	}

	// unfreeze after the eaten-ghost score was shown
	if s.freeze.Has(FreezeEatGhost) && s.ghostEaten.AfterOnce(s.tick, ghostEatenFreezeTicks) {
		s.freeze.Remove(FreezeEatGhost)
	}

	// the death sound starts after the short post-death freeze
	if s.pacmanEaten.AfterOnce(s.tick, pacmanEatenTicks) {
		s.playSound(SoundChannelEffect, SoundDeath)
	}

	if s.freeze.Empty() {
		s.updateActors()
	}
	s.updateTiles()
	s.updateSprites()

	if s.score > s.hiscore {
		s.hiscore = s.score
	}

	if s.roundWon.Now(s.tick) {
		s.freeze.Add(FreezeWon)
		s.readyStarted.StartAfter(s.tick, roundWonTicks)
	}
	if s.gameOver.Now(s.tick) {
		s.video.ColorText(Point{X: 9, Y: 20}, 0x01, "GAME  OVER")
		s.disableInput()
		s.fadeOut.StartAfter(s.tick, gameOverTicks)
		s.introStarted.StartAfter(s.tick, gameOverTicks+fadeTicks)
	}
}

// updateActors moves Pacman, handles everything he can run into, and then
// runs the ghost pipeline. Dot, fruit and ghost collisions are only checked
// on ticks Pacman actually moves.
func (s *Sim) updateActors() {
	if s.pacmanShouldMove() {
		const allowCornering = true
		// look ahead first so a held direction is taken at the next
		// possible tile
		wantedDir := s.inputDir(s.pacman.Dir)
		if canMove(&s.video, s.pacman.Pos, wantedDir, allowCornering) {
			s.pacman.Dir = wantedDir
		}
		if canMove(&s.video, s.pacman.Pos, s.pacman.Dir, allowCornering) {
			s.pacman.Pos = move(s.pacman.Pos, s.pacman.Dir, allowCornering)
			s.pacman.AnimTick++
		}

		tilePos := PixelToTile(s.pacman.Pos)
		if s.video.IsDot(tilePos) {
			s.video.SetTile(tilePos, TileSpace)
			s.score += 1
			s.dotEaten.Start(s.tick)
			s.forceLeaveHouse.Start(s.tick)
			s.updateDotsEaten()
			s.updateGhostHouseDotCounters()
		}
		if s.video.IsPill(tilePos) {
			s.video.SetTile(tilePos, TileSpace)
			s.score += 5
			s.updateDotsEaten()
			s.frightenGhosts()
		}

		// the bonus fruit is eaten on the tile right of its center
		if s.activeFruit != FruitNone {
			testPos := PixelToTile(s.pacman.Pos.Add(Point{X: TileWidth / 2}))
			if testPos == (Point{X: 14, Y: 20}) {
				s.fruitEaten.Start(s.tick)
				s.score += levelSpecFor(s.round).bonusScore
				s.video.FruitScore(s.activeFruit)
				s.activeFruit = FruitNone
				s.playSound(SoundChannelEffect, SoundEatFruit)
				// the fruit doubles as an energizer
				s.frightenGhosts()
			}
		}

		// ghost collisions are on tile granularity
		for i := range s.ghosts {
			ghost := &s.ghosts[i]
			if tilePos != PixelToTile(ghost.Pos) {
				continue
			}
			switch ghost.State {
			case GhostStateFrightened:
				// Pacman eats the ghost; 20, 40, 80, 160 score units
				ghost.State = GhostStateEyes
				ghost.Eaten.Start(s.tick)
				s.ghostEaten.Start(s.tick)
				s.ghostsEaten++
				s.score += uint32(10 * (1 << s.ghostsEaten))
				s.freeze.Add(FreezeEatGhost)
				s.playSound(SoundChannelEffect, SoundEatGhost)
			case GhostStateChase, GhostStateScatter:
				// the ghost eats Pacman
				s.stopAllSounds()
				s.pacmanEaten.Start(s.tick)
				s.freeze.Add(FreezeDead)
				if s.lives > 0 {
					s.readyStarted.StartAfter(s.tick, pacmanEatenTicks+pacmanDeathTicks)
				} else {
					s.gameOver.StartAfter(s.tick, pacmanEatenTicks+pacmanDeathTicks)
				}
			}
		}
	}

	s.updateGhosts()
}

// frightenGhosts puts all ghosts into the frightened window and resets the
// eaten-ghost score ladder.
func (s *Sim) frightenGhosts() {
	s.pillEaten.Start(s.tick)
	s.ghostsEaten = 0
	for i := range s.ghosts {
		s.ghosts[i].Frightened.Start(s.tick)
	}
	s.playSound(SoundChannelLoop, SoundFrightened)
}

// updateDotsEaten is shared dot/pill bookkeeping: the round-won check, the
// fruit windows and the alternating crunch sound.
func (s *Sim) updateDotsEaten() {
	s.dotsEaten++
	if s.dotsEaten == NumDots {
		s.roundWon.Start(s.tick)
		s.stopAllSounds()
	} else if s.dotsEaten == 70 || s.dotsEaten == 170 {
		s.fruitActive.Start(s.tick)
	}
	if s.dotsEaten&1 != 0 {
		s.playSound(SoundChannelEffect, SoundEatDot1)
	} else {
		s.playSound(SoundChannelEffect, SoundEatDot2)
	}
}

// updateTiles redraws the dynamic parts of the tile grid.
func (s *Sim) updateTiles() {
	s.video.Score(Point{X: 6, Y: 1}, ColorDefault, s.score)
	if s.hiscore > 0 {
		s.video.Score(Point{X: 16, Y: 1}, ColorDefault, s.hiscore)
	}

	// energizer pills blink, except while the game is frozen
	pillPos := [4]Point{{X: 1, Y: 6}, {X: 26, Y: 6}, {X: 1, Y: 26}, {X: 26, Y: 26}}
	for _, p := range pillPos {
		switch {
		case !s.freeze.Empty():
			s.video.SetColor(p, ColorDot)
		case s.tick&0x8 != 0:
			s.video.SetColor(p, ColorDot)
		default:
			s.video.SetColor(p, ColorBlank)
		}
	}

	// the fruit bonus score disappears after two seconds
	if s.fruitEaten.AfterOnce(s.tick, 2*60) {
		s.video.FruitScore(FruitNone)
	}

	// remaining lives at the bottom left
	for i := 0; i < s.startLives; i++ {
		color := byte(ColorBlank)
		if i < s.lives {
			color = ColorPacman
		}
		s.video.DrawTileQuad(Point{X: 2 + 2*i, Y: 34}, color, TileLife)
	}

	// bonus fruit history at the bottom right
	x := 24
	for i := s.round - numStatusFruits + 1; i <= s.round; i++ {
		if i < 0 {
			continue
		}
		fruit := levelSpecFor(i).bonusFruit
		s.video.DrawTileQuad(Point{X: x, Y: 34}, fruit.Color(), fruit.Tile())
		x -= 2
	}

	// a cleared maze flashes blue and white
	if s.roundWon.After(s.tick, 1*60) {
		if s.roundWon.Since(s.tick)&0x10 != 0 {
			s.video.ColorPlayfield(ColorDot)
		} else {
			s.video.ColorPlayfield(ColorWhiteBorder)
		}
	}
}

// updateSprites recomputes every sprite slot from actor state.
func (s *Sim) updateSprites() {
	spr := &s.video.Sprites[SpriteSlotPacman]
	if spr.Enabled {
		spr.Pos = s.pacman.Pos
		switch {
		case s.freeze.Has(FreezeEatGhost):
			// hide Pacman while the eaten-ghost score is shown
			spr.Kind = SpriteInvisible
		case s.freeze.Has(FreezePrelude) || s.freeze.Has(FreezeReady):
			// frozen at round start, shown with a closed mouth
			spr.Kind = SpritePacmanClosed
			spr.Dir = s.pacman.Dir
			spr.Color = ColorPacman
		case s.freeze.Has(FreezeDead):
			// death animation after a short pause
			if s.pacmanEaten.After(s.tick, pacmanEatenTicks) {
				spr.Kind = SpritePacmanDead
				spr.Phase = s.pacmanEaten.Since(s.tick) - pacmanEatenTicks
				spr.Color = ColorPacman
			}
		default:
			spr.Kind = SpritePacman
			spr.Dir = s.pacman.Dir
			spr.Phase = s.pacman.AnimTick
			spr.Color = ColorPacman
		}
	}

	for i := range s.ghosts {
		ghost := &s.ghosts[i]
		spr := &s.video.Sprites[1+i]
		if !spr.Enabled {
			continue
		}
		spr.Pos = ghost.Pos
		switch {
		case s.freeze.Has(FreezeDead):
			// hide ghosts once the death animation starts
			if s.pacmanEaten.After(s.tick, pacmanEatenTicks) {
				spr.Kind = SpriteInvisible
			}
		case s.freeze.Has(FreezeWon):
			spr.Kind = SpriteInvisible
		default:
			switch ghost.State {
			case GhostStateEyes:
				if ghost.Eaten.Before(s.tick, ghostEatenFreezeTicks) {
					// a just-eaten ghost shows its score value
					spr.Kind = SpriteGhostScore
					spr.Phase = uint32(s.ghostsEaten - 1)
					spr.Color = ColorGhostScore
				} else {
					spr.Kind = SpriteGhostEyes
					spr.Dir = ghost.NextDir
					spr.Color = ColorEyes
				}
			case GhostStateEnterHouse:
				spr.Kind = SpriteGhostEyes
				spr.Dir = ghost.Dir
				spr.Color = ColorEyes
			case GhostStateFrightened:
				since := ghost.Frightened.Since(s.tick)
				spr.Kind = SpriteGhostFright
				spr.Phase = since
				// blink towards the end of the frightened period
				if since > levelSpecFor(s.round).frightTicks-60 && since&0x10 == 0 {
					spr.Color = ColorFrightenedBlinking
				} else {
					spr.Color = ColorFrightened
				}
			default:
				// the next direction is shown so ghosts look into the
				// turn one tile before taking it
				spr.Kind = SpriteGhostBody
				spr.Dir = ghost.NextDir
				spr.Phase = ghost.AnimTick
				spr.Color = ghost.Type.Color()
			}
		}
	}

	fruitSpr := &s.video.Sprites[SpriteSlotFruit]
	if s.activeFruit == FruitNone {
		fruitSpr.Enabled = false
	} else {
		*fruitSpr = Sprite{
			Enabled: true,
			Pos:     Point{X: 14 * TileWidth, Y: 20*TileHeight + TileHeight/2},
			Kind:    SpriteFruit,
			Phase:   uint32(s.activeFruit),
			Color:   s.activeFruit.Color(),
		}
	}
}

// updateFade advances the screen fade level.
func (s *Sim) updateFade() {
	if s.fadeIn.Between(s.tick, 0, fadeTicks) {
		t := s.fadeIn.Since(s.tick)
		s.video.Fade = uint8(255 * (fadeTicks - t) / fadeTicks)
	}
	if s.fadeIn.AfterOnce(s.tick, fadeTicks) {
		s.video.Fade = 0
	}
	if s.fadeOut.Between(s.tick, 0, fadeTicks) {
		t := s.fadeOut.Since(s.tick)
		s.video.Fade = uint8(255 * t / fadeTicks)
	}
	if s.fadeOut.AfterOnce(s.tick, fadeTicks) {
		s.video.Fade = 255
	}
}

// introTick runs one tick of the attract screen: the ghost gallery builds
// up line by line, then a blinking prompt waits for any key.
func (s *Sim) introTick() {
	if s.introStarted.Now(s.tick) {
		s.stopAllSounds()
		s.video.Sprites = [NumSprites]Sprite{}
		s.fadeIn.Start(s.tick)
		s.enableInput()
		s.video.Clear(TileSpace, ColorDefault)
		s.video.Text(Point{X: 3, Y: 0}, "1UP   HIGH SCORE   2UP")
		s.video.Score(Point{X: 6, Y: 1}, ColorDefault, 0)
		if s.hiscore > 0 {
			s.video.Score(Point{X: 16, Y: 1}, ColorDefault, s.hiscore)
		}
		s.video.Text(Point{X: 7, Y: 5}, "CHARACTER / NICKNAME")
		s.video.Text(Point{X: 3, Y: 35}, "CREDIT  0")
	}

	delay := uint32(30)
	names := [NumGhosts]string{"-SHADOW", "-SPEEDY", "-BASHFUL", "-POKEY"}
	nicknames := [NumGhosts]string{"BLINKY", "PINKY", "INKY", "CLYDE"}
	for i := 0; i < int(NumGhosts); i++ {
		color := byte(2*i + 1)
		y := 3*i + 6
		// 2x3 ghost image built from tiles
		delay += 30
		if s.introStarted.AfterOnce(s.tick, delay) {
			for row := 0; row < 3; row++ {
				s.video.SetColorTile(Point{X: 4, Y: y + row}, color, TileGhost+byte(2*row))
				s.video.SetColorTile(Point{X: 5, Y: y + row}, color, TileGhost+byte(2*row)+1)
			}
		}
		// one second later, the character name
		delay += 60
		if s.introStarted.AfterOnce(s.tick, delay) {
			s.video.ColorText(Point{X: 7, Y: y + 1}, color, names[i])
		}
		// half a second later, the nickname
		delay += 30
		if s.introStarted.AfterOnce(s.tick, delay) {
			s.video.ColorText(Point{X: 17, Y: y + 1}, color, nicknames[i])
		}
	}

	// dot and energizer point values
	delay += 60
	if s.introStarted.AfterOnce(s.tick, delay) {
		s.video.SetColorTile(Point{X: 10, Y: 24}, ColorDot, TileDot)
		s.video.Text(Point{X: 12, Y: 24}, "10 PTS")
		s.video.SetColorTile(Point{X: 10, Y: 26}, ColorDot, TilePill)
		s.video.Text(Point{X: 12, Y: 26}, "50 PTS")
	}

	// blinking start prompt
	delay += 60
	if s.introStarted.After(s.tick, delay) {
		if s.introStarted.Since(s.tick)&0x20 != 0 {
			s.video.ColorText(Point{X: 3, Y: 31}, 3, "                       ")
		} else {
			s.video.ColorText(Point{X: 3, Y: 31}, 3, "PRESS ANY KEY TO START!")
		}
	}

	if s.input.AnyKey {
		s.disableInput()
		s.fadeOut.Start(s.tick)
		s.gameStarted.StartAfter(s.tick, fadeTicks)
	}
}
