package sim

// GhostSnapshot is one ghost's observable state within a Snapshot.
type GhostSnapshot struct {
	State      GhostState
	X          int
	Y          int
	Dir        Dir
	NextDir    Dir
	TargetX    int
	TargetY    int
	DotCounter int
}

// Snapshot captures the complete simulation state for determinism testing
// and replay.
type Snapshot struct {
	Tick        uint32
	Mode        Mode
	Round       int
	Score       uint32
	HighScore   uint32
	Lives       int
	DotsEaten   int
	GhostsEaten int
	Freeze      FreezeSet
	ActiveFruit Fruit
	PacmanX     int
	PacmanY     int
	PacmanDir   Dir
	Ghosts      [NumGhosts]GhostSnapshot
	Fade        uint8
}

// Snapshot returns the current simulation snapshot for determinism
// verification.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.tick,
		Mode:        s.mode,
		Round:       s.round,
		Score:       s.score,
		HighScore:   s.hiscore,
		Lives:       s.lives,
		DotsEaten:   s.dotsEaten,
		GhostsEaten: s.ghostsEaten,
		Freeze:      s.freeze,
		ActiveFruit: s.activeFruit,
		PacmanX:     s.pacman.Pos.X,
		PacmanY:     s.pacman.Pos.Y,
		PacmanDir:   s.pacman.Dir,
		Fade:        s.video.Fade,
	}
	for i := range s.ghosts {
		g := &s.ghosts[i]
		snap.Ghosts[i] = GhostSnapshot{
			State:      g.State,
			X:          g.Pos.X,
			Y:          g.Pos.Y,
			Dir:        g.Dir,
			NextDir:    g.NextDir,
			TargetX:    g.TargetPos.X,
			TargetY:    g.TargetPos.Y,
			DotCounter: g.DotCounter,
		}
	}
	return snap
}
