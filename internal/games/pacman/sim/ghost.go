package sim

// GhostType identifies one of the four ghosts. The order doubles as the
// house-leave priority: lower types leave first.
type GhostType int

const (
	GhostBlinky GhostType = iota
	GhostPinky
	GhostInky
	GhostClyde
	NumGhosts
)

func (t GhostType) String() string {
	switch t {
	case GhostBlinky:
		return "blinky"
	case GhostPinky:
		return "pinky"
	case GhostInky:
		return "inky"
	case GhostClyde:
		return "clyde"
	}
	return "unknown"
}

// Color returns the ghost's body palette code.
func (t GhostType) Color() byte {
	return ColorBlinky + 2*byte(t)
}

// GhostState is a ghost's behaviour state.
type GhostState int

const (
	GhostStateNone GhostState = iota
	// GhostStateChase pursues the ghost-specific chase target.
	GhostStateChase
	// GhostStateScatter heads to the ghost's home corner.
	GhostStateScatter
	// GhostStateFrightened wanders randomly and can be eaten.
	GhostStateFrightened
	// GhostStateEyes returns to the house door after being eaten.
	GhostStateEyes
	// GhostStateHouse bounces up and down inside the house.
	GhostStateHouse
	// GhostStateLeaveHouse navigates from the house to the door.
	GhostStateLeaveHouse
	// GhostStateEnterHouse navigates from the door to the home slot.
	GhostStateEnterHouse
)

func (s GhostState) String() string {
	switch s {
	case GhostStateNone:
		return "none"
	case GhostStateChase:
		return "chase"
	case GhostStateScatter:
		return "scatter"
	case GhostStateFrightened:
		return "frightened"
	case GhostStateEyes:
		return "eyes"
	case GhostStateHouse:
		return "house"
	case GhostStateLeaveHouse:
		return "leavehouse"
	case GhostStateEnterHouse:
		return "enterhouse"
	}
	return "unknown"
}

// Ghost holds one ghost's complete state. NextDir is the direction the
// ghost will take at the next tile midpoint; it is decided one tile ahead
// so ghosts visibly look where they are about to turn.
type Ghost struct {
	Actor
	Type       GhostType
	NextDir    Dir
	TargetPos  Point
	State      GhostState
	Frightened Trigger
	Eaten      Trigger
	DotCounter int
	DotLimit   int
}

// The house door position in pixels, where eyes enter and leavers exit.
const (
	anteportasX = 14 * TileWidth
	anteportasY = 14*TileHeight + TileHeight/2
)

// Per-ghost home corners in tile coords for scatter mode.
var ghostScatterTargets = [NumGhosts]Point{
	{X: 25, Y: 0},
	{X: 2, Y: 0},
	{X: 27, Y: 34},
	{X: 0, Y: 34},
}

// Per-ghost starting positions in pixels. Blinky starts outside the house.
var ghostStartingPos = [NumGhosts]Point{
	{X: 14 * 8, Y: 14*8 + 4},
	{X: 14 * 8, Y: 17*8 + 4},
	{X: 12 * 8, Y: 17*8 + 4},
	{X: 16 * 8, Y: 17*8 + 4},
}

// Per-ghost slots inside the house, targeted when returning as eyes.
var ghostHouseTargetPos = [NumGhosts]Point{
	{X: 14 * 8, Y: 17*8 + 4},
	{X: 14 * 8, Y: 17*8 + 4},
	{X: 12 * 8, Y: 17*8 + 4},
	{X: 16 * 8, Y: 17*8 + 4},
}

// updateGhostState decides and performs ghost state transitions.
func (s *Sim) updateGhostState(ghost *Ghost) {
	newState := ghost.State
	switch ghost.State {
	case GhostStateEyes:
		// eyes switch to entering the house once the door is reached
		if ghost.Pos.NearEqual(Point{X: anteportasX, Y: anteportasY}, 1) {
			newState = GhostStateEnterHouse
		}
	case GhostStateEnterHouse:
		if ghost.Pos.NearEqual(ghostHouseTargetPos[ghost.Type], 1) {
			newState = GhostStateLeaveHouse
		}
	case GhostStateHouse:
		if s.forceLeaveHouse.AfterOnce(s.tick, 4*60) {
			// if Pacman hasn't been eating dots for a while, the next
			// ghost is forced out of the house
			newState = GhostStateLeaveHouse
			s.forceLeaveHouse.Start(s.tick)
		} else if s.globalDotCounterActive {
			if ghost.Type == GhostPinky && s.globalDotCounter == 7 {
				newState = GhostStateLeaveHouse
			} else if ghost.Type == GhostInky && s.globalDotCounter == 17 {
				newState = GhostStateLeaveHouse
			} else if ghost.Type == GhostClyde && s.globalDotCounter == 32 {
				newState = GhostStateLeaveHouse
				// the global dot counter is deactivated if (and only if)
				// Clyde is in the house when the counter reaches 32
				s.globalDotCounterActive = false
			}
		} else if ghost.DotCounter == ghost.DotLimit {
			newState = GhostStateLeaveHouse
		}
	case GhostStateLeaveHouse:
		// ghosts drop into scatter mode when the door is reached
		if ghost.Pos.Y == anteportasY {
			newState = GhostStateScatter
		}
	default:
		// switch between frightened, scatter and chase
		if ghost.Frightened.Before(s.tick, levelSpecFor(s.round).frightTicks) {
			newState = GhostStateFrightened
		} else {
			switch t := s.roundStarted.Since(s.tick); {
			case t < 7*60:
				newState = GhostStateScatter
			case t < 27*60:
				newState = GhostStateChase
			case t < 34*60:
				newState = GhostStateScatter
			case t < 54*60:
				newState = GhostStateChase
			case t < 59*60:
				newState = GhostStateScatter
			case t < 79*60:
				newState = GhostStateChase
			case t < 84*60:
				newState = GhostStateScatter
			default:
				newState = GhostStateChase
			}
		}
	}

	if newState != ghost.State {
		switch ghost.State {
		case GhostStateLeaveHouse:
			// after leaving the house, head to the left
			ghost.NextDir = DirLeft
			ghost.Dir = DirLeft
		case GhostStateEnterHouse:
			// an eaten ghost is immune to frighten until the next pill
			ghost.Frightened.Disable()
		case GhostStateFrightened:
			// don't reverse direction when leaving frightened state
		case GhostStateScatter, GhostStateChase:
			// any transition from scatter or chase reverses the direction
			ghost.NextDir = ghost.Dir.Reverse()
		}
		ghost.State = newState
	}
}

// updateGhostTarget computes a ghost's current target tile.
func (s *Sim) updateGhostTarget(ghost *Ghost) {
	pos := ghost.TargetPos
	switch ghost.State {
	case GhostStateScatter:
		pos = ghostScatterTargets[ghost.Type]
	case GhostStateChase:
		pmPos := PixelToTile(s.pacman.Pos)
		pmDir := s.pacman.Dir.Vector()
		switch ghost.Type {
		case GhostBlinky:
			// Blinky directly chases Pacman
			pos = pmPos
		case GhostPinky:
			// Pinky ambushes four tiles ahead of Pacman
			pos = pmPos.Add(pmDir.Mul(4))
		case GhostInky:
			// Inky extrapolates along a line through Blinky and the
			// spot two tiles ahead of Pacman
			blinkyPos := PixelToTile(s.ghosts[GhostBlinky].Pos)
			p := pmPos.Add(pmDir.Mul(2))
			d := p.Sub(blinkyPos)
			pos = blinkyPos.Add(d.Mul(2))
		case GhostClyde:
			// Clyde chases Pacman from afar but retreats to his corner
			// when he gets close
			if PixelToTile(ghost.Pos).SquaredDist(pmPos) > 64 {
				pos = pmPos
			} else {
				pos = ghostScatterTargets[GhostClyde]
			}
		}
	case GhostStateFrightened:
		// a random target each tick stands in for the original's
		// pseudo-random direction choice
		pos = Point{
			X: int(s.rand.Next() % TilesX),
			Y: int(s.rand.Next() % TilesY),
		}
	case GhostStateEyes:
		// move towards the house door
		pos = Point{X: 13, Y: 14}
	}
	ghost.TargetPos = pos
}

// updateGhostDir steers the ghost. Inside, entering or leaving the house
// movement is hard-wired and ignores blocking tiles; the return value tells
// the move loop to skip the collision check. Everywhere else a new direction
// towards the target is picked at each tile midpoint.
func (s *Sim) updateGhostDir(ghost *Ghost) bool {
	switch ghost.State {
	case GhostStateHouse:
		// bounce up and down
		if ghost.Pos.Y <= 17*TileHeight {
			ghost.NextDir = DirDown
		} else if ghost.Pos.Y >= 18*TileHeight {
			ghost.NextDir = DirUp
		}
		ghost.Dir = ghost.NextDir
		return true
	case GhostStateLeaveHouse:
		pos := ghost.Pos
		if pos.X == anteportasX {
			if pos.Y > anteportasY {
				ghost.NextDir = DirUp
			}
		} else {
			midY := 17*TileHeight + TileHeight/2
			if pos.Y > midY {
				ghost.NextDir = DirUp
			} else if pos.Y < midY {
				ghost.NextDir = DirDown
			} else if pos.X > anteportasX {
				ghost.NextDir = DirLeft
			} else {
				ghost.NextDir = DirRight
			}
		}
		ghost.Dir = ghost.NextDir
		return true
	case GhostStateEnterHouse:
		pos := ghost.Pos
		tilePos := PixelToTile(pos)
		tgtPos := ghostHouseTargetPos[ghost.Type]
		if tilePos.Y == 14 {
			if pos.X != anteportasX {
				if pos.X < anteportasX {
					ghost.NextDir = DirRight
				} else {
					ghost.NextDir = DirLeft
				}
			} else {
				ghost.NextDir = DirDown
			}
		} else if pos.Y == tgtPos.Y {
			if pos.X < tgtPos.X {
				ghost.NextDir = DirRight
			} else {
				ghost.NextDir = DirLeft
			}
		}
		ghost.Dir = ghost.NextDir
		return true
	default:
		// only compute a new direction at a tile midpoint
		distToMid := DistToTileMid(ghost.Pos)
		if distToMid.X == 0 && distToMid.Y == 0 {
			// the direction was decided one tile ago
			ghost.Dir = ghost.NextDir

			dirVec := ghost.Dir.Vector()
			lookaheadPos := PixelToTile(ghost.Pos).Add(dirVec)

			// try each direction and keep the one closest to the target
			dirs := [NumDirs]Dir{DirUp, DirLeft, DirDown, DirRight}
			minDist := 100000
			for _, dir := range dirs {
				// inside the two 'red zones' upward movement is forbidden
				// (except for eyes returning to the house)
				if IsRedzone(lookaheadPos) && dir == DirUp && ghost.State != GhostStateEyes {
					continue
				}
				revDir := dir.Reverse()
				testPos := ClampedTile(lookaheadPos.Add(dir.Vector()))
				if revDir != ghost.Dir && !s.video.IsBlocking(testPos) {
					if dist := testPos.SquaredDist(ghost.TargetPos); dist < minDist {
						minDist = dist
						ghost.NextDir = dir
					}
				}
			}
		}
		return false
	}
}

// ghostSpeed returns how many pixels the ghost moves this tick. The values
// approximate the arcade speeds with simple tick patterns.
func (s *Sim) ghostSpeed(ghost *Ghost) int {
	switch ghost.State {
	case GhostStateHouse, GhostStateLeaveHouse:
		// half speed inside the house
		return int(s.tick & 1)
	case GhostStateFrightened:
		// half speed when frightened
		return int(s.tick & 1)
	case GhostStateEyes, GhostStateEnterHouse:
		// 1.5x speed when returning as eyes
		if s.tick&1 != 0 {
			return 1
		}
		return 2
	default:
		if IsTunnel(PixelToTile(ghost.Pos)) {
			// drastically slower inside the tunnel
			if (s.tick*2)%4 != 0 {
				return 1
			}
			return 0
		}
		// otherwise just a bit slower than Pacman
		if s.tick%7 != 0 {
			return 1
		}
		return 0
	}
}

// updateGhosts runs the per-tick ghost pipeline: state transitions first,
// then target selection, then movement.
func (s *Sim) updateGhosts() {
	for i := range s.ghosts {
		ghost := &s.ghosts[i]
		s.updateGhostState(ghost)
		s.updateGhostTarget(ghost)
		numMoveTicks := s.ghostSpeed(ghost)
		for t := 0; t < numMoveTicks; t++ {
			forceMove := s.updateGhostDir(ghost)
			const allowCornering = false
			if forceMove || canMove(&s.video, ghost.Pos, ghost.Dir, allowCornering) {
				ghost.Pos = move(ghost.Pos, ghost.Dir, allowCornering)
				ghost.AnimTick++
			}
		}
	}
}

// updateGhostHouseDotCounters advances the house-leave bookkeeping on every
// eaten dot. With the global counter active (after a lost life) one shared
// counter ticks; otherwise the highest-priority ghost still waiting in the
// house advances its personal counter.
func (s *Sim) updateGhostHouseDotCounters() {
	if s.globalDotCounterActive {
		s.globalDotCounter++
		return
	}
	for i := range s.ghosts {
		if s.ghosts[i].DotCounter < s.ghosts[i].DotLimit {
			s.ghosts[i].DotCounter++
			break
		}
	}
}
