package sim

// Actor is a movable entity (Pacman or a ghost body) with a pixel position,
// a facing direction and an animation counter that only advances while the
// actor actually moves.
type Actor struct {
	Dir      Dir
	Pos      Point
	AnimTick uint32
}

// canMove reports whether a move one pixel in wantedDir is possible from
// pos. Turning into a new direction is only allowed at a tile midpoint
// unless cornering applies, and a blocking tile ahead stops the actor at
// the midpoint of its current tile.
func canMove(v *Video, pos Point, wantedDir Dir, allowCornering bool) bool {
	dirVec := wantedDir.Vector()
	distMid := DistToTileMid(pos)

	// distance to midpoint in the move direction and perpendicular to it
	var moveDistMid, perpDistMid int
	if dirVec.Y != 0 {
		moveDistMid = distMid.Y
		perpDistMid = distMid.X
	} else {
		moveDistMid = distMid.X
		perpDistMid = distMid.Y
	}

	// look one tile ahead in the move direction
	tilePos := PixelToTile(pos)
	checkPos := ClampedTile(tilePos.Add(dirVec))
	blocked := v.IsBlocking(checkPos)
	if (!allowCornering && perpDistMid != 0) || (blocked && moveDistMid == 0) {
		return false
	}
	return true
}

// move advances pos one pixel in dir. With cornering the position is also
// dragged one pixel towards the tile center-line, letting Pacman cut
// corners. The x position wraps around for the teleport tunnel.
func move(pos Point, dir Dir, allowCornering bool) Point {
	dirVec := dir.Vector()
	pos = pos.Add(dirVec)

	if allowCornering {
		distMid := DistToTileMid(pos)
		if dirVec.X != 0 {
			if distMid.Y < 0 {
				pos.Y--
			} else if distMid.Y > 0 {
				pos.Y++
			}
		} else if dirVec.Y != 0 {
			if distMid.X < 0 {
				pos.X--
			} else if distMid.X > 0 {
				pos.X++
			}
		}
	}

	if pos.X < 0 {
		pos.X = PixelsX - 1
	} else if pos.X >= PixelsX {
		pos.X = 0
	}
	return pos
}

// pacmanShouldMove implements Pacman's speed: full speed with a skipped
// tick every 8 ticks, a 1 tick stall after eating a dot and a 3 tick stall
// after an energizer.
func (s *Sim) pacmanShouldMove() bool {
	if s.dotEaten.Now(s.tick) {
		return false
	}
	if s.pillEaten.Since(s.tick) < 3 {
		return false
	}
	return s.tick%8 != 0
}
