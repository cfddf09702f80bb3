package sim

import "testing"

// newGameplaySim returns a simulation that has finished the prelude and
// READY! sequence and is in the interactive part of round one.
func newGameplaySim() *Sim {
	s := New(Config{SkipIntro: true})
	s.Tick(Input{}) // enters the prelude freeze
	for !s.freeze.Empty() {
		s.Tick(Input{})
	}
	return s
}

func TestScatterChaseClock(t *testing.T) {
	s := New(Config{SkipIntro: true})
	s.roundStarted = Trigger{tick: 1000}

	cases := []struct {
		since uint32
		want  GhostState
	}{
		{0, GhostStateScatter},
		{419, GhostStateScatter},
		{420, GhostStateChase},
		{1619, GhostStateChase},
		{1620, GhostStateScatter},
		{2039, GhostStateScatter},
		{2040, GhostStateChase},
		{3239, GhostStateChase},
		{3240, GhostStateScatter},
		{3539, GhostStateScatter},
		{3540, GhostStateChase},
		{4739, GhostStateChase},
		{4740, GhostStateScatter},
		{5039, GhostStateScatter},
		{5040, GhostStateChase},
		{100000, GhostStateChase},
	}
	for _, c := range cases {
		s.tick = 1000 + c.since
		ghost := &s.ghosts[GhostBlinky]
		ghost.State = GhostStateScatter
		ghost.Frightened = NewTrigger()
		s.updateGhostState(ghost)
		if ghost.State != c.want {
			t.Errorf("since=%d: state = %v, want %v", c.since, ghost.State, c.want)
		}
	}
}

func TestScatterChaseTransitionReversesDirection(t *testing.T) {
	s := New(Config{SkipIntro: true})
	s.roundStarted = Trigger{tick: 1000}
	s.tick = 1000 + 420 // exactly at the first scatter-to-chase switch

	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateScatter
	ghost.Dir = DirRight
	ghost.NextDir = DirRight
	ghost.Frightened = NewTrigger()

	s.updateGhostState(ghost)
	if ghost.State != GhostStateChase {
		t.Fatalf("state = %v, want chase", ghost.State)
	}
	if ghost.NextDir != DirLeft {
		t.Errorf("next dir = %v, want the reverse of the previous direction", ghost.NextDir)
	}
}

func TestFrightenedOverridesClock(t *testing.T) {
	s := New(Config{SkipIntro: true})
	s.roundStarted = Trigger{tick: 1000}
	s.tick = 1500 // chase window

	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateChase
	ghost.Frightened.Start(s.tick - 1)

	s.updateGhostState(ghost)
	if ghost.State != GhostStateFrightened {
		t.Errorf("state = %v, want frightened while the fright window is open", ghost.State)
	}

	// past the fright window the clock takes over again, without a
	// direction reversal
	ghost.Dir = DirUp
	ghost.NextDir = DirUp
	s.tick += levelSpecFor(s.round).frightTicks + 1
	s.updateGhostState(ghost)
	if ghost.State != GhostStateChase {
		t.Errorf("state = %v, want chase after the fright window", ghost.State)
	}
	if ghost.NextDir != DirUp {
		t.Errorf("leaving frightened state must not reverse direction, got %v", ghost.NextDir)
	}
}

func TestChaseTargets(t *testing.T) {
	s := newGameplaySim()
	s.pacman.Pos = Point{X: 112, Y: 212} // tile (14,26)
	s.pacman.Dir = DirLeft

	blinky := &s.ghosts[GhostBlinky]
	blinky.State = GhostStateChase
	blinky.Pos = Point{X: 112, Y: 116}
	s.updateGhostTarget(blinky)
	if blinky.TargetPos != (Point{X: 14, Y: 26}) {
		t.Errorf("Blinky target = %v, want Pacman's tile {14 26}", blinky.TargetPos)
	}

	pinky := &s.ghosts[GhostPinky]
	pinky.State = GhostStateChase
	s.updateGhostTarget(pinky)
	if pinky.TargetPos != (Point{X: 10, Y: 26}) {
		t.Errorf("Pinky target = %v, want four tiles ahead {10 26}", pinky.TargetPos)
	}

	// Inky mirrors Blinky around the spot two tiles ahead of Pacman:
	// Blinky sits at (14,14), the spot is (12,26), so the target lands at
	// (10,38), below the playfield. Off-grid targets are fine, they only
	// feed the distance comparison.
	inky := &s.ghosts[GhostInky]
	inky.State = GhostStateChase
	s.updateGhostTarget(inky)
	if inky.TargetPos != (Point{X: 10, Y: 38}) {
		t.Errorf("Inky target = %v, want {10 38}", inky.TargetPos)
	}

	// Clyde chases from afar
	clyde := &s.ghosts[GhostClyde]
	clyde.State = GhostStateChase
	clyde.Pos = Point{X: 112, Y: 116} // tile (14,14), 12 rows from Pacman
	s.updateGhostTarget(clyde)
	if clyde.TargetPos != (Point{X: 14, Y: 26}) {
		t.Errorf("distant Clyde target = %v, want Pacman's tile", clyde.TargetPos)
	}

	// ...but retreats to his corner when close
	clyde.Pos = Point{X: 112, Y: 196} // tile (14,24), 2 rows from Pacman
	s.updateGhostTarget(clyde)
	if clyde.TargetPos != ghostScatterTargets[GhostClyde] {
		t.Errorf("close Clyde target = %v, want scatter corner %v", clyde.TargetPos, ghostScatterTargets[GhostClyde])
	}
}

func TestScatterTargets(t *testing.T) {
	s := newGameplaySim()
	for i := range s.ghosts {
		ghost := &s.ghosts[i]
		ghost.State = GhostStateScatter
		s.updateGhostTarget(ghost)
		if ghost.TargetPos != ghostScatterTargets[i] {
			t.Errorf("%v scatter target = %v, want %v", ghost.Type, ghost.TargetPos, ghostScatterTargets[i])
		}
	}
}

func TestEyesTargetHouseDoor(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateEyes
	s.updateGhostTarget(ghost)
	if ghost.TargetPos != (Point{X: 13, Y: 14}) {
		t.Errorf("eyes target = %v, want the house door {13 14}", ghost.TargetPos)
	}
}

func TestEyesEnterHouseAtDoor(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateEyes
	ghost.Pos = Point{X: anteportasX, Y: anteportasY}
	s.updateGhostState(ghost)
	if ghost.State != GhostStateEnterHouse {
		t.Errorf("state = %v, want enterhouse at the door position", ghost.State)
	}
}

func TestEnterHouseReachesSlotAndLeaves(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostPinky]
	ghost.State = GhostStateEnterHouse
	ghost.Frightened.Start(s.tick - 10)
	if !ghost.Frightened.Before(s.tick, 1000) {
		t.Fatal("frightened window should be open before the test")
	}
	ghost.Pos = ghostHouseTargetPos[GhostPinky]

	s.updateGhostState(ghost)
	if ghost.State != GhostStateLeaveHouse {
		t.Errorf("state = %v, want leavehouse at the home slot", ghost.State)
	}
	if ghost.Frightened.Before(s.tick, 1000) {
		t.Error("entering the house must clear the frightened window")
	}
}

func TestLeaveHouseBecomesScatterAtDoor(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostPinky]
	ghost.State = GhostStateLeaveHouse
	ghost.Dir = DirUp
	ghost.NextDir = DirUp
	ghost.Pos = Point{X: anteportasX, Y: anteportasY}

	s.updateGhostState(ghost)
	if ghost.State != GhostStateScatter {
		t.Errorf("state = %v, want scatter at the door height", ghost.State)
	}
	if ghost.Dir != DirLeft || ghost.NextDir != DirLeft {
		t.Errorf("dir = %v/%v, want left/left after leaving the house", ghost.Dir, ghost.NextDir)
	}
}

func TestHouseLeaveByPersonalDotCounter(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostInky]
	if ghost.State != GhostStateHouse {
		t.Fatalf("Inky should start in the house, got %v", ghost.State)
	}
	ghost.DotCounter = ghost.DotLimit - 1
	s.updateGhostState(ghost)
	if ghost.State != GhostStateHouse {
		t.Error("Inky should stay housed below his dot limit")
	}
	ghost.DotCounter = ghost.DotLimit
	s.updateGhostState(ghost)
	if ghost.State != GhostStateLeaveHouse {
		t.Errorf("state = %v, want leavehouse at the dot limit", ghost.State)
	}
}

func TestHouseLeaveByGlobalDotCounter(t *testing.T) {
	s := newGameplaySim()
	s.globalDotCounterActive = true

	cases := []struct {
		ghost GhostType
		count int
	}{
		{GhostPinky, 7},
		{GhostInky, 17},
		{GhostClyde, 32},
	}
	for _, c := range cases {
		ghost := &s.ghosts[c.ghost]
		ghost.State = GhostStateHouse

		s.globalDotCounter = c.count - 1
		s.updateGhostState(ghost)
		if ghost.State != GhostStateHouse {
			t.Errorf("%v left at global count %d", c.ghost, c.count-1)
		}

		s.globalDotCounter = c.count
		s.updateGhostState(ghost)
		if ghost.State != GhostStateLeaveHouse {
			t.Errorf("%v did not leave at global count %d", c.ghost, c.count)
		}
	}

	// Clyde's release at 32 is also the moment the global counter retires
	if s.globalDotCounterActive {
		t.Error("global dot counter should deactivate when Clyde leaves at 32")
	}
}

func TestHouseLeaveForcedByTimer(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostClyde]
	ghost.State = GhostStateHouse
	ghost.DotCounter = 0

	s.forceLeaveHouse = Trigger{tick: s.tick - 240}
	s.updateGhostState(ghost)
	if ghost.State != GhostStateLeaveHouse {
		t.Errorf("state = %v, want leavehouse after four idle seconds", ghost.State)
	}
	// the timer re-arms so the next housed ghost gets its own window
	if s.forceLeaveHouse.Since(s.tick) != disabledTicks {
		t.Error("force-leave timer should be re-armed for the future")
	}
}

func TestGhostHouseDotCounters(t *testing.T) {
	s := newGameplaySim()

	// personal mode: only the highest-priority waiting ghost counts
	s.updateGhostHouseDotCounters()
	if got := s.ghosts[GhostInky].DotCounter; got != 1 {
		t.Errorf("Inky counter = %d, want 1 (Blinky and Pinky have limit 0)", got)
	}
	if got := s.ghosts[GhostClyde].DotCounter; got != 0 {
		t.Errorf("Clyde counter = %d, want 0 while Inky still counts", got)
	}

	// once Inky is full, Clyde counts
	s.ghosts[GhostInky].DotCounter = s.ghosts[GhostInky].DotLimit
	s.updateGhostHouseDotCounters()
	if got := s.ghosts[GhostClyde].DotCounter; got != 1 {
		t.Errorf("Clyde counter = %d, want 1", got)
	}

	// global mode bypasses the personal counters
	s.globalDotCounterActive = true
	s.updateGhostHouseDotCounters()
	if s.globalDotCounter != 1 {
		t.Errorf("global counter = %d, want 1", s.globalDotCounter)
	}
	if got := s.ghosts[GhostClyde].DotCounter; got != 1 {
		t.Error("personal counters must not advance in global mode")
	}
}

func TestGhostSpeedPatterns(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]

	// frightened ghosts move every other tick
	ghost.State = GhostStateFrightened
	moved := 0
	for i := 0; i < 16; i++ {
		s.tick++
		moved += s.ghostSpeed(ghost)
	}
	if moved != 8 {
		t.Errorf("frightened ghost moved %d pixels in 16 ticks, want 8", moved)
	}

	// eyes move three pixels every two ticks
	ghost.State = GhostStateEyes
	moved = 0
	for i := 0; i < 16; i++ {
		s.tick++
		moved += s.ghostSpeed(ghost)
	}
	if moved != 24 {
		t.Errorf("eyes moved %d pixels in 16 ticks, want 24", moved)
	}

	// normal ghosts skip one tick in seven
	ghost.State = GhostStateScatter
	ghost.Pos = Point{X: 112, Y: 116} // not in a tunnel
	moved = 0
	for i := 0; i < 14; i++ {
		s.tick++
		moved += s.ghostSpeed(ghost)
	}
	if moved != 12 {
		t.Errorf("scatter ghost moved %d pixels in 14 ticks, want 12", moved)
	}

	// tunnel crawl: half speed
	ghost.Pos = Point{X: 2 * TileWidth, Y: 17*TileHeight + 4}
	moved = 0
	for i := 0; i < 16; i++ {
		s.tick++
		moved += s.ghostSpeed(ghost)
	}
	if moved != 8 {
		t.Errorf("tunnel ghost moved %d pixels in 16 ticks, want 8", moved)
	}
}

func TestGhostDirSearchPrefersTarget(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateScatter
	// centered at tile (5,8) heading right, so the decision is made for
	// the four-way junction at (6,8); the target sits straight below
	ghost.Pos = Point{X: 5*TileWidth + 4, Y: 8*TileHeight + 4}
	ghost.Dir = DirRight
	ghost.NextDir = DirRight
	ghost.TargetPos = Point{X: 6, Y: 30}

	forced := s.updateGhostDir(ghost)
	if forced {
		t.Error("normal movement should not be forced")
	}
	// up (6,7), down (6,9) and right (7,8) are all open; down is closest
	// to the target
	if ghost.NextDir != DirDown {
		t.Errorf("next dir = %v, want down", ghost.NextDir)
	}
}

func TestGhostDirSearchRedzoneForbidsUp(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateScatter
	// centered at tile (11,26) heading right; the lookahead tile (12,26)
	// is inside the lower red zone and has an open tile above it
	ghost.Pos = Point{X: 11*TileWidth + 4, Y: 26*TileHeight + 4}
	ghost.Dir = DirRight
	ghost.NextDir = DirRight
	ghost.TargetPos = Point{X: 12, Y: 20}

	s.updateGhostDir(ghost)
	if ghost.NextDir != DirRight {
		t.Errorf("next dir = %v, want right (up is forbidden in the red zone)", ghost.NextDir)
	}

	// eyes are exempt and head straight up to the house
	ghost.State = GhostStateEyes
	ghost.NextDir = DirRight
	s.updateGhostDir(ghost)
	if ghost.NextDir != DirUp {
		t.Errorf("next dir = %v, want up for eyes", ghost.NextDir)
	}
}

func TestGhostDirSearchSkipsReverse(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostBlinky]
	ghost.State = GhostStateScatter
	// centered mid-corridor in the top dot row, heading right, with the
	// target straight behind
	ghost.Pos = Point{X: 18*TileWidth + 4, Y: 4*TileHeight + 4}
	ghost.Dir = DirRight
	ghost.NextDir = DirRight
	ghost.TargetPos = Point{X: 0, Y: 4}

	s.updateGhostDir(ghost)
	// left would be the shortest way but it reverses; up and down are
	// walls, so the ghost carries on to the right
	if ghost.NextDir != DirRight {
		t.Errorf("next dir = %v, want right (reversing is never allowed)", ghost.NextDir)
	}
}

func TestHouseBounceForcedMovement(t *testing.T) {
	s := newGameplaySim()
	ghost := &s.ghosts[GhostClyde]
	if ghost.State != GhostStateHouse {
		t.Fatalf("Clyde should start housed, got %v", ghost.State)
	}

	// at the bottom of the house slot the ghost turns upward
	ghost.Pos = Point{X: 128, Y: 18 * TileHeight}
	if forced := s.updateGhostDir(ghost); !forced {
		t.Error("house movement should be forced")
	}
	if ghost.Dir != DirUp {
		t.Errorf("dir = %v, want up at the slot bottom", ghost.Dir)
	}

	// at the top it turns back down
	ghost.Pos = Point{X: 128, Y: 17 * TileHeight}
	s.updateGhostDir(ghost)
	if ghost.Dir != DirDown {
		t.Errorf("dir = %v, want down at the slot top", ghost.Dir)
	}
}
