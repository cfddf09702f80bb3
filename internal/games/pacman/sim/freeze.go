package sim

// FreezeReason names one cause for halting actor movement. Several can be
// active at once (e.g. Won while the maze flashes white).
type FreezeReason uint8

const (
	// FreezePrelude holds actors while the start jingle plays.
	FreezePrelude FreezeReason = 1 << iota
	// FreezeReady holds actors during the READY! countdown.
	FreezeReady
	// FreezeEatGhost pauses briefly to show a caught ghost's score.
	FreezeEatGhost
	// FreezeDead holds ghosts while the death animation plays.
	FreezeDead
	// FreezeWon holds everything while the cleared maze flashes.
	FreezeWon
)

// FreezeSet is the set of currently active freeze reasons. Actors move only
// while the set is empty.
type FreezeSet uint8

func (f *FreezeSet) Add(r FreezeReason)    { *f |= FreezeSet(r) }
func (f *FreezeSet) Remove(r FreezeReason) { *f &^= FreezeSet(r) }
func (f FreezeSet) Has(r FreezeReason) bool {
	return f&FreezeSet(r) != 0
}

// Set replaces the whole set with a single reason.
func (f *FreezeSet) Set(r FreezeReason) { *f = FreezeSet(r) }

// Empty reports whether no freeze reason is active.
func (f FreezeSet) Empty() bool { return f == 0 }
