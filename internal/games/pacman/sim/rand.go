package sim

// Rand is the deterministic random source used for frightened-ghost
// wandering. It is injectable so tests and replays can fix the sequence;
// the simulation reseeds it at the start of every round.
type Rand interface {
	Seed(seed uint32)
	Next() uint32
}

// Xorshift32 is the default Rand implementation, a 32-bit xorshift
// generator. The zero value is unusable; Seed must be called first
// (the simulation always does).
type Xorshift32 struct {
	x uint32
}

// Seed sets the generator state.
func (g *Xorshift32) Seed(seed uint32) {
	g.x = seed
}

// Next advances the generator and returns the next value.
func (g *Xorshift32) Next() uint32 {
	x := g.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.x = x
	return x
}
