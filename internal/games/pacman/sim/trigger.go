package sim

// disabledTicks is the sentinel fire tick of a disabled trigger. It is far
// enough in the future that it never compares equal to a real tick.
const disabledTicks = 0xFFFFFFFF

// Trigger schedules an action for a future tick. It holds at most one pending
// fire tick; re-arming overwrites it. A fired trigger never clears itself:
// callers test it repeatedly with Now/Since/After and friends, so one armed
// trigger can drive both a one-shot event and everything timed relative to it.
// This is the only timing mechanism in the simulation; there is no event queue.
type Trigger struct {
	tick uint32
}

// NewTrigger returns a disabled trigger.
func NewTrigger() Trigger {
	return Trigger{tick: disabledTicks}
}

// Start arms the trigger to fire on the next tick. Actions started during
// tick T are observed as fired at T+1, which avoids same-tick ordering
// hazards between the code that arms and the code that tests.
func (t *Trigger) Start(tick uint32) {
	t.tick = tick + 1
}

// StartAfter arms the trigger to fire in the given number of ticks.
func (t *Trigger) StartAfter(tick, ticks uint32) {
	t.tick = tick + ticks
}

// Disable disarms the trigger; no predicate will be true for it afterwards.
func (t *Trigger) Disable() {
	t.tick = disabledTicks
}

// Now reports whether the trigger fires exactly on the given tick.
func (t Trigger) Now(tick uint32) bool {
	return t.tick == tick
}

// Since returns the number of ticks elapsed since the trigger fired, or
// disabledTicks if it has not fired yet (including when disabled).
func (t Trigger) Since(tick uint32) uint32 {
	if tick >= t.tick {
		return tick - t.tick
	}
	return disabledTicks
}

// Between reports whether the ticks elapsed since firing are in [begin, end).
// Panics if begin >= end.
func (t Trigger) Between(tick, begin, end uint32) bool {
	if begin >= end {
		panic("sim: trigger Between requires begin < end")
	}
	if t.tick == disabledTicks {
		return false
	}
	s := t.Since(tick)
	return s >= begin && s < end
}

// After reports whether at least the given number of ticks have elapsed
// since the trigger fired.
func (t Trigger) After(tick, ticks uint32) bool {
	s := t.Since(tick)
	return s != disabledTicks && s >= ticks
}

// AfterOnce is true on exactly one tick: when precisely the given number of
// ticks have elapsed since firing. Used to sequence one-shot follow-ups.
func (t Trigger) AfterOnce(tick, ticks uint32) bool {
	return t.Since(tick) == ticks
}

// Before reports whether fewer than the given number of ticks have elapsed
// since the trigger fired.
func (t Trigger) Before(tick, ticks uint32) bool {
	s := t.Since(tick)
	return s != disabledTicks && s < ticks
}
