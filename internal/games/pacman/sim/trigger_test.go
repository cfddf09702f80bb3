package sim

import "testing"

func TestTriggerStartFiresNextTick(t *testing.T) {
	tr := NewTrigger()
	tr.Start(10)

	if tr.Now(10) {
		t.Error("trigger should not fire on the tick it was started")
	}
	if !tr.Now(11) {
		t.Error("trigger should fire one tick after Start")
	}
	if tr.Now(12) {
		t.Error("Now should only be true on the fire tick")
	}
}

func TestTriggerStartAfter(t *testing.T) {
	tr := NewTrigger()
	tr.StartAfter(100, 30)

	if tr.Now(129) {
		t.Error("trigger fired early")
	}
	if !tr.Now(130) {
		t.Error("trigger should fire exactly 30 ticks after StartAfter")
	}
}

func TestTriggerSince(t *testing.T) {
	tr := NewTrigger()
	if got := tr.Since(500); got != disabledTicks {
		t.Errorf("disabled trigger Since = %d, want disabled sentinel", got)
	}

	tr.Start(10)
	if got := tr.Since(10); got != disabledTicks {
		t.Errorf("Since before fire tick = %d, want disabled sentinel", got)
	}
	if got := tr.Since(11); got != 0 {
		t.Errorf("Since on fire tick = %d, want 0", got)
	}
	if got := tr.Since(31); got != 20 {
		t.Errorf("Since 20 ticks later = %d, want 20", got)
	}
}

func TestTriggerBetween(t *testing.T) {
	tr := NewTrigger()
	if tr.Between(50, 0, 10) {
		t.Error("disabled trigger should never be Between")
	}

	tr.Start(10)
	cases := []struct {
		tick  uint32
		begin uint32
		end   uint32
		want  bool
	}{
		{10, 0, 10, false}, // not fired yet
		{11, 0, 10, true},  // since == 0
		{20, 0, 10, true},  // since == 9
		{21, 0, 10, false}, // since == 10, end is exclusive
		{21, 10, 20, true},
	}
	for _, c := range cases {
		if got := tr.Between(c.tick, c.begin, c.end); got != c.want {
			t.Errorf("Between(tick=%d, %d, %d) = %v, want %v", c.tick, c.begin, c.end, got, c.want)
		}
	}
}

func TestTriggerBetweenPanicsOnBadRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Between with begin >= end should panic")
		}
	}()
	tr := NewTrigger()
	tr.Start(0)
	tr.Between(5, 10, 10)
}

func TestTriggerAfter(t *testing.T) {
	tr := NewTrigger()
	if tr.After(1000, 0) {
		t.Error("disabled trigger should never be After")
	}

	tr.Start(10)
	if tr.After(10, 0) {
		t.Error("After should be false before the fire tick")
	}
	if !tr.After(11, 0) {
		t.Error("After(0) should be true from the fire tick on")
	}
	if tr.After(70, 60) {
		t.Error("After(60) true too early")
	}
	if !tr.After(71, 60) {
		t.Error("After(60) should be true 60 ticks past the fire tick")
	}
	if !tr.After(200, 60) {
		t.Error("After should stay true")
	}
}

func TestTriggerAfterOnce(t *testing.T) {
	tr := NewTrigger()
	tr.Start(10)

	fired := 0
	for tick := uint32(0); tick < 200; tick++ {
		if tr.AfterOnce(tick, 60) {
			fired++
			if tick != 71 {
				t.Errorf("AfterOnce fired on tick %d, want 71", tick)
			}
		}
	}
	if fired != 1 {
		t.Errorf("AfterOnce fired %d times, want exactly once", fired)
	}
}

func TestTriggerBefore(t *testing.T) {
	tr := NewTrigger()
	if tr.Before(0, 100) {
		t.Error("disabled trigger should never be Before")
	}

	tr.Start(10)
	if tr.Before(10, 100) {
		t.Error("Before should be false until the trigger fires")
	}
	if !tr.Before(11, 100) {
		t.Error("Before(100) should be true on the fire tick")
	}
	if !tr.Before(110, 100) {
		t.Error("Before(100) should be true while since < 100")
	}
	if tr.Before(111, 100) {
		t.Error("Before(100) should turn false once since reaches 100")
	}
}

func TestTriggerDisable(t *testing.T) {
	tr := NewTrigger()
	tr.Start(10)
	tr.Disable()

	if tr.Now(11) {
		t.Error("disabled trigger must not fire")
	}
	if tr.After(1000, 0) || tr.Before(1000, 10) || tr.Between(1000, 0, 10) {
		t.Error("no predicate should hold for a disabled trigger")
	}
}

func TestTriggerRearmOverwrites(t *testing.T) {
	tr := NewTrigger()
	tr.Start(10)
	tr.Start(50)

	if tr.Now(11) {
		t.Error("re-arming should cancel the earlier fire tick")
	}
	if !tr.Now(51) {
		t.Error("re-armed trigger should fire from the new tick")
	}
	if got := tr.Since(61); got != 10 {
		t.Errorf("Since after re-arm = %d, want 10", got)
	}
}
