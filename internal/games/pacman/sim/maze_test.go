package sim

import "testing"

func TestInitPlayfieldDotCount(t *testing.T) {
	var v Video
	v.InitPlayfield()

	dots, pills := 0, 0
	for y := 0; y < TilesY; y++ {
		for x := 0; x < TilesX; x++ {
			p := Point{X: x, Y: y}
			if v.IsDot(p) {
				dots++
			}
			if v.IsPill(p) {
				pills++
			}
		}
	}
	if pills != 4 {
		t.Errorf("pills = %d, want 4", pills)
	}
	if dots+pills != NumDots {
		t.Errorf("edible tiles = %d, want %d", dots+pills, NumDots)
	}
}

func TestInitPlayfieldPillPositions(t *testing.T) {
	var v Video
	v.InitPlayfield()

	for _, p := range []Point{{X: 1, Y: 6}, {X: 26, Y: 6}, {X: 1, Y: 26}, {X: 26, Y: 26}} {
		if !v.IsPill(p) {
			t.Errorf("expected energizer pill at %v", p)
		}
	}
}

func TestInitPlayfieldBlocking(t *testing.T) {
	var v Video
	v.InitPlayfield()

	blocking := []Point{
		{X: 0, Y: 3},   // top-left corner
		{X: 27, Y: 3},  // top-right corner
		{X: 0, Y: 33},  // bottom-left corner
		{X: 13, Y: 15}, // house door
		{X: 14, Y: 15}, // house door
	}
	for _, p := range blocking {
		if !v.IsBlocking(p) {
			t.Errorf("expected blocking tile at %v", p)
		}
	}

	open := []Point{
		{X: 1, Y: 4},   // first dot row
		{X: 0, Y: 17},  // left tunnel mouth
		{X: 27, Y: 17}, // right tunnel mouth
		{X: 14, Y: 26}, // Pacman's starting tile
	}
	for _, p := range open {
		if v.IsBlocking(p) {
			t.Errorf("expected open tile at %v", p)
		}
	}
}

func TestPixelToTile(t *testing.T) {
	cases := []struct {
		pix  Point
		want Point
	}{
		{Point{X: 0, Y: 0}, Point{X: 0, Y: 0}},
		{Point{X: 7, Y: 7}, Point{X: 0, Y: 0}},
		{Point{X: 8, Y: 0}, Point{X: 1, Y: 0}},
		{Point{X: 112, Y: 212}, Point{X: 14, Y: 26}},
	}
	for _, c := range cases {
		if got := PixelToTile(c.pix); got != c.want {
			t.Errorf("PixelToTile(%v) = %v, want %v", c.pix, got, c.want)
		}
	}
}

func TestClampedTile(t *testing.T) {
	cases := []struct {
		pos  Point
		want Point
	}{
		{Point{X: -1, Y: 10}, Point{X: 0, Y: 10}},
		{Point{X: 28, Y: 10}, Point{X: 27, Y: 10}},
		{Point{X: 10, Y: 0}, Point{X: 10, Y: 3}},
		{Point{X: 10, Y: 35}, Point{X: 10, Y: 33}},
		{Point{X: 10, Y: 10}, Point{X: 10, Y: 10}},
	}
	for _, c := range cases {
		if got := ClampedTile(c.pos); got != c.want {
			t.Errorf("ClampedTile(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestDistToTileMid(t *testing.T) {
	// tile midpoints are at pixel offset 4 within the 8x8 tile
	if got := DistToTileMid(Point{X: 4, Y: 12}); got != (Point{X: 0, Y: 0}) {
		t.Errorf("centered position should have zero distance, got %v", got)
	}
	if got := DistToTileMid(Point{X: 0, Y: 7}); got != (Point{X: 4, Y: -3}) {
		t.Errorf("DistToTileMid(0,7) = %v, want {4 -3}", got)
	}
}

func TestIsTunnel(t *testing.T) {
	for _, p := range []Point{{X: 0, Y: 17}, {X: 5, Y: 17}, {X: 22, Y: 17}, {X: 27, Y: 17}} {
		if !IsTunnel(p) {
			t.Errorf("%v should be tunnel", p)
		}
	}
	for _, p := range []Point{{X: 6, Y: 17}, {X: 21, Y: 17}, {X: 0, Y: 16}, {X: 14, Y: 17}} {
		if IsTunnel(p) {
			t.Errorf("%v should not be tunnel", p)
		}
	}
}

func TestIsRedzone(t *testing.T) {
	for _, p := range []Point{{X: 11, Y: 14}, {X: 16, Y: 14}, {X: 11, Y: 26}, {X: 16, Y: 26}} {
		if !IsRedzone(p) {
			t.Errorf("%v should be in the red zone", p)
		}
	}
	for _, p := range []Point{{X: 10, Y: 14}, {X: 17, Y: 14}, {X: 11, Y: 15}, {X: 14, Y: 20}} {
		if IsRedzone(p) {
			t.Errorf("%v should not be in the red zone", p)
		}
	}
}
