package sim

// Fruit identifies the bonus fruit of a round.
type Fruit int

const (
	FruitNone Fruit = iota
	FruitCherries
	FruitStrawberry
	FruitPeach
	FruitApple
	FruitGrapes
	FruitGalaxian
	FruitBell
	FruitKey
	NumFruits
)

func (f Fruit) String() string {
	switch f {
	case FruitNone:
		return "none"
	case FruitCherries:
		return "cherries"
	case FruitStrawberry:
		return "strawberry"
	case FruitPeach:
		return "peach"
	case FruitApple:
		return "apple"
	case FruitGrapes:
		return "grapes"
	case FruitGalaxian:
		return "galaxian"
	case FruitBell:
		return "bell"
	case FruitKey:
		return "key"
	}
	return "unknown"
}

// Tile returns the top-left tile code of the fruit's 2x2 image.
func (f Fruit) Tile() byte {
	switch f {
	case FruitCherries:
		return TileCherries
	case FruitStrawberry:
		return TileStrawberry
	case FruitPeach:
		return TilePeach
	case FruitApple:
		return TileApple
	case FruitGrapes:
		return TileGrapes
	case FruitGalaxian:
		return TileGalaxian
	case FruitBell:
		return TileBell
	case FruitKey:
		return TileKey
	}
	return TileSpace
}

// Color returns the fruit's palette code.
func (f Fruit) Color() byte {
	switch f {
	case FruitCherries:
		return ColorCherries
	case FruitStrawberry:
		return ColorStrawberry
	case FruitPeach:
		return ColorPeach
	case FruitApple:
		return ColorApple
	case FruitGrapes:
		return ColorGrapes
	case FruitGalaxian:
		return ColorGalaxian
	case FruitBell:
		return ColorBell
	case FruitKey:
		return ColorKey
	}
	return ColorBlank
}

// levelSpec describes the per-round difficulty: which fruit appears, how
// many score units it is worth, and how long ghosts stay frightened after
// an energizer.
type levelSpec struct {
	bonusFruit  Fruit
	bonusScore  uint32
	frightTicks uint32
}

// levelSpecs is indexed by round number; rounds past the end reuse the
// last entry.
var levelSpecs = []levelSpec{
	{FruitCherries, 10, 6 * 60},
	{FruitStrawberry, 30, 5 * 60},
	{FruitPeach, 50, 4 * 60},
	{FruitPeach, 50, 3 * 60},
	{FruitApple, 70, 2 * 60},
	{FruitApple, 70, 5 * 60},
	{FruitGrapes, 100, 2 * 60},
	{FruitGrapes, 100, 2 * 60},
	{FruitGalaxian, 200, 1 * 60},
	{FruitGalaxian, 200, 5 * 60},
	{FruitBell, 300, 2 * 60},
	{FruitBell, 300, 1 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 3 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1},
}

// levelSpecFor returns the entry for a round, clamping past the table end.
func levelSpecFor(round int) levelSpec {
	if round >= len(levelSpecs) {
		round = len(levelSpecs) - 1
	}
	return levelSpecs[round]
}

// BonusFruitFor returns the bonus fruit awarded on the given round.
func BonusFruitFor(round int) Fruit {
	if round < 0 {
		round = 0
	}
	return levelSpecFor(round).bonusFruit
}
