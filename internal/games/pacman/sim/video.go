package sim

// Color codes, matching the arcade palette indices. The presentation layer
// owns the mapping to real colors; the simulation only writes these.
const (
	ColorBlank              = 0x00
	ColorDefault            = 0x0F
	ColorDot                = 0x10
	ColorPacman             = 0x09
	ColorBlinky             = 0x01
	ColorPinky              = 0x03
	ColorInky               = 0x05
	ColorClyde              = 0x07
	ColorFrightened         = 0x11
	ColorFrightenedBlinking = 0x12
	ColorGhostScore         = 0x18
	ColorEyes               = 0x19
	ColorCherries           = 0x14
	ColorStrawberry         = 0x0F
	ColorPeach              = 0x15
	ColorBell               = 0x16
	ColorApple              = 0x14
	ColorGrapes             = 0x17
	ColorGalaxian           = 0x09
	ColorKey                = 0x16
	ColorWhiteBorder        = 0x1F
	ColorFruitScore         = 0x03
)

// SpriteKind selects what a sprite slot currently shows. Together with the
// sprite's Dir and Phase it fully describes the image; the renderer owns the
// actual glyphs and animation frames.
type SpriteKind int

const (
	SpriteInvisible    SpriteKind = iota
	SpritePacman                  // Phase = animation tick, Dir = facing
	SpritePacmanClosed            // closed-mouth frame shown while frozen
	SpritePacmanDead              // Phase = death animation tick
	SpriteGhostBody               // Phase = animation tick, Dir = facing
	SpriteGhostFright             // Phase = ticks since frightened
	SpriteGhostEyes               // Dir = facing
	SpriteGhostScore              // Phase = 0..3 for 200/400/800/1600
	SpriteFruit                   // Phase = Fruit value
)

// Sprite slot indices.
const (
	SpriteSlotPacman = 0
	SpriteSlotBlinky = 1 + int(GhostBlinky)
	SpriteSlotPinky  = 1 + int(GhostPinky)
	SpriteSlotInky   = 1 + int(GhostInky)
	SpriteSlotClyde  = 1 + int(GhostClyde)
	SpriteSlotFruit  = 5
	NumSprites       = 6
)

// Sprite is write-only presentation state the simulation populates every
// tick. Pos is the sprite's center in pixels.
type Sprite struct {
	Enabled bool
	Pos     Point
	Kind    SpriteKind
	Dir     Dir
	Phase   uint32
	Color   byte
}

// Video is the simulation's complete presentation state: a tile grid with a
// parallel color grid, the sprite slots, and the fade level. The renderer
// reads it after each tick and never writes back; the simulation never draws.
type Video struct {
	Tiles   [TilesY][TilesX]byte
	Colors  [TilesY][TilesX]byte
	Sprites [NumSprites]Sprite
	Fade    uint8 // 0 = fully visible, 255 = fully black
}

// TileAt returns the tile code at a position. Panics when the position is
// outside the grid; callers clamp first.
func (v *Video) TileAt(p Point) byte {
	if p.X < 0 || p.X >= TilesX || p.Y < 0 || p.Y >= TilesY {
		panic("sim: tile position out of range")
	}
	return v.Tiles[p.Y][p.X]
}

// IsBlocking reports whether the tile at p is a wall or the house door.
func (v *Video) IsBlocking(p Point) bool {
	return v.TileAt(p) >= 0xC0
}

// IsDot reports whether the tile at p is an uneaten dot.
func (v *Video) IsDot(p Point) bool {
	return v.TileAt(p) == TileDot
}

// IsPill reports whether the tile at p is an uneaten energizer pill.
func (v *Video) IsPill(p Point) bool {
	return v.TileAt(p) == TilePill
}

// SetTile writes a tile code, keeping the color.
func (v *Video) SetTile(p Point, code byte) {
	v.Tiles[p.Y][p.X] = code
}

// SetColor writes a color code, keeping the tile.
func (v *Video) SetColor(p Point, color byte) {
	v.Colors[p.Y][p.X] = color
}

// SetColorTile writes a tile and color together.
func (v *Video) SetColorTile(p Point, color, code byte) {
	v.Tiles[p.Y][p.X] = code
	v.Colors[p.Y][p.X] = color
}

// Clear fills the whole grid with one tile and color.
func (v *Video) Clear(code, color byte) {
	for y := 0; y < TilesY; y++ {
		for x := 0; x < TilesX; x++ {
			v.Tiles[y][x] = code
			v.Colors[y][x] = color
		}
	}
}

// ColorPlayfield recolors the maze rows, leaving the HUD rows alone.
func (v *Video) ColorPlayfield(color byte) {
	for y := 3; y < TilesY-2; y++ {
		for x := 0; x < TilesX; x++ {
			v.Colors[y][x] = color
		}
	}
}

// InitPlayfield decodes the ASCII maze into the grid and recolors it.
// Called once per fresh maze (game start and maze-cleared), never on death.
func (v *Video) InitPlayfield() {
	v.ColorPlayfield(ColorDot)
	table := mazeDecodeTable()
	i := 0
	for y := 3; y <= 33; y++ {
		for x := 0; x < TilesX; x++ {
			v.Tiles[y][x] = table[mazeTiles[i]&127]
			i++
		}
	}
	// ghost house gate
	v.SetColor(Point{X: 13, Y: 15}, 0x18)
	v.SetColor(Point{X: 14, Y: 15}, 0x18)
}

// convChar maps text characters into the tile glyph range.
func convChar(c byte) byte {
	switch c {
	case ' ':
		return TileSpace
	case '/':
		return 58
	case '-':
		return 59
	case '"':
		return 38
	case '!':
		return 'Z' + 1
	}
	return c
}

// Char writes one text character, keeping the color.
func (v *Video) Char(p Point, c byte) {
	v.Tiles[p.Y][p.X] = convChar(c)
}

// ColorChar writes one text character with a color.
func (v *Video) ColorChar(p Point, color byte, c byte) {
	v.Tiles[p.Y][p.X] = convChar(c)
	v.Colors[p.Y][p.X] = color
}

// Text writes a string into the tile grid, clipped at the right edge.
func (v *Video) Text(p Point, text string) {
	for i := 0; i < len(text) && p.X < TilesX; i++ {
		v.Char(p, text[i])
		p.X++
	}
}

// ColorText writes a string with a color, clipped at the right edge.
func (v *Video) ColorText(p Point, color byte, text string) {
	for i := 0; i < len(text) && p.X < TilesX; i++ {
		v.ColorChar(p, color, text[i])
		p.X++
	}
}

// Score writes a score right-aligned ending at p, always with a trailing
// zero (the arcade displays scores multiplied by ten, so "7" shows as "70").
func (v *Video) Score(p Point, color byte, score uint32) {
	v.ColorChar(p, color, '0')
	p.X--
	for digit := 0; digit < 8; digit++ {
		c := byte(score%10) + '0'
		if p.X >= 0 {
			v.ColorChar(p, color, c)
			p.X--
			score /= 10
			if score == 0 {
				break
			}
		}
	}
}

// DrawTileQuad draws a 2x2 block of consecutive tile codes (lives counter
// and fruit history in the HUD rows).
func (v *Video) DrawTileQuad(p Point, color, code byte) {
	for yy := 0; yy < 2; yy++ {
		for xx := 0; xx < 2; xx++ {
			t := code + byte(yy)*2 + byte(1-xx)
			v.SetColorTile(Point{X: p.X + xx, Y: p.Y + yy}, color, t)
		}
	}
}

// FruitScore shows (or, for FruitNone, clears) the bonus score text at the
// fruit position after the fruit was eaten.
func (v *Video) FruitScore(fruit Fruit) {
	text := [4]byte{' ', ' ', ' ', ' '}
	color := byte(ColorDot)
	if fruit != FruitNone {
		color = ColorFruitScore
		s := fruitScoreText[fruit]
		copy(text[:], s)
	}
	for i := 0; i < 4; i++ {
		v.ColorChar(Point{X: 12 + i, Y: 20}, color, text[i])
	}
}

// fruitScoreText is the displayed bonus value per fruit (display units).
var fruitScoreText = [NumFruits]string{
	FruitNone:       "    ",
	FruitCherries:   "100 ",
	FruitStrawberry: "300 ",
	FruitPeach:      "500 ",
	FruitApple:      "700 ",
	FruitGrapes:     "1000",
	FruitGalaxian:   "2000",
	FruitBell:       "3000",
	FruitKey:        "5000",
}
