package sim

// Playfield geometry. The visible grid is 28x36 tiles of 8x8 pixels; the top
// three and bottom two rows are HUD, the maze occupies rows 3..33. Actor
// positions are pixel coordinates anchored at the sprite center.
const (
	TileWidth  = 8
	TileHeight = 8
	TilesX     = 28
	TilesY     = 36
	PixelsX    = TilesX * TileWidth
	PixelsY    = TilesY * TileHeight
)

// Tile codes. Codes at and above 0xC0 are blocking (walls and the ghost
// house door); printable text is stored at its ASCII code with a few
// remapped glyphs (see convChar).
const (
	TileSpace      = 0x40
	TileDot        = 0x10
	TilePill       = 0x14
	TileGhost      = 0xB0 // 2x3 ghost image base (attract screen)
	TileLife       = 0x20 // 2x2 life counter quad base
	TileCherries   = 0x90
	TileStrawberry = 0x94
	TilePeach      = 0x98
	TileBell       = 0x9C
	TileApple      = 0xA0
	TileGrapes     = 0xA4
	TileGalaxian   = 0xA8
	TileKey        = 0xAC
	TileDoor       = 0xCF
)

// NumDots is the number of edible tiles in a fresh maze (240 dots + 4 pills).
const NumDots = 244

// mazeTiles is the ASCII description of the maze, 31 rows by 28 columns,
// decoded into tile codes once per fresh maze. Characters not in the decode
// table become dots.
const mazeTiles = "" +
	//0123456789012345678901234567
	"0UUUUUUUUUUUU45UUUUUUUUUUUU1" + // 3
	"L............rl............R" + // 4
	"L.ebbf.ebbbf.rl.ebbbf.ebbf.R" + // 5
	"LPr  l.r   l.rl.r   l.r  lPR" + // 6
	"L.guuh.guuuh.gh.guuuh.guuh.R" + // 7
	"L..........................R" + // 8
	"L.ebbf.ef.ebbbbbbf.ef.ebbf.R" + // 9
	"L.guuh.rl.guuyxuuh.rl.guuh.R" + // 10
	"L......rl....rl....rl......R" + // 11
	"2BBBBf.rzbbf rl ebbwl.eBBBB3" + // 12
	"     L.rxuuh gh guuyl.R     " + // 13
	"     L.rl          rl.R     " + // 14
	"     L.rl mjs--tjn rl.R     " + // 15
	"UUUUUh.gh i      q gh.gUUUUU" + // 16
	"      .   i      q   .      " + // 17
	"BBBBBf.ef i      q ef.eBBBBB" + // 18
	"     L.rl okkkkkkp rl.R     " + // 19
	"     L.rl          rl.R     " + // 20
	"     L.rl ebbbbbbf rl.R     " + // 21
	"0UUUUh.gh guuyxuuh gh.gUUUU1" + // 22
	"L............rl............R" + // 23
	"L.ebbf.ebbbf.rl.ebbbf.ebbf.R" + // 24
	"L.guyl.guuuh.gh.guuuh.rxuh.R" + // 25
	"LP..rl.......  .......rl..PR" + // 26
	"6bf.rl.ef.ebbbbbbf.ef.rl.eb8" + // 27
	"7uh.gh.rl.guuyxuuh.rl.gh.gu9" + // 28
	"L......rl....rl....rl......R" + // 29
	"L.ebbbbwzbbf.rl.ebbwzbbbbf.R" + // 30
	"L.guuuuuuuuh.gh.guuuuuuuuh.R" + // 31
	"L..........................R" + // 32
	"2BBBBBBBBBBBBBBBBBBBBBBBBBB3" //  33

// mazeDecodeTable maps maze ASCII characters to tile codes.
func mazeDecodeTable() [128]byte {
	var t [128]byte
	for i := range t {
		t[i] = TileDot
	}
	t[' '] = TileSpace
	t['0'] = 0xD1
	t['1'] = 0xD0
	t['2'] = 0xD5
	t['3'] = 0xD4
	t['4'] = 0xFB
	t['5'] = 0xFA
	t['6'] = 0xD7
	t['7'] = 0xD9
	t['8'] = 0xD6
	t['9'] = 0xD8
	t['U'] = 0xDB
	t['L'] = 0xD3
	t['R'] = 0xD2
	t['B'] = 0xDC
	t['b'] = 0xDF
	t['e'] = 0xE7
	t['f'] = 0xE6
	t['g'] = 0xEB
	t['h'] = 0xEA
	t['l'] = 0xE8
	t['r'] = 0xE9
	t['u'] = 0xE5
	t['w'] = 0xF5
	t['x'] = 0xF2
	t['y'] = 0xF3
	t['z'] = 0xF4
	t['m'] = 0xED
	t['n'] = 0xEC
	t['o'] = 0xEF
	t['p'] = 0xEE
	t['j'] = 0xDD
	t['i'] = 0xD2
	t['k'] = 0xDB
	t['q'] = 0xD3
	t['s'] = 0xF1
	t['t'] = 0xF0
	t['-'] = TileDoor
	t['P'] = TilePill
	return t
}

// PixelToTile converts a pixel position to the tile containing it.
func PixelToTile(p Point) Point {
	return Point{X: p.X / TileWidth, Y: p.Y / TileHeight}
}

// ClampedTile clamps a tile position to the addressable playfield (the HUD
// rows at the top and bottom are excluded).
func ClampedTile(p Point) Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X >= TilesX {
		p.X = TilesX - 1
	}
	if p.Y < 3 {
		p.Y = 3
	} else if p.Y >= TilesY-2 {
		p.Y = TilesY - 3
	}
	return p
}

// DistToTileMid returns the per-axis signed distance from a pixel position
// to the center of its tile. Both components are zero exactly when the
// position is centered, which is the only moment an actor may pick a new
// direction.
func DistToTileMid(p Point) Point {
	return Point{
		X: TileWidth/2 - p.X%TileWidth,
		Y: TileHeight/2 - p.Y%TileHeight,
	}
}

// IsTunnel reports whether a tile is in one of the two teleport corridors.
func IsTunnel(p Point) bool {
	return p.Y == 17 && (p.X <= 5 || p.X >= 22)
}

// IsRedzone reports whether a tile is in one of the two zones where ghosts
// must not head upward (an arcade rule independent of wall geometry).
func IsRedzone(p Point) bool {
	return p.X >= 11 && p.X <= 16 && (p.Y == 14 || p.Y == 26)
}
