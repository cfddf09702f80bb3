package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Fade thresholds. Below fadeDim the board renders normally, above it all
// cells gray out, and from fadeBlack on nothing is drawn at all.
const (
	fadeDim   = 64
	fadeBlack = 192
)

// wallRunes maps blocking tile codes to a pair of box-drawing runes, one per
// screen cell. The outer border and the ghost house use double lines, inner
// wall blocks single lines. Codes missing from the table fall back to solid
// blocks.
var wallRunes = map[byte][2]rune{
	0xD1: {'╔', '═'}, // outer top-left corner
	0xD0: {'═', '╗'}, // outer top-right corner
	0xD5: {'╚', '═'}, // outer bottom-left corner
	0xD4: {'═', '╝'}, // outer bottom-right corner
	0xDB: {'═', '═'}, // outer wall, top edge
	0xDC: {'═', '═'}, // outer wall, bottom edge
	0xD3: {'║', ' '}, // outer wall, left edge
	0xD2: {' ', '║'}, // outer wall, right edge
	0xFB: {'╗', ' '}, // top wall turning down around the middle spike
	0xFA: {' ', '╔'}, // top wall resuming after the middle spike
	0xD7: {'╚', '═'}, // bottom-left alcove corners
	0xD9: {'╔', '═'},
	0xD6: {'═', '╝'}, // bottom-right alcove corners
	0xD8: {'═', '╗'},
	0xDF: {'─', '─'}, // block top edge
	0xE5: {'─', '─'}, // block bottom edge
	0xE7: {'┌', '─'}, // block top-left corner
	0xE6: {'─', '┐'}, // block top-right corner
	0xEB: {'└', '─'}, // block bottom-left corner
	0xEA: {'─', '┘'}, // block bottom-right corner
	0xE9: {'│', ' '}, // block left edge
	0xE8: {' ', '│'}, // block right edge
	0xF5: {'┘', ' '}, // stem lines turning into a crossbar
	0xF4: {' ', '└'},
	0xF3: {'┐', ' '},
	0xF2: {' ', '┌'},
	0xED: {'╔', '═'}, // ghost house corners and door jambs
	0xEC: {'═', '╗'},
	0xEF: {'╚', '═'},
	0xEE: {'═', '╝'},
	0xDD: {'═', '═'},
	0xF1: {'═', '═'},
	0xF0: {'═', '═'},
}

// galleryRunes is the 2x3 attract-screen ghost image, two runes per tile,
// top row first.
var galleryRunes = [6][2]rune{
	{'▟', '█'},
	{'█', '▙'},
	{'█', '█'},
	{'█', '█'},
	{'▙', '▟'},
	{'▙', '▟'},
}

// fruitRunes is the bonus fruit glyph per fruit kind.
var fruitRunes = [sim.NumFruits]rune{
	sim.FruitNone:       ' ',
	sim.FruitCherries:   '%',
	sim.FruitStrawberry: '♥',
	sim.FruitPeach:      '○',
	sim.FruitApple:      '●',
	sim.FruitGrapes:     '&',
	sim.FruitGalaxian:   '✦',
	sim.FruitBell:       '∩',
	sim.FruitKey:        '†',
}

// ghostScoreText is the bonus value shown where a ghost was eaten.
var ghostScoreText = [4]string{"200", "400", "800", "1600"}

// deathFrames is the collapse animation for the dying Pac-Man.
var deathFrames = []rune{'●', '◓', '◒', '○', '∘', '·', '✶', ' '}

// renderVideo draws the simulation's tile grid and sprites onto the screen,
// two cells per tile column so the maze keeps its proportions.
func renderVideo(dst *core.Screen, v *sim.Video, ox, oy int) {
	if v.Fade >= fadeBlack {
		return
	}

	for y := 0; y < sim.TilesY; y++ {
		for x := 0; x < sim.TilesX; x++ {
			drawTile(dst, ox+2*x, oy+y, v.Tiles[y][x], v.Colors[y][x])
		}
	}

	// Sprites draw back to front so the lowest slot ends up on top.
	for i := sim.NumSprites - 1; i >= 0; i-- {
		drawSprite(dst, &v.Sprites[i], ox, oy)
	}

	if v.Fade >= fadeDim {
		dimBoard(dst, ox, oy)
	}
}

// drawTile draws one maze tile into the two screen cells at (sx, sy) and
// (sx+1, sy). Color zero means the tile is currently hidden.
func drawTile(dst *core.Screen, sx, sy int, code, color byte) {
	if color == sim.ColorBlank {
		return
	}

	switch {
	case code == sim.TileSpace:
		return

	case code == sim.TileDot:
		// The dot sits in the right cell, where the tile's pixel center
		// lands, so Pac-Man visibly covers it the tick before eating.
		dst.SetCell(sx+1, sy, '·', paletteColor(color))

	case code == sim.TilePill:
		dst.SetCell(sx+1, sy, '●', paletteColor(color))

	case code == sim.TileDoor:
		dst.SetCell(sx, sy, '─', core.ColorBrightMagenta)
		dst.SetCell(sx+1, sy, '─', core.ColorBrightMagenta)

	case code >= 0xC0:
		c := core.ColorBlue
		if color == sim.ColorWhiteBorder {
			c = core.ColorBrightWhite
		}
		r, ok := wallRunes[code]
		if !ok {
			r = [2]rune{'█', '█'}
		}
		if r[0] != ' ' {
			dst.SetCell(sx, sy, r[0], c)
		}
		if r[1] != ' ' {
			dst.SetCell(sx+1, sy, r[1], c)
		}

	case code >= sim.TileGhost && code < sim.TileGhost+6:
		r := galleryRunes[code-sim.TileGhost]
		c := paletteColor(color)
		dst.SetCell(sx, sy, r[0], c)
		dst.SetCell(sx+1, sy, r[1], c)

	case code >= sim.TileCherries && code < sim.TileCherries+32:
		drawQuadCell(dst, sx, sy, (code-sim.TileCherries)%4, paletteColor(color))

	case code >= sim.TileLife && code < sim.TileLife+4:
		drawQuadCell(dst, sx, sy, (code-sim.TileLife)%4, paletteColor(color))

	default:
		dst.SetCell(sx, sy, textRune(code), paletteColor(color))
	}
}

// drawQuadCell draws one tile of a 2x2 icon quad (lives counter, fruit
// history) as a rounded block corner. The remainder selects the corner:
// 1 top-left, 0 top-right, 3 bottom-left, 2 bottom-right.
func drawQuadCell(dst *core.Screen, sx, sy int, rem byte, c core.Color) {
	switch rem {
	case 1:
		dst.SetCell(sx, sy, '▗', c)
		dst.SetCell(sx+1, sy, '█', c)
	case 0:
		dst.SetCell(sx, sy, '█', c)
		dst.SetCell(sx+1, sy, '▖', c)
	case 3:
		dst.SetCell(sx, sy, '▝', c)
		dst.SetCell(sx+1, sy, '█', c)
	case 2:
		dst.SetCell(sx, sy, '█', c)
		dst.SetCell(sx+1, sy, '▘', c)
	}
}

// textRune maps a text tile code back to its display rune, undoing the
// glyph remapping the simulation applies when storing text.
func textRune(code byte) rune {
	switch code {
	case 58:
		return '/'
	case 59:
		return '-'
	case 38:
		return '"'
	case 'Z' + 1:
		return '!'
	}
	return rune(code)
}

// drawSprite draws one sprite. Sprite positions are pixel centers; the
// horizontal axis renders at half-tile resolution for smoother movement.
func drawSprite(dst *core.Screen, sp *sim.Sprite, ox, oy int) {
	if !sp.Enabled || sp.Kind == sim.SpriteInvisible {
		return
	}
	sx := ox + sp.Pos.X/4
	sy := oy + sp.Pos.Y/8
	c := paletteColor(sp.Color)

	switch sp.Kind {
	case sim.SpritePacman:
		dst.SetCell(sx, sy, pacmanRune(sp.Dir, sp.Phase), c)

	case sim.SpritePacmanClosed:
		dst.SetCell(sx, sy, '●', c)

	case sim.SpritePacmanDead:
		idx := int(sp.Phase / 12)
		if idx >= len(deathFrames) {
			idx = len(deathFrames) - 1
		}
		dst.SetCell(sx, sy, deathFrames[idx], c)

	case sim.SpriteGhostBody, sim.SpriteGhostFright:
		dst.SetCell(sx, sy, 'Ω', c)

	case sim.SpriteGhostEyes:
		dst.SetCell(sx, sy, '∞', c)

	case sim.SpriteGhostScore:
		text := ghostScoreText[sp.Phase&3]
		dst.DrawColorText(sx-len(text)/2, sy, text, c)

	case sim.SpriteFruit:
		if sp.Phase < uint32(sim.NumFruits) {
			dst.SetCell(sx, sy, fruitRunes[sp.Phase], c)
		}
	}
}

// pacmanRune picks the Pac-Man glyph: the mouth chomps open and shut while
// moving, opening toward the travel direction.
func pacmanRune(d sim.Dir, phase uint32) rune {
	if (phase/4)&1 == 0 {
		return '●'
	}
	switch d {
	case sim.DirUp:
		return '◒'
	case sim.DirDown:
		return '◓'
	case sim.DirLeft:
		return '◑'
	case sim.DirRight:
		return '◐'
	}
	return '●'
}

// dimBoard grays out every drawn cell of the board area during fades.
func dimBoard(dst *core.Screen, ox, oy int) {
	for y := 0; y < boardH; y++ {
		for x := 0; x < boardW; x++ {
			cell := dst.GetCell(ox+x, oy+y)
			if cell.Rune != ' ' {
				dst.SetCell(ox+x, oy+y, cell.Rune, core.ColorGray)
			}
		}
	}
}

// paletteColor maps the simulation's arcade palette codes to terminal
// colors. Unlisted codes render white.
func paletteColor(c byte) core.Color {
	switch c {
	case sim.ColorBlinky:
		return core.ColorBrightRed
	case sim.ColorPinky:
		return core.ColorBrightMagenta
	case sim.ColorInky:
		return core.ColorBrightCyan
	case sim.ColorClyde:
		return core.ColorOrange
	case sim.ColorPacman:
		return core.ColorBrightYellow
	case sim.ColorDot:
		return core.ColorBrightWhite
	case sim.ColorFrightened:
		return core.ColorBlue
	case sim.ColorFrightenedBlinking:
		return core.ColorBrightWhite
	case sim.ColorCherries:
		return core.ColorBrightRed
	case sim.ColorPeach:
		return core.ColorOrange
	case sim.ColorBell:
		return core.ColorBrightYellow
	case sim.ColorGrapes:
		return core.ColorBrightGreen
	case sim.ColorGhostScore:
		return core.ColorBrightCyan
	case sim.ColorEyes:
		return core.ColorBrightWhite
	case sim.ColorWhiteBorder:
		return core.ColorBrightWhite
	}
	return core.ColorWhite
}
