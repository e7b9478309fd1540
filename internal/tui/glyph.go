package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/sweeper/internal/mines"
)

const (
	closedGlyph  = '█'
	flaggedGlyph = '▒'
	mineGlyph    = '●'
	blankGlyph   = ' '
)

var (
	baseStyle   = tcell.StyleDefault
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	// blank cells have nothing to color, so the cursor paints the background
	blankCursorStyle = tcell.StyleDefault.Background(tcell.ColorRed)
	mineStyle        = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Glyph picks the rune for the cell at (i, j). Once the board is finished
// closed mines are shown as mines.
func Glyph(b *mines.Board, i, j int) rune {
	cell := b.Cell(i, j)
	switch cell.State {
	case mines.Flagged:
		return flaggedGlyph
	case mines.Closed:
		if b.State().Finished() && cell.Kind == mines.Mine {
			return mineGlyph
		}
		return closedGlyph
	case mines.Opened:
		switch cell.Kind {
		case mines.Mine:
			return mineGlyph
		case mines.Free:
			n := b.CountAdjacentMines(i, j)
			if n == 0 {
				return blankGlyph
			}
			return rune('0' + n)
		case mines.Uninitialized:
			return closedGlyph
		}
	}
	return '!'
}

// cellStyle colors the cursor while the game is on, and the mines once it
// is over.
func cellStyle(b *mines.Board, i, j int, glyph rune, cursor bool) tcell.Style {
	if b.State().Finished() {
		if b.Cell(i, j).Kind == mines.Mine {
			return mineStyle
		}
		return baseStyle
	}
	if !cursor {
		return baseStyle
	}
	if glyph == blankGlyph {
		return blankCursorStyle
	}
	return cursorStyle
}
