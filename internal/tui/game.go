package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/sweeper/internal/mines"
)

// boundedIndex is a cursor coordinate clamped to [0, max).
type boundedIndex struct {
	index, max int
}

func (b *boundedIndex) inc() {
	if b.index+1 < b.max {
		b.index++
	}
}

func (b *boundedIndex) dec() {
	if b.index > 0 {
		b.index--
	}
}

type Game struct {
	logger *slog.Logger
	board  *mines.Board
	screen tcell.Screen
	i, j   boundedIndex
}

func New(logger *slog.Logger, board *mines.Board, screen tcell.Screen) *Game {
	return &Game{
		logger: logger,
		board:  board,
		screen: screen,
		i:      boundedIndex{max: board.Rows()},
		j:      boundedIndex{max: board.Cols()},
	}
}

func (g *Game) Cursor() (i, j int) {
	return g.i.index, g.j.index
}

// Run draws the board and handles events until the player quits, the
// events channel is closed or ctx is done.
func (g *Game) Run(ctx context.Context, events <-chan tcell.Event) error {
	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.Handle(ev) {
				return nil
			}
			g.Draw()
		}
	}
}

// Handle applies a single event and reports whether the player asked to quit.
func (g *Game) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			g.i.dec()
		case tcell.KeyDown:
			g.i.inc()
		case tcell.KeyLeft:
			g.j.dec()
		case tcell.KeyRight:
			g.j.inc()
		case tcell.KeyRune:
			return g.handleRune(ev.Rune())
		}
	}
	return false
}

func (g *Game) handleRune(r rune) (quit bool) {
	switch r {
	case 'q':
		return true
	case 'k':
		g.i.dec()
	case 'j':
		g.i.inc()
	case 'h':
		g.j.dec()
	case 'l':
		g.j.inc()
	case 'a', ' ':
		if g.board.State().Finished() {
			break
		}
		kind := g.board.Open(g.i.index, g.j.index)
		g.logger.Debug("open", "row", g.i.index, "col", g.j.index, "kind", kind)
		g.logFinished()
	case 's', 'f':
		if g.board.State().Finished() {
			break
		}
		state := g.board.Flag(g.i.index, g.j.index)
		g.logger.Debug("flag", "row", g.i.index, "col", g.j.index, "state", state)
	}
	return false
}

func (g *Game) logFinished() {
	state := g.board.State()
	if !state.Finished() {
		return
	}
	g.logger.Info(
		"game finished",
		slog.String("state", state.String()),
		slog.String("params", g.board.Params().Seed()),
	)
}

// Result is the line printed once the screen is torn down.
func (g *Game) Result() string {
	switch g.board.State() {
	case mines.Won:
		return "You win"
	case mines.Lost:
		return "You lost"
	default:
		return "Game stopped"
	}
}

func (g *Game) status() string {
	switch g.board.State() {
	case mines.Won, mines.Lost:
		return fmt.Sprintf("%s! press q to quit", g.Result())
	default:
		return fmt.Sprintf("mines: %d", g.board.RemainingMines())
	}
}

// Draw renders the framed board with a status line underneath.
//
//	┌───────┐
//	│ █ █ 1 │
//	└───────┘
func (g *Game) Draw() {
	rows, cols := g.board.Rows(), g.board.Cols()
	inner := strings.Repeat("─", cols*2+1)

	g.screen.Clear()
	g.puts(0, 0, "┌"+inner+"┐", baseStyle)
	for i := range rows {
		y := i + 1
		g.puts(0, y, "│", baseStyle)
		g.puts(cols*2+2, y, "│", baseStyle)
		for j := range cols {
			glyph := Glyph(g.board, i, j)
			cursor := i == g.i.index && j == g.j.index
			style := cellStyle(g.board, i, j, glyph, cursor)
			g.screen.SetContent(j*2+2, y, glyph, nil, style)
		}
	}
	g.puts(0, rows+1, "└"+inner+"┘", baseStyle)
	g.puts(0, rows+2, g.status(), baseStyle)
	g.screen.Show()
}

func (g *Game) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
