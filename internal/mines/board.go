package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

type BoardState uint8

const (
	Pending BoardState = iota // mines not placed yet
	Playing
	Won
	Lost
)

func (s BoardState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "!"
	}
}

func (s BoardState) Finished() bool {
	return s == Won || s == Lost
}

type Position struct {
	Row, Col int
}

type Board struct {
	cells  [][]Cell
	params Params
	state  BoardState
	closed int
	flags  int
	rnd    *rand.Rand
	todo   deque.Deque[Position]
}

// NewBoard allocates a board with every cell closed. Mines are placed by the
// first call to [Board.Open]. A nil r is replaced with [NewRand].
func NewBoard(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	cells := make([][]Cell, params.Rows)
	for i := range cells {
		cells[i] = make([]Cell, params.Cols)
	}
	board := &Board{
		cells:  cells,
		params: params,
		state:  Pending,
		closed: params.Rows * params.Cols,
		rnd:    r,
	}
	return board, nil
}

func (b *Board) Rows() int { return b.params.Rows }
func (b *Board) Cols() int { return b.params.Cols }
func (b *Board) MineCount() int { return b.params.MineCount }
func (b *Board) Params() Params { return b.params }
func (b *Board) State() BoardState { return b.state }
func (b *Board) ClosedCells() int { return b.closed }
func (b *Board) FlagCount() int { return b.flags }
func (b *Board) Cell(i, j int) Cell { return b.cells[i][j] }
func (b *Board) InBounds(i, j int) bool { return b.params.PointInBounds(i, j) }

// RemainingMines is the mine count minus the placed flags. It goes negative
// when the player over-flags.
func (b *Board) RemainingMines() int {
	return b.params.MineCount - b.flags
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [][]Cell {
	cells := make([][]Cell, len(b.cells))
	for i, row := range b.cells {
		cells[i] = make([]Cell, len(row))
		copy(cells[i], row)
	}
	return cells
}

// Neighbors returns the in-bounds cells around (i, j) from left to right,
// top to bottom.
func (b *Board) Neighbors(i, j int) []Position {
	nbrs := make([]Position, 0, 8)
	for ii := i - 1; ii <= i+1; ii++ {
		for jj := j - 1; jj <= j+1; jj++ {
			if (ii != i || jj != j) && b.InBounds(ii, jj) {
				nbrs = append(nbrs, Position{ii, jj})
			}
		}
	}
	return nbrs
}

// CountAdjacentMines counts the mines around (i, j). Once the mines are
// placed the count is stored on the cell.
func (b *Board) CountAdjacentMines(i, j int) int {
	cell := &b.cells[i][j]
	if cell.counted {
		return int(cell.mines)
	}
	count := 0
	for _, p := range b.Neighbors(i, j) {
		if b.cells[p.Row][p.Col].Kind == Mine {
			count++
		}
	}
	if b.state != Pending {
		cell.mines = int8(count)
		cell.counted = true
	}
	return count
}

func (b *Board) CountSurroundingFlags(i, j int) int {
	count := 0
	for _, p := range b.Neighbors(i, j) {
		if b.cells[p.Row][p.Col].State == Flagged {
			count++
		}
	}
	return count
}

func (b *Board) initialize(i, j int) {
	rows, cols, mineCount := b.params.Unpack()

	b.cells[i][j].Kind = Free
	for _, p := range b.Neighbors(i, j) {
		b.cells[p.Row][p.Col].Kind = Free
	}

	for placed := 0; placed < mineCount; {
		ii, jj := b.rnd.IntN(rows), b.rnd.IntN(cols)
		if b.cells[ii][jj].Kind == Uninitialized {
			b.cells[ii][jj].Kind = Mine
			placed++
		}
	}

	for ii := range b.cells {
		for jj := range b.cells[ii] {
			if b.cells[ii][jj].Kind == Uninitialized {
				b.cells[ii][jj].Kind = Free
			}
		}
	}

	b.state = Playing
	Log.Debug("placed mines", "params", b.params.Seed(), "row", i, "col", j)
}

func (b *Board) finish(state BoardState) {
	b.state = state
	Log.Debug(
		"board finished",
		"state", state,
		"params", b.params.Seed(),
		"closed", b.closed,
	)
}

// reveal opens (i, j) and floods outwards through cells with no adjacent
// mines. The flood stops at numbered cells and never touches flags.
func (b *Board) reveal(i, j int) {
	b.todo.Clear()
	b.todo.PushBack(Position{i, j})
	for b.todo.Len() > 0 {
		p := b.todo.PopFront()
		cell := &b.cells[p.Row][p.Col]
		if cell.State != Closed {
			continue
		}
		cell.Open()
		b.closed--

		if cell.Kind == Mine {
			b.todo.Clear()
			b.finish(Lost)
			return
		}
		if b.CountAdjacentMines(p.Row, p.Col) != 0 {
			continue
		}
		for _, nbr := range b.Neighbors(p.Row, p.Col) {
			if b.cells[nbr.Row][nbr.Col].State == Closed {
				b.todo.PushBack(nbr)
			}
		}
	}
}

// chord opens the closed neighbors of an opened cell once the flags around
// it account for all of its mines.
func (b *Board) chord(i, j int) {
	count := b.CountAdjacentMines(i, j)
	if count == 0 || b.CountSurroundingFlags(i, j) != count {
		return
	}
	for _, p := range b.Neighbors(i, j) {
		if b.cells[p.Row][p.Col].State != Closed {
			continue
		}
		b.reveal(p.Row, p.Col)
		if b.state == Lost {
			return
		}
	}
}

// Open opens the cell at (i, j) and returns its kind. The first call places
// the mines so that (i, j) and its neighbors are free. Opening an opened cell
// chords it; flagged cells and finished boards are left untouched.
//
// Open panics on coordinates outside the board; see [Board.OpenChecked].
func (b *Board) Open(i, j int) CellKind {
	switch b.state {
	case Pending:
		b.initialize(i, j)
	case Won, Lost:
		return b.cells[i][j].Kind
	}

	switch b.cells[i][j].State {
	case Closed:
		b.reveal(i, j)
	case Opened:
		b.chord(i, j)
	case Flagged:
	}

	if b.state == Playing && b.closed == b.params.MineCount {
		b.finish(Won)
	}
	return b.cells[i][j].Kind
}

func (b *Board) OpenChecked(i, j int) (CellKind, error) {
	if !b.InBounds(i, j) {
		return Uninitialized, b.indexError(i, j)
	}
	return b.Open(i, j), nil
}

// Flag toggles the flag on (i, j) and returns the resulting state.
func (b *Board) Flag(i, j int) CellState {
	cell := &b.cells[i][j]
	if b.state.Finished() {
		return cell.State
	}
	before := cell.State
	after := cell.ToggleFlag()
	switch {
	case before == Closed && after == Flagged:
		b.flags++
	case before == Flagged && after == Closed:
		b.flags--
	}
	return after
}

func (b *Board) FlagChecked(i, j int) (CellState, error) {
	if !b.InBounds(i, j) {
		return Closed, b.indexError(i, j)
	}
	return b.Flag(i, j), nil
}

func (b *Board) indexError(i, j int) error {
	return IndexError{Row: i, Col: j, Rows: b.params.Rows, Cols: b.params.Cols}
}

// String draws the grid as the player sees it.
func (b *Board) String() string {
	var sb strings.Builder
	for i, row := range b.cells {
		for j, cell := range row {
			var s string
			switch cell.State {
			case Closed:
				s = " "
			case Flagged:
				s = "*"
			case Opened:
				if cell.Kind == Mine {
					s = "!"
				} else {
					s = strconv.Itoa(b.CountAdjacentMines(i, j))
				}
			}
			fmt.Fprint(&sb, s+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
