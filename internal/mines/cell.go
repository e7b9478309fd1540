package mines

// CellKind is what a cell contains. Every cell is Uninitialized until the
// first open places the mines.
type CellKind uint8

const (
	Uninitialized CellKind = iota
	Free
	Mine
)

func (k CellKind) String() string {
	switch k {
	case Uninitialized:
		return "uninitialized"
	case Free:
		return "free"
	case Mine:
		return "mine"
	default:
		return "!"
	}
}

// CellState is what the player can see of a cell.
type CellState uint8

const (
	Closed CellState = iota
	Flagged
	Opened
)

func (s CellState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Flagged:
		return "flagged"
	case Opened:
		return "opened"
	default:
		return "!"
	}
}

type Cell struct {
	Kind  CellKind
	State CellState

	// adjacent mine count, valid once counted is set
	mines   int8
	counted bool
}

// Open opens a closed cell. Flagged and opened cells are left as they are.
func (c *Cell) Open() CellKind {
	if c.State == Closed {
		c.State = Opened
	}
	return c.Kind
}

// ToggleFlag flips a closed cell to flagged and back. Opened cells cannot
// be flagged.
func (c *Cell) ToggleFlag() CellState {
	switch c.State {
	case Closed:
		c.State = Flagged
	case Flagged:
		c.State = Closed
	case Opened:
	}
	return c.State
}
