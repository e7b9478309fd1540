package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"
)

const (
	// MinSide is the smallest number of rows or columns a board may have.
	MinSide = 9
	// SafeZone is the largest number of cells guaranteed mine free around
	// the first open: the cell itself and its eight neighbors.
	SafeZone = 9
)

type Params struct {
	Rows, Cols, MineCount int
}

var (
	Beginner     = Params{Rows: 9, Cols: 9, MineCount: 10}
	Intermediate = Params{Rows: 16, Cols: 16, MineCount: 40}
	Expert       = Params{Rows: 24, Cols: 24, MineCount: 99}
)

func (p Params) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p Params) Validate() error {
	switch {
	case p.Rows < MinSide || p.Cols < MinSide:
		return ConfigError{p, fmt.Sprintf("board must be at least %dx%d", MinSide, MinSide)}
	case p.MineCount < 0:
		return ConfigError{p, "mine count must not be negative"}
	case p.MineCount > p.Rows*p.Cols-SafeZone:
		return ConfigError{p, fmt.Sprintf("at most %d mines fit", p.Rows*p.Cols-SafeZone)}
	}
	return nil
}

// Seed encodes the params as "rows:cols:mines".
func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid board params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	return p, nil
}

func (p Params) PointInBounds(i, j int) bool {
	return 0 <= i && i < p.Rows && 0 <= j && j < p.Cols
}

// NewRand returns a PCG source seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
