package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("board configuration is invalid")
	ErrOutOfBounds   = errors.New("index is out of bound")
)

// ConfigError is returned by [NewBoard] for params no board can be built from.
type ConfigError struct {
	Params Params
	Reason string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidConfig, e.Reason, e.Params.Seed())
}

func (e ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// IndexError is returned by the checked board operations for coordinates
// outside the grid.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

// [IndexError] implements [error]
func (e IndexError) Error() string {
	return fmt.Sprintf(
		"%s: (%d, %d) on a %dx%d board", ErrOutOfBounds, e.Row, e.Col, e.Rows, e.Cols,
	)
}

func (e IndexError) Unwrap() error {
	return ErrOutOfBounds
}
