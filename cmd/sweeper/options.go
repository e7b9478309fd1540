package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/vancomm/sweeper/internal/mines"
)

type options struct {
	easy, medium, hard bool
	custom             string
}

func parseOptions(args []string, output io.Writer) (*options, error) {
	var opts options

	fs := pflag.NewFlagSet("sweeper", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "A terminal minesweeper. Use arrow keys to move around, `a` to open and `s` to flag a cell, `q` to quit the game.")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Usage: sweeper [-e | -m | -h | -c ROWS:COLS:MINES]")
		fs.PrintDefaults()
	}
	fs.SortFlags = false
	fs.BoolVarP(&opts.easy, "easy", "e", false, "Easy difficulty with 9x9 board and 10 mines.")
	fs.BoolVarP(&opts.medium, "medium", "m", false, "Medium difficulty with 16x16 board and 40 mines.")
	fs.BoolVarP(&opts.hard, "hard", "h", false, "Hard difficulty with 24x24 board and 99 mines.")
	fs.StringVarP(&opts.custom, "custom", "c", "", "Custom board configuration as ROWS:COLS:MINES.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return &opts, nil
}

// params picks the board params. Difficulties are mutually exclusive and
// default to easy.
func (o options) params() (mines.Params, error) {
	set := 0
	for _, b := range []bool{o.easy, o.medium, o.hard, o.custom != ""} {
		if b {
			set++
		}
	}
	if set > 1 {
		return mines.Params{}, fmt.Errorf("only one of --easy, --medium, --hard and --custom may be given")
	}

	switch {
	case o.medium:
		return mines.Intermediate, nil
	case o.hard:
		return mines.Expert, nil
	case o.custom != "":
		p, err := mines.ParseSeed(o.custom)
		if err != nil {
			return mines.Params{}, err
		}
		return *p, nil
	default:
		return mines.Beginner, nil
	}
}
