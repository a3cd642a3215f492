package generator

import (
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/helper"
)

// Sidewinder carves one row per Update, west to east, keeping a run of the
// rooms in the current horizontal corridor.
//
// The first row is one corridor. On later rows each room joins the run and,
// with probability 1/2 and unless it is the last column, carves east to extend
// it; otherwise a uniformly random run member carves north and the run closes.
// Progress counts finished rows.
type Sidewinder struct {
	base
	row int
	run []*grid.Room
}

// NewSidewinder binds the algorithm to g.
func NewSidewinder(g *grid.Grid) *Sidewinder {
	return &Sidewinder{base: base{grid: g}}
}

// Method returns MethodSidewinder.
func (a *Sidewinder) Method() Method { return MethodSidewinder }

// Initialize resets the grid and rewinds to row 0.
func (a *Sidewinder) Initialize() error {
	rows := 0
	if a.grid != nil {
		rows = a.grid.Rows()
	}
	if _, err := a.prepare(rows); err != nil {
		return err
	}
	a.row = 0
	a.run = a.run[:0]
	return nil
}

// Update processes the next row.
func (a *Sidewinder) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	if a.row >= a.grid.Rows() {
		a.tracker.SetComplete()
		return nil
	}

	rooms := a.grid.RowRooms(a.row)
	for c, r := range rooms {
		r.SetVisited(true)
		a.run = append(a.run, r)
		atEastEdge := c == len(rooms)-1

		if a.row == 0 {
			if !atEastEdge {
				if err := helper.JoinRooms(r, rooms[c+1]); err != nil {
					return err
				}
			}
			continue
		}

		if !atEastEdge && rng.Intn(2) == 0 {
			if err := helper.JoinRooms(r, rooms[c+1]); err != nil {
				return err
			}
			continue
		}

		m := a.run[rng.Intn(len(a.run))]
		if north, ok := a.grid.Neighbor(m, grid.North); ok {
			if err := helper.JoinRooms(m, north); err != nil {
				return err
			}
		}
		a.run = a.run[:0]
	}
	a.run = a.run[:0]

	a.row++
	a.tracker.Increase()
	return nil
}
