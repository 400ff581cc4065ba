/*
Copyright © 2026 the forest-fire-simulator authors.
This file is part of forest-fire-simulator.

forest-fire-simulator is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

forest-fire-simulator is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with forest-fire-simulator.  If not, see <http://www.gnu.org/licenses/>.
*/

package firesim

// BoundaryPolicy resolves what a cell "sees" when one of its eight Moore
// neighbors falls outside the raw grid. Four policies are available,
// selectable per run.
type BoundaryPolicy interface {
	// Neighbor returns the cell that lies at (x+dx, y+dy) under this
	// policy, or false if the policy says there is no such neighbor
	// (Absorbing at the edge).
	Neighbor(g *Grid, x, y, dx, dy int) (Cell, bool)
}

// Periodic wraps neighbor lookups toroidally.
type Periodic struct{}

func (Periodic) Neighbor(g *Grid, x, y, dx, dy int) (Cell, bool) {
	nx := ((x+dx)%g.width + g.width) % g.width
	ny := ((y+dy)%g.height + g.height) % g.height
	return g.Cell(nx, ny)
}

// Reflective clamps out-of-range indices back onto the nearest edge cell.
type Reflective struct{}

func (Reflective) Neighbor(g *Grid, x, y, dx, dy int) (Cell, bool) {
	nx := clampIndex(x+dx, g.width)
	ny := clampIndex(y+dy, g.height)
	return g.Cell(nx, ny)
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Absorbing simply drops any neighbor that falls outside the grid.
type Absorbing struct{}

func (Absorbing) Neighbor(g *Grid, x, y, dx, dy int) (Cell, bool) {
	return g.Cell(x+dx, y+dy)
}

// Fixed synthesizes a pseudo-cell with the configured State and
// Vegetation and Moisture 1 (fully wet) for any out-of-range neighbor --
// useful for simulating an inert firebreak or a rock wall ringing the
// domain.
type Fixed struct {
	State      CellState
	Vegetation Vegetation
}

func (f Fixed) Neighbor(g *Grid, x, y, dx, dy int) (Cell, bool) {
	nx, ny := x+dx, y+dy
	if c, ok := g.Cell(nx, ny); ok {
		return c, true
	}
	return Cell{
		Position:   Coord{X: nx, Y: ny},
		State:      f.State,
		Vegetation: f.Vegetation,
		Moisture:   1,
	}, true
}

// Neighborhood is the resolved set of Moore neighbors of a cell, expanded
// with the displacement each neighbor sits at so that rules needing
// direction (EmberIgnition's bearing check, HeatTransfer's upslope/
// downwind tests) don't have to re-derive it.
type Neighborhood struct {
	Cells   []Cell
	Offsets []Coord // dx, dy for Cells[i], relative to the center cell
}

// BurningCount returns how many neighbors are currently Burning.
func (n Neighborhood) BurningCount() int {
	count := 0
	for _, c := range n.Cells {
		if c.State == Burning {
			count++
		}
	}
	return count
}

// ResolveNeighborhood applies policy to every Moore offset around (x, y).
func ResolveNeighborhood(g *Grid, policy BoundaryPolicy, x, y int) Neighborhood {
	nb := Neighborhood{Cells: make([]Cell, 0, 8), Offsets: make([]Coord, 0, 8)}
	for _, o := range moorOffsets {
		if c, ok := policy.Neighbor(g, x, y, o.X, o.Y); ok {
			nb.Cells = append(nb.Cells, c)
			nb.Offsets = append(nb.Offsets, o)
		}
	}
	return nb
}
