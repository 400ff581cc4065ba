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

import (
	"math"

	"github.com/ctessum/sparse"
)

// Terrain is a width x height elevation field, matching the Grid it
// accompanies, with derived slope and aspect. Elevation storage uses
// sparse.DenseArray, a dense-field container well suited to gridded
// scientific data.
type Terrain struct {
	width, height int
	elevation     *sparse.DenseArray

	// slope/aspect are computed once in NewTerrain and cached, since
	// Terrain is invariant for the lifetime of a run: every step holds a
	// reference to the same Terrain rather than a copy, and concurrent
	// readers never write to it.
	slope  *sparse.DenseArray
	aspect *sparse.DenseArray
}

// NewTerrain builds a Terrain from a dense row-major elevation array of
// length width*height (meters).
func NewTerrain(width, height int, elevations []float64) (*Terrain, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	arr := sparse.NewDenseArray([]int{height, width})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			arr.Set(elevations[y*width+x], y, x)
		}
	}
	t := &Terrain{width: width, height: height, elevation: arr}
	t.ensureDerived()
	return t, nil
}

func (t *Terrain) Width() int  { return t.width }
func (t *Terrain) Height() int { return t.height }

func (t *Terrain) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Elevation returns the elevation at (x, y), or (0, false) out of bounds.
func (t *Terrain) Elevation(x, y int) (float64, bool) {
	if !t.inBounds(x, y) {
		return 0, false
	}
	return t.elevation.Get(y, x), true
}

func (t *Terrain) elevationClamped(x, y int) float64 {
	if x < 0 {
		x = 0
	}
	if x >= t.width {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.height {
		y = t.height - 1
	}
	return t.elevation.Get(y, x)
}

func (t *Terrain) ensureDerived() {
	if t.slope != nil {
		return
	}
	slope := sparse.NewDenseArray([]int{t.height, t.width})
	aspect := sparse.NewDenseArray([]int{t.height, t.width})
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			dx := t.centralDiffX(x, y)
			dy := t.centralDiffY(x, y)
			slope.Set(math.Max(math.Abs(dx), math.Abs(dy))/2, y, x)
			aspect.Set(math.Atan2(dy, dx), y, x)
		}
	}
	t.slope = slope
	t.aspect = aspect
}

// centralDiffX and centralDiffY implement the central-difference gradient
// with one-sided differences at the boundary, as spec'd in §4.A.
func (t *Terrain) centralDiffX(x, y int) float64 {
	if x > 0 && x < t.width-1 {
		return t.elevationClamped(x+1, y) - t.elevationClamped(x-1, y)
	}
	if x == 0 {
		return t.elevationClamped(x+1, y) - t.elevationClamped(x, y)
	}
	return t.elevationClamped(x, y) - t.elevationClamped(x-1, y)
}

func (t *Terrain) centralDiffY(x, y int) float64 {
	if y > 0 && y < t.height-1 {
		return t.elevationClamped(x, y+1) - t.elevationClamped(x, y-1)
	}
	if y == 0 {
		return t.elevationClamped(x, y+1) - t.elevationClamped(x, y)
	}
	return t.elevationClamped(x, y) - t.elevationClamped(x, y-1)
}

// Slope is the absolute gradient magnitude at (x, y):
// max(|e(x+1,y)-e(x-1,y)|, |e(x,y+1)-e(x,y-1)|) / 2.
func (t *Terrain) Slope(x, y int) float64 {
	if !t.inBounds(x, y) {
		return 0
	}
	t.ensureDerived()
	return t.slope.Get(y, x)
}

// Aspect is the slope direction (radians) at (x, y).
func (t *Terrain) Aspect(x, y int) float64 {
	if !t.inBounds(x, y) {
		return 0
	}
	t.ensureDerived()
	return t.aspect.Get(y, x)
}

// VegetationTypeFromElevation derives a plausible vegetation type purely from
// elevation, for scenarios that generate terrain without an explicit
// vegetation layer. Bands roughly follow alpine zonation: valley forest,
// subalpine forest, shrubland/grassland tree line, and barren/rock above
// it; lakes and settlements are not derivable from elevation alone and are
// left to the caller.
func VegetationTypeFromElevation(elevation float64) Vegetation {
	switch {
	case elevation < 800:
		return DenseForest
	case elevation < 1400:
		return SparseForest
	case elevation < 1800:
		return Shrubland
	case elevation < 2200:
		return Grassland
	default:
		return Barren
	}
}
