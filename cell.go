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

// Package firesim implements a cellular-automaton forest-fire simulator:
// a deterministic stepping engine with pluggable rules, adaptive
// time-stepping and configurable boundary handling, over heterogeneous
// alpine terrain. Batch orchestration and critical-phenomena analysis
// live in the sibling analysis package.
package firesim

import "fmt"

// CellState is the discrete fire-spread state of a Cell.
type CellState int

const (
	Empty CellState = iota
	Tree
	Burning
	Burnt
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Tree:
		return "Tree"
	case Burning:
		return "Burning"
	case Burnt:
		return "Burnt"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Vegetation is the fuel type occupying a cell.
type Vegetation int

const (
	DenseForest Vegetation = iota
	SparseForest
	Shrubland
	Grassland
	Barren
	Water
	Urban
)

func (v Vegetation) String() string {
	switch v {
	case DenseForest:
		return "DenseForest"
	case SparseForest:
		return "SparseForest"
	case Shrubland:
		return "Shrubland"
	case Grassland:
		return "Grassland"
	case Barren:
		return "Barren"
	case Water:
		return "Water"
	case Urban:
		return "Urban"
	default:
		return fmt.Sprintf("Vegetation(%d)", int(v))
	}
}

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y int
}

// Cell is a single automaton cell. Cells are created at grid
// initialization and replaced wholesale by the stepping engine -- nothing
// in this package mutates a Cell's fields in place once it has been
// placed in a Grid.
type Cell struct {
	Position    Coord
	State       CellState
	Elevation   float64
	Vegetation  Vegetation
	Moisture    float64
	Temperature float64

	// BurnDuration tracks how many seconds the cell has been continuously
	// Burning; it resets when the cell leaves the Burning state. Rules in
	// the burning/extinction lists use it for fuel-depletion checks.
	BurnDuration float64
}

// clampUnit clamps a probability-like value into [0, 1]. Every probability
// factor computed in this module passes through here before use.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// vegetationIgnitionFactor is the per-vegetation multiplier in the
// ignition-probability formula.
var vegetationIgnitionFactor = map[Vegetation]float64{
	DenseForest:  1.2,
	SparseForest: 1.0,
	Shrubland:    0.9,
	Grassland:    0.8,
	Barren:       0.1,
	Water:        0.0,
	Urban:        0.3,
}

// vegetationSpreadRate is the per-vegetation base spread rate.
var vegetationSpreadRate = map[Vegetation]float64{
	DenseForest:  0.5,
	SparseForest: 0.7,
	Grassland:    1.2,
	Shrubland:    0.9,
	Barren:       0.1,
	Water:        0.0,
	Urban:        0.2,
}

// vegetationFuelContent is the per-vegetation fuel load used by the fuel
// depletion predicate; vegetation types not listed use the
// "other" value of 10.
var vegetationFuelContent = map[Vegetation]float64{
	DenseForest:  100,
	SparseForest: 60,
	Grassland:    20,
	Shrubland:    40,
}

func fuelContent(v Vegetation) float64 {
	if fc, ok := vegetationFuelContent[v]; ok {
		return fc
	}
	return 10
}
