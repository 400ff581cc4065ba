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

// Package analysis implements the batch orchestration and
// critical-phenomena analysis layered over the firesim stepping engine:
// order parameters, ensembles and parameter sweeps, phase classification,
// critical-point and finite-size-scaling estimators, and universality
// classification.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	firesim "github.com/jijiduc/forest-fire-simulator-sub000"
)

// OrderParameters is the full set of per-state scalars used to detect
// and characterize the percolation phase transition.
type OrderParameters struct {
	BurntFraction         float64
	ActiveFraction        float64
	LargestClusterRatio   float64
	PercolationBinary     float64
	PercolationSmooth     float64
	ClusterDensity        float64
	MeanClusterSize       float64
	FireFrontLength       int
	CorrelationLength     float64
	Susceptibility        float64 // filled in by SequenceOrderParameters only
}

// Compute derives every per-state order parameter from state.
// Susceptibility requires a sequence of states and is left zero; use
// SequenceOrderParameters to populate it.
func Compute(state firesim.SimulationState) OrderParameters {
	g := state.Grid
	w, h := g.Width(), g.Height()
	total := w * h

	var burnable, burning, burnt int
	g.ForEach(func(x, y int, c firesim.Cell) {
		if c.Vegetation != firesim.Water {
			burnable++
		}
		if c.State == firesim.Burning {
			burning++
		}
		if c.State == firesim.Burnt {
			burnt++
		}
	})

	burntFraction := 0.0
	if burnable > 0 {
		burntFraction = float64(burnt) / float64(burnable)
	}
	activeFraction := 0.0
	if total > 0 {
		activeFraction = float64(burning) / float64(total)
	}

	largestRatio := 0.0
	if total > 0 {
		largestRatio = float64(state.Metrics.LargestFireClusterSize) / float64(total)
	}

	percolationBinary := 0.0
	if state.Metrics.HorizontalPercolation || state.Metrics.VerticalPercolation {
		percolationBinary = 1
	}

	clusterDensity := 0.0
	if total > 0 {
		clusterDensity = float64(len(state.Metrics.ClusterSizes)) / float64(total)
	}

	return OrderParameters{
		BurntFraction:       burntFraction,
		ActiveFraction:      activeFraction,
		LargestClusterRatio: largestRatio,
		PercolationBinary:   percolationBinary,
		PercolationSmooth:   state.Metrics.PercolationIndicator,
		ClusterDensity:      clusterDensity,
		MeanClusterSize:     meanClusterSize(state.Metrics.ClusterSizes),
		FireFrontLength:     fireFrontLength(g),
		CorrelationLength:   math.Sqrt(meanClusterSize(state.Metrics.ClusterSizes)),
	}
}

// ToMap flattens op into a name->value map, the shape RunEnsemble
// aggregates per-run order parameters into means and standard
// deviations over.
func (op OrderParameters) ToMap() map[string]float64 {
	return map[string]float64{
		"burntFraction":       op.BurntFraction,
		"activeFraction":      op.ActiveFraction,
		"largestClusterRatio": op.LargestClusterRatio,
		"percolationBinary":   op.PercolationBinary,
		"percolationSmooth":   op.PercolationSmooth,
		"clusterDensity":      op.ClusterDensity,
		"meanClusterSize":     op.MeanClusterSize,
		"fireFrontLength":     float64(op.FireFrontLength),
		"correlationLength":   op.CorrelationLength,
		"susceptibility":      op.Susceptibility,
	}
}

func meanClusterSize(sizes []int) float64 {
	if len(sizes) == 0 {
		return 0
	}
	total := 0
	for _, s := range sizes {
		total += s
	}
	return float64(total) / float64(len(sizes))
}

// fireFrontLength counts the perimeter edges between a Burning cell and a
// 4-connected neighbor that is not Burning, including out-of-grid edges.
func fireFrontLength(g *firesim.Grid) int {
	length := 0
	g.ForEach(func(x, y int, c firesim.Cell) {
		if c.State != firesim.Burning {
			return
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n, ok := g.Cell(x+d[0], y+d[1])
			if !ok || n.State != firesim.Burning {
				length++
			}
		}
	})
	return length
}

// SequenceOrderParameters computes OrderParameters for every state in
// states and additionally fills in Susceptibility: the variance of
// BurntFraction across the sequence, scaled by system size.
func SequenceOrderParameters(states []firesim.SimulationState) []OrderParameters {
	out := make([]OrderParameters, len(states))
	burntFractions := make([]float64, len(states))
	for i, s := range states {
		out[i] = Compute(s)
		burntFractions[i] = out[i].BurntFraction
	}
	if len(states) == 0 {
		return out
	}
	systemSize := float64(states[0].Grid.Width() * states[0].Grid.Height())
	susceptibility := 0.0
	if len(burntFractions) > 1 {
		susceptibility = stat.Variance(burntFractions, nil) * systemSize
	}
	for i := range out {
		out[i].Susceptibility = susceptibility
	}
	return out
}
