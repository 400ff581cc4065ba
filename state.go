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

// Metrics is the set of grid-wide and cluster/percolation statistics
// recomputed every step and read without recomputation by
// order-parameter calculations in the analysis package. ActiveFires and
// TotalBurntArea are cell counts; together with the Tree count
// (TreeDensity*width*height) and the Empty count, which Metrics does not
// store, they satisfy the mass-conservation invariant
// TotalBurntArea+ActiveFires+Trees+Empties == width*height.
type Metrics struct {
	ActiveFires          int
	TotalBurntArea       int
	AverageFireIntensity float64 // mean Temperature over Burning cells, 0 if none
	TreeDensity          float64 // Tree count / (width*height)
	AverageMoisture      float64 // mean Moisture over every cell

	LargestFireClusterSize int
	ClusterSizes           []int
	HorizontalPercolation  bool
	VerticalPercolation    bool
	PercolationIndicator   float64 // 1 if spanning, else sigma(10*(ratio-0.1))
}

// ClusterLabels is the connected-component labeling of the Burning|Burnt
// subgrid that Metrics was derived from, kept alongside SimulationState so
// analysis code that wants per-cluster detail doesn't have to re-run
// union-find.
type ClusterLabels struct {
	Width, Height int
	Labels        []int // row-major; 0 means "not part of any fire cluster"
}

// Label returns the cluster id at (x, y), or (0, false) if out of range.
func (c ClusterLabels) Label(x, y int) (int, bool) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, false
	}
	return c.Labels[y*c.Width+x], true
}

// SimulationState is an immutable snapshot produced by the stepping
// engine. It owns exactly one Grid, one Climate, one Terrain -- Climate
// and Terrain are shared references since they are invariant across
// steps within a run.
type SimulationState struct {
	Grid    *Grid
	Climate *Climate
	Terrain *Terrain

	TimeStep    float64
	ElapsedTime float64

	Metrics Metrics
	Labels  ClusterLabels

	// Events is the bounded log of FireEvents this step produced.
	Events []FireEvent
}
