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

import "testing"

func TestComputeMetricsEmptyGridHasNoClusters(t *testing.T) {
	g, _ := NewGrid(4, 4, Cell{State: Tree})
	m, labels := ComputeMetrics(g)
	if m.LargestFireClusterSize != 0 {
		t.Errorf("LargestFireClusterSize = %d, want 0", m.LargestFireClusterSize)
	}
	if len(m.ClusterSizes) != 0 {
		t.Errorf("ClusterSizes = %v, want empty", m.ClusterSizes)
	}
	if m.HorizontalPercolation || m.VerticalPercolation {
		t.Error("an all-Tree grid should not percolate")
	}
	for _, l := range labels.Labels {
		if l != 0 {
			t.Errorf("label = %d, want 0 for an unburnt cell", l)
		}
	}
}

func TestComputeMetricsMergesDiagonalMooreNeighbors(t *testing.T) {
	// Two burnt cells touching only at a corner are one Moore-connected
	// cluster, not two.
	cells := make([]Cell, 9)
	for i := range cells {
		cells[i] = Cell{State: Tree}
	}
	cells[0] = Cell{State: Burnt}  // (0,0)
	cells[4] = Cell{State: Burnt}  // (1,1), diagonal neighbor of (0,0)
	g := NewGridFromCells(3, 3, cells)

	m, _ := ComputeMetrics(g)
	if len(m.ClusterSizes) != 1 {
		t.Fatalf("ClusterSizes = %v, want a single merged cluster", m.ClusterSizes)
	}
	if m.LargestFireClusterSize != 2 {
		t.Errorf("LargestFireClusterSize = %d, want 2", m.LargestFireClusterSize)
	}
}

func TestComputeMetricsTwoSeparateClusters(t *testing.T) {
	cells := make([]Cell, 16)
	for i := range cells {
		cells[i] = Cell{State: Tree}
	}
	// (0,0) and (3,3) are far apart: two singleton clusters.
	cells[0] = Cell{State: Burnt}
	cells[15] = Cell{State: Burnt}
	g := NewGridFromCells(4, 4, cells)

	m, _ := ComputeMetrics(g)
	if len(m.ClusterSizes) != 2 {
		t.Fatalf("ClusterSizes = %v, want two distinct clusters", m.ClusterSizes)
	}
	if m.LargestFireClusterSize != 1 {
		t.Errorf("LargestFireClusterSize = %d, want 1", m.LargestFireClusterSize)
	}
}

func TestComputeMetricsFullRowPercolatesHorizontallyNotVertically(t *testing.T) {
	cells := make([]Cell, 9)
	for i := range cells {
		cells[i] = Cell{State: Tree}
	}
	for x := 0; x < 3; x++ {
		cells[x] = Cell{State: Burnt} // entire top row
	}
	g := NewGridFromCells(3, 3, cells)

	m, _ := ComputeMetrics(g)
	if !m.HorizontalPercolation {
		t.Error("a full burnt row should percolate horizontally")
	}
	if m.VerticalPercolation {
		t.Error("a single row should not percolate vertically in a 3-row grid")
	}
	if m.PercolationIndicator != 1 {
		t.Errorf("PercolationIndicator = %v, want 1 once percolation occurs", m.PercolationIndicator)
	}
}

func TestComputeMetricsFullColumnPercolatesVertically(t *testing.T) {
	cells := make([]Cell, 9)
	for i := range cells {
		cells[i] = Cell{State: Tree}
	}
	for y := 0; y < 3; y++ {
		cells[y*3] = Cell{State: Burnt} // entire left column
	}
	g := NewGridFromCells(3, 3, cells)

	m, _ := ComputeMetrics(g)
	if !m.VerticalPercolation {
		t.Error("a full burnt column should percolate vertically")
	}
}

func TestComputeMetricsLabelsAreDenseAndOneIndexed(t *testing.T) {
	cells := make([]Cell, 4)
	for i := range cells {
		cells[i] = Cell{State: Burnt}
	}
	g := NewGridFromCells(2, 2, cells)
	_, labels := ComputeMetrics(g)
	for _, l := range labels.Labels {
		if l != 1 {
			t.Errorf("label = %d, want 1 (a single connected cluster)", l)
		}
	}
}

func TestMeanClusterSizeAndCorrelationLengthProxy(t *testing.T) {
	sizes := []int{1, 2, 3, 4}
	if got := meanClusterSize(sizes); got != 2.5 {
		t.Errorf("meanClusterSize = %v, want 2.5", got)
	}
	if got := correlationLengthProxy(nil); got != 0 {
		t.Errorf("correlationLengthProxy(nil) = %v, want 0", got)
	}
}

func TestComputeMetricsTalliesGridWideCounts(t *testing.T) {
	cells := []Cell{
		{State: Burning, Temperature: 300, Moisture: 0.1},
		{State: Burning, Temperature: 500, Moisture: 0.2},
		{State: Burnt, Moisture: 0.3},
		{State: Tree, Moisture: 0.4},
	}
	g := NewGridFromCells(2, 2, cells)
	m, _ := ComputeMetrics(g)

	if m.ActiveFires != 2 {
		t.Errorf("ActiveFires = %d, want 2", m.ActiveFires)
	}
	if m.TotalBurntArea != 1 {
		t.Errorf("TotalBurntArea = %d, want 1", m.TotalBurntArea)
	}
	if m.AverageFireIntensity != 400 {
		t.Errorf("AverageFireIntensity = %v, want 400", m.AverageFireIntensity)
	}
	if m.TreeDensity != 0.25 {
		t.Errorf("TreeDensity = %v, want 0.25", m.TreeDensity)
	}
	wantMoisture := (0.1 + 0.2 + 0.3 + 0.4) / 4
	if diff := m.AverageMoisture - wantMoisture; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageMoisture = %v, want %v", m.AverageMoisture, wantMoisture)
	}

	wantConservation := m.TotalBurntArea + m.ActiveFires
	treeCount := int(m.TreeDensity * 4)
	emptyCount := g.CountByState()[Empty]
	if wantConservation+treeCount+emptyCount != 4 {
		t.Error("TotalBurntArea+ActiveFires+trees+empties should equal width*height")
	}
}

func TestComputeMetricsAverageFireIntensityZeroWithNoBurningCells(t *testing.T) {
	g, _ := NewGrid(2, 2, Cell{State: Tree})
	m, _ := ComputeMetrics(g)
	if m.AverageFireIntensity != 0 {
		t.Errorf("AverageFireIntensity = %v, want 0 with no burning cells", m.AverageFireIntensity)
	}
}

func TestUnionFindMergesTransitively(t *testing.T) {
	u := newUnionFind(5)
	u.union(0, 1)
	u.union(1, 2)
	if u.find(0) != u.find(2) {
		t.Error("0 and 2 should share a root after transitive unions")
	}
	if u.find(3) == u.find(0) {
		t.Error("3 was never unioned with 0 and should have a distinct root")
	}
}
