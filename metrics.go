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

import "math"

// unionFind is a minimal disjoint-set structure sized up front for the
// grid's cell count, used by ComputeMetrics' two-pass labeling.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

func burning(c Cell) bool {
	return c.State == Burning || c.State == Burnt
}

// ComputeMetrics tallies the grid-wide fire/vegetation/moisture counts,
// labels the Burning|Burnt subgrid under Moore connectivity with a
// two-pass union-find scan, tests for percolation by flood-filling from
// each edge, and derives the cluster size distribution.
func ComputeMetrics(g *Grid) (Metrics, ClusterLabels) {
	w, h := g.Width(), g.Height()
	idx := func(x, y int) int { return y*w + x }

	uf := newUnionFind(w * h)
	fuel := make([]bool, w*h)

	var activeFires, totalBurntArea, trees int
	var intensitySum, moistureSum float64

	// Pass 1: union every fire cell with its already-visited Moore
	// neighbors (up, upleft, upright, left -- the four already scanned in
	// row-major order, which suffices for 8-connectivity). The same scan
	// tallies the grid-wide counts Metrics reports.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := g.Cell(x, y)
			moistureSum += c.Moisture
			switch c.State {
			case Burning:
				activeFires++
				intensitySum += c.Temperature
			case Burnt:
				totalBurntArea++
			case Tree:
				trees++
			}
			if !burning(c) {
				continue
			}
			fuel[idx(x, y)] = true
			for _, d := range [4]Coord{{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}} {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if nc, ok := g.Cell(nx, ny); ok && burning(nc) {
					uf.union(idx(x, y), idx(nx, ny))
				}
			}
		}
	}

	// Pass 2: tally component sizes and assign dense labels starting at 1.
	labels := make([]int, w*h)
	rootLabel := make(map[int]int)
	sizes := make(map[int]int)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := idx(x, y)
			if !fuel[i] {
				continue
			}
			root := uf.find(i)
			lbl, ok := rootLabel[root]
			if !ok {
				lbl = len(rootLabel) + 1
				rootLabel[root] = lbl
			}
			labels[i] = lbl
			sizes[lbl]++
		}
	}

	clusterSizes := make([]int, 0, len(sizes))
	largest := 0
	for _, sz := range sizes {
		clusterSizes = append(clusterSizes, sz)
		if sz > largest {
			largest = sz
		}
	}

	horiz := percolates(g, fuel, w, h, true)
	vert := percolates(g, fuel, w, h, false)

	totalCells := w * h
	ratio := 0.0
	if totalCells > 0 {
		ratio = float64(largest) / float64(totalCells)
	}
	indicator := logistic(10 * (ratio - 0.1))
	if horiz || vert {
		indicator = 1
	}

	averageIntensity := 0.0
	if activeFires > 0 {
		averageIntensity = intensitySum / float64(activeFires)
	}
	treeDensity, averageMoisture := 0.0, 0.0
	if totalCells > 0 {
		treeDensity = float64(trees) / float64(totalCells)
		averageMoisture = moistureSum / float64(totalCells)
	}

	return Metrics{
			ActiveFires:            activeFires,
			TotalBurntArea:         totalBurntArea,
			AverageFireIntensity:   averageIntensity,
			TreeDensity:            treeDensity,
			AverageMoisture:        averageMoisture,
			LargestFireClusterSize: largest,
			ClusterSizes:           clusterSizes,
			HorizontalPercolation:  horiz,
			VerticalPercolation:    vert,
			PercolationIndicator:   indicator,
		}, ClusterLabels{
			Width:  w,
			Height: h,
			Labels: labels,
		}
}

// percolates flood-fills from one edge's fire cells and reports whether
// the opposite edge is reached, under Moore connectivity. horizontal=true
// tests left-to-right span; false tests top-to-bottom.
func percolates(g *Grid, fuel []bool, w, h int, horizontal bool) bool {
	idx := func(x, y int) int { return y*w + x }
	visited := make([]bool, w*h)
	var stack []Coord

	if horizontal {
		for y := 0; y < h; y++ {
			if fuel[idx(0, y)] {
				stack = append(stack, Coord{X: 0, Y: y})
				visited[idx(0, y)] = true
			}
		}
	} else {
		for x := 0; x < w; x++ {
			if fuel[idx(x, 0)] {
				stack = append(stack, Coord{X: x, Y: 0})
				visited[idx(x, 0)] = true
			}
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if horizontal && cur.X == w-1 {
			return true
		}
		if !horizontal && cur.Y == h-1 {
			return true
		}
		for _, o := range moorOffsets {
			nx, ny := cur.X+o.X, cur.Y+o.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			i := idx(nx, ny)
			if visited[i] || !fuel[i] {
				continue
			}
			visited[i] = true
			stack = append(stack, Coord{X: nx, Y: ny})
		}
	}
	return false
}

// meanClusterSize is the unweighted mean of the cluster size distribution,
// used by the analysis package's correlationLength proxy.
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

// correlationLengthProxy is sqrt(mean cluster size), a cheap stand-in
// for a true correlation-length integral.
func correlationLengthProxy(sizes []int) float64 {
	return math.Sqrt(meanClusterSize(sizes))
}
