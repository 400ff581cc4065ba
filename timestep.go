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

// TimeStepPolicy decides the size of the next simulation step, given the
// grid and climate the engine is about to advance. The decision is
// pluggable and may look at fire activity as well as spread rate.
type TimeStepPolicy interface {
	NextDt(g *Grid, climate *Climate, physics PhysicsParams) float64
}

// FixedTimeStep always returns the same step size.
type FixedTimeStep struct {
	Dt float64
}

func (f FixedTimeStep) NextDt(g *Grid, climate *Climate, physics PhysicsParams) float64 {
	return f.Dt
}

// activityLadder maps the number of currently Burning cells to a
// throttling factor: many simultaneous fires call for a smaller step to
// keep the CFL condition satisfied.
func activityLadder(burning int) float64 {
	switch {
	case burning == 0:
		return 1.0
	case burning < 10:
		return 0.5
	case burning < 50:
		return 0.1
	default:
		return 0.05
	}
}

func clampDt(dt, minDt, maxDt float64) float64 {
	if dt < minDt {
		return minDt
	}
	if dt > maxDt {
		return maxDt
	}
	return dt
}

// CFLAdaptive bounds the step by the Courant-Friedrichs-Lewy condition for
// the fastest currently burning cell's spread rate, taking the smaller of
// that bound and the activity ladder's value.
type CFLAdaptive struct {
	MinDt, MaxDt float64
	CFLNumber    float64 // defaults to 0.5 if zero
}

func (c CFLAdaptive) NextDt(g *Grid, climate *Climate, physics PhysicsParams) float64 {
	cfl := c.CFLNumber
	if cfl == 0 {
		cfl = 0.5
	}
	maxRate := 0.0
	burning := 0
	g.ForEach(func(x, y int, cell Cell) {
		if cell.State != Burning {
			return
		}
		burning++
		rate := SpreadRate(cell, climate.Wind.Speed, 0)
		if rate > maxRate {
			maxRate = rate
		}
	})
	if maxRate <= 0 {
		return clampDt(c.MaxDt, c.MinDt, c.MaxDt)
	}
	dt := min(cfl/maxRate, activityLadder(burning))
	return clampDt(dt, c.MinDt, c.MaxDt)
}

// ChangeRateAdaptive throttles purely by how many cells are currently
// burning, without consulting spread rate -- a cheaper policy for runs
// where SpreadRate's per-cell scan is too costly.
type ChangeRateAdaptive struct {
	MinDt, MaxDt float64
}

func (c ChangeRateAdaptive) NextDt(g *Grid, climate *Climate, physics PhysicsParams) float64 {
	burning := 0
	g.ForEach(func(x, y int, cell Cell) {
		if cell.State == Burning {
			burning++
		}
	})
	dt := c.MaxDt * activityLadder(burning)
	return clampDt(dt, c.MinDt, c.MaxDt)
}
