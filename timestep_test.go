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

func TestFixedTimeStepAlwaysReturnsItsDt(t *testing.T) {
	g, _ := NewGrid(2, 2, Cell{State: Empty})
	f := FixedTimeStep{Dt: 0.25}
	if got := f.NextDt(g, testClimate(t), DefaultPhysicsParams()); got != 0.25 {
		t.Errorf("NextDt = %v, want 0.25", got)
	}
}

func TestActivityLadderMonotoneDecreasing(t *testing.T) {
	prev := activityLadder(0)
	for _, n := range []int{1, 10, 50} {
		cur := activityLadder(n)
		if cur > prev {
			t.Errorf("activityLadder(%d) = %v should not exceed the previous tier %v", n, cur, prev)
		}
		prev = cur
	}
}

func TestClampDtRespectsBounds(t *testing.T) {
	if got := clampDt(0.001, 0.01, 1.0); got != 0.01 {
		t.Errorf("clampDt below min = %v, want 0.01", got)
	}
	if got := clampDt(10, 0.01, 1.0); got != 1.0 {
		t.Errorf("clampDt above max = %v, want 1.0", got)
	}
	if got := clampDt(0.5, 0.01, 1.0); got != 0.5 {
		t.Errorf("clampDt within bounds = %v, want 0.5 unchanged", got)
	}
}

func TestCFLAdaptiveReturnsMaxDtWhenNoFireIsBurning(t *testing.T) {
	g, _ := NewGrid(3, 3, Cell{State: Tree})
	cfl := CFLAdaptive{MinDt: 0.01, MaxDt: 1.0}
	if got := cfl.NextDt(g, testClimate(t), DefaultPhysicsParams()); got != 1.0 {
		t.Errorf("NextDt with no fire = %v, want MaxDt 1.0", got)
	}
}

func TestCFLAdaptiveShrinksAsFireSpreads(t *testing.T) {
	const n = 100 // 10x10, enough headroom to cross activityLadder's tiers
	oneFireCells := make([]Cell, n)
	for i := range oneFireCells {
		oneFireCells[i] = Cell{State: Tree, Vegetation: DenseForest}
	}
	oneFireCells[0].State = Burning
	oneFire := NewGridFromCells(10, 10, oneFireCells)

	manyFireCells := make([]Cell, n)
	for i := range manyFireCells {
		manyFireCells[i] = Cell{State: Burning, Vegetation: DenseForest}
	}
	manyFire := NewGridFromCells(10, 10, manyFireCells)

	cfl := CFLAdaptive{MinDt: 0.001, MaxDt: 1.0, CFLNumber: 0.5}
	climate := testClimate(t)
	dtFew := cfl.NextDt(oneFire, climate, DefaultPhysicsParams())
	dtMany := cfl.NextDt(manyFire, climate, DefaultPhysicsParams())
	if dtMany >= dtFew {
		t.Errorf("dt with %d burning cells (%v) should be smaller than dt with 1 (%v)", n, dtMany, dtFew)
	}
}

func TestChangeRateAdaptiveScalesWithBurningCount(t *testing.T) {
	g, _ := NewGrid(3, 3, Cell{State: Tree})
	c := ChangeRateAdaptive{MinDt: 0.001, MaxDt: 1.0}
	if got := c.NextDt(g, testClimate(t), DefaultPhysicsParams()); got != 1.0 {
		t.Errorf("NextDt with no fire = %v, want MaxDt 1.0", got)
	}
	burningCells := make([]Cell, 9)
	for i := range burningCells {
		burningCells[i] = Cell{State: Tree}
	}
	burningCells[0].State = Burning
	gBurning := NewGridFromCells(3, 3, burningCells)
	if got := c.NextDt(gBurning, testClimate(t), DefaultPhysicsParams()); got >= 1.0 {
		t.Errorf("NextDt with one burning cell = %v, should be throttled below MaxDt", got)
	}
}
