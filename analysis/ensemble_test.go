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

package analysis

import (
	"math"
	"reflect"
	"testing"

	firesim "github.com/jijiduc/forest-fire-simulator-sub000"
)

func baseState(t *testing.T, w, h int) firesim.SimulationState {
	t.Helper()
	g, err := firesim.NewGrid(w, h, firesim.Cell{State: firesim.Tree, Vegetation: firesim.DenseForest, Moisture: 0.3})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	tr, err := firesim.NewTerrain(w, h, make([]float64, w*h))
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	climate, err := firesim.NewClimate(firesim.Summer, firesim.Wind{Speed: 1}, 0.3, 0)
	if err != nil {
		t.Fatalf("NewClimate: %v", err)
	}
	return firesim.SimulationState{Grid: g, Climate: climate, Terrain: tr}
}

func testEngine(t *testing.T, seed int64) *firesim.Engine {
	t.Helper()
	cfg := firesim.RunConfig{MinDt: 0.01, MaxDt: 1, Seed: seed, UpdateStrategy: firesim.UpdateStrategy{Kind: firesim.Synchronous}}
	e, err := firesim.NewEngine(firesim.DefaultRuleSet(firesim.DefaultPhysicsParams()), cfg, firesim.FixedTimeStep{Dt: 1}, firesim.DefaultPhysicsParams(), firesim.DefaultRuleConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestPerturbIgnitionIgnitesExactlyThreeCells(t *testing.T) {
	state := baseState(t, 10, 10)
	perturbed := perturbIgnition(state, 1)
	burning := 0
	perturbed.Grid.ForEach(func(x, y int, c firesim.Cell) {
		if c.State == firesim.Burning {
			burning++
		}
	})
	if burning != 3 {
		t.Errorf("burning cell count = %d, want 3", burning)
	}
}

func TestPerturbIgnitionIsDeterministicForSameSeed(t *testing.T) {
	state := baseState(t, 10, 10)
	a := perturbIgnition(state, 5)
	b := perturbIgnition(state, 5)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			ca, _ := a.Grid.Cell(x, y)
			cb, _ := b.Grid.Cell(x, y)
			if ca.State != cb.State {
				t.Fatalf("cell (%d,%d) differs across identical seeds", x, y)
			}
		}
	}
}

func TestPerturbIgnitionDiffersAcrossSeeds(t *testing.T) {
	state := baseState(t, 10, 10)
	a := perturbIgnition(state, 1)
	b := perturbIgnition(state, 2)
	identical := true
	for y := 0; y < 10 && identical; y++ {
		for x := 0; x < 10; x++ {
			ca, _ := a.Grid.Cell(x, y)
			cb, _ := b.Grid.Cell(x, y)
			if ca.State != cb.State {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("different seeds should usually ignite different cells")
	}
}

func TestRunEnsembleIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	state := baseState(t, 6, 6)
	cfg := AnalysisConfig{EnsembleSize: 4, WarmupTime: 0, MeasurementInterval: 1, Parallelism: 4}

	first := RunEnsemble(state, testEngine(t, 1), 3, cfg)
	second := RunEnsemble(state, testEngine(t, 1), 3, cfg)

	if !reflect.DeepEqual(first.AverageOrderParameters, second.AverageOrderParameters) {
		t.Error("RunEnsemble should be deterministic across repeated calls with the same inputs")
	}
	if len(first.Results) != 4 {
		t.Errorf("len(Results) = %d, want 4", len(first.Results))
	}
}

func TestRunEnsembleDefaultsEnsembleSizeToOne(t *testing.T) {
	state := baseState(t, 4, 4)
	cfg := AnalysisConfig{MeasurementInterval: 1}
	result := RunEnsemble(state, testEngine(t, 1), 1, cfg)
	if len(result.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1 when EnsembleSize is unset", len(result.Results))
	}
}

func TestAverageOrderParametersEmptyInput(t *testing.T) {
	avg := averageOrderParameters(nil)
	if avg != (OrderParameters{}) {
		t.Errorf("averageOrderParameters(nil) = %+v, want the zero value", avg)
	}
}

func TestAverageOrderParametersComputesMean(t *testing.T) {
	ops := []OrderParameters{
		{BurntFraction: 0.2, FireFrontLength: 2},
		{BurntFraction: 0.4, FireFrontLength: 4},
	}
	avg := averageOrderParameters(ops)
	if math.Abs(avg.BurntFraction-0.3) > 1e-12 {
		t.Errorf("BurntFraction = %v, want 0.3", avg.BurntFraction)
	}
	if avg.FireFrontLength != 3 {
		t.Errorf("FireFrontLength = %v, want 3", avg.FireFrontLength)
	}
}

func TestTreeDensityLeavesWaterAndUrbanUntouched(t *testing.T) {
	state := baseState(t, 3, 3)
	state.Grid = state.Grid.WithCell(0, 0, firesim.Cell{State: firesim.Tree, Vegetation: firesim.Water, Position: firesim.Coord{X: 0, Y: 0}})
	engine := testEngine(t, 1)
	next, _ := TreeDensity(state, engine, 1.0)
	c, _ := next.Grid.Cell(0, 0)
	if c.State != firesim.Tree {
		t.Error("TreeDensity should not rewrite a Water cell's state")
	}
}

func TestTreeDensityZeroEmptiesEveryEligibleCell(t *testing.T) {
	state := baseState(t, 3, 3)
	engine := testEngine(t, 1)
	next, _ := TreeDensity(state, engine, 0.0)
	next.Grid.ForEach(func(x, y int, c firesim.Cell) {
		if c.State != firesim.Empty {
			t.Errorf("cell (%d,%d) = %v, want Empty at density 0", x, y, c.State)
		}
	})
}

func TestMoistureSetsEveryCell(t *testing.T) {
	state := baseState(t, 3, 3)
	engine := testEngine(t, 1)
	next, _ := Moisture(state, engine, 0.75)
	next.Grid.ForEach(func(x, y int, c firesim.Cell) {
		if c.Moisture != 0.75 {
			t.Errorf("cell (%d,%d).Moisture = %v, want 0.75", x, y, c.Moisture)
		}
	})
}

func TestWindSpeedLeavesDirectionUntouched(t *testing.T) {
	state := baseState(t, 3, 3)
	state.Climate.Wind.Direction = 1.5
	engine := testEngine(t, 1)
	next, _ := WindSpeed(state, engine, 10)
	if next.Climate.Wind.Speed != 10 {
		t.Errorf("Wind.Speed = %v, want 10", next.Climate.Wind.Speed)
	}
	if next.Climate.Wind.Direction != 1.5 {
		t.Error("WindSpeed should not touch Wind.Direction")
	}
	if state.Climate.Wind.Speed == 10 {
		t.Error("WindSpeed should not mutate the original Climate")
	}
}

func TestSparkProbabilityUpdatesEngineRuleConfig(t *testing.T) {
	state := baseState(t, 3, 3)
	engine := testEngine(t, 1)
	_, nextEngine := SparkProbability(state, engine, 0.8)
	if nextEngine.RuleCfg.SparkProbability != 0.8 {
		t.Errorf("SparkProbability = %v, want 0.8", nextEngine.RuleCfg.SparkProbability)
	}
	if engine.RuleCfg.SparkProbability == 0.8 {
		t.Error("SparkProbability should not mutate the original engine")
	}
}

func TestParameterSweepProducesOnePointPerValue(t *testing.T) {
	state := baseState(t, 4, 4)
	engine := testEngine(t, 1)
	cfg := AnalysisConfig{EnsembleSize: 1, MeasurementInterval: 1}
	points := ParameterSweep("moisture", []float64{0.1, 0.5, 0.9}, Moisture, state, engine, 1, cfg)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	for i, v := range []float64{0.1, 0.5, 0.9} {
		if points[i].Value != v {
			t.Errorf("points[%d].Value = %v, want %v", i, points[i].Value, v)
		}
		if points[i].Parameter != "moisture" {
			t.Errorf("points[%d].Parameter = %q, want %q", i, points[i].Parameter, "moisture")
		}
	}
}

func TestPhaseDiagram2DShapeMatchesOuterAndInnerAxes(t *testing.T) {
	state := baseState(t, 4, 4)
	engine := testEngine(t, 1)
	cfg := AnalysisConfig{EnsembleSize: 1, MeasurementInterval: 1}
	grid := PhaseDiagram2D(
		"wind", []float64{1, 5}, WindSpeed,
		"moisture", []float64{0.2, 0.4, 0.6}, Moisture,
		state, engine, 1, cfg,
	)
	if len(grid) != 2 {
		t.Fatalf("len(grid) = %d, want 2 outer rows", len(grid))
	}
	for _, row := range grid {
		if len(row) != 3 {
			t.Errorf("len(row) = %d, want 3 inner points", len(row))
		}
	}
}
