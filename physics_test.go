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

func TestIgnitionProbabilityWaterIsInert(t *testing.T) {
	p := DefaultPhysicsParams()
	c := Cell{Vegetation: Water, Temperature: 500, Moisture: 0}
	if got := IgnitionProbability(p, c, 8, 0, 10, 1); got != 0 {
		t.Errorf("IgnitionProbability on Water = %v, want 0", got)
	}
}

func TestIgnitionProbabilityMonotoneInBurningNeighbors(t *testing.T) {
	p := DefaultPhysicsParams()
	c := Cell{Vegetation: DenseForest, Temperature: 40, Moisture: 0.1}
	low := IgnitionProbability(p, c, 0, 0, 0, 1)
	high := IgnitionProbability(p, c, 8, 0, 0, 1)
	if !(high > low) {
		t.Errorf("IgnitionProbability should increase with burning neighbors: low=%v high=%v", low, high)
	}
}

func TestIgnitionProbabilityClamped(t *testing.T) {
	p := DefaultPhysicsParams()
	c := Cell{Vegetation: DenseForest, Temperature: 1000, Moisture: 0}
	got := IgnitionProbability(p, c, 8, 1, 50, 1)
	if got < 0 || got > 1 {
		t.Errorf("IgnitionProbability = %v, want in [0,1]", got)
	}
}

func TestHeatTransferIgnoresOutOfRadiusSources(t *testing.T) {
	p := DefaultPhysicsParams()
	sources := []HeatSource{
		{Temperature: 500, Distance: p.HeatTransferRadius + 1},
	}
	if got := HeatTransfer(p, sources, 0); got != 0 {
		t.Errorf("HeatTransfer with out-of-radius source = %v, want 0", got)
	}
}

func TestHeatTransferSumsInRadiusSources(t *testing.T) {
	p := DefaultPhysicsParams()
	sources := []HeatSource{
		{Temperature: 500, Distance: 1},
		{Temperature: 500, Distance: 1},
	}
	single := HeatTransfer(p, sources[:1], 0)
	double := HeatTransfer(p, sources, 0)
	if double != 2*single {
		t.Errorf("HeatTransfer should sum independent sources: single=%v double=%v", single, double)
	}
}

func TestMoistureDeltaClamped(t *testing.T) {
	p := DefaultPhysicsParams()
	got := MoistureDelta(p, 0.99, 40, 0.1, 0, 1000)
	if got < 0 || got > 1 {
		t.Errorf("MoistureDelta = %v, want clamped to [0,1]", got)
	}
}

func TestFuelDepletedThresholdByVegetation(t *testing.T) {
	// Grassland has a much lower fuel content than DenseForest, so it
	// should deplete sooner at the same burn duration and temperature.
	if FuelDepleted(DenseForest, 5, 20) {
		t.Error("DenseForest should not be depleted after only 5s")
	}
	if !FuelDepleted(Grassland, 15, 20) {
		t.Error("Grassland should be depleted after 15s of burning")
	}
}

func TestExtinctionProbabilityIncreasesWithMoisture(t *testing.T) {
	low := ExtinctionProbability(0.1, 50, 0, 0.2)
	high := ExtinctionProbability(0.9, 50, 0, 0.2)
	if !(high > low) {
		t.Errorf("ExtinctionProbability should increase with moisture: low=%v high=%v", low, high)
	}
}

func TestSpreadRateZeroForWater(t *testing.T) {
	c := Cell{Vegetation: Water, Moisture: 0}
	if got := SpreadRate(c, 10, 0); got != 0 {
		t.Errorf("SpreadRate(Water) = %v, want 0", got)
	}
}
