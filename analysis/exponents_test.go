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
	"testing"
)

func TestLogLogSlopeRecoversKnownPowerLaw(t *testing.T) {
	// y = x^2, so log(y) = 2*log(x): slope should recover 2.
	var x, y []float64
	for i := 1; i <= 20; i++ {
		xi := float64(i)
		x = append(x, xi)
		y = append(y, xi*xi)
	}
	slope, r2, ok := logLogSlope(x, y)
	if !ok {
		t.Fatal("logLogSlope should succeed with a clean power law")
	}
	if math.Abs(slope-2) > 1e-6 {
		t.Errorf("slope = %v, want ~2", slope)
	}
	if r2 < 0.99 {
		t.Errorf("r2 = %v, want close to 1 for a noiseless power law", r2)
	}
}

func TestLogLogSlopeSkipsNonPositivePairs(t *testing.T) {
	x := []float64{1, 2, -1, 4}
	y := []float64{1, 4, 9, 16}
	_, _, ok := logLogSlope(x, y)
	if !ok {
		t.Fatal("logLogSlope should still succeed once the non-positive pair is skipped")
	}
}

func TestLogLogSlopeInsufficientPoints(t *testing.T) {
	_, _, ok := logLogSlope([]float64{1}, []float64{1})
	if ok {
		t.Error("logLogSlope should fail with fewer than 2 valid points")
	}
}

func TestExtractExponentsFallsBackWhenDataIsInsufficient(t *testing.T) {
	result, sufficient := ExtractExponents(0.5, nil, nil, nil, nil, nil)
	if sufficient {
		t.Error("sufficient should be false with no input data at all")
	}
	if result.Beta != defaultBeta {
		t.Errorf("Beta = %v, want fallback defaultBeta %v", result.Beta, defaultBeta)
	}
	if result.Tau != defaultTau {
		t.Errorf("Tau = %v, want fallback defaultTau %v", result.Tau, defaultTau)
	}
}

func TestExtractExponentsRecoversBetaAboveCriticalPoint(t *testing.T) {
	pc := 0.5
	var values, order []float64
	for i := 1; i <= 10; i++ {
		p := pc + float64(i)*0.01
		values = append(values, p)
		order = append(order, math.Pow(p-pc, 0.3))
	}
	result, sufficient := ExtractExponents(pc, values, order, make([]float64, len(values)), make([]float64, len(values)), nil)
	if !sufficient {
		t.Fatal("expected sufficient data to recover beta")
	}
	if math.Abs(result.Beta-0.3) > 1e-3 {
		t.Errorf("Beta = %v, want ~0.3", result.Beta)
	}
}
