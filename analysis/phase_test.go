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

import "testing"

func TestClassifyStateSuperCritical(t *testing.T) {
	op := OrderParameters{BurntFraction: 0.5, PercolationSmooth: 0.9}
	if got := ClassifyState(op); got != SuperCritical {
		t.Errorf("ClassifyState = %v, want SuperCritical", got)
	}
}

func TestClassifyStateSubCritical(t *testing.T) {
	op := OrderParameters{BurntFraction: 0.05, LargestClusterRatio: 0.01}
	if got := ClassifyState(op); got != SubCritical {
		t.Errorf("ClassifyState = %v, want SubCritical", got)
	}
}

func TestClassifyStateCriticalByElimination(t *testing.T) {
	op := OrderParameters{BurntFraction: 0.2, LargestClusterRatio: 0.2, PercolationSmooth: 0.2}
	if got := ClassifyState(op); got != Critical {
		t.Errorf("ClassifyState = %v, want Critical", got)
	}
}

func TestClassifyEnsembleFallsBackToBaseOutsideMidRange(t *testing.T) {
	mean := OrderParameters{BurntFraction: 0.02, LargestClusterRatio: 0.01}
	stdDev := OrderParameters{BurntFraction: 10} // huge relative variance, but out of range
	if got := ClassifyEnsemble(mean, stdDev); got != ClassifyState(mean) {
		t.Errorf("ClassifyEnsemble = %v, want the base classification %v", got, ClassifyState(mean))
	}
}

func TestClassifyEnsembleHighVarianceInMidRangeIsCritical(t *testing.T) {
	mean := OrderParameters{BurntFraction: 0.2, LargestClusterRatio: 0.2, PercolationSmooth: 0.2}
	stdDev := OrderParameters{BurntFraction: 0.5} // normalizedVariance = (0.5/0.2)^2 = 6.25 > 2.0
	if got := ClassifyEnsemble(mean, stdDev); got != Critical {
		t.Errorf("ClassifyEnsemble = %v, want Critical from high relative burnt-fraction variance", got)
	}
}

func TestClassifyEnsembleLowVarianceInMidRangeKeepsBase(t *testing.T) {
	mean := OrderParameters{BurntFraction: 0.3, LargestClusterRatio: 0.3, PercolationSmooth: 0.9}
	stdDev := OrderParameters{BurntFraction: 0.01}
	base := ClassifyState(mean)
	if got := ClassifyEnsemble(mean, stdDev); got != base {
		t.Errorf("ClassifyEnsemble = %v, want base classification %v under low variance", got, base)
	}
}

func TestPhaseStringer(t *testing.T) {
	cases := map[Phase]string{SubCritical: "SubCritical", Critical: "Critical", SuperCritical: "SuperCritical"}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", p, got, want)
		}
	}
}
