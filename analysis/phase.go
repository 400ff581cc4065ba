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

// Phase is the coarse regime a state or ensemble is classified into.
type Phase int

const (
	SubCritical Phase = iota
	Critical
	SuperCritical
)

func (p Phase) String() string {
	switch p {
	case SubCritical:
		return "SubCritical"
	case Critical:
		return "Critical"
	case SuperCritical:
		return "SuperCritical"
	default:
		return "Phase(?)"
	}
}

// ClassifyState applies the single-state phase rule to a state's order
// parameters.
func ClassifyState(op OrderParameters) Phase {
	if op.BurntFraction > 0.4 && op.PercolationSmooth > 0.5 {
		return SuperCritical
	}
	if op.BurntFraction < 0.1 && op.LargestClusterRatio < 0.05 {
		return SubCritical
	}
	return Critical
}

// ClassifyEnsemble refines ClassifyState with an ensemble-level signal:
// in addition to the single-state rule on the mean order parameters, a
// normalized burnt-fraction variance above 2.0 (with the mean burnt
// fraction strictly between 0.05 and 0.5) is also treated as critical --
// large run-to-run fluctuation is itself a critical-phenomena signature.
func ClassifyEnsemble(mean, stdDev OrderParameters) Phase {
	base := ClassifyState(mean)
	if mean.BurntFraction <= 0.05 || mean.BurntFraction >= 0.5 {
		return base
	}
	if mean.BurntFraction == 0 {
		return base
	}
	normalizedVariance := (stdDev.BurntFraction * stdDev.BurntFraction) / (mean.BurntFraction * mean.BurntFraction)
	if normalizedVariance > 2.0 {
		return Critical
	}
	return base
}
