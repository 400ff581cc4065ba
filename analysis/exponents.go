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

	"github.com/GaryBoone/GoStats/stats"
)

// ExponentSet bundles the critical exponents characterizing a phase
// transition's universality class.
type ExponentSet struct {
	Beta  float64
	Gamma float64
	Nu    float64
	Alpha float64
	Delta float64
	Eta   float64
	Tau   float64
}

// defaultTau and defaultBeta are fallback values used when a logarithm
// of non-finite input would otherwise propagate NaNs into an exponent.
const (
	defaultTau  = 2.055
	defaultBeta = 0.139
)

// logLogSlope runs GoStats.LinearRegression on log(x) vs log(y), skipping
// any pair where either value is non-positive or non-finite, and returns
// the slope, its R-squared and whether enough points survived. The
// six-return-value call signature is grounded on
// eval/obscompare_test.go's `slope, intercept, rsquared, _, _, _ :=
// stats.LinearRegression(x, y)`.
func logLogSlope(x, y []float64) (slope, rsquared float64, ok bool) {
	var lx, ly []float64
	for i := range x {
		if x[i] <= 0 || y[i] <= 0 || math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		lx = append(lx, math.Log(x[i]))
		ly = append(ly, math.Log(y[i]))
	}
	if len(lx) < 2 {
		return 0, 0, false
	}
	s, _, r2, _, _, _ := stats.LinearRegression(lx, ly)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, 0, false
	}
	return s, r2, true
}

// ExtractExponents estimates beta, gamma, nu and tau via log-log linear
// regression over every swept value except pc itself (no narrower window
// around pc is applied):
// beta from m ~ (p-pc)^beta above pc; gamma from chi ~ |p-pc|^-gamma;
// nu from xi ~ |p-pc|^-nu; tau from n(s) ~ s^-tau.
func ExtractExponents(pc float64, values []float64, order, susceptibility, correlationLength []float64, clusterSizeCounts map[int]int) (ExponentSet, bool) {
	var distAbove, mAbove, distAll, chiAll, xiAll []float64
	for i, p := range values {
		d := p - pc
		if d > 0 {
			distAbove = append(distAbove, d)
			mAbove = append(mAbove, order[i])
		}
		if d != 0 {
			distAll = append(distAll, math.Abs(d))
			chiAll = append(chiAll, susceptibility[i])
			xiAll = append(xiAll, correlationLength[i])
		}
	}

	beta, _, betaOK := logLogSlope(distAbove, mAbove)
	gammaNeg, _, gammaOK := logLogSlope(distAll, chiAll)
	nuNeg, _, nuOK := logLogSlope(distAll, xiAll)

	var s, n []float64
	for size, count := range clusterSizeCounts {
		if size > 0 && count > 0 {
			s = append(s, float64(size))
			n = append(n, float64(count))
		}
	}
	tauNeg, _, tauOK := logLogSlope(s, n)

	result := ExponentSet{
		Beta:  defaultBeta,
		Gamma: 1.0,
		Nu:    4.0 / 3.0,
		Tau:   defaultTau,
	}
	sufficient := betaOK || gammaOK || nuOK || tauOK

	if betaOK {
		result.Beta = beta
	}
	if gammaOK {
		result.Gamma = -gammaNeg
	}
	if nuOK {
		result.Nu = -nuNeg
	}
	if tauOK {
		result.Tau = -tauNeg
	}
	return result, sufficient
}
