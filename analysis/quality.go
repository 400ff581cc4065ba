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
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Bootstrap draws nResamples resamples of len(samples) with replacement
// from samples, applies statistic to each, and returns the resample
// distribution's mean and standard deviation.
func Bootstrap(samples []float64, statistic func([]float64) float64, nResamples int, rng *rand.Rand) (mean, stdDev float64) {
	if len(samples) == 0 || nResamples <= 0 {
		return 0, 0
	}
	resampleStats := make([]float64, nResamples)
	resample := make([]float64, len(samples))
	for i := 0; i < nResamples; i++ {
		for j := range resample {
			resample[j] = samples[rng.Intn(len(samples))]
		}
		resampleStats[i] = statistic(resample)
	}
	mean = stat.Mean(resampleStats, nil)
	stdDev = stat.StdDev(resampleStats, nil)
	return mean, stdDev
}

// Jackknife computes the leave-one-out jackknife estimate of statistic's
// bias and standard error over samples.
func Jackknife(samples []float64, statistic func([]float64) float64) (bias, stdErr float64) {
	n := len(samples)
	if n < 2 {
		return 0, 0
	}
	full := statistic(samples)
	leaveOneOut := make([]float64, n)
	reduced := make([]float64, n-1)
	for i := 0; i < n; i++ {
		copy(reduced, samples[:i])
		copy(reduced[i:], samples[i+1:])
		leaveOneOut[i] = statistic(reduced)
	}
	meanLOO := stat.Mean(leaveOneOut, nil)
	bias = float64(n-1) * (meanLOO - full)
	var sumSq float64
	for _, v := range leaveOneOut {
		d := v - meanLOO
		sumSq += d * d
	}
	stdErr = math.Sqrt(float64(n-1) / float64(n) * sumSq)
	return bias, stdErr
}

// KSStatistic is the two-sample Kolmogorov-Smirnov statistic: the
// maximum absolute difference between the empirical CDFs of a and b.
func KSStatistic(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1
	}
	sa := append([]float64{}, a...)
	sb := append([]float64{}, b...)
	sort.Float64s(sa)
	sort.Float64s(sb)

	all := append(append([]float64{}, sa...), sb...)
	sort.Float64s(all)

	maxDiff := 0.0
	for _, x := range all {
		fa := empiricalCDF(sa, x)
		fb := empiricalCDF(sb, x)
		if d := math.Abs(fa - fb); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func empiricalCDF(sorted []float64, x float64) float64 {
	idx := sort.SearchFloat64s(sorted, math.Nextafter(x, math.Inf(1)))
	return float64(idx) / float64(len(sorted))
}

// WeightedLeastSquares fits y = a + b*x with per-point weights, returning
// the intercept, slope and the weighted R-squared.
func WeightedLeastSquares(x, y, weights []float64) (intercept, slope, rSquared float64) {
	if len(x) < 2 || len(x) != len(y) || len(x) != len(weights) {
		return 0, 0, 0
	}
	alpha, beta := stat.LinearRegression(x, y, weights, false)
	yHat := make([]float64, len(y))
	for i, xi := range x {
		yHat[i] = alpha + beta*xi
	}
	rSquared = stat.RSquaredFrom(yHat, y, weights)
	return alpha, beta, rSquared
}

// MLEPowerLawExponent fits n(s) ~ s^-tau via the Clauset-Shalizi-Newman
// maximum-likelihood estimator for a discrete power law with lower bound
// sMin: tauHat = 1 + n / sum(ln(s_i / (sMin - 0.5))).
func MLEPowerLawExponent(samples []float64, sMin float64) (tau float64, ok bool) {
	var n, sumLog float64
	for _, s := range samples {
		if s < sMin {
			continue
		}
		n++
		sumLog += math.Log(s / (sMin - 0.5))
	}
	if n == 0 || sumLog == 0 {
		return defaultTau, false
	}
	return 1 + n/sumLog, true
}

// AIC is the Akaike information criterion for a model with k parameters
// and maximized log-likelihood logLik.
func AIC(logLik float64, k int) float64 {
	return 2*float64(k) - 2*logLik
}

// BIC is the Bayesian information criterion for a model with k
// parameters, n observations and maximized log-likelihood logLik.
func BIC(logLik float64, k, n int) float64 {
	return float64(k)*math.Log(float64(n)) - 2*logLik
}

// CrossValidate splits samples into k folds, fits statistic on the other
// k-1 folds and scores it against the held-out fold with score, and
// returns the mean held-out score.
func CrossValidate(samples []float64, k int, fit func(train []float64) func(test float64) float64, score func(predicted, actual float64) float64) float64 {
	if k < 2 || len(samples) < k {
		return 0
	}
	foldSize := len(samples) / k
	var total float64
	var count int
	for i := 0; i < k; i++ {
		start, end := i*foldSize, (i+1)*foldSize
		if i == k-1 {
			end = len(samples)
		}
		var train []float64
		train = append(train, samples[:start]...)
		train = append(train, samples[end:]...)
		predict := fit(train)
		for _, actual := range samples[start:end] {
			total += score(predict(actual), actual)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// BlockingAnalysis estimates the integrated autocorrelation time of a
// time series by successively averaging pairs of adjacent samples
// (blocking) until the blocked standard error plateaus, returning the
// plateau standard error and the number of blocking levels used.
func BlockingAnalysis(series []float64) (stdErr float64, levels int) {
	block := append([]float64{}, series...)
	prevErr := math.Inf(1)
	for len(block) >= 8 {
		se := stat.StdDev(block, nil) / math.Sqrt(float64(len(block)))
		if se <= prevErr*1.01 && levels > 0 {
			return se, levels
		}
		prevErr = se
		block = blockPairs(block)
		levels++
	}
	return prevErr, levels
}

func blockPairs(series []float64) []float64 {
	n := len(series) / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = (series[2*i] + series[2*i+1]) / 2
	}
	return out
}

// EquilibrationReport flags whether a time series is still drifting and
// whether it has enough independent samples.
type EquilibrationReport struct {
	Drifting            bool
	Slope               float64
	RSquared            float64
	AutocorrelationTime float64
	EffectiveSamples    float64
	Insufficient        bool
}

// CheckEquilibration runs a linear fit of series against its sample
// index to detect drift (|slope|>0.001 and R^2>0.5), estimates the
// integrated autocorrelation time via BlockingAnalysis, and flags
// insufficient independent samples when N_eff = len/tau < 20.
func CheckEquilibration(series []float64) EquilibrationReport {
	if len(series) < 2 {
		return EquilibrationReport{Insufficient: true}
	}
	t := make([]float64, len(series))
	for i := range t {
		t[i] = float64(i)
	}
	_, slope := stat.LinearRegression(t, series, nil, false)
	rSquared := stat.RSquaredFrom(fittedLine(t, series), series, nil)
	drifting := math.Abs(slope) > 0.001 && rSquared > 0.5

	se, levels := BlockingAnalysis(series)
	naive := stat.StdDev(series, nil) / math.Sqrt(float64(len(series)))
	tau := 1.0
	if naive > 0 {
		tau = math.Pow(se/naive, 2) * math.Pow(2, float64(levels))
	}
	if tau < 1 {
		tau = 1
	}
	nEff := float64(len(series)) / tau

	return EquilibrationReport{
		Drifting:            drifting,
		Slope:               slope,
		RSquared:            rSquared,
		AutocorrelationTime: tau,
		EffectiveSamples:    nEff,
		Insufficient:        nEff < 20,
	}
}

func fittedLine(x, y []float64) []float64 {
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = alpha + beta*xi
	}
	return out
}

// Report bundles a run's full scientific verdict: equilibration status,
// how many effectively independent samples fed it, how far its fitted
// exponents sit from hyperscaling consistency, and the nearest
// universality class -- one place to read a run's conclusion rather than
// five separate calls (supplemented, see DESIGN.md).
type Report struct {
	Equilibration       EquilibrationReport
	CriticalPoint       CriticalPointResult
	Exponents           ExponentSet
	Hyperscaling        HyperscalingReport
	NearestClass        UniversalityClass
	ClassDistance       float64
}

// BuildReport composes a Report from the pieces an analysis pipeline
// already produces. spatialDimension is 2 for this grid.
func BuildReport(series []float64, cp CriticalPointResult, exp ExponentSet, spatialDimension float64) Report {
	nearest, dist := NearestClass(exp, cp.Confidence)
	return Report{
		Equilibration: CheckEquilibration(series),
		CriticalPoint: cp,
		Exponents:     exp,
		Hyperscaling:  CheckHyperscaling(exp, spatialDimension),
		NearestClass:  nearest,
		ClassDistance: dist,
	}
}
