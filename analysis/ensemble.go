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
	"runtime"
	"sync"
	"time"

	firesim "github.com/jijiduc/forest-fire-simulator-sub000"
)

// AnalysisConfig configures ensemble runs and sweeps.
type AnalysisConfig struct {
	EnsembleSize        int
	WarmupTime          float64
	MeasurementInterval float64
	Parallelism         int
}

// RunResult is a single run's outcome.
type RunResult struct {
	FinalState      firesim.SimulationState
	TimeSeries      []firesim.SimulationState
	OrderParameters map[string]float64
	Phase           Phase
	RunWallTime     time.Duration
	Err             error
}

// EnsembleResult aggregates RunEnsemble's members.
type EnsembleResult struct {
	Results                []RunResult
	AverageOrderParameters map[string]float64
	StdDevs                map[string]float64
	Phase                  Phase
}

// ParameterPoint is one value of a swept parameter and its ensemble
// result.
type ParameterPoint struct {
	Parameter string
	Value     float64
	Ensemble  EnsembleResult
}

// runSingle executes engine from initial until maxTime, sampling the
// post-warmup trajectory at MeasurementInterval and averaging sampled
// order parameters into the run's final OrderParameters map.
func runSingle(initial firesim.SimulationState, engine *firesim.Engine, maxTime float64, cfg AnalysisConfig) RunResult {
	start := time.Now()
	seq := engine.RunAdaptive(initial, maxTime)

	var timeSeries []firesim.SimulationState
	var sampled []OrderParameters
	lastSample := math.Inf(-1)

	var final firesim.SimulationState
	for {
		state, ok := seq.Next()
		if !ok {
			break
		}
		final = state
		if state.ElapsedTime < cfg.WarmupTime {
			continue
		}
		if state.ElapsedTime-lastSample < cfg.MeasurementInterval {
			continue
		}
		lastSample = state.ElapsedTime
		timeSeries = append(timeSeries, state)
		sampled = append(sampled, Compute(state))
	}
	if err := seq.Err(); err != nil {
		return RunResult{Err: err, RunWallTime: time.Since(start)}
	}
	if len(sampled) == 0 {
		sampled = append(sampled, Compute(final))
		timeSeries = append(timeSeries, final)
	}

	avg := averageOrderParameters(sampled)
	return RunResult{
		FinalState:      final,
		TimeSeries:      timeSeries,
		OrderParameters: avg.ToMap(),
		Phase:           ClassifyState(avg),
		RunWallTime:     time.Since(start),
	}
}

func averageOrderParameters(ops []OrderParameters) OrderParameters {
	var avg OrderParameters
	n := float64(len(ops))
	if n == 0 {
		return avg
	}
	for _, op := range ops {
		avg.BurntFraction += op.BurntFraction
		avg.ActiveFraction += op.ActiveFraction
		avg.LargestClusterRatio += op.LargestClusterRatio
		avg.PercolationBinary += op.PercolationBinary
		avg.PercolationSmooth += op.PercolationSmooth
		avg.ClusterDensity += op.ClusterDensity
		avg.MeanClusterSize += op.MeanClusterSize
		avg.FireFrontLength += op.FireFrontLength
		avg.CorrelationLength += op.CorrelationLength
		avg.Susceptibility += op.Susceptibility
	}
	avg.BurntFraction /= n
	avg.ActiveFraction /= n
	avg.LargestClusterRatio /= n
	avg.PercolationBinary /= n
	avg.PercolationSmooth /= n
	avg.ClusterDensity /= n
	avg.MeanClusterSize /= n
	avg.FireFrontLength = int(float64(avg.FireFrontLength) / n)
	avg.CorrelationLength /= n
	avg.Susceptibility /= n
	return avg
}

// perturbIgnition returns a copy of base with three random Tree cells
// whose vegetation is neither Water nor Urban set to Burning, chosen
// deterministically from seed.
func perturbIgnition(base firesim.SimulationState, seed int64) firesim.SimulationState {
	rng := rand.New(rand.NewSource(seed))
	g := base.Grid
	w, h := g.Width(), g.Height()
	ignited := 0
	attempts := 0
	for ignited < 3 && attempts < 10*w*h {
		attempts++
		x, y := rng.Intn(w), rng.Intn(h)
		c, ok := g.Cell(x, y)
		if !ok || c.State != firesim.Tree || c.Vegetation == firesim.Water || c.Vegetation == firesim.Urban {
			continue
		}
		c.State = firesim.Burning
		c.BurnDuration = 0
		g = g.WithCell(x, y, c)
		ignited++
	}
	cp := base
	cp.Grid = g
	return cp
}

// RunEnsemble generates cfg.EnsembleSize perturbed initial states from
// base (seeds 42+i), runs each under its own seeded engine to maxTime,
// and aggregates the per-run order parameters into means and standard
// deviations. Members run concurrently, bounded by
// cfg.Parallelism, via a semaphore-bounded goroutine pool grounded on the
// teacher's Calculations()/sr distributed-job dispatch pattern.
func RunEnsemble(base firesim.SimulationState, engine *firesim.Engine, maxTime float64, cfg AnalysisConfig) EnsembleResult {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.EnsembleSize <= 0 {
		cfg.EnsembleSize = 1
	}

	results := make([]RunResult, cfg.EnsembleSize)
	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup
	wg.Add(cfg.EnsembleSize)
	for i := 0; i < cfg.EnsembleSize; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			seed := int64(42 + i)
			initial := perturbIgnition(base, seed)
			memberEngine := engine.WithRuleConfig(engine.RuleCfg)
			memberEngine.Config.Seed = seed
			results[i] = runSingle(initial, memberEngine, maxTime, cfg)
		}(i)
	}
	wg.Wait()

	var valid []RunResult
	for _, r := range results {
		if r.Err == nil {
			valid = append(valid, r)
		}
	}

	mean, std := aggregateRunResults(valid)
	return EnsembleResult{
		Results:                results,
		AverageOrderParameters: mean,
		StdDevs:                std,
		Phase:                  ClassifyEnsemble(mapToOrderParameters(mean), mapToOrderParameters(std)),
	}
}

func aggregateRunResults(results []RunResult) (mean, std map[string]float64) {
	mean = make(map[string]float64)
	std = make(map[string]float64)
	if len(results) == 0 {
		return mean, std
	}
	keys := make([]string, 0, len(results[0].OrderParameters))
	for k := range results[0].OrderParameters {
		keys = append(keys, k)
	}
	for _, k := range keys {
		var xs []float64
		for _, r := range results {
			xs = append(xs, r.OrderParameters[k])
		}
		mean[k] = meanOf(xs)
		std[k] = math.Sqrt(variance(xs))
	}
	return mean, std
}

// variance is the population variance of xs (the mean squared deviation
// from meanOf(xs)), or 0 for an empty slice.
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := meanOf(xs)
	total := 0.0
	for _, x := range xs {
		total += (x - m) * (x - m)
	}
	return total / float64(len(xs))
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

func mapToOrderParameters(m map[string]float64) OrderParameters {
	return OrderParameters{
		BurntFraction:       m["burntFraction"],
		ActiveFraction:      m["activeFraction"],
		LargestClusterRatio: m["largestClusterRatio"],
		PercolationBinary:   m["percolationBinary"],
		PercolationSmooth:   m["percolationSmooth"],
		ClusterDensity:      m["clusterDensity"],
		MeanClusterSize:     m["meanClusterSize"],
		FireFrontLength:     int(m["fireFrontLength"]),
		CorrelationLength:   m["correlationLength"],
		Susceptibility:      m["susceptibility"],
	}
}

// ParameterProjection rewrites base into a new run configuration for a
// given parameter value.
type ParameterProjection func(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine)

// TreeDensity rewrites every non-Water, non-Urban, non-Burning cell into
// Tree with probability value, using the fixed seed 42 for reproducibility
// across sweep points.
func TreeDensity(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine) {
	rng := rand.New(rand.NewSource(42))
	g := base.Grid
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := g.Cell(x, y)
			if c.State == firesim.Burning || c.Vegetation == firesim.Water || c.Vegetation == firesim.Urban {
				continue
			}
			if rng.Float64() < value {
				c.State = firesim.Tree
			} else {
				c.State = firesim.Empty
			}
			g = g.WithCell(x, y, c)
		}
	}
	cp := base
	cp.Grid = g
	return cp, engine
}

// Moisture sets every cell's moisture to value.
func Moisture(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine) {
	g := base.Grid
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := g.Cell(x, y)
			c.Moisture = value
			g = g.WithCell(x, y, c)
		}
	}
	cp := base
	cp.Grid = g
	return cp, engine
}

// WindSpeed updates the climate's wind speed, leaving direction untouched.
func WindSpeed(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine) {
	climate := *base.Climate
	climate.Wind.Speed = value
	cp := base
	cp.Climate = &climate
	return cp, engine
}

// TemperatureAnomaly shifts every cell's temperature by value, corrected
// for elevation via the climate's lapse rate.
func TemperatureAnomaly(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine) {
	g := base.Grid
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := g.Cell(x, y)
			c.Temperature = base.Climate.TemperatureAtElevation(c.Elevation) + value
			g = g.WithCell(x, y, c)
		}
	}
	cp := base
	cp.Grid = g
	return cp, engine
}

// SparkProbability propagates value into the engine's RuleConfig.
func SparkProbability(base firesim.SimulationState, engine *firesim.Engine, value float64) (firesim.SimulationState, *firesim.Engine) {
	cfg := engine.RuleCfg
	cfg.SparkProbability = value
	return base, engine.WithRuleConfig(cfg)
}

// ParameterSweep runs an ensemble at every value in values, applying
// project to base/engine for each, and returns one ParameterPoint per
// value. Sweep points run sequentially, preserving point order; within
// each point the ensemble itself runs in parallel. Callers wanting
// parallel sweeps can run multiple ParameterSweep calls concurrently.
func ParameterSweep(name string, values []float64, project ParameterProjection, base firesim.SimulationState, engine *firesim.Engine, maxTime float64, cfg AnalysisConfig) []ParameterPoint {
	points := make([]ParameterPoint, len(values))
	for i, v := range values {
		state, eng := project(base, engine, v)
		points[i] = ParameterPoint{
			Parameter: name,
			Value:     v,
			Ensemble:  RunEnsemble(state, eng, maxTime, cfg),
		}
	}
	return points
}

// PhaseDiagram2D is the Cartesian product of two parameter sweeps: for
// every value of the outer axis, the inner axis is fully consumed before
// the outer advances.
func PhaseDiagram2D(outerName string, outerValues []float64, outerProject ParameterProjection,
	innerName string, innerValues []float64, innerProject ParameterProjection,
	base firesim.SimulationState, engine *firesim.Engine, maxTime float64, cfg AnalysisConfig) [][]ParameterPoint {
	rows := make([][]ParameterPoint, len(outerValues))
	for i, ov := range outerValues {
		outerState, outerEngine := outerProject(base, engine, ov)
		rows[i] = ParameterSweep(innerName, innerValues, innerProject, outerState, outerEngine, maxTime, cfg)
	}
	return rows
}
