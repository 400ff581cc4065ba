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

import (
	"hash/maphash"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// UpdateKind selects one of the three cell-update strategies an Engine
// may run a step with.
type UpdateKind int

const (
	Synchronous UpdateKind = iota
	Asynchronous
	Block
)

func (k UpdateKind) String() string {
	switch k {
	case Synchronous:
		return "Synchronous"
	case Asynchronous:
		return "Asynchronous"
	case Block:
		return "Block"
	default:
		return "UpdateKind(?)"
	}
}

// UpdateStrategy configures how a step assembles its new grid. BlockSize
// is only consulted when Kind is Block.
type UpdateStrategy struct {
	Kind      UpdateKind
	BlockSize int
}

// RunConfig is the engine's configuration surface. Seed is
// always meaningful: zero is a valid seed like any other, so "optional"
// just means callers who don't care can leave it at its zero value.
type RunConfig struct {
	MaxSteps          int
	MaxTime           float64
	MinDt, MaxDt      float64
	Adaptive          bool
	UpdateStrategy    UpdateStrategy
	BoundaryCondition BoundaryPolicy
	Parallelism       int
	Seed              int64
}

// Engine advances SimulationState one step at a time under a fixed rule
// set, time-step policy and boundary condition. An Engine is
// safe to share across goroutines once constructed: Step never mutates
// engine state.
type Engine struct {
	Rules    RuleSet
	Config   RunConfig
	Timestep TimeStepPolicy
	Physics  PhysicsParams
	RuleCfg  RuleConfig
	Logger   *logrus.Logger

	ruleEngine RuleEngine
}

// NewEngine validates cfg and builds an Engine ready to Step. Validation
// failures are reported before any state is produced.
func NewEngine(rules RuleSet, cfg RunConfig, timestep TimeStepPolicy, physics PhysicsParams, ruleCfg RuleConfig, logger *logrus.Logger) (*Engine, error) {
	if cfg.MinDt <= 0 || cfg.MaxDt <= 0 || cfg.MinDt > cfg.MaxDt {
		return nil, ErrInvalidTimestep
	}
	if ruleCfg.SparkProbability < 0 || ruleCfg.SparkProbability > 1 {
		return nil, ErrInvalidProbability
	}
	if ruleCfg.RegrowthRate < 0 || ruleCfg.RegrowthRate > 1 {
		return nil, ErrInvalidProbability
	}
	if cfg.BoundaryCondition == nil {
		cfg.BoundaryCondition = Periodic{}
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.UpdateStrategy.Kind == Block && cfg.UpdateStrategy.BlockSize <= 0 {
		cfg.UpdateStrategy.BlockSize = 8
	}
	return &Engine{
		Rules:      rules,
		Config:     cfg,
		Timestep:   timestep,
		Physics:    physics,
		RuleCfg:    ruleCfg,
		Logger:     logger,
		ruleEngine: RuleEngine{Rules: rules},
	}, nil
}

// hashSeed is fixed once per process so that cellSeed is deterministic
// for the lifetime of a run: maphash itself only promises a stable hash
// within a single process, which is all that's needed here -- same
// configSeed and inputs, compared within one run or one test process,
// are bit-identical regardless of how many goroutines computed them.
var hashSeed = maphash.MakeSeed()

// WithRuleConfig returns a shallow copy of e with its RuleConfig replaced.
// Rules read RuleConfig off the per-step StepContext rather than off their
// own fields (see rule.go), so this is all a SparkProbability parameter
// projection needs to retarget an ensemble member -- no rule set rebuild.
func (e *Engine) WithRuleConfig(cfg RuleConfig) *Engine {
	cp := *e
	cp.RuleCfg = cfg
	return &cp
}

// cellSeed derives a deterministic per-cell, per-step RNG seed from the
// tuple (configSeed, elapsedTime, x, y).
func cellSeed(configSeed int64, elapsedTime float64, x, y int) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [32]byte
	putInt64(buf[0:8], configSeed)
	putInt64(buf[8:16], int64(elapsedTime*1e6))
	putInt64(buf[16:24], int64(x))
	putInt64(buf[24:32], int64(y))
	h.Write(buf[:])
	return h.Sum64()
}

func putInt64(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

// cellRand returns a *rand.Rand seeded deterministically for (x, y) at
// the given elapsed time.
func cellRand(configSeed int64, elapsedTime float64, x, y int) *rand.Rand {
	return rand.New(rand.NewSource(int64(cellSeed(configSeed, elapsedTime, x, y))))
}

// Step advances state by one tick.
func (e *Engine) Step(state SimulationState) (SimulationState, error) {
	entry := entryOrNil(e.Logger, logrus.Fields{"component": "engine", "elapsedTime": state.ElapsedTime})

	dt := e.Config.MaxDt
	if e.Timestep != nil {
		dt = e.Timestep.NextDt(state.Grid, state.Climate, e.Physics)
	}
	if dt < e.Config.MinDt {
		dt = e.Config.MinDt
	}
	if dt > e.Config.MaxDt {
		dt = e.Config.MaxDt
	}
	newElapsed := state.ElapsedTime + dt

	var newGrid *Grid
	var events []FireEvent
	var err error

	switch e.Config.UpdateStrategy.Kind {
	case Asynchronous:
		newGrid, events, err = e.stepAsynchronous(state, dt, newElapsed)
	case Block:
		newGrid, events, err = e.stepBlock(state, dt, newElapsed)
	default:
		newGrid, events, err = e.stepSynchronous(state, dt, newElapsed)
	}
	if err != nil {
		logDebugf(entry, logrus.Fields{"error": err}, "step failed")
		return SimulationState{}, err
	}

	metrics, labels := ComputeMetrics(newGrid)
	logDebug(entry, "step complete")

	return SimulationState{
		Grid:        newGrid,
		Climate:     state.Climate,
		Terrain:     state.Terrain,
		TimeStep:    dt,
		ElapsedTime: newElapsed,
		Metrics:     metrics,
		Labels:      labels,
		Events:      boundEvents(events),
	}, nil
}

// applyCell runs the rule engine on a single cell, given its already
// boundary-resolved neighborhood, and returns its successor value and any
// emitted events.
func (e *Engine) applyCell(c Cell, nb Neighborhood, state SimulationState, dt, elapsed float64) (Cell, []FireEvent) {
	ctx := StepContext{
		Grid:        state.Grid,
		Terrain:     state.Terrain,
		Climate:     state.Climate,
		Physics:     e.Physics,
		RuleCfg:     e.RuleCfg,
		Dt:          dt,
		ElapsedTime: elapsed,
		Rand:        cellRand(e.Config.Seed, elapsed, c.Position.X, c.Position.Y),
	}
	return e.ruleEngine.Apply(c, nb, ctx)
}

// stepSynchronous assembles the new grid from every cell's independent
// output, striping cell updates across a bounded worker pool sized from
// Config.Parallelism (defaulting to runtime.GOMAXPROCS).
func (e *Engine) stepSynchronous(state SimulationState, dt, elapsed float64) (*Grid, []FireEvent, error) {
	g := state.Grid
	w, h := g.Width(), g.Height()
	n := w * h
	out := make([]Cell, n)
	eventsPerCell := make([][]FireEvent, n)

	var wg sync.WaitGroup
	workers := e.Config.Parallelism
	if workers > n && n > 0 {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	wg.Add(workers)
	for p := 0; p < workers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := p; i < n; i += workers {
				x, y := i%w, i/w
				c, _ := g.Cell(x, y)
				nb := ResolveNeighborhood(g, e.Config.BoundaryCondition, x, y)
				nc, ev := e.applyCell(c, nb, state, dt, elapsed)
				out[i] = nc
				eventsPerCell[i] = ev
			}
		}(p)
	}
	wg.Wait()

	events := flattenRowMajor(eventsPerCell)
	return NewGridFromCells(w, h, out), events, nil
}

// flattenRowMajor concatenates a per-cell (row-major indexed) slice of
// event batches in index order, independent of which worker produced
// each batch -- this is what keeps the event log's order (and its
// content) identical regardless of Parallelism.
func flattenRowMajor(eventsPerCell [][]FireEvent) []FireEvent {
	var events []FireEvent
	for _, ev := range eventsPerCell {
		events = append(events, ev...)
	}
	return events
}

// stepAsynchronous visits cells in a pseudo-random order seeded from the
// configured seed and elapsed time; each update sees every previous
// update from the same step.
func (e *Engine) stepAsynchronous(state SimulationState, dt, elapsed float64) (*Grid, []FireEvent, error) {
	g := state.Grid
	w, h := g.Width(), g.Height()
	order := rand.New(rand.NewSource(e.Config.Seed ^ int64(elapsed*1e6))).Perm(w * h)

	working := g
	current := state
	var events []FireEvent
	for _, i := range order {
		x, y := i%w, i/w
		c, _ := working.Cell(x, y)
		nb := ResolveNeighborhood(working, e.Config.BoundaryCondition, x, y)
		current.Grid = working
		nc, ev := e.applyCell(c, nb, current, dt, elapsed)
		working = working.WithCell(x, y, nc)
		events = append(events, ev...)
	}
	return working, events, nil
}

// stepBlock tiles the grid into BlockSize x BlockSize blocks, updates
// blocks in parallel, and is synchronous for cells within a block
// (collisions at block borders are read from the pre-step grid, i.e.
// behave as synchronous).
func (e *Engine) stepBlock(state SimulationState, dt, elapsed float64) (*Grid, []FireEvent, error) {
	g := state.Grid
	w, h := g.Width(), g.Height()
	k := e.Config.UpdateStrategy.BlockSize
	if k <= 0 {
		k = 8
	}
	out := make([]Cell, w*h)
	eventsPerCell := make([][]FireEvent, w*h)

	blocksX := (w + k - 1) / k
	blocksY := (h + k - 1) / k
	type block struct{ bx, by int }
	blocks := make([]block, 0, blocksX*blocksY)
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			blocks = append(blocks, block{bx, by})
		}
	}

	workers := e.Config.Parallelism
	if workers > len(blocks) && len(blocks) > 0 {
		workers = len(blocks)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for p := 0; p < workers; p++ {
		go func(p int) {
			defer wg.Done()
			for bi := p; bi < len(blocks); bi += workers {
				b := blocks[bi]
				x0, y0 := b.bx*k, b.by*k
				x1, y1 := min(x0+k, w), min(y0+k, h)
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						c, _ := g.Cell(x, y)
						nb := ResolveNeighborhood(g, e.Config.BoundaryCondition, x, y)
						nc, ev := e.applyCell(c, nb, state, dt, elapsed)
						i := y*w + x
						out[i] = nc
						eventsPerCell[i] = ev
					}
				}
			}
		}(p)
	}
	wg.Wait()

	return NewGridFromCells(w, h, out), flattenRowMajor(eventsPerCell), nil
}
