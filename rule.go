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

import "math/rand"

// RuleConfig carries the feature toggles and tunables rules read out of
// the per-step StepContext.
type RuleConfig struct {
	EnableSparks   bool
	SparkProbability float64
	EnableEmbers   bool
	EmberDistance  float64
	EnableRegrowth bool
	RegrowthRate   float64
}

// DefaultRuleConfig returns a RuleConfig with every feature enabled at a
// modest rate.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		EnableSparks:     true,
		SparkProbability: 0.00001,
		EnableEmbers:     true,
		EmberDistance:    5,
		EnableRegrowth:   true,
		RegrowthRate:     0.0005,
	}
}

// StepContext is the read-only context a Rule sees while evaluating a
// single cell during a single step. Terrain, Climate and Physics are
// immutable for the run. Grid is the grid as it was before the step began
// under the Synchronous and Block strategies, and the partially updated
// grid under the Asynchronous strategy. ElapsedTime is the time at the end
// of the step, used to stamp emitted events.
type StepContext struct {
	Grid     *Grid
	Terrain  *Terrain
	Climate  *Climate
	Physics  PhysicsParams
	RuleCfg  RuleConfig
	Dt       float64
	ElapsedTime float64
	Rand     *rand.Rand
}

// Rule is one rewrite step a cell may undergo. Implementations are small,
// named structs rather than closures so that the default rule set is
// statically enumerable.
type Rule interface {
	Name() string
	Applicable(c Cell, nb Neighborhood, ctx StepContext) bool
	Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent)
}

// RuleSet partitions the default rule list into five ordered categories.
type RuleSet struct {
	Ignition     []Rule
	Burning      []Rule
	Extinction   []Rule
	Recovery     []Rule
	Intervention []Rule
}

// RuleEngine dispatches a cell to the rule lists appropriate for its
// current state and threads it through each applicable rule in order.
type RuleEngine struct {
	Rules RuleSet
}

// listsFor returns the ordered rule lists applied to a cell in state s.
func (e RuleEngine) listsFor(s CellState) [][]Rule {
	switch s {
	case Empty, Burnt:
		return [][]Rule{e.Rules.Recovery, e.Rules.Intervention}
	case Tree:
		return [][]Rule{e.Rules.Ignition, e.Rules.Intervention}
	case Burning:
		return [][]Rule{e.Rules.Burning, e.Rules.Extinction, e.Rules.Intervention}
	default:
		return nil
	}
}

// Apply threads c through every applicable rule in the lists for its
// current state, in order, accumulating any emitted events.
func (e RuleEngine) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	cur := c
	var events []FireEvent
	for _, list := range e.listsFor(c.State) {
		for _, r := range list {
			if r.Applicable(cur, nb, ctx) {
				var ev []FireEvent
				cur, ev = r.Apply(cur, nb, ctx)
				events = append(events, ev...)
			}
		}
	}
	return cur, events
}

// DefaultRuleSet builds the standard rule set: the concrete ignition,
// burning, extinction and recovery rules, parameterized by p.
// Intervention is intentionally empty -- human-intervention rules
// (firebreaks, water drops) are out of scope for now, but the slot is
// always present and always run.
func DefaultRuleSet(p PhysicsParams) RuleSet {
	return RuleSet{
		Ignition: []Rule{
			SparkIgnition{},
			NeighborIgnition{Params: p},
			EmberIgnition{},
			PreHeating{Params: p},
		},
		Burning: []Rule{
			IntensityEvolution{},
			FuelConsumption{},
			HeatGeneration{Params: p},
		},
		Extinction: []Rule{
			FuelDepletion{},
			TemperatureDecay{},
			MoistureSuppression{},
			NeighborIsolation{},
			CombinedExtinction{},
		},
		Recovery: []Rule{
			NaturalRegrowth{},
			SeasonalGrowth{},
			SeedDispersion{},
			VegetationSuccession{},
			MoistureRecovery{},
		},
		Intervention: nil,
	}
}
