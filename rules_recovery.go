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

import "math"

// sprout turns an Empty or Burnt cell into a young Tree, resetting the
// fields a freshly grown stand starts from.
func sprout(c Cell) Cell {
	c.State = Tree
	c.BurnDuration = 0
	if c.Moisture < 0.3 {
		c.Moisture = 0.3
	}
	return c
}

// NaturalRegrowth is the baseline stochastic regrowth of bare ground into
// Tree cover, gated on RuleConfig.EnableRegrowth.
type NaturalRegrowth struct{}

func (NaturalRegrowth) Name() string { return "NaturalRegrowth" }

func (NaturalRegrowth) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return ctx.RuleCfg.EnableRegrowth && (c.State == Empty || c.State == Burnt) &&
		c.Vegetation != Water && c.Vegetation != Urban
}

func (NaturalRegrowth) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	p := clampUnit(ctx.RuleCfg.RegrowthRate * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	return sprout(c), nil
}

// SeasonalGrowth boosts regrowth odds in Spring, when the baseline
// precipitation propensity and temperature most favor germination, and
// suppresses it in Winter.
type SeasonalGrowth struct{}

func (SeasonalGrowth) Name() string { return "SeasonalGrowth" }

func (SeasonalGrowth) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return ctx.RuleCfg.EnableRegrowth && (c.State == Empty || c.State == Burnt) &&
		c.Vegetation != Water && c.Vegetation != Urban &&
		(ctx.Climate.Season == Spring || ctx.Climate.Season == Winter)
}

func (SeasonalGrowth) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	rate := ctx.RuleCfg.RegrowthRate
	if ctx.Climate.Season == Spring {
		rate *= 2
	} else {
		rate *= 0.1
	}
	p := clampUnit(rate * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	return sprout(c), nil
}

// SeedDispersion lets a bare cell adjacent to living Tree stock regrow
// faster than isolated bare ground, with stronger wind raising the odds
// -- the cellular-automaton analogue of a seed rain. Only Moore neighbors
// count as seed sources, and wind direction is not taken into account.
type SeedDispersion struct{}

func (SeedDispersion) Name() string { return "SeedDispersion" }

func (SeedDispersion) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	if !ctx.RuleCfg.EnableRegrowth || (c.State != Empty && c.State != Burnt) {
		return false
	}
	if c.Vegetation == Water || c.Vegetation == Urban {
		return false
	}
	for _, n := range nb.Cells {
		if n.State == Tree {
			return true
		}
	}
	return false
}

func (SeedDispersion) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	treeNeighbors := 0
	for _, n := range nb.Cells {
		if n.State == Tree {
			treeNeighbors++
		}
	}
	windBoost := 1 + 0.05*ctx.Climate.Wind.Speed
	p := clampUnit(ctx.RuleCfg.RegrowthRate * float64(treeNeighbors) * windBoost * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	return sprout(c), nil
}

// VegetationSuccession gives a regrown stand a chance to switch to the
// elevation-appropriate vegetation band, rather than resprouting forever
// as whatever it happened to burn from. RuleEngine runs the Recovery list
// only for Empty and Burnt cells, so this rule applies only in the step in
// which an earlier recovery rule has just sprouted the cell.
type VegetationSuccession struct{}

func (VegetationSuccession) Name() string { return "VegetationSuccession" }

func (VegetationSuccession) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	if c.State != Tree {
		return false
	}
	target := VegetationTypeFromElevation(c.Elevation)
	return target != c.Vegetation && target != Water && target != Urban
}

func (VegetationSuccession) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	const successionRate = 0.001
	p := clampUnit(successionRate * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	c.Vegetation = VegetationTypeFromElevation(c.Elevation)
	return c, nil
}

// MoistureRecovery lets a non-Burning cell's moisture drift back toward
// the climate's ambient level between fire events, via the same
// evaporation/precipitation balance burning cells experience (see
// MoistureDelta). Within RuleEngine it runs for Empty and Burnt cells
// (the only states dispatched to the Recovery list); Tree cells do not
// reach it.
type MoistureRecovery struct{}

func (MoistureRecovery) Name() string { return "MoistureRecovery" }

func (MoistureRecovery) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State != Burning
}

func (MoistureRecovery) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	temperature := ctx.Climate.TemperatureAtElevation(c.Elevation)
	c.Moisture = MoistureDelta(ctx.Physics, c.Moisture, math.Max(temperature, 0), ctx.Climate.Humidity, ctx.Climate.Precipitation, ctx.Dt)
	c.Temperature = temperature
	return c, nil
}
