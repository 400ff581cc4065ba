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
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"
)

// denseEmberBonus is the extra ember-catchment likelihood of dense forest
// over other vegetation in EmberIgnition. 1.3 was chosen to sit between
// the formula's other vegetation multipliers (Grassland 0.8 ..
// DenseForest 1.2); see DESIGN.md.
const denseEmberBonus = 1.3

// SparkIgnition models a random lightning/spark strike on a Tree cell.
// It never fires in Winter; its probability is doubled in dry air
// (humidity below 0.3) and cut to a tenth while precipitation falls.
type SparkIgnition struct{}

func (SparkIgnition) Name() string { return "SparkIgnition" }

func (SparkIgnition) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return ctx.RuleCfg.EnableSparks && c.State == Tree && c.Vegetation != Water && ctx.Climate.Season != Winter
}

func (SparkIgnition) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	p := ctx.RuleCfg.SparkProbability
	if ctx.Climate.Humidity < 0.3 {
		p *= 2
	}
	if ctx.Climate.Precipitation > 0 {
		p *= 0.1
	}
	p = clampUnit(p * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	c.State = Burning
	c.BurnDuration = 0
	c.Temperature = math.Max(c.Temperature, ctx.Physics.TemperatureCritical)
	return c, []FireEvent{{Type: Ignition, Timestamp: ctx.ElapsedTime, Position: c.Position}}
}

// NeighborIgnition applies the full ignition-probability formula to a
// Tree cell that has at least one Burning Moore neighbor.
type NeighborIgnition struct {
	Params PhysicsParams
}

func (NeighborIgnition) Name() string { return "NeighborIgnition" }

func (r NeighborIgnition) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Tree && nb.BurningCount() > 0
}

func (r NeighborIgnition) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	slope := ctx.Terrain.Slope(c.Position.X, c.Position.Y)
	oxygen := ctx.Climate.OxygenFactorAtElevation(c.Elevation)
	p := IgnitionProbability(r.Params, c, nb.BurningCount(), slope, ctx.Climate.Wind.Speed, oxygen)
	p = clampUnit(p * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	c.State = Burning
	c.BurnDuration = 0
	return c, []FireEvent{{Type: Ignition, Timestamp: ctx.ElapsedTime, Position: c.Position}}
}

// EmberIgnition carries fire downwind of the burning front, beyond the
// Moore neighborhood, once wind is strong enough to loft embers.
type EmberIgnition struct{}

func (EmberIgnition) Name() string { return "EmberIgnition" }

func (EmberIgnition) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return ctx.RuleCfg.EnableEmbers && c.State == Tree && c.Vegetation != Water && ctx.Climate.Wind.Speed > 5
}

func (EmberIgnition) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	maxDist := ctx.RuleCfg.EmberDistance
	if maxDist <= 0 {
		return c, nil
	}
	target := geom.Point{X: float64(c.Position.X), Y: float64(c.Position.Y)}
	count := 0
	g := ctx.Grid
	r := int(math.Ceil(maxDist))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			src, ok := g.Cell(c.Position.X+dx, c.Position.Y+dy)
			if !ok || src.State != Burning {
				continue
			}
			sp := geom.Point{X: float64(src.Position.X), Y: float64(src.Position.Y)}
			if op.Distance(target, sp) > maxDist {
				continue
			}
			bearing := math.Atan2(target.Y-sp.Y, target.X-sp.X)
			delta := angularDiff(bearing, ctx.Climate.Wind.Direction)
			if delta <= math.Pi/4 {
				count++
			}
		}
	}
	if count == 0 {
		return c, nil
	}
	bonus := 1.0
	if c.Vegetation == DenseForest {
		bonus = denseEmberBonus
	}
	p := 0.001 * float64(count) * (ctx.Climate.Wind.Speed / 10) * (1 - c.Moisture) * bonus
	p = clampUnit(p * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	c.State = Burning
	c.BurnDuration = 0
	return c, []FireEvent{{Type: Ignition, Timestamp: ctx.ElapsedTime, Position: c.Position}}
}

// angularDiff is the absolute difference between two angles (radians),
// wrapped into [0, pi].
func angularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
