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

// baseFlameTemperature is the reference flame temperature (deg C) that
// IntensityEvolution relaxes a Burning cell toward, before environmental
// factors and the 800 deg C cap are applied. 300 was chosen as a
// plausible base flame temperature for a surface forest fire; see
// DESIGN.md.
const baseFlameTemperature = 300

// PreHeating applies to Tree cells: it absorbs HeatTransfer from Burning
// Moore neighbors, raising temperature (capped at 100 deg C, below
// ignition) and drying the cell proportionally.
type PreHeating struct {
	Params PhysicsParams
}

func (PreHeating) Name() string { return "PreHeating" }

func (PreHeating) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Tree && nb.BurningCount() > 0
}

func (r PreHeating) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	sources := make([]HeatSource, 0, len(nb.Cells))
	for i, n := range nb.Cells {
		if n.State != Burning {
			continue
		}
		o := nb.Offsets[i]
		dist := math.Hypot(float64(o.X), float64(o.Y))
		elevDiff := c.Elevation - n.Elevation
		sources = append(sources, HeatSource{
			Temperature:   n.Temperature,
			Distance:      dist,
			ElevationDiff: elevDiff,
			Upslope:       elevDiff > 0,
			Downwind:      windDotDisplacement(ctx.Climate.Wind, Coord{X: -o.X, Y: -o.Y}) > 0,
		})
	}
	heat := HeatTransfer(r.Params, sources, ctx.Climate.Wind.Speed)
	c.Temperature = math.Min(100, c.Temperature+heat*ctx.Dt)
	dried := clampUnit(heat * 0.01 * ctx.Dt)
	c.Moisture = clampUnit(c.Moisture * (1 - dried))
	return c, nil
}

// windDotDisplacement is the dot product of the wind's unit direction
// vector with the displacement from source to target, used to decide
// whether a neighbor is downwind of the cell it heats.
func windDotDisplacement(w Wind, displacement Coord) float64 {
	wx, wy := math.Cos(w.Direction), math.Sin(w.Direction)
	return wx*float64(displacement.X) + wy*float64(displacement.Y)
}

// IntensityEvolution relaxes a Burning cell's temperature toward a
// combustion-intensity target.
type IntensityEvolution struct{}

func (IntensityEvolution) Name() string { return "IntensityEvolution" }

func (IntensityEvolution) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning
}

func (IntensityEvolution) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	vegFactor := vegetationIgnitionFactor[c.Vegetation]
	windFactor := math.Exp(ctx.Physics.WindFactor * ctx.Climate.Wind.Speed)
	oxygen := ctx.Climate.OxygenFactorAtElevation(c.Elevation)
	product := vegFactor * windFactor * oxygen
	target := math.Min(baseFlameTemperature*product, 800)
	rate := 0.1 * ctx.Dt
	c.Temperature += (target - c.Temperature) * rate
	c.BurnDuration += ctx.Dt
	return c, nil
}

// FuelConsumption raises a Burning cell's moisture toward 0.95 as its
// fuel burns (the water released by combustion).
type FuelConsumption struct{}

func (FuelConsumption) Name() string { return "FuelConsumption" }

func (FuelConsumption) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning
}

func (FuelConsumption) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	const rate = 0.05
	c.Moisture = clampUnit(c.Moisture + (0.95-c.Moisture)*rate*ctx.Dt)
	return c, nil
}

// HeatGeneration models reinforcing heat pooling between clustered
// Burning cells: a Burning cell with more Burning neighbors burns hotter.
type HeatGeneration struct {
	Params PhysicsParams
}

func (HeatGeneration) Name() string { return "HeatGeneration" }

func (HeatGeneration) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning && nb.BurningCount() > 0
}

func (r HeatGeneration) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	sources := make([]HeatSource, 0, len(nb.Cells))
	for i, n := range nb.Cells {
		if n.State != Burning {
			continue
		}
		o := nb.Offsets[i]
		sources = append(sources, HeatSource{
			Temperature: n.Temperature,
			Distance:    math.Hypot(float64(o.X), float64(o.Y)),
		})
	}
	heat := HeatTransfer(r.Params, sources, ctx.Climate.Wind.Speed)
	c.Temperature = math.Min(800, c.Temperature+heat*0.1*ctx.Dt)
	return c, nil
}
