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

// burnout transitions a Burning cell to Burnt and stamps a Burnout event.
func burnout(c Cell, ctx StepContext) (Cell, []FireEvent) {
	c.State = Burnt
	return c, []FireEvent{{Type: Burnout, Timestamp: ctx.ElapsedTime, Position: c.Position}}
}

// extinguish transitions a Burning cell to Burnt via an Extinction event
// (as opposed to burnout, which is reached through fuel exhaustion).
func extinguish(c Cell, ctx StepContext) (Cell, []FireEvent) {
	c.State = Burnt
	return c, []FireEvent{{Type: Extinction, Timestamp: ctx.ElapsedTime, Position: c.Position}}
}

// FuelDepletion burns a cell out once its accumulated fuel consumption
// exceeds the vegetation's fuel content, per FuelDepleted.
type FuelDepletion struct{}

func (FuelDepletion) Name() string { return "FuelDepletion" }

func (FuelDepletion) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning && FuelDepleted(c.Vegetation, c.BurnDuration, c.Temperature)
}

func (FuelDepletion) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	return burnout(c, ctx)
}

// TemperatureDecay extinguishes a Burning cell whose temperature has
// fallen back below the critical ignition threshold -- the fire has
// cooled past the point it can sustain itself.
type TemperatureDecay struct{}

func (TemperatureDecay) Name() string { return "TemperatureDecay" }

func (TemperatureDecay) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning && c.Temperature < ctx.Physics.TemperatureCritical && c.BurnDuration > 0
}

func (TemperatureDecay) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	return extinguish(c, ctx)
}

// MoistureSuppression extinguishes a Burning cell that has been soaked
// past the point combustion can continue.
type MoistureSuppression struct{}

func (MoistureSuppression) Name() string { return "MoistureSuppression" }

func (MoistureSuppression) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning && c.Moisture >= 0.9
}

func (MoistureSuppression) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	return extinguish(c, ctx)
}

// NeighborIsolation extinguishes a Burning cell with no flammable fuel
// left in its Moore neighborhood to carry the fire onward and no
// burning neighbors reinforcing it -- an isolated ember burns itself out.
type NeighborIsolation struct{}

func (NeighborIsolation) Name() string { return "NeighborIsolation" }

func (NeighborIsolation) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	if c.State != Burning || c.BurnDuration < 1 {
		return false
	}
	for _, n := range nb.Cells {
		if n.State == Burning || n.State == Tree {
			return false
		}
	}
	return true
}

func (NeighborIsolation) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	return burnout(c, ctx)
}

// CombinedExtinction rolls the ExtinctionProbability formula, folding
// moisture, cool temperatures, precipitation and humidity into a single
// stochastic extinguish check every step.
type CombinedExtinction struct{}

func (CombinedExtinction) Name() string { return "CombinedExtinction" }

func (CombinedExtinction) Applicable(c Cell, nb Neighborhood, ctx StepContext) bool {
	return c.State == Burning
}

func (CombinedExtinction) Apply(c Cell, nb Neighborhood, ctx StepContext) (Cell, []FireEvent) {
	p := ExtinctionProbability(c.Moisture, c.Temperature, ctx.Climate.Precipitation, ctx.Climate.Humidity)
	p = clampUnit(p * ctx.Dt)
	if ctx.Rand.Float64() >= p {
		return c, nil
	}
	return extinguish(c, ctx)
}
