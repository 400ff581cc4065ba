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

// PhysicsParams holds every tunable constant used by the fire-physics
// primitives in this file. A zero-value PhysicsParams is not
// usable; callers should start from DefaultPhysicsParams.
type PhysicsParams struct {
	BaseIgnitionProbability float64
	MoistureCoefficient     float64
	TemperatureCritical     float64
	TemperatureScale        float64
	SlopeFactor             float64
	WindFactor              float64
	EvaporationRate         float64
	PrecipitationRate       float64
	HeatTransferRadius      float64
	ConvectionEnhancement   float64
	OxygenReductionRate     float64
}

// DefaultPhysicsParams returns a calibrated default parameter set.
func DefaultPhysicsParams() PhysicsParams {
	return PhysicsParams{
		BaseIgnitionProbability: 0.01,
		MoistureCoefficient:     0.05,
		TemperatureCritical:     30.0,
		TemperatureScale:        5.0,
		SlopeFactor:             3.533,
		WindFactor:              0.1783,
		EvaporationRate:         0.001,
		PrecipitationRate:       0.01,
		HeatTransferRadius:      2.0,
		ConvectionEnhancement:   0.5,
		OxygenReductionRate:     0.00008,
	}
}

// logistic is the standard sigmoid, used to squash probability-like
// quantities into [0,1] throughout this file.
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// IgnitionProbability is the probability that a Tree cell with
// burningNeighbors burning Moore neighbors ignites this step. slope is
// in radians, windSpeed in m/s, and oxygenFactor is
// Climate.OxygenFactorAtElevation(cell.Elevation).
func IgnitionProbability(p PhysicsParams, cell Cell, burningNeighbors int, slope, windSpeed, oxygenFactor float64) float64 {
	if cell.Vegetation == Water {
		return 0
	}
	prob := p.BaseIgnitionProbability * (1 + 0.5*float64(burningNeighbors))
	prob *= math.Exp(-p.MoistureCoefficient * cell.Moisture)
	prob *= logistic((cell.Temperature - p.TemperatureCritical) / p.TemperatureScale)
	prob *= vegetationIgnitionFactor[cell.Vegetation]
	if slope > 0 && slope < math.Pi/2 {
		prob *= math.Exp(p.SlopeFactor * math.Pow(math.Tan(slope), 1.2))
	}
	prob *= math.Exp(p.WindFactor * windSpeed)
	prob *= oxygenFactor
	return clampUnit(prob)
}

// HeatSource describes a burning neighbor contributing heat to a target
// cell via HeatTransfer.
type HeatSource struct {
	Temperature   float64 // source cell temperature, deg C
	Distance      float64 // center-to-center distance to target
	ElevationDiff float64 // target elevation minus source elevation
	Upslope       bool    // target is uphill of source
	Downwind      bool    // wind . displacement > 0, i.e. wind blows toward target
}

// HeatTransfer sums the radiative/convective heat contribution of every
// burning neighbor within heatTransferRadius.
func HeatTransfer(p PhysicsParams, sources []HeatSource, windSpeed float64) float64 {
	var total float64
	for _, s := range sources {
		if s.Distance <= 0 || s.Distance > p.HeatTransferRadius {
			continue
		}
		term := s.Temperature / (s.Distance * s.Distance)
		if s.Upslope {
			term *= 1 + p.ConvectionEnhancement*math.Abs(s.ElevationDiff)/s.Distance
		}
		if s.Downwind {
			term *= 1 + 0.2*windSpeed
		}
		total += term
	}
	return total
}

// MoistureDelta integrates dM/dt = -evaporationRate*T*(1-humidity) +
// precipitationRate*precipitation over dt, and clamps the
// result to [0,1].
func MoistureDelta(p PhysicsParams, moisture, temperature, humidity, precipitation, dt float64) float64 {
	rate := -p.EvaporationRate*temperature*(1-humidity) + p.PrecipitationRate*precipitation
	return clampUnit(moisture + rate*dt)
}

// SpreadRate is the vegetation-and-weather-modulated rate of fire spread
// used by the adaptive time-step's CFL bound.
func SpreadRate(cell Cell, windSpeed, slope float64) float64 {
	base, ok := vegetationSpreadRate[cell.Vegetation]
	if !ok {
		base = 0
	}
	moistureMod := 1 - cell.Moisture
	temperatureMod := 1 + math.Max(0, (cell.Temperature-20)/50)
	windMod := 1 + 0.1*windSpeed
	slopeMod := 1.0
	if slope > 0 && slope < math.Pi/2 {
		slopeMod = 1 + math.Tan(slope)
	}
	return base * moistureMod * temperatureMod * windMod * slopeMod
}

// FuelDepleted reports whether a cell that has been Burning for
// burnDuration seconds at temperature has exhausted its fuel load.
func FuelDepleted(v Vegetation, burnDuration, temperature float64) bool {
	consumption := burnDuration * 1.5 * (1 + math.Max(0, (temperature-20)/100))
	return consumption >= fuelContent(v)
}

// ExtinctionProbability is the per-step probability that a Burning cell
// extinguishes.
func ExtinctionProbability(moisture, temperature, precipitation, humidity float64) float64 {
	p := moisture * 0.5
	if temperature < 10 {
		p += 0.3 * (10 - temperature) / 10
	}
	p += precipitation * 0.8
	p += humidity * 0.2
	return clampUnit(p)
}
