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

import "errors"

// Sentinel errors for the configuration-invalid error kind.
var (
	ErrInvalidDimensions = errors.New("firesim: grid dimensions must be positive")
	ErrInvalidProbability = errors.New("firesim: probability-like value outside [0,1]")
	ErrInvalidTimestep    = errors.New("firesim: minDt must be <= maxDt and both must be positive")
	ErrInvalidWind        = errors.New("firesim: wind speed must be non-negative")
)

// ErrStepFailed is reported by a Sequence's Err when an Engine.Step call
// inside Run, RunUntil or RunAdaptive returns an error. The state that
// triggered the fault is not emitted and the sequence terminates.
var ErrStepFailed = errors.New("firesim: step failed")

// ErrInsufficientData names the insufficient-data error kind. The analysis
// estimators do not return it; they report that condition through their
// result values (an Insufficient flag or a false ok/sufficient result).
var ErrInsufficientData = errors.New("firesim: insufficient data for analysis")
