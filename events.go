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

// FireEventType tags the kind of FireEvent.
type FireEventType int

const (
	Ignition FireEventType = iota
	Extinction
	Burnout
)

func (t FireEventType) String() string {
	switch t {
	case Ignition:
		return "Ignition"
	case Extinction:
		return "Extinction"
	case Burnout:
		return "Burnout"
	default:
		return "FireEventType(?)"
	}
}

// FireEvent records a single fire-relevant transition at a position and
// the simulation time it was stamped with.
type FireEvent struct {
	Type      FireEventType
	Timestamp float64
	Position  Coord
}

// maxEventsPerStep bounds the events log a single step may emit, so a
// pathological rule configuration cannot grow a state's event log without
// bound.
const maxEventsPerStep = 8192

// boundEvents truncates events to maxEventsPerStep, preserving the order
// events were passed in.
func boundEvents(events []FireEvent) []FireEvent {
	if len(events) <= maxEventsPerStep {
		return events
	}
	return events[:maxEventsPerStep]
}
