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

// Sequence is a cancellable, pull-driven stream of SimulationState. The
// module targets Go 1.21, a release before the stdlib iter package
// existed, so Run/RunUntil/RunAdaptive return this hand-rolled iterator
// instead of an iter.Seq -- callers pull one state per Next call.
type Sequence struct {
	next func() (SimulationState, bool, error)
	done bool
	err  error
}

// Next advances the sequence and returns its next state, or ok=false when
// the sequence is exhausted or has been closed. Once Next returns
// ok=false, Err reports why.
func (s *Sequence) Next() (SimulationState, bool) {
	if s.done {
		return SimulationState{}, false
	}
	state, ok, err := s.next()
	if err != nil {
		s.err = err
		s.done = true
		return SimulationState{}, false
	}
	if !ok {
		s.done = true
	}
	return state, ok
}

// Err returns the error that ended the sequence, if any. A step-level
// rule failure is fatal to the sequence, but does not emit the partial
// state that triggered it.
func (s *Sequence) Err() error {
	return s.err
}

// Close cancels the sequence at the next step boundary; no partial state
// is emitted after Close.
func (s *Sequence) Close() {
	s.done = true
}

// Run produces a lazy sequence of at most maxSteps states starting from
// initial.
func (e *Engine) Run(initial SimulationState, maxSteps int) *Sequence {
	current := initial
	step := 0
	emittedInitial := false
	return &Sequence{
		next: func() (SimulationState, bool, error) {
			if !emittedInitial {
				emittedInitial = true
				return current, true, nil
			}
			if step >= maxSteps {
				return SimulationState{}, false, nil
			}
			next, err := e.Step(current)
			if err != nil {
				return SimulationState{}, false, ErrStepFailed
			}
			current = next
			step++
			return current, true, nil
		},
	}
}

// RunUntil produces a lazy sequence that stops once predicate(state)
// reports true for the most recently produced state.
func (e *Engine) RunUntil(initial SimulationState, predicate func(SimulationState) bool) *Sequence {
	current := initial
	emittedInitial := false
	stopped := false
	return &Sequence{
		next: func() (SimulationState, bool, error) {
			if stopped {
				return SimulationState{}, false, nil
			}
			if !emittedInitial {
				emittedInitial = true
				if predicate(current) {
					stopped = true
				}
				return current, true, nil
			}
			next, err := e.Step(current)
			if err != nil {
				return SimulationState{}, false, ErrStepFailed
			}
			current = next
			if predicate(current) {
				stopped = true
			}
			return current, true, nil
		},
	}
}

// RunAdaptive produces a lazy sequence that advances until ElapsedTime
// reaches maxTime exactly, shortening the final step so it lands there
// precisely.
func (e *Engine) RunAdaptive(initial SimulationState, maxTime float64) *Sequence {
	current := initial
	emittedInitial := false
	stopped := false
	return &Sequence{
		next: func() (SimulationState, bool, error) {
			if stopped {
				return SimulationState{}, false, nil
			}
			if !emittedInitial {
				emittedInitial = true
				return current, true, nil
			}
			remaining := maxTime - current.ElapsedTime
			if remaining <= 0 {
				return SimulationState{}, false, nil
			}
			clamped := *e
			if remaining < clamped.Config.MaxDt {
				clamped.Config.MaxDt = remaining
				if clamped.Config.MinDt > remaining {
					clamped.Config.MinDt = remaining
				}
			}
			next, err := clamped.Step(current)
			if err != nil {
				return SimulationState{}, false, ErrStepFailed
			}
			current = next
			if current.ElapsedTime >= maxTime {
				stopped = true
			}
			return current, true, nil
		},
	}
}
