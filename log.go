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

import "github.com/sirupsen/logrus"

// entryOrNil wraps logger with the engine's standard fields, returning nil
// when logger is nil so callers can call methods on the nil *logrus.Entry
// receiver without a guard at every call site.
func entryOrNil(logger *logrus.Logger, fields logrus.Fields) *logrus.Entry {
	if logger == nil {
		return nil
	}
	return logger.WithFields(fields)
}

// logDebug is a nil-safe Debug call; a nil entry means logging is disabled.
func logDebug(e *logrus.Entry, msg string) {
	if e == nil {
		return
	}
	e.Debug(msg)
}

func logDebugf(e *logrus.Entry, fields logrus.Fields, msg string) {
	if e == nil {
		return
	}
	e.WithFields(fields).Debug(msg)
}
