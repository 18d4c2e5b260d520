// seehuhn.de/go/sensorgrid - sensor grids for daylighting analysis
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sensorgrid

import (
	"log"
	"log/slog"
)

// Stats summarises the filtering of one floor's lattice.
type Stats struct {
	Floor      string
	Candidates int // lattice points over the bounding box
	Accepted   int // lattice points inside the floor polygon
}

// Removed returns the number of candidates outside the polygon.
func (s Stats) Removed() int {
	return s.Candidates - s.Accepted
}

// RemovedPercent returns the percentage of candidates outside the polygon.
// An empty lattice gives 0.
func (s Stats) RemovedPercent() float64 {
	if s.Candidates == 0 {
		return 0
	}
	return 100 * float64(s.Removed()) / float64(s.Candidates)
}

// A Reporter receives diagnostic statistics from a Generator.
type Reporter interface {
	Report(Stats)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Stats)

// Report calls f(s).
func (f ReporterFunc) Report(s Stats) {
	f(s)
}

// LogReporter returns a Reporter which logs statistics to l at info level.
// If l is nil, Logf is used instead.
func LogReporter(l *slog.Logger) Reporter {
	if l == nil {
		return ReporterFunc(func(s Stats) {
			Logf("floor %q: %d of %d points kept, %.1f%% removed",
				s.Floor, s.Accepted, s.Candidates, s.RemovedPercent())
		})
	}
	return ReporterFunc(func(s Stats) {
		l.Info("sensor grid",
			"floor", s.Floor,
			"candidates", s.Candidates,
			"accepted", s.Accepted,
			"removed_percent", s.RemovedPercent(),
		)
	})
}

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// and may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
