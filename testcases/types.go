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

// Package testcases contains named floor plans used by the tests and by the
// export and genpdf commands.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single floor plan.
type TestCase struct {
	Name      string     // lowercase a-z, 0-9 and _ only
	Outline   []vec.Vec2 // polygon vertices, without repeating the first
	Elevation float64    // z coordinate of the floor
	GridSize  float64    // lattice spacing
	Height    float64    // sensor height above the floor

	// Inside and Outside list points in the floor plane whose
	// classification is unambiguous.
	Inside  []vec.Vec2
	Outside []vec.Vec2
}

// Path returns the outline of the floor as a closed path.
func (tc TestCase) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, v := range tc.Outline {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{v}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"convex":    convexCases,
	"concave":   concaveCases,
	"precision": precisionCases,
	"large":     largeCases,
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
