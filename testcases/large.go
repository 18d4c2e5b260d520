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

package testcases

import "seehuhn.de/go/geom/vec"

// largeCases have enough lattice points to be split between several
// workers.
var largeCases = []TestCase{
	{
		Name:     "large_hall",
		Outline:  rectangle(0, 0, 60, 40),
		GridSize: 0.25,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(30, 20.1)},
		Outside:  []vec.Vec2{pt(61, 20.1)},
	},
	{
		Name:     "large_round",
		Outline:  regularPolygon(0, 0, 50, 64),
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(0, 0.3), pt(30, 10.1)},
		Outside:  []vec.Vec2{pt(49.9, 49.9), pt(-60, 0.2)},
	},
}
