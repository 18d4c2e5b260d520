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

var concaveCases = []TestCase{
	{
		// a 10x10 square with the corner square (6,6)-(10,10) removed
		Name: "l_shape",
		Outline: []vec.Vec2{
			pt(0, 0), pt(10, 0), pt(10, 6), pt(6, 6), pt(6, 10), pt(0, 10),
		},
		GridSize: 1,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(2, 2), pt(8, 3), pt(3, 8)},
		Outside:  []vec.Vec2{pt(8, 8), pt(7, 9.5), pt(11, 3)},
	},
	{
		Name: "u_shape",
		Outline: []vec.Vec2{
			pt(0, 0), pt(9, 0), pt(9, 9), pt(6, 9),
			pt(6, 3), pt(3, 3), pt(3, 9), pt(0, 9),
		},
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(1.5, 5), pt(7.5, 5), pt(4.5, 1.5)},
		Outside:  []vec.Vec2{pt(4.5, 5), pt(4.5, 8), pt(10, 5)},
	},
	{
		// a rectangle with a V-shaped notch cut into the bottom edge
		Name:     "chevron",
		Outline:  []vec.Vec2{pt(0, 0), pt(5, 3), pt(10, 0), pt(10, 8), pt(0, 8)},
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(5, 5), pt(1, 1)},
		Outside:  []vec.Vec2{pt(5, 1), pt(1, 0.3), pt(9, 0.5)},
	},
}
