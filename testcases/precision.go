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

var precisionCases = []TestCase{
	{
		// smaller than one grid cell in both directions
		Name:     "tiny_room",
		Outline:  rectangle(0, 0, 0.3, 0.2),
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(0.1, 0.1)},
		Outside:  []vec.Vec2{pt(0.4, 0.1), pt(0.1, 0.3)},
	},
	{
		Name:     "quarter_offset",
		Outline:  rectangle(0.25, 0.25, 3.75, 2.75),
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(1, 1), pt(3.7, 2.7)},
		Outside:  []vec.Vec2{pt(0.1, 1), pt(1, 2.8)},
	},
	{
		// 0.1 is not exactly representable; repeated addition drifts
		Name:     "decimal_spacing",
		Outline:  rectangle(0, 0, 1, 1),
		GridSize: 0.1,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(0.55, 0.45)},
		Outside:  []vec.Vec2{pt(1.05, 0.5), pt(-0.05, 0.5)},
	},
	{
		Name:     "far_from_origin",
		Outline:  rectangle(1e5, 1e5, 1e5+20, 1e5+20),
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(1e5+10, 1e5+10.25)},
		Outside:  []vec.Vec2{pt(1e5-1, 1e5+10.25)},
	},
}
