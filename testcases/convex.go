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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var convexCases = []TestCase{
	{
		Name:     "square",
		Outline:  rectangle(0, 0, 10, 10),
		GridSize: 4,
		Height:   1,
		Inside:   []vec.Vec2{pt(5, 5), pt(1, 3), pt(9.5, 7)},
		Outside:  []vec.Vec2{pt(-1, 5), pt(11, 5), pt(5, -1), pt(5, 11)},
	},
	{
		Name:     "triangle",
		Outline:  []vec.Vec2{pt(0, 0), pt(10, 0), pt(5, 10)},
		GridSize: 5,
		Height:   0,
		Inside:   []vec.Vec2{pt(5, 5), pt(3, 2)},
		Outside:  []vec.Vec2{pt(9, 9), pt(1, 8), pt(-2, 3)},
	},
	{
		Name:     "diamond",
		Outline:  []vec.Vec2{pt(5, 0), pt(10, 5), pt(5, 10), pt(0, 5)},
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(5, 5.5), pt(3, 4.5)},
		Outside:  []vec.Vec2{pt(1, 1), pt(9, 9), pt(9, 1.5)},
	},
	{
		Name:     "hexagon",
		Outline:  regularPolygon(0, 0, 4, 6),
		GridSize: 0.5,
		Height:   0.75,
		Inside:   []vec.Vec2{pt(0, 0.5), pt(3, 0.5)},
		Outside:  []vec.Vec2{pt(3.9, 3), pt(0, 3.6)},
	},
	{
		Name:      "elevated",
		Outline:   rectangle(100, 200, 108, 206),
		Elevation: 3.2,
		GridSize:  0.5,
		Height:    0.75,
		Inside:    []vec.Vec2{pt(104, 203.1)},
		Outside:   []vec.Vec2{pt(99, 203.1), pt(104, 207)},
	},
}

// rectangle returns the corners of an axis-aligned rectangle in
// counter-clockwise order.
func rectangle(x0, y0, x1, y1 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1)}
}

// regularPolygon returns the n corners of a regular polygon with
// circumradius r, starting on the positive x axis.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}
