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
	"fmt"

	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in model space.
type Point struct {
	X, Y, Z float64
}

// XY returns the projection of p onto the floor plane.
func (p Point) XY() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Floor is a horizontal floor polygon.
//
// The vertices form a closed loop; the edge from the last vertex back to the
// first is implicit.  A final vertex equal to the first one is ignored, any
// other repeated vertex gives ErrDegenerateLine.  All vertices share the same
// Z coordinate.
type Floor struct {
	Name     string // used in diagnostics only
	Vertices []Point
}

// BoundingBox is the axis-aligned bounding box of a set of points.
type BoundingBox struct {
	Min, Max Point
}

// Footprint returns the projection of the box onto the floor plane.
func (b BoundingBox) Footprint() rect.Rect {
	return rect.Rect{
		LLx: b.Min.X,
		LLy: b.Min.Y,
		URx: b.Max.X,
		URy: b.Max.Y,
	}
}

// IsFlat reports whether the box has zero extent in z.
func (b BoundingBox) IsFlat() bool {
	return b.Min.Z == b.Max.Z
}

// BoundingBoxOf returns the componentwise minimum and maximum over pts.
func BoundingBoxOf(pts []Point) (BoundingBox, error) {
	if len(pts) == 0 {
		return BoundingBox{}, ErrEmptyInput
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	return BoundingBox{
		Min: Point{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
		Max: Point{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
	}, nil
}
