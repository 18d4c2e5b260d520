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

import "fmt"

// Line is a line through two points, classified by its orientation in the
// floor plane.  The classification is fixed when the line is created.
type Line struct {
	p1, p2 Point
	kind   LineKind
}

// LineKind describes the shape of a line in the floor plane.
// It is one of Sloped, Vertical, Horizontal or Degenerate.
type LineKind interface {
	isLineKind()
}

// Sloped is a line which is neither parallel to the x axis nor to the
// y axis.  Points on the line satisfy y = Slope*x + Intercept.
type Sloped struct {
	Slope     float64
	Intercept float64
}

func (Sloped) isLineKind() {}

// Vertical is a line of constant x.
type Vertical struct {
	X float64
}

func (Vertical) isLineKind() {}

// Horizontal is a line of constant y.
type Horizontal struct {
	Y float64
}

func (Horizontal) isLineKind() {}

// Degenerate is the "line" through two points with identical x and y.
type Degenerate struct{}

func (Degenerate) isLineKind() {}

// NewLine classifies the line through p1 and p2.
// Only the x and y coordinates take part in the classification.
func NewLine(p1, p2 Point) Line {
	var kind LineKind
	switch {
	case p1.X != p2.X && p1.Y != p2.Y:
		m := (p2.Y - p1.Y) / (p2.X - p1.X)
		kind = Sloped{Slope: m, Intercept: p1.Y - m*p1.X}
	case p1.X != p2.X:
		kind = Horizontal{Y: p1.Y}
	case p1.Y != p2.Y:
		kind = Vertical{X: p1.X}
	default:
		kind = Degenerate{}
	}
	return Line{p1: p1, p2: p2, kind: kind}
}

// Kind returns the classification of the line.
func (l Line) Kind() LineKind {
	return l.kind
}

// Endpoints returns the two points the line was constructed from.
func (l Line) Endpoints() (Point, Point) {
	return l.p1, l.p2
}

// XPair returns the x coordinates of the two endpoints.
func (l Line) XPair() [2]float64 {
	return [2]float64{l.p1.X, l.p2.X}
}

// YPair returns the y coordinates of the two endpoints.
func (l Line) YPair() [2]float64 {
	return [2]float64{l.p1.Y, l.p2.Y}
}

// IsFlat reports whether both endpoints have the same z coordinate.
func (l Line) IsFlat() bool {
	return l.p1.Z == l.p2.Z
}

// spansY reports whether y lies strictly between the y coordinates of the
// two endpoints.
func (l Line) spansY(y float64) bool {
	return y > min(l.p1.Y, l.p2.Y) && y < max(l.p1.Y, l.p2.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.p1, l.p2)
}
