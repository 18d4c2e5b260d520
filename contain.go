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

	"golang.org/x/sync/errgroup"
)

// Tester decides whether points lie inside the footprint of a floor polygon,
// using the even-odd rule with a ray cast in the positive x direction.
//
// Points whose y coordinate equals the y coordinate of a polygon vertex lie
// on the boundary between two edges' y ranges.  The result for such points,
// and for points exactly on an edge, is unspecified.
//
// A Tester is immutable after construction and safe for concurrent use.
type Tester struct {
	edges []Line
	maxX  float64
}

// NewTester builds the edge list of the closed polygon given by vertices.
// If the last vertex repeats the first one, it is dropped.
func NewTester(vertices []Point) (*Tester, error) {
	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}
	switch len(vertices) {
	case 0:
		return nil, ErrEmptyInput
	case 1, 2:
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}

	t := &Tester{
		edges: make([]Line, 0, len(vertices)),
		maxX:  vertices[0].X,
	}
	prev := vertices[len(vertices)-1]
	for i, p := range vertices {
		e := NewLine(prev, p)
		if !e.IsFlat() {
			return nil, fmt.Errorf("edge %d %v: %w", i, e, ErrNonPlanarFloor)
		}
		if _, ok := e.Kind().(Degenerate); ok {
			return nil, fmt.Errorf("edge %d %v: %w", i, e, ErrDegenerateLine)
		}
		t.edges = append(t.edges, e)
		t.maxX = max(t.maxX, p.X)
		prev = p
	}
	return t, nil
}

// Edges returns the polygon edges.  The slice must not be modified.
func (t *Tester) Edges() []Line {
	return t.edges
}

// Contains reports whether the horizontal position of p lies inside the
// polygon.
func (t *Tester) Contains(p Point) (bool, error) {
	projection := NewLine(p, Point{X: t.maxX, Y: p.Y, Z: p.Z})
	ray, ok := projection.Kind().(Horizontal)
	if !ok || !projection.IsFlat() {
		return false, fmt.Errorf("point %v: %w", p, ErrInvalidProjectionLine)
	}

	crossings := 0
	for _, e := range t.edges {
		if crosses(p.X, ray.Y, e) {
			crossings++
		}
	}
	return crossings%2 == 1, nil
}

// crosses reports whether the ray starting at (x, y) in the positive x
// direction crosses the edge e.  Edges parallel to the ray never count, and
// crossings exactly at the y coordinate of an edge endpoint are excluded.
func crosses(x, y float64, e Line) bool {
	var xInt float64
	switch k := e.Kind().(type) {
	case Sloped:
		xInt = (y - k.Intercept) / k.Slope
	case Vertical:
		xInt = k.X
	default:
		return false
	}
	return xInt > x && e.spansY(y)
}

// Filter returns the candidates which lie inside the polygon, in their
// original order.
func (t *Tester) Filter(candidates []Point) ([]Point, error) {
	var inside []Point
	for _, p := range candidates {
		ok, err := t.Contains(p)
		if err != nil {
			return nil, err
		}
		if ok {
			inside = append(inside, p)
		}
	}
	return inside, nil
}

// FilterParallel is like Filter, but splits the candidates into contiguous
// chunks which are tested by up to workers goroutines.  The result is
// identical to the result of Filter.
func (t *Tester) FilterParallel(candidates []Point, workers int) ([]Point, error) {
	if workers <= 1 || len(candidates) < 2*minChunkSize {
		return t.Filter(candidates)
	}

	chunk := max((len(candidates)+workers-1)/workers, minChunkSize)
	keep := make([]bool, len(candidates))

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				ok, err := t.Contains(candidates[i])
				if err != nil {
					return err
				}
				keep[i] = ok
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var inside []Point
	for i, ok := range keep {
		if ok {
			inside = append(inside, candidates[i])
		}
	}
	return inside, nil
}

// minChunkSize is the smallest number of candidates handed to one worker.
const minChunkSize = 256
