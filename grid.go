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
	"math"
)

// GridSpec describes the lattice of sensor points placed over a floor.
type GridSpec struct {
	// GridSize is the spacing between neighbouring lattice points.
	// Must be positive.
	GridSize float64

	// Height is the elevation of the sensor points above the floor.
	Height float64
}

// Default values for GridSpec.
const (
	DefaultGridSize = 0.5
	DefaultHeight   = 0.75

	// DefaultMaxLatticePoints limits the number of candidate points
	// generated for a single floor.
	DefaultMaxLatticePoints = 10_000_000
)

// DefaultGridSpec returns the grid spacing and height used for illuminance
// analysis unless configured otherwise.
func DefaultGridSpec() GridSpec {
	return GridSpec{GridSize: DefaultGridSize, Height: DefaultHeight}
}

// Validate checks that the grid size is a finite positive number and that
// the height is finite.
func (s GridSpec) Validate() error {
	if !(s.GridSize > 0) || math.IsInf(s.GridSize, 0) {
		return fmt.Errorf("%w: grid size %g", ErrInvalidGridSpec, s.GridSize)
	}
	if math.IsNaN(s.Height) || math.IsInf(s.Height, 0) {
		return fmt.Errorf("%w: height %g", ErrInvalidGridSpec, s.Height)
	}
	return nil
}

// Lattice returns the candidate points over the bounding box, in row-major
// order: y increases in the outer loop and x in the inner loop.
//
// The coordinates are min + i*GridSize for i = 0, 1, ... while the
// coordinate is strictly less than the maximum of the box, so the lattice
// never contains points on the far edges of the box.  All points are placed
// at height Height above the floor.
func Lattice(box BoundingBox, spec GridSpec) ([]Point, error) {
	return lattice(box, spec, DefaultMaxLatticePoints)
}

func lattice(box BoundingBox, spec GridSpec, limit int) ([]Point, error) {
	if !box.IsFlat() {
		return nil, fmt.Errorf("z ranges from %g to %g: %w",
			box.Min.Z, box.Max.Z, ErrNonPlanarFloor)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	nx := steps(box.Min.X, box.Max.X, spec.GridSize)
	ny := steps(box.Min.Y, box.Max.Y, spec.GridSize)
	if nx == 0 || ny == 0 {
		return []Point{}, nil
	}
	if ny > limit/nx {
		return nil, fmt.Errorf("%w: %d x %d points (limit %d)",
			ErrGridTooDense, nx, ny, limit)
	}

	z := box.Min.Z + spec.Height
	grid := make([]Point, 0, nx*ny)
	for j := range ny {
		y := box.Min.Y + float64(j)*spec.GridSize
		for i := range nx {
			x := box.Min.X + float64(i)*spec.GridSize
			grid = append(grid, Point{X: x, Y: y, Z: z})
		}
	}
	return grid, nil
}

// steps returns the number of indices i >= 0 with lo + i*step < hi.
func steps(lo, hi, step float64) int {
	if !(hi > lo) {
		return 0
	}
	n := math.Ceil((hi - lo) / step)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}

	// The estimate may be off by one because of rounding.
	k := int(n)
	for k > 0 && lo+float64(k-1)*step >= hi {
		k--
	}
	for lo+float64(k)*step < hi {
		k++
	}
	return k
}

// Generator places sensor points on floors.
// The zero value is not usable; use NewGenerator.
type Generator struct {
	Spec GridSpec

	// Workers is the number of goroutines used for the containment tests.
	// Values below 2 select the sequential code path.
	Workers int

	// MaxLatticePoints limits the number of candidate points per floor.
	MaxLatticePoints int

	// Reporter, if set, receives statistics for every successfully
	// processed floor.
	Reporter Reporter
}

// NewGenerator returns a sequential Generator for the given grid.
func NewGenerator(spec GridSpec) *Generator {
	return &Generator{
		Spec:             spec,
		Workers:          1,
		MaxLatticePoints: DefaultMaxLatticePoints,
	}
}

// Generate returns the lattice points which lie inside the floor polygon,
// in row-major order.
func (g *Generator) Generate(floor Floor) ([]Point, error) {
	box, err := BoundingBoxOf(floor.Vertices)
	if err != nil {
		return nil, err
	}
	limit := g.MaxLatticePoints
	if limit <= 0 {
		limit = DefaultMaxLatticePoints
	}
	candidates, err := lattice(box, g.Spec, limit)
	if err != nil {
		return nil, err
	}

	t, err := NewTester(floor.Vertices)
	if err != nil {
		return nil, err
	}
	accepted, err := t.FilterParallel(candidates, g.Workers)
	if err != nil {
		return nil, err
	}

	if len(accepted) == 0 {
		Logf("floor %q: no sensor points inside the polygon", floor.Name)
	}
	if g.Reporter != nil {
		g.Reporter.Report(Stats{
			Floor:      floor.Name,
			Candidates: len(candidates),
			Accepted:   len(accepted),
		})
	}
	return accepted, nil
}

// GridFromFloor returns the sensor points for the floor polygon given by
// vertices.  A closing vertex equal to the first one is ignored.
func GridFromFloor(vertices []Point, spec GridSpec) ([]Point, error) {
	return NewGenerator(spec).Generate(Floor{Vertices: vertices})
}
