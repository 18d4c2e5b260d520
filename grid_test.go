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

package sensorgrid_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sensorgrid"
)

func TestBoundingBoxOf(t *testing.T) {
	box, err := sensorgrid.BoundingBoxOf(pts(
		[3]float64{1, 5, 2},
		[3]float64{-3, 7, 2},
		[3]float64{4, -1, 0},
	))
	if err != nil {
		t.Fatal(err)
	}
	want := sensorgrid.BoundingBox{
		Min: sensorgrid.Point{X: -3, Y: -1, Z: 0},
		Max: sensorgrid.Point{X: 4, Y: 7, Z: 2},
	}
	if diff := cmp.Diff(want, box); diff != "" {
		t.Errorf("box mismatch (-want +got):\n%s", diff)
	}
	if box.IsFlat() {
		t.Error("box with z range should not be flat")
	}

	fp := box.Footprint()
	if fp.LLx != -3 || fp.LLy != -1 || fp.URx != 4 || fp.URy != 7 {
		t.Errorf("Footprint() = %v", fp)
	}

	_, err = sensorgrid.BoundingBoxOf(nil)
	if !errors.Is(err, sensorgrid.ErrEmptyInput) {
		t.Errorf("empty input: got %v", err)
	}
}

// TestLatticeSquare checks the lattice of a 10x10 square with spacing 4.
func TestLatticeSquare(t *testing.T) {
	square := pts(
		[3]float64{0, 0, 0},
		[3]float64{10, 0, 0},
		[3]float64{10, 10, 0},
		[3]float64{0, 10, 0},
	)
	box, err := sensorgrid.BoundingBoxOf(square)
	if err != nil {
		t.Fatal(err)
	}
	grid, err := sensorgrid.Lattice(box, sensorgrid.GridSpec{GridSize: 4, Height: 1})
	if err != nil {
		t.Fatal(err)
	}

	want := pts(
		[3]float64{0, 0, 1}, [3]float64{4, 0, 1}, [3]float64{8, 0, 1},
		[3]float64{0, 4, 1}, [3]float64{4, 4, 1}, [3]float64{8, 4, 1},
		[3]float64{0, 8, 1}, [3]float64{4, 8, 1}, [3]float64{8, 8, 1},
	)
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("lattice mismatch (-want +got):\n%s", diff)
	}

	// The accepted points of the same floor: the bottom row lies on the
	// edge y=0 and is excluded by the ray casting rule.
	accepted, err := sensorgrid.GridFromFloor(square, sensorgrid.GridSpec{GridSize: 4, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[3:], accepted); diff != "" {
		t.Errorf("accepted mismatch (-want +got):\n%s", diff)
	}
}

func TestLatticeExcludesUpperBound(t *testing.T) {
	box := sensorgrid.BoundingBox{
		Min: sensorgrid.Point{X: 0, Y: 0, Z: 2},
		Max: sensorgrid.Point{X: 1, Y: 0.5, Z: 2},
	}
	grid, err := sensorgrid.Lattice(box, sensorgrid.GridSpec{GridSize: 0.25, Height: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 4*2 {
		t.Fatalf("got %d points, want 8", len(grid))
	}
	for _, p := range grid {
		if p.X >= box.Max.X || p.Y >= box.Max.Y {
			t.Errorf("point %v on or beyond the far edge", p)
		}
		if p.Z != 2.5 {
			t.Errorf("point %v: wrong height", p)
		}
	}
}

// TestLatticeRowMajor checks that y is the outer and x the inner loop.
func TestLatticeRowMajor(t *testing.T) {
	box := sensorgrid.BoundingBox{
		Min: sensorgrid.Point{X: -1, Y: 3},
		Max: sensorgrid.Point{X: 2, Y: 7},
	}
	grid, err := sensorgrid.Lattice(box, sensorgrid.GridSpec{GridSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(grid); i++ {
		a, b := grid[i-1], grid[i]
		if !(a.Y < b.Y || a.Y == b.Y && a.X < b.X) {
			t.Fatalf("points %d and %d out of order: %v, %v", i-1, i, a, b)
		}
	}
}

// TestLatticeSmallExtent checks that an extent smaller than the grid size
// still gives the point at the minimum corner.
func TestLatticeSmallExtent(t *testing.T) {
	cases := []sensorgrid.BoundingBox{
		{Min: sensorgrid.Point{X: 0, Y: 0}, Max: sensorgrid.Point{X: 0.3, Y: 0.2}},
		{Min: sensorgrid.Point{X: 5, Y: 1}, Max: sensorgrid.Point{X: 20, Y: 1.4}},
		{Min: sensorgrid.Point{X: -2, Y: -9}, Max: sensorgrid.Point{X: -1.999, Y: 10}},
	}
	spec := sensorgrid.DefaultGridSpec()
	for _, box := range cases {
		grid, err := sensorgrid.Lattice(box, spec)
		if err != nil {
			t.Fatal(err)
		}
		if len(grid) == 0 || grid[0].X != box.Min.X || grid[0].Y != box.Min.Y {
			t.Errorf("box %v: lattice does not start at the minimum corner", box)
		}
	}
}

// TestLatticeDecimalSpacing uses a spacing which is not exactly
// representable, where accumulating the step would drift.
func TestLatticeDecimalSpacing(t *testing.T) {
	box := sensorgrid.BoundingBox{Max: sensorgrid.Point{X: 1, Y: 1}}
	grid, err := sensorgrid.Lattice(box, sensorgrid.GridSpec{GridSize: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 100 {
		t.Errorf("got %d points, want 100", len(grid))
	}
	for i, p := range grid[:10] {
		if want := float64(i) * 0.1; p.X != want {
			t.Errorf("x[%d] = %.17g, want %.17g", i, p.X, want)
		}
	}
}

func TestLatticeErrors(t *testing.T) {
	flat := sensorgrid.BoundingBox{Max: sensorgrid.Point{X: 1, Y: 1}}
	cases := []struct {
		name string
		box  sensorgrid.BoundingBox
		spec sensorgrid.GridSpec
		want error
	}{
		{"non_planar", sensorgrid.BoundingBox{Max: sensorgrid.Point{X: 1, Y: 1, Z: 0.1}},
			sensorgrid.DefaultGridSpec(), sensorgrid.ErrNonPlanarFloor},
		{"zero_grid", flat, sensorgrid.GridSpec{}, sensorgrid.ErrInvalidGridSpec},
		{"negative_grid", flat, sensorgrid.GridSpec{GridSize: -1}, sensorgrid.ErrInvalidGridSpec},
		{"nan_grid", flat, sensorgrid.GridSpec{GridSize: math.NaN()}, sensorgrid.ErrInvalidGridSpec},
		{"inf_grid", flat, sensorgrid.GridSpec{GridSize: math.Inf(1)}, sensorgrid.ErrInvalidGridSpec},
		{"nan_height", flat, sensorgrid.GridSpec{GridSize: 1, Height: math.NaN()}, sensorgrid.ErrInvalidGridSpec},
		{"too_dense", sensorgrid.BoundingBox{Max: sensorgrid.Point{X: 1e6, Y: 1e6}},
			sensorgrid.GridSpec{GridSize: 1e-3}, sensorgrid.ErrGridTooDense},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid, err := sensorgrid.Lattice(c.box, c.spec)
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
			if grid != nil {
				t.Errorf("got %d points on error", len(grid))
			}
		})
	}
}

// TestGenerateNonPlanar checks that a sloped floor is rejected and produces
// no points.
func TestGenerateNonPlanar(t *testing.T) {
	floor := pts(
		[3]float64{0, 0, 0},
		[3]float64{10, 0, 0},
		[3]float64{10, 10, 1},
		[3]float64{0, 10, 1},
	)
	grid, err := sensorgrid.GridFromFloor(floor, sensorgrid.DefaultGridSpec())
	if !errors.Is(err, sensorgrid.ErrNonPlanarFloor) {
		t.Errorf("got error %v, want ErrNonPlanarFloor", err)
	}
	if len(grid) != 0 {
		t.Errorf("got %d points", len(grid))
	}
}

func TestGenerateTriangle(t *testing.T) {
	floor := pts(
		[3]float64{0, 0, 0},
		[3]float64{10, 0, 0},
		[3]float64{5, 10, 0},
	)
	grid, err := sensorgrid.GridFromFloor(floor, sensorgrid.GridSpec{GridSize: 5, Height: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := pts([3]float64{5, 5, 0})
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, c := range allCases() {
		t.Run(c.name, func(t *testing.T) {
			floor := floorOf(c.name, c.tc)
			g := sensorgrid.NewGenerator(specOf(c.tc))

			first, err := g.Generate(floor)
			if err != nil {
				t.Fatal(err)
			}
			second, err := g.Generate(floor)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})
	}
}

// TestGenerateParallel checks that the concurrent code path returns the
// same points in the same order as the sequential one.
func TestGenerateParallel(t *testing.T) {
	for _, c := range allCases() {
		t.Run(c.name, func(t *testing.T) {
			floor := floorOf(c.name, c.tc)

			seq := sensorgrid.NewGenerator(specOf(c.tc))
			want, err := seq.Generate(floor)
			if err != nil {
				t.Fatal(err)
			}

			for _, workers := range []int{2, 3, 8} {
				par := sensorgrid.NewGenerator(specOf(c.tc))
				par.Workers = workers
				got, err := par.Generate(floor)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%d workers: mismatch (-seq +par):\n%s", workers, diff)
				}
			}
		})
	}
}

// TestGenerateHeight checks that all sensor points are placed at the
// configured height above the floor and lie within the bounding box.
func TestGenerateHeight(t *testing.T) {
	for _, c := range allCases() {
		t.Run(c.name, func(t *testing.T) {
			floor := floorOf(c.name, c.tc)
			box, err := sensorgrid.BoundingBoxOf(floor.Vertices)
			if err != nil {
				t.Fatal(err)
			}
			grid, err := sensorgrid.NewGenerator(specOf(c.tc)).Generate(floor)
			if err != nil {
				t.Fatal(err)
			}
			z := c.tc.Elevation + c.tc.Height
			for _, p := range grid {
				if p.Z != z {
					t.Fatalf("point %v: z should be %g", p, z)
				}
				if p.X < box.Min.X || p.X >= box.Max.X || p.Y < box.Min.Y || p.Y >= box.Max.Y {
					t.Fatalf("point %v outside of the bounding box", p)
				}
			}
		})
	}
}

func TestGenerateReporter(t *testing.T) {
	var got []sensorgrid.Stats
	g := sensorgrid.NewGenerator(sensorgrid.GridSpec{GridSize: 4, Height: 1})
	g.Reporter = sensorgrid.ReporterFunc(func(s sensorgrid.Stats) {
		got = append(got, s)
	})

	floor := sensorgrid.Floor{
		Name: "office",
		Vertices: pts(
			[3]float64{0, 0, 0},
			[3]float64{10, 0, 0},
			[3]float64{10, 10, 0},
			[3]float64{0, 10, 0},
		),
	}
	if _, err := g.Generate(floor); err != nil {
		t.Fatal(err)
	}

	// failing floors are not reported
	floor.Vertices[0].Z = 1
	if _, err := g.Generate(floor); err == nil {
		t.Fatal("expected an error for a non-planar floor")
	}

	want := []sensorgrid.Stats{{Floor: "office", Candidates: 9, Accepted: 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerateClosedRing checks that repeating the first vertex at the end
// does not change the result.
func TestGenerateClosedRing(t *testing.T) {
	open := pts(
		[3]float64{0, 0, 0},
		[3]float64{10, 0, 0},
		[3]float64{10, 10, 0},
		[3]float64{0, 10, 0},
	)
	closed := append(open[:len(open):len(open)], open[0])
	spec := sensorgrid.GridSpec{GridSize: 4, Height: 1}

	want, err := sensorgrid.GridFromFloor(open, spec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := sensorgrid.GridFromFloor(closed, spec)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("closed ring mismatch (-open +closed):\n%s", diff)
	}
	if len(got) != 6 {
		t.Errorf("got %d points, want 6", len(got))
	}
}

func TestGenerateEmptyLogs(t *testing.T) {
	original := sensorgrid.Logf
	defer func() { sensorgrid.Logf = original }()

	var lines []string
	sensorgrid.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	floor := sensorgrid.Floor{
		Name: "closet",
		Vertices: pts(
			[3]float64{0, 0, 0},
			[3]float64{1, 0, 0},
			[3]float64{1, 1, 0},
		),
	}
	grid, err := sensorgrid.NewGenerator(sensorgrid.GridSpec{GridSize: 5}).Generate(floor)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 0 {
		t.Fatalf("got %d points, want 0", len(grid))
	}
	want := `floor "closet": no sensor points inside the polygon`
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("got %q, want %q", lines, want)
	}
}
