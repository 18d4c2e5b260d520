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

// Command genpdf draws the test floors and their sensor grids.
// It creates one PDF file per test case, showing the floor outline and the
// accepted sensor points.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/sensorgrid"
	"seehuhn.de/go/sensorgrid/testcases"
)

const (
	refDir = "testdata/reference"

	pageSize = 400.0 // PDF points
	margin   = 20.0
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := generatePDF(name, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(name string, tc testcases.TestCase, pdfPath string) error {
	floor := sensorgrid.Floor{Name: name}
	for _, v := range tc.Outline {
		floor.Vertices = append(floor.Vertices, sensorgrid.Point{X: v.X, Y: v.Y, Z: tc.Elevation})
	}
	box, err := sensorgrid.BoundingBoxOf(floor.Vertices)
	if err != nil {
		return err
	}
	g := sensorgrid.NewGenerator(sensorgrid.GridSpec{GridSize: tc.GridSize, Height: tc.Height})
	points, err := g.Generate(floor)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: pageSize,
		URy: pageSize,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Map the floor's bounding box into the page, keeping the aspect ratio.
	fp := box.Footprint()
	extent := max(fp.URx-fp.LLx, fp.URy-fp.LLy)
	scale := (pageSize - 2*margin) / extent
	page.Transform(matrix.Matrix{scale, 0, 0, scale, margin - scale*fp.LLx, margin - scale*fp.LLy})

	// floor outline: light gray fill, black border
	page.SetFillColor(color.DeviceGray(0.9))
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / scale)
	page.SetLineJoin(graphics.LineJoinRound)
	outline := func() {
		for cmd, pts := range tc.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	outline()
	page.Fill()
	outline()
	page.Stroke()

	// sensor points: small black squares, 3 PDF points wide
	page.SetFillColor(color.DeviceGray(0))
	d := 3 / scale
	for _, p := range points {
		page.Rectangle(p.X-d/2, p.Y-d/2, d, d)
	}
	page.Fill()

	return page.Close()
}
