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

// Package plotting draws floor plans with their sensor grids.
package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/sensorgrid"
)

// Plot returns a plot showing the outline of floor and the sensor points.
func Plot(floor sensorgrid.Floor, points []sensorgrid.Point) (*plot.Plot, error) {
	if len(floor.Vertices) == 0 {
		return nil, sensorgrid.ErrEmptyInput
	}

	p := plot.New()
	p.Title.Text = floor.Name
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	outline := make(plotter.XYs, len(floor.Vertices))
	for i, v := range floor.Vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	poly.Color = color.Gray{Y: 230}
	poly.LineStyle.Width = vg.Points(1)
	p.Add(poly)

	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		sensors, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("sensors: %w", err)
		}
		sensors.GlyphStyle.Radius = vg.Points(1.5)
		sensors.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		p.Add(sensors)
		p.Legend.Add(fmt.Sprintf("%d sensors", len(points)), sensors)
	}

	// keep the aspect ratio of the floor plan
	box, err := sensorgrid.BoundingBoxOf(floor.Vertices)
	if err != nil {
		return nil, err
	}
	side := max(box.Max.X-box.Min.X, box.Max.Y-box.Min.Y)
	p.X.Min, p.X.Max = box.Min.X, box.Min.X+side
	p.Y.Min, p.Y.Max = box.Min.Y, box.Min.Y+side

	return p, nil
}

// Save writes the plot of floor and its sensor points to file.  The image
// format is chosen by the file name extension (e.g. .png, .svg, .pdf).
func Save(file string, floor sensorgrid.Floor, points []sensorgrid.Point) error {
	p, err := Plot(floor, points)
	if err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, file)
}
