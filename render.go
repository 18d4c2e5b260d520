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
	"image"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Preview renders the footprint of a floor together with its sensor points
// into a grayscale image.  The floor is drawn in mid gray, sensor points
// are single white pixels, and the background is black.  Scale gives the
// number of pixels per model unit; north (positive y) is at the top.
func Preview(floor Floor, points []Point, scale float64) (*image.Gray, error) {
	cov, frame, err := footprintCoverage(floor, scale)
	if err != nil {
		return nil, err
	}

	b := cov.Bounds()
	img := image.NewGray(b)
	for i, a := range cov.Pix {
		img.Pix[i] = a / 2
	}
	for _, p := range points {
		d := toDevice(frame, scale, p.XY())
		x, y := int(math.Floor(d.X)), int(math.Floor(d.Y))
		if image.Pt(x, y).In(b) {
			img.Pix[y*img.Stride+x] = 255
		}
	}
	return img, nil
}

// footprintCoverage rasterises the floor polygon.  The returned rectangle
// is the model-space area covered by the image.
func footprintCoverage(floor Floor, scale float64) (*image.Alpha, rect.Rect, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, rect.Rect{}, fmt.Errorf("invalid scale %g", scale)
	}
	box, err := BoundingBoxOf(floor.Vertices)
	if err != nil {
		return nil, rect.Rect{}, err
	}
	frame := box.Footprint()

	w := max(int(math.Ceil((frame.URx-frame.LLx)*scale)), 1)
	h := max(int(math.Ceil((frame.URy-frame.LLy)*scale)), 1)

	r := vector.NewRasterizer(w, h)
	for i, p := range floor.Vertices {
		d := toDevice(frame, scale, p.XY())
		if i == 0 {
			r.MoveTo(float32(d.X), float32(d.Y))
		} else {
			r.LineTo(float32(d.X), float32(d.Y))
		}
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst, frame, nil
}

// toDevice maps a point in the floor plane to image coordinates.
func toDevice(frame rect.Rect, scale float64, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: (v.X - frame.LLx) * scale,
		Y: (frame.URy - v.Y) * scale,
	}
}
