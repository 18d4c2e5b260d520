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

// Command export writes the test floors and their sensor grids to JSON,
// for checking against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sensorgrid"
	"seehuhn.de/go/sensorgrid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Path      []jsonSegment `json:"path"`
	Elevation float64       `json:"elevation"`
	GridSize  float64       `json:"grid_size"`
	Height    float64       `json:"height"`
	Sensors   [][]float64   `json:"sensors"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	name := category + "_" + tc.Name
	jtc := jsonTestCase{
		Name:      name,
		Path:      pathToJSON(tc.Path()),
		Elevation: tc.Elevation,
		GridSize:  tc.GridSize,
		Height:    tc.Height,
		Sensors:   [][]float64{},
	}

	floor := sensorgrid.Floor{Name: name}
	for _, v := range tc.Outline {
		floor.Vertices = append(floor.Vertices, sensorgrid.Point{X: v.X, Y: v.Y, Z: tc.Elevation})
	}
	g := sensorgrid.NewGenerator(sensorgrid.GridSpec{GridSize: tc.GridSize, Height: tc.Height})
	points, err := g.Generate(floor)
	if err != nil {
		return jtc, err
	}
	for _, p := range points {
		jtc.Sensors = append(jtc.Sensors, []float64{p.X, p.Y, p.Z})
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
