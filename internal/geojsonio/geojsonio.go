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

// Package geojsonio reads floor plans from and writes sensor grids to
// GeoJSON feature collections.
//
// Floors are Polygon features.  The optional properties "name" and
// "elevation" give the floor name and its z coordinate.  Sensor points are
// written as Point features, with the z coordinate stored in the "z"
// property.
package geojsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/sensorgrid"
)

// Room is a floor read from a GeoJSON feature.  If the feature could not
// be converted, Err is set and Floor only carries the name.
type Room struct {
	Floor sensorgrid.Floor
	Err   error
}

// ErrUnsupportedGeometry is returned for features which are not simple
// polygons.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// ReadFloors reads all features of a GeoJSON feature collection.
// An error is returned only if the input is not a valid feature
// collection; problems with individual features are reported in the
// corresponding Room.
func ReadFloors(r io.Reader) ([]Room, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("invalid feature collection: %w", err)
	}

	rooms := make([]Room, len(fc.Features))
	for i, f := range fc.Features {
		rooms[i] = toRoom(i, f)
	}
	return rooms, nil
}

func toRoom(idx int, f *geojson.Feature) Room {
	name, ok := f.Properties["name"].(string)
	if !ok || name == "" {
		name = "floor_" + strconv.Itoa(idx)
	}
	room := Room{Floor: sensorgrid.Floor{Name: name}}

	var z float64
	switch v := f.Properties["elevation"].(type) {
	case nil:
		// ground level
	case float64:
		z = v
	default:
		room.Err = fmt.Errorf("%s: elevation must be a number, got %T", name, v)
		return room
	}

	poly, ok := f.Geometry.(orb.Polygon)
	if !ok {
		room.Err = fmt.Errorf("%s: %w %T", name, ErrUnsupportedGeometry, f.Geometry)
		return room
	}
	if len(poly) != 1 {
		room.Err = fmt.Errorf("%s: %w: polygon with %d rings", name, ErrUnsupportedGeometry, len(poly))
		return room
	}

	ring := poly[0]
	// GeoJSON repeats the first position at the end of a ring
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	vertices := make([]sensorgrid.Point, len(ring))
	for i, p := range ring {
		vertices[i] = sensorgrid.Point{X: p.X(), Y: p.Y(), Z: z}
	}
	room.Floor.Vertices = vertices
	return room
}

// Grid holds the sensor points generated for one floor.
type Grid struct {
	Floor  string
	Points []sensorgrid.Point
}

// WriteSensors writes the sensor points of all grids as a GeoJSON feature
// collection.  Every feature gets an ID which depends only on the floor
// name and the position of the point in the grid.
func WriteSensors(w io.Writer, grids []Grid) error {
	fc := geojson.NewFeatureCollection()
	for _, g := range grids {
		for i, p := range g.Points {
			f := geojson.NewFeature(orb.Point{p.X, p.Y})
			f.ID = SensorID(g.Floor, i).String()
			f.Properties["floor"] = g.Floor
			f.Properties["index"] = i
			f.Properties["z"] = p.Z
			fc.Append(f)
		}
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ReadSensors reads sensor points written by WriteSensors, grouped by
// floor in order of first appearance.
func ReadSensors(r io.Reader) ([]Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("invalid feature collection: %w", err)
	}

	var grids []Grid
	pos := make(map[string]int)
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: %w %T", i, ErrUnsupportedGeometry, f.Geometry)
		}
		floor, _ := f.Properties["floor"].(string)
		z, _ := f.Properties["z"].(float64)

		k, seen := pos[floor]
		if !seen {
			k = len(grids)
			pos[floor] = k
			grids = append(grids, Grid{Floor: floor})
		}
		grids[k].Points = append(grids[k].Points, sensorgrid.Point{X: p.X(), Y: p.Y(), Z: z})
	}
	return grids, nil
}

var sensorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://seehuhn.de/go/sensorgrid"))

// SensorID returns the ID of the idx-th sensor point of a floor.
func SensorID(floor string, idx int) uuid.UUID {
	return uuid.NewSHA1(sensorNamespace, []byte(floor+"/"+strconv.Itoa(idx)))
}
