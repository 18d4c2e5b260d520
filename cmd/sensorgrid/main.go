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

// Command sensorgrid places illuminance sensor points on the floors of a
// building.
//
// Floors are read from a GeoJSON feature collection of polygons, and the
// sensor points of all floors are written as a GeoJSON feature collection of
// points.  A floor which cannot be processed is logged and skipped; the
// command then exits with status 1 after processing the remaining floors.
// Plots and previews are optional: failing to write them is logged, but
// the sensor points of the floor are still written.
//
// Usage:
//
//	sensorgrid -in floors.geojson -out sensors.geojson [flags]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"seehuhn.de/go/sensorgrid"
	"seehuhn.de/go/sensorgrid/internal/config"
	"seehuhn.de/go/sensorgrid/internal/geojsonio"
	"seehuhn.de/go/sensorgrid/internal/logger"
	"seehuhn.de/go/sensorgrid/internal/plotting"
)

type options struct {
	in, out    string
	configFile string
	envFile    string

	// overrides for the configuration file; nil means unset
	gridSize *float64
	height   *float64
	workers  *int
	debug    bool

	plotDir    string
	previewDir string
	scale      float64
}

func main() {
	opts := options{}
	var (
		gridSize, height float64
		workers          int
	)
	flag.StringVar(&opts.in, "in", "", "input GeoJSON file with floor polygons (default stdin)")
	flag.StringVar(&opts.out, "out", "", "output GeoJSON file for sensor points (default stdout)")
	flag.StringVar(&opts.configFile, "config", "", "JSON configuration file")
	flag.StringVar(&opts.envFile, "env", ".env", "environment file, ignored if missing")
	flag.Float64Var(&gridSize, "grid-size", sensorgrid.DefaultGridSize, "spacing between sensor points")
	flag.Float64Var(&height, "height", sensorgrid.DefaultHeight, "height of the sensor points above the floor")
	flag.IntVar(&workers, "workers", 1, "number of goroutines per floor")
	flag.BoolVar(&opts.debug, "debug", false, "log point counts for every floor")
	flag.StringVar(&opts.plotDir, "plot", "", "directory for floor plan plots (PNG)")
	flag.StringVar(&opts.previewDir, "preview", "", "directory for raster previews (PNG)")
	flag.Float64Var(&opts.scale, "scale", 20, "pixels per unit for raster previews")
	flag.Parse()

	// only explicitly given flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid-size":
			opts.gridSize = &gridSize
		case "height":
			opts.height = &height
		case "workers":
			opts.workers = &workers
		}
	})

	if opts.envFile != "" {
		// a missing file is fine, variables may come from the environment
		_ = godotenv.Load(opts.envFile)
	}
	logger.Setup()
	log := logger.L()

	if err := run(opts, log); err != nil {
		log.Error("sensorgrid failed", "error", err)
		os.Exit(1)
	}
}

// errFloorsFailed is returned by run if some floors were skipped.
var errFloorsFailed = errors.New("some floors could not be processed")

func run(opts options, log *slog.Logger) error {
	cfg := &config.Config{}
	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return err
		}
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	g := cfg.Generator()
	if cfg.GetDebug() {
		g.Reporter = sensorgrid.LogReporter(log)
	}
	sensorgrid.SetLogger(func(format string, v ...interface{}) {
		log.Debug(fmt.Sprintf(format, v...))
	})

	for _, dir := range []string{opts.plotDir, opts.previewDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var r io.Reader = os.Stdin
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	rooms, err := geojsonio.ReadFloors(r)
	if err != nil {
		return err
	}

	var grids []geojsonio.Grid
	failed := 0
	for i, room := range rooms {
		points, err := processFloor(g, room)
		if err != nil {
			log.Warn("skipping floor", "floor", room.Floor.Name, "error", err)
			failed++
			continue
		}
		writeImages(i, room.Floor, points, opts, log)
		grids = append(grids, geojsonio.Grid{Floor: room.Floor.Name, Points: points})
	}

	var w io.Writer = os.Stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := geojsonio.WriteSensors(w, grids); err != nil {
		return err
	}

	log.Info("sensor grids written", "floors", len(grids), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFloorsFailed, failed, len(rooms))
	}
	return nil
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.gridSize != nil {
		cfg.GridSize = opts.gridSize
	}
	if opts.height != nil {
		cfg.Height = opts.height
	}
	if opts.workers != nil {
		cfg.Workers = opts.workers
	}
	if opts.debug {
		cfg.Debug = &opts.debug
	}
}

// processFloor generates the sensor grid of a single floor.
func processFloor(g *sensorgrid.Generator, room geojsonio.Room) ([]sensorgrid.Point, error) {
	if room.Err != nil {
		return nil, room.Err
	}
	return g.Generate(room.Floor)
}

// writeImages writes the optional plot and preview of the idx-th floor.
// Failures are logged and otherwise ignored.
func writeImages(idx int, floor sensorgrid.Floor, points []sensorgrid.Point, opts options, log *slog.Logger) {
	name := outputName(idx, floor.Name)
	if opts.plotDir != "" {
		file := filepath.Join(opts.plotDir, name)
		if err := plotting.Save(file, floor, points); err != nil {
			log.Warn("cannot write plot", "floor", floor.Name, "error", err)
		}
	}
	if opts.previewDir != "" {
		file := filepath.Join(opts.previewDir, name)
		if err := writePreview(file, floor, points, opts.scale); err != nil {
			log.Warn("cannot write preview", "floor", floor.Name, "error", err)
		}
	}
}

func writePreview(file string, floor sensorgrid.Floor, points []sensorgrid.Point, scale float64) error {
	img, err := sensorgrid.Preview(floor, points, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// outputName returns the image file name for the idx-th floor.  The index
// keeps floors with similar names apart.
func outputName(idx int, name string) string {
	return strconv.Itoa(idx) + "_" + fileName(name) + ".png"
}

// fileName turns a floor name into a safe file name.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
