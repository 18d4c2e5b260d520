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

// Package sensorgrid places illuminance sensor points on horizontal floors.
//
// A regular lattice is laid over the bounding box of a floor polygon at a
// fixed height above the floor, and only the lattice points inside the
// polygon are kept.  Containment is decided by casting a horizontal ray in
// the positive x direction and counting edge crossings (even-odd rule).
//
// The generated points are returned in row-major order, with y increasing in
// the outer loop and x in the inner loop.
package sensorgrid

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
