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

import "errors"

// Errors returned by the grid generator. Callers should use errors.Is,
// since the returned errors usually wrap one of these with more context.
var (
	// ErrEmptyInput is returned when a polygon has no vertices.
	ErrEmptyInput = errors.New("sensorgrid: no vertices")

	// ErrTooFewVertices is returned when a polygon has one or two vertices.
	ErrTooFewVertices = errors.New("sensorgrid: polygon needs at least 3 vertices")

	// ErrNonPlanarFloor is returned when the vertices of a floor do not
	// all share the same z coordinate.
	ErrNonPlanarFloor = errors.New("sensorgrid: floor is not horizontal")

	// ErrDegenerateLine is returned for a zero-length polygon edge.
	ErrDegenerateLine = errors.New("sensorgrid: degenerate line")

	// ErrInvalidProjectionLine is returned when the horizontal ray cast from
	// a query point is not a proper horizontal line.  This happens for
	// points whose x coordinate equals the largest x of the polygon.
	ErrInvalidProjectionLine = errors.New("sensorgrid: invalid projection line")

	// ErrInvalidGridSpec is returned when the grid size is not a finite
	// positive number or the height is not finite.
	ErrInvalidGridSpec = errors.New("sensorgrid: invalid grid spec")

	// ErrGridTooDense is returned when the lattice over a floor would have
	// more points than the configured limit.
	ErrGridTooDense = errors.New("sensorgrid: too many lattice points")
)
