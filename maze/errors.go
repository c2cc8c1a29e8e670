// SPDX-License-Identifier: MIT
// Package: mazegraph/maze
//
// errors.go — sentinel errors for the maze package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending sizes or coordinates) is attached with %w wrapping.
//   • Runtime code never panics; option constructors may panic on nil inputs.

package maze

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive width or height, or a
	// width·height product that does not fit in an int.
	ErrInvalidDimension = errors.New("maze: width and height must be positive")

	// ErrInvalidCell indicates an out-of-bounds or non-adjacent cell reference.
	ErrInvalidCell = errors.New("maze: invalid cell reference")

	// ErrAlreadyGenerated is returned when Generate runs on a carved maze.
	ErrAlreadyGenerated = errors.New("maze: already generated")
)
