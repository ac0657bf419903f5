// seehuhn.de/go/bubble - speech bubble masks for raster images
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

// Package bubble cuts a speech bubble out of a raster image.
//
// The bubble consists of a half-ellipse cap hanging from the top edge of the
// image and a thick tail arc to the right of center. Both are made fully
// transparent in place; see [Masker.Apply].
package bubble

//go:generate go run ./testcases/export

import "errors"

// DefaultPercentage is the fraction of the image height covered by the cap
// when the caller does not choose one.
const DefaultPercentage = 0.3

var (
	// ErrInvalidDimensions is returned for grids without any pixels.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrImageTooSmall is returned when the cap would be less than one
	// row high.
	ErrImageTooSmall = errors.New("image too small for speech bubble")

	// ErrInvalidTail is returned by a Masker whose parameters do not
	// describe a usable sweep.
	ErrInvalidTail = errors.New("invalid masker configuration")
)

var defaultMasker = NewMasker()

// Apply cuts a speech bubble with the default parameters out of g.
// The cap covers the given fraction of the image height.
func Apply(g *Grid, percentage float64) error {
	return defaultMasker.Apply(g, percentage)
}
