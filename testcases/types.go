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

package testcases

import (
	"image/color"

	"seehuhn.de/go/bubble"
)

// Opaque is the color of the test images before masking.
var Opaque = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// TestCase defines a single masking scenario.
type TestCase struct {
	Name       string  // lowercase a-z, 0-9 and _ only
	Width      int     // image width in pixels
	Height     int     // image height in pixels
	Percentage float64 // fraction of the height covered by the cap

	// Tail overrides the default tail geometry. The zero value means
	// the defaults.
	Tail Tail
}

// Tail describes the angular window and thickness of the tail sweep.
type Tail struct {
	Start     int     // first angle in degrees
	End       int     // end of the window in degrees (exclusive)
	Thickness float64 // fraction of the image width
}

// Masker returns a masker configured for the test case.
func (tc TestCase) Masker() *bubble.Masker {
	m := bubble.NewMasker()
	if tc.Tail != (Tail{}) {
		m.TailStart = tc.Tail.Start
		m.TailEnd = tc.Tail.End
		m.TailThickness = tc.Tail.Thickness
	}
	return m
}

// Render cuts the bubble out of an opaque white image of the test case's
// size.
func (tc TestCase) Render() (*bubble.Grid, error) {
	g, err := bubble.NewGrid(tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	g.Fill(Opaque)
	if err := tc.Masker().Apply(g, tc.Percentage); err != nil {
		return nil, err
	}
	return g, nil
}
