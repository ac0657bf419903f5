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

package bubble

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// capPoint returns the continuous boundary point sampled by step i of the
// cap sweep. X is the left edge of the cleared span, Y is the vertical
// offset from the top edge, which is zero or negative.
func capPoint(width int, occupyHeight float64, i int) vec.Vec2 {
	a := deg2rad(float64(270 - i))
	half := float64(width) / 2
	return vec.Vec2{
		X: half + math.Sin(a)*half,
		Y: math.Cos(a) * occupyHeight,
	}
}

// tailPoint returns the continuous centre point sampled at angle i (in
// degrees) of the tail sweep, in image coordinates.
func (m *Masker) tailPoint(width int, occupyHeight float64, i int) vec.Vec2 {
	// progress through the tail window, mapped onto a quarter turn
	d := 0.0
	if i != m.TailStart {
		d = float64(i-m.TailStart) / float64(m.TailEnd-m.TailStart)
	}
	v := 90 * d

	half := float64(width) / 2
	return vec.Vec2{
		X: half + math.Sin(deg2rad(float64(i)))*half,
		Y: math.Abs(math.Cos(deg2rad(v))) * occupyHeight,
	}
}

// CapOutline returns the points sampled by the cap sweep for an image of
// the given size, in image coordinates (x to the right, y downwards).
// The outline runs from the top-left corner through the lowest point of
// the cap to the top-right corner.
//
// The arguments are not validated.
func (m *Masker) CapOutline(width, height int, percentage float64) []vec.Vec2 {
	occupyHeight := float64(height) * percentage
	n := m.CapSteps / 2

	res := make([]vec.Vec2, 0, 2*n)
	for i := range n {
		p := capPoint(width, occupyHeight, i)
		res = append(res, vec.Vec2{X: p.X, Y: -p.Y})
	}
	for _, p := range slices.Backward(res[:n]) {
		res = append(res, vec.Vec2{X: float64(width) - p.X, Y: p.Y})
	}
	return res
}

// TailOutline returns the centre points sampled by the tail sweep, in image
// coordinates. The arguments are not validated.
func (m *Masker) TailOutline(width, height int, percentage float64) []vec.Vec2 {
	occupyHeight := float64(height) * percentage
	var res []vec.Vec2
	for i := m.TailStart; i < m.TailEnd; i++ {
		res = append(res, m.tailPoint(width, occupyHeight, i))
	}
	return res
}

// CapPath returns the closed outline of the cap as a path.
func (m *Masker) CapPath(width, height int, percentage float64) path.Path {
	pts := m.CapOutline(width, height, percentage)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
