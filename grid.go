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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Grid is a mutable RGBA pixel buffer, indexed by (row, column) with the
// origin in the top-left corner. Colors are stored non-premultiplied,
// 8 bits per channel, in row-major order.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel: R, G, B, A
}

// NewGrid returns a grid of the given size with all pixels set to
// transparent black.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromImage copies img into a new grid.
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(g.Image(), image.Rect(0, 0, g.width, g.height), img, b.Min, draw.Src)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inside(row, column int) bool {
	return row >= 0 && row < g.height && column >= 0 && column < g.width
}

// Pixel returns the color at (row, column).
// Coordinates outside the grid give transparent black.
func (g *Grid) Pixel(row, column int) color.NRGBA {
	if !g.inside(row, column) {
		return color.NRGBA{}
	}
	i := (row*g.width + column) * 4
	return color.NRGBA{R: g.pix[i], G: g.pix[i+1], B: g.pix[i+2], A: g.pix[i+3]}
}

// Set replaces the pixel at (row, column).
// Coordinates outside the grid are ignored.
func (g *Grid) Set(row, column int, c color.NRGBA) {
	if !g.inside(row, column) {
		return
	}
	i := (row*g.width + column) * 4
	g.pix[i+0] = c.R
	g.pix[i+1] = c.G
	g.pix[i+2] = c.B
	g.pix[i+3] = c.A
}

// Clear makes the pixel at (row, column) transparent black.
// Coordinates outside the grid are ignored.
func (g *Grid) Clear(row, column int) {
	if !g.inside(row, column) {
		return
	}
	i := (row*g.width + column) * 4
	clear(g.pix[i : i+4])
}

// Fill sets every pixel of the grid to c.
func (g *Grid) Fill(c color.NRGBA) {
	for i := 0; i < len(g.pix); i += 4 {
		g.pix[i+0] = c.R
		g.pix[i+1] = c.G
		g.pix[i+2] = c.B
		g.pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		pix:    append([]uint8(nil), g.pix...),
	}
}

// Image returns an [image.NRGBA] which shares its pixels with the grid.
// Writes through either value are visible in the other.
func (g *Grid) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.pix,
		Stride: 4 * g.width,
		Rect:   image.Rect(0, 0, g.width, g.height),
	}
}

// At implements the image.Image interface.
// Note that the arguments are in (x, y) order.
func (g *Grid) At(x, y int) color.Color {
	return g.Pixel(y, x)
}

// Bounds implements the image.Image interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// ColorModel implements the image.Image interface.
func (g *Grid) ColorModel() color.Model {
	return color.NRGBAModel
}
