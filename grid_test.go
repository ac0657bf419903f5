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
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewGridInvalid(t *testing.T) {
	sizes := []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{0, 0},
		{-1, 5},
	}
	for _, s := range sizes {
		g, err := NewGrid(s.w, s.h)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d): got error %v, want ErrInvalidDimensions", s.w, s.h, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d): got non-nil grid", s.w, s.h)
		}
	}
}

func TestGridAccess(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("got %dx%d, want 3x2", g.Width(), g.Height())
	}

	red := color.NRGBA{R: 255, A: 255}
	g.Set(1, 2, red)
	if c := g.Pixel(1, 2); c != red {
		t.Errorf("Pixel(1, 2) = %v, want %v", c, red)
	}
	// At uses (x, y) order
	if c := g.At(2, 1); c != red {
		t.Errorf("At(2, 1) = %v, want %v", c, red)
	}
	if c := g.Pixel(2, 1); c != (color.NRGBA{}) {
		t.Errorf("Pixel(2, 1) = %v, want transparent", c)
	}

	g.Clear(1, 2)
	if c := g.Pixel(1, 2); c != (color.NRGBA{}) {
		t.Errorf("after Clear: %v, want transparent", c)
	}
}

func TestGridOutOfRange(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	g.Fill(white)
	before := g.Clone()

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		g.Clear(p[0], p[1])
		g.Set(p[0], p[1], color.NRGBA{})
		if c := g.Pixel(p[0], p[1]); c != (color.NRGBA{}) {
			t.Errorf("Pixel(%d, %d) = %v, want zero", p[0], p[1], c)
		}
	}
	if !equalGrids(g, before) {
		t.Error("out of range access modified the grid")
	}
}

func TestGridImage(t *testing.T) {
	g, err := NewGrid(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	img := g.Image()
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("bounds %v", img.Bounds())
	}

	// the image shares the pixels with the grid
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	img.SetNRGBA(4, 2, c)
	if got := g.Pixel(2, 4); got != c {
		t.Errorf("grid sees %v, want %v", got, c)
	}

	var _ image.Image = g
	if g.ColorModel() != color.NRGBAModel {
		t.Error("unexpected color model")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 23))
	for y := 20; y < 23; y++ {
		for x := 10; x < 14; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}

	g, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("got %dx%d, want 4x3", g.Width(), g.Height())
	}
	want := color.NRGBA{R: 12, G: 21, B: 7, A: 255}
	if c := g.Pixel(2, 1); c != want {
		t.Errorf("Pixel(2, 1) = %v, want %v", c, want)
	}

	_, err = FromImage(image.NewRGBA(image.Rectangle{}))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty image: got %v, want ErrInvalidDimensions", err)
	}
}

func TestClone(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(color.NRGBA{R: 9, A: 255})
	c := g.Clone()
	g.Clear(0, 0)
	if c.Pixel(0, 0).A != 255 {
		t.Error("clone shares pixels with the original")
	}
}

func equalGrids(a, b *Grid) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			return false
		}
	}
	return true
}
