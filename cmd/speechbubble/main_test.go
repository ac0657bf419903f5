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

package main

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/bubble"
	"seehuhn.de/go/bubble/codec"
)

func TestParsePercentage(t *testing.T) {
	cases := map[string]float64{
		"0.5":   0.5,
		"1":     1,
		"2":     2,
		"0":     bubble.DefaultPercentage,
		"":      bubble.DefaultPercentage,
		"abc":   bubble.DefaultPercentage,
		"NaN":   bubble.DefaultPercentage,
		"-0.25": -0.25,
		" 0.5 ": 0.5,
		"\t1\n": 1,
		"0x10":  16,
		"0b11":  3,
		"1 2":   bubble.DefaultPercentage,
	}
	for in, want := range cases {
		if got := parsePercentage(in); got != want {
			t.Errorf("parsePercentage(%q) = %g, want %g", in, got, want)
		}
	}
}

func TestClampPercentage(t *testing.T) {
	if got := clampPercentage(2); got != 1 {
		t.Errorf("got %g, want 1", got)
	}
	if got := clampPercentage(0.4); got != 0.4 {
		t.Errorf("got %g, want 0.4", got)
	}
	if got := clampPercentage(math.NaN()); !math.IsNaN(got) {
		t.Errorf("got %g, want NaN", got)
	}
}

func writeInput(t *testing.T, dir string, width, height int) string {
	t.Helper()
	g, err := bubble.NewGrid(width, height)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(color.NRGBA{R: 10, G: 200, B: 30, A: 255})
	name := filepath.Join(dir, "in.png")
	if err := codec.WriteFile(name, codec.PNG, g, nil); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, 60, 40)

	for _, f := range codec.Formats {
		output := filepath.Join(dir, "out"+f.Extension())
		if err := run(context.Background(), input, output, 0.5, nil); err != nil {
			t.Fatalf("%s: %v", f, err)
		}

		if f == codec.BMP {
			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("BM")) {
				t.Error("bmp: missing signature")
			}
			continue
		}

		g, err := codec.Open(context.Background(), output)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if g.Width() != 60 || g.Height() != 40 {
			t.Errorf("%s: got %dx%d, want 60x40", f, g.Width(), g.Height())
		}
		if f == codec.PNG && g.Pixel(0, 30).A != 0 {
			t.Errorf("%s: top centre pixel not transparent", f)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, 20, 4)

	err := run(context.Background(), input, filepath.Join(dir, "out.gif"), 0.5, nil)
	if !errors.Is(err, codec.ErrUnsupportedFormat) {
		t.Errorf("gif output: got %v, want ErrUnsupportedFormat", err)
	}

	err = run(context.Background(), input, filepath.Join(dir, "out"), 0.5, nil)
	if !errors.Is(err, codec.ErrNoExtension) {
		t.Errorf("missing extension: got %v, want ErrNoExtension", err)
	}

	err = run(context.Background(), input, filepath.Join(dir, "out.png"), 0.1, nil)
	if !errors.Is(err, bubble.ErrImageTooSmall) {
		t.Errorf("small image: got %v, want ErrImageTooSmall", err)
	}

	err = run(context.Background(), filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), 0.5, nil)
	if err == nil {
		t.Error("missing input succeeded")
	}
}
