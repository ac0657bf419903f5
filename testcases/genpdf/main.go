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

// Command genpdf generates proof sheets for the mask test cases.
// Each sheet shows the cleared pixels in grey with the continuous cap and
// tail outlines drawn on top. The PDFs are rendered to PNGs using
// Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bubble/testcases"
)

const proofDir = "testdata/proof"

// scale is the size of one image pixel in PDF points.
const scale = 4

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")
			pngPath := filepath.Join(proofDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	g, err := tc.Render()
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width * scale),
		URy: float64(tc.Height * scale),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; image rows count from the top.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(tc.Height * scale)})

	// cleared pixels, one rectangle per horizontal run
	page.SetFillColor(color.DeviceGray(0.6))
	for row := range g.Height() {
		start := -1
		for column := range g.Width() + 1 {
			cleared := column < g.Width() && g.Pixel(row, column).A == 0
			switch {
			case cleared && start < 0:
				start = column
			case !cleared && start >= 0:
				page.Rectangle(float64(start), float64(row), float64(column-start), 1)
				start = -1
			}
		}
	}
	page.Fill()

	m := tc.Masker()
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.0 / scale)
	for cmd, pts := range m.CapPath(tc.Width, tc.Height, tc.Percentage) {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	// centre line of the tail
	if tail := m.TailOutline(tc.Width, tc.Height, tc.Percentage); len(tail) > 1 {
		page.SetStrokeColor(color.DeviceGray(0.3))
		page.MoveTo(tail[0].X, tail[0].Y)
		for _, p := range tail[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
