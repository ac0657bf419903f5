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
	"math"
)

// Masker cuts speech bubbles out of pixel grids.
//
// The zero value is not usable; create Maskers with [NewMasker] and adjust
// the exported fields before calling Apply.
type Masker struct {
	// CapSteps is the number of one-degree steps in a full sweep of the
	// cap, from 180 to 360 degrees. The cap is symmetric, so only the
	// first CapSteps/2 steps are computed.
	CapSteps int

	// TailStart and TailEnd give the angular window of the tail in
	// degrees. TailEnd is exclusive.
	TailStart int
	TailEnd   int

	// TailThickness is the width of the tail stroke, as a fraction of the
	// image width. The stroke is at least one pixel wide.
	TailThickness float64
}

const (
	defaultCapSteps      = 270 - 90
	defaultTailStart     = 110
	defaultTailEnd       = 160
	defaultTailThickness = 0.1
)

// NewMasker returns a Masker with the default bubble geometry.
func NewMasker() *Masker {
	return &Masker{
		CapSteps:      defaultCapSteps,
		TailStart:     defaultTailStart,
		TailEnd:       defaultTailEnd,
		TailThickness: defaultTailThickness,
	}
}

// noRow marks the sweep state before the first step.
const noRow = -1

// padDirection records on which side of the tail centre line the tail is
// thickened. It is decided on the first tail step and then kept.
type padDirection int

const (
	undecided padDirection = iota
	rightward
	leftward
)

func (d padDirection) sign() int {
	if d == leftward {
		return -1
	}
	return 1
}

// Apply makes the cap and tail regions of g transparent.
// The cap covers the top height×percentage rows of the image.
//
// Percentages above 1 are not clamped; rows below the grid are skipped
// without being visited. All arguments are checked before the first pixel is
// changed, so on error g is left untouched.
func (m *Masker) Apply(g *Grid, percentage float64) error {
	if g == nil || g.width < 1 || g.height < 1 {
		return ErrInvalidDimensions
	}
	if err := m.check(); err != nil {
		return err
	}

	occupyHeight := float64(g.height) * percentage
	if !(occupyHeight >= 1) {
		return fmt.Errorf("%w: %d rows at %g give a %g row cap",
			ErrImageTooSmall, g.height, percentage, occupyHeight)
	}

	Logger().Debug("cutting speech bubble",
		"width", g.width,
		"height", g.height,
		"occupyHeight", occupyHeight,
		"tailThickness", m.thickness(g.width))

	m.sweepCap(g, occupyHeight)
	m.sweepTail(g, occupyHeight)
	return nil
}

func (m *Masker) check() error {
	switch {
	case m.CapSteps < 2:
		return fmt.Errorf("%w: %d cap steps", ErrInvalidTail, m.CapSteps)
	case m.TailEnd <= m.TailStart:
		return fmt.Errorf("%w: tail window [%d, %d)", ErrInvalidTail, m.TailStart, m.TailEnd)
	case !(m.TailThickness > 0):
		return fmt.Errorf("%w: tail thickness %g", ErrInvalidTail, m.TailThickness)
	}
	return nil
}

// thickness returns the tail width in pixels.
func (m *Masker) thickness(width int) int {
	return int(math.Ceil(float64(width) * m.TailThickness))
}

// sweepCap clears the half-ellipse hanging from the top edge.
//
// Each step clears the span [left, right) between the rows reached by the
// previous step and the current step, so that no holes remain where the
// boundary moves by more than one row per degree.
func (m *Masker) sweepCap(g *Grid, occupyHeight float64) {
	prevRow := noRow
	for i := range m.CapSteps / 2 {
		left, right, row := capStep(g.width, occupyHeight, i)
		for column := left; column < right; column++ {
			if prevRow == noRow {
				g.Clear(row, column)
				continue
			}
			for r := prevRow; r < min(row, g.height); r++ {
				g.Clear(r, column)
			}
		}
		prevRow = row
	}
}

// sweepTail clears the tail arc to the right of the image centre.
//
// The gap between consecutive steps is filled from the new row up to the
// previous one. For the default window the tail rows shrink from step to
// step; if they grow instead, the range is empty and only the first step
// contributes at that column.
func (m *Masker) sweepTail(g *Grid, occupyHeight float64) {
	thickness := m.thickness(g.width)
	dir := undecided
	prevRow := noRow
	for i := m.TailStart; i < m.TailEnd; i++ {
		column, row := m.tailStep(g.width, occupyHeight, i)

		if dir == undecided {
			// thicken towards the left if the stroke would leave the image
			if column+thickness > g.width {
				dir = leftward
			} else {
				dir = rightward
			}
		}

		for pad := range thickness {
			c := column + pad*dir.sign()
			if prevRow == noRow {
				g.Clear(row, c)
				continue
			}
			for r := row; r < min(prevRow, g.height); r++ {
				g.Clear(r, c)
			}
		}
		prevRow = row
	}
}

// capStep returns the cleared column span [left, right) and the boundary
// row for step i of the cap sweep.
func capStep(width int, occupyHeight float64, i int) (left, right, row int) {
	p := capPoint(width, occupyHeight, i)
	left = max(0, int(math.Floor(p.X)))
	right = width - left
	row = max(0, absInt(int(math.Floor(p.Y)))-1)
	return left, right, row
}

// tailStep returns the centre column and the row of step i of the tail
// sweep.
func (m *Masker) tailStep(width int, occupyHeight float64, i int) (column, row int) {
	p := m.tailPoint(width, occupyHeight, i)
	column = int(math.Floor(p.X))
	row = max(0, int(math.Floor(p.Y))-1)
	return column, row
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func deg2rad(x float64) float64 {
	return x * (math.Pi / 180)
}
