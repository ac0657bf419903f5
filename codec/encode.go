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

package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/bubble"
)

// DefaultQuality is the JPEG quality used when no options are given.
const DefaultQuality = 90

// Options controls the encoding of output images.
// A nil *Options is valid and means default values.
type Options struct {
	// Quality is the JPEG quality, from 1 to 100.
	// Zero means DefaultQuality.
	Quality int
}

func (o *Options) quality() int {
	if o == nil || o.Quality == 0 {
		return DefaultQuality
	}
	return min(max(o.Quality, 1), 100)
}

// Encode writes img to w in the given format.
//
// JPEG has no alpha channel, so transparent pixels come out black.
func Encode(w io.Writer, f Format, img image.Image, opts *Options) error {
	if g, ok := img.(*bubble.Grid); ok {
		img = g.Image()
	}

	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// WriteFile encodes img and writes it to the named file.
func WriteFile(name string, f Format, img image.Image, opts *Options) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(out, f, img, opts)
}
