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

// Package codec reads images into pixel grids and writes grids back out
// as PNG, JPEG or BMP files.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output image format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota + 1
	JPEG
	BMP
)

// Formats lists the supported output formats.
var Formats = []Format{PNG, JPEG, BMP}

var (
	// ErrNoExtension is returned for file names without an extension.
	ErrNoExtension = errors.New("no file extension")

	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpg"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file name extension for f, including the dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat converts a format name like "png" or "jpg" into a Format.
// The name is case insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q (try %s)", ErrUnsupportedFormat, name, supported())
}

// FormatFromPath determines the format from the extension of a file name.
func FormatFromPath(name string) (Format, error) {
	ext := filepath.Ext(name)
	if len(ext) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return ParseFormat(ext[1:])
}

func supported() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
