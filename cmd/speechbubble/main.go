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

// Command speechbubble cuts a speech bubble out of the top of an image.
//
// Usage:
//
//	speechbubble [flags] input output [percentage]
//
// The input may be a local file or an http(s) URL. The output format is
// taken from the extension of the output file name (png, jpg or bmp).
// The percentage gives the fraction of the image height covered by the
// bubble; it defaults to 0.3 and is limited to 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/bubble"
	"seehuhn.de/go/bubble/codec"
)

func main() {
	var (
		percentage = flag.Float64("p", bubble.DefaultPercentage, "fraction of the image height covered by the bubble")
		quality    = flag.Int("quality", codec.DefaultQuality, "JPEG quality (1-100)")
		timeout    = flag.Duration("timeout", 30*time.Second, "timeout for downloading the input image")
		verbose    = flag.Bool("v", false, "log debug information to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] input output [percentage]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("speechbubble: ")

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		flag.Usage()
		os.Exit(2)
	}
	if len(args) == 3 {
		*percentage = parsePercentage(args[2])
	}

	if *verbose {
		bubble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err := run(ctx, args[0], args[1], clampPercentage(*percentage), &codec.Options{Quality: *quality})
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, input, output string, percentage float64, opts *codec.Options) error {
	// check the output name before doing any work
	format, err := codec.FormatFromPath(output)
	if err != nil {
		return err
	}

	g, err := codec.Open(ctx, input)
	if err != nil {
		return err
	}

	if err := bubble.Apply(g, percentage); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if err := codec.WriteFile(output, format, g, opts); err != nil {
		return err
	}
	bubble.Logger().Info("wrote image", "file", output, "format", format)
	return nil
}

// parsePercentage interprets the optional percentage argument.
// Surrounding white space is ignored and integers may be given in hex,
// octal or binary notation ("0x10", "0o7", "0b1"). Values which cannot be
// parsed, and zero, select the default.
func parsePercentage(s string) float64 {
	s = strings.TrimSpace(s)
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n, ierr := strconv.ParseInt(s, 0, 64)
		if ierr != nil {
			return bubble.DefaultPercentage
		}
		p = float64(n)
	}
	if p == 0 || math.IsNaN(p) {
		return bubble.DefaultPercentage
	}
	return p
}

func clampPercentage(p float64) float64 {
	return min(p, 1)
}
