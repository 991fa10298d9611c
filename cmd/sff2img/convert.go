// seehuhn.de/go/sff - a library for reading SFF fax files
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
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"seehuhn.de/go/sff/raster"
)

type convertCmd struct {
	Format      string `short:"f" enum:"png,tiff,bmp" default:"png" help:"Output image format (${enum})."`
	Out         string `short:"o" default:"." help:"Output directory, or - to write the first page to stdout."`
	DoubleLines bool   `help:"Repeat every scanline, for normal resolution pages."`
	Workers     int    `short:"j" default:"1" help:"Number of pages decoded in parallel."`

	Files []string `arg:"" help:"SFF files to convert."`
}

var errTerminal = errors.New("refusing to write image data to a terminal")

func (c *convertCmd) Run(logger *slog.Logger) error {
	opt := &raster.Options{DoubleLines: c.DoubleLines}

	for _, fname := range c.Files {
		doc, err := loadDocument(fname, c.Workers, logger)
		if err != nil {
			return err
		}
		images := raster.RenderAll(doc, opt)

		if c.Out == "-" {
			if len(images) == 0 {
				return fmt.Errorf("%s: no pages", fname)
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return errTerminal
			}
			return encodeImage(os.Stdout, images[0], c.Format)
		}

		base := baseName(fname)
		for i, img := range images {
			out := filepath.Join(c.Out, fmt.Sprintf("%s-%d.%s", base, i+1, c.Format))
			err := writeImage(out, img, c.Format)
			if err != nil {
				return err
			}
			logger.Debug("page written", "file", out,
				"width", img.Rect.Dx(), "height", img.Rect.Dy())
		}
	}
	return nil
}

// writeImage atomically replaces the file fname with the encoded image.
func writeImage(fname string, img image.Image, format string) error {
	o, err := renameio.TempFile("", fname)
	if err != nil {
		return err
	}
	defer o.Cleanup()

	err = encodeImage(o, img, format)
	if err != nil {
		return err
	}
	return o.CloseAtomicallyReplace()
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
