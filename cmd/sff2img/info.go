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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"

	"seehuhn.de/go/sff"
)

type infoCmd struct {
	Files []string `arg:"" help:"SFF files to inspect."`
}

func (c *infoCmd) Run(logger *slog.Logger) error {
	for _, fname := range c.Files {
		doc, err := loadDocument(fname, 1, logger)
		if err != nil {
			return err
		}
		printInfo(os.Stdout, fname, doc)
	}
	return nil
}

func printInfo(w io.Writer, fname string, doc *sff.Document) {
	h := &doc.Header
	fmt.Fprintf(w, "%s: SFF version %d, %d pages declared, %d pages found\n",
		fname, h.Version, h.PageCount, len(doc.Pages))
	if len(h.Additional) > 0 {
		fmt.Fprintf(w, "  %d bytes of user data\n", len(h.Additional))
	}

	for i, p := range doc.Pages {
		res := "unknown resolution"
		dpi, ok1 := p.Header.HorizontalDPI()
		lpi, ok2 := p.Header.VerticalLPI()
		if ok1 && ok2 {
			res = fmt.Sprintf("%dx%d dpi", dpi, lpi)
		}
		fmt.Fprintf(w, "  page %d: %dx%d, %s, %d black pixels, blake3 %s\n",
			i+1, p.Width, p.Height, res, p.BlackPixels(), pageDigest(p))
	}
	if n := len(doc.Warnings); n > 0 {
		fmt.Fprintf(w, "  %d warnings\n", n)
	}
}

// pageDigest returns the hex encoded BLAKE3 hash of the page contents.
// The hash covers the page size and the black runs on all scanlines, so
// that files which encode the same image in different ways have the same
// digest.
func pageDigest(p *sff.Page) string {
	buf := binary.LittleEndian.AppendUint32(nil, uint32(p.Width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Height))
	for y, runs := range p.Rows() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(y))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(runs)))
		for _, run := range runs {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(run.X))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(run.Length))
		}
	}
	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
