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

// Package raster converts decoded SFF pages into images.
package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/sff"
)

// Palette is the palette of the rendered images.  Index 0 is white, index 1
// is black.
var Palette = color.Palette{
	color.Gray{Y: 0xFF},
	color.Gray{Y: 0x00},
}

// Options control how pages are rendered.
type Options struct {
	// DoubleLines repeats every scanline.  This gives approximately
	// square pixels for pages in normal resolution (98 lines per inch).
	DoubleLines bool
}

// Render draws the page onto a white canvas of size Width x Height.
// Black runs outside the canvas are clipped.
func Render(p *sff.Page, opt *Options) *image.Paletted {
	scale := 1
	if opt != nil && opt.DoubleLines {
		scale = 2
	}

	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height*scale), Palette)
	for y, runs := range p.Rows() {
		if y < 0 || y >= p.Height {
			continue
		}
		for k := range scale {
			row := img.Pix[(y*scale+k)*img.Stride:][:p.Width]
			for _, run := range runs {
				x0 := max(run.X, 0)
				x1 := min(run.End(), p.Width)
				for x := x0; x < x1; x++ {
					row[x] = 1
				}
			}
		}
	}
	return img
}

// RenderAll renders all pages of a document.
func RenderAll(doc *sff.Document, opt *Options) []*image.Paletted {
	res := make([]*image.Paletted, len(doc.Pages))
	for i, p := range doc.Pages {
		res[i] = Render(p, opt)
	}
	return res
}
