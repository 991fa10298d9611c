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

package sff

import (
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/sff/mh"
)

// Run is a horizontal run of black pixels on a scanline.
type Run = mh.Run

// Page is a decoded page of an SFF file.
type Page struct {
	Header PageHeader

	// Width is the page width in pixels.
	Width int

	// Height is the number of scanlines found in the page data.
	Height int

	// Lines maps scanline indices to the black runs on the line.  Each
	// list is sorted and the runs are non-overlapping.  Blank lines may be
	// missing from the map or may map to an empty list.
	Lines map[int][]Run
}

// Row returns the black runs on scanline y.
func (p *Page) Row(y int) []Run {
	return p.Lines[y]
}

// Rows iterates over the non-blank scanlines of the page, in order of
// increasing y.
func (p *Page) Rows() iter.Seq2[int, []Run] {
	return func(yield func(int, []Run) bool) {
		for _, y := range slices.Sorted(maps.Keys(p.Lines)) {
			runs := p.Lines[y]
			if len(runs) == 0 {
				continue
			}
			if !yield(y, runs) {
				return
			}
		}
	}
}

// BlackPixels returns the total number of black pixels on the page.
func (p *Page) BlackPixels() int {
	total := 0
	for _, runs := range p.Lines {
		for _, run := range runs {
			total += run.Length
		}
	}
	return total
}
