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

// Package mh decodes scanlines which are compressed with the one-dimensional
// Modified Huffman (MH) code of ITU-T T.4, in the bit order used by SFF
// fax files.
//
// Each scanline is decoded independently.  The result is the list of black
// runs on the line; white runs are implied by the gaps between them.
package mh

import (
	"fmt"
)

// Run is a horizontal run of black pixels, starting at column X.
type Run struct {
	X      int
	Length int
}

// End returns the first column after the run.
func (r Run) End() int {
	return r.X + r.Length
}

// Decoder decodes MH coded scanlines.
//
// A Decoder holds no state between calls to DecodeLine, so a single
// Decoder can be used concurrently.
type Decoder struct {
	// Columns is the line width in pixels.  If positive, decoded runs are
	// clipped to the range [0, Columns).
	Columns int

	// Extended enables the makeup codes for runs of 1792 to 2560 pixels.
	// These are only valid on lines wider than 1728 pixels.
	Extended bool
}

// NewDecoder returns a decoder for lines of the given width.
func NewDecoder(columns int) *Decoder {
	return &Decoder{
		Columns:  columns,
		Extended: columns > MaxLineWidth,
	}
}

// DecodeError is returned by DecodeLine if the input contains a bit
// sequence which is not a valid code word.
type DecodeError struct {
	// Pos is the bit offset of the invalid code word within the record.
	Pos int

	// White is true if a white run was expected.
	White bool
}

func (err *DecodeError) Error() string {
	color := "black"
	if err.White {
		color = "white"
	}
	return fmt.Sprintf("mh: invalid %s code at bit %d", color, err.Pos)
}

// DecodeLine decodes a single MH coded scanline.
//
// If the record contains an invalid code word, the whole line is discarded:
// DecodeLine then returns an empty list of runs, together with a
// *DecodeError.
func (d *Decoder) DecodeLine(record []byte) ([]Run, error) {
	w := window{data: record}
	w.fill()

	runs := []Run{}
	isWhite := true
	xpos := 0
	start := 0
	length := 0
	for len(w.data) > 0 || w.current != 0 {
		run, width, ok := d.match(isWhite, &w)
		if !ok {
			return []Run{}, &DecodeError{Pos: w.consumed, White: isWhite}
		}
		w.consume(width)

		if length == 0 {
			start = xpos
		}
		xpos += run
		length += run
		if run > MaxTerminating {
			continue
		}

		if !isWhite {
			runs = d.appendRun(runs, start, length)
		}
		length = 0
		isWhite = !isWhite
	}

	return runs, nil
}

// match finds the shortest code word at the start of the window.
func (d *Decoder) match(isWhite bool, w *window) (run, width int, ok bool) {
	table := blackTable
	if isWhite {
		table = whiteTable
	}

	for width = minCodeWidth; width <= maxCodeWidth && width <= w.validBits; width++ {
		bits := w.peek(width)
		if run, ok = table.lookup(width, bits); ok {
			return run, width, true
		}
		if d.Extended {
			if run, ok = extendedTable.lookup(width, bits); ok {
				return run, width, true
			}
		}
	}
	return 0, 0, false
}

// appendRun adds a black run to the list, merging it with a directly
// preceding run and clipping it to the line width.
func (d *Decoder) appendRun(runs []Run, start, length int) []Run {
	end := start + length
	if d.Columns > 0 {
		end = min(end, d.Columns)
	}
	if end <= start {
		return runs
	}

	if n := len(runs); n > 0 && runs[n-1].End() == start {
		runs[n-1].Length = end - runs[n-1].X
		return runs
	}
	return append(runs, Run{X: start, Length: end - start})
}

// window holds up to 32 bits of bit-reversed input, MSB aligned.
// While input bytes remain, at least 16 bits are valid.
type window struct {
	data      []byte
	current   uint32
	validBits int
	consumed  int
}

func (w *window) fill() {
	for w.validBits < 16 && len(w.data) > 0 {
		w.current |= uint32(reverseTable[w.data[0]]) << (24 - w.validBits)
		w.validBits += 8
		w.data = w.data[1:]
	}
}

func (w *window) peek(n int) uint16 {
	return uint16(w.current >> (32 - n))
}

func (w *window) consume(n int) {
	w.current <<= n
	w.validBits -= n
	w.consumed += n
	w.fill()
}
