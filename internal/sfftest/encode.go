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

// Package sfftest provides helpers for constructing SFF files in tests.
//
// The MH encoder in this package uses its own copy of the T.4 code tables,
// so that it can serve as an independent check for the decoder in package
// seehuhn.de/go/sff/mh.
package sfftest

import (
	"strings"

	"seehuhn.de/go/sff/mh"
)

// Code words for terminating runs 0, 1, ..., 63, followed by the makeup
// codes for 64, 128, ..., 1728.
const (
	whiteWords = "00110101 000111 0111 1000 1011 1100 1110 1111 10011 10100 00111 01000 001000 000011 110100 110101 " +
		"101010 101011 0100111 0001100 0001000 0010111 0000011 0000100 0101000 0101011 0010011 0100100 0011000 00000010 00000011 00011010 " +
		"00011011 00010010 00010011 00010100 00010101 00010110 00010111 00101000 00101001 00101010 00101011 00101100 00101101 00000100 00000101 00001010 " +
		"00001011 01010010 01010011 01010100 01010101 00100100 00100101 01011000 01011001 01011010 01011011 01001010 01001011 00110010 00110011 00110100 " +
		"11011 10010 010111 0110111 00110110 00110111 01100100 01100101 01101000 01100111 011001100 011001101 011010010 011010011 011010100 011010101 " +
		"011010110 011010111 011011000 011011001 011011010 011011011 010011000 010011001 010011010 011000 010011011"
	blackWords = "0000110111 010 11 10 011 0011 0010 00011 000101 000100 0000100 0000101 0000111 00000100 00000111 000011000 " +
		"0000010111 0000011000 0000001000 00001100111 00001101000 00001101100 00000110111 00000101000 00000010111 00000011000 000011001010 000011001011 000011001100 000011001101 000001101000 000001101001 " +
		"000001101010 000001101011 000011010010 000011010011 000011010100 000011010101 000011010110 000011010111 000001101100 000001101101 000011011010 000011011011 000001010100 000001010101 000001010110 000001010111 " +
		"000001100100 000001100101 000001010010 000001010011 000000100100 000000110111 000000111000 000000100111 000000101000 000001011000 000001011001 000000101011 000000101100 000001011010 000001100110 000001100111 " +
		"0000001111 000011001000 000011001001 000001011011 000000110011 000000110100 000000110101 0000001101100 0000001101101 0000001001010 0000001001011 0000001001100 0000001001101 0000001110010 0000001110011 0000001110100 " +
		"0000001110101 0000001110110 0000001110111 0000001010010 0000001010011 0000001010100 0000001010101 0000001011010 0000001011011 0000001100100 0000001100101"
	// makeup codes 1792, 1856, ..., 2560
	extendedWords = "00000001000 00000001100 00000001101 000000010010 000000010011 000000010100 000000010101 000000010110 000000010111 000000011100 000000011101 000000011110 000000011111"
)

var (
	whiteCodes    = strings.Fields(whiteWords)
	blackCodes    = strings.Fields(blackWords)
	extendedCodes = strings.Fields(extendedWords)
)

// EOL is the T.4 end-of-line code word.
const EOL = "000000000001"

// BitWriter collects code words, most significant bit first.
type BitWriter struct {
	buf       []byte
	byteVal   byte
	validBits int
}

// WriteWord appends a code word, given as a string of '0' and '1'
// characters.
func (w *BitWriter) WriteWord(word string) {
	for _, c := range word {
		if c == '1' {
			w.byteVal |= 1 << (7 - w.validBits)
		}
		w.validBits++
		if w.validBits == 8 {
			w.buf = append(w.buf, w.byteVal)
			w.byteVal = 0
			w.validBits = 0
		}
	}
}

// WriteRun appends the code words for a run of the given color.
func (w *BitWriter) WriteRun(length int, white bool) {
	codes := blackCodes
	if white {
		codes = whiteCodes
	}
	for length > mh.MaxLineWidth {
		k := min(length/64, 40) - 28 // 1792 is index 0
		if k < 0 {
			break
		}
		w.WriteWord(extendedCodes[k])
		length -= (k + 28) * 64
	}
	if length > mh.MaxTerminating {
		w.WriteWord(codes[63+length/64])
		length %= 64
	}
	w.WriteWord(codes[length])
}

// WriteLine appends the code words for a scanline of the given width,
// which is black exactly on the given runs.  The runs must be sorted and
// non-overlapping.
func (w *BitWriter) WriteLine(runs []mh.Run, columns int) {
	xpos := 0
	for _, run := range runs {
		w.WriteRun(run.X-xpos, true)
		w.WriteRun(run.Length, false)
		xpos = run.End()
	}
	if xpos < columns || len(runs) == 0 {
		w.WriteRun(columns-xpos, true)
	}
}

// Bytes returns the data written so far, with the last byte padded by
// zero bits.
func (w *BitWriter) Bytes() []byte {
	res := append([]byte{}, w.buf...)
	if w.validBits > 0 {
		res = append(res, w.byteVal)
	}
	return res
}

// EncodeLine returns the SFF record data for a scanline: the MH code words
// for the line, stored least significant bit first.
func EncodeLine(runs []mh.Run, columns int) []byte {
	w := &BitWriter{}
	w.WriteLine(runs, columns)
	return reverse(w.Bytes())
}

// EncodeWords returns SFF record data for an arbitrary sequence of code
// words.
func EncodeWords(words ...string) []byte {
	w := &BitWriter{}
	for _, word := range words {
		w.WriteWord(word)
	}
	return reverse(w.Bytes())
}

func reverse(data []byte) []byte {
	for i, b := range data {
		data[i] = mh.Reverse(b)
	}
	return data
}
