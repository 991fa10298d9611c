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

package sfftest

import (
	"encoding/binary"
)

// Doc describes a synthetic SFF file.
type Doc struct {
	// PageCount is stored in the document header.  If zero, the number of
	// pages is used.  Use a negative value to store 0.
	PageCount int

	// Additional is user data between the document header and the first
	// page header.
	Additional []byte

	Pages []Page

	// NoTrailer omits the end-of-document marker after the last page.
	NoTrailer bool
}

// Page describes one page of a synthetic SFF file.
type Page struct {
	ResolutionVertical   uint8
	ResolutionHorizontal uint8
	LineLength           uint16
	PageLength           uint16

	// Additional is user data between the page header and the page data.
	Additional []byte

	// Records is the encoded page data.  Use the Literal, Skip and
	// BlankMarker functions to construct this.
	Records []byte
}

// Bytes returns the binary representation of the SFF file.
func (d *Doc) Bytes() []byte {
	pageCount := d.PageCount
	if pageCount == 0 {
		pageCount = len(d.Pages)
	} else if pageCount < 0 {
		pageCount = 0
	}

	buf := make([]byte, 20, 1024)
	buf = append(buf, d.Additional...)

	var pageStart []int
	for _, p := range d.Pages {
		pageStart = append(pageStart, len(buf))
		buf = append(buf, make([]byte, 18)...)
		buf = append(buf, p.Additional...)
		buf = append(buf, p.Records...)
	}
	docEnd := len(buf)
	if !d.NoTrailer {
		buf = append(buf, 254, 0)
	}

	for i, p := range d.Pages {
		h := buf[pageStart[i]:]
		h[0] = 254
		h[1] = byte(16 + len(p.Additional))
		h[2] = p.ResolutionVertical
		h[3] = p.ResolutionHorizontal
		h[4] = 0 // MH coding
		h[5] = 0
		binary.LittleEndian.PutUint16(h[6:], p.LineLength)
		binary.LittleEndian.PutUint16(h[8:], p.PageLength)
		if i > 0 {
			binary.LittleEndian.PutUint32(h[10:], uint32(pageStart[i-1]))
		}
		if i+1 < len(pageStart) {
			binary.LittleEndian.PutUint32(h[14:], uint32(pageStart[i+1]))
		}
	}

	var lastPage int
	if len(pageStart) > 0 {
		lastPage = pageStart[len(pageStart)-1]
	}
	binary.LittleEndian.PutUint32(buf[0:], 0x66666653) // "Sfff"
	buf[4] = 1
	buf[5] = 0
	binary.LittleEndian.PutUint16(buf[6:], 0)
	binary.LittleEndian.PutUint16(buf[8:], uint16(pageCount))
	binary.LittleEndian.PutUint16(buf[10:], uint16(20+len(d.Additional)))
	binary.LittleEndian.PutUint32(buf[12:], uint32(lastPage))
	binary.LittleEndian.PutUint32(buf[16:], uint32(docEnd))

	return buf
}

// Literal returns a record holding the given MH coded scanline.  Records
// longer than 216 bytes use the escaped length form.
func Literal(data []byte) []byte {
	var res []byte
	if len(data) >= 1 && len(data) <= 216 {
		res = append(res, byte(len(data)))
	} else {
		res = append(res, 0, byte(len(data)), byte(len(data)>>8))
	}
	return append(res, data...)
}

// Skip returns a record which skips n blank scanlines, for 1 <= n <= 37.
func Skip(n int) []byte {
	if n < 1 || n > 37 {
		panic("sfftest: invalid skip count")
	}
	return []byte{byte(216 + n)}
}

// BlankMarker returns the non-standard record 255, 0, which readers treat
// as a single blank scanline.
func BlankMarker() []byte {
	return []byte{255, 0}
}

// Records concatenates records.
func Records(records ...[]byte) []byte {
	var res []byte
	for _, r := range records {
		res = append(res, r...)
	}
	return res
}
