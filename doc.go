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

// Package sff reads fax documents in the Structured Fax File (SFF) format.
//
// SFF is the file format used by CAPI 2.0 for received and transmitted
// faxes.  A file consists of a document header, followed by a sequence of
// pages.  Each page consists of a page header and a sequence of records,
// one record per scanline, with the scanlines compressed using the
// one-dimensional Modified Huffman code (see package seehuhn.de/go/sff/mh).
//
// Use Read to decode all pages of a file:
//
//	data, err := os.ReadFile("fax.sff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := sff.Read(data, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, page := range doc.Pages {
//	    for y, runs := range page.Rows() {
//	        ... draw the black runs on scanline y ...
//	    }
//	}
//
// Decoded pages describe every scanline by the list of its black runs.
// Package seehuhn.de/go/sff/raster converts pages into images.
//
// Errors in the file structure abort decoding and are reported as a
// *MalformedFileError.  Scanlines with invalid MH data are treated as
// blank; these, and pages where the page header disagrees with the page
// data, are reported in Document.Warnings.
package sff
