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
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/sff/mh"
)

// ReaderOptions changes how SFF files are read.  The zero value, or a nil
// pointer, selects the defaults.
type ReaderOptions struct {
	// Workers is the number of pages which are decoded concurrently.
	// Values smaller than 2 decode all pages on the calling goroutine.
	Workers int

	// Logger, if set, receives a warning for every scanline which could
	// not be decoded and for every page with an inconsistent header.
	Logger *slog.Logger
}

// Document is a decoded SFF file.
type Document struct {
	Header DocumentHeader
	Pages  []*Page

	// Warnings lists the problems which were found while decoding the
	// document, in document order.  The elements are of type *LineError
	// and *ConsistencyWarning.
	Warnings []error
}

// Decode reads an SFF file from r and decodes all pages.
func Decode(r io.Reader, opt *ReaderOptions) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Read(data, opt)
}

// Read decodes all pages of the SFF file contained in data.
//
// Structural problems in the file are reported as a *MalformedFileError
// and no document is returned.  Scanlines which cannot be decoded are
// treated as blank and are listed in Document.Warnings.
func Read(data []byte, opt *ReaderOptions) (*Document, error) {
	if opt == nil {
		opt = &ReaderOptions{}
	}

	c := newCursor(data)
	header, err := readDocumentHeader(c)
	if err != nil {
		return nil, err
	}

	var encoded []*encodedPage
	for !c.EOF() {
		if header.PageCount > 0 && len(encoded) >= int(header.PageCount) {
			break
		}
		if c.Remaining() == 1 && data[c.Pos()] == endOfPage {
			// The document ends with the end-of-page marker of the last page.
			break
		}

		p, err := readPage(c, len(encoded))
		if err != nil {
			return nil, err
		}
		if p == nil {
			break
		}
		encoded = append(encoded, p)
	}

	pages, warnings := decodePages(encoded, opt.Workers)
	if opt.Logger != nil {
		logWarnings(opt.Logger, warnings)
		for _, p := range pages {
			opt.Logger.Debug("page decoded",
				"width", p.Width, "height", p.Height, "lines", len(p.Lines))
		}
	}

	doc := &Document{
		Header:   *header,
		Pages:    pages,
		Warnings: warnings,
	}
	return doc, nil
}

// encodedPage holds the undecoded scanlines of one page.
type encodedPage struct {
	index  int
	header *PageHeader
	lines  []encodedLine
	height int
}

type encodedLine struct {
	y    int
	data []byte
}

// readPage reads a page header and the following page records.  Blank
// scanlines in their canonical encoding are skipped.  If the cursor is at
// the end-of-document marker, nil is returned.
func readPage(c *cursor, index int) (*encodedPage, error) {
	start := c.Pos()
	header, err := readPageHeader(c)
	if err != nil || header == nil {
		return nil, err
	}

	width := int(header.LineLength)
	blank, ok := mh.BlankLine(width)
	if !ok {
		return nil, &MalformedFileError{
			Pos: int64(start + 6),
			Err: fmt.Errorf("%w %d", ErrUnsupportedLineLength, width),
		}
	}

	p := &encodedPage{
		index:  index,
		header: header,
	}
	y := 0
records:
	for !c.EOF() {
		tp, n, err := readRecordHeader(c)
		if err != nil {
			return nil, err
		}

		switch tp {
		case recordEndOfPage:
			// The marker is the first byte of the next page header.
			c.SeekPos(c.Pos() - 1)
			break records
		case recordSkip:
			y += n
		case recordData:
			data, err := c.ReadBytes(n)
			if err != nil {
				return nil, err
			}
			if !bytes.Equal(data, blank) {
				p.lines = append(p.lines, encodedLine{y: y, data: data})
			}
			y++
		}
	}
	p.height = y

	return p, nil
}

func logWarnings(logger *slog.Logger, warnings []error) {
	for _, w := range warnings {
		var lineErr *LineError
		var lengthErr *ConsistencyWarning
		switch {
		case errors.As(w, &lineErr):
			logger.Warn("cannot decode scanline",
				"page", lineErr.Page+1, "line", lineErr.Line, "err", lineErr.Err)
		case errors.As(w, &lengthErr):
			logger.Warn("page length mismatch",
				"page", lengthErr.Page+1,
				"declared", lengthErr.Declared,
				"computed", lengthErr.Computed)
		default:
			logger.Warn(w.Error())
		}
	}
}
