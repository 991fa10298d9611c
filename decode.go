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
	"slices"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/sff/mh"
)

// decodePages decodes the scanlines of all pages.  Pages are independent
// of each other, so they can be decoded concurrently; every page uses its
// own decoder.
func decodePages(pages []*encodedPage, workers int) ([]*Page, []error) {
	res := make([]*Page, len(pages))
	warnings := make([][]error, len(pages))

	if workers < 2 || len(pages) < 2 {
		for i, p := range pages {
			res[i], warnings[i] = decodePage(p)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, p := range pages {
			g.Go(func() error {
				res[i], warnings[i] = decodePage(p)
				return nil
			})
		}
		_ = g.Wait()
	}

	return res, slices.Concat(warnings...)
}

func decodePage(p *encodedPage) (*Page, []error) {
	width := int(p.header.LineLength)
	dec := mh.NewDecoder(width)

	page := &Page{
		Header: *p.header,
		Width:  width,
		Height: p.height,
		Lines:  make(map[int][]Run, len(p.lines)),
	}

	var warnings []error
	for _, line := range p.lines {
		runs, err := dec.DecodeLine(line.data)
		if err != nil {
			warnings = append(warnings, &LineError{Page: p.index, Line: line.y, Err: err})
		}
		page.Lines[line.y] = runs
	}

	if declared := int(p.header.PageLength); declared > 0 && declared != p.height {
		warnings = append(warnings, &ConsistencyWarning{
			Page:     p.index,
			Declared: declared,
			Computed: p.height,
		})
	}

	return page, warnings
}
