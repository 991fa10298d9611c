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

package raster

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/ccitt"

	"seehuhn.de/go/sff"
	"seehuhn.de/go/sff/internal/sfftest"
	"seehuhn.de/go/sff/mh"
)

func TestRender(t *testing.T) {
	page := &sff.Page{
		Width:  8,
		Height: 3,
		Lines: map[int][]sff.Run{
			0: {{X: 0, Length: 2}, {X: 5, Length: 1}},
			2: {{X: 6, Length: 10}}, // clipped at the right edge
			7: {{X: 0, Length: 8}},  // outside the page
		},
	}

	img := Render(page, nil)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 3 {
		t.Fatalf("wrong image size %v", b)
	}

	want := []uint8{
		1, 1, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 1, 1,
	}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Errorf("wrong pixels (-want +got):\n%s", diff)
	}
}

func TestRenderDoubleLines(t *testing.T) {
	page := &sff.Page{
		Width:  4,
		Height: 2,
		Lines: map[int][]sff.Run{
			1: {{X: 1, Length: 2}},
		},
	}

	img := Render(page, &Options{DoubleLines: true})
	want := []uint8{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
	}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Errorf("wrong pixels (-want +got):\n%s", diff)
	}
}

// TestCompatibility checks that decoding and rendering an SFF page gives the
// same bitmap as golang.org/x/image/ccitt gives for the same scanlines.
func TestCompatibility(t *testing.T) {
	const width = 1728
	lines := [][]mh.Run{
		{},
		{{X: 10, Length: 5}},
		{{X: 0, Length: 64}, {X: 100, Length: 1000}},
		{{X: 1700, Length: 28}},
		{{X: 0, Length: width}},
		{{X: 1, Length: 1}, {X: 3, Length: 1}, {X: 5, Length: 63}, {X: 200, Length: 65}},
	}
	for y := range 40 {
		x := (y * 37) % 1400
		lines = append(lines, []mh.Run{{X: x, Length: 2*y + 1}, {X: x + 3*y + 10, Length: 129}})
	}

	var records []byte
	g3 := &sfftest.BitWriter{}
	for _, runs := range lines {
		records = append(records, sfftest.Literal(sfftest.EncodeLine(runs, width))...)
		g3.WriteWord(sfftest.EOL)
		g3.WriteLine(runs, width)
	}
	for range 6 {
		g3.WriteWord(sfftest.EOL)
	}

	file := &sfftest.Doc{
		Pages: []sfftest.Page{{
			LineLength: width,
			PageLength: uint16(len(lines)),
			Records:    records,
		}},
	}
	doc, err := sff.Read(file.Bytes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Warnings) > 0 {
		t.Fatalf("unexpected warnings: %v", doc.Warnings)
	}
	img := Render(doc.Pages[0], nil)

	r := ccitt.NewReader(bytes.NewReader(g3.Bytes()), ccitt.MSB, ccitt.Group3,
		width, len(lines), &ccitt.Options{})
	want, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	// pack the image into rows of bits, 1 for white
	got := make([]byte, len(lines)*width/8)
	for y := range len(lines) {
		for x := range width {
			if img.Pix[y*img.Stride+x] == 0 {
				got[y*width/8+x/8] |= 1 << (7 - x%8)
			}
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("golang.org/x/image/ccitt produced a different bitmap (-want +got):\n%s", diff)
	}
}
