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

// Sff2img converts the pages of SFF fax files into image files.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Verbose bool `short:"v" help:"Show debug messages."`

	Convert convertCmd `cmd:"" help:"Write every page of an SFF file as an image."`
	Info    infoCmd    `cmd:"" help:"Show the headers and page statistics of SFF files."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("sff2img"),
		kong.Description("Convert SFF fax files to images."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
