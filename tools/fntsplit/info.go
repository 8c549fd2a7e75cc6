// seehuhn.de/go/fntsplit - split and recombine bitmap font atlases
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

package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/fntsplit/atlas"
	"seehuhn.de/go/fntsplit/fnt"
	"seehuhn.de/go/fntsplit/tools/internal/profile"
)

func runInfo(args []string) error {
	var c commonFlags
	fs := newFlagSet("info", " <file.fnt>", "show the contents of a .fnt file", &c)
	byID := fs.Bool("sort", false, "list the glyphs by character code instead of file order")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	stop, err := profile.Start(c.cpuprofile, c.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	fd, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer fd.Close()
	f, err := fnt.Read(fd)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	width := 0
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	if isTerm {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil {
			width = w
		}
	}

	glyphs := f.Page.Glyphs
	if *byID {
		glyphs = slices.Clone(glyphs)
		slices.SortStableFunc(glyphs, func(a, b fnt.Glyph) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	return showInfo(os.Stdout, f, glyphs, isTerm, width)
}

// showInfo prints a summary of f, followed by one line for each glyph.
// If width is positive, glyph lines are truncated to this many characters.
func showInfo(w io.Writer, f *fnt.Font, glyphs []fnt.Glyph, header bool, width int) error {
	size := f.Size()
	bbox := f.BBox()
	fmt.Fprintf(w, "face:   %q, size %d\n", f.Info.Face, f.Info.Size)
	fmt.Fprintf(w, "atlas:  %s, %dx%d\n", f.Page.File, size.X, size.Y)
	fmt.Fprintf(w, "glyphs: %d\n", len(glyphs))
	fmt.Fprintf(w, "bbox:   [%g %g %g %g]\n", bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
	fmt.Fprintln(w)

	if header {
		fmt.Fprintf(w, "%-7s %-6s %-19s %-10s %s\n", "id", "letter", "rect", "file", "name")
	}
	for i := range glyphs {
		g := &glyphs[i]

		file := "-"
		if !g.IsEmpty() {
			file = atlas.FileName(g.Letter)
		}
		r := g.Rect()
		rect := fmt.Sprintf("%d,%d+%dx%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		line := fmt.Sprintf("%-7d %-6q %-19s %-10s %s",
			g.ID, g.Letter, rect, file, letterName(g.Letter))

		if width > 0 && utf8.RuneCountInString(line) > width {
			line = string([]rune(line)[:width])
		}
		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}
	return nil
}

// letterName returns the Unicode names of the characters in letter.
func letterName(letter string) string {
	var names []string
	for _, r := range letter {
		name := runenames.Name(r)
		if name == "" {
			name = fmt.Sprintf("U+%04X", r)
		}
		names = append(names, name)
	}
	return strings.Join(names, " + ")
}
