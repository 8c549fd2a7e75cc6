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

package fnt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Write writes the font in FNT text format.
// The output can be read back using [Read].
func (f *Font) Write(w io.Writer) error {
	err := f.check()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	info := &f.Info
	fmt.Fprintf(bw, "info face=\"%s\" size=%d bold=%d italic=%d charset=\"%s\" unicode=%d stretchH=%d smooth=%d aa=%d padding=%d,%d,%d,%d spacing=%d,%d\n",
		info.Face, info.Size, info.Bold, info.Italic, info.Charset, info.Unicode,
		info.StretchH, info.Smooth, info.AA,
		info.Padding[0], info.Padding[1], info.Padding[2], info.Padding[3],
		info.Spacing[0], info.Spacing[1])

	c := &f.Common
	fmt.Fprintf(bw, "common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=%d packed=%d\n",
		c.LineHeight, c.Base, c.ScaleW, c.ScaleH, c.Pages, c.Packed)

	fmt.Fprintf(bw, "page id=%d file=\"%s\"\n", f.Page.ID, f.Page.File)
	fmt.Fprintf(bw, "chars count=%d\n", len(f.Page.Glyphs))
	for i := range f.Page.Glyphs {
		g := &f.Page.Glyphs[i]
		fmt.Fprintf(bw, "char id=%-4d x=%-5d y=%-5d width=%-5d height=%-5d xoffset=%-5d yoffset=%-5d xadvance=%-5d page=%-2d chnl=%-2d letter=\"%s\"\n",
			g.ID, g.X, g.Y, g.Width, g.Height, g.XOffset, g.YOffset,
			g.XAdvance, f.Page.ID, g.Channel, g.Letter)
	}

	return bw.Flush()
}

// check verifies that the font can be represented in FNT format.
func (f *Font) check() error {
	if f.Common.ScaleW == 0 || f.Common.ScaleH == 0 {
		return errZeroArea
	}
	if err := checkString("face", f.Info.Face); err != nil {
		return err
	}
	if err := checkString("charset", f.Info.Charset); err != nil {
		return err
	}
	if err := checkString("file", f.Page.File); err != nil {
		return err
	}
	for i := range f.Page.Glyphs {
		if err := checkString("letter", f.Page.Glyphs[i].Letter); err != nil {
			return err
		}
	}
	return nil
}

func checkString(field, s string) error {
	if strings.ContainsAny(s, "\"\n") {
		return fmt.Errorf("fnt: %s %q cannot be written", field, s)
	}
	return nil
}

var errZeroArea = errors.New("fnt: atlas size must be positive")
