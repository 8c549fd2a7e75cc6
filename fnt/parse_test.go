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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const pusab = `info face="Pusab" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1
common lineHeight=40 base=32 scaleW=512 scaleH=512 pages=1 packed=0
page id=0 file="atlas.png"
chars count=1
char id=65 x=10 y=20 width=30 height=40 xoffset=0 yoffset=0 xadvance=32 page=0 chnl=15 letter="A"
`

func TestParseExample(t *testing.T) {
	f, err := Parse(pusab)
	if err != nil {
		t.Fatal(err)
	}

	expected := &Font{
		Info: Info{
			Face:     "Pusab",
			Size:     32,
			Unicode:  1,
			StretchH: 100,
			Smooth:   1,
			AA:       1,
			Spacing:  [2]int32{1, 1},
		},
		Common: Common{
			LineHeight: 40,
			Base:       32,
			ScaleW:     512,
			ScaleH:     512,
			Pages:      1,
		},
		Page: Page{
			File: "atlas.png",
			Glyphs: []Glyph{
				{
					ID:       65,
					X:        10,
					Y:        20,
					Width:    30,
					Height:   40,
					XAdvance: 32,
					Channel:  15,
					Letter:   "A",
				},
			},
		},
	}
	if d := cmp.Diff(expected, f); d != "" {
		t.Error(d)
	}

	r := f.Page.Glyphs[0].Rect()
	if r.Min.X != 10 || r.Min.Y != 20 || r.Dx() != 30 || r.Dy() != 40 {
		t.Errorf("unexpected glyph rectangle %v", r)
	}
}

func TestParseWhitespace(t *testing.T) {
	body := "info  face=\"Big Font\"\tsize=-12 bold=1 italic=0 charset=\"ANSI\" unicode=0 stretchH=100 smooth=0 aa=2 padding=1,2,3,4 spacing=-1,0 outline=0\r\n" +
		"\r\n" +
		"common lineHeight=20 base=16 scaleW=64 scaleH=32 pages=1 packed=0 alphaChnl=0 redChnl=4\r\n" +
		"   page id=0   file=\"big.png\"   \r\n" +
		"chars count=2\r\n" +
		"char id=32 x=0 y=0 width=0 height=0 xoffset=-1 yoffset=-2 xadvance=8 page=0 chnl=15 letter=\" \"\r\n" +
		"\n" +
		"char letter=\"<\" chnl=15 page=0 xadvance=9 yoffset=3 xoffset=1 height=10 width=7 y=5 x=4 id=60\r\n" +
		"kernings count=1\r\n" +
		"kerning first=32 second=60 amount=-1\r\n"

	f, err := Parse("\uFEFF" + body)
	if err != nil {
		t.Fatal(err)
	}

	if f.Info.Face != "Big Font" || f.Info.Size != -12 || f.Info.AA != 2 {
		t.Errorf("unexpected info %+v", f.Info)
	}
	if f.Info.Padding != [4]int32{1, 2, 3, 4} || f.Info.Spacing != [2]int32{-1, 0} {
		t.Errorf("unexpected padding/spacing %v %v", f.Info.Padding, f.Info.Spacing)
	}
	if f.Page.File != "big.png" {
		t.Errorf("unexpected page file %q", f.Page.File)
	}

	expected := []Glyph{
		{ID: 32, XOffset: -1, YOffset: -2, XAdvance: 8, Channel: 15, Letter: " "},
		{ID: 60, X: 4, Y: 5, Width: 7, Height: 10, XOffset: 1, YOffset: 3, XAdvance: 9, Channel: 15, Letter: "<"},
	}
	if d := cmp.Diff(expected, f.Page.Glyphs); d != "" {
		t.Error(d)
	}
	if !f.Page.Glyphs[0].IsEmpty() || f.Page.Glyphs[1].IsEmpty() {
		t.Error("wrong IsEmpty result")
	}

	// leading blank lines are allowed as well
	_, err = Parse("\n  \t\r\n" + body)
	if err != nil {
		t.Error(err)
	}
}

func TestCharCountMismatch(t *testing.T) {
	head := `info face="Pusab" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1
common lineHeight=40 base=32 scaleW=512 scaleH=512 pages=1 packed=0
page id=0 file="atlas.png"
`
	char := "char id=65 x=10 y=20 width=30 height=40 xoffset=0 yoffset=0 xadvance=32 page=0 chnl=15 letter=\"A\"\n"

	cases := []struct {
		name string
		body string
	}{
		{"too few", head + "chars count=3\n" + char + char},
		{"too few before kernings", head + "chars count=2\n" + char + "kernings count=0\n"},
		{"too many", head + "chars count=1\n" + char + char},
		{"too many after blank", head + "chars count=1\n" + char + "\n\n" + char},
		{"none", head + "chars count=1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.body)
			var gErr *GrammarError
			if !errors.As(err, &gErr) {
				t.Fatalf("expected GrammarError, got %v", err)
			}
			if gErr.Section != "char" {
				t.Errorf("wrong section %q in %q", gErr.Section, err)
			}
		})
	}

	_, err := Parse(head + "chars count=2\n" + char + char)
	if err != nil {
		t.Error(err)
	}
}

func TestMalformedField(t *testing.T) {
	info := `info face="Pusab" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1` + "\n"
	common := "common lineHeight=40 base=32 scaleW=512 scaleH=512 pages=1 packed=0\n"
	page := `page id=0 file="atlas.png"` + "\n"
	tail := "chars count=0\n"

	cases := []struct {
		name    string
		body    string
		line    int
		section string
		field   string
	}{
		{"non-numeric", info + strings.Replace(common, "scaleW=512", "scaleW=abc", 1) + page + tail, 2, "common", "scaleW"},
		{"zero width", info + strings.Replace(common, "scaleW=512", "scaleW=0", 1) + page + tail, 2, "common", "scaleW"},
		{"zero height", info + strings.Replace(common, "scaleH=512", "scaleH=0", 1) + page + tail, 2, "common", "scaleH"},
		{"negative unsigned", info + strings.Replace(common, "base=32", "base=-1", 1) + page + tail, 2, "common", "base"},
		{"plus sign", strings.Replace(info, "size=32", "size=+32", 1) + common + page + tail, 1, "info", "size"},
		{"overflow", info + strings.Replace(common, "lineHeight=40", "lineHeight=4294967296", 1) + page + tail, 2, "common", "lineHeight"},
		{"missing field", info + strings.Replace(common, " packed=0", "", 1) + page + tail, 2, "common", "packed"},
		{"unquoted string", info + common + `page id=0 file=atlas.png` + "\n" + tail, 3, "page", "file"},
		{"quoted number", info + common + `page id="0" file="atlas.png"` + "\n" + tail, 3, "page", "id"},
		{"unterminated string", strings.Replace(info, `face="Pusab"`, `face="Pusab`, 1) + common + page + tail, 1, "info", "face"},
		{"text after quote", strings.Replace(info, `face="Pusab"`, `face="Pusab"x`, 1) + common + page + tail, 1, "info", "face"},
		{"short padding", strings.Replace(info, "padding=0,0,0,0", "padding=0,0,0", 1) + common + page + tail, 1, "info", "padding"},
		{"long spacing", strings.Replace(info, "spacing=1,1", "spacing=1,1,1", 1) + common + page + tail, 1, "info", "spacing"},
		{"empty list element", strings.Replace(info, "padding=0,0,0,0", "padding=0,,0,0", 1) + common + page + tail, 1, "info", "padding"},
		{"missing equals", info + "common lineHeight 40 base=32 scaleW=512 scaleH=512 pages=1 packed=0\n" + page + tail, 2, "common", "lineHeight"},
		{"duplicate", info + common + `page id=0 id=1 file="atlas.png"` + "\n" + tail, 3, "page", "id"},
		{"bad count", info + common + page + "chars count=x\n", 4, "chars", "count"},
		{"bad glyph", info + common + page + "chars count=1\nchar id=1 x=0 y=0 width=1 height=1 xoffset=0 yoffset=z xadvance=1 page=0 chnl=15 letter=\"a\"\n", 5, "char", "yoffset"},
		{"missing letter", info + common + page + "chars count=1\nchar id=1 x=0 y=0 width=1 height=1 xoffset=0 yoffset=0 xadvance=1 page=0 chnl=15\n", 5, "char", "letter"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse(c.body)
			if f != nil {
				t.Error("partial font returned")
			}
			var gErr *GrammarError
			if !errors.As(err, &gErr) {
				t.Fatalf("expected GrammarError, got %v", err)
			}
			if gErr.Line != c.line || gErr.Section != c.section || gErr.Field != c.field {
				t.Errorf("got line %d, section %q, field %q, expected %d, %q, %q (%s)",
					gErr.Line, gErr.Section, gErr.Field, c.line, c.section, c.field, err)
			}
		})
	}
}

func TestMissingSection(t *testing.T) {
	lines := strings.SplitAfter(pusab, "\n")
	sections := []string{"info", "common", "page", "chars"}
	for i, section := range sections {
		t.Run(section, func(t *testing.T) {
			// drop line i
			body := strings.Join(lines[:i], "") + strings.Join(lines[i+1:], "")
			_, err := Parse(body)
			var gErr *GrammarError
			if !errors.As(err, &gErr) {
				t.Fatalf("expected GrammarError, got %v", err)
			}
			if gErr.Section != section {
				t.Errorf("wrong section %q in %q", gErr.Section, err)
			}
			if !strings.Contains(err.Error(), "expected `"+section+"` line") {
				t.Errorf("unexpected message %q", err)
			}

			// truncate before line i
			_, err = Parse(strings.Join(lines[:i], ""))
			if !errors.As(err, &gErr) {
				t.Fatalf("expected GrammarError, got %v", err)
			}
			if gErr.Section != section || gErr.Line != 0 {
				t.Errorf("unexpected error %q", err)
			}
		})
	}
}

func TestRead(t *testing.T) {
	f1, err := Read(strings.NewReader(pusab))
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Parse(pusab)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f1, f2); d != "" {
		t.Error(d)
	}
}

func TestGrammarErrorMessage(t *testing.T) {
	err := &GrammarError{Line: 2, Section: "common", Field: "scaleW", Reason: `invalid unsigned integer "abc"`}
	expected := `fnt: line 2: common: scaleW: invalid unsigned integer "abc"`
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}

	err = &GrammarError{Section: "common", Reason: "expected `common` line, found end of input"}
	expected = "fnt: common: expected `common` line, found end of input"
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}
