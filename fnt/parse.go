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
	"fmt"
	"io"
	"strings"
)

// Read reads an FNT file from r.
func Read(r io.Reader) (*Font, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(body))
}

// Parse parses the text of an FNT file.
//
// The lines "info", "common", "page" and "chars" must appear in this order,
// followed by exactly as many "char" lines as the "count" field of the chars
// line specifies.  Blank lines are ignored, as are unknown fields and any
// other lines after the last char line.
//
// If the text is malformed, the returned error is a *GrammarError.
func Parse(text string) (*Font, error) {
	text = strings.TrimPrefix(text, "\uFEFF")
	p := &parser{lines: strings.Split(text, "\n")}

	res := &Font{}

	r, err := p.expect("info")
	if err != nil {
		return nil, err
	}
	res.Info, err = decodeInfo(r)
	if err != nil {
		return nil, err
	}

	r, err = p.expect("common")
	if err != nil {
		return nil, err
	}
	res.Common, err = decodeCommon(r)
	if err != nil {
		return nil, err
	}

	r, err = p.expect("page")
	if err != nil {
		return nil, err
	}
	res.Page.ID = r.Uint("id")
	res.Page.File = r.String("file")
	if r.err != nil {
		return nil, r.err
	}

	r, err = p.expect("chars")
	if err != nil {
		return nil, err
	}
	count := r.Uint("count")
	if r.err != nil {
		return nil, r.err
	}

	res.Page.Glyphs = make([]Glyph, 0, min(int(count), len(p.lines)-p.pos))
	for i := uint32(0); i < count; i++ {
		no, keyword, rest, ok := p.next()
		if !ok || keyword != "char" {
			return nil, &GrammarError{
				Line:    no,
				Section: "char",
				Reason:  fmt.Sprintf("expected %d char lines, found %d", count, i),
			}
		}
		r, err := newRecord(no, keyword, rest)
		if err != nil {
			return nil, err
		}
		g, err := decodeGlyph(r)
		if err != nil {
			return nil, err
		}
		res.Page.Glyphs = append(res.Page.Glyphs, g)
	}

	// Kerning data and other trailing lines are ignored, but extra char
	// lines mean that the count is wrong.
	for {
		no, keyword, _, ok := p.next()
		if !ok {
			break
		}
		if keyword == "char" {
			return nil, &GrammarError{
				Line:    no,
				Section: "char",
				Reason:  fmt.Sprintf("more than the declared %d char lines", count),
			}
		}
	}

	return res, nil
}

func decodeInfo(r *record) (Info, error) {
	info := Info{
		Face:     r.String("face"),
		Size:     r.Int("size"),
		Bold:     r.Uint("bold"),
		Italic:   r.Uint("italic"),
		Charset:  r.String("charset"),
		Unicode:  r.Uint("unicode"),
		StretchH: r.Uint("stretchH"),
		Smooth:   r.Uint("smooth"),
		AA:       r.Uint("aa"),
	}
	padding := r.Ints("padding", len(info.Padding))
	spacing := r.Ints("spacing", len(info.Spacing))
	if r.err != nil {
		return Info{}, r.err
	}
	copy(info.Padding[:], padding)
	copy(info.Spacing[:], spacing)
	return info, nil
}

func decodeCommon(r *record) (Common, error) {
	common := Common{
		LineHeight: r.Uint("lineHeight"),
		Base:       r.Uint("base"),
		ScaleW:     r.Positive("scaleW"),
		ScaleH:     r.Positive("scaleH"),
		Pages:      r.Uint("pages"),
		Packed:     r.Uint("packed"),
	}
	if r.err != nil {
		return Common{}, r.err
	}
	return common, nil
}

func decodeGlyph(r *record) (Glyph, error) {
	g := Glyph{
		ID:       r.Uint("id"),
		X:        r.Uint("x"),
		Y:        r.Uint("y"),
		Width:    r.Uint("width"),
		Height:   r.Uint("height"),
		XOffset:  r.Int("xoffset"),
		YOffset:  r.Int("yoffset"),
		XAdvance: r.Uint("xadvance"),
		Channel:  r.Uint("chnl"),
		Letter:   r.String("letter"),
	}
	// The "page" field is not needed, since only one page is supported.
	if r.err != nil {
		return Glyph{}, r.err
	}
	return g, nil
}

// parser splits the input into lines and hands them out one by one.
type parser struct {
	lines []string
	pos   int
}

// next returns the next non-blank line, split into the leading keyword
// and the remainder of the line.
func (p *parser) next() (no int, keyword, rest string, ok bool) {
	for p.pos < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.pos])
		p.pos++
		if line == "" {
			continue
		}
		k := strings.IndexFunc(line, isSpace)
		if k < 0 {
			return p.pos, line, "", true
		}
		return p.pos, line[:k], line[k:], true
	}
	return 0, "", "", false
}

// expect reads the next line and checks that it starts with the given
// keyword.
func (p *parser) expect(keyword string) (*record, error) {
	no, found, rest, ok := p.next()
	if !ok {
		return nil, &GrammarError{
			Section: keyword,
			Reason:  "expected `" + keyword + "` line, found end of input",
		}
	}
	if found != keyword {
		return nil, &GrammarError{
			Line:    no,
			Section: keyword,
			Reason:  "expected `" + keyword + "` line, found `" + found + "`",
		}
	}
	return newRecord(no, keyword, rest)
}
