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

// Package fnt reads and writes the text variant of the BMFont ".fnt" format.
//
// An FNT file describes a single texture atlas (a "page") together with the
// position of every glyph inside that atlas.  A typical file looks like
// this:
//
//	info face="Pusab" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1
//	common lineHeight=40 base=32 scaleW=512 scaleH=512 pages=1 packed=0
//	page id=0 file="atlas.png"
//	chars count=1
//	char id=65 x=10 y=20 width=30 height=40 xoffset=0 yoffset=0 xadvance=32 page=0 chnl=15 letter="A"
//
// Only single-page files are supported.  Kerning information following the
// char section is ignored.
package fnt

import (
	"image"

	"seehuhn.de/go/geom/rect"
)

// Font is the in-memory representation of an FNT file.
// A Font is not modified after it has been parsed.
type Font struct {
	Info   Info
	Common Common
	Page   Page
}

// Info holds the fields of the "info" line.
type Info struct {
	Face     string
	Size     int32
	Bold     uint32
	Italic   uint32
	Charset  string
	Unicode  uint32
	StretchH uint32
	Smooth   uint32
	AA       uint32

	// Padding gives the padding around each glyph, in the order
	// top, right, bottom, left.
	Padding [4]int32

	// Spacing gives the horizontal and vertical spacing between glyphs.
	Spacing [2]int32
}

// Common holds the fields of the "common" line.
type Common struct {
	LineHeight uint32
	Base       uint32
	ScaleW     uint32 // atlas width in pixels, always > 0
	ScaleH     uint32 // atlas height in pixels, always > 0
	Pages      uint32
	Packed     uint32
}

// Page describes the atlas image and the glyphs it contains.
type Page struct {
	ID   uint32
	File string

	// Glyphs has exactly as many elements as the "chars count=..." line
	// declares.
	Glyphs []Glyph
}

// Glyph describes one character of the font.
type Glyph struct {
	ID       uint32
	X, Y     uint32
	Width    uint32
	Height   uint32
	XOffset  int32
	YOffset  int32
	XAdvance uint32
	Channel  uint32

	// Letter is the character represented by the glyph, as written in the
	// file.
	Letter string
}

// IsEmpty reports whether the glyph covers no pixels in the atlas.
func (g *Glyph) IsEmpty() bool {
	return g.Width == 0 || g.Height == 0
}

// Rect returns the area covered by the glyph, in atlas pixel coordinates.
func (g *Glyph) Rect() image.Rectangle {
	x0 := int(g.X)
	y0 := int(g.Y)
	return image.Rect(x0, y0, x0+int(g.Width), y0+int(g.Height))
}

// Size returns the atlas dimensions declared in the common line.
func (f *Font) Size() image.Point {
	return image.Pt(int(f.Common.ScaleW), int(f.Common.ScaleH))
}

// BBox returns the union of the glyph boxes, as they are placed relative to
// the origin on the baseline.  The y-axis points upwards.
// Glyphs which cover no pixels are ignored.  If no glyph covers any pixels,
// the zero rectangle is returned.
func (f *Font) BBox() rect.Rect {
	var bbox rect.Rect
	first := true
	base := float64(f.Common.Base)
	for i := range f.Page.Glyphs {
		g := &f.Page.Glyphs[i]
		if g.IsEmpty() {
			continue
		}

		top := base - float64(g.YOffset)
		box := rect.Rect{
			LLx: float64(g.XOffset),
			LLy: top - float64(g.Height),
			URx: float64(g.XOffset) + float64(g.Width),
			URy: top,
		}
		if first {
			bbox = box
			first = false
			continue
		}
		bbox.LLx = min(bbox.LLx, box.LLx)
		bbox.LLy = min(bbox.LLy, box.LLy)
		bbox.URx = max(bbox.URx, box.URx)
		bbox.URy = max(bbox.URy, box.URy)
	}
	return bbox
}
