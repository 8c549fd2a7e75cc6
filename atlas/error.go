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

package atlas

import (
	"fmt"
	"image"

	"seehuhn.de/go/fntsplit/fnt"
)

// GeometryError indicates that a glyph does not fit into the atlas (when
// splitting) or into the canvas (when combining).
type GeometryError struct {
	Name   string
	Glyph  fnt.Glyph
	Rect   image.Rectangle // the area the glyph would occupy
	Bounds image.Rectangle // the available area
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("glyph %d (%q): area %v exceeds image bounds %v",
		err.Glyph.ID, err.Name, err.Rect, err.Bounds)
}

// ResourceError indicates that the image for a glyph could not be used.
// The most common cause is a missing image file when combining.
type ResourceError struct {
	Name string
	Err  error
}

func (err *ResourceError) Error() string {
	return fmt.Sprintf("glyph image %q: %v", err.Name, err.Err)
}

func (err *ResourceError) Unwrap() error {
	return err.Err
}
