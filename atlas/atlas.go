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

// Package atlas moves glyph images in and out of a font atlas.
//
// [Split] cuts the glyphs described by an FNT file out of the atlas image,
// and [Combine] performs the reverse operation, assembling a new atlas from
// one image per glyph.  Glyphs which cover no pixels, like the space
// character, are skipped by both operations.
//
// This package does not access the file system.  Encoding and decoding of
// image files is left to the caller.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"seehuhn.de/go/fntsplit/fnt"
)

// Options can be used to control Split and Combine.
// A nil *Options is valid and selects the default values.
type Options struct {
	// Workers is the maximal number of glyph images processed
	// concurrently.  If this is zero, runtime.GOMAXPROCS(0) is used.
	// The result does not depend on the number of workers.
	Workers int

	// FoldCase makes letters whose file names differ only in case, like
	// "A" and "a", count as a name conflict.  This is needed when the
	// glyph images are stored on a case-insensitive file system.
	FoldCase bool
}

func (opt *Options) workers() int {
	if opt == nil || opt.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return opt.Workers
}

// A Sprite is the image of a single glyph.
type Sprite struct {
	// Name is the file name for the glyph image, without extension.
	// See [FileName].
	Name string

	Glyph fnt.Glyph

	// Image is an *image.NRGBA, except for 16-bit atlases of type
	// *image.NRGBA64, *image.RGBA64 or *image.Gray16, where the sprite has
	// the same type as the atlas.
	Image image.Image
}

// Source provides the glyph images for Combine.
type Source interface {
	// Open returns the image stored under the given name.
	// The name is the result of FileName for the glyph's letter.
	Open(name string) (image.Image, error)
}

// Split cuts the glyphs of the font f out of the atlas image img.
//
// One Sprite is returned for each glyph of non-zero area, in the order in
// which the glyphs appear in the FNT file.  Glyph coordinates are relative
// to the top-left corner of img.  Pixel values are copied without loss.
//
// If a glyph extends beyond the atlas, a *GeometryError is returned.  If two
// glyphs map to the same file name, or if a glyph has an empty letter, a
// *ResourceError is returned.  No sprites are returned in case of an error.
func Split(img image.Image, f *fnt.Font, opt *Options) ([]Sprite, error) {
	jobs, err := plan(f, opt)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rects := make([]image.Rectangle, len(jobs))
	for k, job := range jobs {
		r := job.glyph.Rect().Add(bounds.Min)
		if !r.In(bounds) {
			return nil, &GeometryError{
				Name:   job.name,
				Glyph:  *job.glyph,
				Rect:   r,
				Bounds: bounds,
			}
		}
		rects[k] = r
	}

	res := make([]Sprite, len(jobs))
	var eg errgroup.Group
	eg.SetLimit(opt.workers())
	for k, job := range jobs {
		eg.Go(func() error {
			res[k] = Sprite{
				Name:  job.name,
				Glyph: *job.glyph,
				Image: crop(img, rects[k]),
			}
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Combine assembles a new atlas for the font f from the glyph images
// provided by src.
//
// The returned image has the size given by the scaleW and scaleH fields of
// the FNT file.  Each glyph image is copied into the atlas with its top-left
// corner at the glyph's (x, y) position.  Pixels not covered by any glyph
// are transparent.  If glyph areas overlap, later glyphs overwrite earlier
// ones.
//
// If a glyph image cannot be opened, a *ResourceError is returned.  If a
// glyph image does not fit into the atlas, a *GeometryError is returned.
// No image is returned in case of an error.
func Combine(f *fnt.Font, src Source, opt *Options) (*image.NRGBA, error) {
	jobs, err := plan(f, opt)
	if err != nil {
		return nil, err
	}

	// Decoding is done concurrently, placement happens in glyph order.
	imgs := make([]*image.NRGBA, len(jobs))
	errs := make([]error, len(jobs))
	var eg errgroup.Group
	eg.SetLimit(opt.workers())
	for k, job := range jobs {
		eg.Go(func() error {
			img, err := src.Open(job.name)
			if err != nil {
				errs[k] = &ResourceError{Name: job.name, Err: err}
				return nil
			}
			imgs[k] = imaging.Clone(img)
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return nil, err
	}

	size := f.Size()
	canvas := imaging.New(size.X, size.Y, color.Transparent)
	bounds := canvas.Bounds()
	for k, job := range jobs {
		if errs[k] != nil {
			return nil, errs[k]
		}

		img := imgs[k]
		r := img.Bounds().Add(image.Pt(int(job.glyph.X), int(job.glyph.Y)))
		if !r.In(bounds) {
			return nil, &GeometryError{
				Name:   job.name,
				Glyph:  *job.glyph,
				Rect:   r,
				Bounds: bounds,
			}
		}
		paste(canvas, img, r.Min)
	}

	return canvas, nil
}

type job struct {
	name  string
	glyph *fnt.Glyph
}

// plan lists the glyphs which cover at least one pixel, together with the
// corresponding file names.
func plan(f *fnt.Font, opt *Options) ([]job, error) {
	key := func(name string) string { return name }
	if opt != nil && opt.FoldCase {
		key = cases.Fold().String
	}

	var jobs []job
	used := make(map[string]*fnt.Glyph)
	for i := range f.Page.Glyphs {
		g := &f.Page.Glyphs[i]
		if g.IsEmpty() {
			continue
		}

		name := FileName(g.Letter)
		if name == "" {
			return nil, &ResourceError{
				Name: name,
				Err:  fmt.Errorf("glyph %d: %w", g.ID, ErrEmptyName),
			}
		}
		if other, seen := used[key(name)]; seen {
			return nil, &ResourceError{
				Name: name,
				Err:  fmt.Errorf("glyphs %d and %d: %w", other.ID, g.ID, ErrDuplicateName),
			}
		}
		used[key(name)] = g

		jobs = append(jobs, job{name: name, glyph: g})
	}
	return jobs, nil
}

// crop returns a copy of the area r of img, with the origin moved to (0, 0).
// 16-bit images keep their pixel type, all other images are converted to
// NRGBA.
func crop(img image.Image, r image.Rectangle) image.Image {
	size := image.Rect(0, 0, r.Dx(), r.Dy())
	switch src := img.(type) {
	case *image.NRGBA64:
		dst := image.NewNRGBA64(size)
		copyRows(dst.Pix, dst.Stride, src.Pix[src.PixOffset(r.Min.X, r.Min.Y):], src.Stride, 8*r.Dx(), r.Dy())
		return dst
	case *image.RGBA64:
		dst := image.NewRGBA64(size)
		copyRows(dst.Pix, dst.Stride, src.Pix[src.PixOffset(r.Min.X, r.Min.Y):], src.Stride, 8*r.Dx(), r.Dy())
		return dst
	case *image.Gray16:
		dst := image.NewGray16(size)
		copyRows(dst.Pix, dst.Stride, src.Pix[src.PixOffset(r.Min.X, r.Min.Y):], src.Stride, 2*r.Dx(), r.Dy())
		return dst
	default:
		return imaging.Crop(img, r)
	}
}

// copyRows copies n rows of rowLen bytes each.
func copyRows(dst []byte, dstStride int, src []byte, srcStride, rowLen, n int) {
	for y := 0; y < n; y++ {
		copy(dst[y*dstStride:y*dstStride+rowLen], src[y*srcStride:y*srcStride+rowLen])
	}
}

// paste copies src into dst, with the top-left corner of src at p.
// The target area must be contained in dst.  Pixel values are copied
// unchanged, so fully transparent pixels keep their colour.
func paste(dst, src *image.NRGBA, p image.Point) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	copyRows(dst.Pix[dst.PixOffset(p.X, p.Y):], dst.Stride,
		src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride, 4*b.Dx(), b.Dy())
}

var (
	// ErrEmptyName indicates a glyph which covers pixels in the atlas but
	// has an empty letter.
	ErrEmptyName = errors.New("empty file name")

	// ErrDuplicateName indicates that two glyphs map to the same file name.
	ErrDuplicateName = errors.New("file name used by more than one glyph")
)
