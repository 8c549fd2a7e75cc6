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

// Package workspace connects the FNT parser and the atlas operations to
// the file system.
//
// A workspace consists of a source folder which holds the ".fnt" file and
// the atlas image, a folder with one image per glyph, and a destination
// folder for recombined atlases.  All folders must exist before any of the
// functions in this package are called.
package workspace

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// additional atlas formats; png, jpeg, gif, bmp and tiff are
	// registered by the imaging package
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/fntsplit/atlas"
	"seehuhn.de/go/fntsplit/fnt"
)

// Options controls Split and Combine.
// A nil *Options is valid and selects the default values.
type Options struct {
	// Workers is the maximal number of glyph images processed
	// concurrently.  If this is zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// SpriteExt is the file name extension of the glyph images, including
	// the leading dot.  The default is ".png".
	SpriteExt string

	// WriteFont makes Combine write an updated copy of the ".fnt" file
	// next to the new atlas.
	WriteFont bool

	// FoldCase treats glyph file names which differ only in case as a
	// conflict.  Set this if the glyph images are stored on a
	// case-insensitive file system.
	FoldCase bool

	// Log receives progress messages.  If this is nil, the standard
	// logrus logger is used.
	Log logrus.FieldLogger
}

func (opt *Options) atlasOptions() *atlas.Options {
	if opt == nil {
		return nil
	}
	return &atlas.Options{Workers: opt.Workers, FoldCase: opt.FoldCase}
}

func (opt *Options) workers() int {
	if opt == nil || opt.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return opt.Workers
}

func (opt *Options) spriteExt() string {
	if opt == nil || opt.SpriteExt == "" {
		return ".png"
	}
	return opt.SpriteExt
}

func (opt *Options) log() logrus.FieldLogger {
	if opt == nil || opt.Log == nil {
		return logrus.StandardLogger()
	}
	return opt.Log
}

// FindFont returns the name of the ".fnt" file in dir.
// It is an error if dir contains no or more than one such file.
func FindFont(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".fnt") {
			continue
		}
		names = append(names, e.Name())
	}

	switch len(names) {
	case 0:
		return "", fmt.Errorf("%s: %w", dir, ErrNoFont)
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("%s: %w: %s", dir, ErrManyFonts, strings.Join(names, ", "))
	}
}

// Split reads the ".fnt" file and the atlas image from origDir and writes
// one image per glyph into spritesDir.
func Split(origDir, spritesDir string, opt *Options) error {
	if err := checkDirs(origDir, spritesDir); err != nil {
		return err
	}

	fname, f, err := readFont(origDir)
	if err != nil {
		return err
	}
	log := opt.log().WithField("font", fname)

	atlasName := filepath.Join(origDir, filepath.FromSlash(f.Page.File))
	img, err := imaging.Open(atlasName)
	if err != nil {
		return &atlas.ResourceError{Name: atlasName, Err: err}
	}
	if size := img.Bounds().Size(); size != f.Size() {
		log.Warnf("atlas is %dx%d, but the font declares %dx%d",
			size.X, size.Y, f.Common.ScaleW, f.Common.ScaleH)
	}

	sprites, err := atlas.Split(img, f, opt.atlasOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	ext := opt.spriteExt()
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	eg.SetLimit(opt.workers())
	for _, s := range sprites {
		eg.Go(func() error {
			out := filepath.Join(spritesDir, s.Name+ext)
			err := writeFile(out, func(w io.Writer) error {
				return imaging.Encode(w, s.Image, format)
			})
			if err != nil {
				return &atlas.ResourceError{Name: out, Err: err}
			}
			log.WithFields(logrus.Fields{
				"glyph": s.Glyph.ID,
				"file":  out,
			}).Debug("wrote glyph")
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"count": len(sprites),
		"dir":   spritesDir,
	}).Info("split atlas")
	return nil
}

// Combine reads the ".fnt" file from origDir and the glyph images from
// spritesDir, and writes the assembled atlas into destDir.  The atlas is
// stored in PNG format, under the name of the ".fnt" file with the
// extension replaced by ".png".
//
// If an error occurs, no atlas file is written.
func Combine(origDir, spritesDir, destDir string, opt *Options) error {
	if err := checkDirs(origDir, spritesDir, destDir); err != nil {
		return err
	}

	fname, f, err := readFont(origDir)
	if err != nil {
		return err
	}
	log := opt.log().WithField("font", fname)

	src := &DirSource{Dir: spritesDir, Ext: opt.spriteExt()}
	canvas, err := atlas.Combine(f, src, opt.atlasOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	stem := strings.TrimSuffix(fname, filepath.Ext(fname))
	atlasName := stem + ".png"
	out := filepath.Join(destDir, atlasName)
	err = writeFile(out, func(w io.Writer) error {
		return imaging.Encode(w, canvas, imaging.PNG)
	})
	if err != nil {
		return &atlas.ResourceError{Name: out, Err: err}
	}
	log.WithField("file", out).Info("combined atlas")

	if opt != nil && opt.WriteFont {
		updated := *f
		updated.Page.File = atlasName
		fntOut := filepath.Join(destDir, fname)
		err = writeFile(fntOut, updated.Write)
		if err != nil {
			return err
		}
		log.WithField("file", fntOut).Info("wrote font description")
	}

	return nil
}

// DirSource loads glyph images from a directory.
type DirSource struct {
	Dir string

	// Ext is the file name extension, including the leading dot.
	Ext string
}

// Open implements the [atlas.Source] interface.
func (s *DirSource) Open(name string) (image.Image, error) {
	return imaging.Open(filepath.Join(s.Dir, name+s.Ext))
}

func readFont(dir string) (string, *fnt.Font, error) {
	fname, err := FindFont(dir)
	if err != nil {
		return "", nil, err
	}
	fd, err := os.Open(filepath.Join(dir, fname))
	if err != nil {
		return "", nil, err
	}
	defer fd.Close()

	f, err := fnt.Read(fd)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fname, f, nil
}

func checkDirs(dirs ...string) error {
	for _, dir := range dirs {
		fi, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s: %w", dir, ErrNotDir)
		}
	}
	return nil
}

// writeFile replaces the file name with the output of write.  Either the
// complete new contents are stored on disk, or the file is left unchanged.
func writeFile(name string, write func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(name,
		renameio.WithTempDir(filepath.Dir(name)),
		renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	err = write(pf)
	if err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

var (
	// ErrNoFont indicates that the source folder contains no ".fnt" file.
	ErrNoFont = errors.New("no .fnt file found")

	// ErrManyFonts indicates that the source folder contains more than one
	// ".fnt" file.
	ErrManyFonts = errors.New("more than one .fnt file")

	// ErrNotDir indicates that a path which should be a folder is not.
	ErrNotDir = errors.New("not a directory")
)
