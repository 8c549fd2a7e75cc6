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
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/fntsplit/tools/internal/buildinfo"
	"seehuhn.de/go/fntsplit/tools/internal/profile"
	"seehuhn.de/go/fntsplit/workspace"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fntsplit \u2014 split and recombine bitmap font atlases\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("fntsplit"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fntsplit split [options]\n")
		fmt.Fprintf(os.Stderr, "  fntsplit combine [options]\n")
		fmt.Fprintf(os.Stderr, "  fntsplit info [options] <file.fnt>\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  split     cut the atlas into one image per glyph\n")
		fmt.Fprintf(os.Stderr, "  combine   assemble a new atlas from the glyph images\n")
		fmt.Fprintf(os.Stderr, "  info      show the contents of a .fnt file\n\n")
		fmt.Fprintf(os.Stderr, "Use \"fntsplit <command> -h\" for the options of each command.\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var cmd func([]string) error
	switch flag.Arg(0) {
	case "split":
		cmd = runSplit
	case "combine":
		cmd = runCombine
	case "info":
		cmd = runInfo
	default:
		fmt.Fprintf(os.Stderr, "fntsplit: unknown command %q\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}

	if err := cmd(flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are accepted by all commands.
type commonFlags struct {
	verbose    bool
	workers    int
	cpuprofile string
	memprofile string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "show a message for every glyph")
	fs.IntVar(&c.workers, "j", 0, "process at most `n` glyph images concurrently (0 = number of CPUs)")
	fs.StringVar(&c.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&c.memprofile, "memprofile", "", "write memory profile to `file`")
}

func (c *commonFlags) options() *workspace.Options {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return &workspace.Options{
		Workers: c.workers,
		Log:     log,
	}
}

// newFlagSet returns a flag set for the given command, with the common
// flags registered and a usage function in the style of the main usage.
func newFlagSet(name, args, desc string, c *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	c.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "fntsplit %s \u2014 %s\n", name, desc)
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("fntsplit"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fntsplit %s [options]%s\n\n", name, args)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}

func runSplit(args []string) error {
	var c commonFlags
	fs := newFlagSet("split", "", "cut the atlas into one image per glyph", &c)
	orig := fs.String("o", "orig", "`folder` with the .fnt file and the atlas image")
	sprites := fs.String("s", "split", "`folder` to write the glyph images to")
	fold := fs.Bool("i", false, "reject glyph names which differ only in case")
	fs.Parse(args)
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}

	stop, err := profile.Start(c.cpuprofile, c.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	opt := c.options()
	opt.FoldCase = *fold
	return workspace.Split(*orig, *sprites, opt)
}

func runCombine(args []string) error {
	var c commonFlags
	fs := newFlagSet("combine", "", "assemble a new atlas from the glyph images", &c)
	orig := fs.String("o", "orig", "`folder` with the .fnt file")
	sprites := fs.String("s", "split", "`folder` with the glyph images")
	dest := fs.String("d", "dest", "`folder` to write the new atlas to")
	writeFont := fs.Bool("fnt", false, "also write a .fnt file which refers to the new atlas")
	fold := fs.Bool("i", false, "reject glyph names which differ only in case")
	fs.Parse(args)
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}

	stop, err := profile.Start(c.cpuprofile, c.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	opt := c.options()
	opt.WriteFont = *writeFont
	opt.FoldCase = *fold
	err = workspace.Combine(*orig, *sprites, *dest, opt)
	if err != nil {
		return err
	}
	fmt.Printf("sprites: %s, dest: %s\n", *sprites, *dest)
	return nil
}
