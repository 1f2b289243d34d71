// Command airfoilgcode turns the eight airfoil vector files in the
// working directory (ROOTUPPERX ... TIPLOWERY) into OUTPUT.txt, a G-code
// program for a 4-axis hot-wire foam cutter.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulhankin/hotwire/cmd/airfoilgcode/airfoilgcode"
	"github.com/paulhankin/hotwire/paths"
)

type flagSizeValue paths.Vec2

func (fs *flagSizeValue) String() string {
	return fmt.Sprintf("%.2f,%.2f", fs[0], fs[1])
}

func parseSizePart(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (fs *flagSizeValue) Set(s string) error {
	var err error
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("can't parse %q as x,y", s)
	}
	if fs[0], err = parseSizePart(parts[0]); err != nil {
		return err
	}
	if fs[1], err = parseSizePart(parts[1]); err != nil {
		return err
	}
	return nil
}

var config = airfoilgcode.DefaultConfig()

func init() {
	flag.StringVar(&config.Dir, "dir", config.Dir, "directory holding the vector files")
	flag.StringVar(&config.Out, "out", config.Out, "gcode output file")
	flag.StringVar(&config.Preview, "preview", "", "if set, write an svg of the cross-sections to this file")
	flag.Float64Var(&config.Scale, "scale", config.Scale, "multiply every coordinate by this")
	flag.Var((*flagSizeValue)(&config.Min), "min", "wire reset minimum x,y (also u,v)")
	flag.Var((*flagSizeValue)(&config.Max), "max", "wire reset maximum x,y (also u,v)")
	flag.Float64Var(&config.FeedRate, "feed", config.FeedRate, "cutting feed rate")
	flag.StringVar(&config.Move, "move", config.Move, "gcode command for cutting moves")
}

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(1)
	}

	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(flag.Args(), " "))
		flag.Usage()
		os.Exit(2)
	}

	config.Warn = func(err error) {
		fmt.Fprintf(os.Stderr, "* Note: %v\n", err)
	}
	if err := airfoilgcode.Convert(config); err != nil {
		fail("* Oops -- %v", err)
	}
}
