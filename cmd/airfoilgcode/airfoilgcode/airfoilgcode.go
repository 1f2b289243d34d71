// Package airfoilgcode provides the functionality for the
// airfoilgcode binary as a library.
package airfoilgcode

import (
	"os"

	"github.com/paulhankin/hotwire/airfoil"
	"github.com/paulhankin/hotwire/gcode"
	"github.com/paulhankin/hotwire/paths"
)

type Config struct {
	Dir     string // directory holding the vector files
	Out     string // gcode output file
	Preview string // if set, an svg of the cross-sections is written here

	Scale    float64
	Min, Max paths.Vec2
	FeedRate float64
	Move     string

	MaxSamples int

	// Warn receives warnings as they're found. May be nil.
	Warn func(error)
}

// DefaultConfig returns the configuration the cutter was built around.
func DefaultConfig() *Config {
	g := gcode.DefaultConfig()
	return &Config{
		Dir:      ".",
		Out:      "OUTPUT.txt",
		Scale:    5,
		Min:      g.Bounds.Min,
		Max:      g.Bounds.Max,
		FeedRate: g.FeedRate,
		Move:     g.Move,
	}
}

// Convert reads the eight vector files in cfg.Dir and writes the cutting
// program to cfg.Out. Fatal problems are returned as *airfoil.Error.
func Convert(cfg *Config) (rerr error) {
	// The output is opened first so an unwritable target fails before
	// any input is read.
	gcodeOut, err := os.Create(cfg.Out)
	if err != nil {
		return &airfoil.Error{Kind: airfoil.WriteError, Name: cfg.Out, Err: err}
	}
	defer func() {
		if err := gcodeOut.Close(); err != nil && rerr == nil {
			rerr = &airfoil.Error{Kind: airfoil.WriteError, Name: cfg.Out, Err: err}
		}
	}()

	loader := &airfoil.Loader{
		Dir:        cfg.Dir,
		Scalar:     float32(cfg.Scale),
		MaxSamples: cfg.MaxSamples,
		Warn:       cfg.Warn,
	}
	set, err := loader.Load()
	if err != nil {
		return err
	}
	if err := set.Check(); err != nil && cfg.Warn != nil {
		cfg.Warn(err)
	}

	gcodeWriter := gcode.NewWriter(gcodeOut, &gcode.Config{
		FeedRate: cfg.FeedRate,
		Move:     cfg.Move,
		Bounds:   paths.Bounds{Min: cfg.Min, Max: cfg.Max},
	})
	writeProgram(gcodeWriter, set)
	if err := gcodeWriter.Flush(); err != nil {
		return &airfoil.Error{Kind: airfoil.WriteError, Name: cfg.Out, Err: err}
	}

	if cfg.Preview != "" {
		if err := writePreview(cfg.Preview, set); err != nil {
			return &airfoil.Error{Kind: airfoil.WriteError, Name: cfg.Preview, Err: err}
		}
	}
	return nil
}

func writeProgram(w *gcode.Writer, set *airfoil.Set) {
	w.Preamble()
	for h := airfoil.Upper; h < airfoil.NumHalves; h++ {
		if h == airfoil.Lower {
			w.Transition()
		}
		n := set.Span(h)
		for i := 0; i < n; i++ {
			w.Cut(set.Point(airfoil.Root, h, i), set.Point(airfoil.Tip, h, i))
		}
	}
	w.Postamble()
}
