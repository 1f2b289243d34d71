// Package gcode writes programs for a 4-axis hot-wire foam cutter.
//
// The root carriage moves on X/Y and the tip carriage on U/V. A program
// cuts the upper half of the wing, resets the wire, cuts the lower half
// and resets the wire again:
//
//	w := gcode.NewWriter(out, &gcode.Config{...})
//	w.Preamble()
//	w.Cut(root, tip) // for each upper sample
//	w.Transition()
//	w.Cut(root, tip) // for each lower sample
//	w.Postamble()
//	err := w.Flush()
package gcode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/paulhankin/hotwire/paths"
)

// Config controls the moves a Writer emits.
type Config struct {
	FeedRate float64      // cutting feedrate, written as F%.2f
	Move     string       // command for cutting moves, usually G1
	Bounds   paths.Bounds // wire reset rectangle; U/V share X/Y limits
}

// DefaultConfig is the configuration the cutter was built around.
func DefaultConfig() *Config {
	return &Config{
		FeedRate: 0.6,
		Move:     "G1",
		Bounds: paths.Bounds{
			Min: paths.Vec2{-12, -12},
			Max: paths.Vec2{12, 12},
		},
	}
}

// A Writer emits a cutting program. Write errors are sticky: after the
// first failure nothing more is written, and Flush reports it.
type Writer struct {
	w   *bufio.Writer
	cfg Config
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, cfg *Config) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		cfg: *cfg,
	}
}

func (w *Writer) printf(f string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, f, args...)
}

// Preamble sets imperial absolute mode, parks both carriages and knocks
// the wire around the reset rectangle.
//
// The first wire reset sends X and Y to Min[1] and U and V to Min[0];
// the knock slew uses each axis' own limits.
func (w *Writer) Preamble() {
	min, max := w.cfg.Bounds.Min, w.cfg.Bounds.Max
	w.printf("(Initialize)\nG20\nG90\n\n")
	w.printf("(Wire reset)\nG0 X%f U%f\nG0 Y%f V%f\n\n", min[1], min[0], min[1], min[0])
	w.printf("(Knock slew)\n")
	w.printf("G0 X%f U%f\nG0 Y%f V%f\n", max[0], max[0], max[1], max[1])
	w.printf("G0 X%f U%f\nG0 Y%f V%f\n\n", min[0], min[0], min[1], min[1])
	w.printf("(Begin airfoil upper half)\n")
}

// Cut moves the root carriage to root and the tip carriage to tip in a
// single feed move.
func (w *Writer) Cut(root, tip paths.Vec2) {
	w.printf("%s F%.2f X%f Y%f U%f V%f\n", w.cfg.Move, w.cfg.FeedRate, root[0], root[1], tip[0], tip[1])
}

// wireReset starts with a feed move rather than a rapid, otherwise the
// wire cuts the airfoil in half on its way out.
func (w *Writer) wireReset() {
	min, max := w.cfg.Bounds.Min, w.cfg.Bounds.Max
	w.printf("(Wire reset)\n")
	w.printf("%s X%f U%f\nG0 Y%f V%f\n", w.cfg.Move, max[0], max[0], max[1], max[1])
	w.printf("G0 X%f U%f\nG0 Y%f V%f\n\n", min[0], min[0], min[1], min[1])
}

// Transition ends the upper half and starts the lower.
func (w *Writer) Transition() {
	w.printf("(End airfoil upper half)\n\n")
	w.wireReset()
	w.printf("(Begin airfoil lower half)\n")
}

// Postamble ends the lower half and the program. Nothing follows M30.
func (w *Writer) Postamble() {
	w.printf("(End airfoil lower half)\n\n")
	w.wireReset()
	w.printf("(Stop)\nM30")
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered output, and returns the first error
// encountered while writing.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}
