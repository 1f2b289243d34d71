// Package airfoil holds the eight coordinate streams that describe
// the root and tip cross-sections of a wing, and reads them from disk.
package airfoil

import (
	"github.com/chewxy/math32"

	"github.com/paulhankin/hotwire/paths"
)

// Side is one end of a tapered wing.
type Side int

const (
	Root Side = iota
	Tip
	NumSides
)

var sideNames = [NumSides]string{"ROOT", "TIP"}

func (s Side) String() string { return sideNames[s] }

// Half is the surface above or below the chord line.
type Half int

const (
	Upper Half = iota
	Lower
	NumHalves
)

var halfNames = [NumHalves]string{"UPPER", "LOWER"}

func (h Half) String() string { return halfNames[h] }

// Dimension is a coordinate axis of one carriage.
type Dimension int

const (
	X Dimension = iota
	Y
	NumDimensions
)

var dimensionNames = [NumDimensions]string{"X", "Y"}

func (d Dimension) String() string { return dimensionNames[d] }

// Key identifies one of the eight coordinate streams.
type Key struct {
	Side      Side
	Half      Half
	Dimension Dimension
}

// Name is the file name the stream is read from, eg. ROOTUPPERX.
func (k Key) Name() string {
	return k.Side.String() + k.Half.String() + k.Dimension.String()
}

// Keys returns all eight keys, side major, then half, then dimension.
func Keys() []Key {
	var ks []Key
	for s := Root; s < NumSides; s++ {
		for h := Upper; h < NumHalves; h++ {
			for d := X; d < NumDimensions; d++ {
				ks = append(ks, Key{s, h, d})
			}
		}
	}
	return ks
}

// Vector is a single coordinate stream.
type Vector struct {
	Name    string    // file the stream was read from
	Count   int       // count declared on the first line
	Samples []float32 // scaled samples, at most Count of them
}

// Set is the full collection of streams, indexed by key.
type Set struct {
	v [NumSides][NumHalves][NumDimensions]Vector
}

// Vector returns the stream for k.
func (s *Set) Vector(k Key) *Vector {
	return &s.v[k.Side][k.Half][k.Dimension]
}

// Check compares every declared count against (Tip, Lower, Y). It returns
// an Inconsistency warning if any differ, and nil otherwise.
func (s *Set) Check() error {
	ref := s.Vector(Key{Tip, Lower, Y}).Count
	for _, k := range Keys() {
		if s.Vector(k).Count != ref {
			return &Error{Kind: Inconsistency}
		}
	}
	return nil
}

// Span is the number of cutting moves for the half h. The declared count
// of (Tip, h, X) drives it, clamped to the shortest of the four streams
// that half reads from.
func (s *Set) Span(h Half) int {
	n := s.Vector(Key{Tip, h, X}).Count
	for side := Root; side < NumSides; side++ {
		for d := X; d < NumDimensions; d++ {
			if m := len(s.Vector(Key{side, h, d}).Samples); m < n {
				n = m
			}
		}
	}
	return n
}

// Point returns the (x, y) sample at index i of the given side and half.
func (s *Set) Point(side Side, h Half, i int) paths.Vec2 {
	x := s.Vector(Key{side, h, X}).Samples[i]
	y := s.Vector(Key{side, h, Y}).Samples[i]
	return paths.Vec2{float64(x), float64(y)}
}

// Outline is the cross-section of one side: the upper half followed by
// the lower half.
func (s *Set) Outline(side Side) paths.Path {
	var p paths.Path
	for h := Upper; h < NumHalves; h++ {
		n := s.Span(h)
		for i := 0; i < n; i++ {
			p.V = append(p.V, s.Point(side, h, i))
		}
	}
	return p
}

// Extent is the bounding box of all samples that take part in a cut.
// An empty set has zero bounds.
func (s *Set) Extent() paths.Bounds {
	inf := math32.Inf(1)
	min := [2]float32{inf, inf}
	max := [2]float32{-inf, -inf}
	seen := false
	for side := Root; side < NumSides; side++ {
		for h := Upper; h < NumHalves; h++ {
			n := s.Span(h)
			for d := X; d < NumDimensions; d++ {
				for _, v := range s.Vector(Key{side, h, d}).Samples[:n] {
					seen = true
					min[d] = math32.Min(min[d], v)
					max[d] = math32.Max(max[d], v)
				}
			}
		}
	}
	if !seen {
		return paths.Bounds{}
	}
	return paths.Bounds{
		Min: paths.Vec2{float64(min[0]), float64(min[1])},
		Max: paths.Vec2{float64(max[0]), float64(max[1])},
	}
}
