package airfoilgcode

import (
	"math"
	"os"

	"github.com/paulhankin/hotwire/airfoil"
	"github.com/paulhankin/hotwire/paths"
)

const (
	previewPerUnit = 10.0 // svg units per machine unit
	previewMargin  = 1.0  // machine units around the cross-sections
)

var previewStroke = [airfoil.NumSides]string{"black", "red"}

// previewPaths lays the root and tip cross-sections out on a canvas with
// +Y pointing up, so the preview reads the way the wire sees the foam.
func previewPaths(set *airfoil.Set) *paths.Paths {
	ps := &paths.Paths{Bounds: set.Extent().Grow(previewMargin)}
	for side := airfoil.Root; side < airfoil.NumSides; side++ {
		p := set.Outline(side)
		p.Stroke = previewStroke[side]
		ps.P = append(ps.P, p)
	}
	sz := ps.Bounds.Size()
	w := math.Ceil(sz[0] * previewPerUnit)
	h := math.Ceil(sz[1] * previewPerUnit)
	ps.Transform(paths.Bounds{
		Min: paths.Vec2{0, h},
		Max: paths.Vec2{w, 0},
	})
	ps.Bounds = paths.Bounds{Max: paths.Vec2{w, h}}
	return ps
}

func writePreview(name string, set *airfoil.Set) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := previewPaths(set).SVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
