// Package paths provides 2d polylines for rendering the cross-sections
// that the cutter traces.
package paths

// Vec2 is a 2-dimensional vector.
type Vec2 [2]float64

// A Path is a contiguous series of line segments, from the
// first point in the V slice to the last.
type Path struct {
	V      []Vec2
	Stroke string // SVG stroke colour; empty means black
}

// Bounds describes an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec2
}

// Size returns the width and height of the box.
func (b Bounds) Size() Vec2 {
	return Vec2{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
}

// Grow returns the box extended by d on every side. A box that is
// flat in some direction always gains some extent in it.
func (b Bounds) Grow(d float64) Bounds {
	for i := 0; i < 2; i++ {
		b.Min[i] -= d
		b.Max[i] += d
		if b.Max[i] <= b.Min[i] {
			b.Min[i] -= 0.5
			b.Max[i] += 0.5
		}
	}
	return b
}

// Paths is a set of paths, along with a view bounds.
type Paths struct {
	Bounds Bounds
	P      []Path
}

// Transform maps all paths so that the rectangle forming the current
// bounds lands on nb. nb may be inverted in either axis, which mirrors
// the paths. The bounds are set to nb.
func (ps *Paths) Transform(nb Bounds) {
	ob := ps.Bounds
	for _, p := range ps.P {
		for i, v := range p.V {
			x, y := v[0], v[1]
			x -= ob.Min[0]
			x /= ob.Max[0] - ob.Min[0]
			x *= nb.Max[0] - nb.Min[0]
			x += nb.Min[0]

			y -= ob.Min[1]
			y /= ob.Max[1] - ob.Min[1]
			y *= nb.Max[1] - nb.Min[1]
			y += nb.Min[1]
			p.V[i] = Vec2{x, y}
		}
	}
	ps.Bounds = nb
}
