package paths

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"golang.org/x/net/html/charset"
)

var (
	svgh = `<svg height="%d" width="%d" viewBox="%d %d %d %d" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`
)

// SVG writes an SVG file that strokes each path in its own colour.
func (ps *Paths) SVG(w io.Writer) error {
	var werr error
	bi := bufio.NewWriter(w)
	wr := func(f string, args ...interface{}) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bi, f, args...)
	}
	sz := ps.Bounds.Size()
	wr(svgh, int(sz[1]), int(sz[0]), int(ps.Bounds.Min[0]), int(ps.Bounds.Min[1]), int(sz[0]), int(sz[1]))
	wr("\n")
	wr("<g fill=\"none\" stroke-width=\"0.5\">\n")
	for _, p := range ps.P {
		if len(p.V) == 0 {
			continue
		}
		stroke := p.Stroke
		if stroke == "" {
			stroke = "black"
		}
		wr(`<path stroke="%s" d="`, stroke)
		for i, v := range p.V {
			if i == 0 {
				wr("M %.2f, %.2f", v[0], v[1])
			} else {
				wr(" %.2f, %.2f", v[0], v[1])
			}
		}
		wr("\"/>\n")
	}
	wr("</g>")
	wr("</svg>")
	if werr == nil {
		werr = bi.Flush()
	}
	return werr
}

func parseBounds(e *svgparser.Element) (Bounds, error) {
	width, err := strconv.ParseFloat(e.Attributes["width"], 64)
	if err != nil {
		return Bounds{}, err
	}
	height, err := strconv.ParseFloat(e.Attributes["height"], 64)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Max: Vec2{width, height}}, nil
}

// parsePath reads the "M x, y x, y ..." form that SVG writes. Each M
// starts a new path.
func parsePath(ps *Paths, e *svgparser.Element) error {
	var xy Vec2
	var xyp int
	var cur *Path
	for _, f := range strings.Fields(e.Attributes["d"]) {
		if f == "M" {
			if xyp != 0 {
				return fmt.Errorf("got odd number of components before M")
			}
			ps.P = append(ps.P, Path{Stroke: e.Attributes["stroke"]})
			cur = &ps.P[len(ps.P)-1]
			continue
		}
		if cur == nil {
			return fmt.Errorf("path data %q doesn't start with M", e.Attributes["d"])
		}
		x, err := strconv.ParseFloat(strings.TrimRight(f, ","), 64)
		if err != nil {
			return err
		}
		xy[xyp] = x
		xyp++
		if xyp == 2 {
			cur.V = append(cur.V, xy)
			xyp = 0
		}
	}
	if xyp != 0 {
		return fmt.Errorf("got stray component in path")
	}
	return nil
}

func parsePaths(ps *Paths, e *svgparser.Element) error {
	for _, c := range e.Children {
		switch c.Name {
		case "g":
			if err := parsePaths(ps, c); err != nil {
				return err
			}
		case "path":
			if err := parsePath(ps, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromSVG reads back paths from an SVG file in the form SVG writes.
// Transforms and anything other than groups and paths are ignored.
func FromSVG(r io.Reader) (*Paths, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.CharsetReader = charset.NewReaderLabel
	elt, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, err
	}
	if err := elt.Decode(decoder); err != nil && err != io.EOF {
		return nil, err
	}
	bs, err := parseBounds(elt)
	if err != nil {
		return nil, err
	}
	ps := &Paths{Bounds: bs}
	return ps, parsePaths(ps, elt)
}
