// Package routing implements the placement/routing graph geometric
// post-process: given a set of placed, axis-aligned component rectangles
// and an enclosing chip rectangle, it extrudes tile-lines, forms routing
// tiles, wires up their adjacency, associates each component with its
// bordering tiles, expands tiles to fit the routes that will cross them,
// and finally assigns each route an evenly spaced position within its
// tile.
//
// Everything here is a pure function of the rectangles it is given; it
// owns no simulation state and is never driven by the propagation engine
// in package vsrtl. Geometry is expressed with the standard library's
// image.Point/image.Rectangle, since no third-party 2D geometry package
// is grounded anywhere in the retrieval pack for this concern.
package routing

import "image"

// Direction is a compass edge/neighbor direction, used both for a
// component's four bounding edges and a tile's four neighbors.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// Orientation distinguishes the two axes a route can run along within a
// tile.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Line is a horizontal or vertical segment; diagonal lines never occur in
// this algorithm since every input rectangle is axis-aligned.
type Line struct {
	P1, P2 image.Point
}

// IsHorizontal reports whether the line runs along the X axis.
func (l Line) IsHorizontal() bool { return l.P1.Y == l.P2.Y }

// Len returns the line's length along whichever axis it runs.
func (l Line) Len() int {
	if l.IsHorizontal() {
		return abs(l.P2.X - l.P1.X)
	}
	return abs(l.P2.Y - l.P1.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattan(a, b image.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// crossIntersect reports the point where l and o meet at a right angle,
// anywhere on both segments, endpoints included (so a T-junction or a
// corner touch counts). One of l, o must be horizontal and the other
// vertical; two parallel lines never "cross".
func crossIntersect(l, o Line) (image.Point, bool) {
	h, v := l, o
	if !h.IsHorizontal() {
		h, v = o, l
	}
	if !h.IsHorizontal() || v.IsHorizontal() {
		return image.Point{}, false
	}
	y := h.P1.Y
	x := v.P1.X
	if x < min(h.P1.X, h.P2.X) || x > max(h.P1.X, h.P2.X) {
		return image.Point{}, false
	}
	if y < min(v.P1.Y, v.P2.Y) || y > max(v.P1.Y, v.P2.Y) {
		return image.Point{}, false
	}
	return image.Point{X: x, Y: y}, true
}

// onEdgeIntersect reports the point where l and o meet, allowing the
// point to fall on either segment's endpoint; it is the same test as
// crossIntersect.
func onEdgeIntersect(l, o Line) (image.Point, bool) {
	return crossIntersect(l, o)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// edge returns the line segment running along rect's given edge.
func edge(rect image.Rectangle, dir Direction) Line {
	switch dir {
	case North:
		return Line{rect.Min, image.Point{X: rect.Max.X, Y: rect.Min.Y}}
	case South:
		return Line{image.Point{X: rect.Min.X, Y: rect.Max.Y}, rect.Max}
	case West:
		return Line{rect.Min, image.Point{X: rect.Min.X, Y: rect.Max.Y}}
	default: // East
		return Line{image.Point{X: rect.Max.X, Y: rect.Min.Y}, rect.Max}
	}
}

// containsLine reports whether lines already holds a line equal to l,
// the dedup check required before appending a new tile-line.
func containsLine(lines []Line, l Line) bool {
	for _, x := range lines {
		if x == l {
			return true
		}
	}
	return false
}
