package routing

import "image"

// Tile is a maximal axis-aligned rectangle of the chip area containing no
// component. Its id is assigned in monotonically increasing discovery
// order.
type Tile struct {
	id   int
	rect image.Rectangle

	neighbors [4]*Tile // indexed by Direction

	hRoutes []*Route
	vRoutes []*Route

	// assigned caches the (orientation, idx) a route was given in this
	// tile, filled in by AssignRoutes.
	assigned map[*Route]Assignment
}

// Route is an opaque handle identifying one routed wire crossing through
// one or more tiles; the routing graph never interprets its identity,
// only counts and orders it per tile.
type Route struct {
	Name string
}

// Assignment is the physical placement an AssignRoutes pass gives a route
// inside one tile: the lane index along the tile's capacity, and the two
// endpoints that index corresponds to.
type Assignment struct {
	Orientation Orientation
	Idx         int
	From, To    image.Point
}

// ID returns the tile's monotonic discovery-order identifier.
func (t *Tile) ID() int { return t.id }

// Rect returns the tile's current rectangle.
func (t *Tile) Rect() image.Rectangle { return t.rect }

// Neighbor returns the tile directly adjacent across the given edge, or
// nil at the chip boundary.
func (t *Tile) Neighbor(d Direction) *Tile { return t.neighbors[d] }

// setNeighbor wires t and other as mutual neighbors across d: tiles
// sharing a corner become adjacent across the shared edge, so the update
// applies symmetrically in both directions.
func (t *Tile) setNeighbor(d Direction, other *Tile) {
	t.neighbors[d] = other
	if other != nil {
		other.neighbors[d.Opposite()] = t
	}
}

// AdjacentTiles returns every non-nil neighbor.
func (t *Tile) AdjacentTiles() []*Tile {
	var out []*Tile
	for _, n := range t.neighbors {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// RegisterRoute records that route crosses t along orientation o, ready
// for a later AssignRoutes call to give it a lane.
func (t *Tile) RegisterRoute(r *Route, o Orientation) {
	if o == Horizontal {
		t.hRoutes = append(t.hRoutes, r)
	} else {
		t.vRoutes = append(t.vRoutes, r)
	}
}

// Used reports how many routes of the given orientation currently cross
// t.
func (t *Tile) Used(o Orientation) int {
	if o == Horizontal {
		return len(t.hRoutes)
	}
	return len(t.vRoutes)
}

// Default per-tile capacity, fixed at design time.
const (
	DefaultHorizontalCapacity = 4
	DefaultVerticalCapacity   = 4
)

// Capacity returns the configured capacity for the given orientation.
func (t *Tile) Capacity(o Orientation, hCap, vCap int) int {
	if o == Horizontal {
		return hCap
	}
	return vCap
}

// RemainingCapacity returns capacity(o) - used(o).
func (t *Tile) RemainingCapacity(o Orientation, hCap, vCap int) int {
	return t.Capacity(o, hCap, vCap) - t.Used(o)
}

// AssignRoutes gives every registered route in t an evenly spaced lane
// index idx = round(k*capacity/(n+1)) for k=1..n, along with the from/to
// endpoints that index corresponds to in t's current rectangle.
func (t *Tile) AssignRoutes(hCap, vCap int) {
	t.assigned = make(map[*Route]Assignment, len(t.hRoutes)+len(t.vRoutes))
	assignLane(t, t.hRoutes, Horizontal, hCap)
	assignLane(t, t.vRoutes, Vertical, vCap)
}

func assignLane(t *Tile, routes []*Route, o Orientation, cap int) {
	n := len(routes)
	if n == 0 {
		return
	}
	step := float64(cap) / float64(n+1)
	pos := step
	for _, r := range routes {
		idx := int(pos + 0.5) // round to nearest
		from, to := tileRouteEndpoints(t.rect, o, idx)
		t.assigned[r] = Assignment{Orientation: o, Idx: idx, From: from, To: to}
		pos += step
	}
}

// tileRouteEndpoints derives the physical from/to points of a lane at
// idx inside rect, for the given orientation: horizontal runs from
// topLeft+(0,idx) to topRight+(0,idx); vertical is the analogous case,
// from topLeft+(idx,0) to bottomLeft+(idx,0).
func tileRouteEndpoints(rect image.Rectangle, o Orientation, idx int) (image.Point, image.Point) {
	if o == Horizontal {
		from := rect.Min.Add(image.Point{X: 0, Y: idx})
		to := image.Point{X: rect.Max.X, Y: rect.Min.Y}.Add(image.Point{X: 0, Y: idx})
		return from, to
	}
	from := rect.Min.Add(image.Point{X: idx, Y: 0})
	to := image.Point{X: rect.Min.X, Y: rect.Max.Y}.Add(image.Point{X: idx, Y: 0})
	return from, to
}

// Assignment looks up the lane assigned to r in this tile, after
// AssignRoutes has run.
func (t *Tile) Assignment(r *Route) (Assignment, bool) {
	a, ok := t.assigned[r]
	return a, ok
}

// setWidth/setHeight grow t's rectangle in place, keeping its top-left
// corner fixed; used by tile expansion.
func (t *Tile) setWidth(w int)  { t.rect.Max.X = t.rect.Min.X + w }
func (t *Tile) setHeight(h int) { t.rect.Max.Y = t.rect.Min.Y + h }

// setPos moves t's rectangle so its top-left corner is at p, preserving
// its current width/height.
func (t *Tile) setPos(p image.Point) {
	size := t.rect.Size()
	t.rect = image.Rectangle{Min: p, Max: p.Add(size)}
}
