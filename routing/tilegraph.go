package routing

import "image"

// ComponentRect is one placed, axis-aligned component rectangle, the unit
// a Placement is built from.
type ComponentRect struct {
	Name string
	Rect image.Rectangle
}

// ComponentTile records which routing tile borders a placed component
// along each of its four edges.
type ComponentTile struct {
	ComponentRect

	edges [4]*Tile // indexed by Direction
}

// Edge returns the tile directly adjacent to the component across dir, or
// nil if the component spans the full chip in that direction.
func (c *ComponentTile) Edge(dir Direction) *Tile { return c.edges[dir] }

// Placement is the input to tile-graph construction: a chip rectangle
// (top-left at the origin) and the rectangles of every component placed
// within it. Components must not overlap.
type Placement struct {
	Chip       image.Rectangle
	Components []ComponentRect
}

// Graph is the routing-tile graph built from a Placement: the set of
// routing tiles, their mutual adjacency, and each component's bordering
// tiles.
type Graph struct {
	Chip       image.Rectangle
	Tiles      []*Tile
	Components []*ComponentTile

	HCap, VCap int

	// TileLines records the extruded tile-lines (step 1), kept for
	// diagnosability and tests; never consulted again after Tiles is
	// built.
	TileLines []Line
}

// NewGraph builds the routing-tile graph for a placement, using
// hCap/vCap as every tile's per-orientation route capacity.
func NewGraph(p Placement, hCap, vCap int) *Graph {
	g := &Graph{Chip: p.Chip, HCap: hCap, VCap: vCap}
	g.TileLines = extrudeTileLines(p)
	g.buildTiles(p)
	g.connectAdjacency()
	g.associateComponents(p)
	return g
}

// extrudeTileLines implements step 1: every component edge is extended to
// the chip boundary, then shortened at each end to the closest crossing
// intersection with a perpendicular component edge. The four chip edges
// are added as tile-lines too, since tile formation needs them as the
// outermost bounds.
func extrudeTileLines(p Placement) []Line {
	var horiz, vert []Line
	for _, c := range p.Components {
		vert = append(vert, edge(c.Rect, West), edge(c.Rect, East))
		horiz = append(horiz, edge(c.Rect, North), edge(c.Rect, South))
	}

	var lines []Line
	for _, c := range p.Components {
		for _, d := range []Direction{North, South} {
			e := edge(c.Rect, d)
			left := rayCastX(e.P1, -1, p.Chip.Min.X, vert)
			right := rayCastX(e.P2, 1, p.Chip.Max.X, vert)
			l := Line{image.Pt(left, e.P1.Y), image.Pt(right, e.P1.Y)}
			if !containsLine(lines, l) {
				lines = append(lines, l)
			}
		}
		for _, d := range []Direction{East, West} {
			e := edge(c.Rect, d)
			top := rayCastY(e.P1, -1, p.Chip.Min.Y, horiz)
			bottom := rayCastY(e.P2, 1, p.Chip.Max.Y, horiz)
			l := Line{image.Pt(e.P1.X, top), image.Pt(e.P1.X, bottom)}
			if !containsLine(lines, l) {
				lines = append(lines, l)
			}
		}
	}

	chipEdges := []Line{
		edge(p.Chip, North), edge(p.Chip, South),
		edge(p.Chip, East), edge(p.Chip, West),
	}
	for _, l := range chipEdges {
		if !containsLine(lines, l) {
			lines = append(lines, l)
		}
	}
	return lines
}

// rayCastX finds the closest vertical line in perp crossing the horizontal
// ray leaving origin in the given x direction (+1 right, -1 left), bounded
// by bound (the chip edge) if nothing closer is found.
func rayCastX(origin image.Point, dir, bound int, perp []Line) int {
	best := bound
	for _, l := range perp {
		x := l.P1.X
		ylo, yhi := min(l.P1.Y, l.P2.Y), max(l.P1.Y, l.P2.Y)
		if origin.Y < ylo || origin.Y > yhi {
			continue
		}
		if dir > 0 {
			if x > origin.X && x < best {
				best = x
			}
		} else {
			if x < origin.X && x > best {
				best = x
			}
		}
	}
	return best
}

// rayCastY is rayCastX's vertical-ray counterpart, searching horizontal
// lines.
func rayCastY(origin image.Point, dir, bound int, perp []Line) int {
	best := bound
	for _, l := range perp {
		y := l.P1.Y
		xlo, xhi := min(l.P1.X, l.P2.X), max(l.P1.X, l.P2.X)
		if origin.X < xlo || origin.X > xhi {
			continue
		}
		if dir > 0 {
			if y > origin.Y && y < best {
				best = y
			}
		} else {
			if y < origin.Y && y > best {
				best = y
			}
		}
	}
	return best
}

// buildTiles implements step 2. Tile-lines only ever run at a component's
// own edge coordinates or at chip boundaries, so every tile boundary lies
// on one of those x/y values; a grid over the distinct x's and y's, with
// adjacent empty cells merged wherever no tile-line actually separates
// them, reproduces the maximal-rectangle scan without tracking the
// original's corner-chasing state machine.
func (g *Graph) buildTiles(p Placement) {
	xs := axisValues(g.TileLines, true, g.Chip)
	ys := axisValues(g.TileLines, false, g.Chip)

	rows, cols := len(ys)-1, len(xs)-1
	if rows <= 0 || cols <= 0 {
		return
	}

	blocked := make([][]bool, rows)
	for r := range blocked {
		blocked[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			cell := image.Rect(xs[c], ys[r], xs[c+1], ys[r+1])
			blocked[r][c] = coincidesWithComponent(cell, p.Components)
		}
	}

	uf := newUnionFind(rows * cols)
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if blocked[r][c] {
				continue
			}
			if c+1 < cols && !blocked[r][c+1] && !lineCovers(g.TileLines, true, xs[c+1], ys[r], ys[r+1]) {
				uf.union(idx(r, c), idx(r, c+1))
			}
			if r+1 < rows && !blocked[r+1][c] && !lineCovers(g.TileLines, false, ys[r+1], xs[c], xs[c+1]) {
				uf.union(idx(r, c), idx(r+1, c))
			}
		}
	}

	groups := make(map[int]image.Rectangle)
	order := make(map[int]int)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if blocked[r][c] {
				continue
			}
			root := uf.find(idx(r, c))
			cell := image.Rect(xs[c], ys[r], xs[c+1], ys[r+1])
			if rect, ok := groups[root]; ok {
				groups[root] = rect.Union(cell)
			} else {
				groups[root] = cell
				order[root] = len(order)
			}
		}
	}

	tiles := make([]*Tile, len(order))
	for root, n := range order {
		tiles[n] = &Tile{id: n, rect: groups[root]}
	}
	g.Tiles = tiles
}

// axisValues collects the distinct coordinates (sorted) that tile-lines
// and the chip rectangle define along one axis.
func axisValues(lines []Line, vertical bool, chip image.Rectangle) []int {
	seen := map[int]bool{}
	var vals []int
	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	if vertical {
		add(chip.Min.X)
		add(chip.Max.X)
	} else {
		add(chip.Min.Y)
		add(chip.Max.Y)
	}
	for _, l := range lines {
		if vertical && !l.IsHorizontal() {
			add(l.P1.X)
		}
		if !vertical && l.IsHorizontal() {
			add(l.P1.Y)
		}
	}
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			if vals[j] < vals[i] {
				vals[i], vals[j] = vals[j], vals[i]
			}
		}
	}
	return vals
}

// lineCovers reports whether some tile-line fully spans [lo,hi] at the
// given fixed coordinate: a vertical line at x=fixed (vertical==true) or a
// horizontal line at y=fixed.
func lineCovers(lines []Line, vertical bool, fixed, lo, hi int) bool {
	for _, l := range lines {
		if vertical == l.IsHorizontal() {
			continue
		}
		if vertical {
			if l.P1.X != fixed {
				continue
			}
			a, b := min(l.P1.Y, l.P2.Y), max(l.P1.Y, l.P2.Y)
			if a <= lo && b >= hi {
				return true
			}
		} else {
			if l.P1.Y != fixed {
				continue
			}
			a, b := min(l.P1.X, l.P2.X), max(l.P1.X, l.P2.X)
			if a <= lo && b >= hi {
				return true
			}
		}
	}
	return false
}

func coincidesWithComponent(r image.Rectangle, comps []ComponentRect) bool {
	for _, c := range comps {
		if c.Rect == r {
			return true
		}
	}
	return false
}

// connectAdjacency implements step 3: every pair of tiles sharing a
// border becomes mutual North/South/East/West neighbors.
func (g *Graph) connectAdjacency() {
	for i, a := range g.Tiles {
		for j, b := range g.Tiles {
			if i == j {
				continue
			}
			if a.rect.Max.X == b.rect.Min.X && overlapsY(a.rect, b.rect) {
				a.setNeighbor(East, b)
			}
			if a.rect.Max.Y == b.rect.Min.Y && overlapsX(a.rect, b.rect) {
				a.setNeighbor(South, b)
			}
		}
	}
}

func overlapsX(a, b image.Rectangle) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X
}

func overlapsY(a, b image.Rectangle) bool {
	return a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// associateComponents implements step 4: for every component, record the
// tile bordering each of its four edges.
func (g *Graph) associateComponents(p Placement) {
	g.Components = make([]*ComponentTile, len(p.Components))
	for i, c := range p.Components {
		ct := &ComponentTile{ComponentRect: c}
		for _, t := range g.Tiles {
			switch {
			case t.rect.Max.X == c.Rect.Min.X && overlapsY(t.rect, c.Rect):
				ct.edges[West] = t
			case t.rect.Min.X == c.Rect.Max.X && overlapsY(t.rect, c.Rect):
				ct.edges[East] = t
			case t.rect.Max.Y == c.Rect.Min.Y && overlapsX(t.rect, c.Rect):
				ct.edges[North] = t
			case t.rect.Min.Y == c.Rect.Max.Y && overlapsX(t.rect, c.Rect):
				ct.edges[South] = t
			}
		}
		g.Components[i] = ct
	}
}

// unionFind is a minimal disjoint-set structure used only to merge grid
// cells that tile formation determines belong to the same maximal tile.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
