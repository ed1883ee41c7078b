package routing

import "image"

// ExpandTiles grows every tile to fit the routes registered in it plus
// one, then recursively expands neighbors to match, walking outward from
// each tile that grew. Tiles are then repositioned by a depth-first walk
// starting at the north-west tile, keeping adjacency intact while sizes
// change. Returns true if any tile's size changed.
func (g *Graph) ExpandTiles() bool {
	grew := false
	for _, t := range g.Tiles {
		w := t.Used(Vertical) + 1
		h := t.Used(Horizontal) + 1
		if expandTileRecursively(t, w, h) {
			grew = true
		}
	}
	if !grew {
		return false
	}

	nw := g.northWest()
	if nw == nil {
		return grew
	}
	nw.setPos(g.Chip.Min)
	placed := map[*Tile]bool{}
	placeTilesRec(nw, placed)
	return grew
}

// expandTileRecursively grows t to at least w x h (the "plus one" margin
// already folded into the caller's w/h), then, if either dimension grew,
// propagates the new height to its East/West neighbors and the new width
// to its North/South neighbors, since a tile's height is coupled to its
// row's and its width to its column's.
func expandTileRecursively(t *Tile, w, h int) bool {
	old := t.rect
	modW, modH := false, false
	if w > old.Dx() {
		t.setWidth(w)
		modW = true
	}
	if h > old.Dy() {
		t.setHeight(h)
		modH = true
	}
	if !modW && !modH {
		return false
	}
	if modH {
		for _, d := range []Direction{West, East} {
			if n := t.Neighbor(d); n != nil {
				expandTileRecursively(n, n.rect.Dx(), h)
			}
		}
	}
	if modW {
		for _, d := range []Direction{North, South} {
			if n := t.Neighbor(d); n != nil {
				expandTileRecursively(n, w, n.rect.Dy())
			}
		}
	}
	return true
}

// northWest returns the tile with no North and no West neighbor, the
// walk's starting point.
func (g *Graph) northWest() *Tile {
	for _, t := range g.Tiles {
		if t.Neighbor(North) == nil && t.Neighbor(West) == nil {
			return t
		}
	}
	return nil
}

// placeTilesRec repositions t's East/West/North/South neighbors relative
// to t's current rectangle, then recurses into each, visiting every tile
// exactly once.
func placeTilesRec(t *Tile, placed map[*Tile]bool) {
	if placed[t] {
		return
	}
	placed[t] = true

	var next []*Tile
	if e := t.Neighbor(East); e != nil {
		e.setPos(image.Pt(t.rect.Max.X, t.rect.Min.Y))
		next = append(next, e)
	}
	if w := t.Neighbor(West); w != nil {
		w.setPos(image.Pt(t.rect.Min.X-w.rect.Dx(), t.rect.Min.Y))
		next = append(next, w)
	}
	if s := t.Neighbor(South); s != nil {
		s.setPos(image.Pt(t.rect.Min.X, t.rect.Max.Y))
		next = append(next, s)
	}
	if n := t.Neighbor(North); n != nil {
		n.setPos(image.Pt(t.rect.Min.X, t.rect.Min.Y-n.rect.Dy()))
		next = append(next, n)
	}
	for _, nb := range next {
		placeTilesRec(nb, placed)
	}
}

// BoundingRect returns the union of every tile's rectangle, expanded to
// guarantee the chip rectangle is still fully covered after expansion.
func (g *Graph) BoundingRect() image.Rectangle {
	r := g.Chip
	for _, t := range g.Tiles {
		r = r.Union(t.rect)
	}
	return r
}
