package routing

// RegisterRoute records that r crosses every tile in path along
// orientation o, the bookkeeping step that must run before ExpandTiles or
// AssignRoutes can do anything useful.
func (g *Graph) RegisterRoute(r *Route, o Orientation, path []*Tile) {
	for _, t := range path {
		t.RegisterRoute(r, o)
	}
}

// AssignRoutes runs the lane-assignment pass over every tile in the
// graph, giving each registered route an evenly spaced lane.
func (g *Graph) AssignRoutes() {
	for _, t := range g.Tiles {
		t.AssignRoutes(g.HCap, g.VCap)
	}
}
