package routing

import (
	"image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TileGraph", func() {
	It("gives the center tile four neighbors bordering each component's edges", func() {
		placement := Placement{
			Chip: image.Rect(0, 0, 100, 100),
			Components: []ComponentRect{
				{Name: "a", Rect: image.Rect(10, 10, 30, 30)},
				{Name: "b", Rect: image.Rect(60, 60, 80, 80)},
			},
		}
		g := NewGraph(placement, DefaultHorizontalCapacity, DefaultVerticalCapacity)

		var center *Tile
		for _, t := range g.Tiles {
			if t.Rect() == image.Rect(30, 30, 60, 60) {
				center = t
			}
		}
		Expect(center).NotTo(BeNil())
		Expect(center.AdjacentTiles()).To(HaveLen(4))

		Expect(g.Components).To(HaveLen(2))
		a, b := g.Components[0], g.Components[1]
		Expect(a.Edge(East)).To(BeIdenticalTo(center.Neighbor(North)))
		Expect(a.Edge(South)).To(BeIdenticalTo(center.Neighbor(West)))
		Expect(b.Edge(North)).To(BeIdenticalTo(center.Neighbor(East)))
		Expect(b.Edge(West)).To(BeIdenticalTo(center.Neighbor(South)))
	})

	It("keeps the chip rectangle inside the bounding rect after expansion", func() {
		placement := Placement{
			Chip: image.Rect(0, 0, 100, 100),
			Components: []ComponentRect{
				{Name: "a", Rect: image.Rect(10, 10, 30, 30)},
				{Name: "b", Rect: image.Rect(60, 60, 80, 80)},
			},
		}
		g := NewGraph(placement, DefaultHorizontalCapacity, DefaultVerticalCapacity)

		for _, t := range g.Tiles {
			for k := 0; k < 3; k++ {
				t.RegisterRoute(&Route{Name: "r"}, Horizontal)
				t.RegisterRoute(&Route{Name: "r"}, Vertical)
			}
		}

		g.ExpandTiles()

		Expect(placement.Chip.In(g.BoundingRect())).To(BeTrue())
	})

	It("assigns routes strictly increasing lane indices within a tile", func() {
		t := &Tile{rect: image.Rect(0, 0, 10, 10)}
		r1, r2, r3 := &Route{Name: "r1"}, &Route{Name: "r2"}, &Route{Name: "r3"}
		t.RegisterRoute(r1, Horizontal)
		t.RegisterRoute(r2, Horizontal)
		t.RegisterRoute(r3, Horizontal)

		t.AssignRoutes(DefaultHorizontalCapacity, DefaultVerticalCapacity)

		a1, _ := t.Assignment(r1)
		a2, _ := t.Assignment(r2)
		a3, _ := t.Assignment(r3)
		Expect(a1.Idx).To(BeNumerically("<", a2.Idx))
		Expect(a2.Idx).To(BeNumerically("<", a3.Idx))
		Expect(t.RemainingCapacity(Horizontal, DefaultHorizontalCapacity, DefaultVerticalCapacity)).
			To(Equal(DefaultHorizontalCapacity - 3))
	})
})
