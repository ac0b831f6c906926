package search_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

func TestReconstruct(t *testing.T) {
	g := mustGrid(t, 3, 2)
	a, b, c := node(t, g, 0, 0), node(t, g, 1, 0), node(t, g, 1, 1)
	b.SetParent(a)
	c.SetParent(b)

	got := search.Reconstruct(c)
	want := []*grid.Node{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Reconstruct len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %s; want %s", i, got[i].Position(), want[i].Position())
		}
	}

	if p := search.Reconstruct(a); len(p) != 1 || p[0] != a {
		t.Errorf("root-only path = %v", p)
	}
	if p := search.Reconstruct(nil); p != nil {
		t.Errorf("Reconstruct(nil) = %v; want nil", p)
	}
}

// TestReconstruct_StopsAtCycle: a corrupted parent cycle still terminates.
func TestReconstruct_StopsAtCycle(t *testing.T) {
	g := mustGrid(t, 2, 1)
	a, b := node(t, g, 0, 0), node(t, g, 1, 0)
	a.SetParent(b)
	b.SetParent(a)

	if p := search.Reconstruct(b); len(p) != 2 || p[0] != a || p[1] != b {
		t.Errorf("cycle walk = %v", p)
	}
}

func TestPathCost(t *testing.T) {
	g := mustGrid(t, 3, 1)
	_ = g.SetCost(grid.Position{X: 0, Y: 0}, 9)
	_ = g.SetCost(grid.Position{X: 1, Y: 0}, 2)
	_ = g.SetCost(grid.Position{X: 2, Y: 0}, 5)
	path := []*grid.Node{node(t, g, 0, 0), node(t, g, 1, 0), node(t, g, 2, 0)}
	if c := search.PathCost(path); c != 7 {
		t.Errorf("PathCost = %v; want 7 (start cost excluded)", c)
	}
	if c := search.PathCost(nil); c != 0 {
		t.Errorf("PathCost(nil) = %v", c)
	}
}

func TestHeuristics(t *testing.T) {
	a, b := grid.Position{X: 1, Y: 5}, grid.Position{X: 4, Y: 1}
	if h := search.Manhattan(a, b); h != 7 {
		t.Errorf("Manhattan = %v; want 7", h)
	}
	if h := search.Manhattan(b, a); h != 7 {
		t.Errorf("Manhattan not symmetric: %v", h)
	}
	if h := search.Zero(a, b); h != 0 {
		t.Errorf("Zero = %v", h)
	}
}
