package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// ExampleSolve routes A* around an expensive cell on a 3×2 grid.
func ExampleSolve() {
	g, _ := grid.New(3, 2)
	_ = g.SetCost(grid.Position{X: 1, Y: 0}, 10)
	start, _ := g.At(0, 0)
	goal, _ := g.At(2, 0)

	res, err := search.Solve(context.Background(), g, start, goal, search.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s cost=%g hops=%d\n", res.Status, res.Cost, res.Hops)
	fmt.Println(res.Positions())
	// Output:
	// found cost=4 hops=4
	// [(0,0) (0,1) (1,1) (2,1) (2,0)]
}

// ExampleSearch_Next steps BFS along a 3×1 strip and prints every snapshot.
// The goal is recognised when it is dequeued; that round emits no snapshot.
func ExampleSearch_Next() {
	g, _ := grid.New(3, 1)
	start, _ := g.At(0, 0)
	goal, _ := g.At(2, 0)

	run, _ := search.Run(g, start, goal, search.BFS)
	for {
		snap, ok := run.Next()
		if !ok {
			break
		}
		fmt.Printf("step %d at %s open=%v closed=%v\n", snap.Step, snap.Current, snap.Open, snap.Closed)
	}
	fmt.Println(run.Result().Status, run.Result().Positions())
	// Output:
	// step 1 at (0,0) open=[(1,0)] closed=[(0,0) (1,0)]
	// step 2 at (1,0) open=[(2,0)] closed=[(0,0) (1,0) (2,0)]
	// found [(0,0) (1,0) (2,0)]
}

// ExampleBoard shows the selection lock held for the duration of a run.
func ExampleBoard() {
	g, _ := grid.New(4, 4)
	b, _ := search.NewBoard(g)
	_ = b.SetStart(grid.Position{X: 0, Y: 0})
	_ = b.SetGoal(grid.Position{X: 3, Y: 0})

	run, _ := b.Run(search.Dijkstra)
	fmt.Println("active:", b.Active(), "move start:", b.SetStart(grid.Position{X: 1, Y: 1}))
	for range run.All() {
	}
	fmt.Println("active:", b.Active(), "cost:", run.Result().Cost)
	// Output:
	// active: true move start: search: a run is already active
	// active: false cost: 3
}
