package main

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// printMap writes one line per grid row, top row first.
func printMap(w io.Writer, g *grid.Grid, res search.Result) error {
	onPath := make(map[grid.Position]bool, len(res.Path))
	for _, p := range res.Positions() {
		onPath[p] = true
	}
	hasEndpoints := res.Status != search.StatusNoEndpoints

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			n, err := g.Node(p)
			if err != nil {
				return err
			}
			switch {
			case hasEndpoints && p == res.Start:
				bw.WriteByte('S')
			case hasEndpoints && p == res.Goal:
				bw.WriteByte('G')
			case onPath[p]:
				bw.WriteByte('*')
			default:
				bw.WriteByte(costGlyph(n.Cost()))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func costGlyph(c float64) byte {
	switch v := int(math.Round(c)); {
	case v == 1:
		return '.'
	case v >= grid.MaxCost:
		return '#'
	default:
		return byte('0' + v)
	}
}

func printSummary(w io.Writer, res search.Result) error {
	_, err := fmt.Fprintf(w, "mode=%s status=%s cost=%g hops=%d steps=%d expanded=%d\n",
		res.Mode, res.Status, res.Cost, res.Hops, res.Steps, res.Expanded)
	return err
}
