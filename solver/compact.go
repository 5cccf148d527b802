package solver

import (
	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/network"
)

// point is one relevant valve of the search space.
type point struct {
	node int
	flow uint32
}

// goal is a target as seen by the search: where it sits in points and which
// bit marks it open.
type goal struct {
	at  int
	bit uint
}

// compact is the read-only view shared by both searches: points[0] is the
// start, dist is the square distance table among points.
type compact struct {
	g      *network.ValveGraph
	points []point
	goals  []goal
	dist   [][]uint32
}

func newCompact(g *network.ValveGraph) *compact {
	relevant := g.Relevant()
	index := make(map[int]int, len(relevant))
	c := &compact{
		g:      g,
		points: make([]point, len(relevant)),
		dist:   make([][]uint32, len(relevant)),
	}
	for i, node := range relevant {
		index[node] = i
		c.points[i] = point{node: node, flow: g.FlowRate(node)}
	}
	for i, a := range relevant {
		c.dist[i] = make([]uint32, len(relevant))
		for j, b := range relevant {
			c.dist[i][j] = g.Distance(a, b)
		}
	}
	for _, t := range g.Targets() {
		c.goals = append(c.goals, goal{at: index[t.Node], bit: t.Bit})
	}
	return c
}

// step reports the remaining time after walking from point at to goal t and
// opening it. ok is false when t is unreachable or out of time.
func (c *compact) step(at int, t goal, left uint32) (rem uint32, ok bool) {
	d := c.dist[at][t.at]
	if d == network.Unreachable {
		return 0, false
	}
	cost := d + 1
	if cost > left {
		return 0, false
	}
	return left - cost, true
}

// names maps a set of target bits back to valve names in bit order.
func (c *compact) names(s mask.Set) []string {
	var out []string
	for _, t := range c.goals {
		if s.Has(t.bit) {
			out = append(out, c.g.Name(c.points[t.at].node))
		}
	}
	return out
}
