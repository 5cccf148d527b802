package network

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/valve"
)

// Unreachable is the distance reported between disconnected valves.
const Unreachable = bfs.Unreachable

// Target pairs a positive-flow valve with its bit position in a mask.Set.
type Target struct {
	Node int
	Bit  uint
}

// ValveGraph is the immutable, solver-ready form of a valve list.
//
// Internal ids are dense in [0, Len()); the start valve is always id 0.
// Distance rows exist only for relevant valves (the start and every target).
type ValveGraph struct {
	names   []string
	ids     map[string]int
	flow    []uint32
	adj     [][]int
	targets []Target
	dist    [][]uint32
}

// FromValves builds a ValveGraph. The start valve (DefaultStart unless
// WithStart is given) is swapped to id 0; every other valve keeps its input
// position. Tunnels are followed in the direction they are listed.
//
// Complexity: O(R·(V+E)) where R is the number of relevant valves.
func FromValves(valves []valve.Valve, opts ...Option) (*ValveGraph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	order := slices.Clone(valves)
	start := slices.IndexFunc(order, func(v valve.Valve) bool { return v.Name == o.start })
	if start < 0 {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, o.start)
	}
	order[0], order[start] = order[start], order[0]

	n := len(order)
	g := &ValveGraph{
		names: make([]string, n),
		ids:   make(map[string]int, n),
		flow:  make([]uint32, n),
		adj:   make([][]int, n),
		dist:  make([][]uint32, n),
	}
	for id, v := range order {
		if _, dup := g.ids[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, v.Name)
		}
		g.ids[v.Name] = id
		g.names[id] = v.Name
		g.flow[id] = v.FlowRate
	}
	for id, v := range order {
		row := make([]int, 0, len(v.Tunnels))
		for _, t := range v.Tunnels {
			to, ok := g.ids[t]
			if !ok {
				return nil, fmt.Errorf("%w: %q→%q", ErrUnknownTunnel, v.Name, t)
			}
			row = append(row, to)
		}
		g.adj[id] = row
	}

	var bit uint
	for id, rate := range g.flow {
		if rate == 0 {
			continue
		}
		if !mask.Fits(bit + 1) {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyTargets, mask.Width)
		}
		g.targets = append(g.targets, Target{Node: id, Bit: bit})
		bit++
	}

	for _, id := range g.Relevant() {
		row, err := bfs.Distances(g.adj, id)
		if err != nil {
			return nil, fmt.Errorf("network: distances from %q: %w", g.names[id], err)
		}
		g.dist[id] = row
	}

	if o.strict {
		for _, t := range g.targets {
			if g.dist[0][t.Node] == Unreachable {
				return nil, fmt.Errorf("%w: %q", ErrUnreachableTarget, g.names[t.Node])
			}
		}
	}
	return g, nil
}

// Len returns the number of valves.
func (g *ValveGraph) Len() int { return len(g.flow) }

// Start returns the start valve id, always 0.
func (g *ValveGraph) Start() int { return 0 }

// Name returns the input name of valve id.
func (g *ValveGraph) Name(id int) string { return g.names[id] }

// ID looks a valve up by name.
func (g *ValveGraph) ID(name string) (int, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// FlowRate returns the flow rate of valve id.
func (g *ValveGraph) FlowRate(id int) uint32 { return g.flow[id] }

// Targets returns the positive-flow valves in id order. Bits are 0,1,2,...
func (g *ValveGraph) Targets() []Target { return slices.Clone(g.targets) }

// TargetMask returns the set of all target bits.
func (g *ValveGraph) TargetMask() mask.Set {
	var s mask.Set
	for _, t := range g.targets {
		s = s.With(t.Bit)
	}
	return s
}

// Relevant lists the start followed by every target that is not the start.
func (g *ValveGraph) Relevant() []int {
	out := make([]int, 0, len(g.targets)+1)
	out = append(out, 0)
	for _, t := range g.targets {
		if t.Node != 0 {
			out = append(out, t.Node)
		}
	}
	return out
}

// Distance returns the tunnel count from a to b. It returns Unreachable when
// b cannot be reached or when a is not a relevant valve.
func (g *ValveGraph) Distance(a, b int) uint32 {
	if g.dist[a] == nil {
		return Unreachable
	}
	return g.dist[a][b]
}

// Route returns the valve names along a shortest tunnel path from a to b,
// both ends included.
func (g *ValveGraph) Route(a, b int) ([]string, error) {
	var opts []bfs.Option
	if d := g.Distance(a, b); d != Unreachable && d > 0 {
		opts = append(opts, bfs.WithMaxDepth(int(d)))
	}
	res, err := bfs.BFS(g.adj, a, opts...)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s to %s: %v", ErrNoRoute, g.names[a], g.names[b], err)
	}
	names := make([]string, len(path))
	for i, id := range path {
		names[i] = g.names[id]
	}
	return names, nil
}
