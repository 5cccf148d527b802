// Package bfs provides breadth-first search over a dense adjacency list,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search over adj starting from src, applying any
// number of functional Options. adj[u] lists the vertices reachable from u
// in one step; duplicates and self-loops are tolerated.
//
// Returns ErrSourceOutOfRange for a bad src, ErrOptionViolation for bad
// options, ErrNeighborOutOfRange for a malformed adjacency, or any
// user-supplied hook error.
func BFS(adj [][]int, src int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := len(adj)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]uint32, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreachable
		w.res.Parent[i] = -1
	}

	w.enqueue(src, 0, -1)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// Distances returns only the distance row from src.
func Distances(adj [][]int, src int, opts ...Option) ([]uint32, error) {
	res, err := BFS(adj, src, opts...)
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// enqueue records id at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id int, d uint32, parent int) {
	w.res.Dist[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, w.res.Dist[id]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor of id.
func (w *walker) enqueueNeighbors(id int) error {
	next := w.res.Dist[id] + 1
	if w.opts.MaxDepth > 0 && int(next) > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.adj[id] {
		if nbr < 0 || nbr >= len(w.adj) {
			return fmt.Errorf("%w: %d→%d", ErrNeighborOutOfRange, id, nbr)
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if w.res.Dist[nbr] == Unreachable {
			w.enqueue(nbr, next, id)
		}
	}
	return nil
}
