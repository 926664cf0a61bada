package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvhom/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	queue    []queueItem
	visited  map[string]bool
	vertices []string // sorted, only populated for FullTraversal
	restart  int      // next index into vertices to try as a new root
	res      *BFSResult
}

// BFS runs breadth-first search on g starting from startID, then from any WithSeeds roots,
// applying the given Options. With WithFullTraversal the remaining components are
// visited in ascending order of their smallest unvisited vertex.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, ErrOptionViolation for
// bad options, ctx.Err() on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	for _, s := range o.Seeds {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: seed %q", ErrStartVertexNotFound, s)
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.FullTraversal {
		w.vertices = g.Vertices()
	}

	w.enqueue(startID, 0, "")
	for _, s := range o.Seeds {
		if !w.visited[s] {
			w.enqueue(s, 0, "")
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it and every restart root are exhausted.
func (w *walker) loop() error {
	for {
		for len(w.queue) > 0 {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			item := w.queue[0]
			w.queue = w.queue[1:]
			if err := w.visit(item); err != nil {
				return err
			}
			if err := w.enqueueNeighbors(item); err != nil {
				return err
			}
		}
		if !w.nextRoot() {
			return nil
		}
	}
}

// nextRoot enqueues the smallest unvisited vertex when FullTraversal is on.
func (w *walker) nextRoot() bool {
	for ; w.restart < len(w.vertices); w.restart++ {
		if id := w.vertices[w.restart]; !w.visited[id] {
			w.enqueue(id, 0, "")
			return true
		}
	}

	return false
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	var (
		neighbors []string
		err       error
	)
	if w.opts.IgnoreDirection {
		neighbors, err = w.graph.AdjacentIDs(item.id)
	} else {
		neighbors, err = w.graph.NeighborIDs(item.id)
	}
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}

	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
