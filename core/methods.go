// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus adjacency queries.
// Determinism:
//   - Vertices(), Edges(), NeighborIDs() and AdjacentIDs() return sorted results.
// Concurrency:
//   - Mutators take write locks; queries take read locks in the muVert → muEdgeAdj order.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds the edge from→to and returns its ID.
//
// Both endpoints must already be vertices of g (ErrVertexNotFound); a loop requires
// WithLoops (ErrLoopNotAllowed). Adding an edge that already exists returns the ID of
// the existing edge and changes nothing. For undirected graphs (u,v) and (v,u) are the
// same edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if eid, ok := g.out[from][to]; ok {
		return eid, nil
	}

	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	link(g.out, from, to, eid)
	link(g.in, to, from, eid)
	if !g.directed {
		link(g.out, to, from, eid)
		link(g.in, from, to, eid)
	}

	return eid, nil
}

// link records idx[a][b] = eid, allocating the inner map lazily.
func link(idx map[string]map[string]string, a, b, eid string) {
	row, ok := idx[a]
	if !ok {
		row = make(map[string]string)
		idx[a] = row
	}
	row[b] = eid
}

// HasEdge reports whether the edge from→to exists. Symmetric for undirected graphs.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once, ordered by creation (numeric suffix of the ID).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// edgeSeq extracts the numeric sequence from an edge ID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[len(edgeIDPrefix):], 10, 64)

	return n
}

// NeighborIDs returns the sorted out-neighbors of id (all neighbors when undirected).
// A looped vertex lists itself. Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.out[id]), nil
}

// InNeighborIDs returns the sorted in-neighbors of id (all neighbors when undirected).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.in[id]), nil
}

// AdjacentIDs returns the sorted union of in- and out-neighbors of id.
// For undirected graphs it equals NeighborIDs.
func (g *Graph) AdjacentIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !g.directed {
		return sortedKeys(g.out[id]), nil
	}
	seen := make(map[string]string, len(g.out[id])+len(g.in[id]))
	for v := range g.out[id] {
		seen[v] = ""
	}
	for v := range g.in[id] {
		seen[v] = ""
	}

	return sortedKeys(seen), nil
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}

// Degree returns the number of distinct neighbors of id (out-degree for directed graphs).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[id]), nil
}

// VertexCount returns the order of the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the size of the graph (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are oriented.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// HasLoops reports whether at least one self-loop is present.
func (g *Graph) HasLoops() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.From == e.To {
			return true
		}
	}

	return false
}

// IsComplete reports whether every pair of distinct vertices is adjacent (in both
// directions for directed graphs) and no loop is present. The empty graph and K1 are complete.
//
// Complexity: O(V²).
func (g *Graph) IsComplete() bool {
	if g.HasLoops() {
		return false
	}
	n := g.VertexCount()
	want := n * (n - 1) / 2
	if g.directed {
		want = n * (n - 1)
	}

	// Edges are a set and loop-free here, so counting suffices.
	return g.EdgeCount() == want
}
