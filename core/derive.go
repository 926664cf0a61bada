// SPDX-License-Identifier: MIT
//
// File: derive.go
// Role: Pure constructors that build new graphs from existing ones.
// Determinism:
//   - Vertices are inserted in sorted order and edges in creation order, so derived graphs
//     get reproducible edge IDs.
// Concurrency:
//   - Only read locks are taken on the source graphs.

package core

import "fmt"

// Union prefixes used by DisjointUnion to keep vertex IDs unique.
const (
	LeftPrefix  = "0:"
	RightPrefix = "1:"
)

// FromEdges builds a graph over the listed vertices with the listed edges.
// Fails with ErrVertexNotFound if an edge references a vertex that is not listed.
func FromEdges(vertices []string, edges [][2]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("core: edge %s-%s: %w", e[0], e[1], err)
		}
	}

	return g, nil
}

// CloneEmpty returns a graph with the same configuration and vertices but no edges.
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(g.options()...)
	for _, id := range g.Vertices() {
		clone.vertices[id] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy of g. Edge IDs are renumbered in creation order.
// Complexity: O(V log V + E log E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for _, e := range g.Edges() {
		// endpoints exist and loops were admitted by the same policy
		_, _ = clone.AddEdge(e.From, e.To)
	}

	return clone
}

// Subgraph returns the subgraph induced by ids: those vertices and every edge of g whose
// endpoints are both among them. Duplicate IDs are ignored; unknown IDs yield ErrVertexNotFound.
// Complexity: O(V + E log E).
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		keep[id] = true
	}

	sub := NewGraph(g.options()...)
	for _, id := range g.Vertices() {
		if keep[id] {
			sub.vertices[id] = struct{}{}
		}
	}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			_, _ = sub.AddEdge(e.From, e.To)
		}
	}

	return sub, nil
}

// WithoutVertex returns a copy of g with id and its incident edges removed.
func (g *Graph) WithoutVertex(id string) (*Graph, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	rest := make([]string, 0, g.VertexCount()-1)
	for _, v := range g.Vertices() {
		if v != id {
			rest = append(rest, v)
		}
	}

	return g.Subgraph(rest)
}

// DisjointUnion returns g ⊔ other. Vertices of g are relabelled LeftPrefix+id and those of
// other RightPrefix+id. Both graphs must share directedness (ErrDirectednessMismatch); the
// result permits loops if either operand does.
func (g *Graph) DisjointUnion(other *Graph) (*Graph, error) {
	if other == nil {
		return nil, ErrNilGraph
	}
	if g.directed != other.directed {
		return nil, ErrDirectednessMismatch
	}

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops || other.allowLoops {
		opts = append(opts, WithLoops())
	}
	u := NewGraph(opts...)
	for _, part := range []struct {
		prefix string
		src    *Graph
	}{{LeftPrefix, g}, {RightPrefix, other}} {
		for _, id := range part.src.Vertices() {
			u.vertices[part.prefix+id] = struct{}{}
		}
		for _, e := range part.src.Edges() {
			_, _ = u.AddEdge(part.prefix+e.From, part.prefix+e.To)
		}
	}

	return u, nil
}
