// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, graph options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards edges and both adjacency indexes.
//   - Lock order is always muVert then muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDirectednessMismatch indicates two graphs of different orientation were combined.
	ErrDirectednessMismatch = errors.New("core: directed and undirected graphs cannot be combined")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a connection between two vertices.
//
// For undirected graphs From/To record insertion order only; HasEdge is symmetric.
type Edge struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of every edge of the graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a finite simple graph (directed or undirected, optionally with loops).
//
// Edges form a set: adding an existing edge again is a no-op. The algorithms of this
// module treat a Graph as read-only once built; derived graphs (Subgraph, WithoutVertex,
// DisjointUnion) are always fresh instances.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, out and in

	directed   bool
	allowLoops bool

	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex catalog
	edges      map[string]*Edge    // edge ID → Edge

	// out[u][v] = edgeID for every edge u→v; undirected edges are mirrored.
	out map[string]map[string]string
	// in[v][u] = edgeID for every edge u→v; identical to out for undirected graphs.
	in map[string]map[string]string
}

// NewGraph creates an empty Graph. By default the graph is undirected without loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// options reproduces the configuration of g as GraphOption values.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
