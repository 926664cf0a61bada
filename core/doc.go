// Package core provides the in-memory Graph used by every algorithm in lvhom.
//
// A Graph G = (V,E) is a finite simple graph:
//
//   - Directed or undirected edges (WithDirected)
//   - Optional self-loops (WithLoops)
//   - String vertex IDs; edges carry textual IDs ("e1", "e2", …)
//   - Edges form a set: re-adding an existing edge is a no-op
//   - Strict construction: AddEdge fails with ErrVertexNotFound unless both
//     endpoints were added first
//
// Deterministic iteration:
//
//	Vertices(), NeighborIDs(), InNeighborIDs() and AdjacentIDs() return sorted IDs;
//	Edges() returns edges in creation order.
//
// Derived graphs are always fresh instances and never mutate their source:
//
//	Clone()                 deep copy
//	CloneEmpty()            vertices and flags, no edges
//	Subgraph(ids)           induced subgraph
//	WithoutVertex(id)       G − v
//	DisjointUnion(other)    G ⊔ H with "0:"/"1:" prefixes
//
// Concurrency:
//
//	muVert guards the vertex catalog and muEdgeAdj guards edges and adjacency.
//	Any number of readers may share a Graph; searches in this module never mutate one.
package core
