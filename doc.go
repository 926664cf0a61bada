// Package lvhom is an in-memory toolkit for graph homomorphisms: searching for them,
// shrinking graphs to their cores, and folding cube-like Cayley graphs.
//
// 🚀 What is inside?
//
//	• Core primitives: thread-safe directed/undirected graphs with set semantics
//	• Builders: complete, cycle, path, star, wheel, complete bipartite, edgeless
//	• Traversal: seeded BFS forests
//	• Vector spaces over GF(q): elements, spans, subspaces, vertex labels
//	• Homomorphism search: Extend, Count, Exists with limits and cancellation
//	• Validation: edge preservation, fibers that are cosets of subspaces
//	• Cores: one-step reductions, full core reduction, core tests
//	• Cayley graphs: construction, the squash solver, cube-like enumeration
//	• Canonical forms: isomorphism testing and de-duplication
//	• I/O and batch: edge lists, graph6, pairwise counts to CSV
//
// Under the hood:
//
//	core/           Graph, Edge and the pure derivations (Subgraph, WithoutVertex, DisjointUnion)
//	builder/        deterministic constructors for classic families
//	bfs/            breadth-first forests used to order the search
//	vecspace/       GF(q)^n and its subspaces
//	homomorphism/   backtracking search and validators
//	retract/        core reduction
//	cayley/         Cayley graphs, Squash, CubeLikeGraphs
//	canon/          canonical forms
//	catalog/        Badger-backed set of canonical forms
//	graphio/        text encodings
//	batch/          parallel pairwise driver
//	cmd/homsearch   command-line front end
//
// Quick example: the square maps onto one of its edges.
//
//	    00───01
//	    │     │
//	    10───11      Squash by 11:  {00,11} → 00, {01,10} → 01
//
//	go get github.com/katalvlaran/lvhom
package lvhom
