// Package bfs provides breadth-first search over a core.Graph, returning visit order,
// depths and parent links.
//
// Besides the classic single-source search it can run as a seeded forest:
//
//   - WithSeeds adds extra depth-0 roots after the start vertex.
//   - WithFullTraversal restarts from the smallest unvisited vertex until every vertex
//     is visited, so Order is a permutation of g.Vertices().
//   - WithIgnoreDirection walks directed edges both ways.
//
// The homomorphism search uses exactly this configuration to order source vertices:
// already-mapped vertices are the roots, and each later vertex has a mapped neighbor
// whenever its component allows it, which keeps adjacency pruning effective.
//
// Determinism
//
//	Neighbors are enqueued in sorted ID order and restarts follow sorted vertex order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex or a seed does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, wrapped OnVisit errors.
package bfs
