// Package homomorphism searches for and validates graph homomorphisms: vertex maps
// f: V(G) → V(H) such that every edge (u,v) of G lands on an edge (f(u),f(v)) of H.
//
// Search
//
//	maps, err := homomorphism.Extend(g, h, homomorphism.Map{"0": "a"}, homomorphism.WithLimit(10))
//	n, err := homomorphism.Count(g, h, nil)
//	m, ok, err := homomorphism.Exists(g, h, nil)
//
// Extend grows a consistent partial map into total homomorphisms by depth-first
// backtracking. Source vertices are assigned in the order of a seeded BFS forest
// (mapped vertices first, then breadth-first outward, ignoring edge direction), so each
// new vertex usually has an already-mapped neighbor. Candidate images for a vertex are
// the intersection of the target adjacency bitsets of its mapped neighbors' images;
// candidates are tried in ascending target ID order. A limit of 0 enumerates every map;
// Exists is the limit-1 query used by core reduction.
//
// For a fixed pair of graphs and partial map the sequence of results is reproducible.
// The empty source graph has exactly one homomorphism (the empty map) into any target.
//
// Validation
//
//	IsHomomorphism(g, h, m)                    edge preservation for a total map
//	RespectsSubspace(g, space, m, isomorphic)  fibers are cosets of subspaces
//
// Errors
//
//	Malformed input (nil graphs, mixed directedness, unknown vertices, a partial map that
//	already violates an edge) is reported with the sentinels in types.go. Absence of a
//	homomorphism is never an error: Extend returns an empty slice, Count returns 0.
//
// Concurrency
//
//	A search owns all of its state and only reads the graphs, so independent searches may
//	run in parallel on shared graphs.
package homomorphism
