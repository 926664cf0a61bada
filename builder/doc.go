// Package builder provides deterministic constructors for the small named graphs
// used as homomorphism targets and fixtures: complete graphs K_n, cycles C_n,
// paths P_n, stars, wheels, complete bipartite graphs K_{m,n} and edgeless graphs.
//
// Constructors are composed with BuildGraph:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(16))
//
// Configuration primitives:
//
//   - BuilderOption: mutates builderConfig before construction.
//   - IDFn: vertex ID scheme (DefaultIDFn "0","1",…; SymbolIDFn "A","B",…;
//     SymbolNumberIDFn(prefix) "v0","v1",…).
//   - WithPartitionPrefix: bipartite side labels (default "L"/"R").
//
// Guarantees:
//
//   - Re-running a constructor on the same graph adds nothing new (core edges are sets).
//   - Option constructors panic on nil arguments; invalid sizes return ErrTooFewVertices.
//   - Directed graphs receive both orientations of every edge, so K_n stays complete.
package builder
