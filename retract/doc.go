// Package retract reduces graphs to their cores.
//
// The core of G is the smallest induced subgraph H of G with a homomorphism G→H. It is
// unique up to isomorphism and G is homomorphically equivalent to it.
//
// FindHomImage performs one reduction step: for each candidate vertex v it asks the
// homomorphism search whether G maps into G−v, and if so returns the subgraph induced by
// the witness image. FindCore repeats that step until no candidate works; every step
// removes at least one vertex, so at most |V(G)| steps run.
//
//	core, err := retract.FindCore(g)
//	ok, err := retract.IsCore(g)
//
// Vertex-transitive inputs (Cayley graphs, cycles, complete graphs) may pass
// WithVertexTransitive, which tries only the first vertex in the first step: every vertex
// is equivalent under an automorphism, so one test decides whether any vertex can go.
package retract
