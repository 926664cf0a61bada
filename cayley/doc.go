// Package cayley builds Cayley graphs over the vector spaces of package vecspace and
// analyses cube-like graphs, the Cayley graphs over GF(2)^n.
//
// Construction
//
//	NewGraph(space, gens) has a vertex per element of space, labelled with
//	space.Label, and an edge v→v+g for every vertex v and generator g.
//
// Squash
//
//	Squash(g, space, c) decides whether a cube-like graph admits a homomorphism onto an
//	induced subgraph that identifies v with v+c for every vertex v. The vertices are
//	split into pairs {v, v+c}; choosing a survivor in one pair forces choices in
//	neighbouring pairs, and the forced choices are propagated on an explicit stack.
//	There are three distinct outcomes:
//
//	  Collapsed        a consistent selection exists; Quotient.Map is the homomorphism
//	  EdgeContraction  some v is adjacent to v+c, so identifying them would need a loop
//	  Contradiction    propagation forced both members of one pair to survive
//
//	The forcing relation is symmetric and translation by c is an automorphism, so a
//	contradiction from one initial orientation implies one from the other; the solver
//	never retries the opposite choice.
//
// Enumeration
//
//	CubeLikeGraphs(n) lazily yields one representative per isomorphism class of the
//	cube-like graphs generated by the unit basis plus a subset of the vectors of weight
//	at least two. Duplicates are removed by canonical form (package canon) recorded in a
//	seen-set (package catalog). The iterator is single-pass.
package cayley
