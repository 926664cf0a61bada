// Package canon computes canonical forms of graphs: byte strings that are equal exactly
// when two graphs are isomorphic.
//
// The search follows the individualization-refinement scheme:
//
//  1. Refine an ordered vertex partition until it is equitable: vertices stay in the same
//     cell only while they have the same number of (out- and in-) neighbours in every cell.
//     New cells are ordered by those counts, so the refinement commutes with isomorphisms.
//  2. If a cell is still non-singleton, individualize each vertex of the first smallest
//     such cell in turn and recurse.
//  3. Every discrete partition is a labelling; the form is the adjacency matrix read under
//     that labelling, and the lexicographically largest form wins.
//
// Twins (vertices whose neighbourhoods agree apart from each other) are interchangeable by
// an automorphism, so only one vertex per twin class is individualized. This keeps
// complete, edgeless and complete multipartite graphs linear in depth.
//
// Forms carry the directedness flag and the order, so graphs of different order or
// orientation never compare equal.
package canon
