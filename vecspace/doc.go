// Package vecspace implements the finite vector spaces GF(q)^n (q prime) that label the
// vertices of Cayley graphs, together with spans and subspaces.
//
// Vectors are plain coordinate slices; all arithmetic goes through the owning Space,
// which knows the field order:
//
//	s := vecspace.GF2(3)
//	v := s.MustVector(1, 0, 1)
//	w := s.Add(v, s.MustVector(1, 1, 0)) // 011
//
// Subspaces are kept in reduced row echelon form, which is unique per subspace, so
// Subspace.Equal is a structural comparison of element sets and not a comparison of
// dimensions.
//
// Labels:
//
//	For q ≤ 10 a vector's label is its digits concatenated ("101"); for larger q the
//	coordinates are comma-separated ("3,0,12"). Labels are the vertex IDs of Cayley graphs.
package vecspace
