package homomorphism

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/vecspace"
)

// IsHomomorphism reports whether m is a homomorphism G→H.
//
// The domain of m must be exactly V(G) (ErrDomainMismatch) and every value must be a
// vertex of H (ErrImageNotInTarget). An edge whose endpoints share an image needs a
// loop at that image in H, so on loop-free targets such maps are rejected.
//
// Complexity: O(V(G) + E(G)).
func IsHomomorphism(g, h *core.Graph, m Map) (bool, error) {
	if err := checkTotal(g, h, m); err != nil {
		return false, err
	}
	for _, e := range g.Edges() {
		if !h.HasEdge(m[e.From], m[e.To]) {
			return false, nil
		}
	}

	return true, nil
}

// checkTotal validates that m is a total map V(G) → V(H).
func checkTotal(g, h *core.Graph, m Map) error {
	if g == nil || h == nil {
		return ErrNilGraph
	}
	if g.Directed() != h.Directed() {
		return ErrDirectednessMismatch
	}
	if len(m) != g.VertexCount() {
		return errors.Wrapf(ErrDomainMismatch, "map has %d keys, graph has %d vertices", len(m), g.VertexCount())
	}
	for _, v := range g.Vertices() {
		img, ok := m[v]
		if !ok {
			return errors.Wrapf(ErrDomainMismatch, "vertex %q unmapped", v)
		}
		if !h.HasVertex(img) {
			return errors.Wrapf(ErrImageNotInTarget, "%q→%q", v, img)
		}
	}

	return nil
}

// RespectsSubspace reports whether m factors the vertices of G (labelled by elements of
// space) through subspaces: every fiber m⁻¹(y), translated to the origin, must be a full
// coset of the subspace it spans. With requireIsomorphicFibers every fiber must span the
// same subspace.
//
// The domain of m must be exactly V(G) (ErrDomainMismatch) and every vertex ID must parse
// as an element of space (ErrForeignVertex).
func RespectsSubspace(g *core.Graph, space *vecspace.Space, m Map, requireIsomorphicFibers bool) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if space == nil {
		return false, ErrNilSpace
	}
	if len(m) != g.VertexCount() {
		return false, errors.Wrapf(ErrDomainMismatch, "map has %d keys, graph has %d vertices", len(m), g.VertexCount())
	}

	fibers := make(map[string][]vecspace.Vector)
	for _, id := range g.Vertices() {
		img, ok := m[id]
		if !ok {
			return false, errors.Wrapf(ErrDomainMismatch, "vertex %q unmapped", id)
		}
		v, err := space.Parse(id)
		if err != nil {
			return false, errors.Wrapf(ErrForeignVertex, "%q: %v", id, err)
		}
		fibers[img] = append(fibers[img], v)
	}

	var common *vecspace.Subspace
	for _, img := range m.Image() {
		fiber := fibers[img]
		rep := fiber[0]
		shifted := make([]vecspace.Vector, len(fiber))
		for i, v := range fiber {
			shifted[i] = space.Sub(v, rep)
		}
		span, err := space.Span(shifted...)
		if err != nil {
			return false, err
		}
		if len(fiber) < span.Size() {
			return false, nil
		}
		if requireIsomorphicFibers {
			if common == nil {
				common = span
			} else if !common.Equal(span) {
				return false, nil
			}
		}
	}

	return true, nil
}
