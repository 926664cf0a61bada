package homomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/cayley"
	"github.com/katalvlaran/lvhom/homomorphism"
	"github.com/katalvlaran/lvhom/vecspace"
)

func TestIsHomomorphism(t *testing.T) {
	k2 := build(t, builder.Complete(2))

	_, err := homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "0"})
	assert.ErrorIs(t, err, homomorphism.ErrDomainMismatch)

	_, err = homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "4"})
	assert.ErrorIs(t, err, homomorphism.ErrDomainMismatch)

	_, err = homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "0", "x": "1"})
	assert.ErrorIs(t, err, homomorphism.ErrDomainMismatch)

	_, err = homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "0", "1": "4"})
	assert.ErrorIs(t, err, homomorphism.ErrImageNotInTarget)

	ok, err := homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "0", "1": "0"})
	require.NoError(t, err)
	assert.False(t, ok, "adjacent vertices collapse onto a loop-free target")

	ok, err = homomorphism.IsHomomorphism(k2, k2, homomorphism.Map{"0": "1", "1": "0"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = homomorphism.IsHomomorphism(nil, k2, nil)
	assert.ErrorIs(t, err, homomorphism.ErrNilGraph)
}

func TestIsHomomorphism_Directed(t *testing.T) {
	dc3 := build(t, builder.DirectedCycle(3), directed())
	ok, err := homomorphism.IsHomomorphism(dc3, dc3, homomorphism.Map{"0": "1", "1": "2", "2": "0"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = homomorphism.IsHomomorphism(dc3, dc3, homomorphism.Map{"0": "0", "1": "2", "2": "1"})
	require.NoError(t, err)
	assert.False(t, ok, "reflection reverses arcs")
}

func TestRespectsSubspace(t *testing.T) {
	s3, s2 := vecspace.GF2(3), vecspace.GF2(2)
	g, err := cayley.NewGraph(s3, []vecspace.Vector{s3.MustVector(1, 0, 0), s3.MustVector(0, 1, 0)})
	require.NoError(t, err)
	h, err := cayley.NewGraph(s2, []vecspace.Vector{s2.MustVector(1, 0), s2.MustVector(0, 1), s2.MustVector(1, 1)})
	require.NoError(t, err)

	m := homomorphism.Map{
		"000": "00", "100": "10", "010": "01", "110": "11",
		"001": "00", "101": "10", "011": "11", "111": "01",
	}
	ok, err := homomorphism.IsHomomorphism(g, h, m)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = homomorphism.RespectsSubspace(g, s3, m, false)
	require.NoError(t, err)
	assert.True(t, ok, "each fiber is a coset")

	ok, err = homomorphism.RespectsSubspace(g, s3, m, true)
	require.NoError(t, err)
	assert.False(t, ok, "fibers are cosets of different lines")

	k2 := build(t, builder.Complete(2))
	colorings, err := homomorphism.Extend(g, k2, nil)
	require.NoError(t, err)
	require.Len(t, colorings, 4)
	for _, c := range colorings {
		ok, err = homomorphism.RespectsSubspace(g, s3, c, true)
		require.NoError(t, err)
		assert.True(t, ok, "%s", c)
	}
}

func TestRespectsSubspace_NotACoset(t *testing.T) {
	s := vecspace.GF2(2)
	g, err := cayley.NewGraph(s, []vecspace.Vector{s.MustVector(1, 1)})
	require.NoError(t, err)

	// fiber {00, 01, 10} spans the whole plane but has only 3 elements
	m := homomorphism.Map{"00": "a", "01": "a", "10": "a", "11": "b"}
	ok, err := homomorphism.RespectsSubspace(g, s, m, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRespectsSubspace_Errors(t *testing.T) {
	s := vecspace.GF2(2)
	k2 := build(t, builder.Complete(2))

	_, err := homomorphism.RespectsSubspace(k2, s, homomorphism.Map{"0": "0", "1": "1"}, false)
	assert.ErrorIs(t, err, homomorphism.ErrForeignVertex)

	_, err = homomorphism.RespectsSubspace(k2, s, homomorphism.Map{"0": "0"}, false)
	assert.ErrorIs(t, err, homomorphism.ErrDomainMismatch)

	_, err = homomorphism.RespectsSubspace(nil, s, nil, false)
	assert.ErrorIs(t, err, homomorphism.ErrNilGraph)
}
