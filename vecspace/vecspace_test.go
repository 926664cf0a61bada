package vecspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/vecspace"
)

func TestNew_Validation(t *testing.T) {
	for _, q := range []int{0, 1, 4, 9, 253, 257} {
		_, err := vecspace.New(q, 2)
		assert.ErrorIs(t, err, vecspace.ErrNotPrime, "q=%d", q)
	}
	_, err := vecspace.New(3, 0)
	assert.ErrorIs(t, err, vecspace.ErrBadDimension)

	s, err := vecspace.New(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 125, s.Size())
	assert.Panics(t, func() { vecspace.GF2(0) })
}

func TestElements_Lexicographic(t *testing.T) {
	s := vecspace.GF2(2)
	var labels []string
	for _, v := range s.Elements() {
		labels = append(labels, s.Label(v))
	}
	assert.Equal(t, []string{"00", "01", "10", "11"}, labels)

	for i, v := range s.Elements() {
		assert.Equal(t, i, s.Index(v))
	}
}

func TestArithmetic(t *testing.T) {
	s, err := vecspace.New(3, 2)
	require.NoError(t, err)
	a, b := s.MustVector(1, 2), s.MustVector(2, 2)

	assert.Equal(t, s.MustVector(0, 1), s.Add(a, b))
	assert.Equal(t, s.MustVector(2, 0), s.Sub(a, b))
	assert.Equal(t, s.MustVector(2, 1), s.Scale(2, a))
	assert.Equal(t, s.MustVector(2, 1), s.Neg(a))
	assert.Equal(t, s.MustVector(2, 1), s.Scale(-1, a))
	assert.True(t, s.Add(a, s.Neg(a)).IsZero())
	assert.Equal(t, 1, s.Weight(s.MustVector(0, 2)))

	v, err := s.Vector(-1, 4)
	require.NoError(t, err)
	assert.Equal(t, vecspace.Vector{2, 1}, v)

	_, err = s.Vector(1)
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch)

	// GF(2): every element is its own inverse
	g := vecspace.GF2(3)
	for _, x := range g.Elements() {
		assert.True(t, g.Add(x, x).IsZero())
	}
}

func TestLabels(t *testing.T) {
	s := vecspace.GF2(3)
	v := s.MustVector(1, 0, 1)
	assert.Equal(t, "101", s.Label(v))

	back, err := s.Parse("101")
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	back, err = s.Parse("1,0,1")
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	for _, bad := range []string{"", "10", "1021", "1x1", "2,0,0"} {
		_, err = s.Parse(bad)
		assert.ErrorIs(t, err, vecspace.ErrBadLabel, bad)
	}

	big, err := vecspace.New(13, 2)
	require.NoError(t, err)
	w := big.MustVector(12, 3)
	assert.Equal(t, "12,3", big.Label(w))
	back, err = big.Parse("12,3")
	require.NoError(t, err)
	assert.True(t, w.Equal(back))
}

func TestSpan_DimensionAndMembership(t *testing.T) {
	s := vecspace.GF2(3)
	u, err := s.Span(s.MustVector(1, 1, 0), s.MustVector(0, 1, 1), s.MustVector(1, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, u.Dimension())
	assert.Equal(t, 4, u.Size())
	assert.True(t, u.Contains(s.MustVector(1, 0, 1)))
	assert.True(t, u.Contains(s.Zero()))
	assert.False(t, u.Contains(s.MustVector(1, 0, 0)))
	assert.Len(t, u.Elements(), 4)

	zero, err := s.Span()
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Dimension())
	assert.Equal(t, 1, zero.Size())

	_, err = s.Span(vecspace.Vector{1, 0})
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch)
	_, err = s.Span(vecspace.Vector{1, 2, 0})
	assert.ErrorIs(t, err, vecspace.ErrNotInSpace)
}

func TestSubspace_EqualIsStructural(t *testing.T) {
	s := vecspace.GF2(3)
	a, err := s.Span(s.MustVector(1, 0, 0), s.MustVector(0, 1, 0))
	require.NoError(t, err)
	b, err := s.Span(s.MustVector(1, 1, 0), s.MustVector(1, 0, 0))
	require.NoError(t, err)
	c, err := s.Span(s.MustVector(0, 0, 1), s.MustVector(0, 1, 0))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same plane from different generators")
	assert.Equal(t, a.Dimension(), c.Dimension())
	assert.False(t, a.Equal(c), "equal dimension is not enough")
}

func TestSpan_OddPrime(t *testing.T) {
	s, err := vecspace.New(5, 3)
	require.NoError(t, err)
	u, err := s.Span(s.MustVector(2, 4, 0), s.MustVector(3, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, u.Dimension())
	assert.Equal(t, 25, u.Size())
	assert.True(t, u.Contains(s.Add(s.Scale(3, s.MustVector(2, 4, 0)), s.MustVector(3, 1, 1))))
	assert.Len(t, u.Elements(), 25)
	for _, b := range u.Basis() {
		assert.True(t, u.Contains(b))
	}
}
