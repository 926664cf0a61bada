package cayley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/canon"
	"github.com/katalvlaran/lvhom/cayley"
	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/vecspace"
)

func cube(t *testing.T, space *vecspace.Space, gens ...vecspace.Vector) *core.Graph {
	t.Helper()
	g, err := cayley.NewGraph(space, gens)
	require.NoError(t, err)

	return g
}

func TestNewGraph_Square(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.Basis()...)

	assert.Equal(t, []string{"00", "01", "10", "11"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("00", "01"))
	assert.True(t, g.HasEdge("00", "10"))
	assert.False(t, g.HasEdge("00", "11"))

	c4, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	iso, err := canon.Isomorphic(g, c4)
	require.NoError(t, err)
	assert.True(t, iso)
}

func TestNewGraph_AllNonzeroIsComplete(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.MustVector(1, 0), sp.MustVector(0, 1), sp.MustVector(1, 1))

	assert.True(t, g.IsComplete())
	k4, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	iso, err := canon.Isomorphic(g, k4)
	require.NoError(t, err)
	assert.True(t, iso)
}

func TestNewGraph_TernaryDirected(t *testing.T) {
	sp, err := vecspace.New(3, 1)
	require.NoError(t, err)
	g, err := cayley.NewGraph(sp, []vecspace.Vector{sp.MustVector(1)}, cayley.WithDirected())
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))
	assert.False(t, g.HasEdge("0", "2"))
}

func TestNewGraph_RepeatedGenerator(t *testing.T) {
	sp := vecspace.GF2(3)
	e := sp.Basis()
	g := cube(t, sp, e[0], e[1], e[2], e[0])
	assert.Equal(t, 12, g.EdgeCount())
}

func TestNewGraph_Errors(t *testing.T) {
	sp := vecspace.GF2(2)

	_, err := cayley.NewGraph(nil, nil)
	assert.ErrorIs(t, err, cayley.ErrNilSpace)

	_, err = cayley.NewGraph(sp, []vecspace.Vector{{1, 0, 1}})
	assert.ErrorIs(t, err, cayley.ErrGeneratorNotInSpace)

	_, err = cayley.NewGraph(sp, []vecspace.Vector{{2, 0}})
	assert.ErrorIs(t, err, cayley.ErrGeneratorNotInSpace)

	_, err = cayley.NewGraph(sp, []vecspace.Vector{sp.Zero()})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	g, err := cayley.NewGraph(sp, []vecspace.Vector{sp.Zero()}, cayley.WithLoops())
	require.NoError(t, err)
	assert.True(t, g.HasEdge("01", "01"))
}
