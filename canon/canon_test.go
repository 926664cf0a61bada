package canon_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/canon"
	"github.com/katalvlaran/lvhom/core"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// relabel returns a copy of g with vertex IDs permuted by a seeded shuffle.
func relabel(t *testing.T, g *core.Graph, seed int64) *core.Graph {
	t.Helper()
	ids := g.Vertices()
	perm := rand.New(rand.NewSource(seed)).Perm(len(ids))
	name := make(map[string]string, len(ids))
	for i, id := range ids {
		name[id] = "x" + strconv.Itoa(perm[i])
	}
	var opts []core.GraphOption
	opts = append(opts, core.WithDirected(g.Directed()))
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	h := core.NewGraph(opts...)
	for _, id := range ids {
		require.NoError(t, h.AddVertex(name[id]))
	}
	for _, e := range g.Edges() {
		_, err := h.AddEdge(name[e.From], name[e.To])
		require.NoError(t, err)
	}

	return h
}

func TestIsomorphic_Relabelings(t *testing.T) {
	graphs := map[string]*core.Graph{
		"K5":     build(t, builder.Complete(5)),
		"C7":     build(t, builder.Cycle(7)),
		"W7":     build(t, builder.Wheel(7)),
		"K3,4":   build(t, builder.CompleteBipartite(3, 4)),
		"E4":     build(t, builder.Empty(4)),
		"Star6":  build(t, builder.Star(6)),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				ok, err := canon.Isomorphic(g, relabel(t, g, seed))
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestIsomorphic_Distinguishes(t *testing.T) {
	c6 := build(t, builder.Cycle(6))
	k3, err := builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	twoK3, err := k3.DisjointUnion(k3)
	require.NoError(t, err)

	ok, err := canon.Isomorphic(c6, twoK3)
	require.NoError(t, err)
	assert.False(t, ok, "same degree sequence, different graphs")

	ok, err = canon.Isomorphic(build(t, builder.Path(4)), build(t, builder.Star(4)))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = canon.Isomorphic(build(t, builder.Empty(2)), build(t, builder.Empty(3)))
	require.NoError(t, err)
	assert.False(t, ok)

	dir, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	ok, err = canon.Isomorphic(build(t, builder.Complete(3)), dir)
	require.NoError(t, err)
	assert.False(t, ok, "orientation is part of the form")
}

func TestDirected_Orientation(t *testing.T) {
	ring := func(edges [][2]string) *core.Graph {
		g, err := core.FromEdges([]string{"a", "b", "c"}, edges, core.WithDirected(true))
		require.NoError(t, err)
		return g
	}
	cyc := ring([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	cyc2 := ring([][2]string{{"b", "a"}, {"c", "b"}, {"a", "c"}})
	trans := ring([][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	ok, err := canon.Isomorphic(cyc, cyc2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = canon.Isomorphic(cyc, trans)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoops(t *testing.T) {
	a, err := core.FromEdges([]string{"1", "2"}, [][2]string{{"1", "1"}, {"1", "2"}}, core.WithLoops())
	require.NoError(t, err)
	b, err := core.FromEdges([]string{"p", "q"}, [][2]string{{"q", "q"}, {"p", "q"}}, core.WithLoops())
	require.NoError(t, err)
	c, err := core.FromEdges([]string{"p", "q"}, [][2]string{{"p", "q"}}, core.WithLoops())
	require.NoError(t, err)

	ok, err := canon.Isomorphic(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = canon.Isomorphic(a, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanonicalEdges(t *testing.T) {
	p3 := build(t, builder.Path(3))
	r, err := canon.Canonical(p3)
	require.NoError(t, err)
	assert.Len(t, r.Order, 3)

	edges, err := canon.CanonicalEdges(p3)
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	other, err := canon.CanonicalEdges(relabel(t, p3, 42))
	require.NoError(t, err)
	assert.Equal(t, edges, other)
}

func TestEmptyAndNil(t *testing.T) {
	f, err := canon.Form(core.NewGraph())
	require.NoError(t, err)
	assert.NotEmpty(t, f)

	_, err = canon.Form(nil)
	assert.ErrorIs(t, err, canon.ErrNilGraph)

	var cz canon.Canonizer = canon.Default
	g, err := cz.Canonize(build(t, builder.Complete(2)))
	require.NoError(t, err)
	assert.NotEmpty(t, g)
}
