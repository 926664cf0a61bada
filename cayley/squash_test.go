package cayley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/canon"
	"github.com/katalvlaran/lvhom/cayley"
	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/homomorphism"
	"github.com/katalvlaran/lvhom/vecspace"
)

func TestSquash_SquareToEdge(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.Basis()...)

	q, err := cayley.Squash(g, sp, sp.MustVector(1, 1))
	require.NoError(t, err)
	require.Equal(t, cayley.Collapsed, q.Outcome)
	assert.Equal(t, []string{"00", "01"}, q.Survivors)
	assert.Equal(t, homomorphism.Map{"00": "00", "11": "00", "01": "01", "10": "01"}, q.Map)

	k2, err := builder.BuildGraph(nil, nil, builder.Complete(2))
	require.NoError(t, err)
	iso, err := canon.Isomorphic(q.Image, k2)
	require.NoError(t, err)
	assert.True(t, iso)

	ok, err := homomorphism.IsHomomorphism(g, q.Image, q.Map)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSquash_InitialChoiceOne(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.Basis()...)

	q, err := cayley.Squash(g, sp, sp.MustVector(1, 1), cayley.WithInitialChoice(1))
	require.NoError(t, err)
	require.Equal(t, cayley.Collapsed, q.Outcome)
	assert.Equal(t, []string{"10", "11"}, q.Survivors)
}

func TestSquash_EdgeContraction(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.Basis()...)

	q, err := cayley.Squash(g, sp, sp.MustVector(1, 0))
	require.NoError(t, err)
	assert.Equal(t, cayley.EdgeContraction, q.Outcome)
	assert.Equal(t, [2]string{"00", "10"}, q.Witness)
	assert.Nil(t, q.Map)
	assert.Nil(t, q.Image)
}

func TestSquash_CubeByAntipode(t *testing.T) {
	sp := vecspace.GF2(3)
	g := cube(t, sp, sp.Basis()...)

	q, err := cayley.Squash(g, sp, sp.MustVector(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, cayley.Contradiction, q.Outcome)
	assert.Equal(t, "contradiction", q.Outcome.String())
	assert.Nil(t, q.Survivors)
}

// anySelectionWorks tries every choice of one vertex per pair {v, v+c} and reports
// whether any of them is an endomorphism of g.
func anySelectionWorks(t *testing.T, g *core.Graph, sp *vecspace.Space, c vecspace.Vector) bool {
	t.Helper()
	var pairs [][2]string
	seen := map[string]bool{}
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		v, err := sp.Parse(id)
		require.NoError(t, err)
		w := sp.Label(sp.Add(v, c))
		seen[id], seen[w] = true, true
		pairs = append(pairs, [2]string{id, w})
	}
	for mask := 0; mask < 1<<len(pairs); mask++ {
		m := homomorphism.Map{}
		for i, p := range pairs {
			keep := p[(mask>>i)&1]
			m[p[0]], m[p[1]] = keep, keep
		}
		ok, err := homomorphism.IsHomomorphism(g, g, m)
		require.NoError(t, err)
		if ok {
			return true
		}
	}

	return false
}

func TestSquash_ExhaustiveSmallCubes(t *testing.T) {
	for n := 1; n <= 3; n++ {
		it := cayley.CubeLikeGraphs(n)
		sp := it.Space()
		for it.Next() {
			g := it.Graph()
			for _, c := range sp.Elements() {
				if c.IsZero() {
					continue
				}
				q0, err := cayley.Squash(g, sp, c, cayley.WithInitialChoice(0))
				require.NoError(t, err)
				q1, err := cayley.Squash(g, sp, c, cayley.WithInitialChoice(1))
				require.NoError(t, err)

				label := sp.Label(c)
				assert.Equal(t, q0.Outcome, q1.Outcome, "n=%d gens=%v c=%s", n, it.Generators(), label)
				assert.Equal(t, anySelectionWorks(t, g, sp, c), q0.Outcome == cayley.Collapsed,
					"n=%d gens=%v c=%s", n, it.Generators(), label)

				if q0.Outcome != cayley.Collapsed {
					continue
				}
				assert.Len(t, q0.Survivors, sp.Size()/2)
				ok, err := homomorphism.IsHomomorphism(g, q0.Image, q0.Map)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		}
		require.NoError(t, it.Err())
		require.NoError(t, it.Close())
	}
}

func TestSquash_Errors(t *testing.T) {
	sp := vecspace.GF2(2)
	g := cube(t, sp, sp.Basis()...)
	c := sp.MustVector(1, 1)

	_, err := cayley.Squash(nil, sp, c)
	assert.ErrorIs(t, err, cayley.ErrNilGraph)

	_, err = cayley.Squash(g, nil, c)
	assert.ErrorIs(t, err, cayley.ErrNilSpace)

	_, err = cayley.Squash(g, sp, sp.Zero())
	assert.ErrorIs(t, err, cayley.ErrZeroDisplacement)

	_, err = cayley.Squash(g, sp, vecspace.Vector{1})
	assert.ErrorIs(t, err, vecspace.ErrDimensionMismatch)

	dg, err := cayley.NewGraph(sp, sp.Basis(), cayley.WithDirected())
	require.NoError(t, err)
	_, err = cayley.Squash(dg, sp, c)
	assert.ErrorIs(t, err, cayley.ErrDirectedGraph)

	t3, err := vecspace.New(3, 2)
	require.NoError(t, err)
	_, err = cayley.Squash(g, t3, t3.MustVector(1, 1))
	assert.ErrorIs(t, err, cayley.ErrNotBinarySpace)

	foreign := core.NewGraph()
	require.NoError(t, foreign.AddVertex("xy"))
	_, err = cayley.Squash(foreign, sp, c)
	assert.ErrorIs(t, err, cayley.ErrForeignVertex)

	half := core.NewGraph()
	require.NoError(t, half.AddVertex("00"))
	_, err = cayley.Squash(half, sp, c)
	assert.ErrorIs(t, err, cayley.ErrForeignVertex)

	assert.Panics(t, func() { cayley.WithInitialChoice(2) })
}
