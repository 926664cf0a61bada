package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/bfs"
	"github.com/katalvlaran/lvhom/core"
)

func mustGraph(t *testing.T, vertices []string, edges [][2]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(vertices, edges, opts...)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, []string{"A"}, nil)
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithSeeds("ghost"))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["D"])
	assert.Equal(t, 2, res.Depth["C"])

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, []string{"P", "Q", "X", "Y"}, [][2]string{{"X", "Y"}, {"P", "Q"}})

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)

	_, err = res.PathTo("P")
	assert.Error(t, err)

	res, err = bfs.BFS(g, "X", bfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "P", "Q"}, res.Order)
	assert.Equal(t, 0, res.Depth["P"])
}

func TestBFS_Seeds(t *testing.T) {
	// path a-b-c-d-e with roots a and e
	g := mustGraph(t, []string{"a", "b", "c", "d", "e"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}})
	res, err := bfs.BFS(g, "a", bfs.WithSeeds("e", "a", "e"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "e", "b", "d", "c"}, res.Order)
	assert.Equal(t, 0, res.Depth["e"])
	assert.Equal(t, 1, res.Depth["d"])
}

func TestBFS_IgnoreDirection(t *testing.T) {
	g := mustGraph(t, []string{"a", "b", "c"}, [][2]string{{"b", "a"}, {"b", "c"}}, core.WithDirected(true))

	res, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Order)

	res, err = bfs.BFS(g, "a", bfs.WithIgnoreDirection())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_HooksAndAbort(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	var enq []string
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, fmt.Sprintf("%s@%d", id, d)) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A@0", "B@1"}, enq)
}

func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, []string{"v0", "v1"}, [][2]string{{"v0", "v1"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
