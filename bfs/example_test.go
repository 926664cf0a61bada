package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvhom/bfs"
	"github.com/katalvlaran/lvhom/core"
)

// ExampleBFS_forest orders every vertex of a two-component graph.
func ExampleBFS_forest() {
	g, _ := core.FromEdges(
		[]string{"0", "1", "2", "3", "4"},
		[][2]string{{"0", "1"}, {"1", "2"}, {"3", "4"}},
	)
	res, _ := bfs.BFS(g, "2", bfs.WithFullTraversal())
	fmt.Println(res.Order)

	// Output:
	// [2 1 0 3 4]
}
