package builder

import (
	"fmt"

	"github.com/katalvlaran/lvhom/core"
)

// Constructor adds a named structure to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts once and applies each constructor
// in order. The first failing constructor aborts the build.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Must is BuildGraph for fixtures whose parameters are known to be valid. It panics on error.
func Must(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(gopts, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addVertices inserts idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds u–v; on directed graphs the reverse arc is added too.
func link(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}
