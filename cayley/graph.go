package cayley

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/vecspace"
)

// Sentinel errors.
var (
	// ErrNilSpace indicates a nil vector space.
	ErrNilSpace = errors.New("cayley: vector space is nil")

	// ErrGeneratorNotInSpace indicates a generator that is not an element of the space.
	ErrGeneratorNotInSpace = errors.New("cayley: generator is not an element of the space")
)

// GraphOption configures NewGraph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
	loops    bool
}

// WithDirected builds the directed Cayley graph (arcs v→v+g only).
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithLoops admits the zero generator, which puts a loop on every vertex.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.loops = true }
}

// NewGraph returns the Cayley graph of space with respect to gens.
//
// Vertex IDs are space.Label(v). Without WithLoops a zero generator fails with
// core.ErrLoopNotAllowed. Repeated generators are harmless.
//
// Complexity: O(|space|·|gens|·dim).
func NewGraph(space *vecspace.Space, gens []vecspace.Vector, opts ...GraphOption) (*core.Graph, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	for i, gen := range gens {
		if err := space.Check(gen); err != nil {
			return nil, errors.Wrapf(ErrGeneratorNotInSpace, "generator %d: %v", i, err)
		}
	}

	gopts := []core.GraphOption{core.WithDirected(cfg.directed)}
	if cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)

	elems := space.Elements()
	for _, v := range elems {
		if err := g.AddVertex(space.Label(v)); err != nil {
			return nil, err
		}
	}
	for _, v := range elems {
		from := space.Label(v)
		for _, gen := range gens {
			to := space.Label(space.Add(v, gen))
			if _, err := g.AddEdge(from, to); err != nil {
				return nil, errors.Wrapf(err, "cayley: edge %s→%s", from, to)
			}
		}
	}

	return g, nil
}
