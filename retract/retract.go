// SPDX-License-Identifier: MIT

package retract

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/homomorphism"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("retract: graph is nil")

	// ErrUnknownCandidate indicates a WithCandidates vertex that is not in the graph.
	ErrUnknownCandidate = errors.New("retract: candidate vertex not found")
)

// Option configures FindHomImage, FindCore and IsCore.
type Option func(*options)

type options struct {
	ctx        context.Context
	candidates []string
	transitive bool
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext bounds every search with ctx.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithCandidates restricts FindHomImage to deleting one of ids. FindCore applies it to
// the first step only, since later graphs may no longer contain those vertices.
func WithCandidates(ids ...string) Option {
	return func(o *options) { o.candidates = append([]string(nil), ids...) }
}

// WithVertexTransitive declares the input vertex-transitive.
func WithVertexTransitive() Option {
	return func(o *options) { o.transitive = true }
}

// FindHomImage returns a proper induced subgraph of g that g maps onto, and true; or
// (nil, false) when no candidate vertex can be removed.
//
// Candidates are tried in the order given (default: g.Vertices()). The result is induced
// on the image of the first witness found, so it may be smaller than g−v.
func FindHomImage(g *core.Graph, opts ...Option) (*core.Graph, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	o := newOptions(opts...)

	return findHomImage(g, o.candidates, o)
}

func findHomImage(g *core.Graph, candidates []string, o options) (*core.Graph, bool, error) {
	if candidates == nil {
		candidates = g.Vertices()
	}
	for _, v := range candidates {
		if !g.HasVertex(v) {
			return nil, false, errors.Wrapf(ErrUnknownCandidate, "%q", v)
		}
		h, err := g.WithoutVertex(v)
		if err != nil {
			return nil, false, err
		}
		m, ok, err := homomorphism.Exists(g, h, nil, homomorphism.WithContext(o.ctx))
		if err != nil {
			return nil, false, errors.Wrapf(err, "retract: mapping into G-%s", v)
		}
		if !ok {
			continue
		}
		image, err := g.Subgraph(m.Image())
		if err != nil {
			return nil, false, err
		}
		klog.V(3).Infof("retract: removing %s gives order %d", v, image.VertexCount())

		return image, true, nil
	}

	return nil, false, nil
}

// FindCore returns the core of g: reductions are applied until none exists. Complete
// graphs are returned as they are without searching. The result is an induced subgraph
// of g and never g itself unless g is a core.
//
// Complexity: at most |V(g)| calls of FindHomImage, each at most |V(g)| searches.
func FindCore(g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)
	if g.IsComplete() {
		klog.V(2).Infof("retract: K%d is its own core", g.VertexCount())
		return g, nil
	}

	candidates := o.candidates
	if o.transitive && candidates == nil && g.VertexCount() > 0 {
		candidates = g.Vertices()[:1]
	}

	cur := g
	for step := 1; ; step++ {
		next, ok, err := findHomImage(cur, candidates, o)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		klog.V(2).Infof("retract: step %d, order %d -> %d", step, cur.VertexCount(), next.VertexCount())
		cur, candidates = next, nil
	}

	return cur, nil
}

// IsCore reports whether no vertex of g can be removed.
func IsCore(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	o := newOptions(opts...)
	if g.IsComplete() {
		return true, nil
	}
	candidates := o.candidates
	if o.transitive && candidates == nil && g.VertexCount() > 0 {
		candidates = g.Vertices()[:1]
	}
	_, ok, err := findHomImage(g, candidates, o)
	if err != nil {
		return false, err
	}

	return !ok, nil
}
