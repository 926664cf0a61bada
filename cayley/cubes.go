package cayley

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvhom/canon"
	"github.com/katalvlaran/lvhom/catalog"
	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/vecspace"
)

// MaxCubeDimension bounds CubeLikeGraphs: the 2^n-n-1 optional generators must index a uint64 mask.
const MaxCubeDimension = 6

// ErrCubeDimension indicates a dimension outside [1, MaxCubeDimension].
var ErrCubeDimension = errors.New("cayley: cube dimension out of range")

// Canonizer computes canonical forms: equal forms iff isomorphic graphs.
type Canonizer interface {
	Canonize(g *core.Graph) ([]byte, error)
}

// SeenSet records canonical forms. TryAdd reports whether form was new.
type SeenSet interface {
	TryAdd(form []byte) (bool, error)
}

// CubeOption configures CubeLikeGraphs.
type CubeOption func(*cubeConfig)

type cubeConfig struct {
	avoidComplete bool
	canonizer     Canonizer
	seen          SeenSet
}

// WithAvoidComplete skips the generator set containing every optional vector, which
// yields the complete graph.
func WithAvoidComplete() CubeOption {
	return func(c *cubeConfig) { c.avoidComplete = true }
}

// WithCanonizer replaces the default canon.Default oracle.
func WithCanonizer(cz Canonizer) CubeOption {
	return func(c *cubeConfig) {
		if cz != nil {
			c.canonizer = cz
		}
	}
}

// WithSeenSet replaces the default in-memory catalog. The caller keeps ownership.
func WithSeenSet(s SeenSet) CubeOption {
	return func(c *cubeConfig) {
		if s != nil {
			c.seen = s
		}
	}
}

// CubeIterator yields pairwise non-isomorphic cube-like graphs one at a time.
//
//	it := cayley.CubeLikeGraphs(3)
//	defer it.Close()
//	for it.Next() {
//	    use(it.Generators(), it.Graph())
//	}
//	if err := it.Err(); err != nil { ... }
type CubeIterator struct {
	cfg   cubeConfig
	space *vecspace.Space

	base     []vecspace.Vector // unit vectors, always generators
	optional []vecspace.Vector // weight ≥ 2, in lexicographic order
	mask     uint64            // next subset of optional to try
	total    uint64            // 2^len(optional)

	owned *catalog.Catalog // default seen-set, closed by Close

	gens  []vecspace.Vector
	graph *core.Graph
	err   error
	done  bool
}

// CubeLikeGraphs returns an iterator over the cube-like graphs of dimension n generated by
// the unit basis plus every subset of the weight-≥2 vectors, subsets taken in ascending
// bitmask order, keeping the first graph of each isomorphism class.
//
// Counts: n=1 → 1, n=2 → 2, n=3 → 6.
func CubeLikeGraphs(n int, opts ...CubeOption) *CubeIterator {
	it := &CubeIterator{cfg: cubeConfig{canonizer: canon.Default}}
	for _, opt := range opts {
		opt(&it.cfg)
	}
	if n < 1 || n > MaxCubeDimension {
		it.fail(errors.Wrapf(ErrCubeDimension, "n=%d", n))
		return it
	}
	it.space = vecspace.GF2(n)
	it.base = it.space.Basis()
	for _, v := range it.space.Elements() {
		if it.space.Weight(v) >= 2 {
			it.optional = append(it.optional, v)
		}
	}
	it.total = 1 << uint(len(it.optional))

	if it.cfg.seen == nil {
		cat, err := catalog.Open(catalog.Options{InMemory: true})
		if err != nil {
			it.fail(errors.Wrap(err, "cayley: opening seen-set"))
			return it
		}
		it.owned, it.cfg.seen = cat, cat
	}

	return it
}

func (it *CubeIterator) fail(err error) {
	it.err, it.done = err, true
}

// Space returns GF(2)^n, or nil if construction failed.
func (it *CubeIterator) Space() *vecspace.Space { return it.space }

// Next advances to the next new isomorphism class. It returns false when the sequence is
// exhausted or an error occurred (see Err).
func (it *CubeIterator) Next() bool {
	if it.done {
		return false
	}
	step := it.total/100 + 1
	for it.mask < it.total {
		m := it.mask
		it.mask++
		if m%step == 0 {
			klog.V(2).Infof("cayley: generating %d of %d", m+1, it.total)
		}
		if it.cfg.avoidComplete && m == it.total-1 {
			continue
		}

		gens := append([]vecspace.Vector(nil), it.base...)
		for i, v := range it.optional {
			if m&(1<<uint(i)) != 0 {
				gens = append(gens, v)
			}
		}
		g, err := NewGraph(it.space, gens)
		if err != nil {
			it.fail(err)
			return false
		}
		form, err := it.cfg.canonizer.Canonize(g)
		if err != nil {
			it.fail(errors.Wrap(err, "cayley: canonical form"))
			return false
		}
		fresh, err := it.cfg.seen.TryAdd(form)
		if err != nil {
			it.fail(errors.Wrap(err, "cayley: seen-set"))
			return false
		}
		if !fresh {
			continue
		}
		klog.V(2).Infof("cayley: unique graph (%d of %d) with %d generators", m+1, it.total, len(gens))
		it.gens, it.graph = gens, g

		return true
	}
	it.done = true
	it.gens, it.graph = nil, nil

	return false
}

// Generators returns the generator set of the current graph.
func (it *CubeIterator) Generators() []vecspace.Vector { return it.gens }

// Graph returns the current graph.
func (it *CubeIterator) Graph() *core.Graph { return it.graph }

// Err returns the first error encountered, if any.
func (it *CubeIterator) Err() error { return it.err }

// Close stops the iteration and releases the default seen-set. Safe to call twice.
func (it *CubeIterator) Close() error {
	it.done = true
	if it.owned == nil {
		return nil
	}
	err := it.owned.Close()
	it.owned = nil

	return err
}
