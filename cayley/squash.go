package cayley

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/homomorphism"
	"github.com/katalvlaran/lvhom/vecspace"
)

// Squash errors. All of them are caller errors; negative answers are Outcomes.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("cayley: graph is nil")

	// ErrDirectedGraph indicates a directed input; Squash works on undirected graphs only.
	ErrDirectedGraph = errors.New("cayley: squash requires an undirected graph")

	// ErrNotBinarySpace indicates a space over a field other than GF(2).
	ErrNotBinarySpace = errors.New("cayley: squash requires a space over GF(2)")

	// ErrZeroDisplacement indicates c = 0.
	ErrZeroDisplacement = errors.New("cayley: displacement must be nonzero")

	// ErrForeignVertex indicates a vertex that is not a label of the space, or whose
	// translate by c is not a vertex.
	ErrForeignVertex = errors.New("cayley: vertex is not an element of the space")
)

// Outcome classifies the result of Squash.
type Outcome int

const (
	// Collapsed means every pair {v, v+c} was identified consistently.
	Collapsed Outcome = iota

	// EdgeContraction means some v is adjacent to v+c.
	EdgeContraction

	// Contradiction means propagation forced both members of a pair to survive.
	Contradiction
)

func (o Outcome) String() string {
	switch o {
	case Collapsed:
		return "collapsed"
	case EdgeContraction:
		return "edge-contraction"
	case Contradiction:
		return "contradiction"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Quotient is the result of Squash.
type Quotient struct {
	Outcome Outcome

	// Map sends both members of every pair to the survivor. Nil unless Collapsed.
	Map homomorphism.Map

	// Survivors lists the chosen vertices in ascending order. Nil unless Collapsed.
	Survivors []string

	// Image is the subgraph induced by Survivors. Nil unless Collapsed.
	Image *core.Graph

	// Witness is the adjacent pair {v, v+c} for EdgeContraction, or the pair whose
	// choice conflicted for Contradiction.
	Witness [2]string
}

// SquashOption configures Squash.
type SquashOption func(*squashConfig)

type squashConfig struct {
	initial int
}

// WithInitialChoice sets which member (0 = smaller label, 1 = larger) survives in the
// first pair of every propagation round. Panics unless sel is 0 or 1.
func WithInitialChoice(sel int) SquashOption {
	if sel != 0 && sel != 1 {
		panic(fmt.Sprintf("cayley: WithInitialChoice(%d) must be 0 or 1", sel))
	}

	return func(c *squashConfig) { c.initial = sel }
}

// choice asks pair to keep member sel.
type choice struct {
	pair int
	sel  int
}

// squasher holds the pairing tables shared by the propagation rounds.
type squasher struct {
	g      *core.Graph
	pairs  [][2]string    // pairs[i] = {smaller, larger} label
	pairOf map[string]int // vertex → pair index
	sideOf map[string]int // vertex → 0 or 1 within its pair
	chosen []int          // -1 undecided, else survivor index

	undecided *treeset.Set // pair indices, smallest popped first
	work      *arraystack.Stack
}

// Squash identifies every vertex v of the cube-like graph g with v+c.
//
// g must be undirected (ErrDirectedGraph), space must be over GF(2) (ErrNotBinarySpace),
// c must be a nonzero element of space (ErrZeroDisplacement) and every vertex ID must be a
// label of space whose translate by c is again a vertex (ErrForeignVertex).
//
// Complexity: O(V·Δ) after O(V·dim) pairing, Δ the maximum degree.
func Squash(g *core.Graph, space *vecspace.Space, c vecspace.Vector, opts ...SquashOption) (*Quotient, error) {
	cfg := squashConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if space == nil {
		return nil, ErrNilSpace
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if space.Q() != 2 {
		return nil, errors.Wrapf(ErrNotBinarySpace, "q=%d", space.Q())
	}
	if err := space.Check(c); err != nil {
		return nil, errors.Wrap(err, "cayley: displacement")
	}
	if c.IsZero() {
		return nil, ErrZeroDisplacement
	}

	vertices := g.Vertices()
	partner := make(map[string]string, len(vertices))
	for _, id := range vertices {
		v, err := space.Parse(id)
		if err != nil {
			return nil, errors.Wrapf(ErrForeignVertex, "%q: %v", id, err)
		}
		w := space.Label(space.Add(v, c))
		if !g.HasVertex(w) {
			return nil, errors.Wrapf(ErrForeignVertex, "%q+c = %q is not a vertex", id, w)
		}
		partner[id] = w
	}

	s := &squasher{
		g:         g,
		pairOf:    make(map[string]int, len(vertices)),
		sideOf:    make(map[string]int, len(vertices)),
		undecided: treeset.NewWithIntComparator(),
		work:      arraystack.New(),
	}
	for _, v := range vertices {
		w := partner[v]
		if g.HasEdge(v, w) {
			return &Quotient{Outcome: EdgeContraction, Witness: [2]string{v, w}}, nil
		}
		if _, seen := s.pairOf[v]; seen {
			continue
		}
		// vertices are sorted and w was not seen yet, so v < w
		idx := len(s.pairs)
		s.pairs = append(s.pairs, [2]string{v, w})
		s.pairOf[v], s.sideOf[v] = idx, 0
		s.pairOf[w], s.sideOf[w] = idx, 1
		s.undecided.Add(idx)
	}
	s.chosen = make([]int, len(s.pairs))
	for i := range s.chosen {
		s.chosen[i] = -1
	}

	for !s.undecided.Empty() {
		it := s.undecided.Iterator()
		it.First()
		p := it.Value().(int)
		if bad, ok := s.extend(choice{pair: p, sel: cfg.initial}); !ok {
			klog.V(3).Infof("cayley: squash by %s contradicts at pair %v", space.Label(c), s.pairs[bad])
			return &Quotient{Outcome: Contradiction, Witness: s.pairs[bad]}, nil
		}
	}

	return s.quotient()
}

// extend records start and every choice it forces. It returns the index of the
// conflicting pair and false on contradiction.
func (s *squasher) extend(start choice) (int, bool) {
	s.work.Clear()
	s.work.Push(start)
	for !s.work.Empty() {
		top, _ := s.work.Pop()
		ch := top.(choice)
		if cur := s.chosen[ch.pair]; cur >= 0 {
			if cur != ch.sel {
				return ch.pair, false
			}
			continue
		}
		s.chosen[ch.pair] = ch.sel
		s.undecided.Remove(ch.pair)

		v := s.pairs[ch.pair][ch.sel]
		w := s.pairs[ch.pair][1-ch.sel]
		neighbors, _ := s.g.NeighborIDs(v) // v is a vertex of g
		// push in reverse so neighbors are examined in ascending order
		for i := len(neighbors) - 1; i >= 0; i-- {
			n := neighbors[i]
			if s.g.HasEdge(n, w) {
				continue
			}
			s.work.Push(choice{pair: s.pairOf[n], sel: s.sideOf[n]})
		}
	}

	return -1, true
}

// quotient builds the Collapsed result from a complete selection.
func (s *squasher) quotient() (*Quotient, error) {
	m := make(homomorphism.Map, 2*len(s.pairs))
	survivors := make([]string, 0, len(s.pairs))
	for i, p := range s.pairs {
		keep := p[s.chosen[i]]
		m[p[0]], m[p[1]] = keep, keep
		survivors = append(survivors, keep)
	}
	image, err := s.g.Subgraph(survivors)
	if err != nil {
		return nil, err
	}

	return &Quotient{Outcome: Collapsed, Map: m, Survivors: image.Vertices(), Image: image}, nil
}
