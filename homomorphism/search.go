package homomorphism

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/bfs"
	"github.com/katalvlaran/lvhom/core"
)

// ctxPollMask sets how often (in search nodes) the context is polled.
const ctxPollMask = 1<<10 - 1

// Extend returns homomorphisms G→H that agree with partial, at most limit of them
// (WithLimit, 0 = all). partial may be nil.
//
// Returns an empty, non-nil slice when no homomorphism exists.
// Complexity: exponential in the number of unmapped vertices in the worst case.
func Extend(g, h *core.Graph, partial Map, opts ...Option) ([]Map, error) {
	s, err := prepare(g, h, partial, newOptions(opts...))
	if err != nil {
		return nil, err
	}
	out := make([]Map, 0)
	err = s.run(func() { out = append(out, s.materialize()) })
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of homomorphisms G→H extending partial, capped by WithLimit.
// No maps are materialised.
func Count(g, h *core.Graph, partial Map, opts ...Option) (int, error) {
	s, err := prepare(g, h, partial, newOptions(opts...))
	if err != nil {
		return 0, err
	}
	n := 0
	if err = s.run(func() { n++ }); err != nil {
		return 0, err
	}

	return n, nil
}

// Exists reports whether some homomorphism G→H extends partial and returns the first
// one found. Any WithLimit option is overridden with 1.
func Exists(g, h *core.Graph, partial Map, opts ...Option) (Map, bool, error) {
	o := newOptions(opts...)
	o.limit = 1
	s, err := prepare(g, h, partial, o)
	if err != nil {
		return nil, false, err
	}
	var found Map
	if err = s.run(func() { found = s.materialize() }); err != nil {
		return nil, false, err
	}

	return found, found != nil, nil
}

// constraint restricts the image of a vertex to rows[image of the vertex at pos].
type constraint struct {
	pos  int
	rows []bitset
}

// search is the state of one backtracking run.
type search struct {
	opts options

	src []string // source IDs in assignment order
	dst []string // target IDs, sorted; a target index is a position here

	fixed int            // positions [0,fixed) come from the partial map
	back  [][]constraint // back[k]: constraints of position k on earlier positions
	loop  []bool         // loop[k]: source vertex at k carries a self-loop

	hLoops bitset
	width  int // |V(H)|

	assign []int    // assign[k]: target index of position k
	cands  []bitset // scratch candidate set per position
	cursor []int
}

// prepare validates the input, fixes the vertex order and builds the target bitsets.
func prepare(g, h *core.Graph, partial Map, o options) (*search, error) {
	if g == nil || h == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() != h.Directed() {
		return nil, ErrDirectednessMismatch
	}

	dst := h.Vertices()
	dstIdx := make(map[string]int, len(dst))
	for i, id := range dst {
		dstIdx[id] = i
	}
	seeds := make([]string, 0, len(partial))
	for k, v := range partial {
		if !g.HasVertex(k) {
			return nil, errors.Wrapf(ErrSourceVertexNotFound, "%q", k)
		}
		if _, ok := dstIdx[v]; !ok {
			return nil, errors.Wrapf(ErrTargetVertexNotFound, "%q→%q", k, v)
		}
		seeds = append(seeds, k)
	}

	order, err := vertexOrder(g, seeds)
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	n, width := len(order), len(dst)
	s := &search{
		opts:   o,
		src:    order,
		dst:    dst,
		fixed:  len(seeds),
		back:   make([][]constraint, n),
		loop:   make([]bool, n),
		hLoops: newBitset(width),
		width:  width,
		assign: make([]int, n),
		cands:  make([]bitset, n),
		cursor: make([]int, n),
	}
	for i := range s.cands {
		s.cands[i] = newBitset(width)
	}

	out, in := make([]bitset, width), make([]bitset, width)
	for i := range out {
		out[i] = newBitset(width)
		in[i] = newBitset(width)
	}
	for _, e := range h.Edges() {
		a, b := dstIdx[e.From], dstIdx[e.To]
		out[a].set(b)
		in[b].set(a)
		if !h.Directed() {
			out[b].set(a)
			in[a].set(b)
		}
		if a == b {
			s.hLoops.set(a)
		}
	}

	// Every G edge becomes a constraint on its later endpoint.
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		switch {
		case a == b:
			s.loop[a] = true
		case a < b:
			// f(b) must be an out-neighbor of f(a)
			s.back[b] = append(s.back[b], constraint{pos: a, rows: out})
		default:
			// f(a) must be an in-neighbor of f(b)
			s.back[a] = append(s.back[a], constraint{pos: b, rows: in})
		}
	}

	// Seat the partial map and check it against its own edges.
	for k := 0; k < s.fixed; k++ {
		t := dstIdx[partial[order[k]]]
		s.assign[k] = t
		if !s.admits(k, t) {
			return nil, errors.Wrapf(ErrInconsistentPartialMap, "%q→%q", order[k], dst[t])
		}
	}

	return s, nil
}

// vertexOrder puts the partial-map domain first (sorted) and the rest in BFS forest order.
func vertexOrder(g *core.Graph, seeds []string) ([]string, error) {
	if g.VertexCount() == 0 {
		return nil, nil
	}
	sort.Strings(seeds)
	start := g.Vertices()[0]
	if len(seeds) > 0 {
		start = seeds[0]
	}
	res, err := bfs.BFS(g, start,
		bfs.WithSeeds(seeds...),
		bfs.WithFullTraversal(),
		bfs.WithIgnoreDirection(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "homomorphism: ordering source vertices")
	}

	return res.Order, nil
}

// admits reports whether target t satisfies every constraint of position k.
func (s *search) admits(k, t int) bool {
	if s.loop[k] && !s.hLoops.has(t) {
		return false
	}
	for _, c := range s.back[k] {
		if !c.rows[s.assign[c.pos]].has(t) {
			return false
		}
	}

	return true
}

// candidates fills s.cands[k] with every target admitted at position k.
func (s *search) candidates(k int) {
	c := s.cands[k]
	c.fill(s.width)
	if s.loop[k] {
		c.and(s.hLoops)
	}
	for _, con := range s.back[k] {
		c.and(con.rows[s.assign[con.pos]])
	}
	s.cursor[k] = 0
}

// run enumerates total assignments depth-first, calling emit for each, until the
// space is exhausted, the limit is reached or the context is done.
func (s *search) run(emit func()) error {
	n := len(s.src)
	found := 0
	if s.fixed == n {
		emit()
		return nil
	}

	k := s.fixed
	s.candidates(k)
	for nodes := 0; k >= s.fixed; nodes++ {
		if nodes&ctxPollMask == 0 {
			if err := s.opts.ctx.Err(); err != nil {
				return errors.Wrap(err, "homomorphism: search interrupted")
			}
		}

		t := s.cands[k].next(s.cursor[k])
		if t < 0 {
			k-- // backtrack
			continue
		}
		s.cursor[k] = t + 1
		s.assign[k] = t

		if k == n-1 {
			emit()
			found++
			if s.opts.limit > 0 && found >= s.opts.limit {
				return nil
			}
			continue
		}
		k++
		s.candidates(k)
	}

	return nil
}

// materialize converts the current assignment into a Map.
func (s *search) materialize() Map {
	m := make(Map, len(s.src))
	for k, id := range s.src {
		m[id] = s.dst[s.assign[k]]
	}

	return m
}
