package canon

import (
	"bytes"
	"encoding/binary"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
)

// ErrNilGraph indicates a nil graph.
var ErrNilGraph = errors.New("canon: graph is nil")

// Canonizer computes canonical forms.
type Canonizer interface {
	Canonize(g *core.Graph) ([]byte, error)
}

// Func adapts a function to Canonizer.
type Func func(g *core.Graph) ([]byte, error)

// Canonize calls f(g).
func (f Func) Canonize(g *core.Graph) ([]byte, error) { return f(g) }

// Default is the package canonizer.
var Default Canonizer = Func(Form)

// Result is a canonical labelling.
type Result struct {
	// Order lists vertex IDs by canonical label: Order[i] receives label i.
	Order []string

	// Form is the canonical form under Order.
	Form []byte
}

// Form returns the canonical form of g.
func Form(g *core.Graph) ([]byte, error) {
	r, err := Canonical(g)
	if err != nil {
		return nil, err
	}

	return r.Form, nil
}

// Isomorphic reports whether g and h are isomorphic.
func Isomorphic(g, h *core.Graph) (bool, error) {
	a, err := Form(g)
	if err != nil {
		return false, err
	}
	b, err := Form(h)
	if err != nil {
		return false, err
	}

	return bytes.Equal(a, b), nil
}

// CanonicalEdges returns the edges of g under its canonical labelling, sorted. For
// undirected graphs each edge appears once with the smaller label first.
func CanonicalEdges(g *core.Graph) ([][2]int, error) {
	r, err := Canonical(g)
	if err != nil {
		return nil, err
	}
	n := len(r.Order)
	m := matrixFromForm(r.Form, n, g.Directed())
	var out [][2]int
	for i := 0; i < n; i++ {
		j0 := 0
		if !g.Directed() {
			j0 = i
		}
		for j := j0; j < n; j++ {
			if m.has(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out, nil
}

// Canonical computes the canonical labelling of g.
// Complexity: exponential in the worst case, polynomial for graphs refined to discrete
// partitions or dominated by twins.
func Canonical(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	adj := newMatrix(n)
	for _, e := range g.Edges() {
		a, b := idx[e.From], idx[e.To]
		adj.set(a, b)
		if !g.Directed() {
			adj.set(b, a)
		}
	}

	s := &searcher{n: n, adj: adj, directed: g.Directed()}
	if n == 0 {
		return &Result{Order: []string{}, Form: s.form(nil)}, nil
	}
	root := make([]int, n)
	for i := range root {
		root[i] = i
	}
	s.explore(s.refine(partition{cells: [][]int{root}}))

	r := &Result{Order: make([]string, n), Form: s.best}
	for label, v := range s.bestOrder {
		r.Order[label] = ids[v]
	}

	return r, nil
}

// matrix is a dense boolean adjacency matrix.
type matrix struct {
	n    int
	bits []bool
}

func newMatrix(n int) *matrix { return &matrix{n: n, bits: make([]bool, n*n)} }

func (m *matrix) set(i, j int)      { m.bits[i*m.n+j] = true }
func (m *matrix) has(i, j int) bool { return m.bits[i*m.n+j] }

// partition is an ordered partition of vertex indices.
type partition struct {
	cells [][]int
}

func (p partition) discrete(n int) bool { return len(p.cells) == n }

// searcher explores the individualization tree and keeps the best leaf.
type searcher struct {
	n         int
	adj       *matrix
	directed  bool
	best      []byte
	bestOrder []int
}

// refine splits cells until the partition is equitable. Fragments of a cell are ordered
// by their neighbour-count signature.
func (s *searcher) refine(p partition) partition {
	for {
		cellOf := make([]int, s.n)
		for ci, cell := range p.cells {
			for _, v := range cell {
				cellOf[v] = ci
			}
		}
		k := len(p.cells)
		next := make([][]int, 0, k)
		for _, cell := range p.cells {
			if len(cell) == 1 {
				next = append(next, cell)
				continue
			}
			groups := treemap.NewWithStringComparator()
			for _, v := range cell {
				key := s.signature(v, cellOf, k)
				var members []int
				if got, ok := groups.Get(key); ok {
					members = got.([]int)
				}
				groups.Put(key, append(members, v))
			}
			it := groups.Iterator()
			for it.Next() {
				next = append(next, it.Value().([]int))
			}
		}
		if len(next) == len(p.cells) {
			return p
		}
		p = partition{cells: next}
	}
}

// signature encodes the out- (and for directed graphs in-) neighbour counts of v per cell,
// plus its loop flag, as a byte string whose order is an isomorphism invariant.
func (s *searcher) signature(v int, cellOf []int, k int) string {
	out := make([]uint32, k)
	in := make([]uint32, k)
	for u := 0; u < s.n; u++ {
		if u == v {
			continue
		}
		if s.adj.has(v, u) {
			out[cellOf[u]]++
		}
		if s.directed && s.adj.has(u, v) {
			in[cellOf[u]]++
		}
	}
	buf := make([]byte, 0, 1+8*k)
	if s.adj.has(v, v) {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for i := 0; i < k; i++ {
		buf = binary.BigEndian.AppendUint32(buf, out[i])
		if s.directed {
			buf = binary.BigEndian.AppendUint32(buf, in[i])
		}
	}

	return string(buf)
}

// explore recurses over individualizations of the target cell.
func (s *searcher) explore(p partition) {
	if p.discrete(s.n) {
		order := make([]int, s.n)
		for label, cell := range p.cells {
			order[label] = cell[0]
		}
		f := s.form(order)
		if s.best == nil || bytes.Compare(f, s.best) > 0 {
			s.best, s.bestOrder = f, order
		}
		return
	}

	target := -1
	for ci, cell := range p.cells {
		if len(cell) > 1 && (target < 0 || len(cell) < len(p.cells[target])) {
			target = ci
		}
	}
	cell := p.cells[target]
	tried := make([]int, 0, len(cell))
	for _, v := range cell {
		if s.twinOfAny(v, tried) {
			continue
		}
		tried = append(tried, v)

		cells := make([][]int, 0, len(p.cells)+1)
		cells = append(cells, p.cells[:target]...)
		rest := make([]int, 0, len(cell)-1)
		for _, u := range cell {
			if u != v {
				rest = append(rest, u)
			}
		}
		cells = append(cells, []int{v}, rest)
		cells = append(cells, p.cells[target+1:]...)
		s.explore(s.refine(partition{cells: cells}))
	}
}

// twinOfAny reports whether v is a twin of some vertex in others.
func (s *searcher) twinOfAny(v int, others []int) bool {
	for _, u := range others {
		if s.twins(u, v) {
			return true
		}
	}

	return false
}

// twins reports whether swapping u and v is an automorphism.
func (s *searcher) twins(u, v int) bool {
	if s.adj.has(u, u) != s.adj.has(v, v) || s.adj.has(u, v) != s.adj.has(v, u) {
		return false
	}
	for w := 0; w < s.n; w++ {
		if w == u || w == v {
			continue
		}
		if s.adj.has(u, w) != s.adj.has(v, w) || s.adj.has(w, u) != s.adj.has(w, v) {
			return false
		}
	}

	return true
}

// form serializes the adjacency matrix under order (order[label] = vertex):
// a directedness byte, the order as uint32, then the matrix bits row by row
// (upper triangle with diagonal for undirected graphs), packed MSB first.
func (s *searcher) form(order []int) []byte {
	buf := make([]byte, 0, 5+(s.n*s.n+7)/8)
	if s.directed {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.n))

	var cur byte
	nbits := 0
	for i := 0; i < s.n; i++ {
		j0 := 0
		if !s.directed {
			j0 = i
		}
		for j := j0; j < s.n; j++ {
			cur <<= 1
			if s.adj.has(order[i], order[j]) {
				cur |= 1
			}
			nbits++
			if nbits == 8 {
				buf = append(buf, cur)
				cur, nbits = 0, 0
			}
		}
	}
	if nbits > 0 {
		buf = append(buf, cur<<uint(8-nbits))
	}

	return buf
}

// matrixFromForm decodes the adjacency bits of a form over n labels.
func matrixFromForm(form []byte, n int, directed bool) *matrix {
	m := newMatrix(n)
	bit := 0
	body := form[5:]
	for i := 0; i < n; i++ {
		j0 := 0
		if !directed {
			j0 = i
		}
		for j := j0; j < n; j++ {
			if body[bit/8]&(0x80>>uint(bit%8)) != 0 {
				m.set(i, j)
				if !directed {
					m.set(j, i)
				}
			}
			bit++
		}
	}

	return m
}
