package vecspace

// Subspace is a linear subspace of a Space, stored as a basis in reduced row echelon form.
type Subspace struct {
	space  *Space
	rows   []Vector // RREF basis, pivots strictly increasing
	pivots []int
}

// Span returns the subspace generated by vs. Every vector must be an element of s.
// Complexity: O(len(vs)·dim²).
func (s *Space) Span(vs ...Vector) (*Subspace, error) {
	sub := &Subspace{space: s}
	for _, v := range vs {
		if err := s.Check(v); err != nil {
			return nil, err
		}
		sub.insert(v)
	}

	return sub, nil
}

// insert reduces v against the current basis and, if something remains, adds it and
// restores reduced row echelon form.
func (u *Subspace) insert(v Vector) {
	s := u.space
	r := u.reduce(v)
	p := firstNonzero(r)
	if p < 0 {
		return
	}
	r = s.Scale(s.inverse(int(r[p])), r)

	// clear column p in existing rows
	for i, row := range u.rows {
		if c := row[p]; c != 0 {
			u.rows[i] = s.Sub(row, s.Scale(int(c), r))
		}
	}

	at := len(u.pivots)
	for i, q := range u.pivots {
		if q > p {
			at = i
			break
		}
	}
	u.rows = append(u.rows, nil)
	copy(u.rows[at+1:], u.rows[at:])
	u.rows[at] = r
	u.pivots = append(u.pivots, 0)
	copy(u.pivots[at+1:], u.pivots[at:])
	u.pivots[at] = p
}

// reduce subtracts the basis rows from v at their pivots.
func (u *Subspace) reduce(v Vector) Vector {
	s := u.space
	r := v.Clone()
	for i, row := range u.rows {
		if c := r[u.pivots[i]]; c != 0 {
			r = s.Sub(r, s.Scale(int(c), row))
		}
	}

	return r
}

func firstNonzero(v Vector) int {
	for i, c := range v {
		if c != 0 {
			return i
		}
	}

	return -1
}

// Space returns the ambient space.
func (u *Subspace) Space() *Space { return u.space }

// Dimension returns the number of basis vectors.
func (u *Subspace) Dimension() int { return len(u.rows) }

// Size returns q^Dimension(), the number of elements.
func (u *Subspace) Size() int {
	n := 1
	for range u.rows {
		n *= u.space.q
	}

	return n
}

// Basis returns a copy of the reduced row echelon basis.
func (u *Subspace) Basis() []Vector {
	out := make([]Vector, len(u.rows))
	for i, r := range u.rows {
		out[i] = r.Clone()
	}

	return out
}

// Contains reports whether v lies in the subspace.
func (u *Subspace) Contains(v Vector) bool {
	if !u.space.Contains(v) {
		return false
	}

	return u.reduce(v).IsZero()
}

// Equal reports whether u and o contain exactly the same vectors of the same space.
func (u *Subspace) Equal(o *Subspace) bool {
	if o == nil || u.space.q != o.space.q || u.space.dim != o.space.dim || len(u.rows) != len(o.rows) {
		return false
	}
	for i := range u.rows {
		if !u.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Elements returns every vector of the subspace, ordered by Space.Index.
func (u *Subspace) Elements() []Vector {
	s := u.space
	out := []Vector{s.Zero()}
	for _, row := range u.rows {
		next := make([]Vector, 0, len(out)*s.q)
		for _, v := range out {
			for k := 0; k < s.q; k++ {
				next = append(next, s.Add(v, s.Scale(k, row)))
			}
		}
		out = next
	}
	sortByIndex(s, out)

	return out
}
