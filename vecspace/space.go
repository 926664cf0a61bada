package vecspace

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors.
var (
	// ErrNotPrime indicates a field order that is not a prime in [2, MaxOrder].
	ErrNotPrime = errors.New("vecspace: field order must be a prime ≤ 251")

	// ErrBadDimension indicates a space dimension below 1.
	ErrBadDimension = errors.New("vecspace: dimension must be ≥ 1")

	// ErrDimensionMismatch indicates a vector whose length differs from the space dimension.
	ErrDimensionMismatch = errors.New("vecspace: vector length does not match dimension")

	// ErrNotInSpace indicates a vector with a coordinate outside the field.
	ErrNotInSpace = errors.New("vecspace: vector is not an element of the space")

	// ErrBadLabel indicates a label that does not parse to an element of the space.
	ErrBadLabel = errors.New("vecspace: malformed vector label")
)

// MaxOrder is the largest supported field order (coordinates are stored as uint8).
const MaxOrder = 251

// compactLabelMax is the largest q whose labels concatenate single digits.
const compactLabelMax = 10

// Vector is a coordinate tuple over GF(q). The zero value is not an element of any space.
type Vector []uint8

// Equal reports coordinate-wise equality.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// IsZero reports whether every coordinate is zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	return append(Vector(nil), v...)
}

// Space is GF(q)^dim. It is immutable and safe for concurrent use.
type Space struct {
	q   int
	dim int
}

// New returns GF(q)^dim. q must be prime and at most MaxOrder; dim must be ≥ 1.
func New(q, dim int) (*Space, error) {
	if !isPrime(q) || q > MaxOrder {
		return nil, errors.Wrapf(ErrNotPrime, "q=%d", q)
	}
	if dim < 1 {
		return nil, errors.Wrapf(ErrBadDimension, "dim=%d", dim)
	}

	return &Space{q: q, dim: dim}, nil
}

// GF2 returns GF(2)^dim. It panics if dim < 1.
func GF2(dim int) *Space {
	s, err := New(2, dim)
	if err != nil {
		panic(err)
	}

	return s
}

func isPrime(q int) bool {
	if q < 2 {
		return false
	}
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			return false
		}
	}

	return true
}

// Q returns the field order.
func (s *Space) Q() int { return s.q }

// Dim returns the dimension.
func (s *Space) Dim() int { return s.dim }

// Size returns q^dim, the number of elements.
func (s *Space) Size() int {
	n := 1
	for i := 0; i < s.dim; i++ {
		n *= s.q
	}

	return n
}

// Vector builds an element from integer coordinates, reducing each modulo q.
func (s *Space) Vector(coords ...int) (Vector, error) {
	if len(coords) != s.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "got %d coordinates, want %d", len(coords), s.dim)
	}
	v := make(Vector, s.dim)
	for i, c := range coords {
		v[i] = uint8(((c % s.q) + s.q) % s.q)
	}

	return v, nil
}

// MustVector is Vector for literals known to be valid. It panics on error.
func (s *Space) MustVector(coords ...int) Vector {
	v, err := s.Vector(coords...)
	if err != nil {
		panic(err)
	}

	return v
}

// Contains reports whether v is an element of s.
func (s *Space) Contains(v Vector) bool {
	if len(v) != s.dim {
		return false
	}
	for _, c := range v {
		if int(c) >= s.q {
			return false
		}
	}

	return true
}

// Check returns nil if v is an element of s, or a wrapped ErrDimensionMismatch / ErrNotInSpace.
func (s *Space) Check(v Vector) error {
	if len(v) != s.dim {
		return errors.Wrapf(ErrDimensionMismatch, "len=%d dim=%d", len(v), s.dim)
	}
	if !s.Contains(v) {
		return errors.Wrapf(ErrNotInSpace, "%v over GF(%d)", []uint8(v), s.q)
	}

	return nil
}

// Zero returns the zero vector.
func (s *Space) Zero() Vector { return make(Vector, s.dim) }

// Basis returns the unit vectors e_0 … e_{dim-1}.
func (s *Space) Basis() []Vector {
	out := make([]Vector, s.dim)
	for i := range out {
		out[i] = s.Zero()
		out[i][i] = 1
	}

	return out
}

// Index returns the position of v in Elements(): coordinates read as base-q digits,
// first coordinate most significant.
func (s *Space) Index(v Vector) int {
	idx := 0
	for _, c := range v {
		idx = idx*s.q + int(c)
	}

	return idx
}

// FromIndex is the inverse of Index for 0 ≤ idx < Size().
func (s *Space) FromIndex(idx int) Vector {
	v := s.Zero()
	for i := s.dim - 1; i >= 0; i-- {
		v[i] = uint8(idx % s.q)
		idx /= s.q
	}

	return v
}

// Elements returns all q^dim vectors in lexicographic order.
// Complexity: O(dim·q^dim).
func (s *Space) Elements() []Vector {
	n := s.Size()
	out := make([]Vector, n)
	for i := 0; i < n; i++ {
		out[i] = s.FromIndex(i)
	}

	return out
}

// Add returns a+b. Operands must be elements of s.
func (s *Space) Add(a, b Vector) Vector {
	out := make(Vector, s.dim)
	for i := range out {
		out[i] = uint8((int(a[i]) + int(b[i])) % s.q)
	}

	return out
}

// Sub returns a-b.
func (s *Space) Sub(a, b Vector) Vector {
	out := make(Vector, s.dim)
	for i := range out {
		out[i] = uint8((int(a[i]) - int(b[i]) + s.q) % s.q)
	}

	return out
}

// Neg returns -a.
func (s *Space) Neg(a Vector) Vector { return s.Sub(s.Zero(), a) }

// Scale returns k·a with k reduced modulo q.
func (s *Space) Scale(k int, a Vector) Vector {
	k = ((k % s.q) + s.q) % s.q
	out := make(Vector, s.dim)
	for i := range out {
		out[i] = uint8((k * int(a[i])) % s.q)
	}

	return out
}

// Weight returns the number of nonzero coordinates.
func (s *Space) Weight(a Vector) int {
	w := 0
	for _, c := range a {
		if c != 0 {
			w++
		}
	}

	return w
}

// Label renders v as a vertex ID.
func (s *Space) Label(v Vector) string {
	if s.q <= compactLabelMax {
		var b strings.Builder
		b.Grow(len(v))
		for _, c := range v {
			b.WriteByte('0' + c)
		}
		return b.String()
	}
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.Itoa(int(c))
	}

	return strings.Join(parts, ",")
}

// Parse is the inverse of Label. Comma-separated input is accepted for every q.
func (s *Space) Parse(label string) (Vector, error) {
	var parts []string
	switch {
	case strings.Contains(label, ","):
		parts = strings.Split(label, ",")
	case s.q <= compactLabelMax:
		parts = strings.Split(label, "")
	default:
		parts = []string{label}
	}
	if len(parts) != s.dim {
		return nil, errors.Wrapf(ErrBadLabel, "%q has %d coordinates, want %d", label, len(parts), s.dim)
	}
	v := make(Vector, s.dim)
	for i, p := range parts {
		c, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || c < 0 || c >= s.q {
			return nil, errors.Wrapf(ErrBadLabel, "%q: coordinate %q", label, p)
		}
		v[i] = uint8(c)
	}

	return v, nil
}

// inverse returns a⁻¹ in GF(q) for a ≠ 0 (Fermat: a^(q-2)).
func (s *Space) inverse(a int) int {
	result, base, e := 1, a%s.q, s.q-2
	for e > 0 {
		if e&1 == 1 {
			result = result * base % s.q
		}
		base = base * base % s.q
		e >>= 1
	}

	return result
}
