package homomorphism

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for caller mistakes.
var (
	// ErrNilGraph indicates a nil source or target graph.
	ErrNilGraph = errors.New("homomorphism: graph is nil")

	// ErrDirectednessMismatch indicates a directed graph paired with an undirected one.
	ErrDirectednessMismatch = errors.New("homomorphism: source and target directedness differ")

	// ErrSourceVertexNotFound indicates a partial map key that is not a vertex of G.
	ErrSourceVertexNotFound = errors.New("homomorphism: partial map references unknown source vertex")

	// ErrTargetVertexNotFound indicates a partial map value that is not a vertex of H.
	ErrTargetVertexNotFound = errors.New("homomorphism: partial map references unknown target vertex")

	// ErrInconsistentPartialMap indicates a partial map that already sends an edge to a non-edge.
	ErrInconsistentPartialMap = errors.New("homomorphism: partial map violates an edge")

	// ErrDomainMismatch indicates a map whose domain is not exactly V(G).
	ErrDomainMismatch = errors.New("homomorphism: map domain differs from source vertices")

	// ErrImageNotInTarget indicates a map value that is not a vertex of H.
	ErrImageNotInTarget = errors.New("homomorphism: map image outside target vertices")

	// ErrNilSpace indicates a nil vector space.
	ErrNilSpace = errors.New("homomorphism: vector space is nil")

	// ErrForeignVertex indicates a source vertex whose ID is not a label of the vector space.
	ErrForeignVertex = errors.New("homomorphism: vertex is not an element of the space")
)

// Map sends source vertex IDs to target vertex IDs.
type Map map[string]string

// Image returns the distinct values of m in ascending order.
func (m Map) Image() []string {
	seen := make(map[string]struct{}, len(m))
	out := make([]string, 0, len(m))
	for _, v := range m {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// String renders m as "{a:x b:y}" with keys sorted.
func (m Map) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(m[k])
	}
	b.WriteByte('}')

	return b.String()
}

// Option configures a search.
type Option func(*options)

type options struct {
	limit int
	ctx   context.Context
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLimit caps the number of results. 0 means no cap. Panics on negative n.
func WithLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("homomorphism: WithLimit(%d) must be ≥ 0", n))
	}

	return func(o *options) { o.limit = n }
}

// WithContext makes the search abort with ctx.Err() once ctx is done.
// The context is polled every few thousand search nodes.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
