package batch

import (
	"context"
	"encoding/csv"
	"io"
	"runtime"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/graphio"
	"github.com/katalvlaran/lvhom/homomorphism"
)

// DefaultMaxDeletions is the edge-deletion depth used when WithMaxDeletions is absent.
const DefaultMaxDeletions = 2

// ErrNilGraph indicates a nil graph in the input collection.
var ErrNilGraph = errors.New("batch: graph is nil")

// Result is the outcome for one ordered pair.
type Result struct {
	From, To  int    // indices into the input
	Key       string // "<from name>-<to name>"
	Homs      int    // HO
	Deletions int    // NH
}

// Option configures Run.
type Option func(*options)

type options struct {
	limit        int
	workers      int
	maxDeletions int
}

// WithLimit caps each homomorphism count; 0 counts all. Panics on negative n.
func WithLimit(n int) Option {
	if n < 0 {
		panic("batch: WithLimit must be ≥ 0")
	}

	return func(o *options) { o.limit = n }
}

// WithWorkers bounds the number of pairs evaluated at once. Values < 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithMaxDeletions sets how many edges may be deleted when probing NH. Panics on negative k.
func WithMaxDeletions(k int) Option {
	if k < 0 {
		panic("batch: WithMaxDeletions must be ≥ 0")
	}

	return func(o *options) { o.maxDeletions = k }
}

// Run evaluates every ordered pair of distinct positions in graphs.
// The first error cancels the remaining work.
func Run(ctx context.Context, graphs []graphio.Named, opts ...Option) ([]Result, error) {
	o := options{maxDeletions: DefaultMaxDeletions}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	for i, ng := range graphs {
		if ng.Graph == nil {
			return nil, errors.Wrapf(ErrNilGraph, "graph %d (%s)", i, ng.Name)
		}
	}

	n := len(graphs)
	total := n * (n - 1)
	results := make([]Result, 0, total)
	out := make(chan Result, o.workers)
	var done int64

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)

	collected := make(chan struct{})
	go func() {
		for r := range out {
			results = append(results, r)
		}
		close(collected)
	}()

	for i := range graphs {
		for j := range graphs {
			if i == j {
				continue
			}
			i, j := i, j
			eg.Go(func() error {
				r, err := evaluate(ctx, graphs, i, j, o)
				if err != nil {
					return err
				}
				out <- r
				if k := atomic.AddInt64(&done, 1); k%100 == 0 {
					klog.V(2).Infof("batch: %d of %d pairs", k, total)
				}

				return nil
			})
		}
	}
	err := eg.Wait()
	close(out)
	<-collected
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].From != results[b].From {
			return results[a].From < results[b].From
		}
		return results[a].To < results[b].To
	})

	return results, nil
}

func evaluate(ctx context.Context, graphs []graphio.Named, i, j int, o options) (Result, error) {
	g, h := graphs[i].Graph, graphs[j].Graph
	r := Result{From: i, To: j, Key: graphs[i].Name + "-" + graphs[j].Name}

	homs, err := homomorphism.Count(g, h, nil,
		homomorphism.WithLimit(o.limit), homomorphism.WithContext(ctx))
	if err != nil {
		return r, errors.WithMessagef(err, "pair %s", r.Key)
	}
	r.Homs = homs
	if homs > 0 {
		return r, nil
	}

	r.Deletions, err = deletionDistance(ctx, g, h, o.maxDeletions)
	if err != nil {
		return r, errors.WithMessagef(err, "pair %s", r.Key)
	}

	return r, nil
}

// deletionDistance returns the least k ≤ maxK such that deleting some k edges of g admits
// a homomorphism into h, or maxK+1.
func deletionDistance(ctx context.Context, g, h *core.Graph, maxK int) (int, error) {
	edges := g.Edges()
	for k := 1; k <= maxK && k <= len(edges); k++ {
		found := false
		err := combinations(len(edges), k, func(drop []int) (bool, error) {
			reduced := withoutEdges(g, edges, drop)
			_, ok, err := homomorphism.Exists(reduced, h, nil, homomorphism.WithContext(ctx))
			if err != nil {
				return false, err
			}
			found = ok

			return ok, nil
		})
		if err != nil {
			return 0, err
		}
		if found {
			return k, nil
		}
	}

	return maxK + 1, nil
}

// combinations calls visit with each k-subset of [0, n) in lexicographic order until visit
// returns true or an error.
func combinations(n, k int, visit func([]int) (bool, error)) error {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		stop, err := visit(idx)
		if err != nil || stop {
			return err
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func withoutEdges(g *core.Graph, edges []*core.Edge, drop []int) *core.Graph {
	skip := make(map[int]bool, len(drop))
	for _, d := range drop {
		skip[d] = true
	}
	reduced := g.CloneEmpty()
	for i, e := range edges {
		if !skip[i] {
			// endpoints exist and loops were admitted by the same policy
			_, _ = reduced.AddEdge(e.From, e.To)
		}
	}

	return reduced
}

// WriteCSV writes results with the header "graphs,HO,NH".
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"graphs", "HO", "NH"}); err != nil {
		return errors.Wrap(err, "batch: csv header")
	}
	for _, r := range results {
		row := []string{r.Key, strconv.Itoa(r.Homs), strconv.Itoa(r.Deletions)}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "batch: csv row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "batch: csv flush")
}
