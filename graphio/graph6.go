package graphio

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
)

const (
	g6Bias   = 63
	g6Header = ">>graph6<<"

	g6SmallMax  = 62
	g6MediumMax = 258047
)

// ParseGraph6 decodes one graph6 line (an optional ">>graph6<<" header is accepted).
func ParseGraph6(s string) (*core.Graph, error) {
	data := []byte(strings.TrimPrefix(strings.TrimSpace(s), g6Header))
	for _, c := range data {
		if c < g6Bias || c > 126 {
			return nil, errors.Wrapf(ErrSyntax, "graph6: byte %q out of range", c)
		}
	}
	n, rest, err := g6Order(data)
	if err != nil {
		return nil, err
	}
	bits := n * (n - 1) / 2
	if want := (bits + 5) / 6; len(rest) != want {
		return nil, errors.Wrapf(ErrSyntax, "graph6: n=%d needs %d data bytes, got %d", n, want, len(rest))
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	k := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if (rest[k/6]-g6Bias)&(1<<uint(5-k%6)) != 0 {
				if _, err = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return nil, err
				}
			}
			k++
		}
	}

	return g, nil
}

func g6Order(data []byte) (int, []byte, error) {
	take := func(width int) (int, bool) {
		if len(data) < width {
			return 0, false
		}
		n := 0
		for _, c := range data[:width] {
			n = n<<6 | int(c-g6Bias)
		}
		data = data[width:]

		return n, true
	}

	if len(data) == 0 {
		return 0, nil, errors.Wrap(ErrSyntax, "graph6: empty")
	}
	if data[0] != 126 {
		n, _ := take(1)
		return n, data, nil
	}
	data = data[1:]
	if len(data) > 0 && data[0] == 126 {
		data = data[1:]
		if n, ok := take(6); ok {
			return n, data, nil
		}
	} else if n, ok := take(3); ok {
		return n, data, nil
	}

	return 0, nil, errors.Wrap(ErrSyntax, "graph6: truncated order")
}

// FormatGraph6 encodes an undirected loop-free graph. Vertices are numbered by the order
// of g.Vertices(), or numerically when every ID is a non-negative integer.
func FormatGraph6(g *core.Graph) (string, error) {
	if g == nil {
		return "", errors.Wrap(ErrUnencodable, "nil graph")
	}
	if g.Directed() || g.HasLoops() {
		return "", errors.Wrap(ErrUnencodable, "graph6 holds simple undirected graphs only")
	}
	order := numericOrder(g.Vertices())
	n := len(order)

	var out []byte
	switch {
	case n <= g6SmallMax:
		out = append(out, byte(n+g6Bias))
	case n <= g6MediumMax:
		out = append(out, 126)
		out = appendSextets(out, n, 3)
	default:
		out = append(out, 126, 126)
		out = appendSextets(out, n, 6)
	}

	var cur byte
	k := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			cur <<= 1
			if g.HasEdge(order[i], order[j]) {
				cur |= 1
			}
			if k++; k%6 == 0 {
				out = append(out, cur+g6Bias)
				cur = 0
			}
		}
	}
	if r := k % 6; r != 0 {
		out = append(out, cur<<uint(6-r)+g6Bias)
	}

	return string(out), nil
}

func appendSextets(out []byte, n, width int) []byte {
	for s := width - 1; s >= 0; s-- {
		out = append(out, byte(n>>(6*uint(s))&0x3f)+g6Bias)
	}

	return out
}

// numericOrder returns ids sorted as integers when they all parse as such.
func numericOrder(ids []string) []string {
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		v, err := strconv.Atoi(id)
		if err != nil || v < 0 {
			return ids
		}
		nums[id] = v
	}
	out := append([]string(nil), ids...)
	sort.Slice(out, func(a, b int) bool { return nums[out[a]] < nums[out[b]] })

	return out
}
