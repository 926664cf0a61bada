package graphio

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
)

type edgeListExpr struct {
	Runs []*edgeRun `parser:"( @@ ( \",\" @@ )* )?"`
}

type edgeRun struct {
	Start string      `parser:"@Ident"`
	Steps []*edgeStep `parser:"@@*"`
}

type edgeStep struct {
	Arrow string `parser:"@Arrow"`
	To    string `parser:"@Ident"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z0-9_.:]+`},
	{Name: "Arrow", Pattern: `[->]`},
	{Name: "Punct", Pattern: `,`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseEdgeListExpr = participle.MustBuild[edgeListExpr](
	participle.Lexer(edgeListLexer),
)

var identRE = regexp.MustCompile(`^[A-Za-z0-9_.:]+$`)

const (
	arrowUndirected = "-"
	arrowDirected   = ">"
)

// ParseEdgeList builds a graph from the edge-list encoding. The graph is directed iff a
// ">" step occurs, and permits loops iff a step repeats its vertex.
func ParseEdgeList(s string) (*core.Graph, error) {
	expr, err := parseEdgeListExpr.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "edge list: %v", err)
	}

	var arrow string
	loops := false
	for _, run := range expr.Runs {
		from := run.Start
		for _, st := range run.Steps {
			if arrow == "" {
				arrow = st.Arrow
			} else if arrow != st.Arrow {
				return nil, ErrMixedArrows
			}
			if st.To == from {
				loops = true
			}
			from = st.To
		}
	}

	opts := []core.GraphOption{core.WithDirected(arrow == arrowDirected)}
	if loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, run := range expr.Runs {
		if err = g.AddVertex(run.Start); err != nil {
			return nil, err
		}
		from := run.Start
		for _, st := range run.Steps {
			if err = g.AddVertex(st.To); err != nil {
				return nil, err
			}
			if _, err = g.AddEdge(from, st.To); err != nil {
				return nil, errors.Wrapf(err, "graphio: edge %s%s%s", from, st.Arrow, st.To)
			}
			from = st.To
		}
	}

	return g, nil
}

// FormatEdgeList renders g as one run per edge (in edge ID order) followed by its
// isolated vertices. ParseEdgeList of the result rebuilds g up to edge IDs, except that a
// directed graph without edges reads back undirected.
func FormatEdgeList(g *core.Graph) (string, error) {
	if g == nil {
		return "", errors.Wrap(ErrUnencodable, "nil graph")
	}
	for _, id := range g.Vertices() {
		if !identRE.MatchString(id) {
			return "", errors.Wrapf(ErrUnencodable, "vertex ID %q", id)
		}
	}

	arrow := arrowUndirected
	if g.Directed() {
		arrow = arrowDirected
	}
	var runs []string
	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		runs = append(runs, e.From+arrow+e.To)
		touched[e.From], touched[e.To] = true, true
	}
	for _, id := range g.Vertices() {
		if !touched[id] {
			runs = append(runs, id)
		}
	}

	return strings.Join(runs, ","), nil
}
