package graphio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvhom/core"
)

// Format selects a text encoding.
type Format string

const (
	EdgeList Format = "edgelist"
	Graph6   Format = "graph6"
)

// ParseFormat maps a format name (case-insensitive, "g6" accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "edgelist", "edges", "":
		return EdgeList, nil
	case "graph6", "g6":
		return Graph6, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Decode parses s in format f.
func (f Format) Decode(s string) (*core.Graph, error) {
	switch f {
	case EdgeList:
		return ParseEdgeList(s)
	case Graph6:
		return ParseGraph6(s)
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}

// Encode renders g in format f.
func (f Format) Encode(g *core.Graph) (string, error) {
	switch f {
	case EdgeList:
		return FormatEdgeList(g)
	case Graph6:
		return FormatGraph6(g)
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}

// Named is a graph read by ReadGraphs.
type Named struct {
	Name  string
	Graph *core.Graph
}

// ReadGraphs decodes one graph per line of r. Unnamed graphs are called g0, g1, ... by
// their position among the graphs read. Errors carry the 1-based line number.
func ReadGraphs(r io.Reader, f Format) ([]Named, error) {
	var out []Named
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name := "g" + strconv.Itoa(len(out))
		if eq := strings.Index(text, "="); eq >= 0 {
			name = strings.TrimSpace(text[:eq])
			text = strings.TrimSpace(text[eq+1:])
		}
		g, err := f.Decode(text)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", line)
		}
		out = append(out, Named{Name: name, Graph: g})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "graphio: reading graphs")
	}

	return out, nil
}

// WriteGraphs writes one "name = encoding" line per graph.
func WriteGraphs(w io.Writer, f Format, graphs []Named) error {
	bw := bufio.NewWriter(w)
	for _, ng := range graphs {
		enc, err := f.Encode(ng.Graph)
		if err != nil {
			return errors.WithMessagef(err, "graph %s", ng.Name)
		}
		if _, err = bw.WriteString(ng.Name + " = " + enc + "\n"); err != nil {
			return errors.Wrap(err, "graphio: writing graphs")
		}
	}

	return errors.Wrap(bw.Flush(), "graphio: writing graphs")
}
