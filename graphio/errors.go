package graphio

import "github.com/pkg/errors"

var (
	// ErrSyntax indicates input that does not follow the encoding's grammar.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrMixedArrows indicates an edge list using both "-" and ">".
	ErrMixedArrows = errors.New("graphio: edge list mixes '-' and '>'")

	// ErrUnencodable indicates a graph the target encoding cannot represent.
	ErrUnencodable = errors.New("graphio: graph cannot be encoded")

	// ErrUnknownFormat indicates an unrecognised format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
