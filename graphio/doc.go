// Package graphio reads and writes graphs in two line-oriented text encodings.
//
// Edge lists name vertices directly. Runs are separated by commas; a run is a walk whose
// steps are joined with "-" (undirected) or ">" (directed); a run of one vertex adds an
// isolated vertex:
//
//	0-1-2-0,2-3,4        triangle with a pendant edge and an isolated vertex
//	a>b>c>a              directed triangle
//
// A graph uses one arrow kind throughout. Repeating an edge is harmless; a step from a
// vertex to itself adds a loop.
//
// graph6 is the compact encoding of simple undirected graphs used by nauty and geng.
// Vertices are numbered "0" to "n-1".
//
// ReadGraphs reads one graph per line in either encoding. Blank lines and lines starting
// with '#' are skipped, and a line "name = encoding" names its graph.
package graphio
