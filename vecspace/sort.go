package vecspace

import "sort"

func sortByIndex(s *Space, vs []Vector) {
	sort.Slice(vs, func(i, j int) bool { return s.Index(vs[i]) < s.Index(vs[j]) })
}

// SortVectors orders vs lexicographically (the order of Space.Elements).
func (s *Space) SortVectors(vs []Vector) { sortByIndex(s, vs) }
