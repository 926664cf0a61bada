// Package catalog stores canonical graph forms in a Badger key-value store.
//
// A Catalog answers one question: has this form been seen before? TryAdd inserts a form
// and reports whether it was new, inside a single read-write transaction, so concurrent
// producers never both observe the same form as fresh.
//
// Catalogs are in-memory by default. Give Options.Path to persist the set between runs,
// e.g. to resume a long cube-like enumeration or share results with another process:
//
//	cat, err := catalog.Open(catalog.Options{Path: "/var/lib/lvhom/cubes6"})
//	if err != nil { ... }
//	defer cat.Close()
//
//	fresh, err := cat.TryAdd(form)
package catalog
