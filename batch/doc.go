// Package batch runs homomorphism queries over every ordered pair of a graph collection.
//
// For each pair (G, H) with G ≠ H it records
//
//	HO  the number of homomorphisms G→H (capped by WithLimit)
//	NH  0 when HO > 0, otherwise the least number of edges of G whose deletion admits a
//	    homomorphism into H: 1, 2, ... up to WithMaxDeletions, or WithMaxDeletions+1 when
//	    no deletion that small suffices
//
// Pairs are independent, so they are fanned out over a bounded worker pool. Results come
// back sorted by (From, To) whatever order the workers finish in, and WriteCSV stores them
// with the header "graphs,HO,NH".
package batch
