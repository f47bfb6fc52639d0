// Package orderopt implements the order optimizer (spec.md §4.5): given a
// set of polygons and a start point, it decides the order the polygons are
// printed in and which vertex of each polygon to start at, approximately
// minimizing travel between them.
//
// This is deliberately not the teacher corpus's Christofides 1.5-
// approximation (package tsp there): spec.md's objective is a different,
// easier problem — every polygon returns to its own start vertex after a
// closed-loop traversal, so the "tour" is really a sequence of independent
// round trips, not a single Hamiltonian cycle through all vertices. A
// greedy nearest-neighbor choice with a router-aware reachability
// partition, in the spirit of tsp/approx.go's staged, heavily-commented
// pipeline, is what spec.md asks for, and is the approach implemented
// here.
package orderopt
