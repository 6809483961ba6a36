// Package homology computes persistent homology over GF(2) from a
// filtration.
//
// Algorithm (standard column reduction):
//  1. Column j of the boundary matrix lists the filtration positions of the
//     codimension-1 faces of simplex j, ascending; low(j) is the last one.
//  2. Left to right, while low(j) equals the low of an earlier column k,
//     column j += column k (symmetric difference of index sets).
//  3. A non-empty reduced column j with low i pairs i with j: a class of
//     dimension dim(i) born at value(i) dies at value(j). Zero-length pairs
//     (equal values) are reported.
//  4. A simplex whose column reduces to zero and that is never a low is an
//     essential class: it never dies, Death = Infinity.
//
// Intervals and IntervalsMatrix build a Rips filtration with simplices up to
// dimension maxDim+1, so that classes in dimensions 0..maxDim can die, and
// report only those dimensions. Compute reports every dimension of the
// filtration it is given.
//
// Complexity: O(S³) worst case for S simplices, typically near-linear on Rips
// filtrations; O(S·k) memory for the reduced columns.
package homology
