// Package rips builds Vietoris–Rips filtrations: nested simplicial
// complexes whose simplices enter at the largest pairwise distance among
// their vertices.
//
// What:
//   - Build / BuildFromCloud: every vertex at value 0, every edge {i,j} with
//     d(i,j) ≤ maxDist at value d(i,j), and every clique of the threshold
//     graph up to dimension maxDim at the max of its edge values.
//   - New: a filtration from explicitly listed simplices and values, with the
//     closure property and face monotonicity verified.
//   - Filtration: simplices in a total order, (value, dimension,
//     lexicographic vertices), so every face precedes its cofaces and ties
//     never depend on map or goroutine order.
//
// How:
//   - Cliques are enumerated by incremental expansion: a simplex σ is
//     extended only by vertices greater than max(σ) adjacent to all of σ, so
//     each clique is produced exactly once and all its faces exist.
//   - The total simplex count is capped (WithMaxSimplices); exceeding it
//     returns tdaerr.ErrResourceExceeded and no partial filtration.
//
// Complexity: O(S·n) time for S simplices in the worst case, O(S·maxDim)
// memory. S grows like C(n, maxDim+1) when maxDist covers the diameter.
package rips
