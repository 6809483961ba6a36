package rips

// Combinations returns every k-element subset of {0, ..., n-1} as an
// ascending index slice, in lexicographic order.
// k == 0 yields one empty subset; k > n or k < 0 yields none.
//
// Complexity: O(C(n,k)·k).
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	cur := make([]int, k)
	for i := range cur {
		cur[i] = i
	}
	for {
		subset := make([]int, k)
		copy(subset, cur)
		out = append(out, subset)

		// advance the rightmost position that still has room
		i := k - 1
		for i >= 0 && cur[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		cur[i]++
		for j := i + 1; j < k; j++ {
			cur[j] = cur[j-1] + 1
		}
	}
}
