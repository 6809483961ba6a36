package dbscan

// Noise is the label of points that belong to no cluster.
const Noise = 0

// Labels assigns each point a cluster label: Noise or 1..k.
type Labels []int

// NumClusters returns k, the largest label.
func (l Labels) NumClusters() int {
	k := 0
	for _, c := range l {
		if c > k {
			k = c
		}
	}

	return k
}

// Members returns the indices labelled c, ascending.
func (l Labels) Members(c int) []int {
	var out []int
	for i, x := range l {
		if x == c {
			out = append(out, i)
		}
	}

	return out
}

// Noise returns the indices of noise points, ascending.
func (l Labels) Noise() []int { return l.Members(Noise) }

// Clusters groups point indices by label: element c-1 holds cluster c.
func (l Labels) Clusters() [][]int {
	out := make([][]int, l.NumClusters())
	for i, c := range l {
		if c != Noise {
			out[c-1] = append(out[c-1], i)
		}
	}

	return out
}
