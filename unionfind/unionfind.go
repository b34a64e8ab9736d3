package unionfind

import "sort"

// DisjointSet is a union-find forest over the labels 1..n.
// Index 0 of parent and rank is unused so labels map to slots directly.
type DisjointSet struct {
	parent []int
	rank   []int
	size   int
}

// New creates n singleton sets labeled 1..n. A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
		size:   n,
	}
	ds.Reset()

	return ds
}

// Size returns the universe size n fixed at construction.
func (ds *DisjointSet) Size() int { return ds.size }

// Reset reinitializes every element to be its own singleton set.
// Complexity: O(n).
func (ds *DisjointSet) Reset() {
	for i := 1; i <= ds.size; i++ {
		ds.parent[i] = i
		ds.rank[i] = 0
	}
}

// inRange reports whether x is a valid label.
func (ds *DisjointSet) inRange(x int) bool { return x >= 1 && x <= ds.size }

// Find returns the representative of x's set and true, or (0, false) when x
// lies outside [1, n]. Every node on the walk is repointed directly at the root.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(x int) (int, bool) {
	if !ds.inRange(x) {
		return 0, false
	}

	// 1. Walk up to the root.
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// 2. Second pass: compress the whole path onto the root.
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root, true
}

// Union merges the sets containing u and v and reports whether a merge happened.
// The lower-rank root is attached under the higher-rank one; on a tie the root of
// u survives and its rank grows by one. It is a no-op when u and v already share
// a root or when either label is out of range.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(u, v int) bool {
	rootU, okU := ds.Find(u)
	rootV, okV := ds.Find(v)
	if !okU || !okV || rootU == rootV {
		return false
	}

	switch {
	case ds.rank[rootU] < ds.rank[rootV]:
		ds.parent[rootU] = rootV
	case ds.rank[rootU] > ds.rank[rootV]:
		ds.parent[rootV] = rootU
	default:
		ds.parent[rootV] = rootU
		ds.rank[rootU]++
	}

	return true
}

// Connected reports whether u and v belong to the same set.
// It is false whenever either label is out of range.
func (ds *DisjointSet) Connected(u, v int) bool {
	rootU, okU := ds.Find(u)
	rootV, okV := ds.Find(v)

	return okU && okV && rootU == rootV
}

// Count returns the number of disjoint sets currently in the forest.
// Complexity: O(n).
func (ds *DisjointSet) Count() int {
	count := 0
	for i := 1; i <= ds.size; i++ {
		if ds.parent[i] == i {
			count++
		}
	}

	return count
}

// Sets groups the labels by representative. Members of each group are ascending
// and groups are ordered by their smallest member. Sets does not compress paths,
// so it leaves the forest untouched.
// Complexity: O(n·h) where h is the current tree height.
func (ds *DisjointSet) Sets() [][]int {
	groups := make(map[int][]int)
	for i := 1; i <= ds.size; i++ {
		root := i
		for ds.parent[root] != root {
			root = ds.parent[root]
		}
		groups[root] = append(groups[root], i)
	}

	out := make([][]int, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
