package cluster

import (
	"sort"
	"time"
)

// Doc is one clusterable item: the token stream of its normalized text
// plus the report timestamp used for the window constraint
type Doc struct {
	Tokens []string
	At     time.Time
}

// Options controls edge formation
type Options struct {
	// Threshold is the minimum cosine similarity for an edge, in [0,1]
	Threshold float64
	// Window is the maximum timestamp gap for an edge
	Window time.Duration
}

// Group partitions docs into connected components of the similarity graph
// and returns them as index groups. Singletons come back as groups of one;
// the verification policy decides their fate, not the clusterer.
//
// Linking is transitive: A near B and B near C puts A and C in one group
// even when A and C themselves clear neither the threshold nor the window.
// Groups are ordered by their smallest member index and members ascend, so
// output is independent of any internal iteration order
func Group(docs []Doc, opts Options) [][]int {
	n := len(docs)
	if n == 0 {
		return nil
	}

	vecs := vectorize(tokensOf(docs))
	uf := newUnionFind(n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !withinWindow(docs[i].At, docs[j].At, opts.Window) {
				continue
			}
			if cosine(vecs[i], vecs[j]) >= opts.Threshold {
				uf.union(i, j)
			}
		}
	}

	byRoot := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		r := uf.find(i)
		byRoot[r] = append(byRoot[r], i)
	}

	groups := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Ints(members)
		groups = append(groups, members)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a][0] < groups[b][0] })
	return groups
}

func tokensOf(docs []Doc) [][]string {
	out := make([][]string, len(docs))
	for i, d := range docs {
		out[i] = d.Tokens
	}
	return out
}

func withinWindow(a, b time.Time, w time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= w
}

// unionFind with path compression and union by size
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}
