package neardup

import "sort"

// disjointSets is a union-find with path compression and union by rank.
type disjointSets struct {
	parent []int
	rank   []int
}

func newDisjointSets(n int) *disjointSets {
	ds := &disjointSets{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSets) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

func (ds *disjointSets) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}

// buildClusters groups paired files into connected components.
//
// The representative is the file with the most pairs, ties going to the
// alphabetically first path. Clusters are sorted by max similarity
// descending, then representative.
func buildClusters(pairs []PairRow) []Cluster {
	index := make(map[string]int)
	var names []string
	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(names)
		names = append(names, name)
		return len(names) - 1
	}

	type edge struct{ a, b int }
	edges := make([]edge, len(pairs))
	for i, p := range pairs {
		edges[i] = edge{id(p.Left), id(p.Right)}
	}

	ds := newDisjointSets(len(names))
	degree := make([]int, len(names))
	for _, e := range edges {
		ds.union(e.a, e.b)
		degree[e.a]++
		degree[e.b]++
	}

	type component struct {
		members  []int
		maxSim   float64
		numPairs int
	}
	byRoot := make(map[int]*component)
	var roots []int
	for i := range names {
		r := ds.find(i)
		c, ok := byRoot[r]
		if !ok {
			c = &component{}
			byRoot[r] = c
			roots = append(roots, r)
		}
		c.members = append(c.members, i)
	}
	for i, p := range pairs {
		c := byRoot[ds.find(edges[i].a)]
		if p.Similarity > c.maxSim {
			c.maxSim = p.Similarity
		}
		c.numPairs++
	}

	clusters := make([]Cluster, 0, len(roots))
	for _, r := range roots {
		c := byRoot[r]
		files := make([]string, len(c.members))
		rep := c.members[0]
		for i, m := range c.members {
			files[i] = names[m]
			if degree[m] > degree[rep] || (degree[m] == degree[rep] && names[m] < names[rep]) {
				rep = m
			}
		}
		sort.Strings(files)
		clusters = append(clusters, Cluster{
			Files:          files,
			Representative: names[rep],
			MaxSimilarity:  c.maxSim,
			PairCount:      c.numPairs,
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].MaxSimilarity != clusters[j].MaxSimilarity {
			return clusters[i].MaxSimilarity > clusters[j].MaxSimilarity
		}
		return clusters[i].Representative < clusters[j].Representative
	})
	return clusters
}
