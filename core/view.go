// File: view.go
// Role: Non-mutating graph views and constructors from plain adjacency maps.
// Determinism:
//   - Vertex order follows the explicit order slice; map-only keys follow
//     lexicographic order after it.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import (
	"fmt"
	"sort"
)

// Undirected returns an undirected copy of g. Every directed edge a→b becomes
// a single a–b edge; when a→b and b→a both exist the lighter weight is kept.
// Vertex order, labels and first-seen edge order are preserved. An already
// undirected graph is cloned as is. The input graph is not mutated.
//
// Complexity: O(V + E·d) where d is the maximal degree.
func Undirected(g *Graph) *Graph {
	if !g.Directed() {
		return g.Clone()
	}

	opts := []GraphOption{WithDirected(false)}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	var id string
	for _, id = range g.order {
		v := g.vertices[id]
		out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
		out.index[id] = len(out.order)
		out.order = append(out.order, id)
		out.adjacency[id] = nil
	}
	g.muVert.RUnlock()

	var (
		e   Edge
		eid string
	)
	for _, e = range g.Edges() {
		if eid = undirectedEdgeID(out, e.From, e.To); eid != "" {
			if cur := out.edges[eid]; e.Weight < cur.Weight {
				cur.Weight = e.Weight
			}
			continue
		}
		// Flags of out allow every edge of g; AddEdge cannot fail here.
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}

	return out
}

// undirectedEdgeID returns the ID of an existing a–b edge or "".
func undirectedEdgeID(g *Graph, a, b string) string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var eid string
	for _, eid = range g.adjacency[a] {
		e := g.edges[eid]
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return eid
		}
	}

	return ""
}

// FromAdjacencyList builds an unweighted graph from node → [neighbor...].
// order fixes vertex order (the first entry is the traversal root by
// convention); keys of adj missing from order are appended sorted.
// Neighbors are attached in slice order. Graph options apply as usual, so
// pass WithDirected(true) to keep one-way links. In an undirected graph a
// link listed from both ends is stored once.
//
// Complexity: O(V log V + E·d).
func FromAdjacencyList(order []string, adj map[string][]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	ids, err := addOrdered(g, order, keysOf(adj))
	if err != nil {
		return nil, err
	}
	var from, to string
	for _, from = range ids {
		for _, to = range adj[from] {
			if !g.directed && g.HasEdge(from, to) && !g.allowMulti {
				continue
			}
			if _, err = g.AddEdge(from, to, 0); err != nil {
				return nil, fmt.Errorf("core: edge %s→%s: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// FromWeightedAdjacency builds a weighted graph from node → {neighbor: weight}.
// Vertex order follows order, then the remaining keys sorted. Neighbors of one
// vertex are attached in lexicographic order since map order is undefined.
// WithWeighted is implied.
//
// Complexity: O(V log V + E log E).
func FromWeightedAdjacency(order []string, adj map[string]map[string]int64, opts ...GraphOption) (*Graph, error) {
	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, opts...)
	g := NewGraph(append(all, WithWeighted())...)
	keys := make(map[string]struct{}, len(adj))
	var (
		id  string
		row map[string]int64
	)
	for id, row = range adj {
		keys[id] = struct{}{}
		for nb := range row {
			keys[nb] = struct{}{}
		}
	}
	ids, err := addOrdered(g, order, keys)
	if err != nil {
		return nil, err
	}
	for _, id = range ids {
		row = adj[id]
		nbrs := make([]string, 0, len(row))
		for nb := range row {
			nbrs = append(nbrs, nb)
		}
		sort.Strings(nbrs)
		for _, nb := range nbrs {
			if !g.directed && g.HasEdge(id, nb) && !g.allowMulti {
				continue
			}
			if _, err = g.AddEdge(id, nb, row[nb]); err != nil {
				return nil, fmt.Errorf("core: edge %s→%s: %w", id, nb, err)
			}
		}
	}

	return g, nil
}

// addOrdered adds order first, then the remaining keys sorted, and returns
// the resulting vertex sequence.
func addOrdered(g *Graph, order []string, keys map[string]struct{}) ([]string, error) {
	var id string
	for _, id = range order {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	rest := make([]string, 0, len(keys))
	for id = range keys {
		if !g.HasVertex(id) {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id = range rest {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}

	return g.Vertices(), nil
}

func keysOf(adj map[string][]string) map[string]struct{} {
	keys := make(map[string]struct{}, len(adj))
	for id, nbrs := range adj {
		keys[id] = struct{}{}
		for _, nb := range nbrs {
			keys[nb] = struct{}{}
		}
	}

	return keys
}
