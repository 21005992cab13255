// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency views.
// Determinism:
//   - Neighbors/NeighborIDs follow edge attachment order.
//   - AdjacencyList/WeightedAdjacency contain an entry for every vertex.
// Concurrency:
//   - muVert read lock for the vertex check, then muEdgeAdj read lock.

package core

// Neighbors returns the edges leaving id, in the order they were attached.
//
// Each returned Edge is a copy oriented away from id: for an undirected edge
// stored as B–A, Neighbors("A") yields From=A, To=B. Self-loops appear once.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacency[id]
	out := make([]Edge, 0, len(bucket))
	var eid string
	for _, eid = range bucket {
		e := *g.edges[eid]
		if e.From != id {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborIDs returns the distinct vertex IDs reachable over one edge from id,
// in first-attachment order.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var e Edge
	for _, e = range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out, nil
}

// AdjacencyList returns node → [neighbor...] (the traversal form).
// Vertices without neighbors map to an empty, non-nil slice.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.Vertices()
	out := make(map[string][]string, len(ids))
	var id string
	for _, id = range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			// vertex removed concurrently; skip it
			continue
		}
		out[id] = nbrs
	}

	return out
}

// WeightedAdjacency returns node → {neighbor: weight} (the path-finding form).
// Parallel edges collapse to their lightest weight.
//
// Complexity: O(V + E).
func (g *Graph) WeightedAdjacency() map[string]map[string]int64 {
	ids := g.Vertices()
	out := make(map[string]map[string]int64, len(ids))
	var (
		id    string
		e     Edge
		edges []Edge
		err   error
	)
	for _, id = range ids {
		if edges, err = g.Neighbors(id); err != nil {
			continue
		}
		row := make(map[string]int64, len(edges))
		for _, e = range edges {
			if w, ok := row[e.To]; ok && w <= e.Weight {
				continue
			}
			row[e.To] = e.Weight
		}
		out[id] = row
	}

	return out
}
