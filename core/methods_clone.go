// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep vertex order, edge order and edge IDs.
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	var (
		i  int
		id string
	)
	for i, id = range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
		clone.index[id] = i
		clone.adjacency[id] = nil
	}
	clone.order = append([]string(nil), g.order...)

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var eid string
	for _, eid = range g.edgeOrder {
		e := *g.edges[eid]
		clone.edges[eid] = &e
		clone.edgeOrder = append(clone.edgeOrder, eid)
	}
	var (
		id     string
		bucket []string
	)
	for id, bucket = range g.adjacency {
		clone.adjacency[id] = append([]string(nil), bucket...)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.order = nil
	g.index = make(map[string]int)
	g.edges = make(map[string]*Edge)
	g.edgeOrder = nil
	g.adjacency = make(map[string][]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
