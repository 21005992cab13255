// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/SetWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex (appended to the vertex order if new).
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, store, and attach to adjacency buckets.
//
// Complexity: O(deg(from)) for the multi-edge probe, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && linked(g, from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from] = append(g.adjacency[from], eid)
	// Mirror undirected
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(deg(from) + deg(to) + E).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	compactEdgeOrder(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges answer in both directions.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return linked(g, from, to)
}

// GetEdge returns a copy of the Edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// SetWeight changes the weight of an existing edge in place.
// The same weight rules as AddEdge apply.
func (g *Graph) SetWeight(edgeID string, weight int64) error {
	if weight < 0 || (!g.weighted && weight != 0) {
		return ErrBadWeight
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	var eid string
	for _, eid = range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linked reports whether an edge connects from→to (either way for
// undirected edges). Caller holds muEdgeAdj.
func linked(g *Graph, from, to string) bool {
	var eid string
	for _, eid = range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// removeAdjacency detaches e from the buckets of its endpoints.
// Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	g.adjacency[e.From] = without(g.adjacency[e.From], e.ID)
	if !e.Directed && e.From != e.To {
		g.adjacency[e.To] = without(g.adjacency[e.To], e.ID)
	}
}

// compactEdgeOrder drops IDs of deleted edges from edgeOrder.
// Caller holds muEdgeAdj.
func compactEdgeOrder(g *Graph) {
	kept := g.edgeOrder[:0]
	var eid string
	for _, eid = range g.edgeOrder {
		if _, ok := g.edges[eid]; ok {
			kept = append(kept, eid)
		}
	}
	g.edgeOrder = kept
}

func without(ids []string, id string) []string {
	out := ids[:0]
	var s string
	for _, s = range ids {
		if s != id {
			out = append(out, s)
		}
	}

	return out
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
