// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register
//     it at the end of the insertion order.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Complexity: Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	return g.AddLabeledVertex(id, "")
}

// AddLabeledVertex is AddVertex with display text. An existing vertex keeps
// its ID and position but takes the new label when label is non-empty.
func (g *Graph) AddLabeledVertex(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if label != "" {
			v.Label = label
		}
		return nil
	}

	g.vertices[id] = &Vertex{ID: id, Label: label, Metadata: make(map[string]interface{})}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Later vertices shift down one position in the insertion order, so
// IndexOf results taken before the call are stale afterwards.
//
// Complexity: Time O(V + E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	pos, exists := g.index[id]
	if !exists {
		return ErrVertexNotFound
	}

	// Remove all incident edges.
	var eid string
	for _, eid = range g.edgeOrder {
		e := g.edges[eid]
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	compactEdgeOrder(g)
	delete(g.adjacency, id)

	// Drop from the catalog and close the gap in the insertion order.
	delete(g.vertices, id)
	delete(g.index, id)
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	var i int
	for i = pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// IndexOf returns the position of id in the insertion order.
// Algorithms use it to map vertices onto dense integer keys.
func (g *Graph) IndexOf(id string) (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// IDAt is the inverse of IndexOf. It returns "" when i is out of range.
func (g *Graph) IDAt(i int) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if i < 0 || i >= len(g.order) {
		return ""
	}

	return g.order[i]
}
