// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface, used as the input of every graph algorithm in this
// module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are non-negative int64
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Insertion order: Vertices(), Edges() and Neighbors() replay the order
//     in which the editor created things, which fixes traversal order
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Two plain-map views are exported for renderers and tests:
//
//	AdjacencyList()      map[string][]string          // node → [neighbor...]
//	WeightedAdjacency()  map[string]map[string]int64  // node → {neighbor: weight}
//
// and the matching constructors FromAdjacencyList / FromWeightedAdjacency take
// an explicit vertex order because Go maps have none.
//
// Undirected(g) returns the mirrored form of a directed graph; shortest-path
// and traversal callers decide explicitly whether they want it.
//
// Core Methods:
//
//	AddVertex(id) error                       // O(1)
//	AddLabeledVertex(id, label) error         // O(1)
//	RemoveVertex(id) error                    // O(V+E)
//	AddEdge(from, to, weight) (string, error) // O(deg)
//	SetWeight(edgeID, weight) error           // O(1)
//	RemoveEdge(edgeID) error                  // O(deg+E)
//	Neighbors(id) ([]Edge, error)             // O(deg), oriented copies
//	NeighborIDs(id) ([]string, error)         // O(deg), unique
//	IndexOf(id) (int, bool) / IDAt(i) string  // dense integer keys
//	Clone() / CloneEmpty() / Clear()
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – negative weight, or non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
