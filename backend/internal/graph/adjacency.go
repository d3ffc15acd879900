package graph

// Edge points from its owner to Target. Kind is Target's role for the owner:
// a child's edge to its father has Kind Father.
type Edge struct {
	Target *Person
	Kind   Kind
}

// Graph is the adjacency store keyed by person identifier. It does no
// validation; see Connector.
type Graph struct {
	adjacency map[int][]Edge
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[int][]Edge),
	}
}

// Init creates an empty edge list for the identifier. It must run before
// any edge touching the identifier is appended.
func (g *Graph) Init(id int) {
	g.adjacency[id] = []Edge{}
}

// Has reports whether the identifier has an entry
func (g *Graph) Has(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Edges returns a copy of the owner's edges in insertion order.
// Initialized owners without edges get an empty, non-nil slice.
func (g *Graph) Edges(id int) []Edge {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// Append adds an edge to the owner's list
func (g *Graph) Append(owner int, target *Person, kind Kind) {
	g.adjacency[owner] = append(g.adjacency[owner], Edge{Target: target, Kind: kind})
}

// holds reports whether the owner already has an edge of the kind
func (g *Graph) holds(owner int, kind Kind) bool {
	for _, e := range g.adjacency[owner] {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
