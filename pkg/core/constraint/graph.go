package constraint

import (
	"slices"
	"strings"

	"github.com/matzehuels/floorplan/pkg/plan"
)

// Graph is a deterministic view of parsed constraints: one node per room id
// and one undirected edge per distinct adjacency pair.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a room mentioned in a prompt.
type Node struct {
	ID       string        `json:"id"`
	Position plan.Position `json:"position,omitempty"`
}

// Edge is an adjacency request. From sorts before To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BuildGraph collects constraints into a graph with sorted nodes and edges.
// When a room has several position constraints the first one is kept.
func BuildGraph(constraints []plan.LayoutConstraint) Graph {
	positions := make(map[string]plan.Position)
	for _, id := range Referenced(constraints) {
		positions[id] = ""
	}
	for _, c := range constraints {
		if c.Position != "" && positions[c.RoomID] == "" {
			positions[c.RoomID] = c.Position
		}
	}

	g := Graph{Nodes: []Node{}, Edges: []Edge{}}
	for id, pos := range positions {
		g.Nodes = append(g.Nodes, Node{ID: id, Position: pos})
	}
	slices.SortFunc(g.Nodes, func(a, b Node) int { return strings.Compare(a.ID, b.ID) })

	seen := make(map[Edge]bool)
	for _, p := range AdjacencyPairs(constraints) {
		if p[0] == p[1] {
			continue
		}
		e := Edge{From: min(p[0], p[1]), To: max(p[0], p[1])}
		if !seen[e] {
			seen[e] = true
			g.Edges = append(g.Edges, e)
		}
	}
	slices.SortFunc(g.Edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	return g
}

// Neighbors returns the sorted adjacency targets of id.
func (g Graph) Neighbors(id string) []string {
	var out []string
	for _, e := range g.Edges {
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	slices.Sort(out)
	return out
}
