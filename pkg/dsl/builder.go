package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/grievanceflow/pkg/domain"
)

// ErrDuplicateNode is returned by Build when two nodes share an id.
var ErrDuplicateNode = errors.New("duplicate node id")

// ErrDuplicateEdge is returned by Build when two edges share an id.
var ErrDuplicateEdge = errors.New("duplicate edge id")

// Builder manages the graph construction. Nodes and edges keep insertion order.
type Builder struct {
	nodes []*NodeBuilder
	edges []domain.Edge
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{}
}

// Add appends a node of the given type and returns its builder.
// Adding an id twice is reported by Build.
func (b *Builder) Add(id string, typ domain.NodeType) *NodeBuilder {
	nb := &NodeBuilder{
		node:    domain.Node{ID: id, Type: typ},
		builder: b,
	}
	b.nodes = append(b.nodes, nb)
	return nb
}

// Connect appends an edge between two nodes that may belong to different builders.
func (b *Builder) Connect(source, handle, target, label string) *Builder {
	b.edges = append(b.edges, domain.Edge{
		ID:           EdgeID(source, handle, target),
		Source:       source,
		Target:       target,
		SourceHandle: handle,
		Label:        label,
	})
	return b
}

// Build returns the nodes and edges in insertion order.
func (b *Builder) Build() ([]domain.Node, []domain.Edge, error) {
	nodes := make([]domain.Node, 0, len(b.nodes))
	seen := make(map[string]bool, len(b.nodes))
	for _, nb := range b.nodes {
		if nb.node.ID == "" {
			return nil, nil, fmt.Errorf("node missing ID")
		}
		if seen[nb.node.ID] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateNode, nb.node.ID)
		}
		seen[nb.node.ID] = true
		nodes = append(nodes, nb.node)
	}

	edges := make([]domain.Edge, 0, len(b.edges))
	seenEdges := make(map[string]bool, len(b.edges))
	for _, e := range b.edges {
		if seenEdges[e.ID] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateEdge, e.ID)
		}
		seenEdges[e.ID] = true
		edges = append(edges, e)
	}

	return nodes, edges, nil
}

// Append adds already-built nodes and edges, e.g. a subgraph, preserving their order.
func (b *Builder) Append(nodes []domain.Node, edges []domain.Edge) *Builder {
	for _, n := range nodes {
		b.nodes = append(b.nodes, &NodeBuilder{node: n, builder: b})
	}
	b.edges = append(b.edges, edges...)
	return b
}

// EdgeID derives an edge id from its endpoints and handle.
// Node ids never contain a double underscore, so the composition is unambiguous.
func EdgeID(source, handle, target string) string {
	if handle == "" {
		return "e__" + source + "__" + target
	}
	return "e__" + source + "__" + handle + "__" + target
}
