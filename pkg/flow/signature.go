package flow

import (
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/samber/lo"
)

// Shape is the language-independent structure of one language subgraph:
// node types and topology with the language suffix stripped from ids and handles.
// Two languages are isomorphic when their shapes are equal.
type Shape struct {
	Nodes []ShapeNode
	Edges []ShapeEdge
}

// ShapeNode is a node reduced to what must match across languages.
type ShapeNode struct {
	ID      string
	Type    domain.NodeType
	Choices []string
}

// ShapeEdge is an internal edge of a language subgraph.
type ShapeEdge struct {
	Source string
	Handle string
	Target string
}

// Languages returns the language codes present in doc, in node order.
// A language is recognized by its main menu node.
func Languages(doc *domain.Document) []string {
	prefix := NodeMainMenu + "_"
	return lo.FilterMap(doc.Nodes, func(n domain.Node, _ int) (string, bool) {
		code, ok := strings.CutPrefix(n.ID, prefix)
		return code, ok && code != ""
	})
}

// LanguageShape extracts the subgraph of the language with the given code.
// Edges crossing the subgraph boundary are not part of the shape.
func LanguageShape(doc *domain.Document, code string) Shape {
	suffix := "_" + code
	strip := func(s string) string { return strings.TrimSuffix(s, suffix) }

	members := lo.Filter(doc.Nodes, func(n domain.Node, _ int) bool {
		return strings.HasSuffix(n.ID, suffix)
	})
	inside := lo.SliceToMap(members, func(n domain.Node) (string, bool) {
		return n.ID, true
	})

	return Shape{
		Nodes: lo.Map(members, func(n domain.Node, _ int) ShapeNode {
			return ShapeNode{
				ID:      strip(n.ID),
				Type:    n.Type,
				Choices: lo.Map(n.Choices(), func(c string, _ int) string { return strip(c) }),
			}
		}),
		Edges: lo.FilterMap(doc.Edges, func(e domain.Edge, _ int) (ShapeEdge, bool) {
			if !inside[e.Source] || !inside[e.Target] {
				return ShapeEdge{}, false
			}
			return ShapeEdge{Source: strip(e.Source), Handle: strip(e.SourceHandle), Target: strip(e.Target)}, true
		}),
	}
}
