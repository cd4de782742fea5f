package domain

// Document is the generated flow: the sole output artifact.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Viewport Viewport `json:"viewport"`
}

// Metadata describes the flow to the importing dashboard.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CompanyID   string `json:"companyId"`
	Version     int    `json:"version"`
	IsActive    bool   `json:"isActive"`
}

// Viewport is the initial camera of the visual editor.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// DefaultViewport frames the whole three-language layout.
var DefaultViewport = Viewport{X: 0, Y: 0, Zoom: 0.5}

// Node returns the node with the given id.
func (d *Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Outgoing returns the edges leaving the node, in document order.
func (d *Document) Outgoing(id string) []Edge {
	var out []Edge
	for _, e := range d.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}
