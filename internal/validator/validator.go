package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Issue is a single finding about a document.
type Issue struct {
	NodeID  string
	EdgeID  string
	Message string
}

func (i Issue) Error() string {
	switch {
	case i.NodeID != "":
		return fmt.Sprintf("node %s: %s", i.NodeID, i.Message)
	case i.EdgeID != "":
		return fmt.Sprintf("edge %s: %s", i.EdgeID, i.Message)
	default:
		return i.Message
	}
}

// Report collects the findings of Validate.
// Errors make the document unusable by a flow runtime; warnings flag likely mistakes.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether no errors were found.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

// Err aggregates the errors into one error, or returns nil.
func (r Report) Err() error {
	var result *multierror.Error
	for _, issue := range r.Errors {
		result = multierror.Append(result, issue)
	}
	return result.ErrorOrNil()
}

func (r *Report) errorf(nodeID, edgeID, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{NodeID: nodeID, EdgeID: edgeID, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(nodeID, edgeID, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{NodeID: nodeID, EdgeID: edgeID, Message: fmt.Sprintf(format, args...)})
}

// Validate lints a flow document. It never modifies doc.
func Validate(doc *domain.Document) Report {
	var r Report
	if doc == nil || len(doc.Nodes) == 0 {
		r.errorf("", "", "flow has no nodes")
		return r
	}

	checkStructure(doc, &r)
	checkNodes(doc, &r)
	checkChoices(doc, &r)
	checkReachability(doc, &r)
	checkCycles(doc, &r)
	checkLimits(doc, &r)
	checkPlaceholders(doc, &r)
	checkIsomorphism(doc, &r)
	return r
}

// checkStructure enforces id uniqueness, referential closure and a single start node.
func checkStructure(doc *domain.Document, r *Report) {
	for _, n := range lo.FindDuplicatesBy(doc.Nodes, func(n domain.Node) string { return n.ID }) {
		r.errorf(n.ID, "", "duplicate node id")
	}
	for _, e := range lo.FindDuplicatesBy(doc.Edges, func(e domain.Edge) string { return e.ID }) {
		r.errorf("", e.ID, "duplicate edge id")
	}

	ids := lo.SliceToMap(doc.Nodes, func(n domain.Node) (string, bool) { return n.ID, true })
	for _, e := range doc.Edges {
		if e.ID == "" {
			r.errorf("", "", "edge %s -> %s has no id", e.Source, e.Target)
		}
		if !ids[e.Source] {
			r.errorf("", e.ID, "source %q does not exist", e.Source)
		}
		if !ids[e.Target] {
			r.errorf("", e.ID, "target %q does not exist", e.Target)
		}
	}

	starts := lo.Filter(doc.Nodes, func(n domain.Node, _ int) bool { return n.Type == domain.NodeTypeStart })
	switch len(starts) {
	case 0:
		r.errorf("", "", "flow has no start node")
	case 1:
	default:
		for _, n := range starts[1:] {
			r.warnf(n.ID, "", "additional start node; only %s is entered", starts[0].ID)
		}
	}
}

// checkNodes verifies the type-specific payload each node type requires.
func checkNodes(doc *domain.Document, r *Report) {
	for _, n := range doc.Nodes {
		if n.ID == "" {
			r.errorf("", "", "node of type %q has no id", n.Type)
		}
		if !n.Type.Valid() {
			r.errorf(n.ID, "", "unknown node type %q", n.Type)
			continue
		}

		switch n.Type {
		case domain.NodeTypeButtonMessage, domain.NodeTypeListMessage, domain.NodeTypeUserInput, domain.NodeTypeTextMessage:
			if strings.TrimSpace(n.Data.MessageText) == "" {
				r.errorf(n.ID, "", "message text is required")
			}
		}

		switch n.Type {
		case domain.NodeTypeButtonMessage:
			if len(n.Data.Buttons) == 0 {
				r.errorf(n.ID, "", "at least one button is required")
			}
			for i, b := range n.Data.Buttons {
				if b.ID == "" {
					r.errorf(n.ID, "", "button %d has no id", i+1)
				}
			}
		case domain.NodeTypeListMessage:
			if len(n.Data.Sections) == 0 {
				r.errorf(n.ID, "", "at least one section is required")
			}
			for _, s := range n.Data.Sections {
				if len(s.Rows) == 0 {
					r.errorf(n.ID, "", "section %q has no rows", s.Title)
				}
			}
			if n.Data.IsDynamic && n.Data.DynamicSource == "" {
				r.errorf(n.ID, "", "dynamic list has no source")
			}
		case domain.NodeTypeUserInput:
			if n.Data.SaveToField == "" {
				r.errorf(n.ID, "", "field name to save input is required")
			}
			if n.Data.InputType == "" {
				r.errorf(n.ID, "", "input type is required")
			}
		}
	}
}

// checkChoices flags buttons or static rows no edge handles, and handles no choice matches.
func checkChoices(doc *domain.Document, r *Report) {
	for _, n := range doc.Nodes {
		if n.Type == domain.NodeTypeListMessage && n.Data.IsDynamic {
			continue
		}
		choices := n.Choices()
		if len(choices) == 0 {
			continue
		}
		handled := lo.SliceToMap(doc.Outgoing(n.ID), func(e domain.Edge) (string, bool) { return e.SourceHandle, true })
		for _, c := range choices {
			if !handled[c] {
				r.warnf(n.ID, "", "choice %q has no outgoing edge (dead end)", c)
			}
		}
	}

	for _, e := range doc.Edges {
		if e.SourceHandle == "" {
			continue
		}
		src, ok := doc.Node(e.Source)
		if !ok || (src.Type == domain.NodeTypeListMessage && src.Data.IsDynamic) {
			continue
		}
		if !lo.Contains(src.Choices(), e.SourceHandle) {
			r.warnf("", e.ID, "handle %q matches no choice of %s", e.SourceHandle, e.Source)
		}
	}
}

// checkReachability crawls from the start node and flags nodes never visited.
func checkReachability(doc *domain.Document, r *Report) {
	start, ok := lo.Find(doc.Nodes, func(n domain.Node) bool { return n.Type == domain.NodeTypeStart })
	if !ok {
		return
	}

	visited := make(map[string]bool)
	queue := []string{start.ID}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		for _, e := range doc.Outgoing(currentID) {
			if !visited[e.Target] {
				queue = append(queue, e.Target)
			}
		}
	}

	for _, n := range doc.Nodes {
		if !visited[n.ID] {
			r.warnf(n.ID, "", "unreachable from %s", start.ID)
		}
	}
}

// checkCycles reports every edge that closes a loop, in document order.
func checkCycles(doc *domain.Document, r *Report) {
	const (
		unvisited = iota
		onStack
		done
	)
	state := make(map[string]int, len(doc.Nodes))

	var visit func(id string)
	visit = func(id string) {
		state[id] = onStack
		for _, e := range doc.Outgoing(id) {
			switch state[e.Target] {
			case unvisited:
				visit(e.Target)
			case onStack:
				r.warnf("", e.ID, "closes a cycle through %s", e.Target)
			}
		}
		state[id] = done
	}

	for _, n := range doc.Nodes {
		if state[n.ID] == unvisited {
			visit(n.ID)
		}
	}
}
