package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/samber/lo"
)

// Options tunes the Mermaid output.
type Options struct {
	// ByLanguage groups each language subgraph into a Mermaid subgraph block.
	ByLanguage bool
	// Flagged node ids are highlighted, e.g. nodes with validation warnings.
	Flagged []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a flow document.
// It applies semantic styling:
// - Start/End: ((Circle))
// - User input: [/Parallelogram/]
// - Buttons/List: {{Hexagon}}
// - Default: [Rectangle]
// Edges crossing language boundaries are dotted.
func GenerateMermaid(doc *domain.Document, opts Options) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	langs := flow.Languages(doc)
	languageOf := func(id string) string {
		code, _ := lo.Find(langs, func(code string) bool { return strings.HasSuffix(id, "_"+code) })
		return code
	}

	if opts.ByLanguage && len(langs) > 0 {
		groups := lo.GroupBy(doc.Nodes, func(n domain.Node) string { return languageOf(n.ID) })
		for _, n := range groups[""] {
			writeNode(&sb, n, "    ")
		}
		for _, code := range langs {
			sb.WriteString(fmt.Sprintf("    subgraph lang_%s[\"%s\"]\n", sanitizeMermaidID(code), languageTitle(doc, code)))
			for _, n := range groups[code] {
				writeNode(&sb, n, "        ")
			}
			sb.WriteString("    end\n")
		}
	} else {
		for _, n := range doc.Nodes {
			writeNode(&sb, n, "    ")
		}
	}

	for _, e := range doc.Edges {
		safeFrom := sanitizeMermaidID(e.Source)
		safeTo := sanitizeMermaidID(e.Target)
		isJump := languageOf(e.Source) != languageOf(e.Target)

		arrow := "-->"
		if isJump {
			arrow = "-.->"
		}
		label := e.Label
		if label == "" {
			label = e.SourceHandle
		}
		if label != "" {
			safeLabel := escapeLabel(label)
			arrow = fmt.Sprintf("-- \"%s\" -->", safeLabel)
			if isJump {
				arrow = fmt.Sprintf("-. \"%s\" .->", safeLabel)
			}
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeTo))
	}

	if len(opts.Flagged) > 0 {
		sb.WriteString("\n    %% Flagged Nodes\n")
		// Force black text (color:#000) for contrast on light and dark themes.
		sb.WriteString("    classDef flagged fill:#fff3e0,stroke:#e65100,stroke-width:2px,color:#000;\n")
		for _, id := range lo.Uniq(opts.Flagged) {
			if _, ok := doc.Node(id); ok {
				sb.WriteString(fmt.Sprintf("    class %s flagged;\n", sanitizeMermaidID(id)))
			}
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, n domain.Node, indent string) {
	opener, closer := "[", "]"
	switch n.Type {
	case domain.NodeTypeStart, domain.NodeTypeEnd:
		opener, closer = "((", "))" // Circle
	case domain.NodeTypeUserInput:
		opener, closer = "[/", "/]" // Parallelogram (Input)
	case domain.NodeTypeButtonMessage, domain.NodeTypeListMessage:
		opener, closer = "{{", "}}" // Hexagon (Choice)
	}

	label := n.Data.Label
	if label == "" {
		label = n.ID
	}
	sb.WriteString(fmt.Sprintf("%s%s%s\"%s\"%s\n", indent, sanitizeMermaidID(n.ID), opener, escapeLabel(label), closer))
}

// languageTitle uses the label of the edge entering the language's main menu, if any.
func languageTitle(doc *domain.Document, code string) string {
	menu := flow.NodeMainMenu + "_" + code
	for _, e := range doc.Edges {
		if e.Target == menu && e.Label != "" {
			return escapeLabel(e.Label)
		}
	}
	return code
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
