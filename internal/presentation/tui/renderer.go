package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/charmbracelet/glamour"
	"github.com/samber/lo"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer(wordWrap int) (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(wordWrap),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// PreviewMarkdown lays out the messages of one language, in document order, as markdown.
// Language-independent anchors are included so the preview reads like a conversation.
func PreviewMarkdown(doc *domain.Document, code string) string {
	suffix := "_" + code
	langs := flow.Languages(doc)
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", doc.Metadata.Name)

	for _, n := range doc.Nodes {
		shared := !lo.ContainsBy(langs, func(c string) bool { return strings.HasSuffix(n.ID, "_"+c) })
		if !strings.HasSuffix(n.ID, suffix) && !shared {
			continue
		}

		label := n.Data.Label
		if label == "" {
			label = n.ID
		}
		fmt.Fprintf(&sb, "## %s\n\n", label)

		switch {
		case n.Data.MessageText != "":
			for _, line := range strings.Split(n.Data.MessageText, "\n") {
				fmt.Fprintf(&sb, "> %s\n", line)
			}
			sb.WriteString("\n")
		case n.Data.Trigger != "":
			fmt.Fprintf(&sb, "_Triggered by %s `%s`_\n\n", n.Data.TriggerType, n.Data.Trigger)
		case n.Data.EndMessage != "":
			fmt.Fprintf(&sb, "> %s\n\n", n.Data.EndMessage)
		}

		for _, b := range n.Data.Buttons {
			fmt.Fprintf(&sb, "- [%s] `%s`\n", b.Text, b.ID)
		}
		for _, s := range n.Data.Sections {
			fmt.Fprintf(&sb, "\n**%s** (%s)\n\n", s.Title, n.Data.ButtonText)
			for _, r := range s.Rows {
				if r.Description != "" {
					fmt.Fprintf(&sb, "- %s: %s\n", r.Title, r.Description)
				} else {
					fmt.Fprintf(&sb, "- %s\n", r.Title)
				}
			}
		}
		if n.Data.SaveToField != "" {
			fmt.Fprintf(&sb, "_Saved to `%s`_\n", n.Data.SaveToField)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
