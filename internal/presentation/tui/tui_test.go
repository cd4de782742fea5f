package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/aretw0/grievanceflow/pkg/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	err := PrintSummary(&buf, Summary{
		Path:      "flow.json",
		Nodes:     33,
		Edges:     37,
		Languages: []string{"English", "Hindi", "Odia"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no colors outside a terminal")
	assert.Contains(t, out, "📁 File: flow.json\n")
	assert.Contains(t, out, "📊 Total Nodes: 33\n")
	assert.Contains(t, out, "🔗 Total Edges: 37\n")
	assert.Contains(t, out, "🌐 Languages: English, Hindi, Odia\n")
	assert.NotContains(t, out, "warning")

	buf.Reset()
	require.NoError(t, PrintSummary(&buf, Summary{Warnings: 2}))
	assert.Contains(t, buf.String(), "2 validation warning(s)")
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, "Errors", "#ef4444", nil)
	assert.Empty(t, buf.String())

	PrintIssues(&buf, "Warnings", "#f59e0b", []string{"a", "b"})
	assert.Equal(t, "Warnings (2):\n  - a\n  - b\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "flow")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPreviewMarkdown(t *testing.T) {
	cfg, err := translation.Default()
	require.NoError(t, err)
	doc, err := flow.Assemble(cfg)
	require.NoError(t, err)

	md := PreviewMarkdown(doc, "hi")
	assert.True(t, strings.HasPrefix(md, "# Collectorate Jharsugda Odisha - Complete Tri-lingual\n"))
	assert.Contains(t, md, "## Start\n")
	assert.Contains(t, md, "## Language Selection\n")
	assert.Contains(t, md, "## Main Menu (Hindi)\n")
	assert.Contains(t, md, "## End\n")
	assert.Contains(t, md, "`confirm_submit`")
	assert.Contains(t, md, "_Saved to `citizenName`_")
	assert.NotContains(t, md, "(English)")
	assert.NotContains(t, md, "(Odia)")

	render, err := NewRenderer(80)
	require.NoError(t, err)
	out, err := render(md)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
