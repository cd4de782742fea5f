package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/grievanceflow"
	"github.com/aretw0/grievanceflow/pkg/adapters/file"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logLevel, translations, edgeIDs = "warn", "", string(flow.EdgeIDDerived)
	outputPath, validateFlow = grievanceflow.DefaultOutput, false
	byLanguage, flagWarnings = false, false
	previewLang, previewRaw, previewWrap = "", false, 80

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")

	out, err := execute(t, "generate", "-o", path, "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Flow generated successfully!")
	assert.Contains(t, out, "Total Nodes: 33")
	assert.Contains(t, out, "Total Edges: 37")
	assert.Contains(t, out, "Languages: English, Hindi, Odia")
	assert.Contains(t, out, "validation warning(s)")

	doc, err := file.ReadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 33)
	assert.Len(t, doc.Edges, 37)
}

func TestRootCommand_DefaultsToGenerate(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, grievanceflow.DefaultOutput)
	assert.FileExists(t, grievanceflow.DefaultOutput)
}

func TestGenerateCommand_SequentialIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")

	_, err := execute(t, "generate", "-o", path, "--edge-ids", "sequential")
	require.NoError(t, err)

	doc, err := file.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "e1", doc.Edges[0].ID)
	assert.Equal(t, "e37", doc.Edges[36].ID)
}

func TestGenerateCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "-o", dir)
	assert.Error(t, err, "a directory is not a writable destination")

	_, err = execute(t, "generate", "-o", filepath.Join(dir, "x.json"), "--edge-ids", "random")
	assert.ErrorContains(t, err, "random")

	_, err = execute(t, "generate", "-o", filepath.Join(dir, "x.json"), "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "generate", "-o", filepath.Join(dir, "x.json"), "--translations", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "x.json"))
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Warnings (")
	assert.Contains(t, out, "cancel_submit")
	assert.Contains(t, out, "Flow is valid!")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"nodes":[{"id":"a","type":"start"}],"edges":[{"id":"e","source":"a","target":"ghost"}]}`), 0644))

	out, err = execute(t, "validate", bad)
	assert.ErrorContains(t, err, "validation failed")
	assert.Contains(t, out, "Errors (1):")
	assert.Contains(t, out, `target "ghost" does not exist`)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--by-language", "--flag-warnings")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `subgraph lang_hi["Hindi"]`)
	assert.Contains(t, out, "class submit_buttons_or flagged;")
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "preview", "--lang", "en", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "Main Menu (English)")

	_, err = execute(t, "preview", "--lang", "xx")
	assert.ErrorContains(t, err, `language "xx" is not configured`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "grievanceflow version "+grievanceflow.Version)
}
