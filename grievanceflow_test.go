package grievanceflow_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/grievanceflow"
	"github.com/aretw0/grievanceflow/pkg/adapters/file"
	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/aretw0/grievanceflow/pkg/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_GenerateAndWrite(t *testing.T) {
	gen, err := grievanceflow.New(grievanceflow.WithValidation(true))
	require.NoError(t, err)

	doc, err := gen.Generate()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", grievanceflow.DefaultOutput)
	require.NoError(t, gen.Write(path, doc))

	back, err := file.ReadDocument(path)
	require.NoError(t, err)
	assert.Len(t, back.Nodes, 33)
	assert.Len(t, back.Edges, 37)
}

func TestFacade_WriteDefaultPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	gen, err := grievanceflow.New()
	require.NoError(t, err)
	doc, err := gen.Generate()
	require.NoError(t, err)

	require.NoError(t, gen.Write("", doc))
	_, err = os.Stat(grievanceflow.DefaultOutput)
	assert.NoError(t, err)
}

func TestFacade_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	gen, err := grievanceflow.New()
	require.NoError(t, err)
	doc, err := gen.Generate()
	require.NoError(t, err)

	err = gen.Write(filepath.Join(blocker, "flow.json"), doc)
	var werr *domain.OutputWriteError
	assert.True(t, errors.As(err, &werr), "got %v", err)
}

func TestFacade_ConfigErrors(t *testing.T) {
	t.Run("missing translation", func(t *testing.T) {
		cfg, err := translation.Default()
		require.NoError(t, err)
		delete(cfg.Sections[translation.SectionGrievance]["hi"], translation.FieldSuccess)

		_, err = grievanceflow.New(grievanceflow.WithConfig(cfg))
		var cerr *domain.ConstructionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "hi", cerr.Language)
		assert.Equal(t, translation.FieldSuccess, cerr.Field)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := grievanceflow.New(grievanceflow.WithConfigFile(filepath.Join(t.TempDir(), "none.yaml")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown edge ids", func(t *testing.T) {
		_, err := grievanceflow.New(grievanceflow.WithEdgeIDs("random"))
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	assert.Regexp(t, `^\d+\.\d+\.\d+`, grievanceflow.Version)
}
