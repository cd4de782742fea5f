// Package file persists flow documents on the local filesystem.
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aretw0/grievanceflow/pkg/domain"
)

// Encode serializes the document as indented JSON with non-ASCII text and
// HTML-significant characters kept literal.
func Encode(doc *domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// rename is replaced in tests to simulate a failure after the temp file is complete.
var rename = os.Rename

// WriteDocument writes the document to path atomically.
// It writes to a temporary file in the destination directory, syncs via fsync,
// and then renames it over the destination. Every filesystem failure is
// returned as a *domain.OutputWriteError.
func WriteDocument(path string, doc *domain.Document) error {
	if path == "" {
		return &domain.OutputWriteError{Path: path, Err: fmt.Errorf("output path cannot be empty")}
	}

	data, err := Encode(doc)
	if err != nil {
		return err
	}

	fail := func(err error) error {
		return &domain.OutputWriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(fmt.Errorf("failed to ensure output directory: %w", err))
	}

	// Same directory as the destination, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fail(fmt.Errorf("failed to create temp file: %w", err))
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fail(fmt.Errorf("failed to write to temp file: %w", err))
	}
	if err := tmpFile.Sync(); err != nil {
		return fail(fmt.Errorf("failed to fsync temp file: %w", err))
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fail(fmt.Errorf("failed to close temp file: %w", err))
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fail(fmt.Errorf("failed to set file mode: %w", err))
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fail(fmt.Errorf("destination is a directory"))
		}
		// On Windows, os.Rename fails if dest exists. Elsewhere it replaces dest atomically.
		if runtime.GOOS == "windows" {
			if err := os.Remove(path); err != nil {
				return fail(fmt.Errorf("failed to remove existing file for overwrite: %w", err))
			}
		}
	}

	if err := rename(tmpPath, path); err != nil {
		return fail(fmt.Errorf("failed to rename temp file: %w", err))
	}
	return nil
}

// ReadDocument loads a document previously written by WriteDocument.
func ReadDocument(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", path, err)
	}
	return &doc, nil
}
