// Package filesystem writes report artifacts to the local filesystem.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer persists artifacts as plain files.
type Writer struct{}

// New creates a filesystem artifact writer.
func New() *Writer {
	return &Writer{}
}

// Write creates dir if needed and writes each artifact.
// Already written files are kept when a later write fails.
func (w *Writer) Write(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if a.Name == "" || filepath.Base(a.Name) != a.Name {
			return paths, fmt.Errorf("%w: artifact name %q", domain.ErrInvalidInput, a.Name)
		}

		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, a.Data, 0644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
