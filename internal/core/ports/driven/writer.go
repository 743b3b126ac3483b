package driven

import (
	"context"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// ArtifactWriter persists generated artifacts.
type ArtifactWriter interface {
	// Write creates dir if missing and writes each artifact into it.
	// It returns the paths written, in order. Writes are not atomic.
	Write(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error)
}
