package driven

import (
	"context"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// DocumentLoader reads the configured planning documents.
//
// Each document is read exactly once and returned in configuration order.
// A document that cannot be read is returned with empty Text and a LoadErr
// wrapping domain.ErrLoadFailure; it never aborts the load. An error is
// returned only when ctx is cancelled.
type DocumentLoader interface {
	Load(ctx context.Context, cfg domain.Config) ([]domain.Document, error)
}
