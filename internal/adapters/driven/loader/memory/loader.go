// Package memory provides an in-memory document loader.
package memory

import (
	"context"
	"fmt"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader serves document texts held in memory, keyed by document name.
// A configured document without a text is reported as a load failure.
type Loader struct {
	texts map[domain.DocumentName]string
	loads int
}

// New creates a loader serving texts.
func New(texts map[domain.DocumentName]string) *Loader {
	copied := make(map[domain.DocumentName]string, len(texts))
	for name, text := range texts {
		copied[name] = text
	}
	return &Loader{texts: copied}
}

// Load returns one document per configured entry, in order.
func (l *Loader) Load(ctx context.Context, cfg domain.Config) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.loads++

	docs := make([]domain.Document, 0, len(cfg.Documents))
	for _, spec := range cfg.Documents {
		doc := domain.Document{Name: spec.Name, Path: cfg.Resolve(spec.Path)}
		text, ok := l.texts[spec.Name]
		if ok {
			doc.Text = text
		} else {
			doc.LoadErr = fmt.Errorf("%w: %s: no text", domain.ErrLoadFailure, spec.Name)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Loads returns how many times Load was called.
func (l *Loader) Loads() int {
	return l.loads
}
