// Package snapshot renders analysis results as structural data files.
//
// A snapshot mirrors the in-memory result for downstream tooling. Keys are
// snake_case and maps are emitted in sorted key order by both encoders.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer encodes snapshots in a single format.
type Renderer struct {
	format domain.SnapshotFormat
}

// New creates a snapshot renderer for format.
func New(format domain.SnapshotFormat) (*Renderer, error) {
	switch format {
	case domain.SnapshotJSON, domain.SnapshotYAML:
		return &Renderer{format: format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Extension returns the file extension of the format.
func (r *Renderer) Extension() string {
	return r.format.Extension()
}

// RenderConsistency encodes a consistency result.
func (r *Renderer) RenderConsistency(result *domain.ConsistencyResult) ([]byte, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}
	return r.encode(newConsistencySnapshot(result))
}

// RenderTraceability encodes a traceability matrix.
func (r *Renderer) RenderTraceability(matrix *domain.TraceabilityMatrix) ([]byte, error) {
	if matrix == nil {
		return nil, domain.ErrInvalidInput
	}
	return r.encode(newTraceabilitySnapshot(matrix))
}

func (r *Renderer) encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	switch r.format {
	case domain.SnapshotYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode yaml snapshot: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml snapshot: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode json snapshot: %w", err)
		}
	}

	return buf.Bytes(), nil
}
