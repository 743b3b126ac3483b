package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Configuration keys understood by ApplyConfig.
const (
	KeyOutputDir      = "output_dir"
	KeySnapshotFormat = "snapshot_format"
	TableDocuments    = "documents"
)

// ApplyConfig overlays the values held by store onto base.
// A nil store returns base unchanged. Unknown document names are rejected.
func ApplyConfig(base domain.Config, store driven.ConfigStore) (domain.Config, error) {
	if store == nil {
		return base, nil
	}

	cfg := base

	if dir := store.GetString(KeyOutputDir); dir != "" {
		cfg = cfg.WithOutputDir(dir)
	}

	if raw, ok := store.Get(KeySnapshotFormat); ok {
		str, isString := raw.(string)
		if !isString {
			return base, fmt.Errorf("%w: %s must be a string", domain.ErrInvalidInput, KeySnapshotFormat)
		}
		format, err := domain.ParseSnapshotFormat(str)
		if err != nil {
			return base, fmt.Errorf("%s: %w", store.Path(), err)
		}
		cfg = cfg.WithSnapshotFormat(format)
	}

	docs := store.GetStringMap(TableDocuments)
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name, err := domain.ParseDocumentName(key)
		if err != nil {
			return base, fmt.Errorf("%s: %w", store.Path(), err)
		}
		cfg = cfg.WithDocumentPath(name, docs[key])
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
