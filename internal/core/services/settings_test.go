package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Ensure mockConfigStore implements the interface.
var _ driven.ConfigStore = (*mockConfigStore)(nil)

// mockConfigStore serves flattened keys from a map.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetStringMap(table string) map[string]string {
	out := make(map[string]string)
	prefix := table + "."
	for k, v := range m.values {
		if s, ok := v.(string); ok && strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = s
		}
	}
	return out
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "doctrace.toml" }

func TestApplyConfig_NilStore(t *testing.T) {
	base := domain.DefaultConfig("/repo")

	cfg, err := ApplyConfig(base, nil)

	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestApplyConfig_EmptyStore(t *testing.T) {
	base := domain.DefaultConfig("/repo")

	cfg, err := ApplyConfig(base, &mockConfigStore{})

	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestApplyConfig_Overrides(t *testing.T) {
	store := &mockConfigStore{values: map[string]any{
		KeyOutputDir:      "reports",
		KeySnapshotFormat: "yml",
		"documents.SDD":   "design/SDD.md",
		"documents.API":   "api/**/*.md",
	}}

	cfg, err := ApplyConfig(domain.DefaultConfig("/repo"), store)
	require.NoError(t, err)

	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, domain.SnapshotYAML, cfg.SnapshotFormat)
	assert.Equal(t, "design/SDD.md", cfg.Documents[1].Path)
	assert.Equal(t, "api/**/*.md", cfg.Documents[4].Path)
	assert.Equal(t, filepath.Join("docs", "planning", "SRS.md"), cfg.Documents[0].Path)
}

func TestApplyConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{"unknown document", map[string]any{"documents.README": "README.md"}, domain.ErrUnknownDocument},
		{"unsupported format", map[string]any{KeySnapshotFormat: "xml"}, domain.ErrUnsupportedFormat},
		{"non-string format", map[string]any{KeySnapshotFormat: int64(1)}, domain.ErrInvalidInput},
		{"empty document path", map[string]any{"documents.SRS": ""}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := domain.DefaultConfig("/repo")

			cfg, err := ApplyConfig(base, &mockConfigStore{values: tt.values})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, base, cfg)
		})
	}
}
