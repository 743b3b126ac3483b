package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/repo")

	assert.Equal(t, "/repo", cfg.BaseDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, SnapshotJSON, cfg.SnapshotFormat)
	require.Len(t, cfg.Documents, 5)
	assert.Equal(t, DocumentSpec{Name: SRS, Path: filepath.Join("docs", "planning", "SRS.md")}, cfg.Documents[0])
	assert.Equal(t, DocumentSpec{Name: API, Path: filepath.Join("docs", "planning", "API.md")}, cfg.Documents[4])
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithMethodsCopy(t *testing.T) {
	base := DefaultConfig("/repo")

	changed := base.WithDocumentPath(SDD, "design/sdd.md").
		WithOutputDir("out").
		WithSnapshotFormat(SnapshotYAML)

	assert.Equal(t, "design/sdd.md", changed.Documents[1].Path)
	assert.Equal(t, "out", changed.OutputDir)
	assert.Equal(t, SnapshotYAML, changed.SnapshotFormat)

	assert.Equal(t, filepath.Join("docs", "planning", "SDD.md"), base.Documents[1].Path)
	assert.Equal(t, DefaultOutputDir, base.OutputDir)
	assert.Equal(t, SnapshotJSON, base.SnapshotFormat)
}

func TestConfig_Resolve(t *testing.T) {
	cfg := DefaultConfig("/repo")

	assert.Equal(t, filepath.Join("/repo", "docs", "SRS.md"), cfg.Resolve("docs/SRS.md"))
	assert.Equal(t, "/abs/SRS.md", cfg.Resolve("/abs/SRS.md"))
	assert.Equal(t, "", cfg.Resolve(""))
}

func TestConfig_ResolvedOutputDir(t *testing.T) {
	cfg := DefaultConfig("/repo")
	assert.Equal(t, filepath.Join("/repo", "docs", "traceability"), cfg.ResolvedOutputDir())

	cfg.OutputDir = ""
	assert.Equal(t, filepath.Join("/repo", "docs", "traceability"), cfg.ResolvedOutputDir())

	assert.Equal(t, "/tmp/out", cfg.WithOutputDir("/tmp/out").ResolvedOutputDir())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Config) Config
		wantErr error
	}{
		{
			name:    "no documents",
			mutate:  func(c Config) Config { c.Documents = nil; return c },
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown document",
			mutate: func(c Config) Config {
				c.Documents = append(c.Documents, DocumentSpec{Name: "README", Path: "README.md"})
				return c
			},
			wantErr: ErrUnknownDocument,
		},
		{
			name: "duplicate document",
			mutate: func(c Config) Config {
				c.Documents = append(c.Documents, DocumentSpec{Name: SRS, Path: "other.md"})
				return c
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty path",
			mutate:  func(c Config) Config { return c.WithDocumentPath(API, "  ") },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad snapshot format",
			mutate:  func(c Config) Config { return c.WithSnapshotFormat("xml") },
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(DefaultConfig("/repo")).Validate()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSnapshotFormat(t *testing.T) {
	tests := []struct {
		input string
		want  SnapshotFormat
	}{
		{"", SnapshotJSON},
		{"json", SnapshotJSON},
		{"JSON", SnapshotJSON},
		{"yaml", SnapshotYAML},
		{" yml ", SnapshotYAML},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSnapshotFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSnapshotFormat("toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSnapshotFormat_Extension(t *testing.T) {
	assert.Equal(t, "json", SnapshotJSON.Extension())
	assert.Equal(t, "yaml", SnapshotYAML.Extension())
}
