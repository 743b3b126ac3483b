package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfigStore_Directory(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, DefaultFileName), store.Path())
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	_, ok := store.Get("output_dir")
	assert.False(t, ok)
	assert.Empty(t, store.GetStringMap("documents"))
}

func TestConfigStore_ReadsValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
output_dir = "out/trace"
snapshot_format = "yaml"
retries = 3

[documents]
SRS = "requirements/srs.md"
API = "api/**/*.md"
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, "out/trace", store.GetString("output_dir"))
	assert.Equal(t, "yaml", store.GetString("snapshot_format"))
	assert.Equal(t, "", store.GetString("retries"))
	assert.Equal(t, "", store.GetString("missing"))

	val, ok := store.Get("documents.SRS")
	assert.True(t, ok)
	assert.Equal(t, "requirements/srs.md", val)

	assert.Equal(t, map[string]string{
		"SRS": "requirements/srs.md",
		"API": "api/**/*.md",
	}, store.GetStringMap("documents"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "output_dir = \n")

	_, err := NewConfigStore(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestConfigStore_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `output_dir = "first"`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)
	assert.Equal(t, "first", store.GetString("output_dir"))

	writeConfig(t, tmpDir, `output_dir = "second"`)
	require.NoError(t, store.Load())
	assert.Equal(t, "second", store.GetString("output_dir"))
}

func TestFlattenMap(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": "x"}},
		"e": true,
	}

	got := flattenMap(in, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, got)
}
