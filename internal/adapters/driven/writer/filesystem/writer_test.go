package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "traceability")
	w := New()

	paths, err := w.Write(context.Background(), dir, []domain.Artifact{
		{Name: "consistency_report.md", Data: []byte("# Report\n")},
		{Name: "consistency_results.json", Data: []byte("{}\n")},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "consistency_report.md"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(data))

	data, err = os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestWriter_ReusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	w := New()
	ctx := context.Background()

	_, err := w.Write(ctx, dir, []domain.Artifact{{Name: "a.md", Data: []byte("first")}})
	require.NoError(t, err)
	_, err = w.Write(ctx, dir, []domain.Artifact{{Name: "a.md", Data: []byte("second")}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriter_RejectsNestedNames(t *testing.T) {
	w := New()

	paths, err := w.Write(context.Background(), t.TempDir(), []domain.Artifact{
		{Name: "ok.md", Data: []byte("ok")},
		{Name: "../escape.md", Data: []byte("no")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, paths, 1)
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := New().Write(ctx, t.TempDir(), []domain.Artifact{{Name: "a.md"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}
