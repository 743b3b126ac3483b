package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doctrace/internal/adapters/driven/loader/memory"
	"github.com/custodia-labs/doctrace/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/doctrace/internal/adapters/driven/render/snapshot"
	fswriter "github.com/custodia-labs/doctrace/internal/adapters/driven/writer/filesystem"
	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driving"
	"github.com/custodia-labs/doctrace/internal/core/services"
	"github.com/custodia-labs/doctrace/internal/logger"
)

// testEnv runs commands against in-memory documents and a temp base dir.
type testEnv struct {
	base   string
	loader *memory.Loader
	config domain.Config
}

func setupTestService(t *testing.T, texts map[domain.DocumentName]string) *testEnv {
	t.Helper()

	env := &testEnv{
		base:   t.TempDir(),
		loader: memory.New(texts),
	}

	original := newReportService
	newReportService = func(cfg domain.Config) (driving.ReportService, error) {
		env.config = cfg
		snap, err := snapshot.New(cfg.SnapshotFormat)
		if err != nil {
			return nil, err
		}
		return services.NewReportService(cfg, env.loader, markdown.New(), snap, fswriter.New(),
			services.WithClock(func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }),
			services.WithIDGenerator(func() string { return "run-test" }),
		), nil
	}

	t.Cleanup(func() {
		newReportService = original
		resetFlags()
		logger.Reset()
	})

	return env
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	rootCmd.SetArgs(nil)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func (e *testEnv) output(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.base, "docs", "traceability", name))
	require.NoError(t, err)
	return string(data)
}
