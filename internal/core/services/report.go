package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
	"github.com/custodia-labs/doctrace/internal/core/ports/driving"
	"github.com/custodia-labs/doctrace/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ErrNoRenderer indicates the service was built without a renderer.
var ErrNoRenderer = errors.New("renderer not configured")

// ReportService runs the load, analyse, render and write pipeline.
type ReportService struct {
	cfg      domain.Config
	loader   driven.DocumentLoader
	report   driven.Renderer
	snapshot driven.Renderer
	writer   driven.ArtifactWriter

	consistency  *ConsistencyAnalyzer
	traceability *TraceabilityAnalyzer

	now   func() time.Time
	newID func() string
}

// ReportOption configures a ReportService.
type ReportOption func(*ReportService)

// WithClock sets the clock used for run timestamps.
func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the generator used for run IDs.
func WithIDGenerator(newID func() string) ReportOption {
	return func(s *ReportService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewReportService creates a report service.
// report renders the human-readable artifact and snapshot the structural one.
func NewReportService(
	cfg domain.Config,
	loader driven.DocumentLoader,
	report driven.Renderer,
	snapshot driven.Renderer,
	writer driven.ArtifactWriter,
	opts ...ReportOption,
) *ReportService {
	extractor := NewExtractor()
	s := &ReportService{
		cfg:          cfg,
		loader:       loader,
		report:       report,
		snapshot:     snapshot,
		writer:       writer,
		consistency:  NewConsistencyAnalyzer(extractor),
		traceability: NewTraceabilityAnalyzer(extractor),
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RunConsistency produces the consistency report and snapshot.
func (s *ReportService) RunConsistency(ctx context.Context) (*driving.RunResult, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.runConsistency(ctx, docs)
}

// RunTraceability produces the traceability matrix and snapshot.
func (s *ReportService) RunTraceability(ctx context.Context) (*driving.RunResult, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.runTraceability(ctx, docs)
}

// RunAll loads documents once and runs both pipelines on them.
func (s *ReportService) RunAll(ctx context.Context) ([]driving.RunResult, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	consistency, err := s.runConsistency(ctx, docs)
	if err != nil {
		return nil, err
	}
	traceability, err := s.runTraceability(ctx, docs)
	if err != nil {
		return []driving.RunResult{*consistency}, err
	}

	return []driving.RunResult{*consistency, *traceability}, nil
}

// WatchPaths returns the resolved path of every configured document.
func (s *ReportService) WatchPaths() []string {
	paths := make([]string, 0, len(s.cfg.Documents))
	for _, d := range s.cfg.Documents {
		paths = append(paths, s.cfg.Resolve(d.Path))
	}
	return paths
}

func (s *ReportService) load(ctx context.Context) ([]domain.Document, error) {
	if s.loader == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Loading documents")
	docs, err := s.loader.Load(ctx, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	loaded := 0
	for i := range docs {
		if docs[i].Loaded() {
			loaded++
		}
	}
	logger.Info("loaded %d of %d documents", loaded, len(docs))

	return docs, nil
}

func (s *ReportService) metadata(docs []domain.Document) domain.Metadata {
	return domain.Metadata{
		RunID:             s.newID(),
		Timestamp:         s.now(),
		DocumentsAnalyzed: domain.DocumentNamesOf(docs),
	}
}

func (s *ReportService) runConsistency(ctx context.Context, docs []domain.Document) (*driving.RunResult, error) {
	if s.report == nil || s.snapshot == nil {
		return nil, ErrNoRenderer
	}

	logger.Section("Consistency analysis")
	result := s.consistency.Analyze(s.metadata(docs), docs)
	logger.Debug("union: %d terms, %d phrases, %d requirements",
		result.Union.Terms.Len(), result.Union.Phrases.Len(), result.Union.RequirementIDs.Len())

	report, err := s.report.RenderConsistency(result)
	if err != nil {
		return nil, fmt.Errorf("failed to render consistency report: %w", err)
	}
	snapshot, err := s.snapshot.RenderConsistency(result)
	if err != nil {
		return nil, fmt.Errorf("failed to render consistency snapshot: %w", err)
	}

	paths, err := s.write(ctx, []domain.Artifact{
		{Name: domain.ConsistencyReportName, Data: report},
		{Name: domain.ConsistencyResultsStem + "." + s.snapshot.Extension(), Data: snapshot},
	})
	if err != nil {
		return nil, err
	}

	return &driving.RunResult{
		Kind:        driving.ReportConsistency,
		Documents:   docs,
		Consistency: result,
		Artifacts:   paths,
	}, nil
}

func (s *ReportService) runTraceability(ctx context.Context, docs []domain.Document) (*driving.RunResult, error) {
	if s.report == nil || s.snapshot == nil {
		return nil, ErrNoRenderer
	}

	logger.Section("Traceability analysis")
	matrix := s.traceability.Analyze(s.metadata(docs), docs)
	logger.Debug("discovered %d requirements", len(matrix.Requirements))

	report, err := s.report.RenderTraceability(matrix)
	if err != nil {
		return nil, fmt.Errorf("failed to render traceability matrix: %w", err)
	}
	snapshot, err := s.snapshot.RenderTraceability(matrix)
	if err != nil {
		return nil, fmt.Errorf("failed to render traceability snapshot: %w", err)
	}

	paths, err := s.write(ctx, []domain.Artifact{
		{Name: domain.TraceabilityReportName, Data: report},
		{Name: domain.TraceabilitySnapshotStem + "." + s.snapshot.Extension(), Data: snapshot},
	})
	if err != nil {
		return nil, err
	}

	return &driving.RunResult{
		Kind:         driving.ReportTraceability,
		Documents:    docs,
		Traceability: matrix,
		Artifacts:    paths,
	}, nil
}

func (s *ReportService) write(ctx context.Context, artifacts []domain.Artifact) ([]string, error) {
	if s.writer == nil {
		return nil, domain.ErrInvalidInput
	}
	dir := s.cfg.ResolvedOutputDir()
	paths, err := s.writer.Write(ctx, dir, artifacts)
	if err != nil {
		return paths, fmt.Errorf("failed to write artifacts to %s: %w", dir, err)
	}
	for _, p := range paths {
		logger.Info("wrote %s", p)
	}
	return paths, nil
}
