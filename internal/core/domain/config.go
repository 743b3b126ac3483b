package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where artifacts are written, relative to the base directory.
const DefaultOutputDir = "docs/traceability"

// DefaultPlanningDir holds the planning documents, relative to the base directory.
const DefaultPlanningDir = "docs/planning"

// SnapshotFormat selects the encoding of the structural snapshot artifact.
type SnapshotFormat string

// Supported snapshot formats.
const (
	SnapshotJSON SnapshotFormat = "json"
	SnapshotYAML SnapshotFormat = "yaml"
)

// ParseSnapshotFormat validates a snapshot format name. Empty selects JSON.
func ParseSnapshotFormat(s string) (SnapshotFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return SnapshotJSON, nil
	case "yaml", "yml":
		return SnapshotYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension used for the snapshot artifact.
func (f SnapshotFormat) Extension() string {
	return string(f)
}

// DocumentSpec maps a logical document name to its source path.
type DocumentSpec struct {
	Name DocumentName
	Path string
}

// Config is the process-wide configuration for a run.
// It is a value type: the With* methods return modified copies.
type Config struct {
	// BaseDir anchors every relative path.
	BaseDir string

	// Documents lists the analysed documents in report order.
	Documents []DocumentSpec

	// OutputDir receives the generated artifacts.
	OutputDir string

	// SnapshotFormat selects the snapshot encoding.
	SnapshotFormat SnapshotFormat
}

// DefaultConfig returns the fixed mapping docs/planning/<Name>.md under baseDir.
func DefaultConfig(baseDir string) Config {
	names := DocumentNames()
	docs := make([]DocumentSpec, 0, len(names))
	for _, name := range names {
		docs = append(docs, DocumentSpec{
			Name: name,
			Path: filepath.Join(DefaultPlanningDir, string(name)+".md"),
		})
	}
	return Config{
		BaseDir:        baseDir,
		Documents:      docs,
		OutputDir:      DefaultOutputDir,
		SnapshotFormat: SnapshotJSON,
	}
}

// WithDocumentPath returns a copy of c with the path of name replaced.
func (c Config) WithDocumentPath(name DocumentName, path string) Config {
	docs := make([]DocumentSpec, len(c.Documents))
	copy(docs, c.Documents)
	for i := range docs {
		if docs[i].Name == name {
			docs[i].Path = path
		}
	}
	c.Documents = docs
	return c
}

// WithOutputDir returns a copy of c writing to dir.
func (c Config) WithOutputDir(dir string) Config {
	c.Documents = append([]DocumentSpec(nil), c.Documents...)
	c.OutputDir = dir
	return c
}

// WithSnapshotFormat returns a copy of c using format f.
func (c Config) WithSnapshotFormat(f SnapshotFormat) Config {
	c.Documents = append([]DocumentSpec(nil), c.Documents...)
	c.SnapshotFormat = f
	return c
}

// Resolve anchors a relative path at BaseDir.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// ResolvedOutputDir returns the absolute-or-BaseDir-relative output directory.
func (c Config) ResolvedOutputDir() string {
	if c.OutputDir == "" {
		return c.Resolve(DefaultOutputDir)
	}
	return c.Resolve(c.OutputDir)
}

// Validate checks that every document name is known and appears once.
func (c Config) Validate() error {
	if len(c.Documents) == 0 {
		return fmt.Errorf("%w: no documents configured", ErrInvalidInput)
	}
	seen := make(map[DocumentName]bool, len(c.Documents))
	for _, d := range c.Documents {
		if _, err := ParseDocumentName(string(d.Name)); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate document %s", ErrInvalidInput, d.Name)
		}
		seen[d.Name] = true
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("%w: empty path for %s", ErrInvalidInput, d.Name)
		}
	}
	if _, err := ParseSnapshotFormat(string(c.SnapshotFormat)); err != nil {
		return err
	}
	return nil
}
