// Package filesystem loads planning documents from the local filesystem.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
	"github.com/custodia-labs/doctrace/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// errNoMatch indicates a glob document path matched no file.
var errNoMatch = errors.New("no file matches pattern")

// Loader reads planning documents from disk.
//
// Paths are resolved against the configured base directory. A path holding
// glob metacharacters is expanded with doublestar and the first match in
// lexical order is read. Content is decoded to UTF-8, honouring a UTF-8 or
// UTF-16 byte order mark.
type Loader struct{}

// New creates a filesystem document loader.
func New() *Loader {
	return &Loader{}
}

// Load reads every configured document once, in configuration order.
// Failed reads degrade to empty text and are reported through logger.Error.
func (l *Loader) Load(ctx context.Context, cfg domain.Config) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(cfg.Documents))

	for _, spec := range cfg.Documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc := domain.Document{Name: spec.Name, Path: cfg.Resolve(spec.Path)}

		path, err := resolvePath(doc.Path)
		if err == nil {
			doc.Path = path
			doc.Text, err = ReadText(path)
		}
		if err != nil {
			doc.LoadErr = fmt.Errorf("%w: %s: %w", domain.ErrLoadFailure, spec.Name, err)
			logger.Error("Error reading %s: %v", doc.Path, err)
		} else {
			logger.Debug("read %s (%d bytes) from %s", spec.Name, len(doc.Text), doc.Path)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// resolvePath expands a glob pattern to its first match.
// Plain paths are returned unchanged.
func resolvePath(path string) (string, error) {
	if !isPattern(path) {
		return path, nil
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return path, err
	}
	if len(matches) == 0 {
		return path, errNoMatch
	}

	sort.Strings(matches)
	if len(matches) > 1 {
		logger.Warn("pattern %s matched %d files, using %s", path, len(matches), matches[0])
	}
	return matches[0], nil
}

func isPattern(path string) bool {
	return strings.ContainsAny(filepath.ToSlash(path), "*?[{")
}

// ReadText reads path and decodes it to UTF-8.
// A UTF-8 BOM is stripped and UTF-16 content with a BOM is transcoded.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(raw)
}

// DecodeText converts raw bytes to a UTF-8 string.
func DecodeText(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
