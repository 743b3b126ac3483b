package domain

import "fmt"

// DocumentName identifies one of the planning documents.
type DocumentName string

// The fixed set of planning documents, in report order.
const (
	SRS      DocumentName = "SRS"
	SDD      DocumentName = "SDD"
	SDP      DocumentName = "SDP"
	TestPlan DocumentName = "TestPlan"
	API      DocumentName = "API"
)

// UnknownVersion is reported for documents that declare no version.
const UnknownVersion = "Unknown"

// DocumentNames returns the planning documents in report order.
func DocumentNames() []DocumentName {
	return []DocumentName{SRS, SDD, SDP, TestPlan, API}
}

// ParseDocumentName validates s against the fixed document set.
func ParseDocumentName(s string) (DocumentName, error) {
	for _, name := range DocumentNames() {
		if string(name) == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocument, s)
}

// Document is a planning document loaded once for a run.
// Text is never mutated after loading.
type Document struct {
	// Name is the logical document name.
	Name DocumentName

	// Path is the resolved source path.
	Path string

	// Text is the raw document text. Empty when the load failed.
	Text string

	// LoadErr records why the document could not be read.
	// It wraps ErrLoadFailure and is informational only.
	LoadErr error
}

// Loaded reports whether the document text was read successfully.
func (d Document) Loaded() bool {
	return d.LoadErr == nil
}

// DocumentNamesOf returns the names of docs in order.
func DocumentNamesOf(docs []Document) []DocumentName {
	names := make([]DocumentName, 0, len(docs))
	for i := range docs {
		names = append(names, docs[i].Name)
	}
	return names
}
