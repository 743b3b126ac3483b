package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

var (
	versionPattern     = regexp.MustCompile(`(?i)version[:\s]+([0-9]+\.[0-9]+\.[0-9]+)`)
	termPattern        = regexp.MustCompile(`\b[A-Z][A-Za-z0-9_]+\b`)
	phrasePattern      = regexp.MustCompile(`"([^"]*)"`)
	requirementPattern = regexp.MustCompile(`REQ-[A-Z0-9]+`)

	// descriptionPattern captures the first line of text after an identifier.
	// The separator may span line breaks, so "REQ-X\nText" describes REQ-X as "Text".
	descriptionPattern = regexp.MustCompile(`^[\s:]+([^\n]+)`)
)

// stopTerms are capitalised words never reported as terms.
var stopTerms = domain.NewStringSet("The", "A", "An", "In", "On", "At", "To", "For", "And", "Or")

// Extractor turns raw document text into structured elements.
// It holds no state and is safe to share.
type Extractor struct{}

// NewExtractor creates an element extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractVersion returns the first "version X.Y.Z" declaration in text,
// or domain.UnknownVersion when there is none.
func (e *Extractor) ExtractVersion(text string) string {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.UnknownVersion
	}
	return m[1]
}

// ExtractKeyElements returns the distinct terms, quoted phrases and
// requirement identifiers found in text.
func (e *Extractor) ExtractKeyElements(text string) domain.ElementSet {
	set := domain.NewElementSet()

	for _, term := range termPattern.FindAllString(text, -1) {
		if !stopTerms.Has(term) {
			set.Terms.Add(term)
		}
	}
	for _, m := range phrasePattern.FindAllStringSubmatch(text, -1) {
		set.Phrases.Add(m[1])
	}
	for _, id := range requirementPattern.FindAllString(text, -1) {
		set.RequirementIDs.Add(id)
	}

	return set
}

// ExtractRequirements returns every requirement mention in order of
// appearance, with the trimmed remainder of its line as description.
// Identifiers inside another mention's description are reported too.
func (e *Extractor) ExtractRequirements(text string) []domain.RequirementMention {
	locs := requirementPattern.FindAllStringIndex(text, -1)
	mentions := make([]domain.RequirementMention, 0, len(locs))
	for _, loc := range locs {
		mention := domain.RequirementMention{ID: text[loc[0]:loc[1]]}
		if m := descriptionPattern.FindStringSubmatch(text[loc[1]:]); m != nil {
			mention.Description = strings.TrimSpace(m[1])
		}
		mentions = append(mentions, mention)
	}
	return mentions
}
