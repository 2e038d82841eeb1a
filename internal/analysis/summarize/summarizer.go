// Package summarize builds prose summaries from extracted document text.
//
// The engine runs a small state machine: meta-content detection first,
// then sentence extraction and filtering, then entity-assisted
// composition, with a statistical fallback when natural-language
// processing fails. File uploads and manual text input share the engine
// but apply different sentence thresholds and failure policies.
package summarize

import (
	"fmt"
	"strings"

	"github.com/ekomarov/docsight/internal/analysis/quality"
	"github.com/ekomarov/docsight/internal/core/domain"
)

// Mode selects the per-path thresholds and failure policy.
type Mode int

const (
	// ModeUpload applies strict sentence filtering and fails with a
	// structured error when the text yields too little content.
	ModeUpload Mode = iota
	// ModeManual applies relaxed filtering and degrades to fallback
	// summaries instead of failing.
	ModeManual
)

// Toolkit segments text into sentences and extracts named entities.
// Implementations may be heuristic; the engine tolerates empty results.
type Toolkit interface {
	Sentences(text string) []string
	Entities(text string) domain.EntitySet
}

const (
	metaScoreThreshold = 3
	maxSummaryChars    = 2000
	maxEntityMentions  = 3
)

// metaIndicators flag text that describes the application itself rather
// than a user document. Three or more hits switch to the documentation
// template. Known false-positive surface: legitimate documents that
// discuss software can trip it.
var metaIndicators = []string{
	"what i added", "implemented", "feature", "functionality", "app", "system",
	"component", "ui", "interface", "dashboard", "analytics", "tags", "chips",
	"processing method", "document type", "smart tagging", "enhanced", "visual design",
}

// entityFalsePositives are app wording the entity extractor tends to
// misread as proper nouns.
var entityFalsePositives = map[string]struct{}{
	"Visual Design":    {},
	"Enhanced History": {},
	"Smart Tags":       {},
}

// sentenceArtifacts disqualify a sentence in upload mode. Extraction
// output sometimes leaks structural tokens into sentence boundaries.
var sentenceArtifacts = []string{"endobj", "xref", "ReportLab", "PDF"}

type modeOptions struct {
	normalizeFirst bool
	minChars       int
	minWords       int
	requireLetter  bool
	artifactFilter bool
	minSentences   int
	failOnThin     bool
	failOnError    bool
}

func optionsFor(mode Mode) modeOptions {
	if mode == ModeUpload {
		return modeOptions{
			normalizeFirst: true,
			minChars:       20,
			minWords:       3,
			requireLetter:  true,
			artifactFilter: true,
			minSentences:   2,
			failOnThin:     true,
			failOnError:    true,
		}
	}
	return modeOptions{
		minChars:     10,
		minWords:     2,
		minSentences: 1,
	}
}

// Engine produces summaries using a pluggable language toolkit.
type Engine struct {
	toolkit Toolkit
}

func New(toolkit Toolkit) *Engine {
	return &Engine{toolkit: toolkit}
}

// Summarize builds a prose summary of text. The error is non-nil only in
// ModeUpload, where thin content yields domain.ErrContentInsufficient
// and a toolkit failure yields domain.ErrSummaryFailed. ModeManual
// always returns a summary.
func (e *Engine) Summarize(text string, mode Mode) (summary string, err error) {
	opts := optionsFor(mode)

	if metaScore(text) >= metaScoreThreshold {
		return metaSummary(text), nil
	}

	defer func() {
		if r := recover(); r != nil {
			if opts.failOnError {
				summary = ""
				err = domain.WrapError(domain.ErrSummaryFailed, "summarize", fmt.Errorf("toolkit panic: %v", r))
				return
			}
			summary = statisticalSummary(text)
			err = nil
		}
	}()

	input := text
	if opts.normalizeFirst {
		input = quality.Normalize(text)
	}

	sentences := filterSentences(e.toolkit.Sentences(input), opts)
	if len(sentences) < opts.minSentences {
		if opts.failOnThin {
			return "", domain.WrapError(domain.ErrContentInsufficient, "summarize",
				fmt.Errorf("only %d usable sentences", len(sentences)))
		}
		return fmt.Sprintf("This text input contains %d characters but appears to have no clear sentences or structured content. The text may need to be formatted differently for better analysis.", len(text)), nil
	}

	entities := e.toolkit.Entities(input)
	return compose(sentences, entities, mode), nil
}

func metaScore(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, indicator := range metaIndicators {
		if strings.Contains(lower, indicator) {
			score++
		}
	}
	return score
}

func filterSentences(sentences []string, opts modeOptions) []string {
	kept := sentences[:0:0]
	for _, sentence := range sentences {
		s := strings.TrimSpace(sentence)
		if len(s) <= opts.minChars {
			continue
		}
		if len(strings.Fields(s)) <= opts.minWords {
			continue
		}
		if opts.requireLetter && !containsLetter(s) {
			continue
		}
		if opts.artifactFilter && containsArtifact(s) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func containsArtifact(s string) bool {
	for _, marker := range sentenceArtifacts {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func compose(sentences []string, entities domain.EntitySet, mode Mode) string {
	var parts []string

	if mode == ModeUpload {
		if len(sentences) >= 3 {
			parts = append(parts, fmt.Sprintf("This document contains %d main points. %s",
				len(sentences), strings.Join(sentences[:3], " ")))
		} else {
			parts = append(parts, "This document states: "+strings.Join(sentences, " "))
		}
	} else {
		if len(sentences) >= 3 {
			parts = append(parts, "This document discusses: "+strings.Join(sentences[:2], " "))
		} else {
			parts = append(parts, "This text states: "+strings.Join(sentences, " "))
		}
	}

	people := dropFalsePositives(entities.People)
	orgs := dropFalsePositives(entities.Organizations)
	places := entities.Places

	if len(people) > 0 {
		if mode == ModeUpload {
			parts = append(parts, "Key people mentioned include "+joinCapped(people)+".")
		} else {
			parts = append(parts, "Key people mentioned: "+joinCapped(people)+".")
		}
	}
	if len(places) > 0 {
		parts = append(parts, "Locations referenced: "+joinCapped(places)+".")
	}
	if len(orgs) > 0 {
		if mode == ModeUpload {
			parts = append(parts, "Organizations involved: "+joinCapped(orgs)+".")
		} else {
			parts = append(parts, "Organizations mentioned: "+joinCapped(orgs)+".")
		}
	}

	if mode == ModeUpload {
		if len(sentences) > 3 {
			parts = append(parts, "Additional details include: "+strings.Join(slice(sentences, 3, 6), " "))
		}
	} else if len(sentences) > 2 {
		parts = append(parts, "Additional content: "+strings.Join(slice(sentences, 2, 4), " "))
	}

	summary := strings.Join(parts, " ")
	if len(summary) > maxSummaryChars {
		summary = summary[:maxSummaryChars] + "..."
	}
	return summary
}

func dropFalsePositives(items []string) []string {
	kept := items[:0:0]
	for _, item := range items {
		if _, bad := entityFalsePositives[item]; bad {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func joinCapped(items []string) string {
	if len(items) > maxEntityMentions {
		items = items[:maxEntityMentions]
	}
	return strings.Join(items, ", ")
}

func slice(s []string, from, to int) []string {
	if from > len(s) {
		from = len(s)
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
