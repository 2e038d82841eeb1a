// Package classify maps filename and body text to a document-type label
// with a rule-based confidence score. Fully deterministic: no randomness,
// no external calls, never an error.
package classify

import (
	"regexp"
	"strings"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// Mode selects which secondary fallback chain applies. The schedule/timeline
// fallback only exists on the upload path.
type Mode int

const (
	ModeUpload Mode = iota
	ModeManual
)

// confidenceFloor is the minimum cumulative score a category must reach
// before its label is trusted over the fallback chain.
const confidenceFloor = 3

const (
	filenameWeight = 3
	keywordWeight  = 1
)

// keywordPatterns holds one whole-word case-insensitive pattern per keyword,
// indexed by category position. Compiled once at package load.
var keywordPatterns = compileKeywordPatterns()

func compileKeywordPatterns() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(categories))
	for i, cat := range categories {
		patterns := make([]*regexp.Regexp, len(cat.keywords))
		for j, kw := range cat.keywords {
			patterns[j] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
		out[i] = patterns
	}
	return out
}

// DocumentType scores every category against the filename and the full body
// text and returns the winning label, or Other when nothing is confident.
// Repeated keyword occurrences each add weight; ties go to the earliest
// category definition.
func DocumentType(fileName, content string, mode Mode) domain.DocumentType {
	name := strings.ToLower(fileName)
	text := strings.ToLower(content)

	bestIdx := 0
	bestScore := 0
	for i, cat := range categories {
		score := 0
		for _, fp := range cat.filePatterns {
			if strings.Contains(name, fp) {
				score += filenameWeight
			}
		}
		for _, pattern := range keywordPatterns[i] {
			score += keywordWeight * len(pattern.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore >= confidenceFloor {
		return categories[bestIdx].docType
	}

	return fallbackType(name, text, mode)
}

// fallbackType applies the substring fallbacks in fixed priority order.
func fallbackType(name, text string, mode Mode) domain.DocumentType {
	contains := func(needle string) bool {
		return strings.Contains(name, needle) || strings.Contains(text, needle)
	}

	switch {
	case contains("change order"):
		return domain.TypeChangeOrder
	case contains("estimate") || strings.Contains(text, "quote"):
		return domain.TypeEstimate
	case mode == ModeUpload && (contains("schedule") || strings.Contains(text, "timeline")):
		return domain.TypeSchedule
	default:
		return domain.TypeOther
	}
}
