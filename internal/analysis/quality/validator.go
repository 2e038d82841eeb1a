// Package quality gates extracted text before the rest of the pipeline runs.
// Extraction output is frequently PDF structure noise rather than prose; the
// validator rejects such text instead of letting it poison summaries.
package quality

import (
	"regexp"
	"strings"
	"unicode"
)

type Reason string

const (
	ReasonInsufficient Reason = "insufficient"
	ReasonCorrupted    Reason = "corrupted"
	ReasonRepetitive   Reason = "repetitive"
)

type Result struct {
	Valid  bool
	Reason Reason
	Detail string
}

const (
	minTrimmedChars    = 20
	minMeaningfulWords = 10
	minUniquenessRatio = 0.3
)

// artifactMarkers are structural tokens from the PDF format or common
// generator signatures; their presence marks a token as non-content.
var artifactMarkers = []string{"endobj", "xref", "ReportLab"}

var (
	escapeSeqRe    = regexp.MustCompile(`\\[a-zA-Z0-9]+`)
	parentheticRe  = regexp.MustCompile(`\([^)]*\)`)
	bracketRe      = regexp.MustCompile(`[<>{}\[\]]`)
	longNumberRe   = regexp.MustCompile(`\d{10,}`)
	specialCharsRe = regexp.MustCompile(`[^\w\s.,!?;:-]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Validate decides whether extracted text is usable for analysis. Pure: same
// input, same verdict.
func Validate(text string) Result {
	if len(strings.TrimSpace(text)) < minTrimmedChars {
		return Result{Reason: ReasonInsufficient, Detail: "Insufficient text extracted"}
	}

	words := MeaningfulWords(Normalize(text))
	if len(words) < minMeaningfulWords {
		return Result{Reason: ReasonCorrupted, Detail: "Extracted text contains mostly metadata or corrupted content"}
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}
	if float64(len(unique)) < float64(len(words))*minUniquenessRatio {
		return Result{Reason: ReasonRepetitive, Detail: "Extracted text appears to be repetitive or corrupted"}
	}

	return Result{Valid: true}
}

// Normalize strips extraction noise: escape sequences, parenthetical runs,
// brackets and braces, long digit runs and special characters, then
// collapses whitespace.
func Normalize(text string) string {
	out := escapeSeqRe.ReplaceAllString(text, " ")
	out = parentheticRe.ReplaceAllString(out, " ")
	out = bracketRe.ReplaceAllString(out, " ")
	out = longNumberRe.ReplaceAllString(out, " ")
	out = specialCharsRe.ReplaceAllString(out, " ")
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// MeaningfulWords keeps tokens longer than two characters that contain at
// least one letter and are not extraction artifacts.
func MeaningfulWords(cleaned string) []string {
	fields := strings.Fields(cleaned)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 || !containsLetter(f) || isArtifact(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isArtifact(token string) bool {
	for _, marker := range artifactMarkers {
		if strings.Contains(token, marker) {
			return true
		}
	}
	return false
}
