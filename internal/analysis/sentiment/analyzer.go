// Package sentiment scores text polarity against fixed word lists and rolls
// per-document results up into a corpus distribution. Pure and deterministic
// for any input.
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/ekomarov/docsight/internal/core/domain"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
	densityFactor     = 10
)

// Analyze tokenizes on whitespace, strips non-word runes per token and
// tallies lexicon membership. Zero hits yield the neutral zero value rather
// than a division by zero.
func Analyze(text string) domain.Sentiment {
	tokens := strings.Fields(strings.ToLower(text))

	var positive, negative int
	for _, token := range tokens {
		word := stripNonWord(token)
		if word == "" {
			continue
		}
		if _, ok := positiveWords[word]; ok {
			positive++
		}
		if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	hits := positive + negative
	if hits == 0 {
		return domain.Sentiment{Label: domain.SentimentNeutral}
	}

	score := float64(positive-negative) / float64(hits)
	confidence := math.Min(float64(hits)/float64(len(tokens))*densityFactor, 1)

	label := domain.SentimentNeutral
	switch {
	case score > positiveThreshold:
		label = domain.SentimentPositive
	case score < negativeThreshold:
		label = domain.SentimentNegative
	}

	return domain.Sentiment{Score: score, Label: label, Confidence: confidence}
}

// AggregateCorpus analyzes every record's summary and produces the corpus
// overview: whole-percent distribution, per-document details (rounded to two
// decimals) and an overall label with ties defaulting toward Neutral.
func AggregateCorpus(records []domain.Record) domain.SentimentOverview {
	overview := domain.SentimentOverview{
		Overall: domain.SentimentNeutral,
		Details: make([]domain.DocumentSentiment, 0, len(records)),
	}
	if len(records) == 0 {
		return overview
	}

	var positive, neutral, negative int
	for _, rec := range records {
		s := Analyze(rec.Summary)
		switch s.Label {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		default:
			neutral++
		}
		overview.Details = append(overview.Details, domain.DocumentSentiment{
			DocumentID: rec.ID,
			FileName:   rec.FileName,
			Sentiment:  s.Label,
			Score:      round2(s.Score),
			Confidence: round2(s.Confidence),
		})
	}

	total := len(records)
	overview.Distribution = domain.SentimentDistribution{
		Positive: roundPercent(positive, total),
		Neutral:  roundPercent(neutral, total),
		Negative: roundPercent(negative, total),
	}

	switch {
	case positive > negative && positive > neutral:
		overview.Overall = domain.SentimentPositive
	case positive <= negative && negative > neutral:
		overview.Overall = domain.SentimentNegative
	default:
		overview.Overall = domain.SentimentNeutral
	}

	return overview
}

func stripNonWord(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
