// Package wordfreq computes word frequencies over document summaries for
// the corpus word cloud.
package wordfreq

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ekomarov/docsight/internal/core/domain"
)

const minWordLength = 3

var (
	punctRe  = regexp.MustCompile(`[^\w\s]`)
	numberRe = regexp.MustCompile(`^\d+$`)
)

// Frequencies tokenizes the given texts and counts occurrences of
// meaningful words. Tokens are lowercased with punctuation stripped; stop
// words, pure numbers and tokens shorter than three characters are dropped.
func Frequencies(texts []string) map[string]int {
	counts := make(map[string]int)
	for _, text := range texts {
		cleaned := punctRe.ReplaceAllString(strings.ToLower(text), " ")
		for _, token := range strings.Fields(cleaned) {
			if len(token) < minWordLength {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if numberRe.MatchString(token) {
				continue
			}
			counts[token]++
		}
	}
	return counts
}

// Top returns the n most frequent words ordered by count descending.
// Equal counts are broken alphabetically so the result is deterministic.
func Top(counts map[string]int, n int) []domain.WordCount {
	words := make([]domain.WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, domain.WordCount{Text: w, Value: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Value != words[j].Value {
			return words[i].Value > words[j].Value
		}
		return words[i].Text < words[j].Text
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}
