package nlptext

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// Heuristic is a regex-based language toolkit used when the full NLP
// pipeline is unavailable. Quality is deliberately modest; callers get
// plausible sentence splits and empty-ish entity sets instead of errors.
type Heuristic struct{}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)
	capitalizedRe   = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
)

func (Heuristic) Sentences(text string) []string {
	var out []string
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (Heuristic) Entities(text string) domain.EntitySet {
	return domain.EntitySet{
		Organizations: organizationMentions(text),
		Topics:        topicMentions(text),
	}
}

// orgSuffixes mark the tail word of a likely organization name.
var orgSuffixes = map[string]struct{}{
	"Inc": {}, "LLC": {}, "Corp": {}, "Ltd": {}, "Co": {},
	"Company": {}, "Corporation": {}, "Group": {}, "Agency": {},
	"University": {}, "Institute": {}, "Department": {}, "Association": {},
}

var orgRe = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&]+\s+)+(?:Inc|LLC|Corp|Ltd|Co|Company|Corporation|Group|Agency|University|Institute|Department|Association)\b\.?`)

// organizationMentions finds capitalized runs ending in a corporate
// suffix. Part-of-speech tagging does not label organizations, so this
// stays a heuristic on both toolkit paths.
func organizationMentions(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range orgRe.FindAllString(text, -1) {
		name := strings.TrimSuffix(strings.TrimSpace(match), ".")
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// topicStop excludes sentence-initial function words that are
// capitalized by position rather than significance.
var topicStop = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "These": {}, "Those": {},
	"There": {}, "Then": {}, "They": {}, "When": {}, "Where": {},
	"What": {}, "Which": {}, "With": {}, "From": {}, "For": {},
	"And": {}, "But": {}, "Not": {}, "All": {}, "Are": {}, "Was": {},
	"Has": {}, "Have": {}, "Will": {}, "You": {}, "Your": {},
	"Our": {}, "His": {}, "Her": {}, "Its": {}, "Please": {},
}

// topicMentions surfaces recurring capitalized words as rough topics.
func topicMentions(text string) []string {
	counts := make(map[string]int)
	for _, word := range capitalizedRe.FindAllString(text, -1) {
		if _, stop := topicStop[word]; stop {
			continue
		}
		counts[word]++
	}
	var topics []string
	for word, n := range counts {
		if n >= 2 {
			topics = append(topics, word)
		}
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return topics[i] < topics[j]
	})
	if len(topics) > 10 {
		topics = topics[:10]
	}
	return topics
}
