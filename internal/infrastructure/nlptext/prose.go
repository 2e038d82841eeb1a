// Package nlptext provides the language toolkit used by the summarizer:
// sentence segmentation and named-entity extraction backed by prose,
// with a regex heuristic fallback when the pipeline fails.
package nlptext

import (
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/ekomarov/docsight/internal/core/domain"
)

const minEntityLength = 3

// Toolkit runs prose for segmentation and entity extraction. Any prose
// failure degrades to the Heuristic implementation so summarization
// never fails on toolkit errors alone.
type Toolkit struct {
	fallback Heuristic
	log      *slog.Logger
}

func New(log *slog.Logger) *Toolkit {
	return &Toolkit{log: log}
}

func (t *Toolkit) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		t.log.Warn("sentence segmentation failed, using heuristic split", "error", err)
		return t.fallback.Sentences(text)
	}
	sentences := make([]string, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		sentences = append(sentences, s.Text)
	}
	return sentences
}

// Entities extracts people and places from the tagged document. The
// model labels only PERSON and GPE, so organizations and topics come
// from the shared heuristics.
func (t *Toolkit) Entities(text string) domain.EntitySet {
	set := domain.EntitySet{
		Organizations: organizationMentions(text),
		Topics:        topicMentions(text),
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		t.log.Warn("entity extraction failed", "error", err)
		return set
	}

	peopleSeen := make(map[string]struct{})
	placesSeen := make(map[string]struct{})
	for _, ent := range doc.Entities() {
		name := strings.TrimSpace(ent.Text)
		if len(name) < minEntityLength {
			continue
		}
		switch ent.Label {
		case "PERSON":
			if _, dup := peopleSeen[name]; !dup {
				peopleSeen[name] = struct{}{}
				set.People = append(set.People, name)
			}
		case "GPE":
			if _, dup := placesSeen[name]; !dup {
				placesSeen[name] = struct{}{}
				set.Places = append(set.Places, name)
			}
		}
	}
	return set
}
