package sentiment

import (
	"strings"
	"testing"

	"github.com/ekomarov/docsight/internal/core/domain"
)

func TestNoLexiconHitsIsNeutralZero(t *testing.T) {
	s := Analyze("the mitochondria is the powerhouse of the cell")
	if s.Score != 0 || s.Confidence != 0 || s.Label != domain.SentimentNeutral {
		t.Fatalf("expected neutral zero, got %+v", s)
	}
}

func TestEmptyTextIsNeutralZero(t *testing.T) {
	s := Analyze("")
	if s.Score != 0 || s.Confidence != 0 || s.Label != domain.SentimentNeutral {
		t.Fatalf("expected neutral zero, got %+v", s)
	}
}

func TestPositiveText(t *testing.T) {
	s := Analyze("The project was excellent and the outcome was wonderful, a great success overall")
	if s.Label != domain.SentimentPositive {
		t.Fatalf("expected positive, got %+v", s)
	}
	if s.Score <= 0 || s.Score > 1 {
		t.Fatalf("score out of range: %f", s.Score)
	}
}

func TestNegativeText(t *testing.T) {
	s := Analyze("A terrible failure: the rollout was awful and every mistake made things worse")
	if s.Label != domain.SentimentNegative {
		t.Fatalf("expected negative, got %+v", s)
	}
	if s.Score >= 0 || s.Score < -1 {
		t.Fatalf("score out of range: %f", s.Score)
	}
}

func TestPunctuationIsStrippedPerToken(t *testing.T) {
	if s := Analyze("excellent!"); s.Label != domain.SentimentPositive {
		t.Fatalf("trailing punctuation must not hide a lexicon hit: %+v", s)
	}
}

func TestDualListedWordsNetNeutral(t *testing.T) {
	// "simple", "clear" and "execute" carry both polarities: each occurrence
	// raises both tallies, so a text made of them scores exactly zero.
	s := Analyze(strings.Repeat("simple clear execute ", 4))
	if s.Label != domain.SentimentNeutral || s.Score != 0 {
		t.Fatalf("dual-listed words must net neutral, got %+v", s)
	}
	if s.Confidence == 0 {
		t.Fatalf("lexicon hits must still register in confidence: %+v", s)
	}
}

func TestMutedDescriptorsReadNegative(t *testing.T) {
	// Words like "standard" and "routine" sit on the negative list only, so
	// flat descriptive text leans negative rather than neutral.
	s := Analyze("standard routine normal plain wording throughout")
	if s.Label != domain.SentimentNegative {
		t.Fatalf("expected negative, got %+v", s)
	}
}

func TestCommerceVerbsReadPositive(t *testing.T) {
	s := Analyze("advertising marketing selling promoting")
	if s.Label != domain.SentimentPositive {
		t.Fatalf("expected positive, got %+v", s)
	}
}

func TestBoundsAlwaysHold(t *testing.T) {
	inputs := []string{
		strings.Repeat("excellent ", 200),
		strings.Repeat("terrible ", 200),
		"excellent terrible good bad",
		"one word",
		"",
	}
	for _, in := range inputs {
		s := Analyze(in)
		if s.Score < -1 || s.Score > 1 {
			t.Fatalf("score out of [-1,1] for %q: %f", in[:min(20, len(in))], s.Score)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			t.Fatalf("confidence out of [0,1]: %f", s.Confidence)
		}
	}
}

func TestConfidenceCapsAtOne(t *testing.T) {
	// Every token is a sentiment word: density far above the cap.
	s := Analyze(strings.Repeat("excellent ", 50))
	if s.Confidence != 1 {
		t.Fatalf("expected capped confidence 1, got %f", s.Confidence)
	}
}

func TestIdempotent(t *testing.T) {
	text := "a great quarter despite a difficult market and one serious setback"
	first := Analyze(text)
	for i := 0; i < 5; i++ {
		if got := Analyze(text); got != first {
			t.Fatalf("analysis not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestAggregateCorpusDistribution(t *testing.T) {
	records := []domain.Record{
		{ID: "1", FileName: "a", Summary: "excellent wonderful great"},
		{ID: "2", FileName: "b", Summary: "excellent superb outcome"},
		{ID: "3", FileName: "c", Summary: "terrible awful failure"},
		{ID: "4", FileName: "d", Summary: "quarterly ledger figures here"},
	}
	ov := AggregateCorpus(records)
	if ov.Distribution.Positive != 50 || ov.Distribution.Negative != 25 || ov.Distribution.Neutral != 25 {
		t.Fatalf("unexpected distribution: %+v", ov.Distribution)
	}
	if ov.Overall != domain.SentimentPositive {
		t.Fatalf("expected overall positive, got %s", ov.Overall)
	}
	if len(ov.Details) != 4 {
		t.Fatalf("expected 4 details, got %d", len(ov.Details))
	}
}

func TestAggregateCorpusTieDefaultsNeutral(t *testing.T) {
	// Positive ties with Neutral: positive does not dominate, negative does
	// not exceed neutral, so the overall label stays Neutral.
	records := []domain.Record{
		{ID: "1", Summary: "excellent great"},
		{ID: "2", Summary: "quarterly ledger figures"},
	}
	ov := AggregateCorpus(records)
	if ov.Overall != domain.SentimentNeutral {
		t.Fatalf("tie must default to neutral, got %s", ov.Overall)
	}
}

func TestAggregateCorpusEmpty(t *testing.T) {
	ov := AggregateCorpus(nil)
	if ov.Overall != domain.SentimentNeutral {
		t.Fatalf("empty corpus must be neutral, got %s", ov.Overall)
	}
	if len(ov.Details) != 0 {
		t.Fatalf("expected no details")
	}
}
