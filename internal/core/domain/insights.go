package domain

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// Sentiment is a lexicon-based polarity result for one text. Confidence is
// the density of sentiment-bearing words, not a statistical estimator.
type Sentiment struct {
	Score      float64        `json:"score"`
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
}

type SentimentDistribution struct {
	Positive int `json:"Positive"`
	Neutral  int `json:"Neutral"`
	Negative int `json:"Negative"`
}

type DocumentSentiment struct {
	DocumentID string         `json:"documentId"`
	FileName   string         `json:"fileName"`
	Sentiment  SentimentLabel `json:"sentiment"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
}

type SentimentOverview struct {
	Overall      SentimentLabel        `json:"overall"`
	Distribution SentimentDistribution `json:"distribution"`
	Details      []DocumentSentiment   `json:"details,omitempty"`
}

type WordCount struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// EntitySet is the corpus-wide named-entity roll-up.
type EntitySet struct {
	People        []string `json:"people"`
	Places        []string `json:"places"`
	Organizations []string `json:"organizations"`
	Topics        []string `json:"topics"`
}

type TypeCount struct {
	Type  DocumentType `json:"type"`
	Count int          `json:"count"`
}

type InsightMetrics struct {
	TotalDocuments int         `json:"totalDocuments"`
	AvgTextLength  int         `json:"avgTextLength"`
	DocumentTypes  []TypeCount `json:"documentTypes"`
}

// InsightsSnapshot is the corpus-wide view served by the insights read
// operation and cached between recomputations.
type InsightsSnapshot struct {
	WordCloud []WordCount       `json:"wordCloud"`
	Sentiment SentimentOverview `json:"sentiment"`
	Entities  EntitySet         `json:"entities"`
	Metrics   InsightMetrics    `json:"metrics"`
	Warning   string            `json:"warning,omitempty"`
}

// EmptyInsights is the well-formed degraded snapshot for read failures.
func EmptyInsights(warning string) InsightsSnapshot {
	return InsightsSnapshot{
		WordCloud: []WordCount{},
		Sentiment: SentimentOverview{
			Overall: SentimentNeutral,
			Details: []DocumentSentiment{},
		},
		Entities: EntitySet{
			People:        []string{},
			Places:        []string{},
			Organizations: []string{},
			Topics:        []string{},
		},
		Metrics: InsightMetrics{DocumentTypes: []TypeCount{}},
		Warning: warning,
	}
}
