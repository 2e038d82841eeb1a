package wordfreq

// stopWords are excluded from word-cloud frequency counts. The set covers
// articles, prepositions, pronouns and common verbs that carry no topical
// signal in business documents.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "this", "that", "these", "those", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "do",
		"does", "did", "will", "would", "could", "should", "may", "might",
		"must", "can", "shall", "it", "he", "she", "they", "we", "you", "i",
		"me", "him", "her", "them", "us", "my", "your", "his", "its", "our",
		"their", "from", "up", "about", "into", "over", "after", "all", "any",
		"both", "each", "few", "more", "most", "other", "some", "such", "no",
		"nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"just", "now", "here", "there", "when", "where", "why", "how", "what",
		"which", "who", "whom", "whose", "if", "because", "as", "until",
		"while", "during", "before", "above", "below", "between", "through",
		"down", "out", "off", "under", "again", "further", "then", "once",
	} {
		stopWords[w] = struct{}{}
	}
}
