package summarize

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	metaExcerptChars     = 800
	fallbackPreviewChars = 1000
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)

// metaSummary labels text recognized as app documentation or development
// notes and echoes an excerpt instead of attempting prose summarization.
func metaSummary(text string) string {
	wordCount := len(strings.Fields(text))
	excerpt := text
	suffix := ""
	if len(excerpt) > metaExcerptChars {
		excerpt = excerpt[:metaExcerptChars]
		suffix = "..."
	}
	return fmt.Sprintf(`**App Documentation/Notes Analysis**

This appears to be documentation or notes about app features and functionality (%d words).

**Content Summary:**
%s%s

**Analysis:** This text contains technical documentation, feature descriptions, or development notes rather than a traditional document for analysis.`,
		wordCount, excerpt, suffix)
}

// statisticalSummary is the last-resort template used when language
// processing fails in manual mode. It reports simple counts plus a
// content preview so the response is still useful.
func statisticalSummary(text string) string {
	wordCount := len(strings.Fields(text))
	sentenceCount := 0
	for _, part := range sentenceBoundaryRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentenceCount++
		}
	}

	preview := text
	continuation := ""
	if len(preview) > fallbackPreviewChars {
		preview = preview[:fallbackPreviewChars]
		continuation = fmt.Sprintf("...\n\n[Content continues for %d more characters]", len(text)-fallbackPreviewChars)
	}

	return fmt.Sprintf(`**Text Analysis Summary**

This text contains approximately %d words across %d sentences.

**Content Preview:**
%s%s

The text has been successfully processed and analyzed.`,
		wordCount, sentenceCount, preview, continuation)
}
