// Package pdflocal extracts PDF text without calling external services.
// It tries the structured PDF reader first and falls back to scanning
// the raw byte stream for literal text markers, which rescues some
// files the reader cannot parse.
package pdflocal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ekomarov/docsight/internal/core/domain"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

var (
	literalStringRe = regexp.MustCompile(`\(([^)]+)\)`)
	escapeRe        = regexp.MustCompile(`\\[rn]`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

func (e *Extractor) Extract(ctx context.Context, content []byte, fileName string) (domain.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Extraction{}, err
	}
	if len(content) == 0 {
		return domain.Extraction{}, fmt.Errorf("empty file")
	}

	if text, err := readPlainText(content); err == nil && strings.TrimSpace(text) != "" {
		return domain.Extraction{Text: text, Method: domain.MethodFallbackExtraction}, nil
	}

	text := scanLiteralStrings(content)
	if len(text) <= 50 {
		return domain.Extraction{}, fmt.Errorf("no readable text found in file")
	}
	return domain.Extraction{Text: text, Method: domain.MethodFallbackExtraction}, nil
}

func readPlainText(content []byte) (text string, err error) {
	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// scanLiteralStrings pulls parenthesized literal strings out of the raw
// PDF byte stream and joins the ones that look like prose.
func scanLiteralStrings(content []byte) string {
	var parts []string
	for _, match := range literalStringRe.FindAllSubmatch(content, -1) {
		candidate := string(match[1])
		if len(candidate) > 2 && containsLetter(candidate) {
			parts = append(parts, candidate)
		}
	}
	joined := strings.Join(parts, " ")
	joined = escapeRe.ReplaceAllString(joined, " ")
	joined = spacesRe.ReplaceAllString(joined, " ")
	return strings.TrimSpace(joined)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
