// Package format turns site data into display strings.
package format

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordsPerMinute is the reading rate ReadingTime assumes.
const WordsPerMinute = 200

const ellipsis = "…"

// Date renders t as e.g. "March 15, 2024" using t's own calendar fields.
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ReadingTime estimates minutes to read text. It is never less than 1.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return max(1, minutes)
}

// Truncate cuts text to at most n characters and appends an ellipsis when it had to cut.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	n = max(n, 0)
	return strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + ellipsis
}

var titleCaser = cases.Title(language.English)

// Heading title-cases s, e.g. "machine learning" -> "Machine Learning".
func Heading(s string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(s, "-", " "), "_", " "))
}
