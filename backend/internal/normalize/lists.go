package normalize

import (
	"math"
	"strings"
	"unicode/utf8"

	"aitools/backend/internal/constants"
)

// SplitList splits on the list delimiter the prompts ask for
func SplitList(raw string) []string {
	return SplitOn(raw, constants.ListDelimiter)
}

// SplitOn splits raw on delim, trims each segment and drops empty ones.
// The result is never nil.
func SplitOn(raw, delim string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, delim) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitHashtags splits on any run of whitespace. Counts are not enforced:
// the model may return more or fewer tags than asked for.
func SplitHashtags(raw string) []string {
	fields := strings.Fields(raw)
	if fields == nil {
		return []string{}
	}
	return fields
}

// PassThrough returns raw unchanged
func PassThrough(raw string) string {
	return raw
}

// Trimmed strips surrounding whitespace
func Trimmed(raw string) string {
	return strings.TrimSpace(raw)
}

// TextMetrics are display figures derived from a generated text
type TextMetrics struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	// CompressionRatio is the percentage of words removed relative to the original.
	// Negative when the result is longer.
	CompressionRatio int `json:"compression_ratio"`
}

// WordCount counts whitespace-separated words
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Measure computes metrics for result, using original for the compression ratio
func Measure(original, result string) TextMetrics {
	m := TextMetrics{
		Words:      WordCount(result),
		Characters: utf8.RuneCountInString(result),
	}
	if orig := WordCount(original); orig > 0 && strings.TrimSpace(result) != "" {
		m.CompressionRatio = int(math.Round(float64(orig-m.Words) / float64(orig) * 100))
	}
	return m
}
