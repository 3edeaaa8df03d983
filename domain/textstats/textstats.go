// Package textstats computes the text analysis page metrics.
package textstats

import (
	"sort"
	"strings"
)

// Sentiment holds the polarity/subjectivity pair of a text.
// Polarity is in [-1, 1], subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// SentimentAnalyzer scores free text
type SentimentAnalyzer interface {
	Analyze(text string) Sentiment
}

// WordFrequency is one bar of the word statistics chart
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report is everything the text page renders
type Report struct {
	Sentiment
	WordCount int             `json:"word_count"`
	TopWords  []WordFrequency `json:"top_words"`
}

// IsBlank reports whether the input carries no text to analyze
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Words splits on runs of whitespace
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount is the number of whitespace-delimited tokens
func WordCount(text string) int {
	return len(Words(text))
}

// Frequencies counts every token, most frequent first. Equal counts keep
// the order in which the words first appeared.
func Frequencies(words []string) []WordFrequency {
	index := make(map[string]int, len(words))
	var freqs []WordFrequency
	for _, w := range words {
		if i, ok := index[w]; ok {
			freqs[i].Count++
			continue
		}
		index[w] = len(freqs)
		freqs = append(freqs, WordFrequency{Word: w, Count: 1})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}

// TopWords returns at most n entries of Frequencies
func TopWords(words []string, n int) []WordFrequency {
	freqs := Frequencies(words)
	if n >= 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	return freqs
}

// Analyze builds the report for text. ok is false for blank input, in
// which case nothing should be rendered.
func Analyze(analyzer SentimentAnalyzer, text string, topN int) (report Report, ok bool) {
	if IsBlank(text) {
		return Report{}, false
	}
	words := Words(text)
	return Report{
		Sentiment: analyzer.Analyze(text),
		WordCount: len(words),
		TopWords:  TopWords(words, topN),
	}, true
}
