package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedAnalyzer struct {
	calls int
}

func (f *fixedAnalyzer) Analyze(string) Sentiment {
	f.calls++
	return Sentiment{Polarity: 0.5, Subjectivity: 0.25}
}

func TestWordCountIsWhitespaceTokens(t *testing.T) {
	cases := map[string]int{
		"one":                       1,
		"two words":                 2,
		"  padded \t text \n here ": 3,
		"hyphen-ated, punct.uated!": 2,
		"":                          0,
	}
	for text, want := range cases {
		assert.Equal(t, want, WordCount(text), "%q", text)
	}
}

func TestFrequenciesOrdering(t *testing.T) {
	words := Words("b a b c a b d")
	assert.Equal(t, []WordFrequency{
		{Word: "b", Count: 3},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
		{Word: "d", Count: 1},
	}, Frequencies(words))
}

func TestFrequenciesAreCaseSensitive(t *testing.T) {
	freqs := Frequencies(Words("Go go GO go"))
	assert.Equal(t, WordFrequency{Word: "go", Count: 2}, freqs[0])
	assert.Len(t, freqs, 3)
}

func TestTopWordsLimit(t *testing.T) {
	words := Words("a b c d e f g h i j k l a")
	top := TopWords(words, 10)
	assert.Len(t, top, 10)
	assert.Equal(t, "a", top[0].Word)
	assert.Equal(t, 2, top[0].Count)
	assert.Len(t, TopWords(words, 50), 12)
}

func TestAnalyzeBlankRendersNothing(t *testing.T) {
	analyzer := &fixedAnalyzer{}
	_, ok := Analyze(analyzer, "   \n\t", 10)
	assert.False(t, ok)
	assert.Zero(t, analyzer.calls)
}

func TestAnalyze(t *testing.T) {
	analyzer := &fixedAnalyzer{}
	report, ok := Analyze(analyzer, "the cat saw the dog", 10)
	assert.True(t, ok)
	assert.Equal(t, 5, report.WordCount)
	assert.Equal(t, 0.5, report.Polarity)
	assert.Equal(t, WordFrequency{Word: "the", Count: 2}, report.TopWords[0])
	assert.Equal(t, 1, analyzer.calls)
}
