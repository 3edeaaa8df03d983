package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeNeutralText(t *testing.T) {
	a := NewAnalyzer()
	s := a.Analyze("The meeting is on Tuesday at the office")
	assert.Zero(t, s.Polarity)
	assert.Zero(t, s.Subjectivity)
	assert.Zero(t, a.Analyze("").Polarity)
}

func TestAnalyzePolarityDirection(t *testing.T) {
	a := NewAnalyzer()
	assert.Greater(t, a.Analyze("What a wonderful, beautiful day").Polarity, 0.5)
	assert.Less(t, a.Analyze("This is a terrible and boring movie").Polarity, -0.5)
}

func TestAnalyzeAveragesAssessments(t *testing.T) {
	a := NewAnalyzer()
	s := a.Analyze("good bad")
	assert.InDelta(t, (0.7-0.7)/2, s.Polarity, 1e-9)
	assert.InDelta(t, (0.6+0.67)/2, s.Subjectivity, 1e-9)
}

func TestIntensifierScales(t *testing.T) {
	a := NewAnalyzer()
	plain := a.Analyze("good").Polarity
	very := a.Analyze("very good").Polarity
	assert.InDelta(t, 0.7, plain, 1e-9)
	assert.InDelta(t, 0.91, very, 1e-9)

	// clamped at the ends of the range
	assert.InDelta(t, 1.0, a.Analyze("extremely excellent").Polarity, 1e-9)

	// an intensifier must directly precede the word
	assert.InDelta(t, 0.7, a.Analyze("very the good").Polarity, 1e-9)
}

func TestNegationFlipsAndDampens(t *testing.T) {
	a := NewAnalyzer()
	assert.InDelta(t, -0.35, a.Analyze("not good").Polarity, 1e-9)
	assert.InDelta(t, -0.35, a.Analyze("This isn't good").Polarity, 1e-9)
	assert.InDelta(t, -0.35, a.Analyze("It was not a good idea").Polarity, 1e-9)
	assert.InDelta(t, 0.35, a.Analyze("not bad").Polarity, 1e-9)

	// negation ends at the sentence boundary
	assert.InDelta(t, 0.7, a.Analyze("Not today. Good").Polarity, 1e-9)
}

func TestRangeInvariants(t *testing.T) {
	a := NewAnalyzer()
	texts := []string{
		"absolutely extremely perfect perfect perfect!!!",
		"never ever not terrible awful worst",
		"I LOVE it but I HATE the price",
		"so so so very very good",
	}
	for _, text := range texts {
		s := a.Analyze(text)
		assert.GreaterOrEqual(t, s.Polarity, -1.0, text)
		assert.LessOrEqual(t, s.Polarity, 1.0, text)
		assert.GreaterOrEqual(t, s.Subjectivity, 0.0, text)
		assert.LessOrEqual(t, s.Subjectivity, 1.0, text)
	}
}

func TestAssessRecordsContext(t *testing.T) {
	a := NewAnalyzer()
	as := a.Assess("The food was not very good, but the staff were friendly.")
	require.Len(t, as, 2)
	assert.Equal(t, []string{"not", "very", "good"}, as[0].Words)
	assert.Equal(t, []string{"friendly"}, as[1].Words)
	assert.Less(t, as[0].Polarity, 0.0)
}

func TestTokenize(t *testing.T) {
	a := NewAnalyzer()
	assert.Equal(t,
		[]string{"i", "do", "n't", "like", "it", ",", "really", "!"},
		a.tokenize("I don’t like it, REALLY!"))
}
