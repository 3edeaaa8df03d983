// Package sentiment scores text polarity and subjectivity from a word
// lexicon, with intensifiers ("very good") and negation ("not good").
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"showcase/domain/textstats"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Analyzer is a lexicon-based textstats.SentimentAnalyzer. It is safe for
// concurrent use.
type Analyzer struct {
	lang language.Tag
}

// NewAnalyzer creates an analyzer using the built-in English lexicon
func NewAnalyzer() *Analyzer {
	return &Analyzer{lang: language.English}
}

var _ textstats.SentimentAnalyzer = (*Analyzer)(nil)

// Analyze averages the scores of every lexicon word in text. Text with no
// scored words is neutral and objective.
func (a *Analyzer) Analyze(text string) textstats.Sentiment {
	assessments := a.Assess(text)
	if len(assessments) == 0 {
		return textstats.Sentiment{}
	}

	var polarity, subjectivity float64
	for _, as := range assessments {
		polarity += as.Polarity
		subjectivity += as.Subjectivity
	}
	n := float64(len(assessments))
	return textstats.Sentiment{
		Polarity:     polarity / n,
		Subjectivity: subjectivity / n,
	}
}

// Assessment is the score given to one lexicon word in context
type Assessment struct {
	Words []string
	textstats.Sentiment
}

// Assess returns one assessment per scored word, in text order
func (a *Analyzer) Assess(text string) []Assessment {
	var (
		out       []Assessment
		context   []string
		intensity = 1.0
		negated   bool
	)

	reset := func() {
		context = context[:0]
		intensity = 1.0
	}

	for _, tok := range a.tokenize(text) {
		switch {
		case tok == "." || tok == "!" || tok == "?" || tok == ";":
			reset()
			negated = false
		case tok == "," || tok == ":":
			reset()
		case negations[tok]:
			negated = true
			context = append(context, tok)
		case intensifiers[tok] != 0:
			intensity *= intensifiers[tok]
			context = append(context, tok)
		default:
			e, ok := lexicon[tok]
			if !ok {
				// modifiers only bind to the word right after them
				intensity = 1.0
				continue
			}
			p := clamp(e.Polarity*intensity, -1, 1)
			s := clamp(e.Subjectivity*intensity, 0, 1)
			if negated {
				p *= negationFactor
			}
			words := append(append([]string(nil), context...), tok)
			out = append(out, Assessment{
				Words:     words,
				Sentiment: textstats.Sentiment{Polarity: p, Subjectivity: s},
			})
			reset()
			negated = false
		}
	}
	return out
}

// tokenize lower-cases text and splits it into words and punctuation
// marks. Contractions ending in n't yield the word stem plus "n't".
func (a *Analyzer) tokenize(text string) []string {
	// a Caser keeps state between calls, so each call gets its own
	text = cases.Lower(a.lang).String(strings.ReplaceAll(text, "’", "'"))

	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.Trim(word.String(), "'")
		word.Reset()
		if w == "" {
			return
		}
		if stem, ok := strings.CutSuffix(w, "n't"); ok && len(stem) > 0 {
			tokens = append(tokens, stem, "n't")
			return
		}
		tokens = append(tokens, w)
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			word.WriteRune(r)
		case strings.ContainsRune(".!?;,:", r):
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
