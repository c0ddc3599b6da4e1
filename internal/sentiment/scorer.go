// Package sentiment scores journal text with the VADER lexicon.
package sentiment

import (
	"github.com/jonreiter/govader"
)

type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Summary is the human readable form returned to clients.
func (l Label) Summary() string {
	switch l {
	case Positive:
		return "Positive 😊"
	case Negative:
		return "Negative 😞"
	default:
		return "Neutral"
	}
}

type Result struct {
	Compound float64
	Label    Label
}

// Classify maps a compound score onto a label using the fixed thresholds.
func Classify(score float64) Label {
	switch {
	case score >= PositiveThreshold:
		return Positive
	case score <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Scorer is safe for concurrent use; the lexicon is read-only after construction.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *Scorer) Score(text string) Result {
	compound := clamp(s.analyzer.PolarityScores(text).Compound)
	return Result{Compound: compound, Label: Classify(compound)}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
