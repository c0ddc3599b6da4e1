package usecases

import (
	"context"
	"math"
	"sort"

	"journal_backend/internal/models"
	"journal_backend/internal/sentiment"
	"journal_backend/internal/storage"
)

type InsightsBuilder struct {
	store storage.EntryStore
}

func NewInsightsBuilder(store storage.EntryStore) *InsightsBuilder {
	return &InsightsBuilder{store: store}
}

func (b *InsightsBuilder) Build(ctx context.Context, userID string) (models.Insights, error) {
	entries, err := b.store.List(ctx, userID)
	if err != nil {
		return models.Insights{}, err
	}
	return Summarize(userID, entries), nil
}

// Summarize counts labels and averages scores overall and per UTC day.
// The trend is ordered oldest day first.
func Summarize(userID string, entries []models.JournalEntry) models.Insights {
	out := models.Insights{
		UserID: userID,
		Total:  len(entries),
		Trend:  []models.MoodDay{},
	}
	if len(entries) == 0 {
		return out
	}

	type bucket struct {
		sum   float64
		count int
	}
	days := map[string]*bucket{}
	var total float64

	for _, e := range entries {
		total += e.Sentiment

		switch sentiment.Classify(e.Sentiment) {
		case sentiment.Positive:
			out.Positive++
		case sentiment.Negative:
			out.Negative++
		default:
			out.Neutral++
		}

		day := e.CreatedAt.UTC().Format("2006-01-02")
		b, ok := days[day]
		if !ok {
			b = &bucket{}
			days[day] = b
		}
		b.sum += e.Sentiment
		b.count++
	}

	out.Average = round4(total / float64(len(entries)))

	for day, b := range days {
		out.Trend = append(out.Trend, models.MoodDay{
			Day:     day,
			Average: round4(b.sum / float64(b.count)),
			Count:   b.count,
		})
	}
	sort.Slice(out.Trend, func(i, j int) bool {
		return out.Trend[i].Day < out.Trend[j].Day
	})

	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
