package history

import (
	"math"
	"math/rand"
	"time"

	domain "creditwise-backend/internal/domain/history"
)

// Synthesize fabricates a plausible score series ending at now: the oldest
// month gets the smallest base offset so the series trends upward, with
// jitter in [0,30).
func Synthesize(months int, now time.Time) []domain.Entry {
	out := make([]domain.Entry, 0, months)
	for i := months - 1; i >= 0; i-- {
		when := now.AddDate(0, -i, 0)
		base := float64(620 + 15*(months-1-i))
		score := int(math.Round(base + rand.Float64()*30))
		if score < 300 {
			score = 300
		}
		if score > 850 {
			score = 850
		}
		out = append(out, domain.Entry{
			Year:         when.Year(),
			Month:        int(when.Month()),
			Score:        score,
			Category:     TrendCategory(score),
			CalculatedAt: when,
		})
	}
	return out
}

// TrendCategory buckets synthesized history scores. Deliberately a separate
// table from score.CategoryFromScore: recorded and synthesized history have
// always used different buckets, and unifying them is a product decision,
// not a refactor.
func TrendCategory(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 700:
		return "Good"
	case score >= 650:
		return "Fair"
	case score >= 550:
		return "Poor"
	default:
		return "Very Poor"
	}
}
