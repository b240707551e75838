package score

// CategoryFromScore buckets a computed score into its display category.
// These thresholds apply to freshly computed scores; synthesized history
// uses a separate table (see usecase/history.TrendCategory) and the two
// are deliberately not unified.
func CategoryFromScore(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 670:
		return "Good"
	case score >= 580:
		return "Fair"
	default:
		return "Poor"
	}
}
