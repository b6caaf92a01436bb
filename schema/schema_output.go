package schema

// Report pairs a computed summary with the package that produced it.
type Report struct {
	Seq  int         `json:"seq"`
	Code WorkoutCode `json:"code"`
	InfoMessage
}

// EnrichedReport adds presentation data to a Report.
type EnrichedReport struct {
	Effort  EffortLabel `json:"effort"`
	Message string      `json:"message"`
	Report
}

// GetEffortLabel returns the effort bucket for the calories burned in a workout.
func GetEffortLabel(calories float64) EffortLabel {
	switch {
	case calories >= 800:
		return IntenseEffort
	case calories >= 400:
		return VigorousEffort
	case calories >= 150:
		return ModerateEffort
	default:
		return LightEffort
	}
}

// EnrichReports adds effort labels and rendered messages to reports.
func EnrichReports(reports []Report) []EnrichedReport {
	enriched := make([]EnrichedReport, len(reports))
	for i, r := range reports {
		enriched[i] = EnrichedReport{
			Effort:  GetEffortLabel(r.Calories),
			Message: r.Message(),
			Report:  r,
		}
	}
	return enriched
}
