// Package schema has models and shared constants for all parts of ftracker.
package schema

import "fmt"

// InfoMessage is the computed summary of a single workout.
// It is built once per report and never modified afterwards.
type InfoMessage struct {
	TrainingType string  `json:"training_type"` // Label of the workout variant
	Duration     float64 `json:"duration"`      // Hours
	Distance     float64 `json:"distance"`      // Kilometers
	Speed        float64 `json:"speed"`         // Mean speed in km/h
	Calories     float64 `json:"calories"`      // Kilocalories burned
}

// Message renders the summary line shown to the user.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

// Package is one raw sensor reading: an activity code and its positional parameters.
type Package struct {
	Code WorkoutCode `mapstructure:"code" json:"code"`
	Data []float64   `mapstructure:"data" json:"data"`
}

// DefaultPackages returns the sample packages used when none are configured.
func DefaultPackages() []Package {
	return []Package{
		{Code: SwimmingCode, Data: []float64{720, 1, 80, 25, 40}},
		{Code: RunningCode, Data: []float64{15000, 1, 75}},
		{Code: WalkingCode, Data: []float64{9000, 1, 75, 180}},
	}
}
