package training

import "github.com/huangsam/ftracker/schema"

// Running calorie coefficients.
const (
	RunningCaloriesMeanSpeedMultiplier = 18
	RunningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	Base
}

var _ Training = Running{} // Compile-time check

// NewRunning creates a Running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Base: Base{Action: action, Duration: duration, Weight: weight}}
}

// Label returns the training type.
func (r Running) Label() string {
	return schema.RunningLabel
}

// SpentCalories returns (18 * speed + 1.79) * weight / 1000 * minutes.
func (r Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (RunningCaloriesMeanSpeedMultiplier*speed + RunningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * r.Duration * MinInH, nil
}
