package training

import "github.com/huangsam/ftracker/schema"

// Swimming coefficients.
const (
	SwimmingLenStep                  = 1.38 // Meters covered by one stroke
	SwimmingCaloriesMeanSpeedShift   = 1.1
	SwimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim measured in strokes and laps.
type Swimming struct {
	Base
	LengthPool float64 // Meters
	CountPool  int     // Laps
}

var _ Training = Swimming{} // Compile-time check

// NewSwimming creates a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Base:       Base{Action: action, Duration: duration, Weight: weight, lenStep: SwimmingLenStep},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Label returns the training type.
func (s Swimming) Label() string {
	return schema.SwimmingLabel
}

// MeanSpeed returns pool length * laps / 1000 / duration. Strokes are ignored.
func (s Swimming) MeanSpeed() (float64, error) {
	if s.Duration == 0 {
		return 0, ErrZeroDuration
	}
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration, nil
}

// SpentCalories returns (speed + 1.1) * 2 * weight * duration.
func (s Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + SwimmingCaloriesMeanSpeedShift) * SwimmingCaloriesWeightMultiplier *
		s.Weight * s.Duration, nil
}
