package training

import (
	"math"

	"github.com/huangsam/ftracker/schema"
)

// Sports walking coefficients.
const (
	KmhInMsec                        = 0.278
	CmInM                            = 100
	WalkingCaloriesWeightMultiplier  = 0.035
	WalkingCaloriesSpeedHeightFactor = 0.029
)

// SportsWalking is a walk measured in steps, with the walker's height.
type SportsWalking struct {
	Base
	Height float64 // Centimeters
}

var _ Training = SportsWalking{} // Compile-time check

// NewSportsWalking creates a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Base:   Base{Action: action, Duration: duration, Weight: weight},
		Height: height,
	}
}

// Label returns the training type.
func (w SportsWalking) Label() string {
	return schema.WalkingLabel
}

// SpentCalories returns (0.035 * weight + (speed_ms^2 / height_m) * 0.029 * weight) * minutes.
func (w SportsWalking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.Height == 0 {
		return 0, ErrZeroHeight
	}
	speedMs := speed * KmhInMsec
	return (WalkingCaloriesWeightMultiplier*w.Weight +
		(math.Pow(speedMs, 2)/(w.Height/CmInM))*WalkingCaloriesSpeedHeightFactor*w.Weight) *
		w.Duration * MinInH, nil
}
