// Package training derives distance, mean speed and calories from raw workout readings.
package training

import (
	"errors"
	"fmt"

	"github.com/huangsam/ftracker/schema"
)

// Shared unit conversions and the default step length.
const (
	LenStep = 0.65 // Meters covered by one step
	MInKm   = 1000 // Meters in a kilometer
	MinInH  = 60   // Minutes in an hour
)

// Errors surfaced by the calculator and the package reader.
var (
	ErrInvalidCode   = errors.New("invalid workout code")
	ErrArityMismatch = errors.New("wrong number of package parameters")
	ErrZeroDuration  = errors.New("workout duration is zero")
	ErrZeroHeight    = errors.New("walker height is zero")
	ErrNonIntegral   = errors.New("reading must be a whole number")
)

// Training is a workout that can report its derived metrics.
// The set of implementations is closed: Running, SportsWalking and Swimming.
// Every implementation supplies its own SpentCalories; Base has none.
type Training interface {
	// Label is the training type rendered in the summary.
	Label() string

	// Distance returns the covered distance in kilometers.
	Distance() float64

	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() (float64, error)

	// SpentCalories returns the kilocalories burned.
	SpentCalories() (float64, error)

	base() Base
}

// Base holds the readings shared by every workout and the default formulas.
type Base struct {
	Action   int     // Steps or strokes
	Duration float64 // Hours
	Weight   float64 // Kilograms

	lenStep float64 // Zero means LenStep
}

// Distance returns Action * step length / MInKm.
func (b Base) Distance() float64 {
	return float64(b.Action) * b.stepLength() / MInKm
}

// MeanSpeed returns Distance / Duration.
func (b Base) MeanSpeed() (float64, error) {
	if b.Duration == 0 {
		return 0, ErrZeroDuration
	}
	return b.Distance() / b.Duration, nil
}

func (b Base) stepLength() float64 {
	if b.lenStep == 0 {
		return LenStep
	}
	return b.lenStep
}

func (b Base) base() Base {
	return b
}

// Summary computes the InfoMessage for a workout.
// It has no side effects and returns the same result on every call.
func Summary(t Training) (schema.InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return schema.InfoMessage{}, fmt.Errorf("%s mean speed: %w", t.Label(), err)
	}
	calories, err := t.SpentCalories()
	if err != nil {
		return schema.InfoMessage{}, fmt.Errorf("%s spent calories: %w", t.Label(), err)
	}
	return schema.InfoMessage{
		TrainingType: t.Label(),
		Duration:     t.base().Duration,
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}
