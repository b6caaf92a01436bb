package training

import (
	"math"
	"testing"

	"github.com/huangsam/ftracker/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDistance(t *testing.T) {
	tests := []struct {
		name     string
		base     Base
		expected float64
	}{
		{"typical walk", Base{Action: 9000, Duration: 1, Weight: 75}, 5.85},
		{"short session", Base{Action: 420, Duration: 4, Weight: 20}, 0.273},
		{"long slow session", Base{Action: 1206, Duration: 12, Weight: 6}, 0.7839},
		{"no steps", Base{Action: 0, Duration: 1, Weight: 70}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.base.Distance(), 1e-9)
		})
	}
}

func TestBaseMeanSpeed(t *testing.T) {
	tests := []struct {
		name     string
		base     Base
		expected float64
	}{
		{"typical walk", Base{Action: 9000, Duration: 1, Weight: 75}, 5.85},
		{"short session", Base{Action: 420, Duration: 4, Weight: 20}, 0.06825},
		{"long slow session", Base{Action: 1206, Duration: 12, Weight: 6}, 0.065325},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speed, err := tt.base.MeanSpeed()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, speed, 1e-9)
		})
	}
}

func TestBaseMeanSpeedZeroDuration(t *testing.T) {
	_, err := Base{Action: 100, Duration: 0, Weight: 70}.MeanSpeed()
	assert.ErrorIs(t, err, ErrZeroDuration)
}

func TestSwimmingStepLength(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)
	assert.InDelta(t, 0.9936, s.Distance(), 1e-9)
	assert.Equal(t, SwimmingLenStep, s.stepLength())
	assert.Equal(t, LenStep, NewRunning(1, 1, 1).stepLength())
	assert.Equal(t, LenStep, NewSportsWalking(1, 1, 1, 1).stepLength())
}

func TestRunningSpentCalories(t *testing.T) {
	r := NewRunning(15000, 1, 75)
	calories, err := r.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 797.805, calories, 1e-9)

	r = NewRunning(1206, 12, 6)
	calories, err = r.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 12.812472, calories, 1e-9)
}

func TestSportsWalkingSpentCalories(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)
	calories, err := w.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 349.2517475250001, calories, 1e-9)

	// Same formula written out the long way.
	speed, err := w.MeanSpeed()
	require.NoError(t, err)
	expected := (WalkingCaloriesWeightMultiplier*w.Weight + (math.Pow(speed*KmhInMsec, 2.0)/(w.Height/CmInM))*WalkingCaloriesSpeedHeightFactor*w.Weight) * w.Duration * MinInH
	assert.InDelta(t, expected, calories, 1e-9)
}

func TestSwimmingMeanSpeedIgnoresStrokes(t *testing.T) {
	a := NewSwimming(720, 1, 80, 25, 40)
	b := NewSwimming(1, 1, 80, 25, 40)

	speedA, err := a.MeanSpeed()
	require.NoError(t, err)
	speedB, err := b.MeanSpeed()
	require.NoError(t, err)

	assert.Equal(t, 1.0, speedA)
	assert.Equal(t, speedA, speedB)
	assert.NotEqual(t, a.Distance(), b.Distance())
}

func TestSwimmingSpentCalories(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)
	calories, err := s.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, calories, 1e-9)
}

func TestZeroDurationPropagates(t *testing.T) {
	workouts := []Training{
		NewRunning(1000, 0, 70),
		NewSportsWalking(1000, 0, 70, 175),
		NewSwimming(1000, 0, 70, 25, 10),
	}

	for _, w := range workouts {
		t.Run(w.Label(), func(t *testing.T) {
			_, err := w.MeanSpeed()
			assert.ErrorIs(t, err, ErrZeroDuration)

			_, err = w.SpentCalories()
			assert.ErrorIs(t, err, ErrZeroDuration)

			_, err = Summary(w)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrZeroDuration)
			assert.Contains(t, err.Error(), w.Label())
		})
	}
}

func TestZeroHeightPropagates(t *testing.T) {
	for _, action := range []int{9000, 0} {
		w := NewSportsWalking(action, 1, 75, 0)

		_, err := w.SpentCalories()
		assert.ErrorIs(t, err, ErrZeroHeight)

		info, err := Summary(w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrZeroHeight)
		assert.Contains(t, err.Error(), "SportsWalking spent calories")
		assert.Equal(t, schema.InfoMessage{}, info)
	}

	// Mean speed does not depend on height.
	speed, err := NewSportsWalking(9000, 1, 75, 0).MeanSpeed()
	require.NoError(t, err)
	assert.InDelta(t, 5.85, speed, 1e-9)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		workout  Training
		expected schema.InfoMessage
	}{
		{
			name:    "swimming",
			workout: NewSwimming(720, 1, 80, 25, 40),
			expected: schema.InfoMessage{
				TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336,
			},
		},
		{
			name:    "running",
			workout: NewRunning(15000, 1, 75),
			expected: schema.InfoMessage{
				TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 797.805,
			},
		},
		{
			name:    "walking",
			workout: NewSportsWalking(9000, 1.5, 75, 180),
			expected: schema.InfoMessage{
				TrainingType: "SportsWalking", Duration: 1.5, Distance: 5.85, Speed: 3.9, Calories: 364.08449835,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Summary(tt.workout)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.TrainingType, info.TrainingType)
			assert.InDelta(t, tt.expected.Duration, info.Duration, 1e-9)
			assert.InDelta(t, tt.expected.Distance, info.Distance, 1e-9)
			assert.InDelta(t, tt.expected.Speed, info.Speed, 1e-9)
			assert.InDelta(t, tt.expected.Calories, info.Calories, 1e-6)
		})
	}
}

func TestSummaryIsPure(t *testing.T) {
	for _, w := range []Training{
		NewRunning(15000, 1, 75),
		NewSportsWalking(9000, 1, 75, 180),
		NewSwimming(720, 1, 80, 25, 40),
	} {
		first, err := Summary(w)
		require.NoError(t, err)
		second, err := Summary(w)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, first.Message(), second.Message())
	}
}

func TestSummaryMessages(t *testing.T) {
	tests := []struct {
		code     string
		data     []float64
		expected string
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, "Training type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Mean speed: 1.000 km/h; Calories burned: 336.000."},
		{"RUN", []float64{15000, 1, 75}, "Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 797.805."},
		{"WLK", []float64{9000, 1, 75, 180}, "Training type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Mean speed: 5.850 km/h; Calories burned: 349.252."},
		{"WLK", []float64{9000, 1.5, 75, 180}, "Training type: SportsWalking; Duration: 1.500 h; Distance: 5.850 km; Mean speed: 3.900 km/h; Calories burned: 364.084."},
		{"RUN", []float64{1206, 12, 6}, "Training type: Running; Duration: 12.000 h; Distance: 0.784 km; Mean speed: 0.065 km/h; Calories burned: 12.812."},
		{"SWM", []float64{720, 0.5, 80, 50, 20}, "Training type: Swimming; Duration: 0.500 h; Distance: 0.994 km; Mean speed: 2.000 km/h; Calories burned: 248.000."},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			w, err := ReadPackage(tt.code, tt.data)
			require.NoError(t, err)
			info, err := Summary(w)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Message())
		})
	}
}
