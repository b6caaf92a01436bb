package training

import (
	"fmt"
	"math"

	"github.com/huangsam/ftracker/schema"
)

// variant describes how a package with a given code becomes a Training.
type variant struct {
	label  string
	params []string
	counts []int // Indexes of readings that are counts
	build  func(data []float64) Training
}

// variants is the closed table of workout codes the reader accepts.
var variants = map[schema.WorkoutCode]variant{
	schema.RunningCode: {
		label:  schema.RunningLabel,
		params: []string{"action", "duration", "weight"},
		counts: []int{0},
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	schema.WalkingCode: {
		label:  schema.WalkingLabel,
		params: []string{"action", "duration", "weight", "height"},
		counts: []int{0},
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
	schema.SwimmingCode: {
		label:  schema.SwimmingLabel,
		params: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		counts: []int{0, 4},
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
}

// WorkoutType describes a workout code accepted by ReadPackage.
type WorkoutType struct {
	Code   schema.WorkoutCode `json:"code"`
	Label  string             `json:"label"`
	Params []string           `json:"params"`
	Arity  int                `json:"arity"`
}

// ReadPackage builds the workout for an activity code from its positional readings.
// Codes are matched exactly. Data must have one value per constructor parameter,
// and step, stroke and lap counts must be whole numbers.
func ReadPackage(code string, data []float64) (Training, error) {
	v, ok := variants[schema.WorkoutCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if len(data) != len(v.params) {
		return nil, fmt.Errorf("%w: %s expects %d values (%v), got %d", ErrArityMismatch, code, len(v.params), v.params, len(data))
	}
	for _, i := range v.counts {
		if data[i] != math.Trunc(data[i]) {
			return nil, fmt.Errorf("%w: %s %s is %g", ErrNonIntegral, code, v.params[i], data[i])
		}
	}
	return v.build(data), nil
}

// ReadPackages builds one workout per package, stopping at the first failure.
// Errors name the zero-based package index and its code.
func ReadPackages(pkgs []schema.Package) ([]Training, error) {
	trainings := make([]Training, 0, len(pkgs))
	for i, p := range pkgs {
		t, err := ReadPackage(string(p.Code), p.Data)
		if err != nil {
			return nil, fmt.Errorf("package %d (%s): %w", i, p.Code, err)
		}
		trainings = append(trainings, t)
	}
	return trainings, nil
}

// IsValidCode reports whether ReadPackage accepts the code.
func IsValidCode(code string) bool {
	_, ok := variants[schema.WorkoutCode(code)]
	return ok
}

// Arity returns the number of readings a code expects, or -1 for unknown codes.
func Arity(code string) int {
	v, ok := variants[schema.WorkoutCode(code)]
	if !ok {
		return -1
	}
	return len(v.params)
}

// WorkoutTypes lists every accepted code in display order.
func WorkoutTypes() []WorkoutType {
	types := make([]WorkoutType, 0, len(schema.AllWorkoutCodes))
	for _, code := range schema.AllWorkoutCodes {
		types = append(types, WorkoutType{
			Code:   code,
			Label:  variants[code].label,
			Params: paramsOf(code),
			Arity:  Arity(string(code)),
		})
	}
	return types
}

// paramsOf returns a copy of the parameter names for a code.
func paramsOf(code schema.WorkoutCode) []string {
	params := variants[code].params
	out := make([]string, len(params))
	copy(out, params)
	return out
}
