package training

import "github.com/huangsam/ftracker/schema"

// Formulas returns the formulas and coefficients of every workout variant.
func Formulas() *schema.FormulasRenderModel {
	distance := "action * len_step / m_in_km"
	meanSpeed := "distance / duration"

	return &schema.FormulasRenderModel{
		Title:       "Workout Formulas",
		Description: "Distance in km, mean speed in km/h, calories in kcal",
		Workouts: []schema.WorkoutFormula{
			{
				Code:      schema.RunningCode,
				Label:     schema.RunningLabel,
				Params:    paramsOf(schema.RunningCode),
				Distance:  distance,
				MeanSpeed: meanSpeed,
				Calories:  "(speed_multiplier * mean_speed + speed_shift) * weight / m_in_km * duration * min_in_h",
				Constants: []schema.FormulaConstant{
					{Name: "len_step", Value: LenStep},
					{Name: "m_in_km", Value: MInKm},
					{Name: "min_in_h", Value: MinInH},
					{Name: "speed_multiplier", Value: RunningCaloriesMeanSpeedMultiplier},
					{Name: "speed_shift", Value: RunningCaloriesMeanSpeedShift},
				},
			},
			{
				Code:      schema.WalkingCode,
				Label:     schema.WalkingLabel,
				Params:    paramsOf(schema.WalkingCode),
				Distance:  distance,
				MeanSpeed: meanSpeed,
				Calories:  "(weight_multiplier * weight + ((mean_speed * kmh_in_msec)^2 / (height / cm_in_m)) * speed_height_multiplier * weight) * duration * min_in_h",
				Constants: []schema.FormulaConstant{
					{Name: "len_step", Value: LenStep},
					{Name: "m_in_km", Value: MInKm},
					{Name: "min_in_h", Value: MinInH},
					{Name: "kmh_in_msec", Value: KmhInMsec},
					{Name: "cm_in_m", Value: CmInM},
					{Name: "weight_multiplier", Value: WalkingCaloriesWeightMultiplier},
					{Name: "speed_height_multiplier", Value: WalkingCaloriesSpeedHeightFactor},
				},
			},
			{
				Code:      schema.SwimmingCode,
				Label:     schema.SwimmingLabel,
				Params:    paramsOf(schema.SwimmingCode),
				Distance:  distance,
				MeanSpeed: "length_pool * count_pool / m_in_km / duration",
				Calories:  "(mean_speed + speed_shift) * weight_multiplier * weight * duration",
				Constants: []schema.FormulaConstant{
					{Name: "len_step", Value: SwimmingLenStep},
					{Name: "m_in_km", Value: MInKm},
					{Name: "speed_shift", Value: SwimmingCaloriesMeanSpeedShift},
					{Name: "weight_multiplier", Value: SwimmingCaloriesWeightMultiplier},
				},
			},
		},
	}
}
