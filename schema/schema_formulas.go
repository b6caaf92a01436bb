package schema

// FormulaConstant is a named coefficient used by a workout formula.
type FormulaConstant struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// WorkoutFormula describes how one workout variant derives its metrics.
type WorkoutFormula struct {
	Code      WorkoutCode       `json:"code"`
	Label     string            `json:"label"`
	Params    []string          `json:"params"`
	Distance  string            `json:"distance"`
	MeanSpeed string            `json:"mean_speed"`
	Calories  string            `json:"calories"`
	Constants []FormulaConstant `json:"constants"`
}

// FormulasRenderModel contains all data needed for displaying workout formulas.
type FormulasRenderModel struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Workouts    []WorkoutFormula `json:"workouts"`
}
