package fleet

import (
	"math"

	"train-induction-ai/models"
)

// HealthWeights are the per-input coefficients of the linear health score
type HealthWeights struct {
	Mileage          float64 `yaml:"mileage"`
	Age              float64 `yaml:"age"`
	Efficiency       float64 `yaml:"efficiency"`
	BrakeWear        float64 `yaml:"brakeWear"`
	TelecomClearance float64 `yaml:"telecomClearance"`
	MetroAgeYears    float64 `yaml:"metroAgeYears"`
}

// DefaultHealthWeights returns the stock coefficients
func DefaultHealthWeights() HealthWeights {
	return HealthWeights{
		Mileage:          -0.01,
		Age:              -0.5,
		Efficiency:       10,
		BrakeWear:        -0.2,
		TelecomClearance: 0.1,
		MetroAgeYears:    -0.2,
	}
}

// HealthInputs are the six fields a health score is derived from
type HealthInputs struct {
	Mileage          float64
	Age              float64
	Efficiency       float64
	BrakeWear        float64
	TelecomClearance float64
	MetroAgeYears    float64
}

// InputsOf extracts the scoring inputs from a trainset
func InputsOf(t models.Trainset) HealthInputs {
	return HealthInputs{
		Mileage:          t.Mileage,
		Age:              t.Age,
		Efficiency:       t.Efficiency,
		BrakeWear:        t.BrakeWear,
		TelecomClearance: t.TelecomClearance,
		MetroAgeYears:    t.MetroAgeYears,
	}
}

// Score computes the weighted sum of the inputs, truncates it toward zero
// and clamps the result to [0, 100].
func Score(w HealthWeights, in HealthInputs) int {
	raw := in.Mileage*w.Mileage +
		in.Age*w.Age +
		in.Efficiency*w.Efficiency +
		in.BrakeWear*w.BrakeWear +
		in.TelecomClearance*w.TelecomClearance +
		in.MetroAgeYears*w.MetroAgeYears

	if math.IsNaN(raw) {
		return 0
	}

	// clamp before converting so huge values never overflow int
	t := math.Trunc(raw)
	switch {
	case t < 0:
		return 0
	case t > 100:
		return 100
	}
	return int(t)
}

// Rescore recomputes t.HealthScore from t's current inputs
func Rescore(w HealthWeights, t *models.Trainset) {
	t.HealthScore = Score(w, InputsOf(*t))
}
