// Package tdee derives lean mass, basal metabolic rate and total daily
// energy expenditure from body weight, body-fat percentage and an activity
// multiplier.
//
//	lean_mass = weight × (1 − body_fat / 100)
//	bmr       = lean_mass × 28
//	tdee      = bmr × multiplier
//
// Values are carried at full float64 precision; rounding is the renderer's job.
package tdee

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/tdeecalc/internal/prompt"
)

// ErrNotFinite is returned when a derived value overflows float64.
var ErrNotFinite = errors.New("result is too large to represent")

// KcalPerLeanKg is the BMR factor applied to lean mass.
const KcalPerLeanKg = 28.0

// Accepted input ranges, shared by the console prompts and the HTTP handler.
var (
	WeightBounds  = prompt.AtLeast(0)
	BodyFatBounds = prompt.Between(0, 100)
)

// Input is one set of measurements.
type Input struct {
	WeightKg   float64 `json:"weight_kg"`
	BodyFatPct float64 `json:"body_fat_pct"`
}

// Validate reports the first measurement outside its accepted range.
func (in Input) Validate() error {
	if err := WeightBounds.Check(in.WeightKg); err != nil {
		return fmt.Errorf("weight_kg: %w", err)
	}
	if err := BodyFatBounds.Check(in.BodyFatPct); err != nil {
		return fmt.Errorf("body_fat_pct: %w", err)
	}
	return nil
}

// Result is the derived triple.
type Result struct {
	LeanMassKg float64 `json:"lean_mass_kg"`
	BMRKcal    float64 `json:"bmr_kcal"`
	TDEEKcal   float64 `json:"tdee_kcal"`
}

// Validate reports ErrNotFinite when any derived value is infinite or NaN.
// Huge but accepted weights can overflow once multiplied through.
func (r Result) Validate() error {
	for _, v := range []float64{r.LeanMassKg, r.BMRKcal, r.TDEEKcal} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return ErrNotFinite
		}
	}
	return nil
}

// LeanMass returns weight × (1 − bodyFatPct/100).
func LeanMass(weightKg, bodyFatPct float64) float64 {
	return weightKg * (1 - bodyFatPct/100)
}

// BMR returns leanMassKg × KcalPerLeanKg.
func BMR(leanMassKg float64) float64 {
	return leanMassKg * KcalPerLeanKg
}

// TDEE returns bmrKcal × multiplier.
func TDEE(bmrKcal, multiplier float64) float64 {
	return bmrKcal * multiplier
}

// Compute chains the three steps. The input is assumed to be validated.
func Compute(in Input, multiplier float64) Result {
	lean := LeanMass(in.WeightKg, in.BodyFatPct)
	bmr := BMR(lean)
	return Result{
		LeanMassKg: lean,
		BMRKcal:    bmr,
		TDEEKcal:   TDEE(bmr, multiplier),
	}
}
