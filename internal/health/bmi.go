// Package health holds the locally owned health logic: BMI computation and
// the advice request model sent to the remote advisor.
package health

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement is returned for non-positive or non-finite body measurements.
var ErrInvalidMeasurement = errors.New("measurement must be a positive number")

// Category is a BMI weight class.
type Category string

// BMI categories.
const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// Category thresholds. Lower bounds are inclusive.
const (
	normalWeightFloor = 18.5
	overweightFloor   = 24.9
	obeseFloor        = 29.9
)

// BMIResult is a computed body mass index and its category.
type BMIResult struct {
	Category Category
	Value    float64
}

// Rounded returns the value rounded to one decimal place for display.
func (r BMIResult) Rounded() float64 {
	return math.Round(r.Value*10) / 10
}

// String renders the result as "22.9 (Normal weight)".
func (r BMIResult) String() string {
	return fmt.Sprintf("%.1f (%s)", r.Value, r.Category)
}

// ComputeBMI calculates BMI from weight in kilograms and height in centimeters.
func ComputeBMI(weightKg, heightCm float64) (BMIResult, error) {
	if !isPositive(weightKg) {
		return BMIResult{}, fmt.Errorf("weight %v: %w", weightKg, ErrInvalidMeasurement)
	}
	if !isPositive(heightCm) {
		return BMIResult{}, fmt.Errorf("height %v: %w", heightCm, ErrInvalidMeasurement)
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	return BMIResult{
		Value:    bmi,
		Category: Categorize(bmi),
	}, nil
}

// Categorize maps an unrounded BMI value to its category.
func Categorize(bmi float64) Category {
	switch {
	case bmi < normalWeightFloor:
		return Underweight
	case bmi < overweightFloor:
		return NormalWeight
	case bmi < obeseFloor:
		return Overweight
	default:
		return Obese
	}
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
