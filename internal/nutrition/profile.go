/*
Package nutrition holds the biometric profile a conversation is personalized
with, the formulas derived from it, and the written assessment shown to the
user when the profile changes.
*/
package nutrition

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form bounds accepted by the profile editor. Zero always means "not provided".
const (
	MinAge      = 0
	MaxAge      = 120
	MinWeightKg = 20
	MaxWeightKg = 300
	MinHeightCm = 100
	MaxHeightCm = 250
)

// DietaryOptions lists the preference tags offered by the profile editor.
// Free-form tags are accepted as well.
var DietaryOptions = []string{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Keto", "Paleo"}

var (
	ErrInvalidAge    = errors.New("age out of range")
	ErrInvalidWeight = errors.New("weight out of range")
	ErrInvalidHeight = errors.New("height out of range")
	ErrInvalidTarget = errors.New("targets must not be negative")
)

// Profile is the user's biometric snapshot. It is always replaced as a whole.
type Profile struct {
	Name string `json:"name"`

	// Age in whole years.
	Age int `json:"age"`

	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`

	// DietaryPreferences are free-form tags such as "Vegan". Order carries no meaning.
	DietaryPreferences []string `json:"dietary_preferences"`

	// Daily targets. A zero target is treated the same as an absent one.
	CalorieTarget float64 `json:"calorie_target"` // kcal
	ProteinTarget float64 `json:"protein_target"` // g
	WaterTarget   float64 `json:"water_target"`   // L
}

// Validate enforces the editor bounds on the fields that are set.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidAge, p.Age, MinAge, MaxAge)
	}
	if p.WeightKg != 0 && (p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg) {
		return fmt.Errorf("%w: %g (allowed %d-%d)", ErrInvalidWeight, p.WeightKg, MinWeightKg, MaxWeightKg)
	}
	if p.HeightCm != 0 && (p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm) {
		return fmt.Errorf("%w: %g (allowed %d-%d)", ErrInvalidHeight, p.HeightCm, MinHeightCm, MaxHeightCm)
	}
	if p.CalorieTarget < 0 || p.ProteinTarget < 0 || p.WaterTarget < 0 {
		return ErrInvalidTarget
	}
	return nil
}

// Normalized trims whitespace and drops empty preference tags.
func (p Profile) Normalized() Profile {
	p.Name = strings.TrimSpace(p.Name)
	prefs := make([]string, 0, len(p.DietaryPreferences))
	for _, tag := range p.DietaryPreferences {
		if tag = strings.TrimSpace(tag); tag != "" {
			prefs = append(prefs, tag)
		}
	}
	p.DietaryPreferences = prefs
	return p
}

// BMI returns weight/(height in m)^2 rounded to one decimal. ok is false when
// weight or height is missing.
func (p Profile) BMI() (bmi float64, ok bool) {
	if p.WeightKg <= 0 || p.HeightCm <= 0 {
		return 0, false
	}
	m := p.HeightCm / 100
	return math.Round(p.WeightKg/(m*m)*10) / 10, true
}

// HasDiet reports whether any dietary preference is set.
func (p Profile) HasDiet() bool {
	return len(p.DietaryPreferences) > 0
}

// FormatAmount renders a user-entered quantity the way it was typed:
// 2000 stays "2000", 2.5 stays "2.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
