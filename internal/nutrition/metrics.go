package nutrition

// Category is a BMI band label.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
	NotAvailable Category = "Not available"
)

const (
	// ActivityFactor is the moderate-activity multiplier applied to BMR.
	ActivityFactor = 1.55

	proteinPerKg = 1.6   // g per kg body weight
	waterPerKg   = 0.033 // L per kg body weight
)

// Metrics is a snapshot derived from a Profile. It is recomputed on every
// profile change and never cached.
type Metrics struct {
	BMI      float64  `json:"bmi"`
	HasBMI   bool     `json:"has_bmi"`
	Category Category `json:"bmi_category"`
	BMR      float64  `json:"bmr"`
	TDEE     float64  `json:"tdee"`
	Protein  float64  `json:"protein_need_g"`
	Water    float64  `json:"water_need_l"`
}

// Derive computes every metric for p.
func Derive(p Profile) Metrics {
	bmi, ok := p.BMI()
	return Metrics{
		BMI:      bmi,
		HasBMI:   ok,
		Category: BMICategory(p),
		BMR:      BMR(p),
		TDEE:     TDEE(p),
		Protein:  ProteinNeed(p),
		Water:    WaterNeed(p),
	}
}

// BMR uses the Mifflin-St Jeor equation (male constant). It is 0 unless
// weight, height and age are all set.
func BMR(p Profile) float64 {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return 0
	}
	return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + 5
}

// TDEE is total daily energy expenditure at moderate activity.
func TDEE(p Profile) float64 {
	return BMR(p) * ActivityFactor
}

// CategoryForBMI maps a BMI onto half-open bands: [0,18.5) [18.5,25) [25,30) [30,∞).
func CategoryForBMI(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// BMICategory classifies the profile's rounded BMI, or NotAvailable.
func BMICategory(p Profile) Category {
	bmi, ok := p.BMI()
	if !ok {
		return NotAvailable
	}
	return CategoryForBMI(bmi)
}

// ProteinNeed is the recommended daily protein in grams.
func ProteinNeed(p Profile) float64 {
	if p.WeightKg <= 0 {
		return 0
	}
	return p.WeightKg * proteinPerKg
}

// WaterNeed is the recommended daily water in liters.
func WaterNeed(p Profile) float64 {
	if p.WeightKg <= 0 {
		return 0
	}
	return p.WeightKg * waterPerKg
}
