package nutrition

import (
	"math"
	"strconv"
	"strings"

	"NutriAssist/internal/locales"
)

// Deviation thresholds in percent: above warn is flagged, above moderate is
// noted, anything else counts as aligned.
type thresholds struct {
	warn, moderate float64
}

var (
	calorieBands = thresholds{warn: 30, moderate: 15}
	proteinBands = thresholds{warn: 50, moderate: 25}
	waterBands   = thresholds{warn: 30, moderate: 15}
)

// MaxComfortableRestrictions is the number of dietary tags above which the
// assessment warns about nutrient coverage.
const MaxComfortableRestrictions = 3

var categoryKeys = map[Category]string{
	Underweight:  locales.MsgCategoryUnderweight,
	NormalWeight: locales.MsgCategoryNormal,
	Overweight:   locales.MsgCategoryOverweight,
	Obese:        locales.MsgCategoryObese,
}

// Assess writes the paragraph-per-dimension assessment for p. Paragraphs are
// separated by a blank line; when nothing applies a single default sentence
// is returned.
func Assess(loc locales.Locale, p Profile, m Metrics) string {
	var parts []string

	if m.Category != NotAvailable {
		parts = append(parts, locales.Sprintf(loc, locales.MsgBMI,
			FormatAmount(m.BMI), locales.Sprintf(loc, categoryKeys[m.Category])))
	}

	if p.CalorieTarget != 0 && m.TDEE > 0 {
		parts = append(parts, locales.Sprintf(loc,
			calorieBands.pick(Deviation(p.CalorieTarget, m.TDEE),
				locales.MsgCalorieWarn, locales.MsgCalorieModerate, locales.MsgCalorieAligned),
			FormatAmount(p.CalorieTarget), fixed(m.TDEE, 0)))
	}

	if p.ProteinTarget != 0 && m.Protein > 0 {
		parts = append(parts, locales.Sprintf(loc,
			proteinBands.pick(Deviation(p.ProteinTarget, m.Protein),
				locales.MsgProteinWarn, locales.MsgProteinModerate, locales.MsgProteinAligned),
			FormatAmount(p.ProteinTarget), fixed(m.Protein, 0)))
	}

	if p.WaterTarget != 0 && m.Water > 0 {
		parts = append(parts, locales.Sprintf(loc,
			waterBands.pick(Deviation(p.WaterTarget, m.Water),
				locales.MsgWaterWarn, locales.MsgWaterModerate, locales.MsgWaterAligned),
			FormatAmount(p.WaterTarget), fixed(m.Water, 1)))
	}

	if p.HasDiet() {
		if len(p.DietaryPreferences) > MaxComfortableRestrictions {
			parts = append(parts, locales.Sprintf(loc, locales.MsgManyRestrictions))
		} else {
			parts = append(parts, locales.Sprintf(loc, locales.MsgPreferencesNoted, locales.Join(p.DietaryPreferences)))
		}
	}

	if len(parts) == 0 {
		return locales.Sprintf(loc, locales.MsgAssessmentDefault)
	}
	return strings.Join(parts, "\n\n")
}

// Deviation is |target-recommended| as a percentage of recommended.
// recommended must be positive.
func Deviation(target, recommended float64) float64 {
	return math.Abs(target-recommended) / recommended * 100
}

func (t thresholds) pick(pct float64, warn, moderate, aligned string) string {
	switch {
	case pct > t.warn:
		return warn
	case pct > t.moderate:
		return moderate
	default:
		return aligned
	}
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
