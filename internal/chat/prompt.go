package chat

import (
	"fmt"
	"strconv"
	"strings"

	"NutriAssist/internal/locales"
	"NutriAssist/internal/nutrition"
)

/* =================================================================================
							SYSTEM PROMPT
	Base instructions sent as turn 0 of every transcript. The profile context
	block is appended to it whenever the profile changes.
=================================================================================*/

// BasePrompt is the assistant persona and its guardrails.
const BasePrompt = `You are a professional nutrition assistant with expertise in dietary planning and nutritional science.
Give personalized, evidence-based nutrition advice and follow these guidelines:

1. ONLY answer questions about nutrition, diet, food and healthy eating habits
2. If asked about anything else, politely steer the conversation back to nutrition
3. Base all advice on scientific evidence and established nutritional guidelines
4. Take the user's complete profile (age, weight, dietary preferences, goals) into account
5. Respect dietary restrictions and preferences
6. Give practical, actionable advice that is easy to follow
7. Include specific food suggestions and meal ideas when relevant
8. Explain the nutritional benefits of the foods you recommend
9. Offer alternatives when a food might not fit the user's preferences
10. When discussing calories or nutrients, explain why they matter

Safety Guidelines:
- Say so when a question needs professional medical advice
- Never make extreme dietary recommendations
- Keep possible allergies and intolerances in mind
- Promote balanced, sustainable eating habits
- Discourage harmful eating behaviors and extreme diets

Keep a supportive, encouraging tone while staying accurate and science-based.`

const noneSpecified = "None specified"

// ContextBlock renders every profile field and derived metric for the system turn.
func ContextBlock(loc locales.Locale, p nutrition.Profile, m nutrition.Metrics) string {
	var sb strings.Builder

	bmi := string(nutrition.NotAvailable)
	if m.HasBMI {
		bmi = nutrition.FormatAmount(m.BMI) + " (calculated)"
	}
	prefs := noneSpecified
	if p.HasDiet() {
		prefs = locales.Join(p.DietaryPreferences)
	}

	sb.WriteString("\n\nUser Profile:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", orNotSet(p.Name))
	fmt.Fprintf(&sb, "- Age: %s\n", withUnit(float64(p.Age), " years"))
	fmt.Fprintf(&sb, "- Weight: %s\n", withUnit(p.WeightKg, "kg"))
	fmt.Fprintf(&sb, "- Height: %s\n", withUnit(p.HeightCm, "cm"))
	fmt.Fprintf(&sb, "- BMI: %s\n", bmi)
	fmt.Fprintf(&sb, "- Dietary Preferences: %s\n", prefs)
	fmt.Fprintf(&sb, "- Daily Targets: %s, %s protein, %s water\n",
		withUnit(p.CalorieTarget, "kcal"), withUnit(p.ProteinTarget, "g"), withUnit(p.WaterTarget, "L"))
	fmt.Fprintf(&sb, "- Estimated BMR: %skcal\n", strconv.FormatFloat(m.BMR, 'f', 0, 64))
	fmt.Fprintf(&sb, "- Estimated TDEE: %skcal\n", strconv.FormatFloat(m.TDEE, 'f', 0, 64))

	sb.WriteString("\nHealth Status:\n")
	fmt.Fprintf(&sb, "- BMI Category: %s\n", m.Category)
	fmt.Fprintf(&sb, "- Protein Needs: %sg\n", strconv.FormatFloat(m.Protein, 'f', 0, 64))
	fmt.Fprintf(&sb, "- Water Needs: %sL\n", strconv.FormatFloat(m.Water, 'f', 1, 64))

	sb.WriteString(`
Provide personalized nutrition advice based on this profile. Consider:
1. The user's BMI category and health status
2. Their specific dietary preferences and restrictions
3. Their calculated nutritional needs
4. Age-appropriate recommendations
5. Practical meal suggestions that fit their calorie targets
`)
	sb.WriteString("\n")
	sb.WriteString(locales.Sprintf(loc, locales.MsgReplyLanguage))
	return sb.String()
}

// Preamble restates the known profile facts ahead of a reply, for example
// "I see that your height is 175cm, your weight is 70kg and you follow a
// Vegan diet.\n\n". It is empty when no fact is known.
func Preamble(loc locales.Locale, p nutrition.Profile) string {
	var facts []string
	if p.HeightCm > 0 {
		facts = append(facts, locales.Sprintf(loc, locales.MsgPreambleHeight, nutrition.FormatAmount(p.HeightCm)))
	}
	if p.WeightKg > 0 {
		facts = append(facts, locales.Sprintf(loc, locales.MsgPreambleWeight, nutrition.FormatAmount(p.WeightKg)))
	}
	if p.Age > 0 {
		facts = append(facts, locales.Sprintf(loc, locales.MsgPreambleAge, strconv.Itoa(p.Age)))
	}

	body := locales.Join(facts)
	if p.HasDiet() {
		diet := locales.Sprintf(loc, locales.MsgPreambleDiet, locales.Join(p.DietaryPreferences))
		if body == "" {
			body = diet
		} else {
			body = locales.Sprintf(loc, locales.MsgPreambleAnd, body, diet)
		}
	}
	if body == "" {
		return ""
	}
	return locales.Sprintf(loc, locales.MsgPreamble, body)
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

func withUnit(v float64, unit string) string {
	if v == 0 {
		return "not set"
	}
	return nutrition.FormatAmount(v) + unit
}
