package chat

import "NutriAssist/internal/locales"

// QuickAction is a canned question offered next to the chat box.
type QuickAction struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var quickActions = []struct {
	id, label, prompt string
}{
	{"meal_suggestions", locales.MsgActionMealsLabel, locales.MsgActionMealsPrompt},
	{"daily_calories", locales.MsgActionCaloriesLabel, locales.MsgActionCaloriesPrompt},
	{"nutrition_facts", locales.MsgActionFactsLabel, locales.MsgActionFactsPrompt},
	{"exercise_tips", locales.MsgActionExerciseLabel, locales.MsgActionExercisePrompt},
	{"weekly_menu", locales.MsgActionMenuLabel, locales.MsgActionMenuPrompt},
}

// QuickActions lists the presets in display order.
func QuickActions(loc locales.Locale) []QuickAction {
	out := make([]QuickAction, 0, len(quickActions))
	for _, qa := range quickActions {
		out = append(out, QuickAction{
			ID:     qa.id,
			Label:  locales.Sprintf(loc, qa.label),
			Prompt: locales.Sprintf(loc, qa.prompt),
		})
	}
	return out
}

// QuickActionPrompt returns the canned question for id.
func QuickActionPrompt(loc locales.Locale, id string) (string, bool) {
	for _, qa := range quickActions {
		if qa.id == id {
			return locales.Sprintf(loc, qa.prompt), true
		}
	}
	return "", false
}
