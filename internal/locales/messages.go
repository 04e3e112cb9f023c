package locales

// Message keys. The English text doubles as the key; other languages map it
// in their own table.
const (
	MsgWelcome        = "Hi! I'm your nutrition assistant. How can I help you today?"
	MsgProfileUpdated = "Profile updated for %s"
	MsgGreeting       = "Hello, %s! "

	MsgBMI = "Based on your BMI of %s, you are in the %s category."

	MsgCalorieWarn     = "⚠️ Your calorie target of %skcal is significantly different from your estimated daily needs (%skcal). This might be unsustainable in the long term. Consider adjusting your target."
	MsgCalorieModerate = "Your calorie target of %skcal is moderately different from your estimated daily needs (%skcal). Make sure this aligns with your health goals."
	MsgCalorieAligned  = "Your calorie target of %skcal is well-aligned with your estimated daily needs (%skcal)."

	MsgProteinWarn     = "⚠️ Your protein target of %sg is significantly different from recommended needs (%sg). This might not be optimal for your health goals."
	MsgProteinModerate = "Your protein target of %sg is moderately different from recommended needs (%sg). Consider adjusting based on your activity level."
	MsgProteinAligned  = "Your protein target of %sg aligns well with recommended needs (%sg)."

	MsgWaterWarn     = "⚠️ Your water intake target of %sL is significantly different from recommended needs (%sL). This might affect your hydration status."
	MsgWaterModerate = "Your water intake target of %sL is moderately different from recommended needs (%sL). Consider adjusting based on your activity level and climate."
	MsgWaterAligned  = "Your water intake target of %sL aligns well with recommended needs (%sL)."

	MsgManyRestrictions  = "⚠️ You have multiple dietary restrictions. Make sure you're getting all necessary nutrients. Consider consulting a nutritionist for a detailed meal plan."
	MsgPreferencesNoted  = "Your dietary preferences (%s) have been noted. I'll provide recommendations that align with these preferences."
	MsgAssessmentDefault = "I've noted your information and will provide personalized nutrition advice based on your profile."

	MsgCategoryUnderweight = "underweight"
	MsgCategoryNormal      = "normal weight"
	MsgCategoryOverweight  = "overweight"
	MsgCategoryObese       = "obese"

	MsgRedirect = "I'm your nutrition assistant, so I can only help with questions about food, diet, and nutrition. Could you please ask me something related to nutrition or healthy eating?"

	MsgPreamble       = "I see that %s.\n\n"
	MsgPreambleAnd    = "%s and %s"
	MsgPreambleHeight = "your height is %scm"
	MsgPreambleWeight = "your weight is %skg"
	MsgPreambleAge    = "you're %s years old"
	MsgPreambleDiet   = "you follow a %s diet"

	MsgRateLimited  = "I'm experiencing high demand right now. Please try again in a few moments."
	MsgAPIError     = "I apologize, but I encountered an API error. Please try again later. Error: %s"
	MsgUnexpected   = "I apologize, but I encountered an unexpected error. Please try again. Error: %s"
	MsgTooManyTurns = "You're sending messages too quickly. Please wait a moment and try again."

	MsgReplyLanguage = "Always reply in English."

	MsgActionMealsLabel     = "🍽️ Get meal suggestions"
	MsgActionMealsPrompt    = "Can you suggest some healthy meals that fit my dietary preferences and calorie goals?"
	MsgActionCaloriesLabel  = "📊 Calculate daily calories"
	MsgActionCaloriesPrompt = "Based on my age, weight, and activity level, how many calories should I consume daily?"
	MsgActionFactsLabel     = "🔍 Check food nutrition facts"
	MsgActionFactsPrompt    = "Can you tell me about the nutritional content of common foods in my diet?"
	MsgActionExerciseLabel  = "🏃‍♂️ Get exercise tips"
	MsgActionExercisePrompt = "What types of exercise would complement my nutrition goals?"
	MsgActionMenuLabel      = "📅 Plan weekly menu"
	MsgActionMenuPrompt     = "Can you help me create a weekly meal plan that meets my nutritional goals?"
)

var messages = []string{
	MsgWelcome, MsgProfileUpdated, MsgGreeting, MsgBMI,
	MsgCalorieWarn, MsgCalorieModerate, MsgCalorieAligned,
	MsgProteinWarn, MsgProteinModerate, MsgProteinAligned,
	MsgWaterWarn, MsgWaterModerate, MsgWaterAligned,
	MsgManyRestrictions, MsgPreferencesNoted, MsgAssessmentDefault,
	MsgCategoryUnderweight, MsgCategoryNormal, MsgCategoryOverweight, MsgCategoryObese,
	MsgRedirect,
	MsgPreamble, MsgPreambleAnd, MsgPreambleHeight, MsgPreambleWeight, MsgPreambleAge, MsgPreambleDiet,
	MsgRateLimited, MsgAPIError, MsgUnexpected, MsgTooManyTurns,
	MsgReplyLanguage,
	MsgActionMealsLabel, MsgActionMealsPrompt,
	MsgActionCaloriesLabel, MsgActionCaloriesPrompt,
	MsgActionFactsLabel, MsgActionFactsPrompt,
	MsgActionExerciseLabel, MsgActionExercisePrompt,
	MsgActionMenuLabel, MsgActionMenuPrompt,
}

var spanish = map[string]string{
	MsgWelcome:        "¡Hola! Soy tu asistente de nutrición. ¿En qué puedo ayudarte hoy?",
	MsgProfileUpdated: "Perfil actualizado para %s",
	MsgGreeting:       "¡Hola, %s! ",

	MsgBMI: "Según tu IMC de %s, te encuentras en la categoría de %s.",

	MsgCalorieWarn:     "⚠️ Tu objetivo de %skcal es muy diferente de tus necesidades diarias estimadas (%skcal). Podría no ser sostenible a largo plazo. Considera ajustar tu objetivo.",
	MsgCalorieModerate: "Tu objetivo de %skcal es moderadamente diferente de tus necesidades diarias estimadas (%skcal). Asegúrate de que se ajusta a tus metas de salud.",
	MsgCalorieAligned:  "Tu objetivo de %skcal está bien alineado con tus necesidades diarias estimadas (%skcal).",

	MsgProteinWarn:     "⚠️ Tu objetivo de proteína de %sg es muy diferente de lo recomendado (%sg). Podría no ser óptimo para tus metas de salud.",
	MsgProteinModerate: "Tu objetivo de proteína de %sg es moderadamente diferente de lo recomendado (%sg). Considera ajustarlo según tu nivel de actividad.",
	MsgProteinAligned:  "Tu objetivo de proteína de %sg se ajusta bien a lo recomendado (%sg).",

	MsgWaterWarn:     "⚠️ Tu objetivo de agua de %sL es muy diferente de lo recomendado (%sL). Podría afectar tu hidratación.",
	MsgWaterModerate: "Tu objetivo de agua de %sL es moderadamente diferente de lo recomendado (%sL). Considera ajustarlo según tu actividad y el clima.",
	MsgWaterAligned:  "Tu objetivo de agua de %sL se ajusta bien a lo recomendado (%sL).",

	MsgManyRestrictions:  "⚠️ Tienes varias restricciones alimentarias. Asegúrate de obtener todos los nutrientes necesarios. Considera consultar a un nutricionista para un plan de comidas detallado.",
	MsgPreferencesNoted:  "He tomado nota de tus preferencias alimentarias (%s). Te daré recomendaciones acordes a ellas.",
	MsgAssessmentDefault: "He registrado tu información y te daré consejos de nutrición personalizados según tu perfil.",

	MsgCategoryUnderweight: "bajo peso",
	MsgCategoryNormal:      "peso normal",
	MsgCategoryOverweight:  "sobrepeso",
	MsgCategoryObese:       "obesidad",

	MsgRedirect: "Soy tu asistente de nutrición, así que solo puedo ayudarte con preguntas sobre comida, dieta y nutrición. ¿Podrías preguntarme algo relacionado con la nutrición o la alimentación saludable?",

	MsgPreamble:       "Veo que %s.\n\n",
	MsgPreambleAnd:    "%s y %s",
	MsgPreambleHeight: "mides %scm",
	MsgPreambleWeight: "pesas %skg",
	MsgPreambleAge:    "tienes %s años",
	MsgPreambleDiet:   "sigues una dieta %s",

	MsgRateLimited:  "Estoy recibiendo muchas solicitudes en este momento. Inténtalo de nuevo en unos instantes.",
	MsgAPIError:     "Lo siento, se produjo un error de la API. Inténtalo más tarde. Error: %s",
	MsgUnexpected:   "Lo siento, se produjo un error inesperado. Inténtalo de nuevo. Error: %s",
	MsgTooManyTurns: "Estás enviando mensajes demasiado rápido. Espera un momento e inténtalo de nuevo.",

	MsgReplyLanguage: "Responde siempre en español.",

	MsgActionMealsLabel:     "🍽️ Sugerencias de comidas",
	MsgActionMealsPrompt:    "¿Puedes sugerirme comidas saludables que se ajusten a mis preferencias alimentarias y a mis objetivos de calorías?",
	MsgActionCaloriesLabel:  "📊 Calcular calorías diarias",
	MsgActionCaloriesPrompt: "Según mi edad, peso y nivel de actividad, ¿cuántas calorías debería consumir al día?",
	MsgActionFactsLabel:     "🔍 Información nutricional",
	MsgActionFactsPrompt:    "¿Puedes contarme el contenido nutricional de los alimentos habituales de mi dieta?",
	MsgActionExerciseLabel:  "🏃‍♂️ Consejos de ejercicio",
	MsgActionExercisePrompt: "¿Qué tipos de ejercicio complementarían mis objetivos de nutrición?",
	MsgActionMenuLabel:      "📅 Planificar menú semanal",
	MsgActionMenuPrompt:     "¿Puedes ayudarme a crear un plan de comidas semanal que cumpla mis objetivos nutricionales?",
}
