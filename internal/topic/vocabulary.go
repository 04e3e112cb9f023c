package topic

// English is the reference vocabulary.
var English = Vocabulary{
	Keywords: []string{
		// food and meals
		"food", "diet", "nutrition", "eat", "meal", "breakfast", "lunch", "dinner", "snack",
		"recipe", "cooking", "cook", "bake", "baking", "kitchen", "restaurant", "cafe",

		// nutrients
		"calorie", "protein", "carb", "carbohydrate", "fat", "fiber", "fibre", "vitamin",
		"mineral", "nutrient", "supplement", "omega", "antioxidant",

		// food groups
		"vegetable", "fruit", "meat", "fish", "seafood", "dairy", "grain", "cereal",
		"legume", "bean", "nut", "seed", "spice", "herb", "oil", "sauce", "dressing",

		// health and wellness
		"healthy", "health", "wellness", "weight", "fitness", "exercise", "workout",
		"metabolism", "digestion", "energy", "tired", "fatigue", "sleep", "stress",

		// restrictions
		"vegetarian", "vegan", "keto", "paleo", "gluten", "allergy",
		"intolerance", "organic", "natural", "processed", "whole food",

		// portions
		"portion", "serving", "size", "amount", "quantity", "measure", "cup", "gram",
		"ounce", "pound", "kilogram", "liter", "milliliter",

		// advice phrasing
		"should i", "can i", "what should", "how much", "how many", "recommend",
		"suggestion", "advice", "help", "guide", "plan", "schedule", "routine",

		// conditions
		"diabetes", "heart", "blood pressure", "cholesterol", "digestive",
		"gut", "immune", "bone", "muscle", "joint", "skin", "hair",
	},
	Starters: []string{
		"what", "how", "why", "when", "where", "which", "should", "can", "could",
		"would", "do", "does", "is", "are", "was", "were", "have", "has", "had",
	},
	Adjectives: []string{"healthy", "unhealthy", "good", "bad", "better", "best", "worse", "worst"},
}

// Spanish covers the same ground for the es locale. Starters include the
// opening question mark Spanish questions begin with.
var Spanish = Vocabulary{
	Keywords: []string{
		"comida", "comer", "dieta", "nutri", "aliment", "desayuno", "almuerzo", "cena", "merienda",
		"receta", "cocina", "hornear", "restaurante",

		"calor", "proteína", "proteina", "carbohidrato", "grasa", "fibra", "vitamina",
		"mineral", "suplemento", "omega", "antioxidante",

		"verdura", "vegetal", "fruta", "carne", "pescado", "marisco", "lácteo", "lacteo",
		"cereal", "legumbre", "frijol", "nuez", "semilla", "especia", "hierba", "aceite", "salsa",

		"salud", "saludable", "peso", "ejercicio", "entren", "metabolismo", "digestión",
		"energía", "cansad", "fatiga", "sueño", "dormir", "estrés",

		"vegetariano", "vegano", "keto", "paleo", "gluten", "alergia", "intolerancia",
		"orgánico", "procesado",

		"porción", "racion", "ración", "cantidad", "taza", "gramo", "litro", "kilo",

		"debo", "puedo", "cuánto", "cuanto", "cuántas", "recomienda", "consejo", "ayuda",
		"guía", "plan", "rutina", "horario",

		"diabetes", "corazón", "presión arterial", "colesterol", "intestin",
		"inmun", "hueso", "músculo", "articulación", "piel", "cabello",
	},
	Starters: []string{
		"¿", "qué", "que", "cómo", "como", "por qué", "cuándo", "dónde", "cuál",
		"debería", "puedo", "podría", "es ", "son ", "hay ", "tengo",
	},
	Adjectives: []string{"sano", "sana", "bueno", "buena", "malo", "mala", "mejor", "peor"},
}
