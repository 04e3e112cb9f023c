package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNutritionRelated(t *testing.T) {
	c := New(English)
	accepted := []string{
		"Is 2000 calories enough for me?",
		"BREAKFAST ideas please",
		"Give me a high protein snack",
		"I feel tired after lunch",
		"Recommend a movie",        // keyword "recommend"
		"What's the weather?",      // question starter
		"Which is the best option", // starter wins before adjectives
		"Rank these from good to bad",
	}
	for _, q := range accepted {
		assert.Truef(t, c.IsNutritionRelated(q), "expected %q to be accepted", q)
	}

	rejected := []string{
		"Tell me a joke",
		"Write a poem about the sea",
		"",
	}
	for _, q := range rejected {
		assert.Falsef(t, c.IsNutritionRelated(q), "expected %q to be rejected", q)
	}
}

func TestSpanishVocabulary(t *testing.T) {
	c := New(Spanish)
	assert.True(t, c.IsNutritionRelated("¿Qué debo cenar hoy?"))
	assert.True(t, c.IsNutritionRelated("Necesito una receta con pollo"))
	assert.False(t, c.IsNutritionRelated("Cuéntame un chiste"))
}

func TestClassifierIsDeterministic(t *testing.T) {
	c := New(English)
	for i := 0; i < 3; i++ {
		assert.True(t, c.IsNutritionRelated("how much water"))
		assert.False(t, c.IsNutritionRelated("tell me a joke"))
	}
}

func TestMergeKeepsEveryVocabulary(t *testing.T) {
	c := New(Merge(English, Spanish))
	assert.True(t, c.IsNutritionRelated("What should I eat for breakfast?"))
	assert.True(t, c.IsNutritionRelated("Is rice healthy?"))
	assert.True(t, c.IsNutritionRelated("¿Qué debo cenar hoy?"))
	assert.False(t, c.IsNutritionRelated("Cuéntame un chiste"))
	assert.False(t, c.IsNutritionRelated("Tell me a joke"))
}
