package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	lightTokens := Tokens(Light)
	darkTokens := Tokens(Dark)

	assert.Equal(t, "#FFFFFF", lightTokens["background_fill_primary"])
	assert.Equal(t, "#1B2A1B", darkTokens["background_fill_primary"])
	assert.Equal(t, "12px", darkTokens["radius_lg"])

	// callers get their own copy
	darkTokens["slider_color"] = "red"
	assert.Equal(t, "#4CAF50", Tokens(Dark)["slider_color"])
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, Dark, ParseMode(" DARK "))
	assert.Equal(t, Light, ParseMode(""))
	assert.Equal(t, Light, ParseMode("sepia"))
}
