// Package theme publishes the chat UI color tokens as plain key-value maps.
package theme

import "strings"

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

var shared = map[string]string{
	"spacing_md":  "12px",
	"spacing_lg":  "16px",
	"spacing_xl":  "20px",
	"spacing_xxl": "32px",
	"radius_lg":   "12px",
	"shadow_drop": "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
}

var light = map[string]string{
	"color_accent":                         "#4CAF50",
	"color_accent_soft":                    "rgba(76, 175, 80, 0.2)",
	"background_fill_primary":              "#FFFFFF",
	"background_fill_secondary":            "#F1F8E9",
	"border_color_primary":                 "#81C784",
	"block_title_text_color":               "#2E7D32",
	"block_border_color":                   "#81C784",
	"button_primary_background_fill":       "#4CAF50",
	"button_primary_background_fill_hover": "#43A047",
	"button_secondary_background_fill":     "#F1F8E9",
	"button_secondary_border_color":        "#81C784",
	"button_secondary_text_color":          "#2E7D32",
}

var dark = map[string]string{
	"background_fill_primary":          "#1B2A1B",
	"background_fill_secondary":        "#243024",
	"block_background_fill":            "#1B2A1B",
	"block_border_color":               "#4CAF50",
	"block_label_text_color":           "#81C784",
	"block_title_text_color":           "#A5D6A7",
	"body_background_fill":             "linear-gradient(135deg, #162316 0%, #1B2A1B 100%)",
	"body_text_color":                  "#E8F5E9",
	"button_primary_background_fill":   "#4CAF50",
	"button_primary_text_color":        "#FFFFFF",
	"button_secondary_background_fill": "#243024",
	"button_secondary_border_color":    "#4CAF50",
	"button_secondary_text_color":      "#A5D6A7",
	"color_accent":                     "#81C784",
	"color_accent_soft":                "rgba(129, 199, 132, 0.2)",
	"input_background_fill":            "#243024",
	"input_border_color":               "#4CAF50",
	"input_text_color":                 "#E8F5E9",
	"checkbox_background_color":        "#243024",
	"checkbox_border_color":            "#4CAF50",
	"slider_color":                     "#4CAF50",
	"block_label_background_fill":      "rgba(76, 175, 80, 0.1)",
}

// ParseMode maps "dark" (any case) to Dark and everything else to Light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(Dark)) {
		return Dark
	}
	return Light
}

// Tokens returns a fresh token map for mode, shared tokens included.
func Tokens(mode Mode) map[string]string {
	palette := light
	if mode == Dark {
		palette = dark
	}
	out := make(map[string]string, len(shared)+len(palette))
	for k, v := range shared {
		out[k] = v
	}
	for k, v := range palette {
		out[k] = v
	}
	return out
}
