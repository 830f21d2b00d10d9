package tui

// goalIcons maps stored goal icon references to terminal glyphs. Goals carry
// the reference only; rendering is resolved here.
var goalIcons = map[string]string{
	"piggy-bank": "🐷",
	"plane":      "✈️",
	"car":        "🚗",
	"home":       "🏠",
	"gift":       "🎁",
	"book":       "📚",
	"heart":      "❤️",
	"trending":   "📈",
}

// GoalIcon returns the glyph for a goal icon reference, falling back to a
// generic target.
func GoalIcon(name string) string {
	if icon, ok := goalIcons[name]; ok {
		return icon
	}
	return "🎯"
}

// categoryIcons maps budget category names to glyphs.
var categoryIcons = map[string]string{
	"Housing":        "🏠",
	"Food":           "🍕",
	"Transportation": "🚗",
	"Entertainment":  "🎬",
	"Utilities":      "💡",
	"Healthcare":     "💊",
	"Shopping":       "🛍️",
	"Education":      "📚",
	"Travel":         "✈️",
	"Other":          "📦",
}

// CategoryIcon returns the glyph for a budget category.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
