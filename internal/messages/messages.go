package messages

import (
	"fmt"
)

type EffectDetail struct {
	Title       string
	Description string
	Family      string
}

var effectMessages = map[string]EffectDetail{
	"rainbow": {
		Title:       "Rainbow",
		Description: "Full hue sweep from left to right at full saturation.",
		Family:      "horizontal",
	},
	"unicorn": {
		Title:       "Unicorn",
		Description: "Pastel hue sweep from left to right.",
		Family:      "horizontal",
	},
	"fire": {
		Title:       "Fire",
		Description: "Yellow at the top burning down to red.",
		Family:      "vertical",
	},
	"ocean": {
		Title:       "Ocean",
		Description: "Cyan surface sinking into deep blue.",
		Family:      "vertical",
	},
	"sunrise": {
		Title:       "Sunrise",
		Description: "Pink sky fading into orange.",
		Family:      "vertical",
	},
	"vaporwave": {
		Title:       "Vaporwave",
		Description: "Soft magenta to teal, top to bottom.",
		Family:      "vertical",
	},
	"matrix": {
		Title:       "Matrix",
		Description: "Bright green fading as it falls.",
		Family:      "vertical",
	},
	"cyberpunk": {
		Title:       "Cyberpunk",
		Description: "Magenta to cyan along the diagonal with pulsing brightness.",
		Family:      "diagonal",
	},
	"angel": {
		Title:       "Angel",
		Description: "Pale gold glow along the diagonal.",
		Family:      "diagonal",
	},
	"neon": {
		Title:       "Neon",
		Description: "Hue oscillating between red and cyan along the diagonal.",
		Family:      "diagonal",
	},
	"poison": {
		Title:       "Poison",
		Description: "Toxic greens with a fast brightness ripple.",
		Family:      "diagonal",
	},
	"chrome": {
		Title:       "Chrome",
		Description: "Cool desaturated blues with independent column and row waves.",
		Family:      "axes",
	},
	"metal": {
		Title:       "Metal",
		Description: "Steel grey banding by row with a light column sheen.",
		Family:      "axes",
	},
	"none": {
		Title:       "None",
		Description: "One fixed terminal green, or the color given with --color.",
		Family:      "fixed",
	},
}

// uiMessages holds UI strings.
var uiMessages = map[string]string{
	"HTMLTitle":               "Cosmic Horoscope",
	"HTMLEffect":              "Effect",
	"HTMLFont":                "Font",
	"HTMLBorder":              "Border",
	"HTMLPlain":               "Plain text",
	"HTMLWarnings":            "Warnings",
	"HTMLRender":              "Render",
	"HTMLSaved":               "HTML saved to: %s",
	"JSONSaved":               "JSON saved: %s",
	"RenderFailed":            "Render failed: %v",
	"RenderWarning":           "[!] %s",
	"FontsLoaded":             "Loaded %d fonts from %s",
	"FontsLoadFailed":         "Failed to load fonts from %s: %v",
	"ServeListening":          "Listening on http://%s",
	"ServeStopped":            "Server stopped.",
	"ConfigReloaded":          "Config reloaded: %s",
	"EffectsTitle":            "--- Effects ---",
	"FontsTitle":              "--- Fonts ---",
	"BordersTitle":            "--- Borders ---",
	"OverwritePrompt":         "%s exists. Overwrite?",
	"WriteAborted":            "Not overwriting %s.",
	"InteractiveWelcome":      "Welcome to cosmic. Type a sign or a phrase, or ':help' for commands.",
	"InteractiveExit":         "Exiting program.",
	"InteractiveHelp":         "Available commands:",
	"InteractiveSettings":     "effect=%s font=%s border=%s color=%s",
	"InteractiveSet":          "%s set to %s",
	"InteractiveColorReset":   "color reset to the configured default (%s)",
	"InteractiveErrorUsage":   "Usage: %s",
	"InteractiveErrorUnknown": "Unknown command: %s",
	"InteractiveErrorValue":   "Unknown %s: %s",
}

func GetEffectMessage(id string) EffectDetail {
	if msg, ok := effectMessages[id]; ok {
		return msg
	}
	return EffectDetail{
		Title:       id,
		Description: fmt.Sprintf("No description for effect '%s'.", id),
		Family:      "unknown",
	}
}

func GetUIMessage(id string, args ...interface{}) string {
	format, ok := uiMessages[id]
	if !ok || format == "" {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
