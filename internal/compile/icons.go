package compile

// iconThemes maps each theme to its per-state status icons. States mirror the
// daemon's state file values.
var iconThemes = map[string]map[string]string{
	"emoji": {
		"idle":         "🎤",
		"recording":    "🔴",
		"transcribing": "✍️",
		"error":        "⚠️",
	},
	"nerd-font": {
		"idle":         "",
		"recording":    "",
		"transcribing": "",
		"error":        "",
	},
	"text": {
		"idle":         "idle",
		"recording":    "rec",
		"transcribing": "...",
		"error":        "err",
	},
}

// ResolveIcons overlays per-state user overrides on the theme base set.
// Override keys are not restricted to the known states; bar integrations may
// define extra ones.
func ResolveIcons(theme string, overrides map[string]string) map[string]string {
	base := iconThemes[theme]
	icons := make(map[string]string, len(base)+len(overrides))
	for state, icon := range base {
		icons[state] = icon
	}
	for state, icon := range overrides {
		icons[state] = icon
	}
	return icons
}
