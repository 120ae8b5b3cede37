package options

import "strings"

// Normalize collapses duplicate hotkey modifiers while preserving the order in
// which they first appear, so generated artifacts stay reproducible.
func Normalize(cfg Options) Options {
	cfg.Hotkey.Modifiers = dedupeModifiers(cfg.Hotkey.Modifiers)
	if cfg.Status.Icons == nil {
		cfg.Status.Icons = map[string]string{}
	}
	if cfg.Settings == nil {
		cfg.Settings = map[string]any{}
	}
	return cfg
}

func dedupeModifiers(modifiers []string) []string {
	if len(modifiers) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(modifiers))
	out := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
