// Package compile projects a validated declaration into the daemon's TOML
// configuration document.
package compile

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/voxtype/voxgen/internal/model"
	"github.com/voxtype/voxgen/internal/options"
)

// Project builds the base document strictly from typed fields. Disabled
// features and unset optionals are omitted entirely rather than serialized as
// placeholders; package, service, and settings never reach the daemon.
func Project(opts options.Options, ref model.Reference) map[string]any {
	hotkey := map[string]any{
		"key":       opts.Hotkey.Key,
		"modifiers": modifierList(opts.Hotkey.Modifiers),
	}

	audio := map[string]any{
		"device":            opts.Audio.Device,
		"max_duration_secs": opts.Audio.MaxDurationSecs,
	}
	if opts.Audio.Feedback.Enable {
		feedback := map[string]any{
			"enable": true,
			"volume": opts.Audio.Feedback.Volume,
		}
		if opts.Audio.Feedback.StartSound != "" {
			feedback["start_sound"] = opts.Audio.Feedback.StartSound
		}
		if opts.Audio.Feedback.StopSound != "" {
			feedback["stop_sound"] = opts.Audio.Feedback.StopSound
		}
		audio["feedback"] = feedback
	}

	whisper := map[string]any{
		"model":         ref.LocalPath,
		"language":      opts.Whisper.Language,
		"translate":     opts.Whisper.Translate,
		"gpu_isolation": opts.Whisper.GPUIsolation,
	}
	if opts.Whisper.Threads != nil {
		whisper["threads"] = *opts.Whisper.Threads
	}
	if opts.Whisper.InitialPrompt != "" {
		whisper["initial_prompt"] = opts.Whisper.InitialPrompt
	}

	output := map[string]any{
		"mode": opts.Output.Mode,
		"notification": map[string]any{
			"on_recording_start": opts.Output.Notification.OnRecordingStart,
			"on_recording_stop":  opts.Output.Notification.OnRecordingStop,
		},
	}
	if opts.Output.PostCommand != "" {
		output["post_command"] = opts.Output.PostCommand
	}

	doc := map[string]any{
		"hotkey":  hotkey,
		"audio":   audio,
		"whisper": whisper,
		"output":  output,
		"status": map[string]any{
			"icons": ResolveIcons(opts.Status.IconTheme, opts.Status.Icons),
		},
	}

	if opts.StateFile.Enable {
		doc["state_file"] = opts.StateFile.Path
	}

	return doc
}

// MergeOverrides deep-merges the free-form settings layer on top of base,
// override-wins at matching paths, new paths introduced verbatim. Lists
// replace wholesale, matching the typed-merge semantics. Both inputs are left
// untouched; a merged copy is returned.
func MergeOverrides(base map[string]any, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for k, v := range base {
		merged[k] = v
	}

	for k, ov := range overrides {
		if baseMap, ok := merged[k].(map[string]any); ok {
			if overrideMap, ok := ov.(map[string]any); ok {
				merged[k] = MergeOverrides(baseMap, overrideMap)
				continue
			}
		}
		merged[k] = ov
	}

	return merged
}

// Render serializes the document as TOML. go-toml emits map keys in sorted
// order, so identical documents always serialize to identical bytes.
func Render(doc map[string]any) ([]byte, error) {
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render config document: %w", err)
	}
	return out, nil
}

// Document runs the full two-stage compilation: typed projection, settings
// merge, deterministic serialization.
func Document(opts options.Options, ref model.Reference) ([]byte, error) {
	return Render(MergeOverrides(Project(opts, ref), opts.Settings))
}

// modifierList copies the normalized modifier slice so the document never
// aliases the options tree. Order is first-appearance, already deduplicated.
func modifierList(modifiers []string) []string {
	out := make([]string, len(modifiers))
	copy(out, modifiers)
	return out
}
