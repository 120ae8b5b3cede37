package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownField marks a declaration key that is not part of the schema.
// The settings escape hatch is exempt; everything else is a closed schema.
var ErrUnknownField = errors.New("unknown declaration field")

// overlay mirrors Options with pointer fields so a partial declaration can be
// distinguished from explicit zero values and applied onto a defaulted base.
type overlay struct {
	Package   *overlayPackage   `yaml:"package"`
	Model     *overlayModel     `yaml:"model"`
	Hotkey    *overlayHotkey    `yaml:"hotkey"`
	Audio     *overlayAudio     `yaml:"audio"`
	Whisper   *overlayWhisper   `yaml:"whisper"`
	Output    *overlayOutput    `yaml:"output"`
	Status    *overlayStatus    `yaml:"status"`
	StateFile *overlayStateFile `yaml:"state_file"`
	Service   *overlayService   `yaml:"service"`
	Settings  map[string]any    `yaml:"settings"`
}

type overlayPackage struct {
	Name       *string `yaml:"name"`
	Executable *string `yaml:"executable"`
}

type overlayModel struct {
	Name *string `yaml:"name"`
	Path *string `yaml:"path"`
}

type overlayHotkey struct {
	Key       *string  `yaml:"key"`
	Modifiers []string `yaml:"modifiers"`
}

type overlayAudio struct {
	Device          *string          `yaml:"device"`
	MaxDurationSecs *int             `yaml:"max_duration_secs"`
	Feedback        *overlayFeedback `yaml:"feedback"`
}

type overlayFeedback struct {
	Enable     *bool    `yaml:"enable"`
	Volume     *float64 `yaml:"volume"`
	StartSound *string  `yaml:"start_sound"`
	StopSound  *string  `yaml:"stop_sound"`
}

type overlayWhisper struct {
	Language      *string `yaml:"language"`
	Translate     *bool   `yaml:"translate"`
	Threads       *int    `yaml:"threads"`
	GPUIsolation  *bool   `yaml:"gpu_isolation"`
	InitialPrompt *string `yaml:"initial_prompt"`
}

type overlayOutput struct {
	Mode         *string              `yaml:"mode"`
	Notification *overlayNotification `yaml:"notification"`
	PostCommand  *string              `yaml:"post_command"`
}

type overlayNotification struct {
	OnRecordingStart *bool `yaml:"on_recording_start"`
	OnRecordingStop  *bool `yaml:"on_recording_stop"`
}

type overlayStatus struct {
	IconTheme *string           `yaml:"icon_theme"`
	Icons     map[string]string `yaml:"icons"`
}

type overlayStateFile struct {
	Enable *bool   `yaml:"enable"`
	Path   *string `yaml:"path"`
}

type overlayService struct {
	Enable     *bool `yaml:"enable"`
	RestartSec *int  `yaml:"restart_sec"`
}

// Parse decodes a YAML declaration and applies it onto base field by field.
//
// Nested records merge recursively, scalars and enums replace, and list or map
// valued fields replace wholesale. Unknown keys outside settings are rejected.
func Parse(content []byte, base Options) (Options, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Normalize(base), nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	var payload overlay
	if err := decoder.Decode(&payload); err != nil {
		return Options{}, wrapDecodeError(err)
	}
	if err := ensureSingleDocument(decoder); err != nil {
		return Options{}, err
	}

	return Normalize(payload.apply(base)), nil
}

// apply overlays every present field of the declaration onto base.
func (o overlay) apply(base Options) Options {
	cfg := base

	if o.Package != nil {
		applyString(&cfg.Package.Name, o.Package.Name)
		applyString(&cfg.Package.Executable, o.Package.Executable)
	}
	if o.Model != nil {
		applyString(&cfg.Model.Name, o.Model.Name)
		applyString(&cfg.Model.Path, o.Model.Path)
		// An explicit path supersedes the defaulted catalog name unless the
		// declaration also names a model; ambiguity is caught at validation.
		if o.Model.Path != nil && o.Model.Name == nil {
			cfg.Model.Name = ""
		}
	}
	if o.Hotkey != nil {
		applyString(&cfg.Hotkey.Key, o.Hotkey.Key)
		if o.Hotkey.Modifiers != nil {
			cfg.Hotkey.Modifiers = o.Hotkey.Modifiers
		}
	}
	if o.Audio != nil {
		applyString(&cfg.Audio.Device, o.Audio.Device)
		applyInt(&cfg.Audio.MaxDurationSecs, o.Audio.MaxDurationSecs)
		if o.Audio.Feedback != nil {
			applyBool(&cfg.Audio.Feedback.Enable, o.Audio.Feedback.Enable)
			applyFloat(&cfg.Audio.Feedback.Volume, o.Audio.Feedback.Volume)
			applyString(&cfg.Audio.Feedback.StartSound, o.Audio.Feedback.StartSound)
			applyString(&cfg.Audio.Feedback.StopSound, o.Audio.Feedback.StopSound)
		}
	}
	if o.Whisper != nil {
		applyString(&cfg.Whisper.Language, o.Whisper.Language)
		applyBool(&cfg.Whisper.Translate, o.Whisper.Translate)
		if o.Whisper.Threads != nil {
			threads := *o.Whisper.Threads
			cfg.Whisper.Threads = &threads
		}
		applyBool(&cfg.Whisper.GPUIsolation, o.Whisper.GPUIsolation)
		applyString(&cfg.Whisper.InitialPrompt, o.Whisper.InitialPrompt)
	}
	if o.Output != nil {
		applyString(&cfg.Output.Mode, o.Output.Mode)
		if o.Output.Notification != nil {
			applyBool(&cfg.Output.Notification.OnRecordingStart, o.Output.Notification.OnRecordingStart)
			applyBool(&cfg.Output.Notification.OnRecordingStop, o.Output.Notification.OnRecordingStop)
		}
		applyString(&cfg.Output.PostCommand, o.Output.PostCommand)
	}
	if o.Status != nil {
		applyString(&cfg.Status.IconTheme, o.Status.IconTheme)
		if o.Status.Icons != nil {
			cfg.Status.Icons = o.Status.Icons
		}
	}
	if o.StateFile != nil {
		applyBool(&cfg.StateFile.Enable, o.StateFile.Enable)
		applyString(&cfg.StateFile.Path, o.StateFile.Path)
	}
	if o.Service != nil {
		applyBool(&cfg.Service.Enable, o.Service.Enable)
		applyInt(&cfg.Service.RestartSec, o.Service.RestartSec)
	}
	if o.Settings != nil {
		cfg.Settings = o.Settings
	}

	return cfg
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// wrapDecodeError converts yaml unknown-field failures into schema errors.
func wrapDecodeError(err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, msg := range typeErr.Errors {
			if strings.Contains(msg, "not found in type") {
				return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(typeErr.Errors, "; "))
			}
		}
	}
	return fmt.Errorf("decode declaration: %w", err)
}

// ensureSingleDocument rejects trailing YAML documents after the declaration.
func ensureSingleDocument(decoder *yaml.Decoder) error {
	var extra any
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode declaration: %w", err)
	}
	return errors.New("declaration must contain a single YAML document")
}
