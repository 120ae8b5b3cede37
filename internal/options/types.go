// Package options declares, defaults, parses, and normalizes the voxgen declaration tree.
package options

// Options is the fully materialized declaration consumed by the generation engine.
type Options struct {
	Package   PackageOptions   `yaml:"package"`
	Model     ModelOptions     `yaml:"model"`
	Hotkey    HotkeyOptions    `yaml:"hotkey"`
	Audio     AudioOptions     `yaml:"audio"`
	Whisper   WhisperOptions   `yaml:"whisper"`
	Output    OutputOptions    `yaml:"output"`
	Status    StatusOptions    `yaml:"status"`
	StateFile StateFileOptions `yaml:"state_file"`
	Service   ServiceOptions   `yaml:"service"`

	// Settings is the free-form escape hatch. It is never validated against the
	// schema and is deep-merged over the compiled document last, override-wins.
	Settings map[string]any `yaml:"settings"`
}

// PackageOptions identifies the daemon package being deployed.
type PackageOptions struct {
	Name       string `yaml:"name" validate:"required"`
	Executable string `yaml:"executable" validate:"required"`
}

// ModelOptions selects the transcription model by catalog name or explicit path.
type ModelOptions struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// HotkeyOptions binds the push-to-talk key.
type HotkeyOptions struct {
	Key       string   `yaml:"key" validate:"required"`
	Modifiers []string `yaml:"modifiers"`
}

// AudioOptions controls capture device selection and recording limits.
type AudioOptions struct {
	Device          string          `yaml:"device" validate:"required"`
	MaxDurationSecs int             `yaml:"max_duration_secs" validate:"gt=0"`
	Feedback        FeedbackOptions `yaml:"feedback"`
}

// FeedbackOptions controls audible recording start/stop cues.
type FeedbackOptions struct {
	Enable     bool    `yaml:"enable"`
	Volume     float64 `yaml:"volume" validate:"gte=0,lte=1"`
	StartSound string  `yaml:"start_sound"`
	StopSound  string  `yaml:"stop_sound"`
}

// WhisperOptions controls transcription parameters passed to the daemon.
type WhisperOptions struct {
	Language      string `yaml:"language" validate:"required"`
	Translate     bool   `yaml:"translate"`
	Threads       *int   `yaml:"threads" validate:"omitempty,gt=0"`
	GPUIsolation  bool   `yaml:"gpu_isolation"`
	InitialPrompt string `yaml:"initial_prompt"`
}

// OutputOptions controls how transcribed text reaches the focused application.
type OutputOptions struct {
	Mode         string              `yaml:"mode" validate:"oneof=type clipboard paste"`
	Notification NotificationOptions `yaml:"notification"`
	PostCommand  string              `yaml:"post_command"`
}

// NotificationOptions controls desktop notifications around recording.
type NotificationOptions struct {
	OnRecordingStart bool `yaml:"on_recording_start"`
	OnRecordingStop  bool `yaml:"on_recording_stop"`
}

// StatusOptions controls the status-bar icon set exposed via the state file.
// Icons accepts arbitrary per-state overrides layered on top of the theme.
type StatusOptions struct {
	IconTheme string            `yaml:"icon_theme" validate:"oneof=emoji nerd-font text"`
	Icons     map[string]string `yaml:"icons"`
}

// StateFileOptions controls the daemon state file used by bar integrations.
type StateFileOptions struct {
	Enable bool   `yaml:"enable"`
	Path   string `yaml:"path"`
}

// ServiceOptions controls generation of the user service unit.
type ServiceOptions struct {
	Enable     bool `yaml:"enable"`
	RestartSec int  `yaml:"restart_sec" validate:"gte=0"`
}

// Modifiers is the set of hotkey modifier identifiers the daemon understands.
var Modifiers = map[string]struct{}{
	"ctrl":  {},
	"alt":   {},
	"shift": {},
	"super": {},
}
