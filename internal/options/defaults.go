package options

// Default returns the canonical fully-defaulted declaration tree.
func Default() Options {
	return Options{
		Package: PackageOptions{
			Name:       "voxtype",
			Executable: "/usr/bin/voxtype",
		},
		Model: ModelOptions{Name: "base.en"},
		Hotkey: HotkeyOptions{
			Key:       "KEY_F12",
			Modifiers: nil,
		},
		Audio: AudioOptions{
			Device:          "default",
			MaxDurationSecs: 60,
			Feedback: FeedbackOptions{
				Enable: false,
				Volume: 0.5,
			},
		},
		Whisper: WhisperOptions{
			Language:     "en",
			Translate:    false,
			GPUIsolation: false,
		},
		Output: OutputOptions{
			Mode: "type",
			Notification: NotificationOptions{
				OnRecordingStart: false,
				OnRecordingStop:  false,
			},
		},
		Status: StatusOptions{
			IconTheme: "emoji",
			Icons:     map[string]string{},
		},
		StateFile: StateFileOptions{
			Enable: false,
			Path:   "",
		},
		Service: ServiceOptions{
			Enable:     true,
			RestartSec: 2,
		},
		Settings: map[string]any{},
	}
}
