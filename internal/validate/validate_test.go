package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxtype/voxgen/internal/options"
)

func TestCheckPassesOnDefaults(t *testing.T) {
	require.NoError(t, Check(options.Normalize(options.Default())))
}

func TestCheckRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*options.Options)
		wantField string
	}{
		{name: "volume above range", mutate: func(o *options.Options) { o.Audio.Feedback.Volume = 1.5 }, wantField: "audio.feedback.volume"},
		{name: "volume below range", mutate: func(o *options.Options) { o.Audio.Feedback.Volume = -0.1 }, wantField: "audio.feedback.volume"},
		{name: "bad output mode", mutate: func(o *options.Options) { o.Output.Mode = "speak" }, wantField: "output.mode"},
		{name: "bad icon theme", mutate: func(o *options.Options) { o.Status.IconTheme = "wingdings" }, wantField: "status.icon_theme"},
		{name: "zero max duration", mutate: func(o *options.Options) { o.Audio.MaxDurationSecs = 0 }, wantField: "audio.max_duration_secs"},
		{name: "negative restart sec", mutate: func(o *options.Options) { o.Service.RestartSec = -1 }, wantField: "service.restart_sec"},
		{name: "empty hotkey", mutate: func(o *options.Options) { o.Hotkey.Key = "" }, wantField: "hotkey.key"},
		{name: "empty device", mutate: func(o *options.Options) { o.Audio.Device = "" }, wantField: "audio.device"},
		{name: "empty language", mutate: func(o *options.Options) { o.Whisper.Language = "" }, wantField: "whisper.language"},
		{name: "zero threads", mutate: func(o *options.Options) { threads := 0; o.Whisper.Threads = &threads }, wantField: "whisper.threads"},
		{name: "empty executable", mutate: func(o *options.Options) { o.Package.Executable = "" }, wantField: "package.executable"},
		{name: "both model fields", mutate: func(o *options.Options) { o.Model = options.ModelOptions{Name: "base.en", Path: "/m.bin"} }, wantField: "model"},
		{name: "neither model field", mutate: func(o *options.Options) { o.Model = options.ModelOptions{} }, wantField: "model"},
		{name: "unknown modifier", mutate: func(o *options.Options) { o.Hotkey.Modifiers = []string{"hyper"} }, wantField: "hotkey.modifiers"},
		{name: "state file without path", mutate: func(o *options.Options) { o.StateFile.Enable = true }, wantField: "state_file.path"},
		{name: "unparseable post command", mutate: func(o *options.Options) { o.Output.PostCommand = `sh -c "oops` }, wantField: "output.post_command"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := options.Normalize(options.Default())
			tc.mutate(&opts)

			err := Check(opts)
			require.Error(t, err)

			var vErr *Error
			require.ErrorAs(t, err, &vErr)

			fields := make([]string, 0, len(vErr.Violations))
			for _, v := range vErr.Violations {
				fields = append(fields, v.FieldPath)
				require.NotEmpty(t, v.Reason)
			}
			require.Contains(t, fields, tc.wantField)
		})
	}
}

func TestCheckAcceptsVolumeAtBoundaries(t *testing.T) {
	for _, volume := range []float64{0.0, 0.7, 1.0} {
		opts := options.Normalize(options.Default())
		opts.Audio.Feedback.Volume = volume
		require.NoError(t, Check(opts), "volume %v must pass", volume)
	}
}

func TestCheckReportsAllViolationsInOnePass(t *testing.T) {
	opts := options.Normalize(options.Default())
	opts.Audio.Feedback.Volume = 2.0
	opts.Output.Mode = "speak"
	opts.Model = options.ModelOptions{}
	opts.Hotkey.Modifiers = []string{"hyper", "meh"}

	err := Check(opts)
	require.Error(t, err)

	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	require.GreaterOrEqual(t, len(vErr.Violations), 5)

	fields := make(map[string]int)
	for _, v := range vErr.Violations {
		fields[v.FieldPath]++
	}
	require.Equal(t, 1, fields["audio.feedback.volume"])
	require.Equal(t, 1, fields["output.mode"])
	require.Equal(t, 1, fields["model"])
	require.Equal(t, 2, fields["hotkey.modifiers"])
}

func TestCheckIgnoresArbitraryStatusIconsAndSettings(t *testing.T) {
	opts := options.Normalize(options.Default())
	opts.Status.Icons = map[string]string{"custom-state": "??", "recording": "R"}
	opts.Settings = map[string]any{"anything": map[string]any{"goes": true}}

	require.NoError(t, Check(opts))
}

func TestErrorRendersFieldPaths(t *testing.T) {
	err := &Error{Violations: []Violation{
		{FieldPath: "audio.feedback.volume", Reason: "must be at most 1"},
		{FieldPath: "model", Reason: "exactly one of model.name or model.path must be set"},
	}}
	msg := err.Error()
	require.Contains(t, msg, "audio.feedback.volume: must be at most 1")
	require.Contains(t, msg, "model: exactly one")
}
