package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyContentReturnsDefaults(t *testing.T) {
	cfg, err := Parse(nil, Default())
	require.NoError(t, err)
	require.Equal(t, Normalize(Default()), cfg)
}

func TestParseAppliesNestedOverridesFieldByField(t *testing.T) {
	declaration := `
hotkey:
  key: KEY_RIGHTALT
audio:
  feedback:
    enable: true
    volume: 0.8
output:
  mode: clipboard
`
	cfg, err := Parse([]byte(declaration), Default())
	require.NoError(t, err)

	require.Equal(t, "KEY_RIGHTALT", cfg.Hotkey.Key)
	require.True(t, cfg.Audio.Feedback.Enable)
	require.Equal(t, 0.8, cfg.Audio.Feedback.Volume)
	require.Equal(t, "clipboard", cfg.Output.Mode)

	// Untouched siblings keep their defaults.
	require.Equal(t, "default", cfg.Audio.Device)
	require.Equal(t, 60, cfg.Audio.MaxDurationSecs)
	require.Equal(t, "en", cfg.Whisper.Language)
}

func TestParseRejectsUnknownFieldsOutsideSettings(t *testing.T) {
	declaration := `
audio:
  devcie: pipewire
`
	_, err := Parse([]byte(declaration), Default())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownField)
	require.Contains(t, err.Error(), "devcie")
}

func TestParseAcceptsArbitrarySettings(t *testing.T) {
	declaration := `
settings:
  experimental:
    beam_size: 5
  whisper:
    language: de
`
	cfg, err := Parse([]byte(declaration), Default())
	require.NoError(t, err)
	require.Equal(t, map[string]any{"beam_size": 5}, cfg.Settings["experimental"])
	require.Equal(t, map[string]any{"language": "de"}, cfg.Settings["whisper"])
}

func TestParseListsReplaceWholesale(t *testing.T) {
	base := Default()
	base.Hotkey.Modifiers = []string{"ctrl", "alt"}

	cfg, err := Parse([]byte("hotkey:\n  modifiers: [super]\n"), base)
	require.NoError(t, err)
	require.Equal(t, []string{"super"}, cfg.Hotkey.Modifiers)
}

func TestParseIsIdempotent(t *testing.T) {
	declaration := []byte(`
model:
  path: /opt/models/custom.bin
hotkey:
  key: KEY_F9
  modifiers: [super, SUPER, ctrl]
whisper:
  threads: 4
settings:
  whisper:
    beam_size: 3
`)

	once, err := Parse(declaration, Default())
	require.NoError(t, err)
	twice, err := Parse(declaration, once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestParseDedupesModifiersPreservingOrder(t *testing.T) {
	cfg, err := Parse([]byte("hotkey:\n  modifiers: [super, ctrl, super, Ctrl, alt]\n"), Default())
	require.NoError(t, err)
	require.Equal(t, []string{"super", "ctrl", "alt"}, cfg.Hotkey.Modifiers)
}

func TestParseExplicitPathClearsDefaultedName(t *testing.T) {
	cfg, err := Parse([]byte("model:\n  path: /opt/models/custom.bin\n"), Default())
	require.NoError(t, err)
	require.Equal(t, "", cfg.Model.Name)
	require.Equal(t, "/opt/models/custom.bin", cfg.Model.Path)
}

func TestParseBothModelFieldsSurviveToValidation(t *testing.T) {
	cfg, err := Parse([]byte("model:\n  name: base.en\n  path: /opt/models/custom.bin\n"), Default())
	require.NoError(t, err)

	_, selErr := cfg.Model.Selection()
	require.ErrorIs(t, selErr, ErrAmbiguousModelSelection)
}

func TestParseRejectsTrailingDocuments(t *testing.T) {
	declaration := "hotkey:\n  key: KEY_F9\n---\nhotkey:\n  key: KEY_F10\n"
	_, err := Parse([]byte(declaration), Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "single YAML document")
}

func TestParseThreadsCopyDoesNotAliasOverlay(t *testing.T) {
	cfg, err := Parse([]byte("whisper:\n  threads: 6\n"), Default())
	require.NoError(t, err)
	require.NotNil(t, cfg.Whisper.Threads)
	require.Equal(t, 6, *cfg.Whisper.Threads)
}
