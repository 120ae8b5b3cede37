package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
}

func TestParseCommandWithDeclaration(t *testing.T) {
	parsed, err := Parse([]string{"--declaration", "/tmp/voxtype.yaml", "generate"})
	require.NoError(t, err)
	require.Equal(t, CommandGenerate, parsed.Command)
	require.Equal(t, "/tmp/voxtype.yaml", parsed.DeclarationPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
		wantPath string
		wantOut  string
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantCmd:  CommandVersion,
			wantHelp: false,
		},
		{
			name:    "declaration after command",
			args:    []string{"validate", "--declaration", "/tmp/d"},
			wantErr: "unexpected arguments after command",
		},
		{
			name:    "missing declaration path",
			args:    []string{"--declaration"},
			wantErr: "requires a path",
		},
		{
			name:    "missing out dir",
			args:    []string{"--out"},
			wantErr: "requires a directory",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: "unknown flag",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: "unknown command",
		},
		{
			name:     "valid models command",
			args:     []string{"models"},
			wantCmd:  CommandModels,
			wantHelp: false,
		},
		{
			name:     "generate with both flags",
			args:     []string{"--declaration", "/tmp/d", "--out", "/tmp/o", "generate"},
			wantCmd:  CommandGenerate,
			wantHelp: false,
			wantPath: "/tmp/d",
			wantOut:  "/tmp/o",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
			require.Equal(t, tc.wantPath, parsed.DeclarationPath)
			require.Equal(t, tc.wantOut, parsed.OutDir)
		})
	}
}

func TestHelpTextIncludesCoreCommands(t *testing.T) {
	text := HelpText("voxgen")
	require.Contains(t, text, "generate")
	require.Contains(t, text, "validate")
	require.Contains(t, text, "models")
	require.Contains(t, text, "doctor")
	require.Contains(t, text, "--declaration PATH")
	require.Contains(t, text, "--out DIR")
}
