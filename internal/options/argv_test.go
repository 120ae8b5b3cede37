package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgvHandlesQuotesAndEscapes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{name: "empty", input: "", want: nil},
		{name: "comment", input: "# sed -e ...", want: nil},
		{name: "plain", input: "sed -e s/a/b/", want: []string{"sed", "-e", "s/a/b/"}},
		{name: "double quotes", input: `sh -c "echo done"`, want: []string{"sh", "-c", "echo done"}},
		{name: "single quotes", input: "awk '{print $1}'", want: []string{"awk", "{print $1}"}},
		{name: "escaped space", input: `run my\ file`, want: []string{"run", "my file"}},
		{name: "unterminated quote", input: `sh -c "echo`, wantErr: "unterminated quote"},
		{name: "unterminated escape", input: `run \`, wantErr: "unterminated escape"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			argv, err := ParseArgv(tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, argv)
		})
	}
}
