package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownModel(t *testing.T) {
	entry, err := Lookup("base.en")
	require.NoError(t, err)
	require.Equal(t, "base.en", entry.Name)
	require.Equal(t, "ggml-base.en.bin", entry.File)
	require.Contains(t, entry.URL, "ggml-base.en.bin")
	require.Len(t, entry.SHA256, 64)
}

func TestLookupUnknownModelFails(t *testing.T) {
	_, err := Lookup("base.klingon")
	require.ErrorIs(t, err, ErrUnknownModel)
	require.Contains(t, err.Error(), "base.klingon")
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	require.Contains(t, names, "tiny")
	require.Contains(t, names, "large-v3-turbo")

	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}

	for _, name := range names {
		entry, err := Lookup(name)
		require.NoError(t, err)
		require.Len(t, entry.SHA256, 64, "model %s must pin a full sha256", name)
		require.NotEmpty(t, entry.URL)
		require.NotEmpty(t, entry.File)
	}
}
