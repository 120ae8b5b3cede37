package options

import (
	"errors"
	"fmt"
	"os"
)

// Loaded captures the resolved declaration path and parsed options tree.
type Loaded struct {
	Path    string
	Options Options
	Exists  bool
}

// Load resolves, reads, and parses the declaration file. A missing file is not
// an error; the defaulted tree applies in full.
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	base := Default()
	content, err := os.ReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Loaded{
				Path:    resolvedPath,
				Options: Normalize(base),
				Exists:  false,
			}, nil
		}
		return Loaded{}, fmt.Errorf("read declaration %q: %w", resolvedPath, err)
	}

	cfg, err := Parse(content, base)
	if err != nil {
		return Loaded{}, fmt.Errorf("parse declaration %q: %w", resolvedPath, err)
	}

	return Loaded{
		Path:    resolvedPath,
		Options: cfg,
		Exists:  true,
	}, nil
}
