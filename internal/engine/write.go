package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths lays out the artifact locations under one output directory.
type Paths struct {
	Dir string
}

// Config is the daemon configuration document location.
func (p Paths) Config() string { return filepath.Join(p.Dir, "config.toml") }

// Wrapper is the wrapped executable location.
func (p Paths) Wrapper() string { return filepath.Join(p.Dir, "voxtype-wrapped") }

// Unit is the service unit location.
func (p Paths) Unit() string { return filepath.Join(p.Dir, "voxtype.service") }

// WriteAll writes every artifact wholesale: truncate and replace, never patch.
// The service unit is skipped when the descriptor was not generated; a stale
// unit from a previous pass is removed so the tree matches the declaration.
func WriteAll(artifacts Artifacts, paths Paths) ([]string, error) {
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	written := make([]string, 0, 3)

	if err := os.WriteFile(paths.Config(), artifacts.ConfigTOML, 0o644); err != nil {
		return nil, fmt.Errorf("write config document: %w", err)
	}
	written = append(written, paths.Config())

	if err := os.WriteFile(paths.Wrapper(), artifacts.WrapperScript, 0o755); err != nil {
		return nil, fmt.Errorf("write wrapper: %w", err)
	}
	written = append(written, paths.Wrapper())

	if artifacts.ServiceUnit != nil {
		if err := os.WriteFile(paths.Unit(), artifacts.ServiceUnit, 0o644); err != nil {
			return nil, fmt.Errorf("write service unit: %w", err)
		}
		written = append(written, paths.Unit())
	} else if err := os.Remove(paths.Unit()); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove stale service unit: %w", err)
	}

	return written, nil
}
