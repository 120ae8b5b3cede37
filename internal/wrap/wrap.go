// Package wrap composes the daemon executable with its runtime tool
// dependencies via a PATH-prepending wrapper, never touching the binary.
package wrap

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// RuntimeDeps is the fixed set of tools the dictation daemon shells out to at
// runtime: typing, clipboard, paste injection, notifications, audio cues.
var RuntimeDeps = []string{"wtype", "wl-copy", "ydotool", "notify-send", "pactl"}

// Dep is one resolved runtime dependency.
type Dep struct {
	Name string
	Dir  string
}

// Ref is a wrapped executable reference: the original executable plus the
// resolved dependency search path. Same executable and dependency list always
// yields an equivalent Ref, so the surrounding build system may cache it.
type Ref struct {
	Executable string
	Deps       []Dep
}

// LookupFunc resolves a dependency name to its binary path.
type LookupFunc func(name string) (string, error)

// Resolve locates every declared dependency through lookup. Dependencies are
// resolved in declaration order; a missing one fails the whole resolution.
func Resolve(executable string, deps []string, lookup LookupFunc) (Ref, error) {
	if lookup == nil {
		lookup = exec.LookPath
	}

	resolved := make([]Dep, 0, len(deps))
	for _, name := range deps {
		path, err := lookup(name)
		if err != nil {
			return Ref{}, fmt.Errorf("resolve runtime dependency %q: %w", name, err)
		}
		resolved = append(resolved, Dep{Name: name, Dir: filepath.Dir(path)})
	}

	return Ref{Executable: executable, Deps: resolved}, nil
}

// PathDirs returns the dependency directories in order, duplicates collapsed.
func (r Ref) PathDirs() []string {
	seen := make(map[string]struct{}, len(r.Deps))
	dirs := make([]string, 0, len(r.Deps))
	for _, dep := range r.Deps {
		if _, dup := seen[dep.Dir]; dup {
			continue
		}
		seen[dep.Dir] = struct{}{}
		dirs = append(dirs, dep.Dir)
	}
	return dirs
}

// Script renders the POSIX wrapper: dependency dirs prepended to PATH, then
// exec of the original executable with all arguments forwarded.
func (r Ref) Script() []byte {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Generated by voxgen. Do not edit.\n")

	if dirs := r.PathDirs(); len(dirs) > 0 {
		b.WriteString(fmt.Sprintf("PATH=%q:\"$PATH\"\n", strings.Join(dirs, ":")))
		b.WriteString("export PATH\n")
	}

	b.WriteString(fmt.Sprintf("exec %q \"$@\"\n", r.Executable))
	return []byte(b.String())
}
