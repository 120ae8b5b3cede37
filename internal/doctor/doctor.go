// Package doctor runs generation readiness diagnostics for the declaration,
// model selection, runtime dependencies, and output location.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/voxtype/voxgen/internal/model"
	"github.com/voxtype/voxgen/internal/options"
	"github.com/voxtype/voxgen/internal/wrap"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes declaration/model/environment checks for a loaded declaration.
func Run(loaded options.Loaded, outDir string) Report {
	checks := []Check{}

	message := fmt.Sprintf("loaded %q", loaded.Path)
	if !loaded.Exists {
		message = fmt.Sprintf("%q not found; defaults apply", loaded.Path)
	}
	checks = append(checks, Check{Name: "declaration", Pass: true, Message: message})

	checks = append(checks, checkModel(loaded.Options))

	for _, dep := range wrap.RuntimeDeps {
		checks = append(checks, checkBinary(dep))
	}

	checks = append(checks, checkOutputDir(outDir))

	return Report{Checks: checks}
}

// checkModel verifies the model selection without triggering a fetch.
func checkModel(opts options.Options) Check {
	sel, err := opts.Model.Selection()
	if err != nil {
		return Check{Name: "model", Pass: false, Message: err.Error()}
	}

	switch sel.Kind {
	case options.SelectionExplicit:
		if _, err := os.Stat(sel.Path); err != nil {
			return Check{Name: "model", Pass: false, Message: fmt.Sprintf("explicit model path: %v", err)}
		}
		return Check{Name: "model", Pass: true, Message: fmt.Sprintf("explicit model at %q", sel.Path)}
	default:
		entry, err := model.Lookup(sel.Name)
		if err != nil {
			return Check{Name: "model", Pass: false, Message: err.Error()}
		}
		return Check{
			Name:    "model",
			Pass:    true,
			Message: fmt.Sprintf("catalog model %q (%s, digest %s…)", entry.Name, entry.SizeLabel, entry.SHA256[:12]),
		}
	}
}

// checkBinary validates that a runtime dependency exists in PATH.
func checkBinary(bin string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s", path)}
}

// checkOutputDir verifies the artifact directory exists or can be created.
func checkOutputDir(dir string) Check {
	if strings.TrimSpace(dir) == "" {
		return Check{Name: "output", Pass: false, Message: "output directory is empty"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Check{Name: "output", Pass: false, Message: fmt.Sprintf("cannot create %q: %v", dir, err)}
	}
	return Check{Name: "output", Pass: true, Message: fmt.Sprintf("writable at %q", dir)}
}
