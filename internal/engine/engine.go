// Package engine runs the single-pass declaration-to-artifact resolution.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/voxtype/voxgen/internal/compile"
	"github.com/voxtype/voxgen/internal/model"
	"github.com/voxtype/voxgen/internal/options"
	"github.com/voxtype/voxgen/internal/service"
	"github.com/voxtype/voxgen/internal/validate"
	"github.com/voxtype/voxgen/internal/wrap"
)

// Artifacts holds every generated artifact in memory. Nothing touches disk
// until WriteAll, so a failed resolution never leaves partial output behind.
type Artifacts struct {
	ConfigTOML    []byte
	WrapperScript []byte
	ServiceUnit   []byte
	Model         model.Reference
	Wrapped       wrap.Ref
}

// Engine wires the resolver and dependency lookup collaborators together.
type Engine struct {
	Resolver *model.Resolver
	Lookup   wrap.LookupFunc
	Logger   *slog.Logger
}

// New builds an engine. A nil logger discards.
func New(resolver *model.Resolver, lookup wrap.LookupFunc, logger *slog.Logger) Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Engine{Resolver: resolver, Lookup: lookup, Logger: logger}
}

// Run executes one resolution pass: model resolution, then validation, then
// the three independent artifact generators. The generators share no state
// and run concurrently once the tree is validated. Any failure aborts the
// pass with zero artifacts.
func (e Engine) Run(ctx context.Context, opts options.Options, paths Paths) (Artifacts, error) {
	sel, err := opts.Model.Selection()
	if err != nil {
		return Artifacts{}, err
	}

	ref, err := e.Resolver.Resolve(ctx, sel)
	if err != nil {
		return Artifacts{}, err
	}
	e.Logger.Info("model resolved", "kind", string(ref.Kind), "path", ref.LocalPath)

	if err := validate.Check(opts); err != nil {
		return Artifacts{}, err
	}

	var (
		wg sync.WaitGroup

		configTOML []byte
		compileErr error

		wrapped wrap.Ref
		wrapErr error

		descriptor *service.Descriptor
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		configTOML, compileErr = compile.Document(opts, ref)
	}()
	go func() {
		defer wg.Done()
		wrapped, wrapErr = wrap.Resolve(opts.Package.Executable, wrap.RuntimeDeps, e.Lookup)
	}()
	go func() {
		defer wg.Done()
		descriptor = service.Generate(opts, paths.Wrapper())
	}()
	wg.Wait()

	if compileErr != nil {
		return Artifacts{}, fmt.Errorf("compile config: %w", compileErr)
	}
	if wrapErr != nil {
		return Artifacts{}, fmt.Errorf("wrap executable: %w", wrapErr)
	}

	artifacts := Artifacts{
		ConfigTOML: configTOML,
		Model:      ref,
		Wrapped:    wrapped,
	}
	artifacts.WrapperScript = wrapped.Script()
	if descriptor != nil {
		artifacts.ServiceUnit = descriptor.Unit()
	}

	e.Logger.Info("artifacts generated",
		"config_bytes", len(artifacts.ConfigTOML),
		"service_enabled", descriptor != nil,
	)

	return artifacts, nil
}
