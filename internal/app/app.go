package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/voxtype/voxgen/internal/cli"
	"github.com/voxtype/voxgen/internal/doctor"
	"github.com/voxtype/voxgen/internal/engine"
	"github.com/voxtype/voxgen/internal/logging"
	"github.com/voxtype/voxgen/internal/model"
	"github.com/voxtype/voxgen/internal/options"
	"github.com/voxtype/voxgen/internal/validate"
	"github.com/voxtype/voxgen/internal/version"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Fetcher and Lookup override the default collaborators in tests.
	Fetcher model.Fetcher
	Lookup  func(name string) (string, error)
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("voxgen"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("voxgen"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	if parsed.Command == cli.CommandModels {
		return r.commandModels()
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	loaded, err := options.Load(parsed.DeclarationPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load declaration failed", "error", err.Error())
		return 1
	}
	if !loaded.Exists {
		fmt.Fprintf(r.Stderr, "warning: declaration %q not found; using defaults\n", loaded.Path)
	}

	outDir, err := options.ResolveOutputDir(parsed.OutDir)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	logger.Info("command start",
		"command", parsed.Command,
		"declaration", loaded.Path,
		"out", outDir,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(loaded, outDir)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandValidate:
		return r.commandValidate(loaded)
	case cli.CommandGenerate:
		return r.commandGenerate(ctx, loaded, outDir, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

func (r Runner) commandModels() int {
	for _, name := range model.Names() {
		entry, err := model.Lookup(name)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(r.Stdout, "%-16s %-8s sha256:%s\n", entry.Name, entry.SizeLabel, entry.SHA256[:12])
	}
	return 0
}

// commandValidate checks the declaration without fetching or writing anything.
func (r Runner) commandValidate(loaded options.Loaded) int {
	failed := false

	if sel, err := loaded.Options.Model.Selection(); err != nil {
		fmt.Fprintf(r.Stdout, "[FAIL] model: %v\n", err)
		failed = true
	} else if sel.Kind == options.SelectionCatalog {
		if _, err := model.Lookup(sel.Name); err != nil {
			fmt.Fprintf(r.Stdout, "[FAIL] model.name: %v\n", err)
			failed = true
		}
	}

	if err := validate.Check(loaded.Options); err != nil {
		var vErr *validate.Error
		if !errors.As(err, &vErr) {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return 1
		}
		for _, v := range vErr.Violations {
			fmt.Fprintf(r.Stdout, "[FAIL] %s: %s\n", v.FieldPath, v.Reason)
		}
		failed = true
	}

	if failed {
		return 1
	}
	fmt.Fprintln(r.Stdout, "declaration OK")
	return 0
}

func (r Runner) commandGenerate(ctx context.Context, loaded options.Loaded, outDir string, logger *slog.Logger) int {
	cacheDir, err := model.CachePath()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	fetcher := r.Fetcher
	if fetcher == nil {
		fetcher = model.HTTPFetcher{}
	}

	resolver := model.NewResolver(fetcher, cacheDir, logger)
	eng := engine.New(resolver, r.Lookup, logger)
	paths := engine.Paths{Dir: outDir}

	artifacts, err := eng.Run(ctx, loaded.Options, paths)
	if err != nil {
		var vErr *validate.Error
		if errors.As(err, &vErr) {
			for _, v := range vErr.Violations {
				fmt.Fprintf(r.Stderr, "[FAIL] %s: %s\n", v.FieldPath, v.Reason)
			}
			return 1
		}
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("generation failed", "error", err.Error())
		return 1
	}

	written, err := engine.WriteAll(artifacts, paths)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("write artifacts failed", "error", err.Error())
		return 1
	}

	for _, path := range written {
		fmt.Fprintln(r.Stdout, path)
	}
	return 0
}
