package model

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxtype/voxgen/internal/options"
)

// ErrIntegrityMismatch rejects fetched content whose digest disagrees with the
// catalog pin. The content is discarded, never exposed at the resolved path.
var ErrIntegrityMismatch = errors.New("fetched model digest does not match pinned digest")

// Resolver turns a model selection into a verified local artifact reference.
type Resolver struct {
	Fetcher  Fetcher
	CacheDir string
	Logger   *slog.Logger
}

// NewResolver builds a resolver over a fetch collaborator and cache directory.
func NewResolver(fetcher Fetcher, cacheDir string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{Fetcher: fetcher, CacheDir: cacheDir, Logger: logger}
}

// Resolve maps a selection to a Reference. Explicit paths pass through
// untouched; catalog names are fetched into a content-addressed cache path and
// digest-verified before the path is exposed. Retries are safe: a cached file
// that already matches the pin short-circuits the fetch.
func (r *Resolver) Resolve(ctx context.Context, sel options.Selection) (Reference, error) {
	switch sel.Kind {
	case options.SelectionExplicit:
		return Reference{Kind: KindExplicit, LocalPath: sel.Path}, nil
	case options.SelectionCatalog:
		return r.resolveCatalog(ctx, sel.Name)
	default:
		return Reference{}, fmt.Errorf("resolve model: %w", options.ErrAmbiguousModelSelection)
	}
}

func (r *Resolver) resolveCatalog(ctx context.Context, name string) (Reference, error) {
	entry, err := Lookup(name)
	if err != nil {
		return Reference{}, err
	}

	dest := filepath.Join(r.CacheDir, entry.SHA256[:12]+"-"+entry.File)

	if digest, err := hashFile(dest); err == nil {
		if digest == entry.SHA256 {
			r.Logger.Debug("model cache hit", "model", name, "path", dest)
			return r.reference(entry, dest), nil
		}
		// Stale or truncated cache entry; refetch over it.
		r.Logger.Warn("model cache digest mismatch, refetching", "model", name, "path", dest)
	}

	partial := dest + ".fetch"
	if err := r.Fetcher.Fetch(ctx, entry.URL, partial); err != nil {
		return Reference{}, fmt.Errorf("fetch model %q: %w", name, err)
	}

	digest, err := hashFile(partial)
	if err != nil {
		_ = os.Remove(partial)
		return Reference{}, fmt.Errorf("digest model %q: %w", name, err)
	}
	if digest != entry.SHA256 {
		_ = os.Remove(partial)
		return Reference{}, fmt.Errorf("model %q: %w (want %s, got %s)", name, ErrIntegrityMismatch, entry.SHA256, digest)
	}

	if err := os.Rename(partial, dest); err != nil {
		_ = os.Remove(partial)
		return Reference{}, fmt.Errorf("install model %q: %w", name, err)
	}

	r.Logger.Info("model fetched", "model", name, "digest", digest, "path", dest)
	return r.reference(entry, dest), nil
}

func (r *Resolver) reference(entry CatalogEntry, path string) Reference {
	return Reference{
		Kind:      KindFetched,
		Name:      entry.Name,
		Digest:    entry.SHA256,
		SourceURL: entry.URL,
		LocalPath: path,
	}
}

// hashFile computes the hex sha256 digest of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CachePath applies XDG/home fallback rules for the model cache directory.
func CachePath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CACHE_HOME")); xdg != "" {
		return filepath.Join(xdg, "voxtype", "models"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("unable to resolve user home for model cache")
	}
	return filepath.Join(home, ".cache", "voxtype", "models"), nil
}
