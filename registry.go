package sdffont

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/gogpu/sdffont/internal/parallel"
)

// ImporterFunc builds a FontAsset from font data.
type ImporterFunc func(r io.Reader, cfg Config) (*FontAsset, error)

// Registry maps file extensions to importers. Build one at startup and
// pass it to whatever walks the asset tree; it is not safe to Register
// while another goroutine imports.
type Registry struct {
	importers map[string]ImporterFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[string]ImporterFunc)}
}

// DefaultRegistry returns a registry with the TrueType importer
// registered for ".ttf".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".ttf", Import)
	return r
}

// Register sets the importer for an extension such as ".ttf". Matching is
// case-insensitive and the leading dot is optional.
func (r *Registry) Register(ext string, fn ImporterFunc) {
	r.importers[normalizeExt(ext)] = fn
}

// Lookup returns the importer for an extension.
func (r *Registry) Lookup(ext string) (ImporterFunc, bool) {
	fn, ok := r.importers[normalizeExt(ext)]
	return fn, ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.importers))
	for ext := range r.importers {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Import opens path and runs the importer registered for its extension.
func (r *Registry) Import(path string, cfg Config) (*FontAsset, error) {
	ext := filepath.Ext(path)
	fn, ok := r.Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("sdffont: open font: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return fn(f, cfg)
}

// ImportAll imports several files at once, one goroutine per worker.
// Each import is independent; the result at index i belongs to paths[i].
// If any import fails, the error for the lowest failing index is returned
// and no assets are.
func (r *Registry) ImportAll(paths []string, cfg Config) ([]*FontAsset, error) {
	assets := make([]*FontAsset, len(paths))
	tasks := make([]func() error, len(paths))
	for i, path := range paths {
		tasks[i] = func() error {
			a, err := r.Import(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			assets[i] = a
			return nil
		}
	}

	pool := parallel.NewPool(min(len(paths), runtime.GOMAXPROCS(0)))
	defer pool.Close()
	if err := pool.Run(tasks); err != nil {
		return nil, err
	}
	return assets, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
