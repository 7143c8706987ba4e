package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/campusgrid/campusgrid/storage"
)

// Engine answers catalog queries from an in-memory index built out of the
// document store. Build once, read forever: queries are lock-free reads of
// an immutable snapshot.
type Engine struct {
	repo     storage.CatalogRepository
	logger   *slog.Logger
	poolSize int

	// snap holds the current index snapshot; nil until the first build.
	snap atomic.Pointer[snapshot]

	// buildMu makes builds single-flight: racing cold-start callers block
	// here and then find the snapshot already present.
	buildMu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used to materialize documents
// during a build. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		e.poolSize = size
		return nil
	}
}

// NewEngine creates an engine over the given catalog repository.
// The engine is not ready until Initialize has completed.
func NewEngine(repo storage.CatalogRepository, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	e := &Engine{
		repo:     repo,
		logger:   slog.Default(),
		poolSize: poolSize,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Initialize builds the index if it has not been built yet. Concurrent
// callers share one document-store read: whoever loses the race blocks
// until the winner's build finishes and then returns without building.
// A failed build is not sticky; a later Initialize retries.
func (e *Engine) Initialize(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()
	if e.snap.Load() != nil {
		return nil
	}
	return e.rebuildLocked(ctx)
}

// Rebuild unconditionally builds a fresh snapshot from the document store
// and swaps it in atomically. Queries keep being served from the old
// snapshot until the swap.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()
	return e.rebuildLocked(ctx)
}

// Ready reports whether a build has completed.
func (e *Engine) Ready() bool {
	return e.snap.Load() != nil
}

// snapshot returns the current index or ErrNotReady before the first build.
func (e *Engine) snapshot() (*snapshot, error) {
	s := e.snap.Load()
	if s == nil {
		return nil, ErrNotReady
	}
	return s, nil
}
