package loader

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/logging"
)

// Loader resolves drill targets through a cache in front of a Source.
type Loader struct {
	source  Source
	cache   *FileStore
	latency time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithCache puts store in front of the source.
func WithCache(store *FileStore) Option {
	return func(l *Loader) { l.cache = store }
}

// WithLatency delays every source read, for demonstrating asynchronous drills.
func WithLatency(d time.Duration) Option {
	return func(l *Loader) { l.latency = d }
}

// New creates a Loader over source.
func New(source Source, opts ...Option) *Loader {
	l := &Loader{source: source}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the series for id, from cache when fresh.
func (l *Loader) Load(ctx context.Context, id string) (chart.SeriesOptions, error) {
	log := logging.FromContext(ctx)

	if l.cache != nil && l.cache.IsEnabled() {
		entry, err := l.cache.Get(id)
		switch {
		case err == nil:
			log.Debug().
				Str("component", "loader").
				Str("operation", "load").
				Str("target", id).
				Msg("cache hit")
			return entry.Series, nil
		case errors.Is(err, ErrCacheNotFound), errors.Is(err, ErrCacheExpired):
		default:
			log.Warn().
				Str("component", "loader").
				Err(err).
				Str("target", id).
				Msg("cache read failed, loading from source")
		}
	}

	if l.latency > 0 {
		timer := time.NewTimer(l.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return chart.SeriesOptions{}, ctx.Err()
		case <-timer.C:
		}
	}

	opts, err := l.source.Load(ctx, id)
	if err != nil {
		return chart.SeriesOptions{}, fmt.Errorf("loading drill target: %w", err)
	}

	if l.cache != nil && l.cache.IsEnabled() {
		if setErr := l.cache.Set(id, opts); setErr != nil {
			log.Warn().
				Str("component", "loader").
				Err(setErr).
				Str("target", id).
				Msg("failed to cache drill target")
		}
	}

	log.Debug().
		Str("component", "loader").
		Str("operation", "load").
		Str("target", id).
		Int("points", len(opts.Data)).
		Msg("drill target loaded")
	return opts, nil
}

// Prefetch loads every id concurrently. Failures do not cancel the other
// loads; they are joined into the returned error.
func (l *Loader) Prefetch(ctx context.Context, ids []string) (map[string]chart.SeriesOptions, error) {
	var mu sync.Mutex
	out := make(map[string]chart.SeriesOptions, len(ids))
	var errs []error

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, id := range ids {
		g.Go(func() error {
			opts, err := l.Load(gCtx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				return nil
			}
			out[id] = opts
			return nil
		})
	}
	_ = g.Wait()

	return out, errors.Join(errs...)
}
