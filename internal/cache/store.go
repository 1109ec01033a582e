// Package cache is the query/cache layer every screen reads through. It
// wraps remote reads with stale-while-revalidate caching, collapses
// concurrent fetches of one key into a single remote call, and exposes the
// only API through which mutations may invalidate cached state.
package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Options configures one read. The zero value is a disabled read: services
// always gate identity-scoped reads on a non-anonymous principal.
type Options struct {
	// Enabled gates the fetch. When false the read returns the zero value
	// immediately, with no remote call and no error.
	Enabled bool

	// StaleTime is how long a fetched value is served without a refresh.
	// Zero means every read past the first triggers a background refresh.
	StaleTime time.Duration

	// CacheRetention is how long an unused entry survives before eviction.
	// Zero means the entry is never evicted.
	CacheRetention time.Duration

	// RetryCount and RetryDelay bound retries of transient read failures.
	// Authorization errors are never retried.
	RetryCount int
	RetryDelay time.Duration
}

type entry struct {
	data       any
	fetchedAt  time.Time
	staleAt    time.Time
	expireAt   time.Time
	refreshing bool
}

// Store is the process-wide cache. It is explicitly constructed and injected
// so tests get a fresh instance each; nothing outside this package writes
// entries directly.
//
// epoch and gen fence in-flight fetches against invalidation: a fetch only
// stores its result if neither Clear nor a matching Invalidate happened since
// it started, so an acknowledged mutation can never be shadowed by a slow
// fetch carrying pre-mutation data.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	gen      map[string]uint64
	inflight map[string]int
	epoch    uint64
	group    singleflight.Group
	logger   *zap.Logger
	now      func() time.Time
}

func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		entries:  make(map[string]*entry),
		gen:      make(map[string]uint64),
		inflight: make(map[string]int),
		logger:   logger,
		now:      time.Now,
	}
}

// FetchFunc loads the current value of a key from the remote service.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Fetch serves key from the cache, fetching on a miss and refreshing in the
// background when the cached value is stale. Concurrent first fetches of the
// same key share one remote call; a stale value never blocks its readers on
// the refresh.
func Fetch[T any](ctx context.Context, s *Store, key string, fn FetchFunc[T], opts Options) (T, error) {
	var zero T
	if !opts.Enabled {
		return zero, nil
	}

	now := s.now()
	s.mu.Lock()
	s.sweepLocked(now)
	if e, ok := s.entries[key]; ok {
		if v, ok := e.data.(T); ok {
			if opts.CacheRetention > 0 {
				e.expireAt = now.Add(opts.CacheRetention)
			}
			needsRefresh := now.After(e.staleAt) && !e.refreshing
			var epoch, gen uint64
			if needsRefresh {
				e.refreshing = true
				s.inflight[key]++
				epoch, gen = s.epoch, s.gen[key]
			}
			s.mu.Unlock()
			if needsRefresh {
				s.refresh(ctx, key, adapt(fn), opts, epoch, gen)
			}
			return v, nil
		}
		// type changed under the key; treat as a miss
		delete(s.entries, key)
	}
	// register the key so a prefix Invalidate can fence an in-flight fetch
	if _, ok := s.gen[key]; !ok {
		s.gen[key] = 0
	}
	s.inflight[key]++
	epoch, gen := s.epoch, s.gen[key]
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		val, err := s.fetchWithRetry(ctx, adapt(fn), opts)
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(key, val, opts, epoch, gen)
		return val, nil
	})
	s.fetchDone(key)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// fetchDone releases one in-flight reference on key. Once the last reference
// is gone and no entry remains, the fencing record is dropped too, so the gen
// map cannot grow with every identity-scoped key ever fetched.
func (s *Store) fetchDone(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[key]--; s.inflight[key] > 0 {
		return
	}
	delete(s.inflight, key)
	if _, ok := s.entries[key]; !ok {
		delete(s.gen, key)
	}
}

func adapt[T any](fn FetchFunc[T]) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) { return fn(ctx) }
}

// refresh re-fetches a stale key without blocking its readers. The attempt is
// detached from the caller's cancellation (a view navigating away must not
// abort a refresh other views may still observe) but keeps the caller's
// context values so the remote call stays attributed to the same identity. A
// failed refresh keeps the last good value.
func (s *Store) refresh(ctx context.Context, key string, fn func(ctx context.Context) (any, error), opts Options, epoch, gen uint64) {
	detached := context.WithoutCancel(ctx)
	go func() {
		defer s.fetchDone(key)
		v, err := s.fetchWithRetry(detached, fn, opts)
		if err != nil {
			s.mu.Lock()
			if e, ok := s.entries[key]; ok {
				e.refreshing = false
			}
			s.mu.Unlock()
			s.logger.Warn("background refresh failed, keeping cached value",
				zap.String("key", key), zap.Error(err))
			return
		}
		s.storeIfCurrent(key, v, opts, epoch, gen)
	}()
}

// storeIfCurrent writes the fetched value unless the key was invalidated or
// the store cleared while the fetch was in flight; such results are dropped.
func (s *Store) storeIfCurrent(key string, v any, opts Options, epoch, gen uint64) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch || s.gen[key] != gen {
		if e, ok := s.entries[key]; ok {
			e.refreshing = false
		}
		return
	}
	e := &entry{
		data:      v,
		fetchedAt: now,
		staleAt:   now.Add(opts.StaleTime),
	}
	if opts.CacheRetention > 0 {
		e.expireAt = now.Add(opts.CacheRetention)
	}
	s.entries[key] = e
}

// permanentError is implemented by errors that retrying cannot fix, such as
// the backend's authorization failures.
type permanentError interface {
	Permanent() bool
}

func retryable(err error) bool {
	if err == context.Canceled || err == context.DeadlineExceeded {
		return false
	}
	var p permanentError
	if errors.As(err, &p) && p.Permanent() {
		return false
	}
	return true
}

func (s *Store) fetchWithRetry(ctx context.Context, fn func(ctx context.Context) (any, error), opts Options) (any, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt >= opts.RetryCount || !retryable(err) {
			return nil, lastErr
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
}

// Invalidate evicts every entry matching one of the keys (exactly, or as a
// "<key>/..." prefix). Eviction rather than stale-marking: once a mutation
// has been acknowledged, no reader may observe pre-mutation data, so the next
// read must block on a fresh fetch instead of being served the old value.
// In-flight fetches of matching keys are fenced off and their results
// dropped.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.gen {
		for _, want := range keys {
			if k == want || strings.HasPrefix(k, want+"/") {
				delete(s.entries, k)
				if s.inflight[k] > 0 {
					s.gen[k]++
				} else {
					delete(s.gen, k)
				}
				s.group.Forget(k)
				break
			}
		}
	}
}

// Clear drops every entry. Called on login and logout so one identity's
// cached reads can never leak to another.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.gen {
		s.group.Forget(k)
		if s.inflight[k] == 0 {
			delete(s.gen, k)
		}
	}
	s.entries = make(map[string]*entry)
	s.epoch++
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if !e.expireAt.IsZero() && now.After(e.expireAt) {
			delete(s.entries, k)
			if s.inflight[k] == 0 {
				delete(s.gen, k)
			}
		}
	}
}
