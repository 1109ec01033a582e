package cache

import "context"

// Mutate runs a remote command exactly once (mutations are not idempotent in
// general, so they are never silently retried). On success the declared keys
// are invalidated, strictly after the remote acknowledgment; on failure the
// cache is left untouched and the error goes back to the caller, who owns the
// user-facing messaging.
func Mutate(ctx context.Context, s *Store, fn func(ctx context.Context) error, invalidates ...string) error {
	if err := fn(ctx); err != nil {
		return err
	}
	s.Invalidate(invalidates...)
	return nil
}

// MutateValue is Mutate for commands that return a value, such as the id of a
// newly created shop item.
func MutateValue[T any](ctx context.Context, s *Store, fn func(ctx context.Context) (T, error), invalidates ...string) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.Invalidate(invalidates...)
	return v, nil
}
