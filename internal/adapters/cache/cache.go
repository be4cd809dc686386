package cache

// Result is the value stored per key: either a payload or the error that
// produced it. Failed fetches are cached just like successes so a known-bad
// key is not refetched within the TTL window.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

type ResultCache[T any] interface {
	// Retrieve returns the stored result for key, or ok=false when the key
	// is absent or its entry has expired. Expiry is checked on lookup; there
	// is no janitor goroutine.
	Retrieve(key string) (result Result[T], ok bool)
	// Add unconditionally overwrites the entry for key. The new entry
	// expires a full TTL from now.
	Add(key string, result Result[T])
}
