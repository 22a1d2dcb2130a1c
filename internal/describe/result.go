package describe

// Result carries either a value or the error that prevented producing it
type Result[T any] struct {
	Value T
	Err   error
}

// ResultOf wraps a (value, error) pair
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}
	return Result[T]{Value: v}
}

func (r Result[T]) Ok() bool {
	return r.Err == nil
}

func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

// OrElse returns the value, or fallback when the result is a failure
func (r Result[T]) OrElse(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}
