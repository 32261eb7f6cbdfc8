package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNetwork marks a remote backend that could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrCacheMiss is returned by [Load] for a missing key.
	ErrCacheMiss = errors.New("cache miss")
)

// RetryableError marks a failure worth retrying.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as retryable. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or an error it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var target *RetryableError
	return errors.As(err, &target)
}

const retryAttempts = 3

// retryDelay is the wait before the second attempt. Replaced in tests.
var retryDelay = time.Second

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// retryable, or has run three times. The wait doubles between attempts and
// ends early when ctx is done.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
