// Package polling provides blocking wait helpers for coordinating against
// eventually-consistent systems: streaming clusters, model deployments, SQL
// compute statements. Both helpers are plain sleep-based loops intended for
// test and CLI flows, never for a server request path. Each call is
// independent and reentrant; no state is shared between invocations.
// Callers needing early cancellation must arrange it inside the getter or
// condition callbacks.
package polling

import (
	"fmt"
	"time"
)

// TimeoutError reports that a poll loop gave up, carrying enough context to
// diagnose the failure without re-running: elapsed wall-clock time, attempt
// count, and the last observed value or error.
type TimeoutError struct {
	Description string
	Elapsed     time.Duration
	Attempts    int
	LastValue   any
	Err         error
}

func (e *TimeoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error polling for %s after %.1fs (%d attempts): %v",
			e.Description, e.Elapsed.Seconds(), e.Attempts, e.Err)
	}
	return fmt.Sprintf("timeout waiting for %s after %.1fs (%d attempts), last value: %v",
		e.Description, e.Elapsed.Seconds(), e.Attempts, e.LastValue)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Options configures Until.
type Options struct {
	// Timeout is the hard wall-clock deadline.
	Timeout time.Duration
	// Interval is the fixed sleep between attempts.
	Interval time.Duration
	// Description names the awaited condition in error messages.
	Description string
}

// Until repeatedly calls getter and returns its value as soon as condition
// accepts it. A getter error counts as a failed attempt and is retried; only
// once the deadline has elapsed is the last error or value wrapped into a
// *TimeoutError.
func Until[T any](getter func() (T, error), condition func(T) bool, opts Options) (T, error) {
	start := time.Now()
	attempts := 0

	for {
		attempts++
		value, err := getter()

		if err == nil && condition(value) {
			return value, nil
		}

		elapsed := time.Since(start)
		if elapsed >= opts.Timeout {
			var zero T
			timeoutErr := &TimeoutError{
				Description: opts.Description,
				Elapsed:     elapsed,
				Attempts:    attempts,
				Err:         err,
			}
			if err == nil {
				timeoutErr.LastValue = value
			}
			return zero, timeoutErr
		}

		time.Sleep(opts.Interval)
	}
}

// BackoffOptions configures WithBackoff.
type BackoffOptions struct {
	// MaxRetries bounds the loop by attempt count rather than wall-clock time.
	MaxRetries int
	// InitialDelay is the wait after the first failed attempt; it doubles
	// after every subsequent one.
	InitialDelay time.Duration
	// Description names the awaited condition in error messages.
	Description string
}

// WithBackoff polls with a doubling delay between a bounded number of
// attempts: attempt i waits InitialDelay * 2^i before the next one. Unlike
// Until, a getter error on the final attempt is wrapped immediately rather
// than swallowed.
func WithBackoff[T any](getter func() (T, error), condition func(T) bool, opts BackoffOptions) (T, error) {
	start := time.Now()
	var zero, last T

	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		value, err := getter()

		if err == nil && condition(value) {
			return value, nil
		}
		if err == nil {
			last = value
		}

		if attempt >= opts.MaxRetries-1 {
			if err != nil {
				return zero, &TimeoutError{
					Description: opts.Description,
					Elapsed:     time.Since(start),
					Attempts:    opts.MaxRetries,
					Err:         err,
				}
			}
			break
		}

		time.Sleep(opts.InitialDelay * (1 << attempt))
	}

	return zero, &TimeoutError{
		Description: opts.Description,
		Elapsed:     time.Since(start),
		Attempts:    opts.MaxRetries,
		LastValue:   last,
	}
}
