// Package workerpool runs N collectors in parallel across M devices with
// bounded concurrency, per-attempt retry at the session layer, and
// partial-failure semantics (spec.md §4.5).
package workerpool

import (
	"context"
	"errors"
	"sync"

	"github.com/meridian-net/netcollector/pkg/collectorerr"
)

// Result is one device's outcome: Records on success, Err on failure. A
// Cancelled result also carries the context error in Err. Cancelled
// marks a device the pool never attempted (or aborted mid-flight)
// because the run's context was cancelled — spec.md §4.5 is explicit
// that this is "not-attempted", distinct from a genuine per-device
// failure, and callers must not count it as one.
type Result[T any] struct {
	Device    string
	Records   []T
	Err       error
	Cancelled bool
}

// RunStatus summarizes a pool run, per spec.md §4.5.
type RunStatus string

const (
	StatusSuccess RunStatus = "success"
	StatusPartial RunStatus = "partial"
	StatusError   RunStatus = "error"
)

// Aggregate is the pool's overall outcome across every device.
type Aggregate[T any] struct {
	Results []Result[T]
	Status  RunStatus
}

// CollectFunc runs one device's collector. It must return a non-nil error
// to mark the device failed; a nil error with an empty Records slice is a
// legitimate empty-but-successful result.
type CollectFunc[T any] func(ctx context.Context, device string) ([]T, error)

// Run maps devices to fn with bounded concurrency maxWorkers (default 5
// when <= 0). No ordering guarantee across devices; the cancellation
// token is checked between devices. A cancelled run marks every
// not-yet-started device with context.Canceled rather than a failure.
func Run[T any](ctx context.Context, devices []string, maxWorkers int, fn CollectFunc[T]) Aggregate[T] {
	if maxWorkers <= 0 {
		maxWorkers = 5
	}
	if len(devices) == 0 {
		return Aggregate[T]{Status: StatusSuccess}
	}

	sem := make(chan struct{}, maxWorkers)
	results := make([]Result[T], len(devices))

	var wg sync.WaitGroup
	for i, device := range devices {
		select {
		case <-ctx.Done():
			results[i] = Result[T]{Device: device, Err: ctx.Err(), Cancelled: true}
			continue
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, device string) {
			defer wg.Done()
			defer func() { <-sem }()

			records, err := fn(ctx, device)
			results[i] = Result[T]{Device: device, Records: records, Err: err, Cancelled: isCancellation(err)}
		}(i, device)
	}
	wg.Wait()

	return Aggregate[T]{Results: results, Status: classify(results)}
}

// isCancellation reports whether a collector returned because the run's
// context was cancelled mid-attempt, rather than because the device
// itself failed.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// classify applies spec.md §4.5's tri-state rule: success iff every
// device succeeded, error iff none did, partial otherwise. Cancelled
// (not-attempted) devices count toward neither succeeded nor failed —
// they're why a run might land on "partial" even with zero genuine
// failures.
func classify[T any](results []Result[T]) RunStatus {
	var succeeded, failed int
	for _, r := range results {
		switch {
		case r.Cancelled:
			// not-attempted; counts toward neither bucket
		case r.Err != nil:
			failed++
		default:
			succeeded++
		}
	}
	switch {
	case succeeded == len(results):
		return StatusSuccess
	case succeeded == 0:
		return StatusError
	default:
		return StatusPartial
	}
}

// IsRetryableFailure reports whether a device's failure reason is one the
// session/inventory layer would have already retried internally — the
// worker pool itself never re-attempts a failed device (spec.md §4.5,
// §7: "Retriable errors are retried only inside the session acquisition
// layer...").
func IsRetryableFailure(err error) bool {
	return collectorerr.IsRetryable(err)
}
