// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and Periodic, a ticker-driven worker with
// optional exponential backoff.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has fully exited and is safe to call on a worker that never
// started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Task is one unit of periodic work. A non-nil error counts as a failure for
// backoff purposes.
type Task func(ctx context.Context) error
