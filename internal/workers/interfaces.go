// Package workers manages the background jobs of an application.
// It defines the Worker contract and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and
// keep running until ctx is cancelled or Stop is called. Stop blocks until
// the worker has released everything it started and is safe to call more
// than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
