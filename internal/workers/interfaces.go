// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together and the periodic device sync worker.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Start may do initial work synchronously, but must return once the worker
// is ready and leave the rest to its own goroutines. Stop cancels those
// goroutines and blocks until they have exited.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) error {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	    return nil
//	}
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}

// SyncTrigger requests an out-of-band sync cycle.
type SyncTrigger interface {
	// Trigger queues one cycle. It returns false when a cycle is already
	// queued and the request was merged into it.
	Trigger() bool
}
