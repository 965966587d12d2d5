// Package observability provides hooks for instrumenting canvas operations.
//
// The canvas packages stay free of metrics backends. Applications that want
// counters or traces register an [OperationHooks] implementation at startup;
// the command-line interface reports every load, slice, transform and write
// through it.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOperationHooks(&myHooks{})
//	    // ... run application
//	}
//
// Callers emit events around each operation:
//
//	start := time.Now()
//	out, err := transform.Rotate(c, theta)
//	observability.Operations().OnTransform(ctx, "rotate", c.PointCount(), out.PointCount(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// OperationHooks receives events about canvas operations.
type OperationHooks interface {
	// OnLoad records a point file being read.
	OnLoad(ctx context.Context, path string, points int, duration time.Duration, err error)

	// OnSlice records a rectangle query. count is the number of points inside.
	OnSlice(ctx context.Context, rect string, count int, duration time.Duration, err error)

	// OnTransform records a transform. Points merged by collisions are
	// in minus out.
	OnTransform(ctx context.Context, name string, in, out int, duration time.Duration, err error)

	// OnWrite records a point file being written.
	OnWrite(ctx context.Context, path string, points int, err error)
}

// NoopOperationHooks is a no-op implementation of OperationHooks.
type NoopOperationHooks struct{}

func (NoopOperationHooks) OnLoad(context.Context, string, int, time.Duration, error)  {}
func (NoopOperationHooks) OnSlice(context.Context, string, int, time.Duration, error) {}
func (NoopOperationHooks) OnTransform(context.Context, string, int, int, time.Duration, error) {
}
func (NoopOperationHooks) OnWrite(context.Context, string, int, error) {}

var (
	operationHooks OperationHooks = NoopOperationHooks{}
	hooksMu        sync.RWMutex
)

// SetOperationHooks registers custom operation hooks. A nil h is ignored.
func SetOperationHooks(h OperationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		operationHooks = h
	}
}

// Operations returns the registered operation hooks.
func Operations() OperationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return operationHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	operationHooks = NoopOperationHooks{}
}
