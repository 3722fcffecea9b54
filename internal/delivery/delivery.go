// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport surface (an HTTP server, a worker
// loop). Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
