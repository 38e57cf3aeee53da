// Package delivery defines the entry points the gateway process serves.
package delivery

import "context"

// Delivery is a long-running server started by the main process.
type Delivery interface {
	Serve(ctx context.Context) error
}
