// Package delivery defines the transports the process serves.
package delivery

import "context"

// Delivery is a long-running transport such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
