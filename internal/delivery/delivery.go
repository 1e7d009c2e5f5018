// Package delivery defines the common contract for inbound transports.
package delivery

import "context"

// Delivery is implemented by every server the application can run. Serve
// blocks until the server stops or ctx is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
