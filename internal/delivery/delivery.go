// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, started by the process
// bootstrap and stopped through its lifecycle hooks.
type Delivery interface {
	// Serve blocks and serves requests until the server is shut down.
	Serve(ctx context.Context) error
}
