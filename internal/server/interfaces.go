package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// Run serves requests and blocks until ctx ends or serving fails. The
	// listener is drained before Run returns.
	Run(ctx context.Context) error
}
