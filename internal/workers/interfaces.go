// Package workers runs the application's background jobs.
//
// A [Worker] blocks in Run until its context ends. [Workers] runs a set of
// them together and stops all of them when the first one fails.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job fails;
// returning nil after ctx ends is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}
