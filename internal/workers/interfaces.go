// Package workers provides the client's background workers and a small
// aggregate for running them together.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
