// Package locks serializes turns per interview session. Transcript append is
// read-full, compute, append-once; two concurrent answers on one session would
// interleave those spans, so exactly one in-flight turn per session is allowed.
// Sessions are independent of each other and run in parallel freely.
package locks

import "context"

type Locker interface {
	// Acquire blocks until the session lock is held or ctx is done. The
	// returned release function is idempotent.
	Acquire(ctx context.Context, sessionID string) (release func(), err error)
}
