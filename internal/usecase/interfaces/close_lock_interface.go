package interfaces

import "context"

// ICloseLock keeps accounting closes from overlapping.
//
// Acquire returns a token to hand back to Release, or ErrCloseInProgress when
// another close holds the lock. Release with a stale token returns an error
// and leaves the lock untouched.
type ICloseLock interface {
	Acquire(ctx context.Context) (string, error)
	Release(ctx context.Context, token string) error
}
