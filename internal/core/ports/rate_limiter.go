package ports

import "context"

// RateLimiter admits or rejects a mutating request for the given principal
// key. A rejection is domain.ErrRateLimited; it happens strictly before the
// guarded operation runs, so no side effects occur for rejected requests.
type RateLimiter interface {
	Admit(ctx context.Context, key string) error
}
