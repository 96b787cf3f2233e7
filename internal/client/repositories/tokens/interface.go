// Package tokens persists the administrator session token across runs.
package tokens

import "context"

// Store is a single durable token slot. Absence is reported as an empty
// string, never as an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
