// Package state implements the client's durable key-value store. The
// session keeps its persisted token and user record here; nothing else in
// the client writes durable state.
package state

import "context"

type Repository interface {
	// Get returns the stored value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
