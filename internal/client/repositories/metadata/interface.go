// Package metadata is the client's durable key-value store. It holds the
// handful of string values that must survive a restart, such as the
// persisted session identity.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// Delete removes the given keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
