package repository

import "context"

// KVRepo stores opaque string values under string keys. Each Put replaces
// the whole value for its key.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
