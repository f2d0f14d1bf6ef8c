// Package kv persists opaque values under string keys in the SQLite "kv"
// table. One repository instance backs one storage scope.
package kv

import (
	"context"
)

// Repository is a key/value store. Get reports a missing key with
// common.ErrorNotFound; Delete of a missing key succeeds.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
