package repositories

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStoreInterface defines the contract for the durable store holding the ledger state.
// Get returns ErrKeyNotFound when nothing is stored under the key. Delete of a missing key is not an error.
type KeyValueStoreInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
