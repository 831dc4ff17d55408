// Package metadata is a small key/value store on the local SQLite database.
// The client keeps its durable session state here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key.
// Get reports found=false, with a nil error, when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
