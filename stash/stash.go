// Package stash is the persistence port behind the cart and wishlist
// stores: string-keyed blobs of JSON, one key per session. Adapters
// exist for memory, local files, and Redis. A missing key is not an
// error; callers treat unreadable payloads as empty state.
package stash

import "context"

type Blob interface {
	// Load returns the stored payload and whether the key existed.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
