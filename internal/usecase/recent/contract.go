package recent

import "context"

// Lists is the persistence the store needs: an atomic move-to-front with cap,
// a bounded read, and delete.
type Lists interface {
	PushUnique(ctx context.Context, key, value string, capacity int) error
	Range(ctx context.Context, key string, limit int) ([]string, error)
	Del(ctx context.Context, key string) error
}
