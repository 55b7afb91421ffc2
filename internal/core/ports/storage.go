package ports

import "context"

// KVStore is the durable string-valued key-value mirror behind the stores. It
// is a passive mirror, not a source of truth except at process start.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known mirror keys.
const (
	KeyTasks    = "tasks"
	KeyUser     = "user"
	KeyViewMode = "viewMode"
	KeyDarkMode = "darkMode"
)
