// Package cachemanager provides a small generic caching layer used to
// hold the loaded project registry for the life of the process.
package cachemanager

import (
	"context"
	"time"
)

// NoExpiration keeps a cached value until the process exits.
const NoExpiration time.Duration = -1

type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
}
