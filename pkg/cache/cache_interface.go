// Package cache khai báo contract JSON cache dùng chung giữa các domain.
package cache

import (
	"context"
	"time"
)

// Cache lưu value dạng JSON theo key.
// Get trả về found=false khi miss, khi đó dest giữ nguyên.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePattern duyệt bằng SCAN, không block Redis như KEYS
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}
