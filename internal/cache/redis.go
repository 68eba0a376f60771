package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard snapshot cache key
const dashboardKey = "dashboard:snapshot"

// How long a dashboard snapshot stays fresh. Writes to policies, customers
// or leads invalidate it early.
const dashboardTTL = 5 * time.Minute

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: on failure
// the client stays nil and every helper degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedDashboard returns the cached dashboard snapshot if available.
func GetCachedDashboard(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheDashboard stores a freshly computed dashboard snapshot.
func CacheDashboard(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, dashboardKey, data, dashboardTTL)
}

// InvalidateDashboard drops the cached snapshot after a write to any of the
// collections the aggregation reads.
func InvalidateDashboard(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, dashboardKey)
}
