package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	Client *redis.Client
	ctx    = context.Background()
)

// InitRedis connects to redis. The app degrades gracefully without it:
// callers check Enabled() and skip caching/revocation when it is down.
func InitRedis(logger *zap.Logger) error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	addr := fmt.Sprintf("%s:%s", host, port)

	Client = redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := Client.Ping(ctx).Err(); err != nil {
		logger.Error("redis_connection_failed", zap.Error(err), zap.String("addr", addr))
		Client = nil
		return err
	}

	logger.Info("redis_connected", zap.String("addr", addr))
	return nil
}

func Enabled() bool { return Client != nil }

func Set(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return Client.Set(ctx, key, data, expiration).Err()
}

func Get(key string, dest interface{}) error {
	val, err := Client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func Delete(key string) error {
	return Client.Del(ctx, key).Err()
}

// --- session revocation ---

func revocationKey(jti string) string { return "revoked:" + jti }

// RevokeToken blacklists a JWT id for the remainder of its lifetime.
func RevokeToken(jti string, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	if ttl <= 0 {
		return nil // already expired
	}
	return Client.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

func IsTokenRevoked(jti string) bool {
	if !Enabled() {
		return false
	}
	n, err := Client.Exists(ctx, revocationKey(jti)).Result()
	return err == nil && n > 0
}

// --- progress response cache ---

func ProgressKey(userID uint) string { return fmt.Sprintf("progress:%d", userID) }

// InvalidateProgress drops the cached progress report after a tracker write.
func InvalidateProgress(userID uint) {
	if !Enabled() {
		return
	}
	_ = Delete(ProgressKey(userID))
}

func Close() error {
	if Client != nil {
		return Client.Close()
	}
	return nil
}
