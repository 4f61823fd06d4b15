package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisParams struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (p RedisParams) Addr() string {
	return fmt.Sprintf("%s:%s", p.Host, p.Port)
}

// NewRedisClient connects and pings once so a bad address fails at startup.
func NewRedisClient(ctx context.Context, params RedisParams) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         params.Addr(),
		Password:     params.Password,
		DB:           params.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", params.Addr(), err)
	}

	logrus.Infof("[CACHE] connected to redis at %s (db %d)", params.Addr(), params.DB)
	return rdb, nil
}
