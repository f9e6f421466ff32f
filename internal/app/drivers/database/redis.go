package database

import (
	"clinic-portal/internal/app/config"
	"context"
	"log"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects the session store backend and exits when it
// cannot be reached, since every request depends on it.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Printf("Successfully connected to Redis at %s (db %d)", rdb.Options().Addr, driverConfig.Redis.DB)
	return rdb
}
