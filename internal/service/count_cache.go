package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for the derived dashboard counts.
const (
	CountKeyPatients          = "count:patients"
	CountKeyDoctors           = "count:doctors"
	CountKeyAppointmentsToday = "count:appointments_today"
	CountKeyMedicalRecords    = "count:medical_records"
)

// countTTL bounds staleness of the appointments-today count across the
// midnight rollover; the other counts only change through mutations, which
// invalidate them explicitly.
const countTTL = time.Minute

// CountCache is a read-through cache for dashboard counts. It is advisory:
// lookups that fail fall back to the database.
type CountCache interface {
	Get(ctx context.Context, key string) (int64, bool)
	Set(ctx context.Context, key string, value int64)
}

type redisCountCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisCountCache(client *redis.Client, log *logrus.Logger) CountCache {
	return &redisCountCache{client: client, log: log}
}

func (c *redisCountCache) Get(ctx context.Context, key string) (int64, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read cached count %s: %+v", key, err)
		}
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		c.log.Warnf("Malformed cached count %s=%q: %+v", key, val, err)
		return 0, false
	}
	return count, true
}

func (c *redisCountCache) Set(ctx context.Context, key string, value int64) {
	if err := c.client.Set(ctx, key, value, countTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache count %s: %+v", key, err)
	}
}
