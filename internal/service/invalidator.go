package service

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// derivedCacheKeys is the single registry of which cached derived queries a
// mutation of each table staleness-invalidates. Adding a cached aggregate
// means adding its key here, nowhere else.
var derivedCacheKeys = map[string][]string{
	entity.Patient{}.TableName():       {CountKeyPatients},
	entity.Doctor{}.TableName():        {CountKeyDoctors},
	entity.Appointment{}.TableName():   {CountKeyAppointmentsToday},
	entity.MedicalRecord{}.TableName(): {CountKeyMedicalRecords},
	entity.Prescription{}.TableName():  {},
}

// DerivedCacheKeys returns the cache keys invalidated by mutating table.
func DerivedCacheKeys(table string) []string {
	return derivedCacheKeys[table]
}

// Invalidator marks derived query results stale after a successful mutation,
// forcing the next read to re-fetch from the store.
type Invalidator interface {
	Invalidate(ctx context.Context, table string)
}

type redisInvalidator struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewInvalidator(client *redis.Client, log *logrus.Logger) Invalidator {
	return &redisInvalidator{client: client, log: log}
}

// Invalidate deletes every cache key derived from table. Failures are
// logged and swallowed: the cache entries carry a TTL, so a missed delete
// means bounded staleness, not a wrong answer forever.
func (i *redisInvalidator) Invalidate(ctx context.Context, table string) {
	keys := DerivedCacheKeys(table)
	if len(keys) == 0 {
		return
	}

	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		i.log.Warnf("Failed to invalidate cache keys %v for table %s: %+v", keys, table, err)
	}
}
