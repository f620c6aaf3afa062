package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

const (
	doctorListKey = "doctors:all"
	doctorListTTL = 60 * time.Second
)

// DoctorCache keeps the public doctor directory listing in redis. A nil
// cache (no REDIS_ADDR configured) disables caching entirely.
type DoctorCache struct {
	client *redis.Client
}

func NewDoctorCache(addr string) *DoctorCache {
	if addr == "" {
		return nil
	}
	return &DoctorCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *DoctorCache) GetList(ctx context.Context) ([]models.Doctor, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, doctorListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var doctors []models.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (c *DoctorCache) SetList(ctx context.Context, doctors []models.Doctor) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	c.client.Set(ctx, doctorListKey, raw, doctorListTTL)
}

func (c *DoctorCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, doctorListKey)
}
