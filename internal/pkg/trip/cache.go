package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/utils"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Bundle is the cached unit: all three candidate lists for one trip request.
type Bundle struct {
	Flights []dto.Flight          `json:"flights"`
	Hotels  []dto.Hotel           `json:"hotels"`
	POIs    []dto.PointOfInterest `json:"pois"`
}

type CandidateCache struct {
	redis RedisClient
}

func NewCandidateCache(redis RedisClient) *CandidateCache {
	return &CandidateCache{
		redis: redis,
	}
}

func (c *CandidateCache) GetLockKey(req dto.TripRequest) string {
	return fmt.Sprintf("trip:lock:%s:%s:%s:%d",
		utils.Slugify(req.Destination), req.StartDate, req.EndDate, req.Travelers)
}

func (c *CandidateCache) GetCacheKey(req dto.TripRequest) string {
	return fmt.Sprintf("trip:cache:%s:%s:%s:%d",
		utils.Slugify(req.Destination), req.StartDate, req.EndDate, req.Travelers)
}

func (c *CandidateCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *CandidateCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *CandidateCache) SetCandidates(ctx context.Context,
	key string,
	bundle Bundle,
	metadata dto.Metadata,
	expiration time.Duration,
) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set candidates: %w", err)
	}

	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	err = c.redis.Set(ctx, key+":metadata", metadataBytes, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}

func (c *CandidateCache) GetCandidates(ctx context.Context, key string) (Bundle, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return Bundle{}, err
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return Bundle{}, err
	}

	return bundle, nil
}

func (c *CandidateCache) GetMetadata(ctx context.Context, key string) (dto.Metadata, error) {
	metadataBytes, err := c.redis.Get(ctx, key+":metadata").Bytes()
	if err != nil {
		return dto.Metadata{}, err
	}

	var metadata dto.Metadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return dto.Metadata{}, err
	}

	return metadata, nil
}
