package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/model"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheKey 精选活动快照的缓存键
const DefaultCacheKey = "decentrafund:featured:v1"

// CachedSource 使用 Redis 缓存上游数据源的快照.
// 缓存读写失败时直接回退到上游数据源.
type CachedSource struct {
	inner  CampaignSource
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCachedSource 创建缓存数据源
func NewCachedSource(inner CampaignSource, client *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner:  inner,
		client: client,
		key:    DefaultCacheKey,
		ttl:    ttl,
	}
}

// NewRedisClient 创建并检查 Redis 连接
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Fetch 优先读取缓存, 未命中时拉取上游并写入缓存
func (s *CachedSource) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	campaigns, err := s.load(ctx)
	if err == nil {
		return campaigns, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn("Failed to read campaign cache: %v", err)
	}

	return s.Refresh(ctx)
}

// Refresh 拉取上游数据并覆盖缓存
func (s *CachedSource) Refresh(ctx context.Context) ([]model.RawCampaign, error) {
	campaigns, err := s.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(campaigns)
	if err != nil {
		logger.Warn("Failed to encode campaign snapshot: %v", err)
		return campaigns, nil
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		logger.Warn("Failed to write campaign cache: %v", err)
	}
	return campaigns, nil
}

func (s *CachedSource) load(ctx context.Context) ([]model.RawCampaign, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		return nil, err
	}

	var campaigns []model.RawCampaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, fmt.Errorf("decode campaign cache: %w", err)
	}
	return campaigns, nil
}
