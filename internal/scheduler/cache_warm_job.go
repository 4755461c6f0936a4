package scheduler

import (
	"context"
	"time"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/model"
	"github.com/go-co-op/gocron/v2"
)

// Refresher 可以主动刷新的数据源, 由 source.CachedSource 实现
type Refresher interface {
	Refresh(ctx context.Context) ([]model.RawCampaign, error)
}

// CacheWarmJob 定时刷新精选活动缓存
type CacheWarmJob struct {
	source   Refresher
	interval time.Duration
	timeout  time.Duration
}

// NewCacheWarmJob 创建缓存预热任务, timeout 为单次刷新的超时
func NewCacheWarmJob(source Refresher, interval, timeout time.Duration) *CacheWarmJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = interval
	}
	return &CacheWarmJob{
		source:   source,
		interval: interval,
		timeout:  timeout,
	}
}

// GetName 获取任务名称
func (j *CacheWarmJob) GetName() string {
	return "featured_cache_warmer"
}

// GetSchedule 获取调度配置
func (j *CacheWarmJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

// Execute 执行任务
func (j *CacheWarmJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	campaigns, err := j.source.Refresh(ctx)
	if err != nil {
		logger.Warn("Failed to warm featured campaign cache: %v", err)
		return
	}
	logger.Debug("Warmed featured campaign cache with %d campaigns", len(campaigns))
}
