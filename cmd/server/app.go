package main

import (
	"fmt"

	"github.com/blues/decentrafund/internal/config"
	"github.com/blues/decentrafund/internal/database"
	"github.com/blues/decentrafund/internal/ethereum"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/logic"
	"github.com/blues/decentrafund/internal/media"
	"github.com/blues/decentrafund/internal/model"
	"github.com/blues/decentrafund/internal/source"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// app 进程内共享的依赖
type app struct {
	cfg *config.Config

	db        *gorm.DB
	ethClient *ethereum.Client
	redis     *redis.Client

	source source.CampaignSource
	cached *source.CachedSource

	landing *logic.LandingLogic
	stats   *logic.StatsLogic
}

// newApp 按配置组装数据源和业务逻辑
func newApp(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	if cfg.Database.Enabled || cfg.Source.Kind == "database" {
		db, err := database.Init(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
	}

	src, err := a.buildSource()
	if err != nil {
		a.close()
		return nil, err
	}
	a.source = src

	if cfg.Cache.Enabled {
		client, err := source.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			// 缓存不可用时直接读取数据源
			logger.Warn("Redis unavailable, serving campaigns without cache: %v", err)
		} else {
			a.redis = client
			a.cached = source.NewCachedSource(src, client, cfg.Cache.TTL)
			a.source = a.cached
		}
	}

	images, err := buildImageResolver(cfg.Storage)
	if err != nil {
		a.close()
		return nil, err
	}

	a.landing = logic.NewLandingLogic(a.source,
		logic.WithImageResolver(images),
		logic.WithFetchTimeout(cfg.Landing.FetchTimeout),
		logic.WithUnitDecimals(cfg.Landing.UnitDecimals),
	)
	a.stats = logic.NewStatsLogic(a.db, statsFromConfig(cfg.Landing.Stats))

	logger.Info("Campaign source %q ready (cache: %t)", cfg.Source.Kind, a.cached != nil)
	return a, nil
}

func (a *app) buildSource() (source.CampaignSource, error) {
	switch a.cfg.Source.Kind {
	case "", "stub":
		return source.NewStubSource(), nil
	case "file":
		return source.NewFileSource(a.cfg.Source.File), nil
	case "database":
		return source.NewDatabaseSource(a.db, a.cfg.Source.Limit), nil
	case "chain":
		client, err := ethereum.Dial(a.cfg.Chain.RpcUrl, a.cfg.Chain.ContractAddress)
		if err != nil {
			return nil, err
		}
		a.ethClient = client
		return source.NewChainSource(client, a.cfg.Chain.Workers, a.cfg.Source.Limit), nil
	default:
		return nil, fmt.Errorf("unknown campaign source %q", a.cfg.Source.Kind)
	}
}

func buildImageResolver(cfg config.StorageConfig) (logic.ImageResolver, error) {
	if !cfg.Enabled {
		return media.Passthrough{Fallback: cfg.Fallback}, nil
	}
	return media.NewMinioResolver(media.MinioConfig{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
		TTL:       cfg.PresignTTL,
		Fallback:  cfg.Fallback,
	})
}

func statsFromConfig(stats []config.StatConfig) []model.Stat {
	out := make([]model.Stat, len(stats))
	for i, s := range stats {
		out[i] = model.Stat{Key: s.Key, Value: s.Value, Label: s.Label}
	}
	return out
}

// close 释放外部连接
func (a *app) close() {
	if a.ethClient != nil {
		a.ethClient.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warn("Failed to close redis client: %v", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
