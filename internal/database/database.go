package database

import (
	"context"
	"fmt"

	"github.com/blues/decentrafund/internal/config"
	"github.com/blues/decentrafund/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DSN 生成 postgres 连接串
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true, // 禁用复数表名
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&model.CampaignModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedCampaigns 活动表为空时写入精选活动, 返回写入的行数
func SeedCampaigns(ctx context.Context, db *gorm.DB, campaigns []model.RawCampaign) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CampaignModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]model.CampaignModel, len(campaigns))
	for i, c := range campaigns {
		rows[i] = model.NewCampaignModel(c, i)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed campaigns: %w", err)
	}
	return len(rows), nil
}
