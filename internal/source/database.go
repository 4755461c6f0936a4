package source

import (
	"context"
	"fmt"

	"github.com/blues/decentrafund/internal/model"
	"gorm.io/gorm"
)

// DatabaseSource 从数据库读取精选活动
type DatabaseSource struct {
	db    *gorm.DB
	limit int
}

// NewDatabaseSource 创建数据库数据源, limit<=0 表示不限制
func NewDatabaseSource(db *gorm.DB, limit int) *DatabaseSource {
	return &DatabaseSource{db: db, limit: limit}
}

// Fetch 按 sort_order, id 顺序读取精选活动
func (s *DatabaseSource) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	var rows []model.CampaignModel

	query := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC").
		Order("id ASC")
	if s.limit > 0 {
		query = query.Limit(s.limit)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("获取精选活动失败: %w", err)
	}

	campaigns := make([]model.RawCampaign, len(rows))
	for i := range rows {
		campaigns[i] = rows[i].ToRawCampaign()
	}
	return campaigns, nil
}
