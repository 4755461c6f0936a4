package logic

import (
	"context"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

// CampaignCounts 活动表的聚合统计
type CampaignCounts struct {
	Funded  int64 `json:"funded"`
	Failed  int64 `json:"failed"`
	Backers int64 `json:"backers"`
}

// StatsLogic 落地页统计卡片业务逻辑
type StatsLogic struct {
	db       *gorm.DB
	defaults []model.Stat
}

// NewStatsLogic 创建统计业务逻辑, db 为 nil 时只返回配置中的统计数据
func NewStatsLogic(db *gorm.DB, defaults []model.Stat) *StatsLogic {
	return &StatsLogic{db: db, defaults: defaults}
}

// GetStats 获取统计卡片, 数据库查询失败时退回配置值
func (s *StatsLogic) GetStats(ctx context.Context, tag language.Tag) []model.Stat {
	if s.db == nil {
		return append([]model.Stat(nil), s.defaults...)
	}

	var counts CampaignCounts
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS funded,
			COUNT(*) FILTER (WHERE status = ?) AS failed,
			COALESCE(SUM(backers), 0) AS backers
		FROM campaign
	`, model.CampaignStatusSuccess, model.CampaignStatusFailed).Scan(&counts).Error
	if err != nil {
		logger.Warn("获取活动统计失败: %v", err)
		return append([]model.Stat(nil), s.defaults...)
	}

	return ApplyCampaignCounts(s.defaults, counts, message.NewPrinter(tag))
}

// ApplyCampaignCounts 用数据库统计覆盖对应的统计卡片, 其余卡片保持原值
func ApplyCampaignCounts(defaults []model.Stat, counts CampaignCounts, p *message.Printer) []model.Stat {
	stats := append([]model.Stat(nil), defaults...)
	for i := range stats {
		switch stats[i].Key {
		case model.StatProjectsFunded:
			stats[i].Value = p.Sprintf("%d", counts.Funded)
		case model.StatBackers:
			stats[i].Value = p.Sprintf("%d", counts.Backers)
		case model.StatSuccessRate:
			// 没有已结束的活动时保留配置值
			if total := counts.Funded + counts.Failed; total > 0 {
				stats[i].Value = p.Sprintf("%d%%", counts.Funded*100/total)
			}
		}
	}
	return stats
}
