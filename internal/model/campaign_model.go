package model

import (
	"time"
)

// CampaignModel 活动表模型
type CampaignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`

	// 众筹信息, 基础单位的十进制字符串
	GoalAmount   string `json:"goal_amount" gorm:"type:numeric(78,0);not null"`
	RaisedAmount string `json:"raised_amount" gorm:"type:numeric(78,0);default:0"`

	// 时间信息
	Deadline time.Time `json:"deadline" gorm:"not null"`

	// 展示
	Featured  bool           `json:"featured" gorm:"index;default:false"`
	SortOrder int            `json:"sort_order" gorm:"default:0"`
	Status    CampaignStatus `json:"status" gorm:"default:'active'"`

	// 创建者信息
	CreatorAddress string `json:"creator_address"`
	Backers        int64  `json:"backers" gorm:"default:0"`
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"    // 进行中
	CampaignStatusSuccess   CampaignStatus = "success"   // 成功
	CampaignStatusFailed    CampaignStatus = "failed"    // 失败
	CampaignStatusCancelled CampaignStatus = "cancelled" // 已取消
)

// TableName 自定义表名
func (CampaignModel) TableName() string {
	return "campaign"
}

// ToRawCampaign 将数据库模型转换为原始活动数据
func (m *CampaignModel) ToRawCampaign() RawCampaign {
	raised := m.RaisedAmount
	if raised == "" {
		raised = "0"
	}
	return RawCampaign{
		ID:          m.Id,
		Title:       m.Title,
		Goal:        m.GoalAmount,
		Raised:      raised,
		Deadline:    m.Deadline.Unix(),
		Description: m.Description,
		Image:       m.ImageURL,
		Category:    m.Category,
	}
}

// NewCampaignModel 由原始活动数据创建精选活动行, sortOrder 为展示顺序
func NewCampaignModel(c RawCampaign, sortOrder int) CampaignModel {
	return CampaignModel{
		Id:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		ImageURL:     c.Image,
		Category:     c.Category,
		GoalAmount:   c.Goal,
		RaisedAmount: c.Raised,
		Deadline:     time.Unix(c.Deadline, 0).UTC(),
		Featured:     true,
		SortOrder:    sortOrder,
		Status:       CampaignStatusActive,
	}
}
