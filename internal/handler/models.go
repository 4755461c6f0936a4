package handler

import (
	"github.com/blues/decentrafund/internal/model"
	"github.com/blues/decentrafund/internal/page"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// FeaturedResponse 精选活动响应
type FeaturedResponse struct {
	State     string                    `json:"state"`
	Locale    string                    `json:"locale"`
	Campaigns []model.CampaignViewModel `json:"campaigns"`
	Error     string                    `json:"error,omitempty"`
}

// StatsResponse 统计卡片响应
type StatsResponse struct {
	Stats []model.Stat `json:"stats"`
}

// LandingView 落地页模板数据
type LandingView struct {
	Lang          string
	CampaignsPath string
	RetryPath     string
	Stats         []model.Stat
	State         page.State
	RevealJSON    string
}

// ToFeaturedResponse 将页面状态转换为响应模型
func ToFeaturedResponse(st page.State, locale string) FeaturedResponse {
	resp := FeaturedResponse{
		State:     string(st.Phase),
		Locale:    locale,
		Campaigns: st.Campaigns,
	}
	if resp.Campaigns == nil {
		resp.Campaigns = []model.CampaignViewModel{}
	}
	if st.Phase == page.PhaseFailed {
		resp.Error = st.Message()
	}
	return resp
}
