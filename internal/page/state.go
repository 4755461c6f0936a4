package page

import (
	"github.com/blues/decentrafund/internal/model"
)

// Phase 页面状态标签
type Phase string

const (
	PhaseEmpty   Phase = "empty"   // 尚未挂载
	PhaseLoading Phase = "loading" // 拉取中
	PhaseLoaded  Phase = "loaded"  // 已加载
	PhaseFailed  Phase = "failed"  // 拉取失败
)

// State 页面状态, 只有 Loaded 携带活动, 只有 Failed 携带原因
type State struct {
	Phase     Phase
	Campaigns []model.CampaignViewModel
	Reason    error
}

// Empty 初始状态
func Empty() State {
	return State{Phase: PhaseEmpty}
}

// Loading 拉取中状态
func Loading() State {
	return State{Phase: PhaseLoading}
}

// Loaded 已加载状态
func Loaded(campaigns []model.CampaignViewModel) State {
	if campaigns == nil {
		campaigns = []model.CampaignViewModel{}
	}
	return State{Phase: PhaseLoaded, Campaigns: campaigns}
}

// Failed 失败状态
func Failed(reason error) State {
	return State{Phase: PhaseFailed, Reason: reason}
}

// Message 失败原因的文本
func (s State) Message() string {
	if s.Reason == nil {
		return ""
	}
	return s.Reason.Error()
}

// Retryable 只有失败状态可以重试
func (s State) Retryable() bool {
	return s.Phase == PhaseFailed
}
