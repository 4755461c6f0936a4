package source

import (
	"context"
	"errors"

	"github.com/blues/decentrafund/internal/model"
)

// ErrFetchFailure 数据源拒绝请求或超时
var ErrFetchFailure = errors.New("campaign fetch failed")

// CampaignSource 活动数据源, 返回的顺序即展示顺序
type CampaignSource interface {
	Fetch(ctx context.Context) ([]model.RawCampaign, error)
}

// Func 将普通函数适配为 CampaignSource
type Func func(ctx context.Context) ([]model.RawCampaign, error)

// Fetch 实现 CampaignSource
func (f Func) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	return f(ctx)
}
