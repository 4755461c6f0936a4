package source

import (
	"context"

	"github.com/blues/decentrafund/internal/model"
)

// StubSource 内置示例数据, 用于本地开发和演示
type StubSource struct{}

// NewStubSource 创建示例数据源
func NewStubSource() *StubSource {
	return &StubSource{}
}

// Fetch 返回固定的三个精选活动
func (s *StubSource) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SampleCampaigns(), nil
}

// SampleCampaigns 返回示例活动的副本
func SampleCampaigns() []model.RawCampaign {
	return []model.RawCampaign{
		{
			ID:          1,
			Title:       "Eco-Friendly Water Bottles",
			Goal:        "500000000000000",
			Raised:      "325000000000000",
			Deadline:    1685856000,
			Description: "Help us launch sustainable water bottles made from recycled materials",
			Category:    "Environment",
		},
		{
			ID:          2,
			Title:       "Community Garden Project",
			Goal:        "1000000000000000",
			Raised:      "400000000000000",
			Deadline:    1688448000,
			Description: "Support our initiative to create urban gardens in food deserts",
			Category:    "Community",
		},
		{
			ID:          3,
			Title:       "AI for Good Hackathon",
			Goal:        "1500000000000000",
			Raised:      "1270000000000000",
			Deadline:    1684166400,
			Description: "Funding for student teams developing AI solutions for social impact",
			Category:    "Technology",
		},
	}
}
