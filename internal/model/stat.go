package model

// Stat 落地页统计卡片
type Stat struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
}

const (
	StatProjectsFunded = "projects_funded"
	StatRaised         = "raised"
	StatBackers        = "backers"
	StatSuccessRate    = "success_rate"
)
