package model

// RawCampaign 数据源返回的原始活动数据, 金额为基础单位的十进制字符串
type RawCampaign struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Goal        string `json:"goal" yaml:"goal"`
	Raised      string `json:"raised" yaml:"raised"`
	Deadline    int64  `json:"deadline" yaml:"deadline"` // Unix 秒
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Category    string `json:"category" yaml:"category"`
}

// CampaignViewModel 展示用的活动数据
type CampaignViewModel struct {
	RawCampaign

	GoalDisplay       string  `json:"goalDisplay"`
	RaisedDisplay     string  `json:"raisedDisplay"`
	DeadlineDisplay   string  `json:"deadlineDisplay"`
	ProgressPercent   float64 `json:"progressPercent"`
	ProgressUndefined bool    `json:"progressUndefined"` // 目标金额为0
	ImageURL          string  `json:"imageUrl"`
}
