package page

import "encoding/json"

// Reveal 滚动渐显动画库的初始化参数
type Reveal struct {
	Duration int    `json:"duration"` // 毫秒
	Easing   string `json:"easing"`
	Once     bool   `json:"once"`
	Mirror   bool   `json:"mirror"`
}

// DefaultReveal 落地页使用的固定动画参数
var DefaultReveal = Reveal{
	Duration: 800,
	Easing:   "ease-in-out",
	Once:     false,
	Mirror:   false,
}

// JSON 返回传给初始化函数的参数
func (r Reveal) JSON() string {
	data, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(data)
}
