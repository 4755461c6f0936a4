package logic

import (
	"errors"

	"github.com/blues/decentrafund/internal/format"
	"github.com/blues/decentrafund/internal/model"
)

// Assembler 将原始活动转换为展示数据
type Assembler struct {
	converter *format.Converter
}

// NewAssembler 创建展示数据组装器. 图片地址原样输出, 由 ResolveImages 另行解析
func NewAssembler(converter *format.Converter) *Assembler {
	return &Assembler{converter: converter}
}

// Assemble 按输入顺序逐条转换, 不过滤也不去重
func (a *Assembler) Assemble(raws []model.RawCampaign) []model.CampaignViewModel {
	views := make([]model.CampaignViewModel, len(raws))
	for i := range raws {
		views[i] = a.AssembleOne(raws[i])
	}
	return views
}

// AssembleOne 转换单个活动, 单个字段格式化失败时使用占位符
func (a *Assembler) AssembleOne(raw model.RawCampaign) model.CampaignViewModel {
	view := model.CampaignViewModel{
		RawCampaign:     raw,
		GoalDisplay:     format.Fallback,
		RaisedDisplay:   format.Fallback,
		DeadlineDisplay: format.Fallback,
		ImageURL:        raw.Image,
	}

	goal, goalErr := format.ParseBaseUnits(raw.Goal)
	if goalErr == nil {
		view.GoalDisplay = a.converter.FormatInt(goal)
	}
	raised, raisedErr := format.ParseBaseUnits(raw.Raised)
	if raisedErr == nil {
		view.RaisedDisplay = a.converter.FormatInt(raised)
	}
	if deadline, err := format.FormatDeadline(raw.Deadline); err == nil {
		view.DeadlineDisplay = deadline
	}

	if goalErr == nil && raisedErr == nil {
		progress, err := format.ProgressOf(raised, goal)
		switch {
		case errors.Is(err, format.ErrProgressUndefined):
			view.ProgressUndefined = true
		case err == nil:
			view.ProgressPercent = progress
		}
	}

	return view
}
