package logic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blues/decentrafund/internal/format"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/model"
	"github.com/blues/decentrafund/internal/source"
	"golang.org/x/text/language"
)

// ImageResolver 将活动图片转换为可渲染地址, 结果可能随时间变化 (例如预签名地址)
type ImageResolver interface {
	Resolve(image string) string
}

// LandingLogic 落地页精选活动业务逻辑
type LandingLogic struct {
	source       source.CampaignSource
	images       ImageResolver
	timeout      time.Duration
	unitDecimals int

	converters sync.Map // language.Tag.String() -> *format.Converter
}

// LandingOption 落地页业务逻辑选项
type LandingOption func(*LandingLogic)

// WithImageResolver 设置图片地址解析器
func WithImageResolver(r ImageResolver) LandingOption {
	return func(l *LandingLogic) {
		l.images = r
	}
}

// WithFetchTimeout 设置数据拉取超时, 0 表示不限制
func WithFetchTimeout(d time.Duration) LandingOption {
	return func(l *LandingLogic) {
		l.timeout = d
	}
}

// WithUnitDecimals 设置金额缩放位数
func WithUnitDecimals(decimals int) LandingOption {
	return func(l *LandingLogic) {
		l.unitDecimals = decimals
	}
}

// NewLandingLogic 创建落地页业务逻辑
func NewLandingLogic(src source.CampaignSource, opts ...LandingOption) *LandingLogic {
	l := &LandingLogic{
		source:       src,
		unitDecimals: format.DefaultUnitDecimals,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Assembler 返回指定语言环境的组装器
func (l *LandingLogic) Assembler(tag language.Tag) *Assembler {
	return NewAssembler(l.converter(tag))
}

// LoadFeatured 拉取并组装精选活动, 拉取失败时返回 source.ErrFetchFailure
func (l *LandingLogic) LoadFeatured(ctx context.Context, tag language.Tag) ([]model.CampaignViewModel, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	start := time.Now()
	raws, err := l.source.Fetch(ctx)
	if err != nil {
		logger.Warn("Failed to fetch featured campaigns: %v", err)
		return nil, fmt.Errorf("%w: %w", source.ErrFetchFailure, err)
	}

	views := ResolveImages(l.Assembler(tag).Assemble(raws), l.images)
	logger.Debug("Assembled %d featured campaigns (%s) in %s", len(views), tag, time.Since(start))
	return views, nil
}

func (l *LandingLogic) converter(tag language.Tag) *format.Converter {
	key := tag.String()
	if c, ok := l.converters.Load(key); ok {
		return c.(*format.Converter)
	}
	c, _ := l.converters.LoadOrStore(key, format.NewConverterWithDecimals(tag, l.unitDecimals))
	return c.(*format.Converter)
}

// ResolveImages 在组装完成后填充图片地址, r 为 nil 时保持原值
func ResolveImages(views []model.CampaignViewModel, r ImageResolver) []model.CampaignViewModel {
	if r == nil {
		return views
	}
	for i := range views {
		views[i].ImageURL = r.Resolve(views[i].Image)
	}
	return views
}
