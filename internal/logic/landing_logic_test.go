package logic

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/blues/decentrafund/internal/model"
	"github.com/blues/decentrafund/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadFeatured(t *testing.T) {
	l := NewLandingLogic(source.NewStubSource())

	views, err := l.LoadFeatured(context.Background(), language.AmericanEnglish)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "5.000", views[0].GoalDisplay)
}

func TestLoadFeaturedLocale(t *testing.T) {
	large := source.Func(func(ctx context.Context) ([]model.RawCampaign, error) {
		return []model.RawCampaign{{Goal: "123450000000000000", Raised: "0", Deadline: 1685856000}}, nil
	})
	l := NewLandingLogic(large)

	en, err := l.LoadFeatured(context.Background(), language.AmericanEnglish)
	require.NoError(t, err)
	de, err := l.LoadFeatured(context.Background(), language.German)
	require.NoError(t, err)

	assert.Equal(t, "1,234.500", en[0].GoalDisplay)
	assert.Equal(t, "1.234,500", de[0].GoalDisplay)
}

func TestLoadFeaturedUnitDecimals(t *testing.T) {
	wei := source.Func(func(ctx context.Context) ([]model.RawCampaign, error) {
		return []model.RawCampaign{{Goal: "5000000000000000000", Raised: "0", Deadline: 0}}, nil
	})
	views, err := NewLandingLogic(wei, WithUnitDecimals(18)).LoadFeatured(context.Background(), language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "5.000", views[0].GoalDisplay)
}

func TestLoadFeaturedFetchFailure(t *testing.T) {
	boom := errors.New("backend unavailable")
	l := NewLandingLogic(source.Func(func(ctx context.Context) ([]model.RawCampaign, error) {
		return nil, boom
	}))

	_, err := l.LoadFeatured(context.Background(), language.AmericanEnglish)
	assert.ErrorIs(t, err, source.ErrFetchFailure)
	assert.ErrorIs(t, err, boom)
}

func TestLoadFeaturedTimeout(t *testing.T) {
	stall := source.Func(func(ctx context.Context) ([]model.RawCampaign, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	l := NewLandingLogic(stall, WithFetchTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := l.LoadFeatured(context.Background(), language.AmericanEnglish)
	assert.ErrorIs(t, err, source.ErrFetchFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

// signingResolver 每次调用生成不同的地址, 模拟带时间戳的预签名链接
type signingResolver struct {
	calls atomic.Int64
}

func (r *signingResolver) Resolve(image string) string {
	if image == "" {
		return "/placeholder.jpg"
	}
	return fmt.Sprintf("https://cdn.example.com/%s?sig=%d", image, r.calls.Add(1))
}

func TestAssembleIdempotentWithSigningResolver(t *testing.T) {
	images := &signingResolver{}
	l := NewLandingLogic(source.NewStubSource(), WithImageResolver(images))
	raws := []model.RawCampaign{
		{ID: 1, Image: "gardens/cover.jpg", Goal: "100", Raised: "50", Deadline: 1685856000},
		{ID: 2, Goal: "100", Raised: "50", Deadline: 1685856000},
	}

	a := l.Assembler(language.AmericanEnglish)
	first := a.Assemble(raws)
	second := a.Assemble(raws)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(0), images.calls.Load())

	resolved := ResolveImages(first, images)
	assert.Equal(t, "https://cdn.example.com/gardens/cover.jpg?sig=1", resolved[0].ImageURL)
	assert.Equal(t, "/placeholder.jpg", resolved[1].ImageURL)
}

func TestLoadFeaturedResolvesImages(t *testing.T) {
	images := &signingResolver{}
	l := NewLandingLogic(source.Func(func(ctx context.Context) ([]model.RawCampaign, error) {
		return []model.RawCampaign{{Image: "a.jpg", Goal: "1", Raised: "1"}}, nil
	}), WithImageResolver(images))

	views, err := l.LoadFeatured(context.Background(), language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg?sig=1", views[0].ImageURL)
	assert.Equal(t, "a.jpg", views[0].Image)
}

func TestResolveImagesNilResolver(t *testing.T) {
	views := []model.CampaignViewModel{{ImageURL: "a.jpg"}}
	assert.Equal(t, views, ResolveImages(views, nil))
}
