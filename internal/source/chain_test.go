package source

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/blues/decentrafund/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	count    uint64
	countErr error
	failAt   int64
	calls    atomic.Int64
}

func (f *fakeReader) CampaignCount(ctx context.Context) (uint64, error) {
	return f.count, f.countErr
}

func (f *fakeReader) GetCampaign(ctx context.Context, index uint64) (model.RawCampaign, error) {
	f.calls.Add(1)
	if f.failAt >= 0 && index == uint64(f.failAt) {
		return model.RawCampaign{}, errors.New("execution reverted")
	}
	// 越靠前的索引越慢, 打乱完成顺序
	time.Sleep(time.Duration(f.count-index) * time.Millisecond)
	return model.RawCampaign{
		ID:     int64(index),
		Title:  fmt.Sprintf("campaign-%d", index),
		Goal:   "100000000000000",
		Raised: "0",
	}, nil
}

func TestChainSourcePreservesIndexOrder(t *testing.T) {
	reader := &fakeReader{count: 8, failAt: -1}
	campaigns, err := NewChainSource(reader, 4, 0).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 8)

	for i, c := range campaigns {
		assert.Equal(t, int64(i), c.ID)
		assert.Equal(t, fmt.Sprintf("campaign-%d", i), c.Title)
	}
}

func TestChainSourceLimit(t *testing.T) {
	reader := &fakeReader{count: 10, failAt: -1}
	campaigns, err := NewChainSource(reader, 2, 3).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)
	assert.Equal(t, int64(3), reader.calls.Load())
}

func TestChainSourceEmpty(t *testing.T) {
	campaigns, err := NewChainSource(&fakeReader{failAt: -1}, 2, 0).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestChainSourceErrors(t *testing.T) {
	_, err := NewChainSource(&fakeReader{countErr: errors.New("dial tcp: refused"), failAt: -1}, 2, 0).
		Fetch(context.Background())
	assert.ErrorContains(t, err, "read campaign count")

	_, err = NewChainSource(&fakeReader{count: 5, failAt: 2}, 2, 0).Fetch(context.Background())
	assert.ErrorContains(t, err, "read campaign 2")
}

// countOnlyReader 只返回数量, 读取单个活动时立即返回
type countOnlyReader struct {
	count uint64
	calls atomic.Int64
}

func (r *countOnlyReader) CampaignCount(ctx context.Context) (uint64, error) {
	return r.count, nil
}

func (r *countOnlyReader) GetCampaign(ctx context.Context, index uint64) (model.RawCampaign, error) {
	r.calls.Add(1)
	return model.RawCampaign{ID: int64(index), Goal: "1", Raised: "0"}, nil
}

func TestChainSourceHugeCountWithLimit(t *testing.T) {
	reader := &countOnlyReader{count: 1 << 63}

	var (
		campaigns []model.RawCampaign
		err       error
	)
	require.NotPanics(t, func() {
		campaigns, err = NewChainSource(reader, 4, 6).Fetch(context.Background())
	})
	require.NoError(t, err)
	require.Len(t, campaigns, 6)
	assert.Equal(t, int64(5), campaigns[5].ID)
	assert.Equal(t, int64(6), reader.calls.Load())
}

func TestChainSourceHugeCountUnlimited(t *testing.T) {
	for _, count := range []uint64{MaxChainCampaigns + 1, 1 << 63, ^uint64(0)} {
		reader := &countOnlyReader{count: count}

		var err error
		require.NotPanics(t, func() {
			_, err = NewChainSource(reader, 4, 0).Fetch(context.Background())
		})
		assert.ErrorIs(t, err, ErrTooManyCampaigns)
		assert.Equal(t, int64(0), reader.calls.Load())
	}
}

func TestChainSourceUnlimitedAtMax(t *testing.T) {
	reader := &countOnlyReader{count: MaxChainCampaigns}
	campaigns, err := NewChainSource(reader, 8, 0).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, MaxChainCampaigns)
}
