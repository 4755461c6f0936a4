package source

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/model"
	"github.com/panjf2000/ants/v2"
)

// MaxChainCampaigns 未设置数量上限时单次最多读取的活动数
const MaxChainCampaigns = 1000

// ErrTooManyCampaigns 合约返回的活动数量超出可读取范围
var ErrTooManyCampaigns = errors.New("too many campaigns")

// CampaignReader 链上众筹合约的只读接口
type CampaignReader interface {
	CampaignCount(ctx context.Context) (uint64, error)
	GetCampaign(ctx context.Context, index uint64) (model.RawCampaign, error)
}

// ChainSource 从众筹合约读取活动, 按合约索引顺序返回
type ChainSource struct {
	reader  CampaignReader
	workers int
	limit   int
}

// NewChainSource 创建链上数据源
func NewChainSource(reader CampaignReader, workers, limit int) *ChainSource {
	if workers <= 0 {
		workers = 1
	}
	return &ChainSource{reader: reader, workers: workers, limit: limit}
}

// Fetch 先读取活动数量, 再通过协程池并发读取每个活动
func (s *ChainSource) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	count, err := s.reader.CampaignCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("read campaign count: %w", err)
	}

	if s.limit > 0 && count > uint64(s.limit) {
		count = uint64(s.limit)
	}
	if count > MaxChainCampaigns {
		return nil, fmt.Errorf("%w: campaign count %d exceeds %d", ErrTooManyCampaigns, count, MaxChainCampaigns)
	}
	n := int(count)
	if n == 0 {
		return []model.RawCampaign{}, nil
	}

	poolSize := s.workers
	if poolSize > n {
		poolSize = n
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool for %d campaigns: %w", n, err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	// 结果按索引写入, 保持合约中的顺序
	campaigns := make([]model.RawCampaign, n)
	for i := 0; i < n; i++ {
		index := uint64(i)
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			c, err := s.reader.GetCampaign(ctx, index)
			if err != nil {
				fail(fmt.Errorf("read campaign %d: %w", index, err))
				return
			}
			campaigns[index] = c
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("submit campaign %d: %w", index, err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Read %d campaigns from chain", n)
	return campaigns, nil
}
