package page

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/blues/decentrafund/internal/model"
)

var (
	// ErrAlreadyMounted 页面已经挂载过
	ErrAlreadyMounted = errors.New("page already mounted")
	// ErrNotMounted 页面未挂载或已卸载
	ErrNotMounted = errors.New("page not mounted")
	// ErrNotRetryable 当前状态不能重试
	ErrNotRetryable = errors.New("page is not in a failed state")
	// ErrLoaderPanic 拉取过程中发生 panic
	ErrLoaderPanic = errors.New("campaign loader panicked")
)

// Loader 拉取并组装精选活动
type Loader func(ctx context.Context) ([]model.CampaignViewModel, error)

// Page 单次页面挂载的生命周期.
// 挂载时完成动画初始化并启动唯一一次拉取, 卸载后迟到的结果不再提交.
type Page struct {
	loader Loader
	reveal Reveal

	mu         sync.Mutex
	state      State
	mounted    bool
	unmounted  bool
	revealed   *Reveal
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

// New 创建页面
func New(loader Loader, reveal Reveal) *Page {
	return &Page{
		loader: loader,
		reveal: reveal,
		state:  Empty(),
	}
}

// Mount 挂载页面: 初始化动画参数并开始拉取. 每个页面只能挂载一次.
func (p *Page) Mount(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mounted || p.unmounted {
		return ErrAlreadyMounted
	}
	p.mounted = true

	reveal := p.reveal
	p.revealed = &reveal

	p.startLocked(ctx)
	return nil
}

// Retry 从失败状态重新拉取
func (p *Page) Retry(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted || p.unmounted {
		return ErrNotMounted
	}
	if !p.state.Retryable() {
		return ErrNotRetryable
	}

	p.startLocked(ctx)
	return nil
}

// Unmount 卸载页面: 取消进行中的拉取, 此后的提交全部忽略
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unmounted {
		return
	}
	p.unmounted = true
	p.revealed = nil
	if p.cancel != nil {
		p.cancel()
	}
}

// State 返回当前状态
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Reveal 返回本次挂载的动画参数, 未挂载或已卸载时返回 false
func (p *Page) Reveal() (Reveal, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revealed == nil {
		return Reveal{}, false
	}
	return *p.revealed, true
}

// Wait 等待当前这次拉取结束, 返回结束时的状态
func (p *Page) Wait(ctx context.Context) (State, error) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return p.State(), ErrNotMounted
	}

	select {
	case <-done:
		return p.State(), nil
	case <-ctx.Done():
		return p.State(), ctx.Err()
	}
}

// startLocked 启动一次拉取, 调用方需持有锁
func (p *Page) startLocked(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	p.generation++
	generation := p.generation
	done := make(chan struct{})

	p.state = Loading()
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		defer cancel()

		campaigns, err := p.load(ctx)
		p.commit(generation, campaigns, err)
	}()
}

// load 调用 loader, panic 转换为失败状态
func (p *Page) load(ctx context.Context) (campaigns []model.CampaignViewModel, err error) {
	defer func() {
		if r := recover(); r != nil {
			campaigns, err = nil, fmt.Errorf("%w: %v", ErrLoaderPanic, r)
		}
	}()
	return p.loader(ctx)
}

// commit 一次性提交拉取结果
func (p *Page) commit(generation uint64, campaigns []model.CampaignViewModel, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unmounted || generation != p.generation {
		return
	}
	if err != nil {
		p.state = Failed(err)
		return
	}
	p.state = Loaded(campaigns)
}
