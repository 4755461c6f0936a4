package handler

import (
	"context"
	"net/http"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/logic"
	"github.com/blues/decentrafund/internal/model"
	"github.com/blues/decentrafund/internal/page"
	"github.com/blues/decentrafund/internal/web"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// LandingHandler 落地页及精选活动接口
type LandingHandler struct {
	landingLogic  *logic.LandingLogic
	statsLogic    *logic.StatsLogic
	locales       *LocaleResolver
	reveal        page.Reveal
	campaignsPath string
}

// NewLandingHandler 创建落地页处理器
func NewLandingHandler(
	landingLogic *logic.LandingLogic,
	statsLogic *logic.StatsLogic,
	locales *LocaleResolver,
	campaignsPath string,
) *LandingHandler {
	if campaignsPath == "" {
		campaignsPath = "/campaigns"
	}
	return &LandingHandler{
		landingLogic:  landingLogic,
		statsLogic:    statsLogic,
		locales:       locales,
		reveal:        page.DefaultReveal,
		campaignsPath: campaignsPath,
	}
}

// Index 渲染落地页
func (h *LandingHandler) Index(c *gin.Context) {
	tag := h.locales.Resolve(c.Request)

	st, reveal, err := h.load(c.Request.Context(), tag)
	if err != nil {
		// 客户端已断开, 不再渲染
		logger.Debug("Landing page request abandoned: %v", err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, web.LandingTemplate, LandingView{
		Lang:          tag.String(),
		CampaignsPath: h.campaignsPath,
		RetryPath:     "/?retry=1",
		Stats:         h.statsLogic.GetStats(c.Request.Context(), tag),
		State:         st,
		RevealJSON:    reveal.JSON(),
	})
}

// GetFeatured 获取精选活动展示数据
func (h *LandingHandler) GetFeatured(c *gin.Context) {
	tag := h.locales.Resolve(c.Request)

	st, _, err := h.load(c.Request.Context(), tag)
	if err != nil {
		c.Abort()
		return
	}

	resp := ToFeaturedResponse(st, tag.String())
	if st.Phase == page.PhaseFailed {
		ErrorResponse(c, http.StatusServiceUnavailable, "获取精选活动失败", resp)
		return
	}
	SuccessResponse(c, http.StatusOK, "ok", resp)
}

// GetStats 获取统计卡片
func (h *LandingHandler) GetStats(c *gin.Context) {
	tag := h.locales.Resolve(c.Request)
	SuccessResponse(c, http.StatusOK, "ok", StatsResponse{
		Stats: h.statsLogic.GetStats(c.Request.Context(), tag),
	})
}

// load 挂载一次页面并等待拉取结束, 请求结束时卸载
func (h *LandingHandler) load(ctx context.Context, tag language.Tag) (page.State, page.Reveal, error) {
	p := page.New(func(ctx context.Context) ([]model.CampaignViewModel, error) {
		return h.landingLogic.LoadFeatured(ctx, tag)
	}, h.reveal)
	defer p.Unmount()

	if err := p.Mount(ctx); err != nil {
		return page.State{}, page.Reveal{}, err
	}
	reveal, _ := p.Reveal()

	st, err := p.Wait(ctx)
	if err != nil {
		return st, reveal, err
	}
	return st, reveal, nil
}
