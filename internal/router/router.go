package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/blues/decentrafund/internal/handler"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/gin-gonic/gin"
)

// Options 路由选项
type Options struct {
	Templates *template.Template
	AssetsDir string // 静态资源目录, 为空时不挂载
}

func Setup(landingHandler *handler.LandingHandler, opts Options) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}
	if opts.AssetsDir != "" {
		r.Static("/assets", opts.AssetsDir)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "decentrafund-landing",
		})
	})

	// 落地页
	r.GET("/", landingHandler.Index)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		v1.GET("/campaigns/featured", landingHandler.GetFeatured)
		v1.GET("/stats", landingHandler.GetStats)
	}

	return r
}

// requestLogger 使用统一日志器记录请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Accept-Language")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
