package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/blues/decentrafund/internal/config"
	"github.com/blues/decentrafund/internal/handler"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/router"
	"github.com/blues/decentrafund/internal/scheduler"
	"github.com/blues/decentrafund/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the landing page HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), getConfig())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer a.close()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}

	landingHandler := handler.NewLandingHandler(
		a.landing,
		a.stats,
		handler.NewLocaleResolver(cfg.Landing.Locale, cfg.Landing.Locales),
		cfg.Landing.CampaignsPath,
	)
	r := router.Setup(landingHandler, router.Options{
		Templates: tmpl,
		AssetsDir: cfg.Server.AssetsDir,
	})

	// 启动缓存预热任务
	if a.cached != nil {
		tasks, err := scheduler.NewManager(
			scheduler.NewCacheWarmJob(a.cached, cfg.Cache.WarmInterval, cfg.Landing.FetchTimeout),
		)
		if err != nil {
			return err
		}
		if err := tasks.Start(); err != nil {
			return err
		}
		defer tasks.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
