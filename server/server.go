package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wildcam/config"
	"wildcam/handles"
	"wildcam/logging"
	"wildcam/middleware"
	"wildcam/routes"
	"wildcam/services"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Port   string
	router *gin.Engine
}

// NewServer 创建服务器实例
func NewServer(cfg config.ServerConfig, svc *services.VideoService) *Server {
	// 设置 Gin 模式 (release/debug/test)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	routes.SetupRoutes(router, handles.NewVideoHandler(svc), cfg.StaticDir)

	return &Server{
		Port:   cfg.Port,
		router: router,
	}
}

// Handler 返回 HTTP 处理器（测试用）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器，ctx 取消后优雅退出
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", "http://localhost:"+s.Port).Msg("服务器启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务器失败: %w", err)
	}
	return nil
}
