package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/qa_forum/src/internal/config"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// Router HTTP 路由
type Router struct {
	engine *gin.Engine
}

// NewRouter 建立路由與中介軟體
//
// 中介軟體順序：
// 1. RequestID（後續日誌都帶請求 ID）
// 2. Recovery
// 3. Logging
// 4. Metrics（m 為 nil 時略過，也不提供 /metrics）
// 5. RateLimit
func NewRouter(cfg *config.Config, log *zap.Logger, m *metrics.Metrics, uc *UseCases) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(Recovery(log))
	engine.Use(Logging(log))
	if m != nil {
		engine.Use(Metrics(m))
	}
	engine.Use(RateLimit(cfg.Server.RateLimit, log))

	engine.GET("/health", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	})
	if m != nil && cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	v1 := engine.Group("/api/v1")
	NewForumHandler(uc, log).RegisterRoutes(v1)
	NewNotificationHandler(uc, log).RegisterRoutes(v1)

	return &Router{engine: engine}
}

// Engine 返回 gin 引擎（http.Handler）
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
