package api

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackyeh168/qa_forum/src/internal/config"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ===========================
// 中介軟體
// ===========================

const (
	// RequestIDHeader 請求 ID 標頭
	RequestIDHeader = "X-Request-ID"
	// AuthorIDHeader 操作者 ID 標頭（身分由上游系統提供）
	AuthorIDHeader = "X-Author-ID"
)

// RequestID 沿用或生成請求 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Recovery 捕獲 panic 並回應 500
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					zap.String("request_id", requestID(c)),
					zap.Any("error", recovered),
					zap.String("path", c.Request.URL.Path))
				abortWithError(c, http.StatusInternalServerError, errCodeInternal, "internal server error")
			}
		}()
		c.Next()
	}
}

// Logging 記錄每個請求
func Logging(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// Metrics 記錄請求次數與耗時（以路由模板為標籤）
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}

// ===========================
// 限流
// ===========================

// RateLimiter 每個來源 IP 一個令牌桶
type RateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewRateLimiter 建立限流器
func NewRateLimiter(r float64, burst int) *RateLimiter {
	return &RateLimiter{rate: rate.Limit(r), burst: burst}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	if l, ok := rl.limiters.Load(ip); ok {
		return l.(*rate.Limiter)
	}
	l, _ := rl.limiters.LoadOrStore(ip, rate.NewLimiter(rl.rate, rl.burst))
	return l.(*rate.Limiter)
}

// RateLimit 超過限額回應 429；未啟用時直接放行
func RateLimit(cfg config.RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewRateLimiter(cfg.Rate, cfg.Burst)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.limiterFor(ip).Allow() {
			log.Warn("rate limit exceeded",
				zap.String("request_id", requestID(c)),
				zap.String("client_ip", ip))
			abortWithError(c, http.StatusTooManyRequests, errCodeRateLimited, "too many requests, please try again later")
			return
		}
		c.Next()
	}
}

// ===========================
// 操作者
// ===========================

// RequireActor 寫入操作必須帶 X-Author-ID
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(AuthorIDHeader))
		if actor == "" {
			abortWithError(c, http.StatusUnauthorized, errCodeUnauthorized, AuthorIDHeader+" header is required")
			return
		}
		c.Set(actorIDKey, actor)
		c.Next()
	}
}

func actorID(c *gin.Context) string {
	return c.GetString(actorIDKey)
}
