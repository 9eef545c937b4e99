package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// 統一回應格式
// ===========================
//
// 設計原則：
// 1. HTTP 狀態碼映射只在 API 層，領域錯誤只帶錯誤代碼
// 2. 內部錯誤不暴露細節，真實錯誤只寫入日誌
// 3. 所有回應帶 request_id 以便追蹤
//
//	成功: { success: true, data: {...}, code: 200, request_id: "..." }
//	失敗: { success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, request_id: "..." }

const (
	requestIDKey = "request_id"
	actorIDKey   = "actor_id"
)

// Response 通用回應結構
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"` // 錯誤代碼
	Code      int         `json:"code"`
	Message   string      `json:"message,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// 框架層錯誤代碼（不屬於領域）
const (
	errCodeBadRequest   = "BAD_REQUEST"
	errCodeUnauthorized = "UNAUTHORIZED"
	errCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	errCodeInternal     = "INTERNAL_ERROR"
)

var httpStatusMap = map[shared.ErrorCode]int{
	shared.ErrCodeResourceNotFound: http.StatusNotFound,
	shared.ErrCodeNotAllowed:       http.StatusForbidden,
	shared.ErrCodeInvalidID:        http.StatusBadRequest,
	shared.ErrCodeInvalidPage:      http.StatusBadRequest,
	shared.ErrCodeInvalidArgument:  http.StatusBadRequest,
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Success:   true,
		Data:      data,
		Code:      status,
		RequestID: requestID(c),
	})
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success:   false,
		Error:     code,
		Message:   message,
		Code:      status,
		RequestID: requestID(c),
	})
}

// badRequest 請求參數綁定失敗
func badRequest(c *gin.Context, message string) {
	abortWithError(c, http.StatusBadRequest, errCodeBadRequest, message)
}

// handleError 將用例錯誤映射為 HTTP 回應
//
// 帶有已知代碼的 DomainError 原樣返回代碼與訊息；
// 其他錯誤記錄完整錯誤鏈後返回 500。
func handleError(c *gin.Context, log *zap.Logger, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := httpStatusMap[domainErr.Code]; ok {
			log.Warn("request rejected",
				zap.String("request_id", requestID(c)),
				zap.String("error_code", string(domainErr.Code)),
				zap.Int("status", status),
				zap.Error(err))
			abortWithError(c, status, string(domainErr.Code), domainErr.Message)
			return
		}
	}

	log.Error("request failed",
		zap.String("request_id", requestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err))
	abortWithError(c, http.StatusInternalServerError, errCodeInternal, "internal server error")
}
