package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appnotification "github.com/jackyeh168/qa_forum/src/internal/application/notification"
	"go.uber.org/zap"
)

// NotificationHandler 通知的 HTTP 處理器
type NotificationHandler struct {
	uc  *UseCases
	log *zap.Logger
}

// NewNotificationHandler 建立處理器
func NewNotificationHandler(uc *UseCases, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// RegisterRoutes 註冊通知路由
func (h *NotificationHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/notifications", h.SendNotification)
	group.PATCH("/notifications/:id/read", RequireActor(), h.ReadNotification)
}

type sendNotificationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
}

func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.SendNotification.Execute(appnotification.SendNotificationCommand{
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, presentNotification(result.Notification))
}

// ReadNotification 操作者必須是接收者
func (h *NotificationHandler) ReadNotification(c *gin.Context) {
	result, err := h.uc.ReadNotification.Execute(appnotification.ReadNotificationCommand{
		RecipientID:    actorID(c),
		NotificationID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentNotification(result.Notification))
}
