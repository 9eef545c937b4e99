package notification

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// SendNotification Use Case
// ===========================

// SendNotificationCommand 發送通知命令
type SendNotificationCommand struct {
	RecipientID string
	Title       string
	Content     string
}

// SendNotificationResult 發送結果
type SendNotificationResult struct {
	Notification *notification.Notification
}

// NotificationSender 訂閱者依賴的發送邊界
//
// ctx 為觸發事件的寫入所在的事務（可為 nil）
type NotificationSender interface {
	ExecuteWithContext(ctx shared.TransactionContext, cmd SendNotificationCommand) (*SendNotificationResult, error)
}

// SendNotificationUseCase 發送站內通知
type SendNotificationUseCase struct {
	notificationRepo notification.NotificationRepository
	txManager        shared.TransactionManager
}

// NewSendNotificationUseCase 創建 Use Case 實例
func NewSendNotificationUseCase(
	notificationRepo notification.NotificationRepository,
	txManager shared.TransactionManager,
) *SendNotificationUseCase {
	return &SendNotificationUseCase{
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// Execute 在新事務中發送通知
func (uc *SendNotificationUseCase) Execute(cmd SendNotificationCommand) (*SendNotificationResult, error) {
	var result *SendNotificationResult
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		result, err = uc.ExecuteWithContext(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteWithContext 在呼叫者的事務中發送通知
func (uc *SendNotificationUseCase) ExecuteWithContext(ctx shared.TransactionContext, cmd SendNotificationCommand) (*SendNotificationResult, error) {
	recipientID, err := notification.RecipientIDFromString(cmd.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipient ID: %w", err)
	}

	n, err := notification.NewNotification(recipientID, cmd.Title, cmd.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return &SendNotificationResult{Notification: n}, nil
}
