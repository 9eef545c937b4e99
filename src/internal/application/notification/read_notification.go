package notification

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ReadNotificationCommand 標記已讀命令
type ReadNotificationCommand struct {
	RecipientID    string
	NotificationID string
}

// ReadNotificationResult 標記結果
type ReadNotificationResult struct {
	Notification *notification.Notification
}

// ReadNotificationUseCase 標記通知已讀
//
// 執行流程：
// 1. 查找通知（ResourceNotFound）
// 2. 檢查接收者（NotAllowed，且不寫入）
// 3. Read 並保存
type ReadNotificationUseCase struct {
	notificationRepo notification.NotificationRepository
	txManager        shared.TransactionManager
}

// NewReadNotificationUseCase 創建 Use Case 實例
func NewReadNotificationUseCase(
	notificationRepo notification.NotificationRepository,
	txManager shared.TransactionManager,
) *ReadNotificationUseCase {
	return &ReadNotificationUseCase{
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// Execute 執行標記
func (uc *ReadNotificationUseCase) Execute(cmd ReadNotificationCommand) (*ReadNotificationResult, error) {
	recipientID, err := notification.RecipientIDFromString(cmd.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipient ID: %w", err)
	}
	notificationID, err := notification.NotificationIDFromString(cmd.NotificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notification ID: %w", err)
	}

	var result *ReadNotificationResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		n, err := uc.notificationRepo.FindByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, shared.ErrResourceNotFound) {
				return err
			}
			return fmt.Errorf("failed to find notification: %w", err)
		}

		if !n.IsAddressedTo(recipientID) {
			return shared.ErrNotAllowed.WithContext(
				"resource", "notification",
				"actor_id", cmd.RecipientID,
			)
		}

		n.Read()

		if err := uc.notificationRepo.Save(ctx, n); err != nil {
			return fmt.Errorf("failed to save notification: %w", err)
		}

		result = &ReadNotificationResult{Notification: n}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
