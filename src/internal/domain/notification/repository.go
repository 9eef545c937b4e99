package notification

import "github.com/jackyeh168/qa_forum/src/internal/domain/shared"

// NotificationRepository 通知倉儲
//
// 查無資料返回 ErrNotificationNotFound（shared.ErrResourceNotFound 代碼）
type NotificationRepository interface {
	Create(ctx shared.TransactionContext, notification *Notification) error
	FindByID(ctx shared.TransactionContext, id NotificationID) (*Notification, error)
	Save(ctx shared.TransactionContext, notification *Notification) error
}
