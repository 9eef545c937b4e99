package notification

import (
	"strings"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 識別符
// ===========================

type NotificationMarker struct{}

// NotificationID 通知的唯一標識符
type NotificationID = shared.EntityID[NotificationMarker]

// NotificationIDFromString 從字串還原通知 ID
func NotificationIDFromString(s string) (NotificationID, error) {
	return shared.EntityIDFromString[NotificationMarker](s, ErrInvalidNotificationID)
}

type RecipientMarker struct{}

// RecipientID 通知接收者（論壇作者）的 ID
type RecipientID = shared.EntityID[RecipientMarker]

// RecipientIDFromString 從字串還原接收者 ID
func RecipientIDFromString(s string) (RecipientID, error) {
	return shared.EntityIDFromString[RecipientMarker](s, ErrInvalidRecipientID)
}

// ===========================
// Notification 聚合根
// ===========================

// Notification 站內通知
//
// 業務規則：
// - 只有接收者可以標記已讀（由用例檢查）
// - 已讀時間只記錄第一次
type Notification struct {
	shared.AggregateRoot[NotificationMarker]

	recipientID RecipientID
	title       string
	content     string
	readAt      *time.Time
	createdAt   time.Time
}

// NewNotification 創建通知
func NewNotification(recipientID RecipientID, title, content string) (*Notification, error) {
	if recipientID.IsEmpty() {
		return nil, ErrInvalidRecipientID.WithContext("reason", "recipientID cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	return &Notification{
		AggregateRoot: shared.NewAggregateRoot(NotificationID{}),
		recipientID:   recipientID,
		title:         title,
		content:       content,
		createdAt:     time.Now(),
	}, nil
}

// ReconstructNotification 從資料庫重建通知
func ReconstructNotification(
	id NotificationID,
	recipientID RecipientID,
	title string,
	content string,
	readAt *time.Time,
	createdAt time.Time,
) *Notification {
	return &Notification{
		AggregateRoot: shared.NewAggregateRoot(id),
		recipientID:   recipientID,
		title:         title,
		content:       content,
		readAt:        readAt,
		createdAt:     createdAt,
	}
}

func (n *Notification) RecipientID() RecipientID { return n.recipientID }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Content() string          { return n.content }
func (n *Notification) ReadAt() *time.Time       { return n.readAt }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }

// IsRead 是否已讀
func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

// IsAddressedTo 判斷接收者
func (n *Notification) IsAddressedTo(recipientID RecipientID) bool {
	return n.recipientID.Equals(recipientID)
}

// Read 標記已讀（重複呼叫保留第一次的時間）
func (n *Notification) Read() {
	if n.readAt != nil {
		return
	}
	now := time.Now()
	n.readAt = &now
}
