package notification

import (
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"gorm.io/gorm"
)

// NotificationGORM 通知資料表模型
//
// read_at 為 NULL 表示未讀
type NotificationGORM struct {
	ID          string     `gorm:"column:id;type:varchar(36);primaryKey"`
	RecipientID string     `gorm:"column:recipient_id;type:varchar(64);index;not null"`
	Title       string     `gorm:"column:title;type:varchar(255);not null"`
	Content     string     `gorm:"column:content;type:text;not null"`
	ReadAt      *time.Time `gorm:"column:read_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
}

func (NotificationGORM) TableName() string { return "notifications" }

// AutoMigrate 建立或更新通知資料表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&NotificationGORM{})
}

func toGORM(n *notification.Notification) *NotificationGORM {
	return &NotificationGORM{
		ID:          n.ID().String(),
		RecipientID: n.RecipientID().String(),
		Title:       n.Title(),
		Content:     n.Content(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
	}
}

func (m *NotificationGORM) toDomain() (*notification.Notification, error) {
	id, err := notification.NotificationIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	recipientID, err := notification.RecipientIDFromString(m.RecipientID)
	if err != nil {
		return nil, err
	}
	return notification.ReconstructNotification(id, recipientID, m.Title, m.Content, m.ReadAt, m.CreatedAt), nil
}
