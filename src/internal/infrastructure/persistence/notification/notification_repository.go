package notification

import (
	"errors"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// GORMNotificationRepository GORM 實作的通知倉儲
//
// 通知目前不發布事件，仍在寫入後呼叫匯流排以符合倉儲約定。
type GORMNotificationRepository struct {
	db  *gorm.DB
	bus *shared.DomainEventBus
}

var _ notification.NotificationRepository = (*GORMNotificationRepository)(nil)

// NewNotificationRepository 創建通知倉儲
func NewNotificationRepository(db *gorm.DB, bus *shared.DomainEventBus) *GORMNotificationRepository {
	return &GORMNotificationRepository{db: db, bus: bus}
}

// Create 新增通知
func (r *GORMNotificationRepository) Create(ctx shared.TransactionContext, n *notification.Notification) error {
	if err := r.getDB(ctx).Create(toGORM(n)).Error; err != nil {
		return shared.ErrRepository.WithContext("database_error", err.Error())
	}
	return r.dispatch(ctx, n)
}

// FindByID 根據 ID 查找通知
func (r *GORMNotificationRepository) FindByID(ctx shared.TransactionContext, id notification.NotificationID) (*notification.Notification, error) {
	var model NotificationGORM
	if err := r.getDB(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotificationNotFound.WithContext("notification_id", id.String())
		}
		return nil, shared.ErrRepository.WithContext("database_error", err.Error())
	}
	return model.toDomain()
}

// Save 更新已讀時間（其他欄位建立後不變）
func (r *GORMNotificationRepository) Save(ctx shared.TransactionContext, n *notification.Notification) error {
	err := r.getDB(ctx).
		Model(&NotificationGORM{}).
		Where("id = ?", n.ID().String()).
		Update("read_at", n.ReadAt()).Error
	if err != nil {
		return shared.ErrRepository.WithContext("database_error", err.Error())
	}
	return r.dispatch(ctx, n)
}

func (r *GORMNotificationRepository) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

func (r *GORMNotificationRepository) dispatch(ctx shared.TransactionContext, n *notification.Notification) error {
	if r.bus == nil {
		return nil
	}
	return r.bus.DispatchAggregate(ctx, n)
}
