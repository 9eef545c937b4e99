package memory

import (
	"slices"
	"sync"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

var _ notification.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository 記憶體通知倉儲
type NotificationRepository struct {
	mu    sync.RWMutex
	items []*notification.Notification
	bus   *shared.DomainEventBus
}

func NewNotificationRepository(bus *shared.DomainEventBus) *NotificationRepository {
	return &NotificationRepository{bus: bus}
}

func copyNotification(n *notification.Notification) *notification.Notification {
	return notification.ReconstructNotification(n.ID(), n.RecipientID(), n.Title(), n.Content(),
		copyTime(n.ReadAt()), n.CreatedAt())
}

func (r *NotificationRepository) Create(ctx shared.TransactionContext, n *notification.Notification) error {
	r.mu.Lock()
	r.items = append(r.items, copyNotification(n))
	r.mu.Unlock()
	return dispatch(r.bus, ctx, n)
}

func (r *NotificationRepository) FindByID(_ shared.TransactionContext, id notification.NotificationID) (*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.items {
		if n.ID().Equals(id) {
			return copyNotification(n), nil
		}
	}
	return nil, notification.ErrNotificationNotFound.WithContext("notification_id", id.String())
}

func (r *NotificationRepository) Save(ctx shared.TransactionContext, n *notification.Notification) error {
	r.mu.Lock()
	idx := slices.IndexFunc(r.items, func(item *notification.Notification) bool { return item.ID().Equals(n.ID()) })
	if idx < 0 {
		r.mu.Unlock()
		return notification.ErrNotificationNotFound.WithContext("notification_id", n.ID().String())
	}
	r.items[idx] = copyNotification(n)
	r.mu.Unlock()
	return dispatch(r.bus, ctx, n)
}

// FindManyByRecipientID 列出接收者的通知（由新到舊）
func (r *NotificationRepository) FindManyByRecipientID(recipientID notification.RecipientID) []*notification.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*notification.Notification
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].RecipientID().Equals(recipientID) {
			matched = append(matched, copyNotification(r.items[i]))
		}
	}
	return matched
}
