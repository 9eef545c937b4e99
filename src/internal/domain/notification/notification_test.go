package notification_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipient(s string) notification.RecipientID {
	id, _ := notification.RecipientIDFromString(s)
	return id
}

// Test 1: 創建通知為未讀
func TestNewNotification_Unread(t *testing.T) {
	n, err := notification.NewNotification(recipient("author-1"), "title", "content")

	require.NoError(t, err)
	assert.False(t, n.IsRead())
	assert.Nil(t, n.ReadAt())
	assert.True(t, n.IsAddressedTo(recipient("author-1")))
	assert.False(t, n.IsAddressedTo(recipient("author-2")))
	assert.Empty(t, n.DomainEvents())
}

// Test 2: 必填欄位
func TestNewNotification_Validation(t *testing.T) {
	_, err := notification.NewNotification(notification.RecipientID{}, "title", "content")
	assert.ErrorIs(t, err, shared.ErrInvalidID)

	_, err = notification.NewNotification(recipient("author-1"), "", "content")
	assert.ErrorIs(t, err, notification.ErrEmptyTitle)
}

// Test 3: Read 只記錄第一次
func TestNotification_Read_KeepsFirstTimestamp(t *testing.T) {
	// Arrange
	n := notification.ReconstructNotification(
		notification.NotificationID{}, recipient("author-1"), "t", "c", nil, time.Now(),
	)

	// Act
	n.Read()
	first := *n.ReadAt()
	n.Read()

	// Assert
	assert.True(t, n.IsRead())
	assert.Equal(t, first, *n.ReadAt())
}
